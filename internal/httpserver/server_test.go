package httpserver

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/adittyaff/pelanggan-mapper/internal/config"
	"github.com/adittyaff/pelanggan-mapper/internal/dataset"
)

const sampleCSV = `IDPEL,LAT,LON,TARIFF,STATUS_PERIKSA,ANOMALY_SCORE
123,-6.2,106.8,R1,Temuan - P2,82
456,-6.3,106.9,B2,Periksa - Sesuai,10
789,,107.0,R1,Temuan - K2,50
`

func testConfig() config.Config {
	return config.Config{
		Port:           8080,
		MaxUploadBytes: 1 << 20,
		HighThreshold:  70,
		MidThreshold:   40,
		Basemap:        "CartoDB positron",
		ClusterEnabled: true,
	}
}

func newTestServer(t *testing.T, cfg config.Config) *Server {
	t.Helper()
	store := dataset.NewStore()
	if _, err := store.LoadReader(strings.NewReader(sampleCSV), "sample.csv"); err != nil {
		t.Fatalf("seed dataset: %v", err)
	}
	return New(cfg, store, zap.NewNop())
}

func doRequest(t *testing.T, srv *Server, req *http.Request) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return body
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t, testConfig())
	w := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestV1MapPins(t *testing.T) {
	srv := newTestServer(t, testConfig())
	w := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/map/pins", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("X-API-Version"); got != "v1" {
		t.Fatalf("X-API-Version = %q", got)
	}

	body := decodeBody(t, w)
	pins := body["data"].([]any)
	if len(pins) != 2 {
		t.Fatalf("got %d pins, want 2 (row without LAT is skipped at load)", len(pins))
	}
	first := pins[0].(map[string]any)
	if first["category"] != "Temuan - P2" || first["color"] != "darkorange" {
		t.Fatalf("first pin = %v", first)
	}

	meta := body["meta"].(map[string]any)
	if meta["count"].(float64) != 2 {
		t.Fatalf("meta = %v", meta)
	}
}

func TestV1MapPinsFiltered(t *testing.T) {
	srv := newTestServer(t, testConfig())
	w := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/map/pins?status=Temuan+-+P2", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	pins := body["data"].([]any)
	if len(pins) != 1 {
		t.Fatalf("got %d pins, want 1", len(pins))
	}
	pin := pins[0].(map[string]any)
	popup := pin["popup"].(map[string]any)
	if popup["location_code"] != "123" {
		t.Fatalf("pin = %v", pin)
	}
}

func TestV1MapPinsBadQuery(t *testing.T) {
	srv := newTestServer(t, testConfig())
	w := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/map/pins?score_min=abc", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestV1MapHeatmap(t *testing.T) {
	srv := newTestServer(t, testConfig())
	w := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/map/heatmap", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if points := body["data"].([]any); len(points) != 2 {
		t.Fatalf("got %d heat points", len(points))
	}
}

func TestV1MapLegend(t *testing.T) {
	srv := newTestServer(t, testConfig())
	w := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/map/legend", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	if entries := body["data"].([]any); len(entries) != 7 {
		t.Fatalf("got %d legend entries, want 7", len(entries))
	}
}

func TestV1MapOptions(t *testing.T) {
	srv := newTestServer(t, testConfig())
	w := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/map/options", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	if data["basemap"] != "CartoDB positron" || data["known"] != true {
		t.Fatalf("options = %v", data)
	}
}

func TestV1DatasetInfo(t *testing.T) {
	srv := newTestServer(t, testConfig())
	w := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/dataset", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	body := decodeBody(t, w)
	data := body["data"].(map[string]any)
	if data["records"].(float64) != 2 || data["skipped"].(float64) != 1 {
		t.Fatalf("data = %v", data)
	}
	if data["status_column"] != "STATUS_PERIKSA" {
		t.Fatalf("status_column = %v", data["status_column"])
	}
}

func TestV1UploadDataset(t *testing.T) {
	srv := newTestServer(t, testConfig())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", "upload.csv")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte("IDPEL,LAT,LON\n999,-7.0,110.0\n")); err != nil {
		t.Fatal(err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dataset", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := doRequest(t, srv, req)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}
	data := decodeBody(t, w)["data"].(map[string]any)
	if data["records"].(float64) != 1 || data["source"] != "upload.csv" {
		t.Fatalf("data = %v", data)
	}
}

func TestV1UploadDatasetRejectsBadFile(t *testing.T) {
	srv := newTestServer(t, testConfig())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, _ := mw.CreateFormFile("file", "upload.csv")
	part.Write([]byte("TARIFF\nR1\n"))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/dataset", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := doRequest(t, srv, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestV1ExportXLSX(t *testing.T) {
	srv := newTestServer(t, testConfig())
	w := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/export/xlsx", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != xlsxContentType {
		t.Fatalf("content type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.Contains(cd, "mapping_pelanggan_filtered_") {
		t.Fatalf("content disposition = %q", cd)
	}
	if w.Body.Len() == 0 {
		t.Fatal("empty workbook body")
	}
}

func TestBearerAuth(t *testing.T) {
	cfg := testConfig()
	cfg.BearerToken = "sekret"
	srv := newTestServer(t, cfg)

	w := doRequest(t, srv, httptest.NewRequest(http.MethodGet, "/api/v1/map/pins", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status without token = %d", w.Code)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/map/pins", nil)
	req.Header.Set("Authorization", "Bearer sekret")
	if w := doRequest(t, srv, req); w.Code != http.StatusOK {
		t.Fatalf("status with token = %d", w.Code)
	}
}
