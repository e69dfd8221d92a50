package dataset

import (
	"testing"
	"time"

	"github.com/adittyaff/pelanggan-mapper/internal/models"
	"github.com/adittyaff/pelanggan-mapper/internal/status"
)

func fptr(v float64) *float64 { return &v }

func tptr(t time.Time) *time.Time { return &t }

func fixtureRecords() []models.Record {
	return []models.Record{
		{
			LocationCode: "511000000001",
			Name:         "Budi Santoso",
			Lat:          -6.2, Lon: 106.8,
			Tariff:       "R1",
			LocationType: "Customer",
			StatusTO:     "Target",
			RawStatus:    "Temuan - P2",
			Power:        fptr(1300),
			AnomalyScore: fptr(82),
			LastRead:     tptr(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)),
		},
		{
			LocationCode: "511000000002",
			Name:         "Siti Rahma",
			Lat:          -6.3, Lon: 106.9,
			Tariff:       "B2",
			LocationType: "Customer",
			RawStatus:    "Periksa - Sesuai",
			Power:        fptr(5500),
			AnomalyScore: fptr(12),
			LastRead:     tptr(time.Date(2025, 7, 15, 0, 0, 0, 0, time.UTC)),
		},
		{
			LocationCode: "511000000003",
			Lat:          -6.4, Lon: 107.0,
			Tariff:       "R1",
			LocationType: "Pole",
		},
	}
}

func TestFilterZeroValueMatchesAll(t *testing.T) {
	records := fixtureRecords()
	got := Filter{}.Apply(records)
	if len(got) != len(records) {
		t.Fatalf("got %d records, want %d", len(got), len(records))
	}
}

func TestFilterIDAndNameQueries(t *testing.T) {
	records := fixtureRecords()

	got := Filter{IDQuery: "0002"}.Apply(records)
	if len(got) != 1 || got[0].LocationCode != "511000000002" {
		t.Fatalf("IDQuery: got %+v", got)
	}

	got = Filter{NameQuery: "budi"}.Apply(records)
	if len(got) != 1 || got[0].Name != "Budi Santoso" {
		t.Fatalf("NameQuery should match case-insensitively, got %+v", got)
	}
}

func TestFilterSets(t *testing.T) {
	records := fixtureRecords()

	if got := (Filter{Tariffs: []string{"r1"}}).Apply(records); len(got) != 2 {
		t.Fatalf("tariff filter: got %d, want 2", len(got))
	}
	if got := (Filter{LocationTypes: []string{"Pole"}}).Apply(records); len(got) != 1 {
		t.Fatalf("location type filter: got %d, want 1", len(got))
	}
	if got := (Filter{StatusTO: []string{"target"}}).Apply(records); len(got) != 1 {
		t.Fatalf("status TO filter: got %d, want 1", len(got))
	}
}

func TestFilterCategories(t *testing.T) {
	records := fixtureRecords()

	got := Filter{Categories: []status.Category{status.TemuanP2}}.Apply(records)
	if len(got) != 1 || got[0].LocationCode != "511000000001" {
		t.Fatalf("category filter: got %+v", got)
	}

	got = Filter{Categories: []status.Category{status.Unclassified}}.Apply(records)
	if len(got) != 1 || got[0].LocationCode != "511000000003" {
		t.Fatalf("unclassified filter: got %+v", got)
	}
}

func TestFilterRanges(t *testing.T) {
	records := fixtureRecords()

	got := Filter{PowerMin: fptr(2000)}.Apply(records)
	if len(got) != 1 || got[0].LocationCode != "511000000002" {
		t.Fatalf("power min: got %+v", got)
	}

	// record without a score is outside any requested score range
	got = Filter{ScoreMin: fptr(0), ScoreMax: fptr(100)}.Apply(records)
	if len(got) != 2 {
		t.Fatalf("score range: got %d, want 2", len(got))
	}

	got = Filter{ScoreMin: fptr(50)}.Apply(records)
	if len(got) != 1 || got[0].LocationCode != "511000000001" {
		t.Fatalf("score min: got %+v", got)
	}
}

func TestFilterDateRange(t *testing.T) {
	records := fixtureRecords()
	start := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	got := Filter{Start: &start}.Apply(records)
	if len(got) != 1 || got[0].LocationCode != "511000000002" {
		t.Fatalf("start filter: got %+v", got)
	}

	end := time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC)
	got = Filter{End: &end}.Apply(records)
	if len(got) != 1 || got[0].LocationCode != "511000000001" {
		t.Fatalf("end filter: got %+v", got)
	}
}

func TestFacetsOf(t *testing.T) {
	f := FacetsOf(fixtureRecords())

	wantTariffs := []string{"B2", "R1"}
	if len(f.Tariffs) != len(wantTariffs) {
		t.Fatalf("tariffs = %v", f.Tariffs)
	}
	for i, want := range wantTariffs {
		if f.Tariffs[i] != want {
			t.Fatalf("tariffs = %v, want %v", f.Tariffs, wantTariffs)
		}
	}

	// categories keep display order with Unclassified last
	want := []status.Category{status.PeriksaSesuai, status.TemuanP2, status.Unclassified}
	if len(f.Categories) != len(want) {
		t.Fatalf("categories = %v", f.Categories)
	}
	for i, cat := range want {
		if f.Categories[i] != cat {
			t.Fatalf("categories = %v, want %v", f.Categories, want)
		}
	}
}
