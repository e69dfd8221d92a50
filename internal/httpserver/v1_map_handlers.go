package httpserver

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/adittyaff/pelanggan-mapper/internal/dataset"
	"github.com/adittyaff/pelanggan-mapper/internal/mapview"
	"github.com/adittyaff/pelanggan-mapper/internal/status"
)

// handleV1MapPins returns colored pins for the filtered records
// GET /api/v1/map/pins?q_idpel=&q_nama=&tariff=&location_type=&status_to=&status=&power_min=&power_max=&score_min=&score_max=&start=&end=
func (s *Server) handleV1MapPins(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := s.store.Snapshot()
	records := filter.Apply(snap.Records)
	pins := mapview.BuildPins(records, mapview.Options{
		Fallback:      s.cfg.FallbackColors,
		HighThreshold: s.cfg.HighThreshold,
		MidThreshold:  s.cfg.MidThreshold,
	})

	c.JSON(http.StatusOK, gin.H{
		"data": pins,
		"meta": gin.H{
			"count":  len(pins),
			"total":  len(snap.Records),
			"center": mapview.CenterOf(records),
		},
	})
}

// handleV1MapHeatmap returns weighted anomaly heat points for the filtered records
// GET /api/v1/map/heatmap
func (s *Server) handleV1MapHeatmap(c *gin.Context) {
	filter, err := parseFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	snap := s.store.Snapshot()
	points := mapview.HeatPoints(filter.Apply(snap.Records))

	c.JSON(http.StatusOK, gin.H{
		"data": points,
		"meta": gin.H{"count": len(points)},
	})
}

// handleV1MapLegend returns the status/color legend
// GET /api/v1/map/legend
func (s *Server) handleV1MapLegend(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": mapview.Legend()})
}

// handleV1MapOptions returns the presentation settings the frontend should apply
// GET /api/v1/map/options
func (s *Server) handleV1MapOptions(c *gin.Context) {
	tileURL, known := mapview.BasemapURL(s.cfg.Basemap)
	c.JSON(http.StatusOK, gin.H{
		"data": gin.H{
			"basemap":     s.cfg.Basemap,
			"basemap_url": tileURL,
			"known":       known,
			"basemaps":    mapview.Basemaps(),
			"cluster":     s.cfg.ClusterEnabled,
			"heatmap":     s.cfg.HeatmapEnabled,
		},
	})
}

func parseFilter(c *gin.Context) (dataset.Filter, error) {
	f := dataset.Filter{
		IDQuery:       c.Query("q_idpel"),
		NameQuery:     c.Query("q_nama"),
		Tariffs:       c.QueryArray("tariff"),
		LocationTypes: c.QueryArray("location_type"),
		StatusTO:      c.QueryArray("status_to"),
	}

	for _, raw := range c.QueryArray("status") {
		cat, _ := status.Classify(raw)
		f.Categories = append(f.Categories, cat)
	}

	var err error
	if f.PowerMin, err = optionalFloatQuery(c, "power_min"); err != nil {
		return f, err
	}
	if f.PowerMax, err = optionalFloatQuery(c, "power_max"); err != nil {
		return f, err
	}
	if f.ScoreMin, err = optionalFloatQuery(c, "score_min"); err != nil {
		return f, err
	}
	if f.ScoreMax, err = optionalFloatQuery(c, "score_max"); err != nil {
		return f, err
	}
	if f.Start, err = optionalTimeQuery(c, "start", false); err != nil {
		return f, err
	}
	if f.End, err = optionalTimeQuery(c, "end", true); err != nil {
		return f, err
	}
	return f, nil
}

func optionalFloatQuery(c *gin.Context, key string) (*float64, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s", key)
	}
	return &f, nil
}

// optionalTimeQuery accepts RFC3339 timestamps or bare dates; a bare end date
// covers the whole day.
func optionalTimeQuery(c *gin.Context, key string, endOfDay bool) (*time.Time, error) {
	v := c.Query(key)
	if v == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		tt := t.UTC()
		return &tt, nil
	}
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return nil, fmt.Errorf("invalid %s, expected RFC3339 or YYYY-MM-DD", key)
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	tt := t.UTC()
	return &tt, nil
}
