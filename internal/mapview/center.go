package mapview

import (
	"sort"

	"github.com/adittyaff/pelanggan-mapper/internal/models"
)

// Indonesia centroid, used when there is nothing to center on.
const (
	fallbackLat  = -2.5
	fallbackLon  = 118.0
	fallbackZoom = 5
	focusZoom    = 11
)

// Center is the suggested initial viewport for the map frontend.
type Center struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Zoom int     `json:"zoom"`
}

// CenterOf picks the median coordinate of the records, which keeps a handful
// of mis-geocoded outliers from dragging the viewport away from the cluster.
func CenterOf(records []models.Record) Center {
	if len(records) == 0 {
		return Center{Lat: fallbackLat, Lon: fallbackLon, Zoom: fallbackZoom}
	}

	lats := make([]float64, 0, len(records))
	lons := make([]float64, 0, len(records))
	for _, rec := range records {
		lats = append(lats, rec.Lat)
		lons = append(lons, rec.Lon)
	}
	return Center{Lat: median(lats), Lon: median(lons), Zoom: focusZoom}
}

func median(vals []float64) float64 {
	sort.Float64s(vals)
	n := len(vals)
	if n%2 == 1 {
		return vals[n/2]
	}
	return (vals[n/2-1] + vals[n/2]) / 2
}
