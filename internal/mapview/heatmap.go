package mapview

import "github.com/adittyaff/pelanggan-mapper/internal/models"

// HeatPoint is one weighted coordinate for the anomaly heatmap layer.
type HeatPoint struct {
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
	Weight float64 `json:"weight"`
}

// HeatPoints builds the heatmap input from records that carry an anomaly
// score; records without one contribute nothing.
func HeatPoints(records []models.Record) []HeatPoint {
	points := make([]HeatPoint, 0, len(records))
	for _, rec := range records {
		if rec.AnomalyScore == nil {
			continue
		}
		points = append(points, HeatPoint{
			Lat:    rec.Lat,
			Lon:    rec.Lon,
			Weight: *rec.AnomalyScore,
		})
	}
	return points
}
