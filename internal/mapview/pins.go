package mapview

import (
	"strings"
	"time"

	"github.com/adittyaff/pelanggan-mapper/internal/models"
	"github.com/adittyaff/pelanggan-mapper/internal/status"
)

// Popup carries the per-customer metadata shown when a pin is opened.
type Popup struct {
	LocationCode string     `json:"location_code"`
	Name         string     `json:"name,omitempty"`
	Address      string     `json:"address,omitempty"`
	Tariff       string     `json:"tariff,omitempty"`
	Power        *float64   `json:"power,omitempty"`
	Status       string     `json:"status,omitempty"`
	StatusTO     string     `json:"status_to,omitempty"`
	AnomalyScore *float64   `json:"anomaly_score,omitempty"`
	LastRead     *time.Time `json:"last_read,omitempty"`
}

// Pin is one renderable map marker: coordinate, canonical status label,
// color, tooltip and popup metadata. This is the whole contract with the
// map-rendering frontend.
type Pin struct {
	Lat      float64         `json:"lat"`
	Lon      float64         `json:"lon"`
	Category status.Category `json:"category"`
	Color    status.Color    `json:"color"`
	Tooltip  string          `json:"tooltip"`
	Popup    Popup           `json:"popup"`
}

// Options controls pin coloring for records without a recognized inspection
// status. With Fallback disabled such pins keep the default color; enabled,
// the legacy TO-status/anomaly-score rules decide instead.
type Options struct {
	Fallback      bool
	HighThreshold float64
	MidThreshold  float64
}

// BuildPins converts records into map pins. Records have already passed
// required-field validation, so every one yields exactly one pin.
func BuildPins(records []models.Record, opts Options) []Pin {
	pins := make([]Pin, 0, len(records))
	for _, rec := range records {
		cat, color := status.Classify(rec.RawStatus)
		if cat == status.Unclassified && opts.Fallback {
			color = fallbackColor(rec, opts)
		}

		tooltip := rec.LocationCode
		if rec.Name != "" {
			tooltip += " – " + rec.Name
		}

		pins = append(pins, Pin{
			Lat:      rec.Lat,
			Lon:      rec.Lon,
			Category: cat,
			Color:    color,
			Tooltip:  tooltip,
			Popup: Popup{
				LocationCode: rec.LocationCode,
				Name:         rec.Name,
				Address:      rec.Address,
				Tariff:       rec.Tariff,
				Power:        rec.Power,
				Status:       rec.RawStatus,
				StatusTO:     rec.StatusTO,
				AnomalyScore: rec.AnomalyScore,
				LastRead:     rec.LastRead,
			},
		})
	}
	return pins
}

// fallbackColor mirrors the legacy coloring for unclassified records: TO
// targets are red, otherwise the anomaly score decides against the
// configured thresholds, defaulting to green.
func fallbackColor(rec models.Record, opts Options) status.Color {
	switch strings.ToLower(strings.TrimSpace(rec.StatusTO)) {
	case "target", "to", "suspect":
		return status.ColorRed
	}
	if rec.AnomalyScore != nil {
		if *rec.AnomalyScore >= opts.HighThreshold {
			return status.ColorRed
		}
		if *rec.AnomalyScore >= opts.MidThreshold {
			return status.ColorOrange
		}
	}
	return status.ColorGreen
}
