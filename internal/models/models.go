package models

import "time"

// Record is one customer/meter entry loaded from a tabular source. Optional
// fields that were absent or unparseable stay nil/empty; records are read
// once per load and never mutated afterwards.
type Record struct {
	LocationCode string
	Lat          float64
	Lon          float64

	Name         string
	Address      string
	Tariff       string
	LocationType string
	StatusTO     string

	// RawStatus is the inspection-status text resolved from whichever alias
	// column the source provided, empty when none matched.
	RawStatus string

	Power        *float64
	AnomalyScore *float64
	LastRead     *time.Time
}
