package tabular

import (
	"fmt"
	"strconv"
	"time"

	"github.com/adittyaff/pelanggan-mapper/internal/models"
)

// timestamp layouts accepted for LAST_READ_TIME, tried in order.
var lastReadLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"02/01/2006 15:04",
	"02/01/2006",
}

// ParseRecord builds a Record from one row. An error means the row lacks a
// required field (LOCATION_CODE, numeric LAT/LON) and should be skipped;
// optional fields never produce errors, bad values just stay absent.
func ParseRecord(row Row) (models.Record, error) {
	var rec models.Record

	rec.LocationCode = row["LOCATION_CODE"]
	if rec.LocationCode == "" {
		return rec, fmt.Errorf("missing LOCATION_CODE")
	}

	lat, err := strconv.ParseFloat(row["LAT"], 64)
	if err != nil {
		return rec, fmt.Errorf("invalid LAT %q", row["LAT"])
	}
	lon, err := strconv.ParseFloat(row["LON"], 64)
	if err != nil {
		return rec, fmt.Errorf("invalid LON %q", row["LON"])
	}
	rec.Lat = lat
	rec.Lon = lon

	rec.Name = row["NAMA_PELANGGAN"]
	rec.Address = row["ALAMAT"]
	rec.Tariff = row["TARIFF"]
	rec.LocationType = row["LOCATION_TYPE"]
	rec.StatusTO = row["STATUS_TO"]

	if v, ok := ResolveStatus(row); ok {
		rec.RawStatus = v
	}

	rec.Power = parseOptionalFloat(row["POWER"])
	rec.AnomalyScore = parseOptionalFloat(row["ANOMALY_SCORE"])
	rec.LastRead = parseOptionalTime(row["LAST_READ_TIME"])

	return rec, nil
}

func parseOptionalFloat(v string) *float64 {
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

func parseOptionalTime(v string) *time.Time {
	if v == "" {
		return nil
	}
	for _, layout := range lastReadLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			tt := t.UTC()
			return &tt
		}
	}
	return nil
}
