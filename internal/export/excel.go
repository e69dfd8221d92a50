package export

import (
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/adittyaff/pelanggan-mapper/internal/models"
)

const sheetName = "Data"

// exportHeader fixes the column order of exported workbooks.
var exportHeader = []string{
	"LOCATION_CODE",
	"NAMA_PELANGGAN",
	"ALAMAT",
	"TARIFF",
	"POWER",
	"LOCATION_TYPE",
	"STATUS_TO",
	"STATUS_PERIKSA",
	"ANOMALY_SCORE",
	"LAST_READ_TIME",
	"LAT",
	"LON",
}

// Workbook renders records into a single-sheet xlsx file, one row per record
// in the given order.
func Workbook(records []models.Record) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	for i, col := range exportHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, col); err != nil {
			return nil, err
		}
	}

	for r, rec := range records {
		values := []any{
			rec.LocationCode,
			rec.Name,
			rec.Address,
			rec.Tariff,
			optFloat(rec.Power),
			rec.LocationType,
			rec.StatusTO,
			rec.RawStatus,
			optFloat(rec.AnomalyScore),
			optTime(rec.LastRead),
			rec.Lat,
			rec.Lon,
		}
		for c, v := range values {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}
	return f, nil
}

// Filename returns the timestamped download name for an export.
func Filename(now time.Time) string {
	return fmt.Sprintf("mapping_pelanggan_filtered_%s.xlsx", now.Format("20060102_150405"))
}

func optFloat(v *float64) any {
	if v == nil {
		return nil
	}
	return *v
}

func optTime(v *time.Time) any {
	if v == nil {
		return nil
	}
	return v.Format(time.RFC3339)
}
