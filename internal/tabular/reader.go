package tabular

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/adittyaff/pelanggan-mapper/internal/models"
)

// requiredColumns must be present (directly or via an alias) in the header
// for the dataset to be usable at all.
var requiredColumns = []string{"LOCATION_CODE", "LAT", "LON"}

// Result is the outcome of loading one tabular dataset.
type Result struct {
	Records []models.Record
	// Skipped counts rows dropped for missing/invalid required fields.
	Skipped int
	// StatusColumn is the detected inspection-status column, empty when the
	// header carries none of the accepted aliases.
	StatusColumn string
}

// ReadFile loads a dataset from disk, choosing the format by file extension.
func ReadFile(path string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f, filepath.Base(path))
}

// Read loads a dataset from a reader. The filename decides the format: .csv
// is parsed as CSV, .xlsx/.xlsm as a spreadsheet; anything else is rejected.
func Read(r io.Reader, filename string) (*Result, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return ReadCSV(r)
	case ".xlsx", ".xlsm":
		return ReadXLSX(r)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q (want .csv or .xlsx)", filepath.Ext(filename))
	}
}

// ReadCSV parses a CSV dataset, first line as header.
func ReadCSV(r io.Reader) (*Result, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	rows := make([][]string, 0, 64)
	for {
		line, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read csv: %w", err)
		}
		rows = append(rows, line)
	}
	return fromRows(rows)
}

// ReadXLSX parses the first sheet of a spreadsheet dataset.
func ReadXLSX(r io.Reader) (*Result, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("xlsx has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read xlsx rows: %w", err)
	}
	return fromRows(rows)
}

func fromRows(rows [][]string) (*Result, error) {
	if len(rows) == 0 {
		return nil, errors.New("dataset has no header row")
	}
	header := rows[0]
	if err := checkRequired(header); err != nil {
		return nil, err
	}

	res := &Result{Records: make([]models.Record, 0, len(rows)-1)}
	if col, ok := StatusColumn(header); ok {
		res.StatusColumn = col
	}

	for _, line := range rows[1:] {
		if len(line) == 0 {
			continue
		}
		rec, err := ParseRecord(NewRow(header, line))
		if err != nil {
			res.Skipped++
			continue
		}
		res.Records = append(res.Records, rec)
	}
	return res, nil
}

func checkRequired(header []string) error {
	// probe through NewRow so header aliases (IDPEL, LATITUDE, ...) count
	probe := make([]string, len(header))
	for i := range probe {
		probe[i] = "x"
	}
	row := NewRow(header, probe)

	missing := make([]string, 0, len(requiredColumns))
	for _, col := range requiredColumns {
		if _, ok := row[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required columns: %s", strings.Join(missing, ", "))
	}
	return nil
}
