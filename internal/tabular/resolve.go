package tabular

import "strings"

// statusAliases are the accepted header names for the inspection-status
// column, in priority order. Source exports are inconsistent about which one
// they carry.
var statusAliases = []string{
	"UPDATE_STATUS",
	"UPDATE-STATUS",
	"STATUS_PERIKSA",
	"STATUS PERIKSA",
	"STATUS_P2TL",
	"HASIL_PERIKSA",
}

// headerAliases maps legacy export headers onto the canonical names. Applied
// only when the canonical column is absent.
var headerAliases = map[string]string{
	"IDPEL":     "LOCATION_CODE",
	"LATITUDE":  "LAT",
	"LONGITUDE": "LON",
	"LONG":      "LON",
	"NAMA":      "NAMA_PELANGGAN",
}

// Row maps normalized column names to trimmed cell values for one record.
type Row map[string]string

// NormalizeHeader folds a source column name into canonical form.
func NormalizeHeader(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// NewRow pairs a header with one line of values. Extra values are dropped,
// missing trailing values leave the column absent, and legacy header aliases
// are folded onto their canonical names.
func NewRow(header, values []string) Row {
	row := make(Row, len(header))
	for i, h := range header {
		key := NormalizeHeader(h)
		if key == "" || i >= len(values) {
			continue
		}
		row[key] = strings.TrimSpace(values[i])
	}
	for from, to := range headerAliases {
		v, ok := row[from]
		if !ok {
			continue
		}
		if _, exists := row[to]; !exists {
			row[to] = v
		}
	}
	return row
}

// ResolveStatus returns the first non-empty inspection-status value among the
// alias columns. A row without any of them is a valid, silently-handled
// state, reported via ok=false.
func ResolveStatus(row Row) (string, bool) {
	for _, alias := range statusAliases {
		if v, ok := row[alias]; ok && v != "" {
			return v, true
		}
	}
	return "", false
}

// StatusColumn reports which alias column a header provides, if any. Used for
// snapshot metadata; per-row extraction still goes through ResolveStatus.
func StatusColumn(header []string) (string, bool) {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[NormalizeHeader(h)] = true
	}
	for _, alias := range statusAliases {
		if present[alias] {
			return alias, true
		}
	}
	return "", false
}
