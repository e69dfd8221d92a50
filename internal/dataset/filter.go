package dataset

import (
	"sort"
	"strings"
	"time"

	"github.com/adittyaff/pelanggan-mapper/internal/models"
	"github.com/adittyaff/pelanggan-mapper/internal/status"
)

// Filter narrows a snapshot's records before pin assembly. Zero-valued
// criteria match everything.
type Filter struct {
	IDQuery   string
	NameQuery string

	Tariffs       []string
	LocationTypes []string
	StatusTO      []string
	Categories    []status.Category

	PowerMin *float64
	PowerMax *float64
	ScoreMin *float64
	ScoreMax *float64

	Start *time.Time
	End   *time.Time
}

// Apply returns the records matching every set criterion. The input slice is
// never mutated.
func (f Filter) Apply(records []models.Record) []models.Record {
	out := make([]models.Record, 0, len(records))
	for _, rec := range records {
		if f.matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

func (f Filter) matches(rec models.Record) bool {
	if f.IDQuery != "" && !containsFold(rec.LocationCode, f.IDQuery) {
		return false
	}
	if f.NameQuery != "" && !containsFold(rec.Name, f.NameQuery) {
		return false
	}
	if len(f.Tariffs) > 0 && !inSet(f.Tariffs, rec.Tariff) {
		return false
	}
	if len(f.LocationTypes) > 0 && !inSet(f.LocationTypes, rec.LocationType) {
		return false
	}
	if len(f.StatusTO) > 0 && !inSet(f.StatusTO, rec.StatusTO) {
		return false
	}
	if len(f.Categories) > 0 {
		cat, _ := status.Classify(rec.RawStatus)
		found := false
		for _, want := range f.Categories {
			if cat == want {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if !inRange(rec.Power, f.PowerMin, f.PowerMax) {
		return false
	}
	if !inRange(rec.AnomalyScore, f.ScoreMin, f.ScoreMax) {
		return false
	}
	if f.Start != nil && (rec.LastRead == nil || rec.LastRead.Before(*f.Start)) {
		return false
	}
	if f.End != nil && (rec.LastRead == nil || rec.LastRead.After(*f.End)) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

func inSet(set []string, v string) bool {
	for _, s := range set {
		if strings.EqualFold(s, v) {
			return true
		}
	}
	return false
}

// inRange treats a missing value as outside any requested range, and any
// value as inside when no bound is set.
func inRange(v, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	if v == nil {
		return false
	}
	if min != nil && *v < *min {
		return false
	}
	if max != nil && *v > *max {
		return false
	}
	return true
}

// Facets lists the distinct values a dataset offers for each filterable
// column, sorted, so the frontend can build its filter controls.
type Facets struct {
	Tariffs       []string          `json:"tariffs"`
	LocationTypes []string          `json:"location_types"`
	StatusTO      []string          `json:"status_to"`
	Categories    []status.Category `json:"categories"`
}

// FacetsOf scans records and collects filter options. Canonical status
// categories keep their display order; only categories actually present are
// listed.
func FacetsOf(records []models.Record) Facets {
	tariffs := make(map[string]bool)
	types := make(map[string]bool)
	statusTO := make(map[string]bool)
	cats := make(map[status.Category]bool)

	for _, rec := range records {
		if rec.Tariff != "" {
			tariffs[rec.Tariff] = true
		}
		if rec.LocationType != "" {
			types[rec.LocationType] = true
		}
		if rec.StatusTO != "" {
			statusTO[rec.StatusTO] = true
		}
		cat, _ := status.Classify(rec.RawStatus)
		cats[cat] = true
	}

	f := Facets{
		Tariffs:       sortedKeys(tariffs),
		LocationTypes: sortedKeys(types),
		StatusTO:      sortedKeys(statusTO),
	}
	for _, cat := range status.Order {
		if cats[cat] {
			f.Categories = append(f.Categories, cat)
		}
	}
	if cats[status.Unclassified] {
		f.Categories = append(f.Categories, status.Unclassified)
	}
	return f
}

func sortedKeys(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
