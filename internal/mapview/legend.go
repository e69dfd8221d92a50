package mapview

import "github.com/adittyaff/pelanggan-mapper/internal/status"

// LegendEntry pairs a canonical status label with its pin color.
type LegendEntry struct {
	Label string       `json:"label"`
	Color status.Color `json:"color"`
}

// Legend returns the status/color legend in display order, with the
// unclassified fallback last.
func Legend() []LegendEntry {
	entries := make([]LegendEntry, 0, len(status.Order)+1)
	for _, cat := range status.Order {
		entries = append(entries, LegendEntry{Label: string(cat), Color: status.ColorOf(cat)})
	}
	entries = append(entries, LegendEntry{Label: string(status.Unclassified), Color: status.ColorDefault})
	return entries
}
