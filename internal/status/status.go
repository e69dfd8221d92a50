package status

import "strings"

// Category is a canonical P2TL inspection outcome.
type Category string

const (
	PeriksaSesuai Category = "Periksa - Sesuai"
	TemuanK2      Category = "Temuan - K2"
	TemuanP1      Category = "Temuan - P1"
	TemuanP2      Category = "Temuan - P2"
	TemuanP3      Category = "Temuan - P3"
	TemuanP4      Category = "Temuan - P4"
	Unclassified  Category = "Unclassified"
)

// Color is a pin color name understood by the map frontend.
type Color string

const (
	ColorGreen      Color = "green"
	ColorRed        Color = "red"
	ColorOrange     Color = "orange"
	ColorDarkOrange Color = "darkorange"
	ColorBlue       Color = "blue"
	ColorPurple     Color = "purple"
	ColorDefault    Color = "gray"
)

// Order lists the canonical categories in display order, used for legends
// and filter option lists.
var Order = []Category{
	PeriksaSesuai,
	TemuanK2,
	TemuanP1,
	TemuanP2,
	TemuanP3,
	TemuanP4,
}

var colorByCategory = map[Category]Color{
	PeriksaSesuai: ColorGreen,
	TemuanK2:      ColorRed,
	TemuanP1:      ColorOrange,
	TemuanP2:      ColorDarkOrange,
	TemuanP3:      ColorBlue,
	TemuanP4:      ColorPurple,
}

// lowered literals, aligned with Order, so Classify does not re-fold the
// canonical strings on every call.
var loweredOrder = func() []string {
	out := make([]string, len(Order))
	for i, cat := range Order {
		out[i] = strings.ToLower(string(cat))
	}
	return out
}()

// ColorOf returns the pin color for a category. Categories outside the
// canonical set get the default color.
func ColorOf(cat Category) Color {
	if c, ok := colorByCategory[cat]; ok {
		return c
	}
	return ColorDefault
}

// Classify normalizes raw inspection-status text (trim, case fold) and
// matches it against the canonical categories, exact or by prefix. Text that
// matches nothing is Unclassified with the default color; Classify never
// fails.
func Classify(raw string) (Category, Color) {
	norm := strings.ToLower(strings.TrimSpace(raw))
	if norm == "" {
		return Unclassified, ColorDefault
	}
	for i, lit := range loweredOrder {
		if norm == lit || strings.HasPrefix(norm, lit) {
			cat := Order[i]
			return cat, colorByCategory[cat]
		}
	}
	return Unclassified, ColorDefault
}
