package mapview

import "sort"

// basemaps are the tile templates the frontend may render under the pins.
var basemaps = map[string]string{
	"OpenStreetMap":       "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png",
	"CartoDB positron":    "https://cartodb-basemaps-a.global.ssl.fastly.net/light_all/{z}/{x}/{y}{r}.png",
	"CartoDB dark_matter": "https://cartodb-basemaps-a.global.ssl.fastly.net/dark_all/{z}/{x}/{y}{r}.png",
	"Stamen Terrain":      "https://stamen-tiles.a.ssl.fastly.net/terrain/{z}/{x}/{y}.jpg",
	"Stamen Toner":        "https://stamen-tiles.a.ssl.fastly.net/toner/{z}/{x}/{y}.png",
}

// BasemapURL returns the tile URL template for a named basemap.
func BasemapURL(name string) (string, bool) {
	url, ok := basemaps[name]
	return url, ok
}

// Basemaps lists the available basemap names, sorted.
func Basemaps() []string {
	names := make([]string, 0, len(basemaps))
	for name := range basemaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
