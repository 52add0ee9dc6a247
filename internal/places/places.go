// Package places lists the markers drawn on the page's map.
package places

// Marker is a single point on the map.
type Marker struct {
	Title       string  `json:"title"`
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Description string  `json:"description"`
}

// Center is where the map opens.
var Center = Marker{Title: "Jerusalem", Lat: 31.7683, Lng: 35.2137}

// DefaultZoom is the zoom level the map opens at.
const DefaultZoom = 8

var markers = []Marker{
	{Title: "Jerusalem", Lat: 31.7683, Lng: 35.2137, Description: "Where I live"},
	{Title: "Tel Aviv", Lat: 32.0853, Lng: 34.7818, Description: "Where I took ballet classes"},
	{Title: "Haifa", Lat: 32.7940, Lng: 34.9896, Description: "Favorite weekend trip"},
}

// Markers returns a copy of the map markers.
func Markers() []Marker {
	out := make([]Marker, len(markers))
	copy(out, markers)
	return out
}
