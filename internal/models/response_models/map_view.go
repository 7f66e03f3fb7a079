package response_models

// TileLayer describes the base tile style the frontend map widget
// should render.
type TileLayer struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

type Marker struct {
	Lat       float64 `json:"lat"`
	Lon       float64 `json:"lon"`
	Color     string  `json:"color"`
	PlaceName string  `json:"place_name"`
	Popup     string  `json:"popup"`
}

// Bounds is the south-west / north-east envelope of all markers, used
// by the frontend to auto-frame the viewport.
type Bounds struct {
	SouthWest [2]float64 `json:"south_west"`
	NorthEast [2]float64 `json:"north_east"`
}

type MapView struct {
	Tiles   TileLayer  `json:"tiles"`
	Center  [2]float64 `json:"center"`
	Zoom    int        `json:"zoom"`
	Markers []Marker   `json:"markers"`
	Bounds  *Bounds    `json:"bounds,omitempty"`
	Warning string     `json:"warning,omitempty"`
}
