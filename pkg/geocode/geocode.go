package geocode

import "context"

// Point is a resolved latitude/longitude pair.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Geocoder resolves a free-text place description to coordinates.
// The second return is false when the query could not be resolved;
// lookup failures (timeout, unavailable service, no result) are all
// reported as a miss, never as an error.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (Point, bool)
}
