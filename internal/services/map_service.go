package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"wander/internal/models/response_models"
	"wander/pkg/geocode"
)

// Map themes offered to the user; anything unrecognized falls back to
// standard.
const (
	ThemeStandard = "Standard"
	ThemeDark     = "Dark Mode"
	ThemeTerrain  = "Terrain"
)

func MapThemes() []string {
	return []string{ThemeStandard, ThemeDark, ThemeTerrain}
}

var tileLayers = map[string]response_models.TileLayer{
	ThemeStandard: {
		Name:        "OpenStreetMap",
		URL:         "https://tile.openstreetmap.org/{z}/{x}/{y}.png",
		Attribution: "© OpenStreetMap contributors",
	},
	ThemeDark: {
		Name:        "CartoDB Dark Matter",
		URL:         "https://{s}.basemaps.cartocdn.com/dark_all/{z}/{x}/{y}.png",
		Attribution: "© OpenStreetMap contributors © CARTO",
	},
	ThemeTerrain: {
		Name:        "OpenTopoMap",
		URL:         "https://{s}.tile.opentopomap.org/{z}/{x}/{y}.png",
		Attribution: "© OpenStreetMap contributors, SRTM | © OpenTopoMap",
	},
}

// markerColors differentiate days; color cycles at the palette length
// for trips longer than the list.
var markerColors = []string{
	"blue", "green", "red", "purple", "orange", "darkred", "lightred",
	"beige", "darkblue", "darkgreen", "cadetblue", "darkpurple", "pink",
	"lightblue", "lightgreen", "gray", "black",
}

type MapServiceInterface interface {
	BuildMap(ctx context.Context, itinerary *response_models.Itinerary, destinationCity, theme string) response_models.MapView
}

type MapService struct {
	geocoder geocode.Geocoder
}

func NewMapService(geocoder geocode.Geocoder) MapServiceInterface {
	return &MapService{geocoder: geocoder}
}

// BuildMap places one marker per resolvable activity, color-coded by
// day, and frames the viewport around all markers. An activity whose
// addresses all fail to resolve contributes no marker but never aborts
// the rest of the itinerary.
func (s *MapService) BuildMap(ctx context.Context, itinerary *response_models.Itinerary, destinationCity, theme string) response_models.MapView {
	view := response_models.MapView{
		Tiles:  selectTiles(theme),
		Center: [2]float64{0, 0},
		Zoom:   2,
	}

	for _, day := range itinerary.Days {
		color := markerColors[colorIndex(day.Day)]

		for _, activity := range day.Activities {
			point, ok := s.resolveActivity(ctx, activity, destinationCity)
			if !ok {
				continue
			}

			view.Markers = append(view.Markers, response_models.Marker{
				Lat:       point.Lat,
				Lon:       point.Lon,
				Color:     color,
				PlaceName: activity.PlaceName,
				Popup: fmt.Sprintf("<b>%s</b><br>Day %d - %s<br>Cost: $%s",
					activity.PlaceName, day.Day, activity.Time, formatCost(activity.EstimatedCost)),
			})
		}
	}

	if len(view.Markers) == 0 {
		view.Warning = "Could not map the locations. The addresses provided by the AI might be too vague."
		return view
	}

	view.Bounds = markerBounds(view.Markers)
	return view
}

// resolveActivity tries the fallback chain in order: the AI-provided
// address, then "{place name}, {destination}", then the destination
// city alone. First success wins.
func (s *MapService) resolveActivity(ctx context.Context, activity response_models.Activity, destinationCity string) (geocode.Point, bool) {
	var queries []string
	if strings.TrimSpace(activity.Address) != "" {
		queries = append(queries, activity.Address)
	}
	if strings.TrimSpace(activity.PlaceName) != "" {
		queries = append(queries, fmt.Sprintf("%s, %s", activity.PlaceName, destinationCity))
	}
	queries = append(queries, destinationCity)

	for _, query := range queries {
		if point, ok := s.geocoder.Geocode(ctx, query); ok {
			return point, true
		}
	}
	return geocode.Point{}, false
}

func colorIndex(day int) int {
	idx := (day - 1) % len(markerColors)
	if idx < 0 {
		idx += len(markerColors)
	}
	return idx
}

func markerBounds(markers []response_models.Marker) *response_models.Bounds {
	bounds := &response_models.Bounds{
		SouthWest: [2]float64{markers[0].Lat, markers[0].Lon},
		NorthEast: [2]float64{markers[0].Lat, markers[0].Lon},
	}
	for _, m := range markers[1:] {
		if m.Lat < bounds.SouthWest[0] {
			bounds.SouthWest[0] = m.Lat
		}
		if m.Lon < bounds.SouthWest[1] {
			bounds.SouthWest[1] = m.Lon
		}
		if m.Lat > bounds.NorthEast[0] {
			bounds.NorthEast[0] = m.Lat
		}
		if m.Lon > bounds.NorthEast[1] {
			bounds.NorthEast[1] = m.Lon
		}
	}
	return bounds
}

func selectTiles(theme string) response_models.TileLayer {
	for name, layer := range tileLayers {
		if strings.EqualFold(name, theme) {
			return layer
		}
	}
	return tileLayers[ThemeStandard]
}

// formatCost renders a cost the way the model supplied it: whole
// numbers without a decimal point.
func formatCost(cost float64) string {
	return strconv.FormatFloat(cost, 'f', -1, 64)
}
