package geocoder_fx

import (
	"log"
	"os"

	"go.uber.org/fx"
	"wander/pkg/geocode"
)

var Module = fx.Provide(ProvideGeocoder)

// ProvideGeocoder builds the shared memoized geocoder. The cache is
// process-wide so repeated addresses across submissions never hit the
// external service twice.
func ProvideGeocoder() geocode.Geocoder {
	baseURL := os.Getenv("NOMINATIM_URL")
	if baseURL == "" {
		baseURL = geocode.DefaultBaseURL
	}

	log.Printf("Initializing geocoder against %s", baseURL)
	return geocode.NewCachedGeocoder(geocode.NewNominatimClient(baseURL))
}
