package map_fx

import (
	"go.uber.org/fx"
	"wander/internal/services"
	"wander/pkg/geocode"
)

var Module = fx.Provide(ProvideMapService)

func ProvideMapService(geocoder geocode.Geocoder) services.MapServiceInterface {
	return services.NewMapService(geocoder)
}
