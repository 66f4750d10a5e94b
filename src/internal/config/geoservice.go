package config

import (
	"github.com/spf13/viper"
	"googlemaps.github.io/maps"
)

type GeoService struct {
	Client *maps.Client
}

// NewGeoService builds the Google Maps client used to geocode service
// request addresses when a visit is scheduled. Geocoding is optional:
// without an API key requests are scheduled with empty coordinates.
func NewGeoService(viper *viper.Viper) (*GeoService, error) {
	apiKey := viper.GetString("thirdparty.google.api_key")
	if apiKey == "" {
		return nil, nil
	}

	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, err
	}
	return &GeoService{Client: client}, nil
}
