package geocoding

import (
	"context"
	"log/slog"
	"strings"

	"github.com/maryamshk/Weather-bot-api/internal/providers/openweathermap"
	"github.com/maryamshk/Weather-bot-api/internal/types"
)

// Provider resolves a location name to candidate matches
type Provider interface {
	Geocode(ctx context.Context, city string) ([]openweathermap.GeocodingResult, error)
}

// Service resolves city names to coordinates.
// Lookup failures of any kind are reported as "no result"; callers never see an error.
type Service interface {
	Lookup(ctx context.Context, city string) (types.Coords, bool)
}

type geocodingService struct {
	provider Provider
	logger   *slog.Logger
}

// NewGeocodingService creates a geocoding service backed by the given provider
func NewGeocodingService(provider Provider, logger *slog.Logger) Service {
	return &geocodingService{
		provider: provider,
		logger:   logger.With("component", "geocoding-service"),
	}
}

func (s *geocodingService) Lookup(ctx context.Context, city string) (types.Coords, bool) {
	city = strings.TrimSpace(city)
	if city == "" {
		return types.Coords{}, false
	}

	results, err := s.provider.Geocode(ctx, city)
	if err != nil {
		s.logger.Error("geocoding failed, treating as not found",
			"city", city,
			"error", err,
		)
		return types.Coords{}, false
	}

	if len(results) == 0 {
		s.logger.Info("no geocoding match", "city", city)
		return types.Coords{}, false
	}

	coords := types.NewCoords(results[0].Lat, results[0].Lon)
	s.logger.Debug("resolved city",
		"city", city,
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
	)

	return coords, true
}
