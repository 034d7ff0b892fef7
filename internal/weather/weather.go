package weather

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/maryamshk/Weather-bot-api/internal/config"
	"github.com/maryamshk/Weather-bot-api/internal/providers/openweathermap"
	"github.com/maryamshk/Weather-bot-api/internal/timezone"
	"github.com/maryamshk/Weather-bot-api/internal/types"
)

// DateLayout is the calendar date format used for requested and forecast dates
const DateLayout = "2006-01-02"

// ErrMalformedResponse is returned when a provider payload lacks fields the service needs
var ErrMalformedResponse = errors.New("malformed provider response")

// CurrentWeatherProvider fetches current conditions from the weather API
type CurrentWeatherProvider interface {
	// GetCurrentWeather fetches current conditions for the given latitude and longitude
	GetCurrentWeather(ctx context.Context, latitude, longitude float64) (*openweathermap.CurrentWeatherAPIResponse, error)
}

// LocationResolver maps coordinates to the zone used to split forecast data into local days
type LocationResolver interface {
	GetLocation(latitude, longitude float64) (*time.Location, error)
}

// Service answers current and forecast weather questions for coordinates
type Service interface {
	// GetCurrentWeather returns the conditions right now at coords
	GetCurrentWeather(ctx context.Context, coords types.Coords) (*types.CurrentWeather, error)
	// GetForecastDay returns the forecast for date (YYYY-MM-DD), or nil when the
	// date has no data within the provider's horizon
	GetForecastDay(ctx context.Context, coords types.Coords, date string) (*types.ForecastDay, error)
	// HorizonDays is how many days ahead forecasts are available
	HorizonDays() int
}

type weatherService struct {
	currentProvider  CurrentWeatherProvider
	forecastStrategy ForecastStrategy
	locationResolver LocationResolver
	logger           *slog.Logger
}

// NewWeatherService creates a weather service on client using the configured forecast strategy
func NewWeatherService(cfg *config.Config, client *openweathermap.Client, logger *slog.Logger) (Service, error) {
	strategy, err := NewForecastStrategy(cfg.Forecast.Strategy, client)
	if err != nil {
		return nil, err
	}

	tzSvc, err := timezone.NewService()
	if err != nil {
		return nil, fmt.Errorf("failed to create timezone service: %w", err)
	}

	return NewWeatherServiceWithProviders(client, strategy, tzSvc, logger), nil
}

// NewWeatherServiceWithProviders creates a weather service with custom providers
// This is useful for testing with mock providers
func NewWeatherServiceWithProviders(
	currentProvider CurrentWeatherProvider,
	forecastStrategy ForecastStrategy,
	locationResolver LocationResolver,
	logger *slog.Logger,
) Service {
	return &weatherService{
		currentProvider:  currentProvider,
		forecastStrategy: forecastStrategy,
		locationResolver: locationResolver,
		logger:           logger.With("component", "weather-service", "strategy", forecastStrategy.Name()),
	}
}

func (s *weatherService) HorizonDays() int {
	return s.forecastStrategy.HorizonDays()
}

func (s *weatherService) GetCurrentWeather(ctx context.Context, coords types.Coords) (*types.CurrentWeather, error) {
	apiResponse, err := s.currentProvider.GetCurrentWeather(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Debug("failed to get current weather from provider",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get current weather: %w", err)
	}

	current, err := mapCurrentWeather(apiResponse)
	if err != nil {
		s.logger.Debug("failed to map current weather", "error", err)
		return nil, err
	}

	return current, nil
}

func (s *weatherService) GetForecastDay(ctx context.Context, coords types.Coords, date string) (*types.ForecastDay, error) {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return nil, fmt.Errorf("invalid forecast date %q: %w", date, err)
	}

	loc := s.location(coords)

	day, err := s.forecastStrategy.ForecastDay(ctx, coords, date, loc)
	if err != nil {
		s.logger.Debug("failed to get forecast from provider",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"date", date,
			"error", err,
		)
		return nil, fmt.Errorf("failed to get forecast: %w", err)
	}

	if day == nil {
		s.logger.Debug("no forecast data for date",
			"date", date,
			"horizon_days", s.forecastStrategy.HorizonDays(),
		)
	}

	return day, nil
}

// location returns the zone for coords, falling back to UTC
func (s *weatherService) location(coords types.Coords) *time.Location {
	if s.locationResolver == nil {
		return time.UTC
	}

	loc, err := s.locationResolver.GetLocation(coords.Latitude, coords.Longitude)
	if err != nil {
		s.logger.Warn("failed to determine timezone, using UTC",
			"latitude", coords.Latitude,
			"longitude", coords.Longitude,
			"error", err,
		)
		return time.UTC
	}

	s.logger.Debug("determined timezone for location",
		"latitude", coords.Latitude,
		"longitude", coords.Longitude,
		"timezone", loc.String(),
	)

	return loc
}

func mapCurrentWeather(resp *openweathermap.CurrentWeatherAPIResponse) (*types.CurrentWeather, error) {
	if resp == nil {
		return nil, fmt.Errorf("%w: current weather response is nil", ErrMalformedResponse)
	}
	if len(resp.Weather) == 0 {
		return nil, fmt.Errorf("%w: current weather has no conditions", ErrMalformedResponse)
	}

	return &types.CurrentWeather{
		Temperature: resp.Main.Temp,
		FeelsLike:   resp.Main.FeelsLike,
		Description: resp.Weather[0].Description,
		Humidity:    resp.Main.Humidity,
		WindSpeed:   resp.Wind.Speed,
	}, nil
}
