package weather

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/maryamshk/Weather-bot-api/internal/providers/openweathermap"
	"github.com/maryamshk/Weather-bot-api/internal/types"
)

// Forecast strategy names accepted in configuration
const (
	StrategyList  = "list"
	StrategyDaily = "daily"
)

// Horizons of the OpenWeatherMap products behind each strategy
const (
	listHorizonDays  = 5
	dailyHorizonDays = 8
)

// ErrUnknownStrategy is returned for a forecast strategy name that is not supported
var ErrUnknownStrategy = errors.New("unknown forecast strategy")

// ForecastStrategy produces a single forecast day from one provider product.
// ForecastDay returns nil, nil when the provider has no data for date.
type ForecastStrategy interface {
	Name() string
	HorizonDays() int
	ForecastDay(ctx context.Context, coords types.Coords, date string, loc *time.Location) (*types.ForecastDay, error)
}

// ForecastListProvider fetches the 3-hour step forecast list
type ForecastListProvider interface {
	GetForecast(ctx context.Context, latitude, longitude float64) (*openweathermap.ForecastAPIResponse, error)
}

// DailyForecastProvider fetches the pre-aggregated daily forecast array
type DailyForecastProvider interface {
	GetDailyForecast(ctx context.Context, latitude, longitude float64) (*openweathermap.OneCallAPIResponse, error)
}

// ForecastProviders is satisfied by the OpenWeatherMap client
type ForecastProviders interface {
	ForecastListProvider
	DailyForecastProvider
}

// NewForecastStrategy returns the strategy registered under name
func NewForecastStrategy(name string, providers ForecastProviders) (ForecastStrategy, error) {
	switch name {
	case StrategyList, "":
		return NewListStrategy(providers), nil
	case StrategyDaily:
		return NewDailyStrategy(providers), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

type listStrategy struct {
	provider ForecastListProvider
}

// NewListStrategy aggregates the 3-hour forecast list into days
func NewListStrategy(provider ForecastListProvider) ForecastStrategy {
	return &listStrategy{provider: provider}
}

func (s *listStrategy) Name() string     { return StrategyList }
func (s *listStrategy) HorizonDays() int { return listHorizonDays }

func (s *listStrategy) ForecastDay(ctx context.Context, coords types.Coords, date string, loc *time.Location) (*types.ForecastDay, error) {
	resp, err := s.provider.GetForecast(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: forecast response is nil", ErrMalformedResponse)
	}

	return AggregateForecastList(resp.List, date, loc)
}

type dailyStrategy struct {
	provider DailyForecastProvider
}

// NewDailyStrategy reads days from the One Call daily array
func NewDailyStrategy(provider DailyForecastProvider) ForecastStrategy {
	return &dailyStrategy{provider: provider}
}

func (s *dailyStrategy) Name() string     { return StrategyDaily }
func (s *dailyStrategy) HorizonDays() int { return dailyHorizonDays }

func (s *dailyStrategy) ForecastDay(ctx context.Context, coords types.Coords, date string, loc *time.Location) (*types.ForecastDay, error) {
	resp, err := s.provider.GetDailyForecast(ctx, coords.Latitude, coords.Longitude)
	if err != nil {
		return nil, err
	}
	if resp == nil {
		return nil, fmt.Errorf("%w: daily forecast response is nil", ErrMalformedResponse)
	}

	return SelectDailyEntry(resp.Daily, date, loc)
}

// SelectDailyEntry picks the daily entry falling on date in loc.
// The provider already aggregates each day so values are copied as-is.
func SelectDailyEntry(daily []openweathermap.DailyEntry, date string, loc *time.Location) (*types.ForecastDay, error) {
	for _, entry := range daily {
		if localDate(entry.Dt, loc) != date {
			continue
		}
		if len(entry.Weather) == 0 {
			return nil, fmt.Errorf("%w: daily entry %d has no conditions", ErrMalformedResponse, entry.Dt)
		}

		night := round1(entry.Temp.Night)
		return &types.ForecastDay{
			Date:             date,
			DayTemperature:   round1(entry.Temp.Day),
			NightTemperature: &night,
			Description:      entry.Weather[0].Description,
			Humidity:         round1(entry.Humidity),
		}, nil
	}

	return nil, nil
}
