package weather

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/maryamshk/Weather-bot-api/internal/providers/openweathermap"
	"github.com/maryamshk/Weather-bot-api/internal/types"
)

type mockCurrentProvider struct {
	response *openweathermap.CurrentWeatherAPIResponse
	err      error
}

func (m *mockCurrentProvider) GetCurrentWeather(ctx context.Context, latitude, longitude float64) (*openweathermap.CurrentWeatherAPIResponse, error) {
	return m.response, m.err
}

type mockLocationResolver struct {
	loc *time.Location
	err error
}

func (m *mockLocationResolver) GetLocation(latitude, longitude float64) (*time.Location, error) {
	return m.loc, m.err
}

type recordingStrategy struct {
	day     *types.ForecastDay
	err     error
	gotDate string
	gotLoc  *time.Location
	calls   int
}

func (r *recordingStrategy) Name() string     { return "recording" }
func (r *recordingStrategy) HorizonDays() int { return 3 }

func (r *recordingStrategy) ForecastDay(ctx context.Context, coords types.Coords, date string, loc *time.Location) (*types.ForecastDay, error) {
	r.calls++
	r.gotDate = date
	r.gotLoc = loc
	return r.day, r.err
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func parisCurrent() *openweathermap.CurrentWeatherAPIResponse {
	resp := &openweathermap.CurrentWeatherAPIResponse{
		Weather: []openweathermap.Condition{{Description: "clear sky"}},
		Main:    openweathermap.MainReadings{Temp: 15.2, FeelsLike: 14.0, Humidity: 60},
		Wind:    openweathermap.WindReadings{Speed: 3.1},
	}
	return resp
}

func TestWeatherService_GetCurrentWeather(t *testing.T) {
	tests := []struct {
		name        string
		response    *openweathermap.CurrentWeatherAPIResponse
		err         error
		wantErr     bool
		errContains string
		want        *types.CurrentWeather
	}{
		{
			name:     "maps provider response",
			response: parisCurrent(),
			want: &types.CurrentWeather{
				Temperature: 15.2,
				FeelsLike:   14.0,
				Description: "clear sky",
				Humidity:    60,
				WindSpeed:   3.1,
			},
		},
		{
			name:        "provider error is returned",
			err:         errors.New("connection reset"),
			wantErr:     true,
			errContains: "failed to get current weather",
		},
		{
			name:        "missing conditions",
			response:    &openweathermap.CurrentWeatherAPIResponse{},
			wantErr:     true,
			errContains: "no conditions",
		},
		{
			name:        "nil response",
			response:    nil,
			wantErr:     true,
			errContains: "response is nil",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewWeatherServiceWithProviders(
				&mockCurrentProvider{response: tt.response, err: tt.err},
				&recordingStrategy{},
				nil,
				discardLogger(),
			)

			got, err := service.GetCurrentWeather(context.Background(), types.NewCoords(48.85, 2.35))

			if tt.wantErr {
				if err == nil {
					t.Fatal("GetCurrentWeather() expected error but got none")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("GetCurrentWeather() error = %v, want error containing %v", err, tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("GetCurrentWeather() unexpected error = %v", err)
			}
			if *got != *tt.want {
				t.Errorf("GetCurrentWeather() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestWeatherService_GetForecastDay(t *testing.T) {
	tokyo := mustLoad("Asia/Tokyo")
	night := 9.5
	day := &types.ForecastDay{Date: "2025-06-11", DayTemperature: 14, NightTemperature: &night, Description: "mist", Humidity: 80}

	t.Run("passes the resolved location to the strategy", func(t *testing.T) {
		strategy := &recordingStrategy{day: day}
		service := NewWeatherServiceWithProviders(&mockCurrentProvider{}, strategy, &mockLocationResolver{loc: tokyo}, discardLogger())

		got, err := service.GetForecastDay(context.Background(), types.Coords{}, "2025-06-11")
		if err != nil {
			t.Fatalf("GetForecastDay() unexpected error = %v", err)
		}
		if got != day {
			t.Errorf("GetForecastDay() = %+v, want %+v", got, day)
		}
		if strategy.gotLoc != tokyo {
			t.Errorf("strategy location = %v, want %v", strategy.gotLoc, tokyo)
		}
		if strategy.gotDate != "2025-06-11" {
			t.Errorf("strategy date = %q", strategy.gotDate)
		}
	})

	t.Run("falls back to UTC when timezone lookup fails", func(t *testing.T) {
		strategy := &recordingStrategy{day: day}
		resolver := &mockLocationResolver{err: errors.New("ocean")}
		service := NewWeatherServiceWithProviders(&mockCurrentProvider{}, strategy, resolver, discardLogger())

		if _, err := service.GetForecastDay(context.Background(), types.Coords{}, "2025-06-11"); err != nil {
			t.Fatalf("GetForecastDay() unexpected error = %v", err)
		}
		if strategy.gotLoc != time.UTC {
			t.Errorf("strategy location = %v, want UTC", strategy.gotLoc)
		}
	})

	t.Run("no data is not an error", func(t *testing.T) {
		service := NewWeatherServiceWithProviders(&mockCurrentProvider{}, &recordingStrategy{}, nil, discardLogger())

		got, err := service.GetForecastDay(context.Background(), types.Coords{}, "2025-07-30")
		if err != nil {
			t.Fatalf("GetForecastDay() unexpected error = %v", err)
		}
		if got != nil {
			t.Errorf("GetForecastDay() = %+v, want nil", got)
		}
	})

	t.Run("strategy error is wrapped", func(t *testing.T) {
		strategyErr := &openweathermap.APIError{StatusCode: 500, Body: "boom"}
		service := NewWeatherServiceWithProviders(&mockCurrentProvider{}, &recordingStrategy{err: strategyErr}, nil, discardLogger())

		_, err := service.GetForecastDay(context.Background(), types.Coords{}, "2025-06-11")
		var apiErr *openweathermap.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("GetForecastDay() error = %v, want APIError", err)
		}
		if !strings.Contains(err.Error(), "failed to get forecast") {
			t.Errorf("GetForecastDay() error = %v", err)
		}
	})

	t.Run("invalid date never reaches the strategy", func(t *testing.T) {
		strategy := &recordingStrategy{}
		service := NewWeatherServiceWithProviders(&mockCurrentProvider{}, strategy, nil, discardLogger())

		if _, err := service.GetForecastDay(context.Background(), types.Coords{}, "11/06/2025"); err == nil {
			t.Fatal("GetForecastDay() expected error for invalid date")
		}
		if strategy.calls != 0 {
			t.Errorf("strategy calls = %d, want 0", strategy.calls)
		}
	})
}

func TestWeatherService_HorizonDays(t *testing.T) {
	service := NewWeatherServiceWithProviders(&mockCurrentProvider{}, NewDailyStrategy(&mockForecastProviders{}), nil, discardLogger())
	if got := service.HorizonDays(); got != 8 {
		t.Errorf("HorizonDays() = %d, want 8", got)
	}
}

// Provider failures are reported once, at the fulfillment boundary; the service only adds debug context
func TestWeatherService_FailuresNotLoggedAsErrors(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	upstream := &openweathermap.APIError{StatusCode: 500, Body: "boom"}

	service := NewWeatherServiceWithProviders(
		&mockCurrentProvider{err: upstream},
		&recordingStrategy{err: upstream},
		nil,
		logger,
	)

	if _, err := service.GetCurrentWeather(context.Background(), types.Coords{}); err == nil {
		t.Fatal("GetCurrentWeather() expected error")
	}
	if _, err := service.GetForecastDay(context.Background(), types.Coords{}, "2025-06-11"); err == nil {
		t.Fatal("GetForecastDay() expected error")
	}

	logs := buf.String()
	if strings.Contains(logs, "level=ERROR") {
		t.Errorf("weather service logged at error level:\n%s", logs)
	}
	if !strings.Contains(logs, "failed to get current weather from provider") {
		t.Errorf("missing debug line for current weather failure:\n%s", logs)
	}
	if !strings.Contains(logs, "failed to get forecast from provider") {
		t.Errorf("missing debug line for forecast failure:\n%s", logs)
	}
}
