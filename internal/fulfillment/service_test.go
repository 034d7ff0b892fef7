package fulfillment

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/maryamshk/Weather-bot-api/internal/types"
)

type mockGeocoder struct {
	coords types.Coords
	found  bool
	calls  int
}

func (m *mockGeocoder) Lookup(ctx context.Context, city string) (types.Coords, bool) {
	m.calls++
	return m.coords, m.found
}

type mockWeather struct {
	current      *types.CurrentWeather
	currentErr   error
	forecast     *types.ForecastDay
	forecastErr  error
	horizon      int
	currentCalls int
	forecastDate string
	forecastHits int
}

func (m *mockWeather) GetCurrentWeather(ctx context.Context, coords types.Coords) (*types.CurrentWeather, error) {
	m.currentCalls++
	return m.current, m.currentErr
}

func (m *mockWeather) GetForecastDay(ctx context.Context, coords types.Coords, date string) (*types.ForecastDay, error) {
	m.forecastHits++
	m.forecastDate = date
	return m.forecast, m.forecastErr
}

func (m *mockWeather) HorizonDays() int {
	return m.horizon
}

// fixedNow is 2025-06-10 15:00 UTC
func fixedNow() time.Time {
	return time.Date(2025, time.June, 10, 15, 0, 0, 0, time.UTC)
}

func parisWeather() *types.CurrentWeather {
	return &types.CurrentWeather{
		Temperature: 15.2,
		FeelsLike:   14.0,
		Description: "clear sky",
		Humidity:    60,
		WindSpeed:   3.1,
	}
}

func newTestService(geocoder *mockGeocoder, weatherSvc *mockWeather) Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewFulfillmentServiceWithClock(geocoder, weatherSvc, fixedNow, logger)
}

func TestFulfill_MissingCity(t *testing.T) {
	geocoder := &mockGeocoder{found: true}
	weatherSvc := &mockWeather{current: parisWeather()}
	service := newTestService(geocoder, weatherSvc)

	for _, intent := range []IntentRequest{{}, {Date: "2025-06-11"}} {
		got := service.Fulfill(context.Background(), intent)
		if got != MissingCityText {
			t.Errorf("Fulfill(%+v) = %q, want %q", intent, got, MissingCityText)
		}
	}

	if geocoder.calls != 0 || weatherSvc.currentCalls != 0 || weatherSvc.forecastHits != 0 {
		t.Errorf("external calls made: geocoder=%d current=%d forecast=%d",
			geocoder.calls, weatherSvc.currentCalls, weatherSvc.forecastHits)
	}
}

func TestFulfill_CityNotFound(t *testing.T) {
	weatherSvc := &mockWeather{current: parisWeather()}
	service := newTestService(&mockGeocoder{found: false}, weatherSvc)

	got := service.Fulfill(context.Background(), IntentRequest{City: "Atlantis"})

	if got != "Sorry, I couldn't find Atlantis. Please check the spelling." {
		t.Errorf("Fulfill() = %q", got)
	}
	if weatherSvc.currentCalls+weatherSvc.forecastHits != 0 {
		t.Error("weather service called for unknown city")
	}
}

func TestFulfill_CurrentWeatherBranch(t *testing.T) {
	tests := []struct {
		name string
		date string
	}{
		{name: "no date", date: ""},
		{name: "today as date", date: "2025-06-10"},
		{name: "today as timestamp", date: "2025-06-10T18:00:00+02:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			weatherSvc := &mockWeather{current: parisWeather(), horizon: 5}
			service := newTestService(&mockGeocoder{coords: types.NewCoords(48.85, 2.35), found: true}, weatherSvc)

			got := service.Fulfill(context.Background(), IntentRequest{City: "Paris", Date: tt.date})

			if weatherSvc.currentCalls != 1 || weatherSvc.forecastHits != 0 {
				t.Fatalf("current calls = %d, forecast calls = %d", weatherSvc.currentCalls, weatherSvc.forecastHits)
			}
			if !strings.Contains(got, "Current weather in Paris") {
				t.Errorf("Fulfill() = %q, missing heading", got)
			}
			for _, value := range []string{"15.2", "14", "clear sky", "60", "3.1"} {
				if !strings.Contains(got, value) {
					t.Errorf("Fulfill() = %q, missing %q", got, value)
				}
			}
		})
	}
}

func TestFulfill_ForecastBranch(t *testing.T) {
	night := 11.4
	weatherSvc := &mockWeather{
		forecast: &types.ForecastDay{
			Date:             "2025-06-12",
			DayTemperature:   17.8,
			NightTemperature: &night,
			Description:      "light rain",
			Humidity:         72.5,
		},
		horizon: 5,
	}
	service := newTestService(&mockGeocoder{found: true}, weatherSvc)

	got := service.Fulfill(context.Background(), IntentRequest{City: "Paris", Date: "2025-06-12T12:00:00+02:00"})

	if weatherSvc.currentCalls != 0 || weatherSvc.forecastHits != 1 {
		t.Fatalf("current calls = %d, forecast calls = %d", weatherSvc.currentCalls, weatherSvc.forecastHits)
	}
	if weatherSvc.forecastDate != "2025-06-12" {
		t.Errorf("forecast requested for %q, want 2025-06-12", weatherSvc.forecastDate)
	}

	want := "Forecast for Paris on 2025-06-12:\n" +
		"- Day Temperature: 17.8°C\n" +
		"- Night Temperature: 11.4°C\n" +
		"- Conditions: light rain\n" +
		"- Humidity: 72.5%"
	if got != want {
		t.Errorf("Fulfill() =\n%s\nwant\n%s", got, want)
	}
}

func TestFulfill_PastDateUsesForecastBranch(t *testing.T) {
	weatherSvc := &mockWeather{horizon: 5}
	service := newTestService(&mockGeocoder{found: true}, weatherSvc)

	got := service.Fulfill(context.Background(), IntentRequest{City: "Paris", Date: "2025-06-09"})

	if weatherSvc.forecastHits != 1 {
		t.Errorf("forecast calls = %d, want 1", weatherSvc.forecastHits)
	}
	if got != NoForecastText("2025-06-09", 5) {
		t.Errorf("Fulfill() = %q", got)
	}
}

func TestFulfill_BeyondHorizon(t *testing.T) {
	for _, horizon := range []int{5, 8} {
		weatherSvc := &mockWeather{horizon: horizon}
		service := newTestService(&mockGeocoder{found: true}, weatherSvc)

		got := service.Fulfill(context.Background(), IntentRequest{City: "Paris", Date: "2025-06-20"})

		want := NoForecastText("2025-06-20", horizon)
		if got != want {
			t.Errorf("Fulfill() = %q, want %q", got, want)
		}
		if strings.Contains(got, "°C") || strings.Contains(got, "%") {
			t.Errorf("Fulfill() = %q, contains weather values", got)
		}
	}
}

func TestFulfill_WeatherFailures(t *testing.T) {
	tests := []struct {
		name    string
		date    string
		weather *mockWeather
	}{
		{
			name:    "current weather error",
			weather: &mockWeather{currentErr: errors.New("dial tcp: i/o timeout")},
		},
		{
			name:    "forecast error",
			date:    "2025-06-12",
			weather: &mockWeather{forecastErr: errors.New("failed to decode response: unexpected EOF")},
		},
		{
			name:    "unparseable date",
			date:    "someday",
			weather: &mockWeather{current: parisWeather()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService(&mockGeocoder{found: true}, tt.weather)

			got := service.Fulfill(context.Background(), IntentRequest{City: "Paris", Date: tt.date})

			if got != ServiceTroubleText {
				t.Errorf("Fulfill() = %q, want %q", got, ServiceTroubleText)
			}
		})
	}
}

func TestFulfill_Idempotent(t *testing.T) {
	night := 8.0
	weatherSvc := &mockWeather{
		current:  parisWeather(),
		forecast: &types.ForecastDay{Date: "2025-06-11", DayTemperature: 12, NightTemperature: &night, Description: "mist", Humidity: 90},
		horizon:  5,
	}
	service := newTestService(&mockGeocoder{found: true}, weatherSvc)

	for _, intent := range []IntentRequest{
		{City: "Paris"},
		{City: "Paris", Date: "2025-06-11"},
	} {
		first := service.Fulfill(context.Background(), intent)
		second := service.Fulfill(context.Background(), intent)
		if first != second {
			t.Errorf("Fulfill(%+v) not stable:\n%q\n%q", intent, first, second)
		}
	}
}
