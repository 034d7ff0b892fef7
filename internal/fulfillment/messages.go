package fulfillment

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maryamshk/Weather-bot-api/internal/types"
)

// Fixed replies for requests that cannot be answered with weather data
const (
	MissingCityText    = "I need to know which city you're asking about!"
	ServiceTroubleText = "Sorry, I'm having trouble getting weather data. Please try again later."
)

// CityNotFoundText is the reply when geocoding finds no match for city
func CityNotFoundText(city string) string {
	return fmt.Sprintf("Sorry, I couldn't find %s. Please check the spelling.", city)
}

// NoForecastText is the reply for a date outside the forecast horizon
func NoForecastText(date string, horizonDays int) string {
	return fmt.Sprintf("No forecast available for %s. I can only provide forecasts up to %d days ahead.", date, horizonDays)
}

// FormatCurrentWeather renders current conditions with numbers in shortest form
func FormatCurrentWeather(city string, current *types.CurrentWeather) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Current weather in %s:\n", city)
	fmt.Fprintf(&b, "- Temperature: %s°C\n", shortFloat(current.Temperature))
	fmt.Fprintf(&b, "- Feels like: %s°C\n", shortFloat(current.FeelsLike))
	fmt.Fprintf(&b, "- Conditions: %s\n", current.Description)
	fmt.Fprintf(&b, "- Humidity: %s%%\n", shortFloat(current.Humidity))
	fmt.Fprintf(&b, "- Wind: %s m/s", shortFloat(current.WindSpeed))
	return b.String()
}

// FormatForecast renders a forecast day with one decimal, or N/A for a missing night temperature
func FormatForecast(city string, day *types.ForecastDay) string {
	night := "N/A"
	if day.HasNightTemperature() {
		night = fmt.Sprintf("%.1f°C", *day.NightTemperature)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Forecast for %s on %s:\n", city, day.Date)
	fmt.Fprintf(&b, "- Day Temperature: %.1f°C\n", day.DayTemperature)
	fmt.Fprintf(&b, "- Night Temperature: %s\n", night)
	fmt.Fprintf(&b, "- Conditions: %s\n", day.Description)
	fmt.Fprintf(&b, "- Humidity: %.1f%%", day.Humidity)
	return b.String()
}

// shortFloat prints v with as few digits as needed (14, 15.2)
func shortFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
