package types

// CurrentWeather holds the conditions reported for "now" at a location.
// Temperatures are in Celsius, wind speed in metres per second.
type CurrentWeather struct {
	Temperature float64
	FeelsLike   float64
	Description string
	Humidity    float64
	WindSpeed   float64
}

// ForecastDay summarises a single calendar date of forecast data
type ForecastDay struct {
	Date           string // YYYY-MM-DD
	DayTemperature float64
	// NightTemperature is nil when the provider data has no night-time values for the date
	NightTemperature *float64
	Description      string
	Humidity         float64
}

// HasNightTemperature reports whether a night temperature is available
func (f ForecastDay) HasNightTemperature() bool {
	return f.NightTemperature != nil
}
