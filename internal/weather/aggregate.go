package weather

import (
	"fmt"
	"math"
	"time"

	"github.com/maryamshk/Weather-bot-api/internal/providers/openweathermap"
	"github.com/maryamshk/Weather-bot-api/internal/types"
)

// Hours bounding the night window: entries before nightEndsHour or after
// nightStartsHour count towards the night temperature
const (
	nightEndsHour   = 6
	nightStartsHour = 18
)

// AggregateForecastList folds the 3-hour entries that fall on date (in loc)
// into a single ForecastDay. It returns nil when no entry matches.
func AggregateForecastList(entries []openweathermap.ForecastEntry, date string, loc *time.Location) (*types.ForecastDay, error) {
	var (
		temps        []float64
		nightTemps   []float64
		humidities   []float64
		descriptions []string
	)

	for _, entry := range entries {
		at := time.Unix(entry.Dt, 0).In(loc)
		if at.Format(DateLayout) != date {
			continue
		}
		if len(entry.Weather) == 0 {
			return nil, fmt.Errorf("%w: forecast entry %d has no conditions", ErrMalformedResponse, entry.Dt)
		}

		temps = append(temps, entry.Main.Temp)
		humidities = append(humidities, entry.Main.Humidity)
		descriptions = append(descriptions, entry.Weather[0].Description)

		if hour := at.Hour(); hour < nightEndsHour || hour > nightStartsHour {
			nightTemps = append(nightTemps, entry.Main.Temp)
		}
	}

	if len(temps) == 0 {
		return nil, nil
	}

	day := &types.ForecastDay{
		Date:           date,
		DayTemperature: round1(mean(temps)),
		Description:    mostFrequent(descriptions),
		Humidity:       round1(mean(humidities)),
	}
	if len(nightTemps) > 0 {
		night := round1(mean(nightTemps))
		day.NightTemperature = &night
	}

	return day, nil
}

// mostFrequent returns the value with the highest count; ties go to the value seen first
func mostFrequent(values []string) string {
	counts := make(map[string]int, len(values))
	best, bestCount := "", 0
	for _, v := range values {
		counts[v]++
	}
	for _, v := range values {
		if counts[v] > bestCount {
			best, bestCount = v, counts[v]
		}
	}
	return best
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// round1 rounds to one decimal place
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

func localDate(unix int64, loc *time.Location) string {
	return time.Unix(unix, 0).In(loc).Format(DateLayout)
}
