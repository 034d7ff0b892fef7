package fulfillment

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/maryamshk/Weather-bot-api/internal/weather"
)

// ErrInvalidDate is returned when the date parameter cannot be read as a date
var ErrInvalidDate = errors.New("invalid date parameter")

var (
	cityKeys = []string{"city", "geo-city"}
	dateKeys = []string{"date", "date-time"}

	// Fields of structured parameter values, in order of preference
	objectFields = []string{"date_time", "startDateTime", "startDate", "city"}

	dateLayouts = []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		weather.DateLayout,
	}
)

// ParseIntent extracts the city and date parameters from a webhook request.
// The first non-empty value wins: city before geo-city, date before date-time.
func ParseIntent(req WebhookRequest) IntentRequest {
	params := req.QueryResult.Parameters
	return IntentRequest{
		City: firstParam(params, cityKeys),
		Date: firstParam(params, dateKeys),
	}
}

func firstParam(params map[string]any, keys []string) string {
	for _, key := range keys {
		if value := paramString(params[key]); value != "" {
			return value
		}
	}
	return ""
}

// paramString flattens a Dialogflow parameter value to a string.
// Structured values (date periods, locations) and lists yield their first usable field.
func paramString(value any) string {
	switch v := value.(type) {
	case string:
		return strings.TrimSpace(v)
	case map[string]any:
		for _, field := range objectFields {
			if s := paramString(v[field]); s != "" {
				return s
			}
		}
	case []any:
		for _, item := range v {
			if s := paramString(item); s != "" {
				return s
			}
		}
	}
	return ""
}

// NormalizeDate converts a date parameter to its UTC calendar date (YYYY-MM-DD).
// Timestamps with an offset are converted to UTC first; values without one are read as UTC.
func NormalizeDate(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC().Format(weather.DateLayout), nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidDate, raw)
}
