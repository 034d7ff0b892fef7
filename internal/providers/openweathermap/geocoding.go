package openweathermap

import (
	"context"
	"net/url"
)

// Geocode resolves a free-text location name using the direct geocoding API.
// The response holds at most one result; an empty slice means no match.
func (c *Client) Geocode(ctx context.Context, city string) ([]GeocodingResult, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("limit", "1")

	var results []GeocodingResult
	if err := c.get(ctx, geocodingPath, q, &results); err != nil {
		return nil, err
	}

	c.logger.Debug("successfully geocoded location",
		"city", city,
		"results", len(results),
	)

	return results, nil
}
