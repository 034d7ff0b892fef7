package openweathermap

import "context"

// GetCurrentWeather fetches current conditions in metric units
func (c *Client) GetCurrentWeather(ctx context.Context, latitude, longitude float64) (*CurrentWeatherAPIResponse, error) {
	var apiResp CurrentWeatherAPIResponse
	if err := c.get(ctx, currentPath, coordinateQuery(latitude, longitude), &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("successfully fetched current weather",
		"latitude", latitude,
		"longitude", longitude,
		"name", apiResp.Name,
	)

	return &apiResp, nil
}

// GetForecast fetches the 5 day / 3 hour forecast list in metric units
func (c *Client) GetForecast(ctx context.Context, latitude, longitude float64) (*ForecastAPIResponse, error) {
	var apiResp ForecastAPIResponse
	if err := c.get(ctx, forecastPath, coordinateQuery(latitude, longitude), &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("successfully fetched forecast list",
		"latitude", latitude,
		"longitude", longitude,
		"entries", len(apiResp.List),
	)

	return &apiResp, nil
}

// GetDailyForecast fetches the One Call daily array (up to 8 days) in metric units
func (c *Client) GetDailyForecast(ctx context.Context, latitude, longitude float64) (*OneCallAPIResponse, error) {
	q := coordinateQuery(latitude, longitude)
	q.Set("exclude", "current,minutely,hourly,alerts")

	var apiResp OneCallAPIResponse
	if err := c.get(ctx, oneCallPath, q, &apiResp); err != nil {
		return nil, err
	}

	c.logger.Debug("successfully fetched daily forecast",
		"latitude", latitude,
		"longitude", longitude,
		"days", len(apiResp.Daily),
	)

	return &apiResp, nil
}
