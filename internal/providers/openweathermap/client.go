package openweathermap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// API Docs: https://openweathermap.org/api
// Sample request: https://api.openweathermap.org/data/2.5/weather?lat=48.85&lon=2.35&appid={key}&units=metric
const (
	DefaultBaseURL = "https://api.openweathermap.org"
	defaultTimeout = 10 * time.Second

	geocodingPath = "/geo/1.0/direct"
	currentPath   = "/data/2.5/weather"
	forecastPath  = "/data/2.5/forecast"
	oneCallPath   = "/data/3.0/onecall"
)

// APIError is returned when OpenWeatherMap answers with a non-200 status
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("fetch returned status %d: %s", e.StatusCode, e.Body)
}

// Client calls the OpenWeatherMap REST API with a single API key
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *slog.Logger
}

// Option customises a Client
type Option func(*Client)

// WithBaseURL points the client at a different host, e.g. a test server
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the traced default http.Client
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout of the default http.Client
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.httpClient.Timeout = timeout
		}
	}
}

// NewClient creates a client with a traced http.Client and the default timeout
func NewClient(apiKey string, logger *slog.Logger, opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   defaultTimeout,
		},
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		logger:  logger.With("component", "openweathermap-client"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// get performs a GET on path with the given query, adding the credential, and
// decodes the JSON body into out
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	// Build URL with query parameters
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return fmt.Errorf("failed to parse base URL: %w", err)
	}
	u = u.JoinPath(path)

	q := u.Query()
	for key, values := range query {
		for _, value := range values {
			q.Add(key, value)
		}
	}

	// The key stays out of the logged URL
	c.logger.Debug("fetching OpenWeatherMap data", "url", u.String()+"?"+q.Encode())

	q.Set("appid", c.apiKey)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	// Make the HTTP request
	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = redactError(err, c.apiKey)
		c.logger.Error("failed to fetch OpenWeatherMap data",
			"path", path,
			"error", err,
		)
		return fmt.Errorf("failed to fetch: %w", err)
	}
	defer func(Body io.ReadCloser) {
		_ = Body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("OpenWeatherMap API returned error",
			"status_code", resp.StatusCode,
			"path", path,
			"response_body", string(body),
		)
		return &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	// Parse the JSON response
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.logger.Error("failed to decode OpenWeatherMap response",
			"path", path,
			"error", err,
		)
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

func coordinateQuery(latitude, longitude float64) url.Values {
	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%f", latitude))
	q.Set("lon", fmt.Sprintf("%f", longitude))
	q.Set("units", "metric")
	return q
}

// redactError strips the credential from the URL carried by transport errors
func redactError(err error, apiKey string) error {
	var urlErr *url.Error
	if apiKey == "" || !errors.As(err, &urlErr) {
		return err
	}
	return &url.Error{
		Op:  urlErr.Op,
		URL: strings.ReplaceAll(urlErr.URL, url.QueryEscape(apiKey), "REDACTED"),
		Err: urlErr.Err,
	}
}
