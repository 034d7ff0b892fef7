package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/maryamshk/Weather-bot-api/internal/config"
	"github.com/maryamshk/Weather-bot-api/internal/fulfillment"
	"github.com/maryamshk/Weather-bot-api/internal/geocoding"
	"github.com/maryamshk/Weather-bot-api/internal/middleware"
	"github.com/maryamshk/Weather-bot-api/internal/providers/openweathermap"
	"github.com/maryamshk/Weather-bot-api/internal/weather"

	_ "github.com/maryamshk/Weather-bot-api/docs" // Ensure docs are imported
)

const (
	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// App encapsulates application dependencies
type App struct {
	router             *gin.Engine
	logger             *slog.Logger
	fulfillmentService fulfillment.Service
	weatherService     weather.Service
	cfg                *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// One client, and one connection pool, for every OpenWeatherMap endpoint
	client := openweathermap.NewClient(cfg.OpenWeatherMap.APIKey, logger,
		openweathermap.WithBaseURL(cfg.OpenWeatherMap.BaseURL),
		openweathermap.WithTimeout(cfg.OpenWeatherMap.Timeout),
	)

	// Initialize weather service
	weatherSvc, err := weather.NewWeatherService(cfg, client, logger)
	if err != nil {
		return nil, err
	}

	geocoder := geocoding.NewGeocodingService(client, logger)

	fulfillmentSvc := fulfillment.NewFulfillmentService(geocoder, weatherSvc, logger)

	return NewAppWithServices(cfg, logger, fulfillmentSvc, weatherSvc), nil
}

// NewAppWithServices creates an application around existing fulfillment and weather services
func NewAppWithServices(
	cfg *config.Config,
	logger *slog.Logger,
	fulfillmentSvc fulfillment.Service,
	weatherSvc weather.Service,
) *App {
	// Set Gin mode from configuration
	mode := cfg.Server.GinMode
	if mode == "" {
		mode = gin.ReleaseMode
	}
	gin.SetMode(mode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(logger),
	)

	app := &App{
		router:             router,
		logger:             logger,
		fulfillmentService: fulfillmentSvc,
		weatherService:     weatherSvc,
		cfg:                cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Handler returns the router wrapped with inbound tracing
func (app *App) Handler() http.Handler {
	return otelhttp.NewHandler(app.router, "weather-webhook",
		otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
			return r.Method + " " + r.URL.Path
		}),
	)
}

// Run starts the HTTP server and blocks until it fails or ctx is cancelled,
// in which case in-flight requests are drained before returning
func (app *App) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           app.Handler(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	app.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
