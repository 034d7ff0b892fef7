package fulfillment

import (
	"context"
	"log/slog"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/maryamshk/Weather-bot-api/internal/geocoding"
	"github.com/maryamshk/Weather-bot-api/internal/types"
	"github.com/maryamshk/Weather-bot-api/internal/weather"
)

// Service turns a weather intent into the reply text sent back to the platform
type Service interface {
	// Fulfill always returns a user-facing reply; failures are logged and
	// replaced by fallback text
	Fulfill(ctx context.Context, intent IntentRequest) string
}

var tracer = otel.Tracer("github.com/maryamshk/Weather-bot-api/internal/fulfillment")

// Values of the fulfillment.outcome span attribute
const (
	outcomeMissingCity  = "missing_city"
	outcomeCityNotFound = "city_not_found"
	outcomeFailed       = "failed"
	outcomeAnswered     = "answered"
)

type fulfillmentService struct {
	geocoder geocoding.Service
	weather  weather.Service
	now      func() time.Time
	logger   *slog.Logger
}

// NewFulfillmentService creates a fulfillment service using the wall clock
func NewFulfillmentService(geocoder geocoding.Service, weatherSvc weather.Service, logger *slog.Logger) Service {
	return NewFulfillmentServiceWithClock(geocoder, weatherSvc, time.Now, logger)
}

// NewFulfillmentServiceWithClock creates a fulfillment service that reads the current time from now
func NewFulfillmentServiceWithClock(
	geocoder geocoding.Service,
	weatherSvc weather.Service,
	now func() time.Time,
	logger *slog.Logger,
) Service {
	return &fulfillmentService{
		geocoder: geocoder,
		weather:  weatherSvc,
		now:      now,
		logger:   logger.With("component", "fulfillment-service"),
	}
}

func (s *fulfillmentService) Fulfill(ctx context.Context, intent IntentRequest) string {
	ctx, span := tracer.Start(ctx, "fulfillment.Fulfill", trace.WithAttributes(
		attribute.String("weather.city", intent.City),
		attribute.String("weather.date", intent.Date),
	))
	defer span.End()

	if intent.City == "" {
		s.logger.Debug("no city in request")
		span.SetAttributes(attribute.String("fulfillment.outcome", outcomeMissingCity))
		return MissingCityText
	}

	coords, found := s.geocoder.Lookup(ctx, intent.City)
	if !found {
		span.SetAttributes(attribute.String("fulfillment.outcome", outcomeCityNotFound))
		return CityNotFoundText(intent.City)
	}

	reply, err := s.weatherReply(ctx, intent, coords)
	if err != nil {
		s.logger.Error("failed to get weather data",
			"city", intent.City,
			"date", intent.Date,
			"error", err,
		)
		span.RecordError(err)
		span.SetStatus(codes.Error, "weather lookup failed")
		span.SetAttributes(attribute.String("fulfillment.outcome", outcomeFailed))
		return ServiceTroubleText
	}

	span.SetAttributes(attribute.String("fulfillment.outcome", outcomeAnswered))
	return reply
}

// weatherReply picks the current or forecast branch and formats the result
func (s *fulfillmentService) weatherReply(ctx context.Context, intent IntentRequest, coords types.Coords) (string, error) {
	today := s.now().UTC().Format(weather.DateLayout)

	requestedDate := today
	if intent.Date != "" {
		date, err := NormalizeDate(intent.Date)
		if err != nil {
			return "", err
		}
		requestedDate = date
	}

	span := trace.SpanFromContext(ctx)
	span.SetAttributes(attribute.String("weather.requested_date", requestedDate))

	if requestedDate == today {
		span.SetAttributes(attribute.String("weather.branch", "current"))
		s.logger.Debug("fetching current weather", "city", intent.City, "coordinates", coords.String())

		current, err := s.weather.GetCurrentWeather(ctx, coords)
		if err != nil {
			return "", err
		}
		return FormatCurrentWeather(intent.City, current), nil
	}

	span.SetAttributes(attribute.String("weather.branch", "forecast"))
	s.logger.Debug("fetching forecast", "city", intent.City, "date", requestedDate, "coordinates", coords.String())

	day, err := s.weather.GetForecastDay(ctx, coords, requestedDate)
	if err != nil {
		return "", err
	}
	if day == nil {
		return NoForecastText(requestedDate, s.weather.HorizonDays()), nil
	}

	return FormatForecast(intent.City, day), nil
}
