package external

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"weatherplaylist.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetWeather wraps the provider call with structured logging
func (d *WeatherProviderLoggingDecorator) GetWeather(ctx context.Context, query ports.WeatherQuery) (*ports.WeatherReport, error) {
	providerName := d.provider.GetProviderName()
	location := describeLocation(query.Location)

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("location", location),
		ports.F("event", "request"))

	startTime := time.Now()
	report, err := d.provider.GetWeather(ctx, query)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("location", location),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("location", location),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("temperature", report.Temperature.Now.Value),
		ports.F("humidity", report.Humidity),
		ports.F("description", report.Description))

	return report, nil
}

// GetProviderName returns the name of the wrapped provider with logging indication
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return "logged(" + d.provider.GetProviderName() + ")"
}

// RecommendationClientLoggingDecorator decorates the recommendation client with structured logging
type RecommendationClientLoggingDecorator struct {
	client ports.RecommendationClient
	logger ports.Logger
}

// NewRecommendationClientLoggingDecorator creates a new logging decorator for the recommendation client
func NewRecommendationClientLoggingDecorator(client ports.RecommendationClient, logger ports.Logger) ports.RecommendationClient {
	return &RecommendationClientLoggingDecorator{
		client: client,
		logger: logger,
	}
}

// AuthenticatedRequest wraps the client call with structured logging
func (d *RecommendationClientLoggingDecorator) AuthenticatedRequest(ctx context.Context, method, endpoint string, query url.Values, out interface{}) error {
	providerName := d.client.GetProviderName()
	encodedQuery := query.Encode()

	d.logger.Info("Recommendation API request started",
		ports.F("provider", providerName),
		ports.F("method", method),
		ports.F("endpoint", endpoint),
		ports.F("query", encodedQuery),
		ports.F("event", "request"))

	startTime := time.Now()
	err := d.client.AuthenticatedRequest(ctx, method, endpoint, query, out)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Recommendation API request failed",
			ports.F("provider", providerName),
			ports.F("endpoint", endpoint),
			ports.F("query", encodedQuery),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return err
	}

	d.logger.Info("Recommendation API request completed",
		ports.F("provider", providerName),
		ports.F("endpoint", endpoint),
		ports.F("query", encodedQuery),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()))

	return nil
}

// GetProviderName returns the name of the wrapped client with logging indication
func (d *RecommendationClientLoggingDecorator) GetProviderName() string {
	return "logged(" + d.client.GetProviderName() + ")"
}

func describeLocation(location ports.WeatherLocation) string {
	if location.Coordinates != nil {
		return strconv.FormatFloat(location.Coordinates.Latitude, 'f', -1, 64) + "," +
			strconv.FormatFloat(location.Coordinates.Longitude, 'f', -1, 64)
	}
	return location.CityName
}
