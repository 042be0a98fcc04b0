package external

import (
	"context"
	"net/url"

	"golang.org/x/time/rate"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

// RateLimitedWeatherProvider wraps a WeatherProvider with rate limiting
type RateLimitedWeatherProvider struct {
	provider ports.WeatherProvider
	limiter  *rate.Limiter
}

// NewRateLimitedWeatherProvider creates a new rate limited weather provider.
// rps may be fractional, burst is the maximum burst size.
func NewRateLimitedWeatherProvider(provider ports.WeatherProvider, rps float64, burst int) ports.WeatherProvider {
	return &RateLimitedWeatherProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// GetWeather waits for limiter permission or context cancellation before forwarding
func (r *RateLimitedWeatherProvider) GetWeather(ctx context.Context, query ports.WeatherQuery) (*ports.WeatherReport, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, errors.NewExternalAPIError("weather provider rate limit wait canceled", err)
	}
	return r.provider.GetWeather(ctx, query)
}

func (r *RateLimitedWeatherProvider) GetProviderName() string {
	return r.provider.GetProviderName()
}

// RateLimitedRecommendationClient wraps a RecommendationClient with rate limiting
type RateLimitedRecommendationClient struct {
	client  ports.RecommendationClient
	limiter *rate.Limiter
}

// NewRateLimitedRecommendationClient creates a new rate limited recommendation client
func NewRateLimitedRecommendationClient(client ports.RecommendationClient, rps float64, burst int) ports.RecommendationClient {
	return &RateLimitedRecommendationClient{
		client:  client,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

// AuthenticatedRequest waits for limiter permission or context cancellation before forwarding
func (r *RateLimitedRecommendationClient) AuthenticatedRequest(ctx context.Context, method, endpoint string, query url.Values, out interface{}) error {
	if err := r.limiter.Wait(ctx); err != nil {
		return errors.NewExternalAPIError("recommendation client rate limit wait canceled", err)
	}
	return r.client.AuthenticatedRequest(ctx, method, endpoint, query, out)
}

func (r *RateLimitedRecommendationClient) GetProviderName() string {
	return r.client.GetProviderName()
}
