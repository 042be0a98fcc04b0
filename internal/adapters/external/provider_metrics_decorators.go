package external

import (
	"context"
	"net/url"
	"time"

	"weatherplaylist.app/internal/ports"
)

// InstrumentedWeatherProvider records the outcome and latency of every provider call
type InstrumentedWeatherProvider struct {
	provider ports.WeatherProvider
	metrics  ports.MetricsCollector
}

func NewInstrumentedWeatherProvider(provider ports.WeatherProvider, metrics ports.MetricsCollector) ports.WeatherProvider {
	return &InstrumentedWeatherProvider{provider: provider, metrics: metrics}
}

func (p *InstrumentedWeatherProvider) GetWeather(ctx context.Context, query ports.WeatherQuery) (*ports.WeatherReport, error) {
	start := time.Now()
	report, err := p.provider.GetWeather(ctx, query)
	p.metrics.RecordProviderCall(ctx, p.provider.GetProviderName(), err == nil, time.Since(start))
	return report, err
}

func (p *InstrumentedWeatherProvider) GetProviderName() string {
	return p.provider.GetProviderName()
}

// InstrumentedRecommendationClient records the outcome and latency of every recommendation call
type InstrumentedRecommendationClient struct {
	client  ports.RecommendationClient
	metrics ports.MetricsCollector
}

func NewInstrumentedRecommendationClient(client ports.RecommendationClient, metrics ports.MetricsCollector) ports.RecommendationClient {
	return &InstrumentedRecommendationClient{client: client, metrics: metrics}
}

func (c *InstrumentedRecommendationClient) AuthenticatedRequest(ctx context.Context, method, endpoint string, query url.Values, out interface{}) error {
	start := time.Now()
	err := c.client.AuthenticatedRequest(ctx, method, endpoint, query, out)
	c.metrics.RecordProviderCall(ctx, c.client.GetProviderName(), err == nil, time.Since(start))
	return err
}

func (c *InstrumentedRecommendationClient) GetProviderName() string {
	return c.client.GetProviderName()
}
