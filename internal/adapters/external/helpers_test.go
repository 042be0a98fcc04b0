package external

import (
	"context"
	"net/url"
	"sync"

	"weatherplaylist.app/internal/ports"
)

type logEntry struct {
	level   string
	message string
	fields  map[string]interface{}
}

type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

func (l *testLogger) Debug(msg string, fields ...ports.Field) {
	l.addEntry("DEBUG", msg, fields...)
}

func (l *testLogger) Info(msg string, fields ...ports.Field) {
	l.addEntry("INFO", msg, fields...)
}

func (l *testLogger) Warn(msg string, fields ...ports.Field) {
	l.addEntry("WARN", msg, fields...)
}

func (l *testLogger) Error(msg string, fields ...ports.Field) {
	l.addEntry("ERROR", msg, fields...)
}

func (l *testLogger) addEntry(level, message string, fields ...ports.Field) {
	fieldMap := make(map[string]interface{})
	for _, field := range fields {
		fieldMap[field.Key] = field.Value
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{
		level:   level,
		message: message,
		fields:  fieldMap,
	})
}

func (l *testLogger) snapshot() []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]logEntry(nil), l.entries...)
}

func (l *testLogger) countLevel(level string) int {
	count := 0
	for _, entry := range l.snapshot() {
		if entry.level == level {
			count++
		}
	}
	return count
}

type testWeatherProvider struct {
	name     string
	response *ports.WeatherReport
	err      error

	mu      sync.Mutex
	queries []ports.WeatherQuery
}

func (p *testWeatherProvider) GetWeather(ctx context.Context, query ports.WeatherQuery) (*ports.WeatherReport, error) {
	p.mu.Lock()
	p.queries = append(p.queries, query)
	p.mu.Unlock()

	if p.err != nil {
		return nil, p.err
	}
	return p.response, nil
}

func (p *testWeatherProvider) GetProviderName() string {
	return p.name
}

func (p *testWeatherProvider) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.queries)
}

type testRecommendationClient struct {
	name string
	err  error

	mu    sync.Mutex
	calls int
}

func (c *testRecommendationClient) AuthenticatedRequest(ctx context.Context, method, endpoint string, query url.Values, out interface{}) error {
	c.mu.Lock()
	c.calls++
	c.mu.Unlock()

	return c.err
}

func (c *testRecommendationClient) GetProviderName() string {
	return c.name
}
