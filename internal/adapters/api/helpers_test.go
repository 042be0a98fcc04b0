package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherplaylist.app/internal/adapters/external"
	"weatherplaylist.app/internal/core/playlist"
	"weatherplaylist.app/internal/core/temperature"
	"weatherplaylist.app/internal/mocks"
	"weatherplaylist.app/internal/ports"
)

type testServer struct {
	router   *gin.Engine
	weather  *mocks.WeatherProvider
	client   *mocks.RecommendationClient
	health   *fakeHealthChecker
	reporter *fakeMetricsReporter
}

type fakeHealthChecker struct {
	results map[string]ports.HealthStatus
}

func (f *fakeHealthChecker) CheckAll(context.Context) map[string]ports.HealthStatus {
	return f.results
}

type fakeMetricsReporter struct {
	metrics map[string]interface{}
	err     error
}

func (f *fakeMetricsReporter) GetMetrics(context.Context) (map[string]interface{}, error) {
	return f.metrics, f.err
}

func setupLoggerMock(mockLogger *mocks.Logger) {
	args := []interface{}{}
	for i := 0; i < 6; i++ {
		mockLogger.EXPECT().Debug(mock.Anything, args...).Maybe()
		mockLogger.EXPECT().Info(mock.Anything, args...).Maybe()
		mockLogger.EXPECT().Warn(mock.Anything, args...).Maybe()
		mockLogger.EXPECT().Error(mock.Anything, args...).Maybe()
		args = append(args, mock.Anything)
	}
}

// newTestServer wires the real lookups over an in-memory cache with mocked upstream APIs
func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	logger := mocks.NewLogger(t)
	setupLoggerMock(logger)

	config := mocks.NewConfigProvider(t)
	config.EXPECT().GetTemperatureConfig().Return(ports.TemperatureConfig{
		Units:    "metric",
		Locale:   "pt_br",
		CacheTTL: 10 * time.Minute,
	}).Maybe()
	config.EXPECT().GetPlaylistConfig().Return(ports.PlaylistConfig{
		RecommendationsURL: "https://api.spotify.com/v1/recommendations",
		TargetPopularity:   70,
		CacheTTL:           10 * time.Minute,
	}).Maybe()

	weather := mocks.NewWeatherProvider(t)
	weather.EXPECT().GetProviderName().Return("openweathermap").Maybe()
	client := mocks.NewRecommendationClient(t)
	client.EXPECT().GetProviderName().Return("spotify").Maybe()

	cache, err := external.NewComputeCacheAdapter(external.ComputeCacheParams{
		Provider:  external.NewMemoryCacheProvider(),
		CacheType: "memory",
		Logger:    logger,
	})
	require.NoError(t, err)

	temperatureUseCase, err := temperature.NewUseCase(temperature.UseCaseDependencies{
		WeatherProvider: weather,
		Cache:           cache,
		Config:          config,
		Logger:          logger,
	})
	require.NoError(t, err)

	playlistUseCase, err := playlist.NewUseCase(playlist.UseCaseDependencies{
		Client: client,
		Cache:  cache,
		Config: config,
		Logger: logger,
	})
	require.NoError(t, err)

	health := &fakeHealthChecker{results: map[string]ports.HealthStatus{
		"cache": {Component: "cache", Status: "healthy"},
	}}
	reporter := &fakeMetricsReporter{metrics: map[string]interface{}{"providers": []string{"openweathermap", "spotify"}}}

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:              ServerConfig{Port: 8080},
		TemperatureUseCase:  temperatureUseCase,
		PlaylistUseCase:     playlistUseCase,
		MetricsReporter:     reporter,
		SystemHealthChecker: health,
		Logger:              logger,
	})
	require.NoError(t, err)

	return &testServer{
		router:   server.GetRouter(),
		weather:  weather,
		client:   client,
		health:   health,
		reporter: reporter,
	}
}

func (s *testServer) get(target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) postJSON(target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(target))
}

func weatherReport(celsius float64) *ports.WeatherReport {
	return &ports.WeatherReport{
		Temperature: ports.TemperatureReading{
			Now: ports.Measurement{Value: celsius, Unit: "celsius"},
		},
	}
}

type stubTemperature struct{}

func (stubTemperature) GetByCityName(context.Context, string) (float64, error) { return 0, nil }

func (stubTemperature) GetByLocation(context.Context, float64, float64) (float64, error) {
	return 0, nil
}

type stubPlaylist struct{}

func (stubPlaylist) GetPlaylistForGenre(context.Context, string) ([]string, error) { return nil, nil }

func newRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func (s *testServer) serve(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}
