package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherplaylist.app/internal/mocks"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

func setupLoggerMockOpenWeatherMap(t *testing.T) *mocks.Logger {
	mockLogger := mocks.NewLogger(t)

	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Maybe()

	return mockLogger
}

func newOpenWeatherMapServer(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, err := w.Write([]byte(body))
		assert.NoError(t, err)
	}))
	t.Cleanup(server.Close)

	return server
}

const openWeatherMapBody = `{
	"name": "Recife",
	"dt": 1700000000,
	"main": {"temp": 28.4, "temp_min": 27.1, "temp_max": 29.9, "humidity": 74},
	"weather": [{"description": "nuvens dispersas"}]
}`

func TestOpenWeatherMapProvider_GetWeather_ByCity(t *testing.T) {
	server := newOpenWeatherMapServer(t, http.StatusOK, openWeatherMapBody, func(r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "sao paulo", r.URL.Query().Get("q"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "pt_br", r.URL.Query().Get("lang"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("appid"))
		assert.Empty(t, r.URL.Query().Get("lat"))
	})

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL + "/",
		Logger:  setupLoggerMockOpenWeatherMap(t),
	})

	report, err := provider.GetWeather(context.Background(), ports.WeatherQuery{
		Location: ports.WeatherLocation{CityName: "sao paulo"},
		Units:    "metric",
		Locale:   "pt_br",
	})

	require.NoError(t, err)
	assert.Equal(t, 28.4, report.Temperature.Now.Value)
	assert.Equal(t, "celsius", report.Temperature.Now.Unit)
	assert.Equal(t, 27.1, report.Temperature.Min.Value)
	assert.Equal(t, 29.9, report.Temperature.Max.Value)
	assert.Equal(t, 74.0, report.Humidity)
	assert.Equal(t, "nuvens dispersas", report.Description)
	assert.Equal(t, "Recife", report.City)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), report.Timestamp)
}

func TestOpenWeatherMapProvider_GetWeather_ByCoordinates(t *testing.T) {
	server := newOpenWeatherMapServer(t, http.StatusOK, openWeatherMapBody, func(r *http.Request) {
		assert.Equal(t, "-8.05", r.URL.Query().Get("lat"))
		assert.Equal(t, "-34.9", r.URL.Query().Get("lon"))
		assert.Empty(t, r.URL.Query().Get("q"))
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))
	})

	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Logger:  setupLoggerMockOpenWeatherMap(t),
	})

	report, err := provider.GetWeather(context.Background(), ports.WeatherQuery{
		Location: ports.WeatherLocation{Coordinates: &ports.Coordinates{Latitude: -8.05, Longitude: -34.9}},
		Units:    "imperial",
	})

	require.NoError(t, err)
	assert.Equal(t, "fahrenheit", report.Temperature.Now.Unit)
}

func TestOpenWeatherMapProvider_GetWeather_Errors(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		body      string
		errorType errors.ErrorType
		notFound  bool
	}{
		{"NotFound", http.StatusNotFound, `{"cod":"404","message":"city not found"}`, errors.ExternalAPIError, true},
		{"BadRequest", http.StatusBadRequest, `{"cod":"400","message":"wrong latitude"}`, errors.ValidationError, false},
		{"Unauthorized", http.StatusUnauthorized, `{"message":"Invalid API key"}`, errors.ExternalAPIError, false},
		{"ServerError", http.StatusInternalServerError, `oops`, errors.ExternalAPIError, false},
		{"MalformedBody", http.StatusOK, `{not json`, errors.ExternalAPIError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := newOpenWeatherMapServer(t, tt.status, tt.body, nil)
			provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
				APIKey:  "test-api-key",
				BaseURL: server.URL,
				Logger:  setupLoggerMockOpenWeatherMap(t),
			})

			report, err := provider.GetWeather(context.Background(), ports.WeatherQuery{
				Location: ports.WeatherLocation{CityName: "atlantida"},
			})

			assert.Nil(t, report)
			require.Error(t, err)
			assert.Equal(t, tt.errorType, errors.TypeOf(err))
			assert.Equal(t, tt.notFound, errors.Is(err, ports.ErrLocationNotFound))
		})
	}
}

func TestOpenWeatherMapProvider_GetWeather_EmptyLocation(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey: "test-api-key",
		Logger: setupLoggerMockOpenWeatherMap(t),
	})

	report, err := provider.GetWeather(context.Background(), ports.WeatherQuery{
		Location: ports.WeatherLocation{CityName: "  "},
	})

	assert.Nil(t, report)
	var appErr *errors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, errors.ValidationError, appErr.Type)
	assert.Contains(t, appErr.Message, "location is required")
}

func TestOpenWeatherMapProvider_GetWeather_ContextCanceled(t *testing.T) {
	server := newOpenWeatherMapServer(t, http.StatusOK, openWeatherMapBody, nil)
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: server.URL,
		Logger:  setupLoggerMockOpenWeatherMap(t),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := provider.GetWeather(ctx, ports.WeatherQuery{Location: ports.WeatherLocation{CityName: "recife"}})

	assert.True(t, errors.IsExternalAPIError(err))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestOpenWeatherMapProvider_GetProviderName(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{APIKey: "k"})
	assert.Equal(t, "openweathermap", provider.GetProviderName())
}
