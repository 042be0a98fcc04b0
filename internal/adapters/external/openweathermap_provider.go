package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

const (
	openWeatherMapName           = "openweathermap"
	openWeatherMapDefaultBaseURL = "https://api.openweathermap.org/data/2.5"
)

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Client  HTTPClient
	Logger  ports.Logger
}

// OpenWeatherMapResponse represents the response from OpenWeatherMap API
type OpenWeatherMapResponse struct {
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
	Main struct {
		Temp     float64 `json:"temp"`
		TempMin  float64 `json:"temp_min"`
		TempMax  float64 `json:"temp_max"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

type openWeatherMapError struct {
	Message string `json:"message"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) ports.WeatherProvider {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = openWeatherMapDefaultBaseURL
	}

	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: defaultHTTPTimeout}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// GetWeather retrieves current weather from OpenWeatherMap by city name or coordinates.
// A 404 wraps ports.ErrLocationNotFound.
func (p *OpenWeatherMapProviderAdapter) GetWeather(ctx context.Context, query ports.WeatherQuery) (*ports.WeatherReport, error) {
	params := url.Values{}
	switch {
	case query.Location.Coordinates != nil:
		params.Set("lat", strconv.FormatFloat(query.Location.Coordinates.Latitude, 'f', -1, 64))
		params.Set("lon", strconv.FormatFloat(query.Location.Coordinates.Longitude, 'f', -1, 64))
	case strings.TrimSpace(query.Location.CityName) != "":
		params.Set("q", query.Location.CityName)
	default:
		return nil, errors.NewValidationError("location is required")
	}
	if query.Units != "" {
		params.Set("units", query.Units)
	}
	if query.Locale != "" {
		params.Set("lang", query.Locale)
	}
	params.Set("appid", p.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+"/weather?"+params.Encode(), nil)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to build OpenWeatherMap request", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewExternalAPIError("failed to call OpenWeatherMap", err)
	}
	defer closeBody(resp, p.logger, openWeatherMapName)

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return nil, errors.NewExternalAPIError("OpenWeatherMap could not resolve location", ports.ErrLocationNotFound)
	case http.StatusBadRequest:
		var apiErr openWeatherMapError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return nil, errors.NewValidationError("OpenWeatherMap rejected the request: " + apiErr.Message)
	default:
		return nil, errors.NewExternalAPIError(fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode), nil)
	}

	var apiResp OpenWeatherMapResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewExternalAPIError("failed to decode OpenWeatherMap response", err)
	}

	unit := temperatureUnit(query.Units)
	report := &ports.WeatherReport{
		City: apiResp.Name,
		Temperature: ports.TemperatureReading{
			Now: ports.Measurement{Value: apiResp.Main.Temp, Unit: unit},
			Min: ports.Measurement{Value: apiResp.Main.TempMin, Unit: unit},
			Max: ports.Measurement{Value: apiResp.Main.TempMax, Unit: unit},
		},
		Humidity:  apiResp.Main.Humidity,
		Timestamp: time.Now(),
	}
	if apiResp.Dt > 0 {
		report.Timestamp = time.Unix(apiResp.Dt, 0).UTC()
	}
	if len(apiResp.Weather) > 0 {
		report.Description = apiResp.Weather[0].Description
	}

	return report, nil
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return openWeatherMapName
}

func temperatureUnit(units string) string {
	switch units {
	case "imperial":
		return "fahrenheit"
	case "standard":
		return "kelvin"
	default:
		return "celsius"
	}
}
