package ports

import (
	"context"
	"errors"
	"time"
)

// ErrLocationNotFound is wrapped by weather providers when a location cannot be resolved
var ErrLocationNotFound = errors.New("location not found")

// Coordinates is a decimal degree position
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// WeatherLocation addresses a weather query either by city name or by coordinates
type WeatherLocation struct {
	CityName    string
	Coordinates *Coordinates
}

// WeatherQuery represents a current weather request
type WeatherQuery struct {
	Location WeatherLocation
	Units    string
	Locale   string
}

// Measurement is a single value with its unit
type Measurement struct {
	Value float64
	Unit  string
}

// TemperatureReading groups the temperatures reported by a provider
type TemperatureReading struct {
	Now Measurement
	Min Measurement
	Max Measurement
}

// WeatherReport represents current weather information
type WeatherReport struct {
	City        string
	Temperature TemperatureReading
	Humidity    float64
	Description string
	Timestamp   time.Time
}

// WeatherProvider defines the contract for weather data providers
type WeatherProvider interface {
	GetWeather(ctx context.Context, query WeatherQuery) (*WeatherReport, error)
	GetProviderName() string
}
