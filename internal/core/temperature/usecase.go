package temperature

import (
	"context"
	"time"

	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
	"weatherplaylist.app/pkg/validation"
)

const (
	DefaultCacheTTL = 600 * time.Second
	DefaultUnits    = "metric"
	DefaultLocale   = "pt_br"
)

type UseCase struct {
	weatherProvider ports.WeatherProvider
	cache           ports.ComputeCache
	config          ports.ConfigProvider
	logger          ports.Logger
}

type UseCaseDependencies struct {
	WeatherProvider ports.WeatherProvider
	Cache           ports.ComputeCache
	Config          ports.ConfigProvider
	Logger          ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.WeatherProvider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Cache == nil {
		return nil, errors.NewValidationError("cache is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	return &UseCase{
		weatherProvider: deps.WeatherProvider,
		cache:           deps.Cache,
		config:          deps.Config,
		logger:          deps.Logger,
	}, nil
}

// GetByCityName returns the current temperature for a city.
// Results are cached under the normalized name, so "São Paulo" and "sao  paulo" share one entry.
func (uc *UseCase) GetByCityName(ctx context.Context, cityName string) (float64, error) {
	trimmed, ok := validation.TrimAndValidate(cityName)
	if !ok {
		return 0, errors.NewValidationError(msgCityNameRequired)
	}

	normalized := Normalize(trimmed)
	if normalized == "" {
		return 0, errors.NewValidationError("invalid parameters: city name has no usable characters")
	}

	cfg := uc.temperatureConfig()
	key := CityCacheKey(normalized)

	var temperature float64
	err := uc.cache.GetOrCompute(ctx, key, &temperature, func(ctx context.Context) (interface{}, time.Duration, error) {
		uc.logger.Debug("Temperature not cached, querying provider",
			ports.F("city", normalized),
			ports.F("provider", uc.weatherProvider.GetProviderName()))

		report, err := uc.weatherProvider.GetWeather(ctx, ports.WeatherQuery{
			Location: ports.WeatherLocation{CityName: normalized},
			Units:    cfg.Units,
			Locale:   cfg.Locale,
		})
		if err != nil {
			return nil, 0, err
		}
		if report == nil {
			return nil, 0, errors.NewExternalAPIError("weather provider returned no data", nil)
		}

		return report.Temperature.Now.Value, cfg.CacheTTL, nil
	})
	if err != nil {
		uc.logger.Warn("Temperature lookup by city failed",
			ports.F("city", normalized),
			ports.F("error", err))
		return 0, translateCityError(err)
	}

	return temperature, nil
}

// GetByLocation returns the current temperature at the given coordinates.
// This path is never cached and provider errors are returned as they are.
func (uc *UseCase) GetByLocation(ctx context.Context, latitude, longitude float64) (float64, error) {
	coords := Coordinates{Latitude: latitude, Longitude: longitude}
	if err := coords.Validate(); err != nil {
		return 0, errors.NewValidationError(err.Error())
	}

	cfg := uc.temperatureConfig()
	report, err := uc.weatherProvider.GetWeather(ctx, ports.WeatherQuery{
		Location: ports.WeatherLocation{
			Coordinates: &ports.Coordinates{Latitude: coords.Latitude, Longitude: coords.Longitude},
		},
		Units:  cfg.Units,
		Locale: cfg.Locale,
	})
	if err != nil {
		uc.logger.Warn("Temperature lookup by location failed",
			ports.F("latitude", latitude),
			ports.F("longitude", longitude),
			ports.F("error", err))
		return 0, err
	}
	if report == nil {
		return 0, errors.NewExternalAPIError("weather provider returned no data", nil)
	}

	return report.Temperature.Now.Value, nil
}

func (uc *UseCase) temperatureConfig() ports.TemperatureConfig {
	cfg := uc.config.GetTemperatureConfig()
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.Units == "" {
		cfg.Units = DefaultUnits
	}
	if cfg.Locale == "" {
		cfg.Locale = DefaultLocale
	}
	return cfg
}

func translateCityError(err error) error {
	switch {
	case errors.Is(err, ports.ErrLocationNotFound):
		return errors.Wrap(errors.NotFoundError, "city not found", err)
	case errors.IsValidationError(err):
		return errors.Wrap(errors.ValidationError, "invalid parameters", err)
	default:
		return err
	}
}
