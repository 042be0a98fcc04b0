package temperature

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"

	"github.com/go-playground/validator/v10"
	"weatherplaylist.app/pkg/validation"
)

const (
	msgCityNameRequired    = "city name is required"
	msgCityNameType        = "invalid value type for city name"
	msgDecimalDegrees      = "must supply decimal degree values for latitude and longitude"
	msgLatitudeOutOfRange  = "invalid latitude value: must be between -90 and 90"
	msgLongitudeOutOfRange = "invalid longitude value: must be between -180 and 180"
)

var coordinateValidator = validator.New()

// Coordinates is a decimal degree position used for location lookups
type Coordinates struct {
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
}

// Validate checks that both values are finite and inside their ranges.
// Latitude is reported before longitude when both are off.
func (c Coordinates) Validate() error {
	if !isFinite(c.Latitude) || !isFinite(c.Longitude) {
		return errors.New(msgDecimalDegrees)
	}

	err := coordinateValidator.Struct(c)
	if err == nil {
		return nil
	}

	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok || len(fieldErrs) == 0 {
		return fmt.Errorf("invalid coordinates: %w", err)
	}

	switch fieldErrs[0].Field() {
	case "Latitude":
		return errors.New(msgLatitudeOutOfRange)
	default:
		return errors.New(msgLongitudeOutOfRange)
	}
}

// CityNameFromInput accepts a loosely typed value (query string, JSON body) and returns the city name.
// It does not trim or normalize.
func CityNameFromInput(raw interface{}) (string, error) {
	switch v := raw.(type) {
	case nil:
		return "", errors.New(msgCityNameRequired)
	case string:
		return v, nil
	default:
		return "", errors.New(msgCityNameType)
	}
}

// CoordinatesFromInput converts loosely typed latitude and longitude values into Coordinates.
// Numbers and numeric strings are accepted. Range checks are left to Validate.
func CoordinatesFromInput(lat, lon interface{}) (Coordinates, error) {
	latitude, okLat := decimalDegrees(lat)
	longitude, okLon := decimalDegrees(lon)
	if !okLat || !okLon {
		return Coordinates{}, errors.New(msgDecimalDegrees)
	}

	return Coordinates{Latitude: latitude, Longitude: longitude}, nil
}

func decimalDegrees(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case nil, bool:
		return 0, false
	case string:
		return validation.ParseDecimal(v)
	case json.Number:
		return validation.ParseDecimal(v.String())
	}

	rv := reflect.ValueOf(raw)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f, isFinite(f)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	default:
		return 0, false
	}
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
