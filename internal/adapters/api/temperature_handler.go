package api

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherplaylist.app/internal/core/temperature"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

// TemperatureResponse represents the HTTP response for a temperature lookup
type TemperatureResponse struct {
	Temperature float64  `json:"temperature"`
	City        string   `json:"city,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
}

// temperatureRequest holds the loosely typed inputs of either endpoint.
// A present lat or lon selects the location lookup.
type temperatureRequest struct {
	city        interface{}
	lat, lon    interface{}
	hasLocation bool
}

// getTemperature handles GET /api/temperature?city= and GET /api/temperature?lat=&lon=
func (s *HTTPServerAdapter) getTemperature(c *gin.Context) {
	req := temperatureRequest{}

	if lat, ok := c.GetQuery("lat"); ok {
		req.lat, req.hasLocation = lat, true
	}
	if lon, ok := c.GetQuery("lon"); ok {
		req.lon, req.hasLocation = lon, true
	}
	if city, ok := c.GetQuery("city"); ok {
		req.city = city
		req.hasLocation = false
	}

	s.lookupTemperature(c, req)
}

// postTemperature handles POST /api/temperature with {"city": ...} or {"lat": ..., "lon": ...}
func (s *HTTPServerAdapter) postTemperature(c *gin.Context) {
	var body map[string]interface{}

	decoder := json.NewDecoder(c.Request.Body)
	decoder.UseNumber()
	if err := decoder.Decode(&body); err != nil {
		s.handleError(c, errors.NewValidationError("request body must be a JSON object"))
		return
	}

	req := temperatureRequest{city: body["city"]}
	if _, hasCity := body["city"]; !hasCity {
		_, hasLat := body["lat"]
		_, hasLon := body["lon"]
		req.lat, req.lon = body["lat"], body["lon"]
		req.hasLocation = hasLat || hasLon
	}

	s.lookupTemperature(c, req)
}

func (s *HTTPServerAdapter) lookupTemperature(c *gin.Context, req temperatureRequest) {
	ctx := c.Request.Context()

	if req.hasLocation {
		coords, err := temperature.CoordinatesFromInput(req.lat, req.lon)
		if err != nil {
			s.handleError(c, errors.NewValidationError(err.Error()))
			return
		}

		value, err := s.temperatureUseCase.GetByLocation(ctx, coords.Latitude, coords.Longitude)
		if err != nil {
			s.logger.Debug("Temperature by location failed",
				ports.F("latitude", coords.Latitude),
				ports.F("longitude", coords.Longitude),
				ports.F("error", err))
			s.handleError(c, err)
			return
		}

		c.JSON(http.StatusOK, TemperatureResponse{
			Temperature: value,
			Latitude:    &coords.Latitude,
			Longitude:   &coords.Longitude,
		})
		return
	}

	city, err := temperature.CityNameFromInput(req.city)
	if err != nil {
		s.handleError(c, errors.NewValidationError(err.Error()))
		return
	}

	value, err := s.temperatureUseCase.GetByCityName(ctx, city)
	if err != nil {
		s.logger.Debug("Temperature by city failed", ports.F("city", city), ports.F("error", err))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, TemperatureResponse{Temperature: value, City: city})
}
