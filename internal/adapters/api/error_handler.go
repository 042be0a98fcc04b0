package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

const invalidParametersPrefix = "invalid parameters"

// ErrorResponse represents an error message structure for API responses
type ErrorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id,omitempty"`
}

// handleError maps application errors to HTTP status codes
func (s *HTTPServerAdapter) handleError(c *gin.Context, err error) {
	var appErr *errors.AppError
	if !errors.As(err, &appErr) {
		s.respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	switch appErr.Type {
	case errors.ValidationError:
		s.respondError(c, http.StatusBadRequest, validationMessage(appErr))
	case errors.NotFoundError:
		s.respondError(c, http.StatusNotFound, appErr.Message)
	case errors.ExternalAPIError:
		s.respondError(c, http.StatusServiceUnavailable, "External service unavailable")
	default:
		s.respondError(c, http.StatusInternalServerError, "Internal server error")
	}
}

func (s *HTTPServerAdapter) respondError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		Error:     message,
		RequestID: c.GetString(requestIDKey),
	})
}

// validationMessage prefixes input errors with "invalid parameters: ".
// A bare "invalid parameters" wrapper borrows the message of the validation error it wraps.
func validationMessage(appErr *errors.AppError) string {
	if appErr.Message == invalidParametersPrefix {
		var inner *errors.AppError
		if errors.As(appErr.Cause, &inner) && inner.Message != "" {
			return invalidParametersPrefix + ": " + inner.Message
		}
		return appErr.Message
	}
	if strings.HasPrefix(appErr.Message, invalidParametersPrefix) {
		return appErr.Message
	}
	return invalidParametersPrefix + ": " + appErr.Message
}

// getMetrics handles GET /api/metrics requests
func (s *HTTPServerAdapter) getMetrics(c *gin.Context) {
	metrics, err := s.metricsReporter.GetMetrics(c.Request.Context())
	if err != nil {
		s.logger.Error("Error getting metrics", ports.F("error", err))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, metrics)
}
