package api

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

func TestHTTPServerAdapter_HandleError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "Validation",
			err:     errors.NewValidationError("genre is required"),
			status:  http.StatusBadRequest,
			message: "invalid parameters: genre is required",
		},
		{
			name:    "ValidationAlreadyPrefixed",
			err:     errors.NewValidationError("invalid parameters: city name has no usable characters"),
			status:  http.StatusBadRequest,
			message: "invalid parameters: city name has no usable characters",
		},
		{
			name:    "WrappedProviderValidation",
			err:     errors.Wrap(errors.ValidationError, "invalid parameters", errors.NewValidationError("wrong latitude")),
			status:  http.StatusBadRequest,
			message: "invalid parameters: wrong latitude",
		},
		{
			name:    "WrappedPlainCause",
			err:     errors.Wrap(errors.ValidationError, "invalid parameters", stderrors.New("bad")),
			status:  http.StatusBadRequest,
			message: "invalid parameters",
		},
		{
			name:    "NotFound",
			err:     errors.Wrap(errors.NotFoundError, "city not found", ports.ErrLocationNotFound),
			status:  http.StatusNotFound,
			message: "city not found",
		},
		{
			name:    "ExternalAPI",
			err:     errors.NewExternalAPIError("Spotify refused the access token", nil),
			status:  http.StatusServiceUnavailable,
			message: "External service unavailable",
		},
		{
			name:    "Configuration",
			err:     errors.NewConfigurationError("configuration error", nil),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
		{
			name:    "Unknown",
			err:     errors.New(errors.ErrorTypeUnknown, "failed to decode computed value"),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
		{
			name:    "PlainError",
			err:     stderrors.New("boom"),
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := &HTTPServerAdapter{}
			router := gin.New()
			router.GET("/test", func(c *gin.Context) {
				server.handleError(c, tt.err)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

			var response ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
			assert.Equal(t, tt.message, response.Error)
		})
	}
}
