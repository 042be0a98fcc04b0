// Package external provides adapters for external services
// These adapters implement ports for the weather and recommendation providers and the cache backends.
package external

import (
	"net/http"
	"time"

	"weatherplaylist.app/internal/ports"
)

const defaultHTTPTimeout = 10 * time.Second

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

func closeBody(resp *http.Response, logger ports.Logger, provider string) {
	if closeErr := resp.Body.Close(); closeErr != nil && logger != nil {
		logger.Warn("Failed to close response body",
			ports.F("provider", provider),
			ports.F("error", closeErr))
	}
}
