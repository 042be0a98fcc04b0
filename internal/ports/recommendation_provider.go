package ports

import (
	"context"
	"net/url"
)

// RecommendationClient performs authenticated calls against the music recommendation API.
// The decoded JSON body is written into out.
type RecommendationClient interface {
	AuthenticatedRequest(ctx context.Context, method, endpoint string, query url.Values, out interface{}) error
	GetProviderName() string
}
