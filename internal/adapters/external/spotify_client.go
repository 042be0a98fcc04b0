package external

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/clientcredentials"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

const (
	spotifyName            = "spotify"
	spotifyDefaultTokenURL = "https://accounts.spotify.com/api/token"
)

// SpotifyClientAdapter implements RecommendationClient using the client credentials flow.
// Tokens are fetched lazily and reused until they expire.
type SpotifyClientAdapter struct {
	client *http.Client
	logger ports.Logger
}

// SpotifyClientParams holds parameters for creating the Spotify client
type SpotifyClientParams struct {
	ClientID     string
	ClientSecret string
	TokenURL     string
	// BaseClient carries token and API requests. A client with the default timeout is used when nil.
	BaseClient *http.Client
	Logger     ports.Logger
}

type spotifyError struct {
	Error struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewSpotifyClientAdapter creates a new Spotify client adapter
func NewSpotifyClientAdapter(params SpotifyClientParams) ports.RecommendationClient {
	tokenURL := params.TokenURL
	if tokenURL == "" {
		tokenURL = spotifyDefaultTokenURL
	}

	base := params.BaseClient
	if base == nil {
		base = &http.Client{Timeout: defaultHTTPTimeout}
	}

	credentials := &clientcredentials.Config{
		ClientID:     params.ClientID,
		ClientSecret: params.ClientSecret,
		TokenURL:     tokenURL,
		AuthStyle:    oauth2.AuthStyleInHeader,
	}

	tokenCtx := context.WithValue(context.Background(), oauth2.HTTPClient, base)
	client := credentials.Client(tokenCtx)
	client.Timeout = base.Timeout

	return &SpotifyClientAdapter{
		client: client,
		logger: params.Logger,
	}
}

// AuthenticatedRequest sends a bearer-authenticated request and decodes the JSON body into out.
// query is merged into any query already present on endpoint.
func (s *SpotifyClientAdapter) AuthenticatedRequest(ctx context.Context, method, endpoint string, query url.Values, out interface{}) error {
	target, err := url.Parse(endpoint)
	if err != nil {
		return errors.NewConfigurationError("invalid Spotify endpoint", err)
	}

	merged := target.Query()
	for key, values := range query {
		for _, value := range values {
			merged.Add(key, value)
		}
	}
	target.RawQuery = merged.Encode()

	req, err := http.NewRequestWithContext(ctx, method, target.String(), nil)
	if err != nil {
		return errors.NewExternalAPIError("failed to build Spotify request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			return errors.NewExternalAPIError("Spotify authentication failed", err)
		}
		return errors.NewExternalAPIError("failed to call Spotify", err)
	}
	defer closeBody(resp, s.logger, spotifyName)

	if resp.StatusCode != http.StatusOK {
		var apiErr spotifyError
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)

		switch resp.StatusCode {
		case http.StatusBadRequest:
			return errors.NewValidationError("Spotify rejected the request: " + apiErr.Error.Message)
		case http.StatusUnauthorized, http.StatusForbidden:
			return errors.NewExternalAPIError("Spotify refused the access token", nil)
		case http.StatusTooManyRequests:
			return errors.NewExternalAPIError("Spotify rate limit exceeded", nil)
		default:
			return errors.NewExternalAPIError(fmt.Sprintf("Spotify returned status %d", resp.StatusCode), nil)
		}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.NewExternalAPIError("failed to decode Spotify response", err)
	}

	return nil
}

// GetProviderName returns the name of this recommendation provider
func (s *SpotifyClientAdapter) GetProviderName() string {
	return spotifyName
}
