package playlist

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

const (
	DefaultCacheTTL           = 600 * time.Second
	DefaultTargetPopularity   = 70
	DefaultRecommendationsURL = "https://api.spotify.com/v1/recommendations"
)

type UseCase struct {
	client ports.RecommendationClient
	cache  ports.ComputeCache
	config ports.ConfigProvider
	logger ports.Logger
}

type UseCaseDependencies struct {
	Client ports.RecommendationClient
	Cache  ports.ComputeCache
	Config ports.ConfigProvider
	Logger ports.Logger
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Client == nil {
		return nil, errors.NewValidationError("recommendation client is required")
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
		client: deps.Client,
		cache:  deps.Cache,
		config: deps.Config,
		logger: deps.Logger,
	}, nil
}

// GetPlaylistForGenre returns recommended tracks for a genre formatted as "<artists> - <title>".
// The genre is passed to the provider verbatim, so an unknown or empty genre fails there.
// Provider order is preserved and errors from the client are returned as they are.
func (uc *UseCase) GetPlaylistForGenre(ctx context.Context, genre string) ([]string, error) {
	cfg := uc.playlistConfig()

	var playlist []string
	err := uc.cache.GetOrCompute(ctx, GenreCacheKey(genre), &playlist, func(ctx context.Context) (interface{}, time.Duration, error) {
		query := url.Values{}
		query.Set("seed_genres", genre)
		query.Set("target_popularity", strconv.Itoa(cfg.TargetPopularity))

		uc.logger.Debug("Playlist not cached, requesting recommendations",
			ports.F("genre", genre),
			ports.F("provider", uc.client.GetProviderName()))

		var response RecommendationsResponse
		if err := uc.client.AuthenticatedRequest(ctx, http.MethodGet, cfg.RecommendationsURL, query, &response); err != nil {
			return nil, 0, err
		}

		return FormatTracks(response.Tracks), cfg.CacheTTL, nil
	})
	if err != nil {
		uc.logger.Warn("Playlist lookup failed",
			ports.F("genre", genre),
			ports.F("error", err))
		return nil, err
	}

	return playlist, nil
}

// playlistConfig fills unset values. A zero popularity counts as unset.
func (uc *UseCase) playlistConfig() ports.PlaylistConfig {
	cfg := uc.config.GetPlaylistConfig()
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = DefaultCacheTTL
	}
	if cfg.TargetPopularity == 0 {
		cfg.TargetPopularity = DefaultTargetPopularity
	}
	if cfg.RecommendationsURL == "" {
		cfg.RecommendationsURL = DefaultRecommendationsURL
	}
	return cfg
}
