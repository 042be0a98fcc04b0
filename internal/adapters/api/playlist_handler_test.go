package api

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"weatherplaylist.app/internal/core/playlist"
	"weatherplaylist.app/pkg/errors"
)

func TestPlaylistHandler_GetPlaylist(t *testing.T) {
	ts := newTestServer(t)
	ts.client.EXPECT().
		AuthenticatedRequest(mock.Anything, http.MethodGet, "https://api.spotify.com/v1/recommendations",
			url.Values{"seed_genres": {"rock"}, "target_popularity": {"70"}}, mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, _ url.Values, out interface{}) error {
			out.(*playlist.RecommendationsResponse).Tracks = []playlist.Track{
				{Name: "A", Artists: []playlist.Artist{{Name: "X"}, {Name: "Y"}}},
				{Name: "B", Artists: []playlist.Artist{{Name: "Z"}}},
			}
			return nil
		}).Once()

	for i := 0; i < 2; i++ {
		w := ts.get("/api/playlist?genre=rock")

		assert.Equal(t, http.StatusOK, w.Code)
		var response PlaylistResponse
		decodeBody(t, w, &response)
		assert.Equal(t, "rock", response.Genre)
		assert.Equal(t, []string{"X, Y - A", "Z - B"}, response.Tracks)
	}
}

func TestPlaylistHandler_EmptyRecommendations(t *testing.T) {
	ts := newTestServer(t)
	ts.client.EXPECT().AuthenticatedRequest(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil)

	w := ts.get("/api/playlist?genre=obscure")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"genre":"obscure","tracks":[]}`, w.Body.String())
}

func TestPlaylistHandler_MissingGenre(t *testing.T) {
	for _, target := range []string{"/api/playlist", "/api/playlist?genre=", "/api/playlist?genre=%20"} {
		t.Run(target, func(t *testing.T) {
			ts := newTestServer(t)

			w := ts.get(target)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var response ErrorResponse
			decodeBody(t, w, &response)
			assert.Equal(t, "invalid parameters: genre is required", response.Error)
		})
	}
}

func TestPlaylistHandler_UpstreamFailure(t *testing.T) {
	ts := newTestServer(t)
	ts.client.EXPECT().AuthenticatedRequest(mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.NewExternalAPIError("Spotify rate limit exceeded", nil))

	w := ts.get("/api/playlist?genre=jazz")

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var response ErrorResponse
	decodeBody(t, w, &response)
	assert.Equal(t, "External service unavailable", response.Error)
}
