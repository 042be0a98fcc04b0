package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"weatherplaylist.app/internal/ports"
	"weatherplaylist.app/pkg/errors"
)

// PlaylistQuery binds GET /api/playlist parameters
type PlaylistQuery struct {
	Genre string `form:"genre" binding:"required,notblank"`
}

// PlaylistResponse represents the HTTP response for a playlist lookup
type PlaylistResponse struct {
	Genre  string   `json:"genre"`
	Tracks []string `json:"tracks"`
}

// getPlaylist handles GET /api/playlist?genre= requests
func (s *HTTPServerAdapter) getPlaylist(c *gin.Context) {
	var query PlaylistQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		s.handleError(c, errors.NewValidationError("genre is required"))
		return
	}

	tracks, err := s.playlistUseCase.GetPlaylistForGenre(c.Request.Context(), query.Genre)
	if err != nil {
		s.logger.Debug("Playlist lookup failed", ports.F("genre", query.Genre), ports.F("error", err))
		s.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, PlaylistResponse{Genre: query.Genre, Tracks: tracks})
}
