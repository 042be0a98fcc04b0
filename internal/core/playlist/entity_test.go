package playlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrack_String(t *testing.T) {
	tests := []struct {
		name     string
		track    Track
		expected string
	}{
		{"SingleArtist", Track{Name: "B", Artists: []Artist{{Name: "Z"}}}, "Z - B"},
		{"MultipleArtists", Track{Name: "A", Artists: []Artist{{Name: "X"}, {Name: "Y"}}}, "X, Y - A"},
		{"NoArtists", Track{Name: "Untitled"}, " - Untitled"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.track.String())
		})
	}
}

func TestFormatTracks(t *testing.T) {
	tracks := []Track{
		{Name: "A", Artists: []Artist{{Name: "X"}, {Name: "Y"}}},
		{Name: "B", Artists: []Artist{{Name: "Z"}}},
	}

	assert.Equal(t, []string{"X, Y - A", "Z - B"}, FormatTracks(tracks))
	assert.NotNil(t, FormatTracks(nil))
	assert.Empty(t, FormatTracks(nil))
}

func TestGenreCacheKey(t *testing.T) {
	assert.Equal(t, "genre-rock", GenreCacheKey("rock"))
	assert.Equal(t, "genre-Hip Hop", GenreCacheKey("Hip Hop"))
}
