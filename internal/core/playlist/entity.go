package playlist

import "strings"

// Artist is a performer credited on a track
type Artist struct {
	Name string `json:"name"`
}

// Track is a single recommended track
type Track struct {
	Name    string   `json:"name"`
	Artists []Artist `json:"artists"`
}

// RecommendationsResponse is the subset of the recommendations payload the lookup reads
type RecommendationsResponse struct {
	Tracks []Track `json:"tracks"`
}

// String formats the track as "<artist1, artist2> - <title>"
func (t Track) String() string {
	names := make([]string, 0, len(t.Artists))
	for _, artist := range t.Artists {
		names = append(names, artist.Name)
	}
	return strings.Join(names, ", ") + " - " + t.Name
}

// FormatTracks renders tracks in the order they were given.
// The result is never nil so an empty playlist serializes as [].
func FormatTracks(tracks []Track) []string {
	formatted := make([]string, 0, len(tracks))
	for _, track := range tracks {
		formatted = append(formatted, track.String())
	}
	return formatted
}

// GenreCacheKey builds the cache key for a genre. The genre is used verbatim.
func GenreCacheKey(genre string) string {
	return "genre-" + genre
}
