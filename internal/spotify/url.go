package spotify

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// Matches the ID segment of open.spotify.com/artist/<id> links and
// spotify:artist:<id> URIs.
var artistRefPattern = regexp.MustCompile(`artist[/:]([0-9A-Za-z]+)`)

// ExtractArtistID resolves an artist reference to its Spotify ID. It accepts
// a bare ID, an open.spotify.com artist URL (query string ignored), or a
// spotify:artist: URI.
func ExtractArtistID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", errors.New("empty artist reference")
	}
	if idx := strings.Index(ref, "?"); idx != -1 {
		ref = ref[:idx]
	}

	if m := artistRefPattern.FindStringSubmatch(ref); m != nil {
		return m[1], nil
	}
	if strings.ContainsAny(ref, "/:") {
		return "", fmt.Errorf("cannot extract artist ID from %q", ref)
	}
	return ref, nil
}
