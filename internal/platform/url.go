package platform

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// URL parameters and separators
const (
	PlaylistParam  = "list="
	VideoParam     = "v="
	ParamSeparator = "&"
)

// ErrInvalidURL is returned for input that is not a YouTube link
var ErrInvalidURL = errors.New("not a valid YouTube URL")

// youtubeURLPattern accepts an optional scheme, an optional www. prefix, one of
// the two known hosts, a slash and at least one more character.
var youtubeURLPattern = regexp.MustCompile(`^(https?://)?(www\.)?(youtube\.com|youtu\.be)/.+`)

// IsValidURL performs a syntactic check only; it never touches the network
func IsValidURL(url string) bool {
	url = strings.TrimSpace(url)
	if url == "" {
		return false
	}
	return youtubeURLPattern.MatchString(url)
}

// ValidateURL returns the trimmed URL or ErrInvalidURL
func ValidateURL(url string) (string, error) {
	if !IsValidURL(url) {
		return "", ErrInvalidURL
	}
	return strings.TrimSpace(url), nil
}

// IsPlaylistURL checks if the URL carries a playlist parameter
func IsPlaylistURL(url string) bool {
	return strings.Contains(url, PlaylistParam)
}

// ExtractPlaylistID extracts the playlist ID from the list= parameter
func ExtractPlaylistID(url string) string {
	_, rest, ok := strings.Cut(url, PlaylistParam)
	if !ok {
		return ""
	}
	id, _, _ := strings.Cut(rest, ParamSeparator)
	return strings.TrimSpace(id)
}

// ExtractVideoID extracts the video ID from the v= query parameter
func ExtractVideoID(url string) string {
	_, query, ok := strings.Cut(url, "?")
	if !ok {
		return ""
	}
	for _, param := range strings.Split(query, ParamSeparator) {
		if id, found := strings.CutPrefix(param, VideoParam); found {
			id, _, _ = strings.Cut(id, "#")
			return strings.TrimSpace(id)
		}
	}
	return ""
}

// VideoURL is the canonical watch URL of a video ID
func VideoURL(id string) string {
	return fmt.Sprintf(YouTubeVideoURLTemplate, id)
}
