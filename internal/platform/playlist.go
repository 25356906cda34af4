package platform

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/ytdlp/v2"
)

// Timeout constants
const (
	DefaultParseTimeout = 60 * time.Second
)

// Default values
const (
	DefaultPlaylistName = "Unknown Playlist"
	PlaylistSuffix      = " Playlist"
	MinPrefixLength     = 10
)

// URL templates
const (
	YouTubeVideoURLTemplate = "https://www.youtube.com/watch?v=%s"
)

// PlaylistService expands playlist links into their videos
type PlaylistService struct {
	timeout time.Duration
}

// NewPlaylistService creates a new playlist service
func NewPlaylistService() *PlaylistService {
	return &PlaylistService{
		timeout: DefaultParseTimeout,
	}
}

// ParsePlaylist lists every video of the playlist referenced by url
func (p *PlaylistService) ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error) {
	if !IsPlaylistURL(url) {
		return nil, fmt.Errorf("invalid playlist URL: %s", url)
	}

	playlistID := ExtractPlaylistID(url)
	if playlistID == "" {
		return nil, fmt.Errorf("could not extract playlist ID from URL: %s", url)
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	items, err := ytdlp.New().GetPlaylistItemsAll(ctx, playlistID, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to get playlist items: %w", err)
	}

	playlist := model.NewPlaylist(playlistID, url)
	for _, it := range items {
		playlist.AddVideo(&model.PlaylistVideo{
			ID:    it.VideoID,
			Title: it.Title,
			URL:   VideoURL(it.VideoID),
		})
	}
	playlist.Title = playlistTitle(playlist.Videos)

	return playlist, nil
}

// playlistTitle derives a display name from the shared prefix of the first two titles
func playlistTitle(videos []*model.PlaylistVideo) string {
	if len(videos) == 0 {
		return DefaultPlaylistName
	}
	if len(videos) > 1 {
		prefix := commonPrefix(videos[0].Title, videos[1].Title)
		if len(prefix) > MinPrefixLength {
			return strings.TrimSpace(prefix) + PlaylistSuffix
		}
	}
	return videos[0].Title + PlaylistSuffix
}

// commonPrefix finds the common prefix between two strings
func commonPrefix(s1, s2 string) string {
	n := min(len(s1), len(s2))
	for i := 0; i < n; i++ {
		if s1[i] != s2[i] {
			return s1[:i]
		}
	}
	return s1[:n]
}
