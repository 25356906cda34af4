package model

import (
	"time"
)

// PlaylistVideo represents a single entry of a playlist
type PlaylistVideo struct {
	ID     string     `json:"id"`
	Title  string     `json:"title"`
	URL    string     `json:"url"`
	Status TaskStatus `json:"status"`
	Error  string     `json:"error,omitempty"`
}

// Playlist represents a YouTube playlist expanded into its videos
type Playlist struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	URL       string           `json:"url"`
	Videos    []*PlaylistVideo `json:"videos"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

// NewPlaylist creates a new playlist instance
func NewPlaylist(id, url string) *Playlist {
	now := time.Now()
	return &Playlist{
		ID:        id,
		URL:       url,
		Videos:    make([]*PlaylistVideo, 0),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// AddVideo adds a video to the playlist
func (p *Playlist) AddVideo(video *PlaylistVideo) {
	if video.Status == "" {
		video.Status = TaskStatusIdle
	}
	p.Videos = append(p.Videos, video)
	p.UpdatedAt = time.Now()
}

// UpdateVideoStatus updates the status of a specific video
func (p *Playlist) UpdateVideoStatus(videoID string, status TaskStatus, errMsg string) {
	for _, video := range p.Videos {
		if video.ID == videoID {
			video.Status = status
			video.Error = errMsg
			p.UpdatedAt = time.Now()
			break
		}
	}
}

// Count returns how many videos are in the given status
func (p *Playlist) Count(status TaskStatus) int {
	n := 0
	for _, video := range p.Videos {
		if video.Status == status {
			n++
		}
	}
	return n
}

// HasErrors checks if any video has errors
func (p *Playlist) HasErrors() bool {
	return p.Count(TaskStatusError) > 0
}
