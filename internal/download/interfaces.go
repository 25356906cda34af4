package download

import (
	"context"

	"github.com/ytget/easytube/internal/history"
	"github.com/ytget/easytube/internal/model"
)

// Transfer performs the actual download described by req, calling hook for
// every progress update
type Transfer interface {
	Transfer(ctx context.Context, req Request, hook func(model.ProgressEvent)) error
}

// Recorder persists finished downloads
type Recorder interface {
	Record(ctx context.Context, entry history.Entry) error
}

// PlaylistLister expands a playlist URL into its videos
type PlaylistLister interface {
	ParsePlaylist(ctx context.Context, url string) (*model.Playlist, error)
}

// Downloader is what the presentation layer needs from the service
type Downloader interface {
	Download(ctx context.Context, url string, mode model.Mode, folder, selectedFormat string, sink model.ProgressSink) Result
	DownloadPlaylist(ctx context.Context, url string, mode model.Mode, folder string, sink PlaylistSink) PlaylistResult
}
