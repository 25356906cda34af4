package download

import (
	"context"
	"fmt"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/probe"
)

// DefaultProgressInterval is how often yt-dlp progress is sampled
const DefaultProgressInterval = 250 * time.Millisecond

// YTDLPTransfer downloads through the yt-dlp executable
type YTDLPTransfer struct {
	ProgressInterval time.Duration
}

// NewYTDLPTransfer creates a transfer with the default progress interval
func NewYTDLPTransfer() *YTDLPTransfer {
	return &YTDLPTransfer{ProgressInterval: DefaultProgressInterval}
}

// Transfer runs yt-dlp for req
func (t *YTDLPTransfer) Transfer(ctx context.Context, req Request, hook func(model.ProgressEvent)) error {
	dl := newDownloadCommand(req)

	if hook != nil {
		interval := t.ProgressInterval
		if interval <= 0 {
			interval = DefaultProgressInterval
		}
		dl = dl.ProgressFunc(interval, func(update ytdlp.ProgressUpdate) {
			hook(eventFromUpdate(update))
		})
	}

	if _, err := dl.Run(ctx, runArgs(req)...); err != nil {
		return fmt.Errorf("yt-dlp download failed: %w", err)
	}
	return nil
}

// newDownloadCommand maps req to yt-dlp flags; headers go through runArgs
func newDownloadCommand(req Request) *ytdlp.Command {
	dl := ytdlp.New().
		Format(req.Format).
		Output(req.Output).
		NoPlaylist()

	if req.CookiesBrowser != "" {
		dl = dl.CookiesFromBrowser(req.CookiesBrowser)
	}
	if req.ExtractAudio {
		dl = dl.ExtractAudio().
			AudioFormat(req.AudioFormat).
			AudioQuality(req.AudioQuality)
	}
	return dl
}

// runArgs lists the arguments after the flags: one --add-headers per header, then the URL
func runArgs(req Request) []string {
	args := make([]string, 0, 2*len(req.Headers)+1)
	for _, header := range req.Headers {
		args = append(args, probe.HeaderFlag, header)
	}
	return append(args, req.URL)
}

// eventFromUpdate translates a yt-dlp progress update
func eventFromUpdate(update ytdlp.ProgressUpdate) model.ProgressEvent {
	ev := model.ProgressEvent{
		Status:          model.ProgressDownloading,
		DownloadedBytes: int64(update.DownloadedBytes),
		TotalBytes:      int64(update.TotalBytes),
		Filename:        update.Filename,
	}

	switch string(update.Status) {
	case "finished", "post_processing":
		ev.Status = model.ProgressFinished
	case "error":
		ev.Status = model.ProgressError
	}

	// Calculate speed
	if !update.Started.IsZero() {
		elapsed := time.Since(update.Started)
		if elapsed.Seconds() > 0 {
			ev.Speed = float64(update.DownloadedBytes) / elapsed.Seconds()
		}
		if eta := update.ETA(); eta > 0 {
			ev.ETA = eta
		}
	}

	if update.Info != nil && update.Info.Title != nil {
		ev.Title = *update.Info.Title
	}
	return ev
}
