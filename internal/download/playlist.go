package download

import (
	"context"
	"fmt"
	"log"

	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/platform"
)

// PlaylistItem reports one video of a playlist run. Result is nil when the
// item is starting.
type PlaylistItem struct {
	Index  int
	Total  int
	Video  *model.PlaylistVideo
	Result *Result
}

// PlaylistSink receives per-item notifications plus the progress of the
// item being downloaded
type PlaylistSink interface {
	model.ProgressSink
	OnItem(item PlaylistItem)
}

// PlaylistResult is the outcome of DownloadPlaylist
type PlaylistResult struct {
	OK       bool
	Error    string
	Playlist *model.Playlist
	Results  []Result
}

// DownloadPlaylist expands url and downloads each video in turn on the
// calling goroutine. A failed item does not stop the rest.
func (s *Service) DownloadPlaylist(ctx context.Context, url string, mode model.Mode, folder string, sink PlaylistSink) PlaylistResult {
	if s.lister == nil {
		return PlaylistResult{Error: "playlist support is not configured"}
	}

	playlist, err := s.lister.ParsePlaylist(ctx, url)
	if err != nil {
		log.Printf("Failed to expand playlist %s: %v", url, err)
		if res, ok := s.downloadLinkedVideo(ctx, url, mode, folder, sink); ok {
			return res
		}
		return PlaylistResult{Error: err.Error()}
	}
	if len(playlist.Videos) == 0 {
		if res, ok := s.downloadLinkedVideo(ctx, url, mode, folder, sink); ok {
			return res
		}
		return PlaylistResult{Error: "playlist has no videos", Playlist: playlist}
	}

	log.Printf("Downloading playlist %s (%d videos)", playlist.ID, len(playlist.Videos))

	total := len(playlist.Videos)
	out := PlaylistResult{Playlist: playlist, Results: make([]Result, 0, total)}
	for i, video := range playlist.Videos {
		if err := ctx.Err(); err != nil {
			out.Error = fmt.Sprintf("playlist cancelled after %d of %d videos: %v", i, total, err)
			return out
		}

		playlist.UpdateVideoStatus(video.ID, model.TaskStatusDownloading, "")
		if sink != nil {
			sink.OnItem(PlaylistItem{Index: i, Total: total, Video: video})
		}

		var progress model.ProgressSink
		if sink != nil {
			progress = sink
		}
		res := s.Download(ctx, video.URL, mode, folder, "", progress)
		if res.OK {
			playlist.UpdateVideoStatus(video.ID, model.TaskStatusFinished, "")
		} else {
			playlist.UpdateVideoStatus(video.ID, model.TaskStatusError, res.Error)
		}
		out.Results = append(out.Results, res)

		if sink != nil {
			sink.OnItem(PlaylistItem{Index: i, Total: total, Video: video, Result: &res})
		}
	}

	out.OK = !playlist.HasErrors()
	if !out.OK {
		out.Error = fmt.Sprintf("%d of %d videos failed", playlist.Count(model.TaskStatusError), total)
	}
	return out
}

// downloadLinkedVideo downloads the video named by the v= parameter of a
// playlist link, e.g. a watch link inside a mix. ok is false without one.
func (s *Service) downloadLinkedVideo(ctx context.Context, url string, mode model.Mode, folder string, sink PlaylistSink) (PlaylistResult, bool) {
	id := platform.ExtractVideoID(url)
	if id == "" {
		return PlaylistResult{}, false
	}
	log.Printf("Downloading linked video %s instead of playlist", id)

	var progress model.ProgressSink
	if sink != nil {
		progress = sink
	}
	res := s.Download(ctx, platform.VideoURL(id), mode, folder, "", progress)
	return PlaylistResult{OK: res.OK, Error: res.Error, Results: []Result{res}}, true
}
