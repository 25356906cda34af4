package download

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/lrstanley/go-ytdlp"

	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/probe"
)

func TestEventFromUpdate(t *testing.T) {
	title := "Sample Video"
	update := ytdlp.ProgressUpdate{
		Status:          "downloading",
		DownloadedBytes: 500,
		TotalBytes:      1000,
		Filename:        "/tmp/Sample Video.webm",
		Started:         time.Now().Add(-2 * time.Second),
		Info:            &ytdlp.ExtractedInfo{Title: &title},
	}

	ev := eventFromUpdate(update)
	if ev.Status != model.ProgressDownloading {
		t.Errorf("Expected downloading, got %s", ev.Status)
	}
	if ev.DownloadedBytes != 500 || ev.TotalBytes != 1000 {
		t.Errorf("Unexpected byte counts: %d/%d", ev.DownloadedBytes, ev.TotalBytes)
	}
	if ev.Speed <= 0 || ev.Speed > 500 {
		t.Errorf("Expected speed around 250 B/s, got %f", ev.Speed)
	}
	if ev.Title != title || ev.Filename != update.Filename {
		t.Errorf("Unexpected title/filename: %q %q", ev.Title, ev.Filename)
	}
}

func TestEventFromUpdate_Status(t *testing.T) {
	tests := []struct {
		status   ytdlp.ProgressStatus
		expected model.ProgressStatus
	}{
		{"starting", model.ProgressDownloading},
		{"downloading", model.ProgressDownloading},
		{"post_processing", model.ProgressFinished},
		{"finished", model.ProgressFinished},
		{"error", model.ProgressError},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			ev := eventFromUpdate(ytdlp.ProgressUpdate{Status: tt.status})
			if ev.Status != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, ev.Status)
			}
			if ev.Speed != 0 || ev.ETA != 0 {
				t.Errorf("Expected unknown speed and ETA without a start time, got %f %v", ev.Speed, ev.ETA)
			}
		})
	}
}

// flagValue returns the argument following the first of names found in flags
func flagValue(flags []string, names ...string) (string, bool) {
	for i, f := range flags {
		for _, name := range names {
			if f == name {
				if i+1 < len(flags) {
					return flags[i+1], true
				}
				return "", true
			}
		}
	}
	return "", false
}

func hasFlag(flags []string, names ...string) bool {
	_, ok := flagValue(flags, names...)
	return ok
}

func TestNewDownloadCommand(t *testing.T) {
	tests := []struct {
		name   string
		mode   model.Mode
		format string
		audio  bool
	}{
		{"audio", model.ModeAudio, AudioFormat, true},
		{"video", model.ModeVideo, VideoFormat, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := BuildRequest(testURL, tt.mode, "/media")
			flags := newDownloadCommand(req).GetFlagConfig().ToFlags()

			if got, _ := flagValue(flags, "-f", "--format"); got != tt.format {
				t.Errorf("Expected format %q, got %q in %v", tt.format, got, flags)
			}
			if got, _ := flagValue(flags, "-o", "--output"); got != filepath.Join("/media", OutputTemplate) {
				t.Errorf("Unexpected output template %q in %v", got, flags)
			}
			if got, _ := flagValue(flags, "--cookies-from-browser"); got != CookiesBrowser {
				t.Errorf("Expected cookies from %s, got %q", CookiesBrowser, got)
			}
			if !hasFlag(flags, "--no-playlist") {
				t.Errorf("Expected --no-playlist in %v", flags)
			}

			if got := hasFlag(flags, "-x", "--extract-audio"); got != tt.audio {
				t.Errorf("Expected extract audio %v, flags %v", tt.audio, flags)
			}
			codec, hasCodec := flagValue(flags, "--audio-format")
			quality, hasQuality := flagValue(flags, "--audio-quality")
			if tt.audio {
				if codec != AudioCodec || quality != AudioQuality {
					t.Errorf("Expected %s at %s, got %q at %q", AudioCodec, AudioQuality, codec, quality)
				}
			} else if hasCodec || hasQuality {
				t.Errorf("Expected no audio post-processing for video, got %v", flags)
			}
		})
	}
}

func TestRunArgs(t *testing.T) {
	args := runArgs(BuildRequest(testURL, model.ModeVideo, "/media"))

	if len(args) != 2*len(probe.Headers)+1 {
		t.Fatalf("Unexpected argument count %d: %v", len(args), args)
	}
	for i, header := range probe.Headers {
		if args[2*i] != probe.HeaderFlag || args[2*i+1] != header {
			t.Errorf("Expected %s %q, got %q %q", probe.HeaderFlag, header, args[2*i], args[2*i+1])
		}
	}
	if args[len(args)-1] != testURL {
		t.Errorf("Expected URL last, got %q", args[len(args)-1])
	}
}
