package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ytget/easytube/internal/config"
	"github.com/ytget/easytube/internal/download"
	"github.com/ytget/easytube/internal/history"
	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/platform"
)

func TestParseFlagsFrom(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		want    options
		wantErr error
	}{
		{
			name: "url only",
			args: []string{"  youtu.be/abc  "},
			want: options{url: "youtu.be/abc"},
		},
		{
			name: "mode and output",
			args: []string{"-mode", "video", "-o", "/tmp/out", "https://www.youtube.com/watch?v=abc"},
			want: options{mode: "video", output: "/tmp/out", url: "https://www.youtube.com/watch?v=abc"},
		},
		{
			name: "legacy mode",
			args: []string{"-mode", "mp3", "youtu.be/abc"},
			want: options{mode: "mp3", url: "youtu.be/abc"},
		},
		{
			name: "formats",
			args: []string{"-formats", "youtu.be/abc"},
			want: options{listFormats: true, url: "youtu.be/abc"},
		},
		{
			name: "history needs no url",
			args: []string{"-history", "5"},
			want: options{history: 5},
		},
		{name: "missing url", args: nil, wantErr: errUsage},
		{name: "two urls", args: []string{"youtu.be/a", "youtu.be/b"}, wantErr: errUsage},
		{name: "bad mode", args: []string{"-mode", "flac", "youtu.be/abc"}, wantErr: errUsage},
		{name: "negative history", args: []string{"-history", "-1"}, wantErr: errUsage},
		{name: "unknown flag", args: []string{"-nope", "youtu.be/abc"}, wantErr: errUsage},
		{name: "invalid url", args: []string{"notaurl"}, wantErr: platform.ErrInvalidURL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseFlagsFrom(tt.args)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Expected %v, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if *got != tt.want {
				t.Errorf("Expected %+v, got %+v", tt.want, *got)
			}
		})
	}
}

type fakeProber struct {
	formats []model.Format
	err     error
}

func (f *fakeProber) Formats(ctx context.Context, url string) ([]model.Format, error) {
	return f.formats, f.err
}

type fakeDownloader struct {
	result   download.Result
	playlist download.PlaylistResult
	mode     model.Mode
	folder   string
	calls    int
}

func (f *fakeDownloader) Download(ctx context.Context, url string, mode model.Mode, folder, selectedFormat string, sink model.ProgressSink) download.Result {
	f.calls++
	f.mode, f.folder = mode, folder
	sink.OnProgress(model.ProgressEvent{Status: model.ProgressDownloading, DownloadedBytes: 512, TotalBytes: 1024})
	sink.OnProgress(model.ProgressEvent{Status: model.ProgressFinished, DownloadedBytes: 1024, TotalBytes: 1024})
	return f.result
}

func (f *fakeDownloader) DownloadPlaylist(ctx context.Context, url string, mode model.Mode, folder string, sink download.PlaylistSink) download.PlaylistResult {
	f.calls++
	f.mode, f.folder = mode, folder
	video := &model.PlaylistVideo{ID: "a", Title: "First"}
	sink.OnItem(download.PlaylistItem{Index: 0, Total: 1, Video: video})
	sink.OnProgress(model.ProgressEvent{Status: model.ProgressFinished, DownloadedBytes: 10, TotalBytes: 10})
	sink.OnItem(download.PlaylistItem{Index: 0, Total: 1, Video: video, Result: &download.Result{OK: true}})
	return f.playlist
}

type fakeHistory struct {
	entries []history.Entry
	limit   int
}

func (f *fakeHistory) Recent(ctx context.Context, limit int) ([]history.Entry, error) {
	f.limit = limit
	return f.entries, nil
}

func newTestCLI(t *testing.T) (*cli, *bytes.Buffer, *fakeDownloader) {
	t.Helper()
	home := t.TempDir()
	out := &bytes.Buffer{}
	downloader := &fakeDownloader{result: download.Result{OK: true}}
	c := &cli{
		out:        out,
		store:      config.NewStoreAt(filepath.Join(home, config.SettingsFileName), home),
		prober:     &fakeProber{},
		downloader: downloader,
	}
	return c, out, downloader
}

var testFormats = []model.Format{
	{ID: "251", Ext: "webm", ACodec: "opus", VCodec: model.CodecNone, ABR: 160, Resolution: model.ResolutionAudioOnly},
	{ID: "140", Ext: "m4a", ACodec: "mp4a.40.2", VCodec: model.CodecNone, ABR: 129, Resolution: model.ResolutionAudioOnly},
	{ID: "18", Ext: "mp4", ACodec: "mp4a.40.2", VCodec: "avc1", Resolution: "640x360", FileSize: 10 << 20},
}

func TestCLI_Formats(t *testing.T) {
	c, out, _ := newTestCLI(t)
	c.prober = &fakeProber{formats: testFormats}

	if err := c.run(context.Background(), &options{listFormats: true, url: "youtu.be/abc"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"ID", "251", "140", "18", "640x360", "10 MiB", "unknown"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out.String())
		}
	}
}

func TestCLI_BestAudio(t *testing.T) {
	c, out, _ := newTestCLI(t)
	c.prober = &fakeProber{formats: testFormats}

	if err := c.run(context.Background(), &options{bestAudio: true, url: "youtu.be/abc"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if got := strings.TrimSpace(out.String()); got != "140" {
		t.Errorf("Expected 140, got %q", got)
	}

	c.prober = &fakeProber{formats: testFormats[2:]}
	if err := c.run(context.Background(), &options{bestAudio: true, url: "youtu.be/abc"}); err == nil {
		t.Error("Expected an error without audio formats")
	}
}

func TestCLI_ProbeError(t *testing.T) {
	c, _, _ := newTestCLI(t)
	c.prober = &fakeProber{err: errors.New("authentication required")}

	err := c.run(context.Background(), &options{listFormats: true, url: "youtu.be/abc"})
	if err == nil || !strings.Contains(err.Error(), "authentication") {
		t.Errorf("Expected probe error, got %v", err)
	}
}

func TestCLI_DownloadDefaults(t *testing.T) {
	c, out, downloader := newTestCLI(t)

	if err := c.run(context.Background(), &options{url: "youtu.be/abc"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if downloader.calls != 1 {
		t.Fatalf("Expected one download, got %d", downloader.calls)
	}
	if downloader.mode != config.DefaultFormat {
		t.Errorf("Expected default mode %s, got %s", config.DefaultFormat, downloader.mode)
	}
	if downloader.folder != c.store.DownloadFolder(c.store.Load()) {
		t.Errorf("Expected settings folder, got %q", downloader.folder)
	}
	if !strings.Contains(out.String(), "Download complete") {
		t.Errorf("Expected completion message:\n%s", out.String())
	}
}

func TestCLI_DownloadReportsTask(t *testing.T) {
	c, out, downloader := newTestCLI(t)
	task := model.NewDownloadTask("t1", "https://youtu.be/abc", model.ModeAudio, "/music")
	task.Apply(model.ProgressEvent{Status: model.ProgressFinished, Filename: "/music/Live Set.mp3"})
	downloader.result = download.Result{OK: true, Task: task}

	if err := c.run(context.Background(), &options{url: "youtu.be/abc"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"Download complete: Live Set", "Saved to /music/Live Set.mp3"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out.String())
		}
	}
}

func TestCLI_DownloadOverrides(t *testing.T) {
	c, _, downloader := newTestCLI(t)

	if err := c.run(context.Background(), &options{mode: "mp4", output: "/tmp/videos", url: "youtu.be/abc"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if downloader.mode != model.ModeVideo || downloader.folder != "/tmp/videos" {
		t.Errorf("Expected video into /tmp/videos, got %s into %q", downloader.mode, downloader.folder)
	}
}

func TestCLI_DownloadFailure(t *testing.T) {
	c, _, downloader := newTestCLI(t)
	downloader.result = download.Result{Error: "HTTP Error 403: Forbidden"}

	err := c.run(context.Background(), &options{url: "youtu.be/abc"})
	if err == nil || err.Error() != "HTTP Error 403: Forbidden" {
		t.Errorf("Expected the download error, got %v", err)
	}
}

func TestCLI_Playlist(t *testing.T) {
	c, out, downloader := newTestCLI(t)
	playlist := model.NewPlaylist("PL1", "https://www.youtube.com/playlist?list=PL1")
	playlist.AddVideo(&model.PlaylistVideo{ID: "a", Title: "First", Status: model.TaskStatusFinished})
	downloader.playlist = download.PlaylistResult{OK: true, Playlist: playlist}

	if err := c.run(context.Background(), &options{url: "https://www.youtube.com/playlist?list=PL1"}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	for _, want := range []string{"[1/1] First", "1 of 1 videos downloaded"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out.String())
		}
	}
}

func TestCLI_History(t *testing.T) {
	c, out, _ := newTestCLI(t)

	if err := c.run(context.Background(), &options{history: 3}); err == nil {
		t.Error("Expected an error without a history store")
	}

	h := &fakeHistory{entries: []history.Entry{
		{URL: "https://youtu.be/a", Title: "Song", Mode: model.ModeAudio, Folder: "/music", OK: true, FinishedAt: time.Now()},
		{URL: "https://youtu.be/b", Mode: model.ModeVideo, Folder: "/video", FinishedAt: time.Now()},
	}}
	c.history = h

	if err := c.run(context.Background(), &options{history: 3}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if h.limit != 3 {
		t.Errorf("Expected limit 3, got %d", h.limit)
	}
	for _, want := range []string{"Song", "ok", "failed", "https://youtu.be/b"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out.String())
		}
	}
}
