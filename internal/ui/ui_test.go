package ui

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/easytube/internal/config"
	"github.com/ytget/easytube/internal/download"
	"github.com/ytget/easytube/internal/model"
)

type fakeProber struct {
	formats []model.Format
	err     error
	calls   int
}

func (f *fakeProber) Formats(ctx context.Context, url string) ([]model.Format, error) {
	f.calls++
	return f.formats, f.err
}

type downloadCall struct {
	url            string
	mode           model.Mode
	folder         string
	selectedFormat string
}

type fakeDownloader struct {
	mu        sync.Mutex
	result    download.Result
	playlist  download.PlaylistResult
	events    []model.ProgressEvent
	calls     []downloadCall
	playlists []downloadCall
}

func (f *fakeDownloader) Download(ctx context.Context, url string, mode model.Mode, folder, selectedFormat string, sink model.ProgressSink) download.Result {
	f.mu.Lock()
	f.calls = append(f.calls, downloadCall{url, mode, folder, selectedFormat})
	f.mu.Unlock()
	for _, ev := range f.events {
		if sink != nil {
			sink.OnProgress(ev)
		}
	}
	return f.result
}

func (f *fakeDownloader) DownloadPlaylist(ctx context.Context, url string, mode model.Mode, folder string, sink download.PlaylistSink) download.PlaylistResult {
	f.mu.Lock()
	f.playlists = append(f.playlists, downloadCall{url: url, mode: mode, folder: folder})
	f.mu.Unlock()
	return f.playlist
}

// newTestRoot builds a RootUI over a temp settings file with synchronous workers
func newTestRoot(t *testing.T, settingsJSON string) (*RootUI, *fakeProber, *fakeDownloader, *config.Store) {
	t.Helper()

	home := t.TempDir()
	store := config.NewStoreAt(filepath.Join(home, config.SettingsFileName), home)
	if settingsJSON != "" {
		if err := os.WriteFile(store.Path(), []byte(settingsJSON), 0644); err != nil {
			t.Fatalf("Failed to write settings: %v", err)
		}
	}

	prober := &fakeProber{}
	downloader := &fakeDownloader{result: download.Result{OK: true}}
	root := NewRootUI(test.NewApp(), Services{Store: store, Prober: prober, Downloader: downloader})
	root.runAsync = func(f func()) { f() }
	return root, prober, downloader, store
}

var sampleFormats = []model.Format{
	{ID: "251", Ext: "webm", ACodec: "opus", VCodec: model.CodecNone, ABR: 160, Resolution: model.ResolutionAudioOnly},
	{ID: "140", Ext: "m4a", ACodec: "mp4a.40.2", VCodec: model.CodecNone, ABR: 129, Resolution: model.ResolutionAudioOnly},
	{ID: "137", Ext: "mp4", ACodec: model.CodecNone, VCodec: "avc1", Resolution: "1920x1080", FileSize: 80 << 20},
	{ID: "18", Ext: "mp4", ACodec: "mp4a.40.2", VCodec: "avc1", Resolution: "640x360", FileSize: 10 << 20},
}
