package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/easytube/internal/download"
	"github.com/ytget/easytube/internal/model"
)

func TestBasicWindow_Defaults(t *testing.T) {
	root, _, _, _ := newTestRoot(t, `{"default_format": "mp4", "last_download_path": "/picked"}`)
	bw := NewBasicWindow(root)

	if bw.mode != model.ModeVideo {
		t.Errorf("Expected video mode from settings, got %s", bw.mode)
	}
	if bw.modeRadio.Selected != root.localization.GetText(KeyVideoOption) {
		t.Errorf("Expected video option selected, got %q", bw.modeRadio.Selected)
	}
	if bw.folder != "/picked" {
		t.Errorf("Expected last download path as folder, got %q", bw.folder)
	}
	if bw.status.Text != root.localization.GetText(KeyReady) {
		t.Errorf("Expected ready status, got %q", bw.status.Text)
	}
}

func TestBasicWindow_RejectsInvalidInput(t *testing.T) {
	root, _, downloader, _ := newTestRoot(t, "")
	bw := NewBasicWindow(root)

	for _, input := range []string{"", "   ", "notaurl", "https://vimeo.com/1"} {
		bw.urlEntry.SetText(input)
		test.Tap(bw.downloadBtn)
	}

	if len(downloader.calls) != 0 {
		t.Errorf("Expected no downloads for invalid input, got %d", len(downloader.calls))
	}
	if bw.downloadBtn.Disabled() {
		t.Error("Expected download button to stay enabled")
	}
}

func TestBasicWindow_Download(t *testing.T) {
	root, _, downloader, _ := newTestRoot(t, "")
	downloader.events = []model.ProgressEvent{
		{Status: model.ProgressDownloading, DownloadedBytes: 50, TotalBytes: 100},
	}
	bw := NewBasicWindow(root)
	folder := t.TempDir()
	bw.setFolder(folder)

	bw.urlEntry.SetText("  youtu.be/abc123  ")
	bw.modeRadio.SetSelected(root.localization.GetText(KeyVideoOption))
	test.Tap(bw.downloadBtn)

	if len(downloader.calls) != 1 {
		t.Fatalf("Expected one download, got %d", len(downloader.calls))
	}
	call := downloader.calls[0]
	if call.url != "youtu.be/abc123" || call.mode != model.ModeVideo || call.folder != folder || call.selectedFormat != "" {
		t.Errorf("Unexpected download call: %+v", call)
	}

	if bw.downloadBtn.Disabled() {
		t.Error("Expected download button to be re-enabled")
	}
	if bw.progress.Value != 0 || bw.status.Text != root.localization.GetText(KeyReady) {
		t.Errorf("Expected reset state, got progress=%f status=%q", bw.progress.Value, bw.status.Text)
	}
}

func TestBasicWindow_DownloadFailureResets(t *testing.T) {
	root, _, downloader, _ := newTestRoot(t, "")
	downloader.result = download.Result{Error: "HTTP Error 403"}
	bw := NewBasicWindow(root)
	bw.setFolder(t.TempDir())

	bw.urlEntry.SetText("https://www.youtube.com/watch?v=abc")
	test.Tap(bw.downloadBtn)

	if len(downloader.calls) != 1 || downloader.calls[0].mode != model.ModeAudio {
		t.Errorf("Expected one audio download, got %+v", downloader.calls)
	}
	if bw.downloadBtn.Disabled() {
		t.Error("Expected download button to be re-enabled after failure")
	}
}

func TestBasicWindow_PlaylistURL(t *testing.T) {
	root, _, downloader, _ := newTestRoot(t, "")
	playlist := model.NewPlaylist("PL1", "https://www.youtube.com/playlist?list=PL1")
	playlist.AddVideo(&model.PlaylistVideo{ID: "a", Status: model.TaskStatusFinished})
	downloader.playlist = download.PlaylistResult{OK: true, Playlist: playlist}
	bw := NewBasicWindow(root)
	bw.setFolder(t.TempDir())

	bw.urlEntry.SetText("https://www.youtube.com/playlist?list=PL1")
	test.Tap(bw.downloadBtn)

	if len(downloader.playlists) != 1 || len(downloader.calls) != 0 {
		t.Errorf("Expected a playlist download, got %d playlist and %d single calls", len(downloader.playlists), len(downloader.calls))
	}
	if bw.downloadBtn.Disabled() {
		t.Error("Expected download button to be re-enabled")
	}
}

func TestBasicWindow_PlaylistLinkedVideo(t *testing.T) {
	root, _, downloader, _ := newTestRoot(t, "")
	downloader.playlist = download.PlaylistResult{OK: true}
	bw := NewBasicWindow(root)
	bw.setFolder(t.TempDir())

	bw.urlEntry.SetText("https://www.youtube.com/watch?v=abc&list=RDabc")
	test.Tap(bw.downloadBtn)

	if len(downloader.playlists) != 1 {
		t.Fatalf("Expected a playlist download, got %d", len(downloader.playlists))
	}
	if bw.downloadBtn.Disabled() {
		t.Error("Expected download button to be re-enabled")
	}
}

func TestPlaylistSummary(t *testing.T) {
	root, _, _, _ := newTestRoot(t, `{"language": "en"}`)
	loc := root.localization
	playlist := model.NewPlaylist("PL1", "https://www.youtube.com/playlist?list=PL1")
	playlist.AddVideo(&model.PlaylistVideo{ID: "a", Status: model.TaskStatusFinished})
	playlist.AddVideo(&model.PlaylistVideo{ID: "b", Status: model.TaskStatusError})
	done := loc.Format(KeyPlaylistDone, 1, 2)
	completed := loc.Format(KeyCompletedMessage, "/music")

	tests := []struct {
		name    string
		res     download.PlaylistResult
		message string
		ok      bool
	}{
		{"linked video", download.PlaylistResult{OK: true}, completed, true},
		{"nothing downloaded", download.PlaylistResult{Error: "no videos"}, "no videos", false},
		{"playlist done", download.PlaylistResult{OK: true, Playlist: playlist}, done + "\n" + completed, true},
		{"playlist failed", download.PlaylistResult{Error: "1 failed", Playlist: playlist}, done + "\n1 failed", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			message, ok := playlistSummary(loc, tt.res, "/music")
			if message != tt.message || ok != tt.ok {
				t.Errorf("Expected (%q, %v), got (%q, %v)", tt.message, tt.ok, message, ok)
			}
		})
	}
}

func TestBasicPlaylistSink(t *testing.T) {
	root, _, _, _ := newTestRoot(t, "")
	bw := NewBasicWindow(root)
	sink := &basicPlaylistSink{bw: bw}

	videoURL := "https://www.youtube.com/watch?v=second"
	sink.OnItem(download.PlaylistItem{Index: 1, Total: 3, Video: &model.PlaylistVideo{Title: "Second", URL: videoURL}})
	expected := root.localization.Format(KeyPlaylistItem, 2, 3, "Second")
	if bw.status.Text != expected {
		t.Errorf("Expected %q, got %q", expected, bw.status.Text)
	}
	if bw.task == nil || bw.task.URL != videoURL {
		t.Fatalf("Expected a task tracking %s, got %+v", videoURL, bw.task)
	}

	sink.OnItem(download.PlaylistItem{Index: 2, Total: 3, Video: &model.PlaylistVideo{URL: videoURL}})
	if expected := root.localization.Format(KeyPlaylistItem, 3, 3, videoURL); bw.status.Text != expected {
		t.Errorf("Expected URL as title, got %q", bw.status.Text)
	}

	sink.OnProgress(model.ProgressEvent{Status: model.ProgressDownloading, DownloadedBytes: 25, TotalBytes: 100})
	if bw.progress.Value != 0.25 {
		t.Errorf("Expected progress 0.25, got %f", bw.progress.Value)
	}
}
