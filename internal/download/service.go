package download

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/ytget/easytube/internal/history"
	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/platform"
)

// Result is the outcome of one Download call. Failures are reported here,
// never returned as errors or panics.
type Result struct {
	OK    bool
	Error string
	Task  *model.DownloadTask
}

// Service orchestrates downloads. Configure it before first use; Download
// may then be called from several goroutines at once.
type Service struct {
	transfer Transfer
	recorder Recorder
	lister   PlaylistLister
	newID    func() string
}

// NewService creates a service using transfer, or yt-dlp when transfer is nil
func NewService(transfer Transfer) *Service {
	if transfer == nil {
		transfer = NewYTDLPTransfer()
	}
	return &Service{
		transfer: transfer,
		lister:   platform.NewPlaylistService(),
		newID:    generateTaskID,
	}
}

// SetRecorder sets where finished downloads are recorded; nil disables history
func (s *Service) SetRecorder(recorder Recorder) {
	s.recorder = recorder
}

// SetPlaylistLister replaces the playlist expander
func (s *Service) SetPlaylistLister(lister PlaylistLister) {
	s.lister = lister
}

// Download fetches url into folder. sink may be nil.
//
// selectedFormat is accepted for the advanced window but is not applied: the
// request always uses the mode's default format expression.
func (s *Service) Download(ctx context.Context, url string, mode model.Mode, folder, selectedFormat string, sink model.ProgressSink) Result {
	task := model.NewDownloadTask(s.newID(), url, mode, folder)
	result := s.run(ctx, task, selectedFormat, sink)
	s.record(ctx, task)
	return result
}

func (s *Service) run(ctx context.Context, task *model.DownloadTask, selectedFormat string, sink model.ProgressSink) (result Result) {
	var mu sync.Mutex

	fail := func(err error) Result {
		mu.Lock()
		defer mu.Unlock()
		task.Finish(err)
		log.Printf("Download %s failed: %v", task.ID, err)
		return Result{Error: task.LastError, Task: task}
	}

	defer func() {
		if r := recover(); r != nil {
			result = fail(fmt.Errorf("unexpected failure: %v", r))
		}
	}()

	url, err := platform.ValidateURL(task.URL)
	if err != nil {
		return fail(err)
	}
	mode, err := model.ParseMode(string(task.Mode))
	if err != nil {
		return fail(err)
	}
	task.URL, task.Mode = url, mode

	if err := platform.CreateDirectoryIfNotExists(task.Folder); err != nil {
		return fail(fmt.Errorf("failed to prepare download folder: %w", err))
	}
	if mode.IsAudio() && !platform.HasExecutable(platform.FFmpegCommand) {
		log.Printf("Warning: %s not found on PATH; audio extraction will likely fail", platform.FFmpegCommand)
	}
	if selectedFormat != "" {
		log.Printf("Download %s: selected format %s is not applied", task.ID, selectedFormat)
	}

	req := BuildRequest(url, mode, task.Folder)

	mu.Lock()
	task.SetStatus(model.TaskStatusDownloading)
	mu.Unlock()
	log.Printf("Download %s started: %s (%s) -> %s", task.ID, url, mode, task.Folder)

	hook := func(ev model.ProgressEvent) {
		mu.Lock()
		task.Apply(ev)
		mu.Unlock()
		if sink != nil {
			sink.OnProgress(ev)
		}
	}

	if err := s.transfer.Transfer(ctx, req, hook); err != nil {
		return fail(err)
	}

	mu.Lock()
	defer mu.Unlock()
	task.Finish(nil)
	log.Printf("Download %s finished", task.ID)
	return Result{OK: true, Task: task}
}

// record stores the outcome in the history store, if any
func (s *Service) record(ctx context.Context, task *model.DownloadTask) {
	if s.recorder == nil {
		return
	}
	entry := history.Entry{
		TaskID:     task.ID,
		URL:        task.URL,
		Title:      task.GetDisplayTitle(),
		Mode:       task.Mode,
		Folder:     task.Folder,
		OK:         task.Status == model.TaskStatusFinished,
		Error:      task.LastError,
		FinishedAt: task.FinishedAt,
	}
	if err := s.recorder.Record(context.WithoutCancel(ctx), entry); err != nil {
		log.Printf("Failed to record download %s: %v", task.ID, err)
	}
}

// generateTaskID generates a unique task ID
func generateTaskID() string {
	return "task-" + uuid.NewString()
}
