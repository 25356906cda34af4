package model

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"
)

// DownloadTask tracks one download operation for display
type DownloadTask struct {
	ID         string
	URL        string
	Mode       Mode
	Folder     string
	Status     TaskStatus
	Progress   float64 // 0.0 to 1.0
	Percent    int     // 0 to 100
	Downloaded int64   // bytes of the current file
	Total      int64   // bytes of the current file, 0 if unknown
	Speed      float64 // bytes per second
	ETASec     int     // ETA in seconds, -1 if unknown
	LastError  string
	OutputPath string
	Title      string
	StartedAt  time.Time
	FinishedAt time.Time
}

// NewDownloadTask creates an idle task
func NewDownloadTask(id, url string, mode Mode, folder string) *DownloadTask {
	return &DownloadTask{
		ID:     id,
		URL:    url,
		Mode:   mode,
		Folder: folder,
		Status: TaskStatusIdle,
		ETASec: -1,
	}
}

// SetStatus moves the task to next if the transition is legal and reports whether it did
func (dt *DownloadTask) SetStatus(next TaskStatus) bool {
	if !dt.Status.canTransition(next) {
		return false
	}
	if dt.Status == TaskStatusIdle && next == TaskStatusDownloading {
		dt.StartedAt = time.Now()
	}
	if next.IsFinished() {
		dt.FinishedAt = time.Now()
	}
	dt.Status = next
	return true
}

// Apply folds a progress event into the task. Byte counts never move backwards
// within the same file.
func (dt *DownloadTask) Apply(ev ProgressEvent) {
	if dt.Status.IsFinished() {
		return
	}
	dt.SetStatus(TaskStatusDownloading)

	if ev.Filename != "" && ev.Filename != dt.OutputPath {
		dt.OutputPath = ev.Filename
		dt.Downloaded = 0
	}
	if ev.DownloadedBytes > dt.Downloaded {
		dt.Downloaded = ev.DownloadedBytes
	}
	if ev.TotalBytes > 0 {
		dt.Total = ev.TotalBytes
	}
	if ev.Title != "" && dt.Title == "" {
		dt.Title = ev.Title
	}
	dt.Speed = ev.Speed
	if ev.ETA > 0 {
		dt.ETASec = int(ev.ETA.Seconds())
	} else {
		dt.ETASec = -1
	}

	switch {
	case ev.Status == ProgressFinished:
		dt.Progress = 1
	case dt.Total > 0:
		dt.Progress = float64(dt.Downloaded) / float64(dt.Total)
		if dt.Progress > 1 {
			dt.Progress = 1
		}
	}
	dt.Percent = int(dt.Progress * 100)
}

// Finish moves the task to its terminal state
func (dt *DownloadTask) Finish(err error) {
	if err != nil {
		dt.LastError = err.Error()
		dt.SetStatus(TaskStatusError)
		return
	}
	dt.Progress = 1
	dt.Percent = 100
	dt.SetStatus(TaskStatusFinished)
}

// GetETAString returns ETA formatted as hh:mm:ss, or "—" if unknown
func (dt *DownloadTask) GetETAString() string {
	if dt.ETASec <= 0 {
		return "—"
	}

	hours := dt.ETASec / 3600
	minutes := (dt.ETASec % 3600) / 60
	seconds := dt.ETASec % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// GetDisplayTitle returns title, filename, or URL in order of preference
func (dt *DownloadTask) GetDisplayTitle() string {
	if dt.Title != "" && !strings.HasPrefix(dt.Title, "http") {
		return dt.Title
	}

	if dt.OutputPath != "" {
		name := filepath.Base(strings.ReplaceAll(dt.OutputPath, "\\", "/"))
		if idx := strings.LastIndex(name, "."); idx > 0 {
			name = name[:idx]
		}
		return name
	}

	return dt.URL
}
