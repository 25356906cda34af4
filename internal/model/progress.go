package model

import "time"

// ProgressStatus is the state reported by a progress event
type ProgressStatus string

const (
	ProgressDownloading ProgressStatus = "downloading"
	ProgressFinished    ProgressStatus = "finished"
	ProgressError       ProgressStatus = "error"
)

// ProgressEvent is a point-in-time status update emitted during a transfer.
// Zero values of TotalBytes, Speed and ETA mean "unknown".
type ProgressEvent struct {
	Status          ProgressStatus
	DownloadedBytes int64
	TotalBytes      int64
	Speed           float64 // bytes per second
	ETA             time.Duration
	Filename        string
	Title           string
}

// Fraction returns completion in [0,1], or 0 when the total is unknown
func (e ProgressEvent) Fraction() float64 {
	if e.Status == ProgressFinished {
		return 1
	}
	if e.TotalBytes <= 0 {
		return 0
	}
	f := float64(e.DownloadedBytes) / float64(e.TotalBytes)
	if f > 1 {
		return 1
	}
	if f < 0 {
		return 0
	}
	return f
}

// ProgressSink receives progress events. OnProgress may be called from a
// non-UI goroutine; implementations marshal to their own thread.
type ProgressSink interface {
	OnProgress(ProgressEvent)
}

// ProgressFunc adapts a function to ProgressSink
type ProgressFunc func(ProgressEvent)

// OnProgress calls f(ev)
func (f ProgressFunc) OnProgress(ev ProgressEvent) {
	if f != nil {
		f(ev)
	}
}
