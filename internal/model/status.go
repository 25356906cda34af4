package model

// TaskStatus represents the state of a single download operation.
// A task moves idle -> downloading -> finished|error; terminal states are final.
type TaskStatus string

const (
	// TaskStatusIdle means the task was created but the transfer has not begun
	TaskStatusIdle TaskStatus = "Idle"

	// TaskStatusDownloading means the transfer is in progress
	TaskStatusDownloading TaskStatus = "Downloading"

	// TaskStatusFinished means the download completed successfully
	TaskStatusFinished TaskStatus = "Finished"

	// TaskStatusError means the download failed
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsFinished returns true if the task reached a terminal state
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusFinished || ts == TaskStatusError
}

// canTransition reports whether moving from ts to next is allowed
func (ts TaskStatus) canTransition(next TaskStatus) bool {
	switch ts {
	case TaskStatusIdle:
		return next == TaskStatusDownloading || next.IsFinished()
	case TaskStatusDownloading:
		return next == TaskStatusDownloading || next.IsFinished()
	default:
		return false
	}
}
