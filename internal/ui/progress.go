package ui

import (
	"fmt"

	"github.com/dustin/go-humanize"

	"github.com/ytget/easytube/internal/model"
)

// basicStatusText is the one-line status shown by the basic window for the
// latest event status of task
func basicStatusText(loc *Localization, status model.ProgressStatus, task *model.DownloadTask) string {
	switch status {
	case model.ProgressFinished:
		return loc.GetText(KeyDownloadComplete)
	case model.ProgressError:
		return loc.GetText(KeyDownloadError)
	}
	if task.Total > 0 {
		return loc.Format(KeyDownloadingPercent, task.Percent)
	}
	return loc.Format(KeyDownloadingBytes, humanize.IBytes(uint64(max(task.Downloaded, 0))))
}

// advancedProgressText shows percent, speed and ETA for the advanced window
func advancedProgressText(loc *Localization, status model.ProgressStatus, task *model.DownloadTask) string {
	if status == model.ProgressFinished {
		return loc.GetText(KeyProgressDone)
	}

	percent := fmt.Sprintf(PercentFormat, task.Progress*100)

	speed := DashPlaceholder
	if task.Speed > 0 {
		speed = humanize.IBytes(uint64(task.Speed)) + SpeedSuffix
	}

	eta := loc.GetText(KeyCalculating)
	if task.ETASec > 0 {
		eta = loc.Format(KeyETARemaining, task.GetETAString())
	}

	return loc.Format(KeyProgress, percent, speed, eta)
}

// trackerFor returns task, or a fresh task for mode and folder when there is none yet
func trackerFor(task *model.DownloadTask, url string, mode model.Mode, folder string) *model.DownloadTask {
	if task != nil {
		return task
	}
	return model.NewDownloadTask("", url, mode, folder)
}
