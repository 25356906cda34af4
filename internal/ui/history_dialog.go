package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"github.com/dustin/go-humanize"

	"github.com/ytget/easytube/internal/history"
)

// historyLine renders one history entry as a single line
func historyLine(entry history.Entry) string {
	icon := IconOK
	if !entry.OK {
		icon = IconError
	}

	name := entry.Title
	if name == "" {
		name = entry.URL
	}

	parts := []string{icon + " " + humanize.Time(entry.FinishedAt), name, string(entry.Mode), entry.Folder}
	if !entry.OK && entry.Error != "" {
		parts = append(parts, firstLine(entry.Error))
	}
	return strings.Join(parts, MiddleDotSeparator)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// showHistory loads recent downloads in the background and lists them
func (ui *RootUI) showHistory(window fyne.Window) {
	loc := ui.localization
	if ui.services.History == nil {
		dialog.ShowInformation(loc.GetText(KeyHistory), loc.GetText(KeyHistoryUnavailable), window)
		return
	}

	source := ui.services.History
	ui.runAsync(func() {
		entries, err := source.Recent(context.Background(), HistoryLimit)
		fyne.Do(func() {
			if err != nil {
				dialog.ShowError(err, window)
				return
			}
			if len(entries) == 0 {
				dialog.ShowInformation(loc.GetText(KeyHistory), loc.GetText(KeyNoHistory), window)
				return
			}

			list := widget.NewList(
				func() int { return len(entries) },
				func() fyne.CanvasObject { return widget.NewLabel("") },
				func(id widget.ListItemID, o fyne.CanvasObject) {
					o.(*widget.Label).SetText(historyLine(entries[id]))
				},
			)
			d := dialog.NewCustom(loc.GetText(KeyHistory), loc.GetText(KeyClose), list, window)
			d.Resize(HistoryDialogSize)
			d.Show()
		})
	})
}
