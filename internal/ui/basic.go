package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/easytube/internal/download"
	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/platform"
)

// BasicWindow is the one-click download window
type BasicWindow struct {
	root   *RootUI
	window fyne.Window

	title           *widget.Label
	urlEntry        *widget.Entry
	modeRadio       *widget.RadioGroup
	folderLabel     *widget.Label
	changeFolderBtn *widget.Button
	downloadBtn     *widget.Button
	advancedBtn     *widget.Button
	openFolderBtn   *widget.Button
	historyBtn      *widget.Button
	settingsBtn     *widget.Button
	progress        *widget.ProgressBar
	status          *widget.Label

	folder string
	mode   model.Mode
	// task tracks the running download; only touched on the UI thread
	task *model.DownloadTask
}

// NewBasicWindow builds the window without showing it
func NewBasicWindow(root *RootUI) *BasicWindow {
	bw := &BasicWindow{
		root:   root,
		window: root.app.NewWindow(root.localization.GetText(KeyAppTitle)),
		folder: root.downloadFolder(),
		mode:   root.settings.DefaultFormat,
	}
	bw.setupUI()
	bw.window.Resize(BasicWindowSize)
	return bw
}

// setupUI creates and arranges all UI components
func (bw *BasicWindow) setupUI() {
	loc := bw.root.localization

	bw.title = widget.NewLabelWithStyle(loc.GetText(KeyAppTitle), fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	bw.title.SizeName = theme.SizeNameHeadingText

	bw.urlEntry = widget.NewEntry()
	bw.urlEntry.SetPlaceHolder(loc.GetText(KeyEnterURL))
	// Trigger download when user presses Enter in the URL field
	bw.urlEntry.OnSubmitted = func(string) {
		bw.onDownloadClick()
	}

	bw.modeRadio = widget.NewRadioGroup(nil, nil)
	bw.modeRadio.Horizontal = true
	bw.modeRadio.Required = true
	bw.setModeOptions()
	bw.modeRadio.OnChanged = func(label string) {
		if label == loc.GetText(KeyVideoOption) {
			bw.mode = model.ModeVideo
		} else if label != "" {
			bw.mode = model.ModeAudio
		}
	}

	bw.folderLabel = widget.NewLabel(loc.Format(KeyDestination, bw.folder))
	bw.folderLabel.Truncation = fyne.TextTruncateEllipsis

	bw.changeFolderBtn = widget.NewButton(loc.GetText(KeyChangeFolder), func() {
		bw.root.chooseFolder(bw.window, bw.folder, bw.setFolder)
	})
	bw.downloadBtn = widget.NewButton(loc.GetText(KeyDownload), bw.onDownloadClick)
	bw.downloadBtn.Importance = widget.HighImportance
	bw.advancedBtn = widget.NewButton(loc.GetText(KeyAdvancedMode), bw.root.OpenAdvanced)
	bw.openFolderBtn = widget.NewButton(IconFolder, func() {
		bw.root.openFolder(bw.window, bw.folder)
	})
	bw.historyBtn = widget.NewButton(loc.GetText(KeyHistory), func() {
		bw.root.showHistory(bw.window)
	})
	bw.settingsBtn = widget.NewButton(IconSettings, func() {
		bw.root.showPreferences(bw.window)
	})
	bw.settingsBtn.Importance = widget.LowImportance

	bw.progress = widget.NewProgressBar()
	bw.status = widget.NewLabelWithStyle(loc.GetText(KeyReady), fyne.TextAlignCenter, fyne.TextStyle{})

	header := container.NewBorder(nil, nil, nil, bw.settingsBtn, bw.title)
	folderRow := container.NewBorder(nil, nil, nil, container.NewHBox(bw.openFolderBtn, bw.changeFolderBtn), bw.folderLabel)
	buttons := container.NewGridWithColumns(3, bw.downloadBtn, bw.advancedBtn, bw.historyBtn)

	bw.window.SetContent(container.NewPadded(container.NewVBox(
		header,
		bw.urlEntry,
		container.NewCenter(bw.modeRadio),
		folderRow,
		buttons,
		bw.progress,
		bw.status,
	)))
}

// setModeOptions (re)labels the radio and keeps the current mode selected
func (bw *BasicWindow) setModeOptions() {
	loc := bw.root.localization
	audio, video := loc.GetText(KeyAudioOption), loc.GetText(KeyVideoOption)
	bw.modeRadio.Options = []string{audio, video}
	if bw.mode == model.ModeVideo {
		bw.modeRadio.Selected = video
	} else {
		bw.modeRadio.Selected = audio
	}
	bw.modeRadio.Refresh()
}

func (bw *BasicWindow) setFolder(folder string) {
	bw.folder = folder
	bw.folderLabel.SetText(bw.root.localization.Format(KeyDestination, folder))
}

// onDownloadClick validates the input and starts the worker
func (bw *BasicWindow) onDownloadClick() {
	loc := bw.root.localization
	url := strings.TrimSpace(bw.urlEntry.Text)
	if url == "" {
		bw.root.showError(bw.window, loc.GetText(KeyPleaseEnterURL))
		return
	}
	if !platform.IsValidURL(url) {
		bw.root.showError(bw.window, loc.GetText(KeyInvalidURL))
		return
	}

	bw.downloadBtn.Disable()
	bw.status.SetText(loc.GetText(KeyPreparing))
	bw.progress.SetValue(0)

	mode, folder := bw.mode, bw.folder
	bw.task = model.NewDownloadTask("", url, mode, folder)
	downloader := bw.root.services.Downloader
	bw.root.runAsync(func() {
		if platform.IsPlaylistURL(url) {
			res := downloader.DownloadPlaylist(context.Background(), url, mode, folder, &basicPlaylistSink{bw: bw})
			fyne.Do(func() {
				bw.onPlaylistFinished(res, folder)
			})
			return
		}

		res := downloader.Download(context.Background(), url, mode, folder, "", model.ProgressFunc(bw.onProgress))
		fyne.Do(func() {
			bw.onFinished(res.OK, res.Error, folder)
		})
	})
}

// onProgress may be called from any goroutine
func (bw *BasicWindow) onProgress(ev model.ProgressEvent) {
	fyne.Do(func() {
		bw.task = trackerFor(bw.task, "", bw.mode, bw.folder)
		bw.task.Apply(ev)
		bw.progress.SetValue(bw.task.Progress)
		bw.status.SetText(basicStatusText(bw.root.localization, ev.Status, bw.task))
	})
}

func (bw *BasicWindow) onFinished(ok bool, errText, folder string) {
	loc := bw.root.localization
	if ok {
		dialog.ShowInformation(loc.GetText(KeyCompletedTitle), loc.Format(KeyCompletedMessage, folder), bw.window)
	} else {
		bw.root.showError(bw.window, errText)
	}
	bw.reset()
}

func (bw *BasicWindow) onPlaylistFinished(res download.PlaylistResult, folder string) {
	loc := bw.root.localization
	if message, ok := playlistSummary(loc, res, folder); ok {
		dialog.ShowInformation(loc.GetText(KeyCompletedTitle), message, bw.window)
	} else {
		bw.root.showError(bw.window, message)
	}
	bw.reset()
}

// playlistSummary is the dialog text for a finished playlist and whether it succeeded.
// A nil playlist with OK set means the linked video was downloaded on its own.
func playlistSummary(loc *Localization, res download.PlaylistResult, folder string) (string, bool) {
	if res.Playlist == nil || len(res.Playlist.Videos) == 0 {
		if res.OK {
			return loc.Format(KeyCompletedMessage, folder), true
		}
		return res.Error, false
	}
	summary := loc.Format(KeyPlaylistDone, res.Playlist.Count(model.TaskStatusFinished), len(res.Playlist.Videos))
	if res.OK {
		return summary + "\n" + loc.Format(KeyCompletedMessage, folder), true
	}
	return summary + "\n" + res.Error, false
}

func (bw *BasicWindow) reset() {
	bw.task = nil
	bw.downloadBtn.Enable()
	bw.status.SetText(bw.root.localization.GetText(KeyReady))
	bw.progress.SetValue(0)
}

// refreshTexts re-applies localized strings
func (bw *BasicWindow) refreshTexts() {
	loc := bw.root.localization
	bw.window.SetTitle(loc.GetText(KeyAppTitle))
	bw.title.SetText(loc.GetText(KeyAppTitle))
	bw.urlEntry.SetPlaceHolder(loc.GetText(KeyEnterURL))
	bw.setModeOptions()
	bw.folderLabel.SetText(loc.Format(KeyDestination, bw.folder))
	bw.changeFolderBtn.SetText(loc.GetText(KeyChangeFolder))
	bw.downloadBtn.SetText(loc.GetText(KeyDownload))
	bw.advancedBtn.SetText(loc.GetText(KeyAdvancedMode))
	bw.historyBtn.SetText(loc.GetText(KeyHistory))
	if !bw.downloadBtn.Disabled() {
		bw.status.SetText(loc.GetText(KeyReady))
	}
}

// basicPlaylistSink shows which playlist item is downloading
type basicPlaylistSink struct {
	bw *BasicWindow
}

func (s *basicPlaylistSink) OnProgress(ev model.ProgressEvent) {
	s.bw.onProgress(ev)
}

func (s *basicPlaylistSink) OnItem(item download.PlaylistItem) {
	if item.Result != nil {
		return
	}
	video := item.Video
	fyne.Do(func() {
		bw := s.bw
		title := video.Title
		if title == "" {
			title = video.URL
		}
		bw.task = model.NewDownloadTask("", video.URL, bw.mode, bw.folder)
		bw.progress.SetValue(0)
		bw.status.SetText(bw.root.localization.Format(KeyPlaylistItem, item.Index+1, item.Total, title))
	})
}
