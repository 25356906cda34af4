package ui

import (
	"context"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/easytube/internal/formats"
	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/platform"
)

// AdvancedWindow lets the user inspect the formats of a video and pick one
type AdvancedWindow struct {
	root   *RootUI
	window fyne.Window

	linkLabel       *widget.Label
	urlEntry        *widget.Entry
	detectBtn       *widget.Button
	changeFolderBtn *widget.Button
	folderLabel     *widget.Label

	tabs        *container.AppTabs
	videoTab    *container.TabItem
	audioTab    *container.TabItem
	videoTable  *FormatTable
	audioTable  *FormatTable
	videoFilter *widget.Select
	audioFilter *widget.Select
	filterLabel [2]*widget.Label

	bestAudioBtn  *widget.Button
	downloadBtn   *widget.Button
	status        *widget.Label
	progressLabel *widget.Label
	progress      *widget.ProgressBar

	folder   string
	formats  []model.Format
	selected *model.Format
	// task tracks the running download; only touched on the UI thread
	task *model.DownloadTask
}

// NewAdvancedWindow builds the window without showing it
func NewAdvancedWindow(root *RootUI) *AdvancedWindow {
	aw := &AdvancedWindow{
		root:   root,
		window: root.app.NewWindow(root.localization.GetText(KeyAdvancedTitle)),
		folder: root.downloadFolder(),
	}
	aw.setupUI()
	aw.window.Resize(AdvancedWindowSize)
	return aw
}

func (aw *AdvancedWindow) setupUI() {
	loc := aw.root.localization

	aw.linkLabel = widget.NewLabel(loc.GetText(KeyYouTubeLink))
	aw.urlEntry = widget.NewEntry()
	aw.urlEntry.SetPlaceHolder(loc.GetText(KeyEnterURL))
	aw.urlEntry.OnSubmitted = func(string) {
		aw.onDetect()
	}

	aw.detectBtn = widget.NewButton(loc.GetText(KeyDetectFormats), aw.onDetect)
	aw.changeFolderBtn = widget.NewButton(loc.GetText(KeyChangeFolder), func() {
		aw.root.chooseFolder(aw.window, aw.folder, aw.setFolder)
	})
	aw.folderLabel = widget.NewLabel(loc.Format(KeyDestination, aw.folder))
	aw.folderLabel.Truncation = fyne.TextTruncateEllipsis

	aw.videoTable = NewFormatTable(loc)
	aw.videoTable.OnSelected = aw.onSelect
	aw.audioTable = NewFormatTable(loc)
	aw.audioTable.OnSelected = aw.onSelect

	aw.videoFilter = newFilterSelect(loc, aw.videoTable)
	aw.audioFilter = newFilterSelect(loc, aw.audioTable)
	aw.filterLabel[0] = widget.NewLabel(loc.GetText(KeyFilterQuality))
	aw.filterLabel[1] = widget.NewLabel(loc.GetText(KeyFilterQuality))

	aw.videoTab = container.NewTabItem(loc.GetText(KeyVideoFormats), container.NewBorder(
		container.NewHBox(aw.filterLabel[0], aw.videoFilter), nil, nil, nil, aw.videoTable.Widget()))
	aw.audioTab = container.NewTabItem(loc.GetText(KeyAudioFormats), container.NewBorder(
		container.NewHBox(aw.filterLabel[1], aw.audioFilter), nil, nil, nil, aw.audioTable.Widget()))
	aw.tabs = container.NewAppTabs(aw.videoTab, aw.audioTab)

	aw.bestAudioBtn = widget.NewButton(loc.GetText(KeyBestAudio), aw.onBestAudio)
	aw.downloadBtn = widget.NewButton(IconDownload+" "+loc.GetText(KeyDownloadSelected), aw.onDownload)
	aw.downloadBtn.Importance = widget.HighImportance
	aw.status = widget.NewLabel(loc.GetText(KeyReady))
	aw.progressLabel = widget.NewLabel(loc.GetText(KeyProgressIdle))
	aw.progress = widget.NewProgressBar()

	top := container.NewVBox(
		aw.linkLabel,
		aw.urlEntry,
		container.NewHBox(aw.detectBtn, aw.changeFolderBtn),
		aw.folderLabel,
	)
	bottom := container.NewVBox(
		container.NewBorder(nil, nil, container.NewHBox(aw.downloadBtn, aw.bestAudioBtn), nil, aw.status),
		aw.progressLabel,
		aw.progress,
	)

	aw.window.SetContent(container.NewPadded(container.NewBorder(top, bottom, nil, nil, aw.tabs)))
}

func (aw *AdvancedWindow) setFolder(folder string) {
	aw.folder = folder
	aw.folderLabel.SetText(aw.root.localization.Format(KeyDestination, folder))
}

// onDetect probes the URL in the background and fills both tables
func (aw *AdvancedWindow) onDetect() {
	loc := aw.root.localization
	url := strings.TrimSpace(aw.urlEntry.Text)
	if url == "" || !platform.IsValidURL(url) {
		aw.root.showError(aw.window, loc.GetText(KeyPleaseEnterURL))
		return
	}

	aw.status.SetText(loc.GetText(KeyFetchingFormats))
	aw.detectBtn.Disable()
	aw.setFormats(nil)

	prober := aw.root.services.Prober
	aw.root.runAsync(func() {
		list, err := prober.Formats(context.Background(), url)
		fyne.Do(func() {
			aw.detectBtn.Enable()
			if err != nil {
				aw.root.showError(aw.window, loc.Format(KeyFormatsError, err.Error()))
				aw.status.SetText(loc.GetText(KeyError))
				return
			}
			aw.setFormats(list)
			aw.status.SetText(loc.Format(KeyFormatsDetected, len(list)))
		})
	})
}

// setFormats replaces the probed formats and clears the selection
func (aw *AdvancedWindow) setFormats(list []model.Format) {
	aw.formats = list
	aw.selected = nil
	video, audio := formats.Split(list)
	aw.videoTable.SetFormats(video)
	aw.audioTable.SetFormats(audio)
}

func (aw *AdvancedWindow) onSelect(f model.Format) {
	loc := aw.root.localization
	aw.selected = &f
	kind := loc.GetText(KeyTypeAudio)
	if f.HasVideo() {
		kind = loc.GetText(KeyTypeVideo)
	}
	aw.status.SetText(loc.Format(KeySelectedFormat, strings.ToUpper(kind), f.ID))
}

// onBestAudio selects the best audio-only format in the audio tab
func (aw *AdvancedWindow) onBestAudio() {
	id, ok := formats.SelectBestAudio(aw.formats)
	if !ok {
		aw.status.SetText(aw.root.localization.GetText(KeyNoAudioFormat))
		return
	}

	aw.audioFilter.SetSelectedIndex(0)
	aw.tabs.Select(aw.audioTab)
	aw.audioTable.SelectID(id)
	for _, f := range aw.formats {
		if f.ID == id {
			aw.onSelect(f)
			break
		}
	}
}

// onDownload downloads the selected format's kind in the background
func (aw *AdvancedWindow) onDownload() {
	loc := aw.root.localization
	if aw.selected == nil {
		aw.root.showError(aw.window, loc.GetText(KeySelectFormatFirst))
		return
	}
	url := strings.TrimSpace(aw.urlEntry.Text)
	if url == "" || !platform.IsValidURL(url) {
		aw.root.showError(aw.window, loc.GetText(KeyPleaseEnterURL))
		return
	}

	mode := model.ModeAudio
	if aw.selected.HasVideo() {
		mode = model.ModeVideo
	}
	formatID, folder := aw.selected.ID, aw.folder

	aw.task = model.NewDownloadTask("", url, mode, folder)
	aw.downloadBtn.Disable()
	aw.status.SetText(loc.GetText(KeyDownloading))
	aw.progress.SetValue(0)
	aw.progressLabel.SetText(loc.GetText(KeyProgressIdle))

	downloader := aw.root.services.Downloader
	aw.root.runAsync(func() {
		res := downloader.Download(context.Background(), url, mode, folder, formatID, model.ProgressFunc(aw.onProgress))
		fyne.Do(func() {
			if res.OK {
				dialog.ShowInformation(loc.GetText(KeyCompletedTitle), loc.Format(KeyCompletedMessage, folder), aw.window)
			} else {
				aw.root.showError(aw.window, res.Error)
			}
			aw.task = nil
			aw.downloadBtn.Enable()
			aw.status.SetText(loc.GetText(KeyReady))
			aw.progressLabel.SetText(loc.GetText(KeyProgressIdle))
			aw.progress.SetValue(0)
		})
	})
}

// onProgress may be called from any goroutine
func (aw *AdvancedWindow) onProgress(ev model.ProgressEvent) {
	fyne.Do(func() {
		aw.task = trackerFor(aw.task, "", model.ModeAudio, aw.folder)
		aw.task.Apply(ev)
		aw.progress.SetValue(aw.task.Progress)
		aw.progressLabel.SetText(advancedProgressText(aw.root.localization, ev.Status, aw.task))
		if ev.Status == model.ProgressFinished {
			aw.status.SetText(aw.root.localization.GetText(KeyDownloadComplete))
		}
	})
}

// refreshTexts re-applies localized strings
func (aw *AdvancedWindow) refreshTexts() {
	loc := aw.root.localization
	aw.window.SetTitle(loc.GetText(KeyAdvancedTitle))
	aw.linkLabel.SetText(loc.GetText(KeyYouTubeLink))
	aw.urlEntry.SetPlaceHolder(loc.GetText(KeyEnterURL))
	aw.detectBtn.SetText(loc.GetText(KeyDetectFormats))
	aw.changeFolderBtn.SetText(loc.GetText(KeyChangeFolder))
	aw.folderLabel.SetText(loc.Format(KeyDestination, aw.folder))
	aw.videoTab.Text = loc.GetText(KeyVideoFormats)
	aw.audioTab.Text = loc.GetText(KeyAudioFormats)
	aw.tabs.Refresh()
	for _, l := range aw.filterLabel {
		l.SetText(loc.GetText(KeyFilterQuality))
	}
	aw.relabelFilter(aw.videoFilter)
	aw.relabelFilter(aw.audioFilter)
	aw.videoTable.Refresh()
	aw.audioTable.Refresh()
	aw.bestAudioBtn.SetText(loc.GetText(KeyBestAudio))
	aw.downloadBtn.SetText(IconDownload + " " + loc.GetText(KeyDownloadSelected))
	if !aw.downloadBtn.Disabled() {
		aw.status.SetText(loc.GetText(KeyReady))
		aw.progressLabel.SetText(loc.GetText(KeyProgressIdle))
	}
}

// relabelFilter translates the options of a filter select in place, keeping its index
func (aw *AdvancedWindow) relabelFilter(sel *widget.Select) {
	index := sel.SelectedIndex()
	labels := make([]string, len(filterOptions))
	for i, rec := range filterOptions {
		labels[i] = recommendationLabel(aw.root.localization, rec)
	}
	onChanged := sel.OnChanged
	sel.OnChanged = nil
	sel.Options = labels
	if index >= 0 {
		sel.SetSelectedIndex(index)
	}
	sel.OnChanged = onChanged
}
