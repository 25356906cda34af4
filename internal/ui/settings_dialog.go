package ui

import (
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/easytube/internal/model"
)

// defaultFormatModes maps the default format select options, in order
var defaultFormatModes = []model.Mode{model.ModeAudio, model.ModeVideo}

// languageCodes maps the language select options, in order
var languageCodes = []string{LangSystem, LangEnglish, LangSpanish}

// SettingsDialog edits the persisted preferences
type SettingsDialog struct {
	root   *RootUI
	window fyne.Window
	dialog *dialog.ConfirmDialog

	// UI components
	downloadDirEntry *widget.Entry
	formatSelect     *widget.Select
	languageSelect   *widget.Select
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(root *RootUI, window fyne.Window) *SettingsDialog {
	sd := &SettingsDialog{
		root:   root,
		window: window,
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	loc := sd.root.localization

	sd.downloadDirEntry = widget.NewEntry()
	sd.downloadDirEntry.SetPlaceHolder(sd.root.services.Store.ResolveDownloadPath(sd.root.settings))
	browseDirBtn := widget.NewButton(loc.GetText(KeyBrowse), sd.onBrowseDirectory)
	downloadDirRow := container.NewBorder(nil, nil, nil, browseDirBtn, sd.downloadDirEntry)

	sd.formatSelect = widget.NewSelect([]string{loc.GetText(KeyAudioOption), loc.GetText(KeyVideoOption)}, nil)

	languages := loc.GetAvailableLanguages()
	languageLabels := []string{loc.GetText(KeySystemLanguage)}
	for _, code := range languageCodes[1:] {
		languageLabels = append(languageLabels, languages[code])
	}
	sd.languageSelect = widget.NewSelect(languageLabels, nil)

	form := widget.NewForm(
		widget.NewFormItem(loc.GetText(KeyDownloadPath), downloadDirRow),
		widget.NewFormItem(loc.GetText(KeyDefaultFormat), sd.formatSelect),
		widget.NewFormItem(loc.GetText(KeyLanguage), sd.languageSelect),
	)

	sd.dialog = dialog.NewCustomConfirm(
		loc.GetText(KeyPreferences),
		loc.GetText(KeySave),
		loc.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)
	sd.dialog.Resize(PrefsDialogSize)
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	settings := sd.root.settings
	sd.downloadDirEntry.SetText(settings.DownloadPath)

	sd.formatSelect.SetSelectedIndex(0)
	for i, mode := range defaultFormatModes {
		if mode == settings.DefaultFormat {
			sd.formatSelect.SetSelectedIndex(i)
		}
	}

	sd.languageSelect.SetSelectedIndex(0)
	for i, code := range languageCodes {
		if code == settings.Language {
			sd.languageSelect.SetSelectedIndex(i)
		}
	}
}

// onBrowseDirectory handles directory browsing
func (sd *SettingsDialog) onBrowseDirectory() {
	dialog.ShowFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		sd.downloadDirEntry.SetText(uri.Path())
	}, sd.window)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.apply()
	dialog.ShowInformation(sd.root.localization.GetText(KeyPreferences), sd.root.localization.GetText(KeySettingsSaved), sd.window)
}

// apply copies the form into the settings and persists them
func (sd *SettingsDialog) apply() {
	settings := sd.root.settings
	path := strings.TrimSpace(sd.downloadDirEntry.Text)
	pathChanged := path != settings.DownloadPath
	settings.DownloadPath = path
	if pathChanged {
		// an explicit preference replaces the last picked folder
		settings.LastDownloadPath = ""
		sd.root.refreshFolders()
	}

	if i := sd.formatSelect.SelectedIndex(); i >= 0 && i < len(defaultFormatModes) {
		settings.DefaultFormat = defaultFormatModes[i]
	}

	language := settings.Language
	if i := sd.languageSelect.SelectedIndex(); i >= 0 && i < len(languageCodes) {
		language = languageCodes[i]
	}

	if language != settings.Language {
		sd.root.onLanguageChange(language)
		return
	}
	sd.root.services.Store.Save(settings)
}

// showPreferences opens the preferences dialog over window
func (ui *RootUI) showPreferences(window fyne.Window) {
	NewSettingsDialog(ui, window).Show()
}
