package ui

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"github.com/ytget/easytube/internal/config"
	"github.com/ytget/easytube/internal/download"
	"github.com/ytget/easytube/internal/history"
	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/platform"
)

// FormatProber lists the formats of a video
type FormatProber interface {
	Formats(ctx context.Context, url string) ([]model.Format, error)
}

// HistorySource lists past downloads
type HistorySource interface {
	Recent(ctx context.Context, limit int) ([]history.Entry, error)
}

// Services are the non-UI collaborators of the windows. History may be nil.
type Services struct {
	Store      *config.Store
	Prober     FormatProber
	Downloader download.Downloader
	History    HistorySource
}

// RootUI owns the shared state of both windows
type RootUI struct {
	app          fyne.App
	services     Services
	settings     *config.Settings
	localization *Localization

	basic    *BasicWindow
	advanced *AdvancedWindow

	// runAsync starts a worker goroutine; tests replace it with a direct call
	runAsync func(func())
}

// NewRootUI loads the settings and prepares the windows
func NewRootUI(app fyne.App, services Services) *RootUI {
	if services.Store == nil {
		services.Store = config.NewStore()
	}
	settings := services.Store.Load()

	localization := NewLocalization()
	localization.SetLanguage(settings.Language)

	ui := &RootUI{
		app:          app,
		services:     services,
		settings:     settings,
		localization: localization,
		runAsync: func(f func()) {
			go f()
		},
	}

	log.Printf("UI initialized: language=%s last_mode=%s", localization.GetCurrentLanguage(), settings.LastMode)
	return ui
}

// Start shows the basic window and, if it was used last, the advanced one.
// The basic window is the master window.
func (ui *RootUI) Start() fyne.Window {
	ui.basic = NewBasicWindow(ui)
	ui.basic.window.SetMaster()
	ui.createMenu()
	ui.basic.window.Show()

	if ui.settings.LastMode == config.WindowAdvanced {
		ui.OpenAdvanced()
	}
	return ui.basic.window
}

// OpenAdvanced shows the advanced window, creating it if needed
func (ui *RootUI) OpenAdvanced() {
	if ui.advanced == nil {
		ui.advanced = NewAdvancedWindow(ui)
		ui.advanced.window.SetOnClosed(func() {
			ui.advanced = nil
			ui.setLastMode(config.WindowBasic)
		})
	}
	ui.setLastMode(config.WindowAdvanced)
	ui.advanced.window.Show()
	ui.advanced.window.RequestFocus()
}

func (ui *RootUI) setLastMode(mode config.WindowMode) {
	if ui.settings.LastMode == mode {
		return
	}
	ui.settings.LastMode = mode
	ui.services.Store.Save(ui.settings)
}

// downloadFolder is the folder new windows start in
func (ui *RootUI) downloadFolder() string {
	return ui.services.Store.DownloadFolder(ui.settings)
}

// refreshFolders points every open window at the current download folder
func (ui *RootUI) refreshFolders() {
	folder := ui.downloadFolder()
	if ui.basic != nil {
		ui.basic.setFolder(folder)
	}
	if ui.advanced != nil {
		ui.advanced.setFolder(folder)
	}
}

// chooseFolder lets the user pick a folder starting at current and persists the choice
func (ui *RootUI) chooseFolder(window fyne.Window, current string, onPicked func(string)) {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil || uri == nil {
			return
		}
		folder := uri.Path()
		ui.services.Store.SetLastDownloadPath(ui.settings, folder)
		onPicked(folder)
	}, window)

	if lister, err := storage.ListerForURI(storage.NewFileURI(current)); err == nil {
		d.SetLocation(lister)
	}
	d.Show()
}

// openFolder reveals folder in the system file manager
func (ui *RootUI) openFolder(window fyne.Window, folder string) {
	if err := platform.OpenFolder(folder); err != nil {
		log.Printf("Failed to open folder %s: %v", folder, err)
		dialog.ShowError(fmt.Errorf("%s: %w", ui.localization.GetText(KeyErrorOpeningFolder), err), window)
	}
}

// showError reports a user-facing error in window
func (ui *RootUI) showError(window fyne.Window, message string) {
	dialog.ShowError(errors.New(message), window)
}

// createMenu builds the main menu of the basic window
func (ui *RootUI) createMenu() {
	if ui.basic == nil {
		return
	}
	window := ui.basic.window

	fileMenu := fyne.NewMenu(ui.localization.GetText(KeyFile),
		fyne.NewMenuItem(ui.localization.GetText(KeyPreferences), func() { ui.showPreferences(window) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyHistory), func() { ui.showHistory(window) }),
		fyne.NewMenuItem(ui.localization.GetText(KeyOpenFolder), func() { ui.openFolder(window, ui.basic.folder) }),
	)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	systemItem := fyne.NewMenuItem(ui.localization.GetText(KeySystemLanguage), func() {
		ui.onLanguageChange(LangSystem)
	})
	systemItem.Checked = ui.settings.Language == LangSystem
	languageMenu.Items = append(languageMenu.Items, systemItem)

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.settings.Language == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	window.SetMainMenu(fyne.NewMainMenu(fileMenu, languageMenu))
}

// onLanguageChange persists the language and relabels every open window
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.settings.Language = langCode
	ui.services.Store.Save(ui.settings)
	ui.localization.SetLanguage(langCode)
	ui.refreshUITexts()
}

// refreshUITexts re-applies localized strings to all open windows
func (ui *RootUI) refreshUITexts() {
	if ui.basic != nil {
		ui.basic.refreshTexts()
	}
	if ui.advanced != nil {
		ui.advanced.refreshTexts()
	}
	ui.createMenu()
}
