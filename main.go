package main

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/easytube/internal/config"
	"github.com/ytget/easytube/internal/download"
	"github.com/ytget/easytube/internal/history"
	"github.com/ytget/easytube/internal/platform"
	"github.com/ytget/easytube/internal/probe"
	"github.com/ytget/easytube/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.easytube"
	AppName = "EasyTube"
)

func main() {
	// Log version information
	fmt.Printf("%s v%s starting...\n", AppName, version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	}

	if !platform.HasExecutable(platform.YTDLPCommand) {
		log.Printf("Warning: %s not found on PATH; probing and downloads will fail", platform.YTDLPCommand)
	}

	// Initialize services
	downloadSvc := download.NewService(nil)
	services := ui.Services{
		Store:      config.NewStore(),
		Prober:     probe.NewProber(),
		Downloader: downloadSvc,
	}

	if store := openHistory(); store != nil {
		defer store.Close()
		downloadSvc.SetRecorder(store)
		services.History = store
	}

	// Create and setup UI
	ui.NewRootUI(myApp, services).Start()

	myApp.Run()
}

// openHistory opens the history database; history is optional and a failure only disables it
func openHistory() *history.Store {
	path, err := history.DefaultPath()
	if err != nil {
		log.Printf("History disabled: %v", err)
		return nil
	}
	store, err := history.Open(context.Background(), path)
	if err != nil {
		log.Printf("History disabled: %v", err)
		return nil
	}
	return store
}
