package ui

import (
	"path/filepath"

	"fyne.io/fyne/v2"

	"github.com/ytget/easytube/internal/platform"
)

const (
	AppIcon = "easytube.png"
)

// LoadLogoResource loads the logo shipped next to the executable, falling
// back to the working directory
func LoadLogoResource() (fyne.Resource, error) {
	res, err := fyne.LoadResourceFromPath(filepath.Join(platform.ExecutableDir(), AppIcon))
	if err == nil {
		return res, nil
	}
	return fyne.LoadResourceFromPath(AppIcon)
}
