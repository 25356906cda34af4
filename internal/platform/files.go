package platform

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions  = 0755
	DefaultFilePermissions = 0644
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// HomeDir returns the user's home directory, or "." when it cannot be resolved
func HomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		log.Printf("Failed to resolve home directory: %v", err)
		return "."
	}
	return home
}

// CreateDirectoryIfNotExists creates directory (and parents) if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	info, err := os.Stat(dirPath)
	if os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("path exists and is not a directory: %s", dirPath)
	}
	return nil
}

// DirExists reports whether path is an existing directory
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// ExecutableDir returns the directory holding the running binary
func ExecutableDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe)
}

// OpenFolder opens a directory in the system file manager
func OpenFolder(dir string) error {
	if !DirExists(dir) {
		return fmt.Errorf("folder does not exist: %s", dir)
	}

	absPath, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Start()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Start()
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderLinux tries xdg-open first, then well-known file managers
func openFolderLinux(dir string) error {
	if err := exec.Command(XDGOpenCommand, dir).Start(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if HasExecutable(fm) {
			return exec.Command(fm, dir).Start()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
