package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ytget/easytube/internal/model"
	"github.com/ytget/easytube/internal/platform"
)

// WindowMode records which window the user worked in last
type WindowMode string

const (
	WindowBasic    WindowMode = "basic"
	WindowAdvanced WindowMode = "advanced"
)

// Settings keys as persisted in the settings file
const (
	KeyDownloadPath     = "download_path"
	KeyDefaultFormat    = "default_format"
	KeyLastMode         = "last_mode"
	KeyLastDownloadPath = "last_download_path"
	KeyLanguage         = "language"
)

// Default values
const (
	DefaultDownloadPath  = ""
	DefaultFormat        = model.ModeAudio
	DefaultLastMode      = WindowBasic
	DefaultLanguage      = "system"
	SettingsFileName     = ".easytube_settings.json"
	settingsIndentPrefix = ""
	settingsIndent       = "  "
)

// DownloadDirCandidates are probed, in order, under the home directory when no
// download path is configured
var DownloadDirCandidates = []string{"Downloads", "Descargas", "downloads"}

// Settings is the persisted user configuration
type Settings struct {
	DownloadPath     string
	DefaultFormat    model.Mode
	LastMode         WindowMode
	LastDownloadPath string
	Language         string

	// keys this version does not know about, written back untouched
	extra map[string]json.RawMessage
}

// Defaults returns the built-in settings
func Defaults() *Settings {
	return &Settings{
		DownloadPath:  DefaultDownloadPath,
		DefaultFormat: DefaultFormat,
		LastMode:      DefaultLastMode,
		Language:      DefaultLanguage,
	}
}

// Store loads and saves Settings at a fixed path
type Store struct {
	path string
	home string
}

// NewStore creates a store for the per-user settings file
func NewStore() *Store {
	home := platform.HomeDir()
	return NewStoreAt(filepath.Join(home, SettingsFileName), home)
}

// NewStoreAt creates a store backed by path, resolving download folders under home
func NewStoreAt(path, home string) *Store {
	return &Store{path: path, home: home}
}

// Path returns the settings file location
func (s *Store) Path() string {
	return s.path
}

// Load reads the settings file merged over the defaults. A missing or
// unreadable file yields the defaults; it never fails.
func (s *Store) Load() *Settings {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Failed to read settings %s: %v", s.path, err)
		}
		return Defaults()
	}

	settings, err := decodeSettings(data)
	if err != nil {
		log.Printf("Ignoring corrupt settings %s: %v", s.path, err)
		return Defaults()
	}
	return settings
}

// Save writes the full record. Failures are logged and swallowed.
func (s *Store) Save(settings *Settings) {
	data, err := encodeSettings(settings)
	if err != nil {
		log.Printf("Error saving settings: %v", err)
		return
	}
	if err := os.WriteFile(s.path, data, platform.DefaultFilePermissions); err != nil {
		log.Printf("Error saving settings: %v", err)
	}
}

// SetLastDownloadPath records the folder the user picked and persists immediately
func (s *Store) SetLastDownloadPath(settings *Settings, folder string) {
	settings.LastDownloadPath = folder
	s.Save(settings)
}

// ResolveDownloadPath returns the configured download path in absolute form,
// or the first existing home download folder, or the home directory itself.
func (s *Store) ResolveDownloadPath(settings *Settings) string {
	if settings != nil && settings.DownloadPath != "" {
		abs, err := filepath.Abs(settings.DownloadPath)
		if err != nil {
			return settings.DownloadPath
		}
		return abs
	}

	for _, name := range DownloadDirCandidates {
		candidate := filepath.Join(s.home, name)
		if platform.DirExists(candidate) {
			return candidate
		}
	}
	return s.home
}

// DownloadFolder is the folder windows start in: the last folder the user
// picked, falling back to ResolveDownloadPath
func (s *Store) DownloadFolder(settings *Settings) string {
	if settings != nil && settings.LastDownloadPath != "" {
		return settings.LastDownloadPath
	}
	return s.ResolveDownloadPath(settings)
}

// decodeSettings overlays the persisted keys on top of the defaults
func decodeSettings(data []byte) (*Settings, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, fmt.Errorf("settings document is not an object")
	}

	settings := Defaults()
	for key, value := range raw {
		var err error
		switch key {
		case KeyDownloadPath:
			err = json.Unmarshal(value, &settings.DownloadPath)
		case KeyLastDownloadPath:
			err = json.Unmarshal(value, &settings.LastDownloadPath)
		case KeyLanguage:
			err = json.Unmarshal(value, &settings.Language)
		case KeyDefaultFormat:
			var s string
			if err = json.Unmarshal(value, &s); err == nil {
				if mode, perr := model.ParseMode(s); perr == nil {
					settings.DefaultFormat = mode
				}
			}
		case KeyLastMode:
			var s string
			if err = json.Unmarshal(value, &s); err == nil {
				if mode := WindowMode(s); mode == WindowBasic || mode == WindowAdvanced {
					settings.LastMode = mode
				}
			}
		default:
			if settings.extra == nil {
				settings.extra = make(map[string]json.RawMessage)
			}
			settings.extra[key] = value
		}
		if err != nil {
			return nil, fmt.Errorf("invalid value for %q: %w", key, err)
		}
	}
	return settings, nil
}

// encodeSettings renders the record, including preserved unknown keys
func encodeSettings(settings *Settings) ([]byte, error) {
	if settings == nil {
		settings = Defaults()
	}
	doc := make(map[string]any, len(settings.extra)+5)
	for key, value := range settings.extra {
		doc[key] = value
	}
	doc[KeyDownloadPath] = settings.DownloadPath
	doc[KeyDefaultFormat] = settings.DefaultFormat
	doc[KeyLastMode] = settings.LastMode
	doc[KeyLanguage] = settings.Language
	if settings.LastDownloadPath != "" {
		doc[KeyLastDownloadPath] = settings.LastDownloadPath
	}
	return json.MarshalIndent(doc, settingsIndentPrefix, settingsIndent)
}
