package ui

import (
	"fmt"
	"os"
	"strings"
)

// Supported language codes
const (
	LangEnglish = "en"
	LangSpanish = "es"
	LangSystem  = "system"
)

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle           = "app_title"
	KeyAdvancedTitle      = "advanced_title"
	KeyFile               = "file"
	KeyLanguage           = "language"
	KeySystemLanguage     = "system_language"
	KeyEnterURL           = "enter_url"
	KeyYouTubeLink        = "youtube_link"
	KeyAudioOption        = "audio_option"
	KeyVideoOption        = "video_option"
	KeyDestination        = "destination"
	KeyChangeFolder       = "change_folder"
	KeyDownload           = "download"
	KeyAdvancedMode       = "advanced_mode"
	KeyOpenFolder         = "open_folder"
	KeyHistory            = "history"
	KeyPreferences        = "preferences"
	KeyReady              = "ready"
	KeyPreparing          = "preparing"
	KeyDownloading        = "downloading"
	KeyDownloadingPercent = "downloading_percent"
	KeyDownloadingBytes   = "downloading_bytes"
	KeyDownloadComplete   = "download_complete"
	KeyDownloadError      = "download_error"
	KeyCompletedTitle     = "completed_title"
	KeyCompletedMessage   = "completed_message"
	KeyError              = "error"
	KeyPleaseEnterURL     = "please_enter_url"
	KeyInvalidURL         = "invalid_url"
	KeyDetectFormats      = "detect_formats"
	KeyVideoFormats       = "video_formats"
	KeyAudioFormats       = "audio_formats"
	KeyFilterQuality      = "filter_quality"
	KeyFilterAll          = "filter_all"
	KeyHigh               = "high"
	KeyMedium             = "medium"
	KeyLow                = "low"
	KeyColID              = "col_id"
	KeyColType            = "col_type"
	KeyColResolution      = "col_resolution"
	KeyColCodecs          = "col_codecs"
	KeyColSize            = "col_size"
	KeyColRecommended     = "col_recommended"
	KeyTypeVideo          = "type_video"
	KeyTypeAudio          = "type_audio"
	KeyUnknownSize        = "unknown_size"
	KeyDownloadSelected   = "download_selected"
	KeyBestAudio          = "best_audio"
	KeyFetchingFormats    = "fetching_formats"
	KeyFormatsDetected    = "formats_detected"
	KeyFormatsError       = "formats_error"
	KeySelectedFormat     = "selected_format"
	KeySelectFormatFirst  = "select_format_first"
	KeyNoAudioFormat      = "no_audio_format"
	KeyProgress           = "progress"
	KeyProgressIdle       = "progress_idle"
	KeyProgressDone       = "progress_done"
	KeyETARemaining       = "eta_remaining"
	KeyCalculating        = "calculating"
	KeyPlaylistItem       = "playlist_item"
	KeyPlaylistDone       = "playlist_done"
	KeyDownloadPath       = "download_path"
	KeyDefaultFormat      = "default_format"
	KeySave               = "save"
	KeyCancel             = "cancel"
	KeyClose              = "close"
	KeyBrowse             = "browse"
	KeySettingsSaved      = "settings_saved"
	KeyNoHistory          = "no_history"
	KeyHistoryUnavailable = "history_unavailable"
	KeyErrorOpeningFolder = "error_opening_folder"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: LangEnglish,
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown codes are ignored
func (l *Localization) SetLanguage(lang string) {
	if lang == LangSystem || lang == "" {
		lang = systemLanguage()
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[LangEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// Format returns the localized text for key formatted with args
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		LangEnglish: "English",
		LangSpanish: "Español",
	}
}

// systemLanguage picks a supported language from the locale environment
func systemLanguage() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		value := strings.ToLower(os.Getenv(name))
		if value == "" {
			continue
		}
		if strings.HasPrefix(value, LangSpanish) {
			return LangSpanish
		}
		return LangEnglish
	}
	return LangEnglish
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts[LangEnglish] = map[string]string{
		KeyAppTitle:           "EasyTube",
		KeyAdvancedTitle:      "Advanced mode - EasyTube",
		KeyFile:               "File",
		KeyLanguage:           "Language",
		KeySystemLanguage:     "System",
		KeyEnterURL:           "Paste the YouTube link here...",
		KeyYouTubeLink:        "YouTube link:",
		KeyAudioOption:        "MP3 (Audio)",
		KeyVideoOption:        "MP4 (Video)",
		KeyDestination:        "Destination: %s",
		KeyChangeFolder:       "Change folder",
		KeyDownload:           "Download",
		KeyAdvancedMode:       "Advanced mode",
		KeyOpenFolder:         "Open folder",
		KeyHistory:            "History",
		KeyPreferences:        "Preferences",
		KeyReady:              "Ready",
		KeyPreparing:          "Preparing download...",
		KeyDownloading:        "Downloading...",
		KeyDownloadingPercent: "Downloading... %d%%",
		KeyDownloadingBytes:   "Downloading... %s",
		KeyDownloadComplete:   "Download complete",
		KeyDownloadError:      "Error during download",
		KeyCompletedTitle:     "Completed",
		KeyCompletedMessage:   "Download finished.\nFiles saved to: %s",
		KeyError:              "Error",
		KeyPleaseEnterURL:     "Paste a valid YouTube link.",
		KeyInvalidURL:         "The link does not look like a YouTube link.",
		KeyDetectFormats:      "Detect formats",
		KeyVideoFormats:       "Video formats",
		KeyAudioFormats:       "Audio formats",
		KeyFilterQuality:      "Filter by quality:",
		KeyFilterAll:          "All",
		KeyHigh:               "High",
		KeyMedium:             "Medium",
		KeyLow:                "Low",
		KeyColID:              "ID",
		KeyColType:            "Type",
		KeyColResolution:      "Resolution",
		KeyColCodecs:          "Codecs",
		KeyColSize:            "Size",
		KeyColRecommended:     "Recommended",
		KeyTypeVideo:          "Video",
		KeyTypeAudio:          "Audio",
		KeyUnknownSize:        "Unknown",
		KeyDownloadSelected:   "Download selected format",
		KeyBestAudio:          "Best audio",
		KeyFetchingFormats:    "Fetching formats...",
		KeyFormatsDetected:    "Formats detected: %d",
		KeyFormatsError:       "Could not get formats:\n%s",
		KeySelectedFormat:     "Selected %s format ID: %s",
		KeySelectFormatFirst:  "Select a format before downloading.",
		KeyNoAudioFormat:      "No audio-only format available",
		KeyProgress:           "Progress: %s | Speed: %s | ETA: %s",
		KeyProgressIdle:       "Progress: 0%",
		KeyProgressDone:       "Progress: 100% - Completed",
		KeyETARemaining:       "%s remaining",
		KeyCalculating:        "calculating...",
		KeyPlaylistItem:       "Video %d of %d: %s",
		KeyPlaylistDone:       "Playlist finished: %d of %d downloaded",
		KeyDownloadPath:       "Download folder",
		KeyDefaultFormat:      "Default format",
		KeySave:               "Save",
		KeyCancel:             "Cancel",
		KeyClose:              "Close",
		KeyBrowse:             "Browse",
		KeySettingsSaved:      "Settings saved",
		KeyNoHistory:          "No downloads yet",
		KeyHistoryUnavailable: "History is not available",
		KeyErrorOpeningFolder: "Error opening folder",
	}

	// Spanish texts
	l.texts[LangSpanish] = map[string]string{
		KeyAppTitle:           "EasyTube",
		KeyAdvancedTitle:      "Modo avanzado - EasyTube",
		KeyFile:               "Archivo",
		KeyLanguage:           "Idioma",
		KeySystemLanguage:     "Sistema",
		KeyEnterURL:           "Pega el enlace de YouTube aquí...",
		KeyYouTubeLink:        "Enlace de YouTube:",
		KeyAudioOption:        "MP3 (Audio)",
		KeyVideoOption:        "MP4 (Video)",
		KeyDestination:        "Destino: %s",
		KeyChangeFolder:       "Cambiar carpeta",
		KeyDownload:           "Descargar",
		KeyAdvancedMode:       "Modo avanzado",
		KeyOpenFolder:         "Abrir carpeta",
		KeyHistory:            "Historial",
		KeyPreferences:        "Preferencias",
		KeyReady:              "Listo",
		KeyPreparing:          "Preparando descarga...",
		KeyDownloading:        "Descargando...",
		KeyDownloadingPercent: "Descargando... %d%%",
		KeyDownloadingBytes:   "Descargando... %s",
		KeyDownloadComplete:   "Descarga completada",
		KeyDownloadError:      "Error durante la descarga",
		KeyCompletedTitle:     "Completado",
		KeyCompletedMessage:   "Descarga finalizada.\nArchivos guardados en: %s",
		KeyError:              "Error",
		KeyPleaseEnterURL:     "Pega un enlace de YouTube válido.",
		KeyInvalidURL:         "El enlace no parece ser de YouTube.",
		KeyDetectFormats:      "Detectar formatos",
		KeyVideoFormats:       "Formatos de video",
		KeyAudioFormats:       "Formatos de audio",
		KeyFilterQuality:      "Filtrar por calidad:",
		KeyFilterAll:          "Todos",
		KeyHigh:               "Alta",
		KeyMedium:             "Media",
		KeyLow:                "Baja",
		KeyColID:              "ID",
		KeyColType:            "Tipo",
		KeyColResolution:      "Resolución",
		KeyColCodecs:          "Códecs",
		KeyColSize:            "Tamaño",
		KeyColRecommended:     "Recomendado",
		KeyTypeVideo:          "Video",
		KeyTypeAudio:          "Audio",
		KeyUnknownSize:        "Desconocido",
		KeyDownloadSelected:   "Descargar formato seleccionado",
		KeyBestAudio:          "Mejor audio",
		KeyFetchingFormats:    "Obteniendo formatos...",
		KeyFormatsDetected:    "Formatos detectados: %d",
		KeyFormatsError:       "No se pudo obtener formatos:\n%s",
		KeySelectedFormat:     "Seleccionado formato %s ID: %s",
		KeySelectFormatFirst:  "Selecciona un formato antes de descargar.",
		KeyNoAudioFormat:      "No hay formatos solo de audio",
		KeyProgress:           "Progreso: %s | Vel: %s | ETA: %s",
		KeyProgressIdle:       "Progreso: 0%",
		KeyProgressDone:       "Progreso: 100% - Completado",
		KeyETARemaining:       "%s restantes",
		KeyCalculating:        "calculando...",
		KeyPlaylistItem:       "Video %d de %d: %s",
		KeyPlaylistDone:       "Lista terminada: %d de %d descargados",
		KeyDownloadPath:       "Carpeta de descarga",
		KeyDefaultFormat:      "Formato predeterminado",
		KeySave:               "Guardar",
		KeyCancel:             "Cancelar",
		KeyClose:              "Cerrar",
		KeyBrowse:             "Examinar",
		KeySettingsSaved:      "Preferencias guardadas",
		KeyNoHistory:          "Todavía no hay descargas",
		KeyHistoryUnavailable: "El historial no está disponible",
		KeyErrorOpeningFolder: "Error al abrir la carpeta",
	}
}
