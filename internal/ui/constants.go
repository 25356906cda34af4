package ui

import "fyne.io/fyne/v2"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconDownload = "⬇"
	IconFolder   = "📁"
	IconOK       = "✅"
	IconError    = "❌"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "-"
	PercentFormat      = "%.1f%%"
	SpeedSuffix        = "/s"
)

// Window sizing
var (
	BasicWindowSize    = fyne.NewSize(520, 360)
	AdvancedWindowSize = fyne.NewSize(1000, 760)
	HistoryDialogSize  = fyne.NewSize(640, 420)
	PrefsDialogSize    = fyne.NewSize(500, 320)
)

// Format table sizing
const (
	FormatColumnWidth float32 = 150
)

// HistoryLimit is how many entries the history dialog lists
const HistoryLimit = 50
