// Package ui contains the Fyne desktop interface: the basic window for
// one-click downloads, the advanced window with the format tables, and the
// preferences and history dialogs. Worker results reach widgets only through
// fyne.Do. All strings are localized via Localization.
package ui
