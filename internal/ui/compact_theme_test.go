package ui

import (
	"testing"

	"fyne.io/fyne/v2/theme"
)

func TestCompactTheme(t *testing.T) {
	th := NewCompactTheme()

	if got := th.Color(theme.ColorNamePrimary, theme.VariantLight); got != ColorAccent {
		t.Errorf("Expected accent primary color, got %v", got)
	}
	if got := th.Size(theme.SizeNamePadding); got != 3 {
		t.Errorf("Expected compact padding 3, got %v", got)
	}
	if got, def := th.Size(theme.SizeNameScrollBar), theme.DefaultTheme().Size(theme.SizeNameScrollBar); got != def {
		t.Errorf("Expected default scroll bar size %v, got %v", def, got)
	}
}
