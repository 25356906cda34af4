package ui

import (
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/ytget/easytube/internal/formats"
	"github.com/ytget/easytube/internal/model"
)

func rowIDs(rows []model.Format) []string {
	ids := make([]string, len(rows))
	for i, f := range rows {
		ids[i] = f.ID
	}
	return ids
}

func equalIDs(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFormatTable_SortToggle(t *testing.T) {
	test.NewApp()
	ft := NewFormatTable(NewLocalization())
	ft.SetFormats(sampleFormats)

	if got := rowIDs(ft.Rows()); !equalIDs(got, []string{"251", "140", "137", "18"}) {
		t.Errorf("Expected input order before sorting, got %v", got)
	}

	ft.SortBy(formats.ColumnSize)
	if got := rowIDs(ft.Rows()); !equalIDs(got, []string{"251", "140", "18", "137"}) {
		t.Errorf("Expected ascending size order, got %v", got)
	}
	if got := ft.headerText(formats.ColumnSize); got != "Size"+sortAscMarker {
		t.Errorf("Unexpected header %q", got)
	}

	ft.SortBy(formats.ColumnSize)
	if got := rowIDs(ft.Rows()); !equalIDs(got, []string{"137", "18", "251", "140"}) {
		t.Errorf("Expected descending size order, got %v", got)
	}
	if got := ft.headerText(formats.ColumnSize); got != "Size"+sortDescMarker {
		t.Errorf("Unexpected header %q", got)
	}

	// A new column starts ascending
	ft.SortBy(formats.ColumnResolution)
	if got := ft.Rows()[len(ft.Rows())-1].ID; got != "137" {
		t.Errorf("Expected 1080p last, got %s", got)
	}
	if got := ft.headerText(formats.ColumnSize); got != "Size" {
		t.Errorf("Expected unmarked header, got %q", got)
	}
}

func TestFormatTable_Filter(t *testing.T) {
	test.NewApp()
	ft := NewFormatTable(NewLocalization())
	ft.SetFormats(sampleFormats)

	ft.SetFilter(formats.RecommendLow)
	if got := rowIDs(ft.Rows()); !equalIDs(got, []string{"18"}) {
		t.Errorf("Expected only the low format, got %v", got)
	}

	// New formats keep the filter
	ft.SetFormats(sampleFormats[:2])
	if len(ft.Rows()) != 0 {
		t.Errorf("Expected no low audio formats, got %v", rowIDs(ft.Rows()))
	}

	ft.SetFilter(formats.RecommendAll)
	if len(ft.Rows()) != 2 {
		t.Errorf("Expected all rows, got %d", len(ft.Rows()))
	}
}

func TestFormatTable_FilterSelect(t *testing.T) {
	test.NewApp()
	loc := NewLocalization()
	ft := NewFormatTable(loc)
	ft.SetFormats(sampleFormats)
	sel := newFilterSelect(loc, ft)

	sel.SetSelected(loc.GetText(KeyHigh))
	if got := rowIDs(ft.Rows()); !equalIDs(got, []string{"251", "140", "137"}) {
		t.Errorf("Expected high formats, got %v", got)
	}
}

func TestFormatTable_SelectID(t *testing.T) {
	test.NewApp()
	ft := NewFormatTable(NewLocalization())
	w := test.NewWindow(ft.Widget())
	defer w.Close()
	ft.SetFormats(sampleFormats)

	var picked string
	ft.OnSelected = func(f model.Format) {
		picked = f.ID
	}

	if !ft.SelectID("140") {
		t.Fatal("Expected 140 to be found")
	}
	if picked != "140" {
		t.Errorf("Expected selection callback for 140, got %q", picked)
	}
	if ft.SelectID("999") {
		t.Error("Expected missing ID to be reported")
	}
}

func TestFormatTable_CellText(t *testing.T) {
	ft := &FormatTable{loc: NewLocalization()}
	f := model.Format{ID: "22", Ext: "mp4", VCodec: "avc1", ACodec: "mp4a"}

	tests := []struct {
		column   formats.Column
		expected string
	}{
		{formats.ColumnID, "22"},
		{formats.ColumnType, "Video"},
		{formats.ColumnResolution, DashPlaceholder},
		{formats.ColumnSize, ft.loc.GetText(KeyUnknownSize)},
		{formats.ColumnRecommendation, ft.loc.GetText(KeyLow)},
	}

	for _, tt := range tests {
		if got := ft.cellText(f, tt.column); got != tt.expected {
			t.Errorf("Column %d: expected %q, got %q", tt.column, tt.expected, got)
		}
	}
}
