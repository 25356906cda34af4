package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/easytube/internal/formats"
	"github.com/ytget/easytube/internal/model"
)

// Sort direction markers shown in the header
const (
	sortAscMarker  = " ▲"
	sortDescMarker = " ▼"
)

// FormatTable is a sortable, filterable table of formats
type FormatTable struct {
	loc   *Localization
	table *widget.Table

	all  []model.Format
	rows []model.Format

	filter     formats.Recommendation
	sorted     bool
	sortColumn formats.Column
	descending bool

	// OnSelected is called when the user picks a row
	OnSelected func(model.Format)
}

// NewFormatTable creates an empty table
func NewFormatTable(loc *Localization) *FormatTable {
	ft := &FormatTable{loc: loc}

	ft.table = widget.NewTableWithHeaders(
		func() (int, int) {
			return len(ft.rows), len(formats.Columns)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.TableCellID, o fyne.CanvasObject) {
			if id.Row < 0 || id.Row >= len(ft.rows) || id.Col >= len(formats.Columns) {
				return
			}
			o.(*widget.Label).SetText(ft.cellText(ft.rows[id.Row], formats.Columns[id.Col]))
		},
	)
	ft.table.ShowHeaderColumn = false
	ft.table.CreateHeader = func() fyne.CanvasObject {
		btn := widget.NewButton("", nil)
		btn.Importance = widget.LowImportance
		return btn
	}
	ft.table.UpdateHeader = func(id widget.TableCellID, o fyne.CanvasObject) {
		if id.Col < 0 || id.Col >= len(formats.Columns) {
			return
		}
		column := formats.Columns[id.Col]
		btn := o.(*widget.Button)
		btn.SetText(ft.headerText(column))
		btn.OnTapped = func() {
			ft.SortBy(column)
		}
	}
	ft.table.OnSelected = func(id widget.TableCellID) {
		if id.Row < 0 || id.Row >= len(ft.rows) || ft.OnSelected == nil {
			return
		}
		ft.OnSelected(ft.rows[id.Row])
	}
	for i := range formats.Columns {
		ft.table.SetColumnWidth(i, FormatColumnWidth)
	}

	return ft
}

// Widget returns the canvas object to place in a layout
func (ft *FormatTable) Widget() fyne.CanvasObject {
	return ft.table
}

// SetFormats replaces the content, keeping the current filter and sort
func (ft *FormatTable) SetFormats(list []model.Format) {
	ft.all = list
	ft.refresh()
}

// SetFilter shows only formats with the given recommendation
func (ft *FormatTable) SetFilter(rec formats.Recommendation) {
	ft.filter = rec
	ft.refresh()
}

// SortBy orders rows by column; sorting twice by the same column flips the direction
func (ft *FormatTable) SortBy(column formats.Column) {
	if ft.sorted && ft.sortColumn == column {
		ft.descending = !ft.descending
	} else {
		ft.sorted = true
		ft.sortColumn = column
		ft.descending = false
	}
	ft.refresh()
}

// Rows returns the formats currently displayed, in display order
func (ft *FormatTable) Rows() []model.Format {
	return ft.rows
}

// SelectID selects the row with the given format ID and reports whether it was found
func (ft *FormatTable) SelectID(id string) bool {
	for i, f := range ft.rows {
		if f.ID == id {
			ft.table.Select(widget.TableCellID{Row: i, Col: 0})
			return true
		}
	}
	return false
}

// Refresh redraws the table, e.g. after a language change
func (ft *FormatTable) Refresh() {
	ft.table.Refresh()
}

func (ft *FormatTable) refresh() {
	rows := formats.Filter(ft.all, ft.filter)
	if ft.sorted {
		rows = formats.Sort(rows, ft.sortColumn, ft.descending)
	}
	ft.rows = rows
	ft.table.UnselectAll()
	ft.table.Refresh()
}

func (ft *FormatTable) headerText(column formats.Column) string {
	text := columnTitle(ft.loc, column)
	if ft.sorted && ft.sortColumn == column {
		if ft.descending {
			return text + sortDescMarker
		}
		return text + sortAscMarker
	}
	return text
}

func (ft *FormatTable) cellText(f model.Format, column formats.Column) string {
	switch column {
	case formats.ColumnType:
		if formats.Kind(f) == formats.KindVideo {
			return ft.loc.GetText(KeyTypeVideo)
		}
		return ft.loc.GetText(KeyTypeAudio)
	case formats.ColumnResolution:
		if f.Resolution == "" {
			return DashPlaceholder
		}
		return f.Resolution
	case formats.ColumnCodecs:
		return f.Codecs()
	case formats.ColumnSize:
		return formats.SizeLabel(f, ft.loc.GetText(KeyUnknownSize))
	case formats.ColumnRecommendation:
		return recommendationLabel(ft.loc, formats.Recommend(f))
	default:
		return f.ID
	}
}

func columnTitle(loc *Localization, column formats.Column) string {
	switch column {
	case formats.ColumnType:
		return loc.GetText(KeyColType)
	case formats.ColumnResolution:
		return loc.GetText(KeyColResolution)
	case formats.ColumnCodecs:
		return loc.GetText(KeyColCodecs)
	case formats.ColumnSize:
		return loc.GetText(KeyColSize)
	case formats.ColumnRecommendation:
		return loc.GetText(KeyColRecommended)
	default:
		return loc.GetText(KeyColID)
	}
}

// filterOptions lists the recommendation filters in menu order
var filterOptions = []formats.Recommendation{
	formats.RecommendAll,
	formats.RecommendHigh,
	formats.RecommendMedium,
	formats.RecommendLow,
}

func recommendationLabel(loc *Localization, rec formats.Recommendation) string {
	switch rec {
	case formats.RecommendHigh:
		return loc.GetText(KeyHigh)
	case formats.RecommendMedium:
		return loc.GetText(KeyMedium)
	case formats.RecommendLow:
		return loc.GetText(KeyLow)
	default:
		return loc.GetText(KeyFilterAll)
	}
}

// newFilterSelect builds the quality filter drop-down bound to table
func newFilterSelect(loc *Localization, table *FormatTable) *widget.Select {
	labels := make([]string, len(filterOptions))
	for i, rec := range filterOptions {
		labels[i] = recommendationLabel(loc, rec)
	}
	sel := widget.NewSelect(labels, nil)
	sel.OnChanged = func(string) {
		if i := sel.SelectedIndex(); i >= 0 && i < len(filterOptions) {
			table.SetFilter(filterOptions[i])
		}
	}
	sel.SetSelectedIndex(0)
	return sel
}
