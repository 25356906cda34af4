package formats

import (
	"cmp"
	"slices"

	"github.com/ytget/easytube/internal/model"
)

// Column identifies a sortable table column
type Column int

const (
	ColumnID Column = iota
	ColumnType
	ColumnResolution
	ColumnCodecs
	ColumnSize
	ColumnRecommendation
)

// Columns lists the table columns in display order
var Columns = []Column{ColumnID, ColumnType, ColumnResolution, ColumnCodecs, ColumnSize, ColumnRecommendation}

// Sort returns a copy of formats ordered by column. Resolution sorts by
// height, size by bytes and recommendation by rank; the rest sort as text.
// Equal keys keep their relative order.
func Sort(formats []model.Format, column Column, descending bool) []model.Format {
	out := slices.Clone(formats)
	slices.SortStableFunc(out, func(a, b model.Format) int {
		c := compare(a, b, column)
		if descending {
			return -c
		}
		return c
	})
	return out
}

func compare(a, b model.Format, column Column) int {
	switch column {
	case ColumnType:
		return cmp.Compare(Kind(a), Kind(b))
	case ColumnResolution:
		return cmp.Compare(a.Height(), b.Height())
	case ColumnCodecs:
		return cmp.Compare(a.Codecs(), b.Codecs())
	case ColumnSize:
		return cmp.Compare(a.FileSize, b.FileSize)
	case ColumnRecommendation:
		return cmp.Compare(Recommend(a).rank(), Recommend(b).rank())
	default:
		return cmp.Compare(a.ID, b.ID)
	}
}
