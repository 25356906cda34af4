package formats

import (
	"github.com/dustin/go-humanize"

	"github.com/ytget/easytube/internal/model"
)

// SizeLabel renders the file size for display, marking approximate sizes
// with "~". unknown is returned when the size is not known.
func SizeLabel(f model.Format, unknown string) string {
	if f.FileSize <= 0 {
		return unknown
	}
	label := humanize.IBytes(uint64(f.FileSize))
	if f.FileSizeApprox {
		return "~" + label
	}
	return label
}
