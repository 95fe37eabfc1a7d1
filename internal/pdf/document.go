package pdf

// RawDocument holds everything extracted from a single PDF file: the plain
// text lines in page order, and zero or more cell grids built from the
// positioned row text. It is immutable once returned by the Extractor and
// discarded after normalization.
type RawDocument struct {
	// SourceFile is the base name of the input file, carried through to the
	// output template's Source File column.
	SourceFile string

	// Lines are the non-blank text lines of all pages, in reading order.
	Lines []string

	// Grids are per-page cell grids: one row of cells per positioned text
	// row. Pages with no positioned text contribute no grid.
	Grids [][][]string

	// Pages is the page count of the source document.
	Pages int
}

// IsEmpty reports whether extraction found no usable content at all.
func (d *RawDocument) IsEmpty() bool {
	if len(d.Lines) > 0 {
		return false
	}
	for _, grid := range d.Grids {
		for _, row := range grid {
			if len(row) > 0 {
				return false
			}
		}
	}
	return true
}
