package textgrid

// gridLayout is the structure-discovery sink. It runs the schema with no
// source bound and records, per leaf, whether the boundary after it is a
// forced divider (it is whenever the leaf sits at a group edge), which
// leaves are stretch flagged, and the deepest group nesting, which equals
// the number of header rows to emit.
type gridLayout struct {
	depth    int
	depthMax int
	styles   []ColumnStyle
}

func layoutOf[T any](schema Schema[T]) *gridLayout {
	l := &gridLayout{}
	schema.Cells(newFormatter[T](l, nil))
	if l.depth != 0 {
		panic("textgrid: unbalanced column group")
	}
	// The rightmost boundary always draws a border; its style entry is
	// dropped so adjacent shared-content leaves can still merge.
	if n := len(l.styles); n > 0 {
		l.styles = l.styles[:n-1]
	}
	return l
}

func (l *gridLayout) setColumnEnd() {
	if n := len(l.styles); n > 0 {
		l.styles[n-1].ColumnEnd = true
	}
}

func (l *gridLayout) content(_ *Cell, stretch bool) {
	l.styles = append(l.styles, ColumnStyle{Stretch: stretch})
}

func (l *gridLayout) mergeStart(Cell) {}
func (l *gridLayout) mergeEnd(Cell)   {}

func (l *gridLayout) groupStart(Cell) {
	l.setColumnEnd()
	l.depth++
	if l.depth > l.depthMax {
		l.depthMax = l.depth
	}
}

func (l *gridLayout) groupEnd(Cell) {
	l.depth--
	if l.depth < 0 {
		panic("textgrid: unbalanced column group")
	}
	l.setColumnEnd()
}

// headerWriter emits one header row for a single group depth. Groups at the
// target depth emit their label as one cell spanning the leaf columns
// consumed since the previous emission; shallower groups emit a blank
// placeholder so columns stay aligned across header rows.
type headerWriter struct {
	row        *Row
	depth      int
	target     int
	column     int
	columnLast int
}

func newHeaderWriter(row *Row, target int) *headerWriter {
	return &headerWriter{row: row, target: target}
}

func (h *headerWriter) pushCell(c Cell) {
	h.row.pushCell(c, h.column-h.columnLast)
	h.columnLast = h.column
}

// finish flushes the trailing span once the schema pass completes.
func (h *headerWriter) finish() {
	h.pushCell(Cell{})
}

func (h *headerWriter) content(*Cell, bool) {
	h.column++
}

func (h *headerWriter) mergeStart(Cell) {}
func (h *headerWriter) mergeEnd(Cell)   {}

func (h *headerWriter) groupStart(Cell) {
	if h.depth <= h.target {
		h.pushCell(Cell{})
	}
	h.depth++
}

func (h *headerWriter) groupEnd(header Cell) {
	h.depth--
	if h.depth == h.target {
		h.pushCell(header.WithBaseStyle(CellStyle{Align: AlignCenter}))
	}
}

// bodyWriter emits one body row. Absent values become blank cells; leaves
// inside a merge bracket are coalesced into one cell spanning their columns.
type bodyWriter struct {
	row     *Row
	merging bool
	colspan int
}

func (b *bodyWriter) content(cell *Cell, _ bool) {
	if b.merging {
		b.colspan++
		return
	}
	if cell == nil {
		b.row.pushCell(Cell{}, 1)
		return
	}
	b.row.pushCell(*cell, 1)
}

func (b *bodyWriter) mergeStart(Cell) {
	if b.merging {
		panic("textgrid: nested merged content")
	}
	b.merging = true
	b.colspan = 0
}

func (b *bodyWriter) mergeEnd(cell Cell) {
	b.row.pushCell(cell, b.colspan)
	b.merging = false
}

func (b *bodyWriter) groupStart(Cell) {}
func (b *bodyWriter) groupEnd(Cell)   {}
