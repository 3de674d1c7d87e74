package textgrid

import (
	"encoding/csv"
	"io"
)

// WriteCSV writes sources as CSV: one header record with each leaf-bearing
// column's full group-label path joined by pathSep, then one record per
// source. Shared-content and merged leaves collapse into a single field.
func WriteCSV[T any](w io.Writer, sources []T, schema Schema[T], pathSep string) error {
	cw := csv.NewWriter(w)

	hw := &csvHeaderWriter{sep: pathSep}
	schema.Cells(newFormatter[T](hw, nil))
	if err := cw.Write(hw.record); err != nil {
		return err
	}

	bw := &csvBodyWriter{}
	for i := range sources {
		schema.Cells(newFormatter(bw, &sources[i]))
		if err := cw.Write(bw.record); err != nil {
			return err
		}
		bw.record = bw.record[:0]
	}
	cw.Flush()
	return cw.Error()
}

// csvHeaderWriter flattens the multi-level header into one record. The
// innermost group enclosing content emits a field holding the joined label
// path from the root.
type csvHeaderWriter struct {
	record     []string
	path       []byte
	lens       []int
	hasContent bool
	sep        string
}

func (h *csvHeaderWriter) content(*Cell, bool) {
	h.hasContent = true
}

func (h *csvHeaderWriter) mergeStart(Cell) {}
func (h *csvHeaderWriter) mergeEnd(Cell)   {}

func (h *csvHeaderWriter) groupStart(header Cell) {
	h.lens = append(h.lens, len(h.path))
	if len(h.path) > 0 {
		h.path = append(h.path, h.sep...)
	}
	h.path = appendCellText(h.path, header.value)
}

func (h *csvHeaderWriter) groupEnd(Cell) {
	if h.hasContent {
		h.record = append(h.record, string(h.path))
		h.hasContent = false
	}
	n := len(h.lens) - 1
	h.path = h.path[:h.lens[n]]
	h.lens = h.lens[:n]
}

// csvBodyWriter flattens one source row into one record. Every leaf writes
// into the pending field; the enclosing group end flushes it.
type csvBodyWriter struct {
	record     []string
	field      []byte
	hasContent bool
}

func (b *csvBodyWriter) content(cell *Cell, _ bool) {
	if cell != nil {
		b.field = appendCellText(b.field, cell.value)
	}
	b.hasContent = true
}

func (b *csvBodyWriter) mergeStart(cell Cell) {
	b.field = appendCellText(b.field, cell.value)
}

func (b *csvBodyWriter) mergeEnd(Cell) {}

func (b *csvBodyWriter) groupStart(Cell) {}

func (b *csvBodyWriter) groupEnd(Cell) {
	if b.hasContent {
		b.record = append(b.record, string(b.field))
		b.field = b.field[:0]
		b.hasContent = false
	}
}
