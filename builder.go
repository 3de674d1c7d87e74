package textgrid

import (
	"io"
	"math"
	"sort"
	"strings"

	"github.com/mattn/go-runewidth"
)

// ColumnStyle is the per-column layout style. Columns beyond the
// ColumnStyles slice use the zero-value-with-divider default.
type ColumnStyle struct {
	// ColumnEnd draws a divider on the right side of this column. It is
	// ignored for the rightmost column, whose border is always drawn.
	ColumnEnd bool

	// Stretch gives this column priority when extra width must be
	// distributed under a spanning cell: if any column under the span is
	// stretch flagged, only stretch-flagged columns grow.
	Stretch bool
}

var defaultColumnStyle = ColumnStyle{ColumnEnd: true}

// cellEntry references a span of the builder's shared buffer. Offsets are
// monotonically increasing and spans never overlap; the cell text for entry
// i ends where entry i+1 begins.
type cellEntry struct {
	offset  int
	width   int
	colspan int
	style   CellStyle
}

type rowEntry struct {
	cellsIdx  int
	separator bool
}

// Builder assembles a grid row by row and renders it as an aligned
// plain-text table. It is build-then-render: rows are only ever appended,
// and rendering is read-only, so a fully built Builder may be rendered
// repeatedly and concurrently.
//
//	b := textgrid.NewBuilder()
//	b.PushRow(func(r *textgrid.Row) {
//		r.Push(textgrid.NewCell("name").Right())
//		r.Push("type")
//		r.Push("value")
//	})
//	b.PushSeparator()
//	b.PushRow(func(r *textgrid.Row) {
//		r.Push(textgrid.NewCell("X").Right())
//		r.Push("A")
//		r.Push(10)
//	})
//	b.PushRow(func(r *textgrid.Row) {
//		r.Push(textgrid.NewCell("Y").Right())
//		r.PushColspan(textgrid.NewCell("BBB").Center(), 2)
//	})
//	fmt.Print(b)
//
// Output:
//
//	 name | type | value |
//	------|------|-------|
//	    X | A    |    10 |
//	    Y |     BBB      |
type Builder struct {
	buf     []byte
	cells   []cellEntry
	rows    []rowEntry
	columns int

	// ColumnStyles holds per-column styles, indexed left to right.
	ColumnStyles []ColumnStyle
}

// NewBuilder creates an empty Builder.
func NewBuilder() *Builder {
	return &Builder{}
}

// PushRow appends a row to the bottom of the grid; fn receives the Row to
// fill. The grid's column count follows the widest row pushed so far.
func (b *Builder) PushRow(fn func(*Row)) {
	r := Row{b: b, cellsIdx: len(b.cells)}
	fn(&r)
	r.finish()
}

// PushSeparator marks a separator line under the most recently pushed row.
func (b *Builder) PushSeparator() {
	if n := len(b.rows); n > 0 {
		b.rows[n-1].separator = true
	}
}

// Columns returns the number of logical columns, derived from the widest
// row pushed so far.
func (b *Builder) Columns() int {
	return b.columns
}

// Row appends cells to one row of a Builder. It is only valid inside the
// callback passed to [Builder.PushRow].
type Row struct {
	b        *Builder
	cellsIdx int
}

// Push appends a cell to the right of the row.
func (r *Row) Push(v any) {
	r.pushCell(NewCell(v), 1)
}

// PushColspan appends a cell occupying colspan columns to the right of the
// row. A colspan of 0 appends nothing.
func (r *Row) PushColspan(v any, colspan int) {
	r.pushCell(NewCell(v), colspan)
}

func (r *Row) pushCell(c Cell, colspan int) {
	if colspan == 0 {
		return
	}
	if colspan < 0 {
		panic("textgrid: negative colspan")
	}
	b := r.b
	offset := len(b.buf)
	b.buf = appendCellText(b.buf, c.value)
	b.cells = append(b.cells, cellEntry{
		offset:  offset,
		width:   runewidth.StringWidth(string(b.buf[offset:])),
		colspan: colspan,
		style:   c.style.Or(defaultStyle(c.value)),
	})
}

func (r *Row) finish() {
	b := r.b
	columns := 0
	for _, c := range b.cells[r.cellsIdx:] {
		columns += c.colspan
	}
	if columns > b.columns {
		b.columns = columns
	}
	b.rows = append(b.rows, rowEntry{cellsIdx: r.cellsIdx})
}

// ExtendHeader runs the schema's layout pass, installs the discovered column
// styles, and emits one header row per group depth, each followed by a
// separator.
func ExtendHeader[T any](b *Builder, schema Schema[T]) {
	layout := layoutOf(schema)
	b.ColumnStyles = layout.styles
	for target := 0; target < layout.depthMax; target++ {
		b.PushRow(func(r *Row) {
			hw := newHeaderWriter(r, target)
			schema.Cells(newFormatter[T](hw, nil))
			hw.finish()
		})
		b.PushSeparator()
	}
}

// PushBody appends one body row for source.
func PushBody[T any](b *Builder, schema Schema[T], source T) {
	b.PushRow(func(r *Row) {
		schema.Cells(newFormatter(&bodyWriter{row: r}, &source))
	})
}

// ExtendBody appends one body row per source.
func ExtendBody[T any](b *Builder, schema Schema[T], sources ...T) {
	for _, s := range sources {
		PushBody(b, schema, s)
	}
}

func (b *Builder) columnStyle(column int) ColumnStyle {
	if column < len(b.ColumnStyles) {
		return b.ColumnStyles[column]
	}
	return defaultColumnStyle
}

func (b *Builder) stretchCount(column, colspan int) int {
	count := 0
	for i := 0; i < colspan; i++ {
		if b.columnStyle(column + i).Stretch {
			count++
		}
	}
	return count
}

// hasBorder reports whether a divider prints at boundary n, for n in
// 0..columns. Position 0 is tested against nothing before it and is never a
// border; the closing border at columns is always drawn.
func (b *Builder) hasBorder(n int) bool {
	switch {
	case n == 0:
		return false
	case n >= b.columns:
		return true
	default:
		return b.columnStyle(n - 1).ColumnEnd
	}
}

func (b *Builder) hasLeftPadding(n int) bool {
	if n == 0 {
		return true
	}
	return b.hasBorder(n)
}

func (b *Builder) hasRightPadding(n int) bool {
	if n == b.columns {
		return true
	}
	return b.hasBorder(n + 1)
}

// spanWidth is the rendered width of colspan columns starting at column:
// the column widths plus 3 characters for each internal divider (space,
// divider, space).
func (b *Builder) spanWidth(widths []int, column, colspan int) int {
	if colspan < 1 {
		panic("textgrid: colspan out of range")
	}
	total := widths[column]
	for i := 1; i < colspan; i++ {
		if b.hasBorder(column + i) {
			total += 3
		}
		total += widths[column+i]
	}
	return total
}

type spanKey struct {
	column  int
	colspan int
}

type block struct {
	stretch int
	colspan int
	column  int
	width   int
}

// widths reconciles column widths. Each column starts at the maximum width
// of its single-column cells; spanning cells are then deduplicated into
// blocks and any shortfall is distributed across the spanned columns,
// growing the narrowest eligible columns level with each other.
//
// The result is a local, order-dependent heuristic, not a global optimum:
// blocks settle smallest and simplest first so later distributions build on
// already-resolved widths, and the tie-break order below is part of the
// output contract.
func (b *Builder) widths() []int {
	widths := make([]int, b.columns)
	spans := make(map[spanKey]int)
	for row := range b.rows {
		cur := b.rowCursor(row)
		for {
			c, ok := cur.next()
			if !ok {
				break
			}
			if c.colspan == 1 {
				if c.width > widths[c.column] {
					widths[c.column] = c.width
				}
			} else {
				key := spanKey{column: c.column, colspan: c.colspan}
				if c.width > spans[key] {
					spans[key] = c.width
				}
			}
		}
	}

	blocks := make([]block, 0, len(spans))
	for key, width := range spans {
		blocks = append(blocks, block{
			stretch: b.stretchCount(key.column, key.colspan),
			colspan: key.colspan,
			column:  key.column,
			width:   width,
		})
	}
	sort.Slice(blocks, func(i, j int) bool {
		x, y := blocks[i], blocks[j]
		if x.stretch != y.stretch {
			return x.stretch < y.stretch
		}
		if x.colspan != y.colspan {
			return x.colspan < y.colspan
		}
		if x.column != y.column {
			return x.column < y.column
		}
		return x.width < y.width
	})

	var expand []int
	for _, blk := range blocks {
		total := b.spanWidth(widths, blk.column, blk.colspan)

		// If any spanned column is stretch flagged, growth is confined to
		// the stretch-flagged columns, starting at the first one.
		start := blk.column
		if blk.stretch > 0 {
			for col := blk.column; col < blk.column+blk.colspan; col++ {
				if b.columnStyle(col).Stretch {
					start = col
					break
				}
			}
		}

		for total < blk.width {
			expand = expand[:0]
			expand = append(expand, start)
			minWidth := widths[start]
			nextWidth := math.MaxInt
			for col := start + 1; col < blk.column+blk.colspan; col++ {
				if blk.stretch == 0 || b.columnStyle(col).Stretch {
					w := widths[col]
					if w < minWidth {
						expand = expand[:0]
						nextWidth = minWidth
						minWidth = w
					}
					if w == minWidth {
						expand = append(expand, col)
					}
				}
			}
			// Grow all minimum-width columns by an equal share of the
			// shortfall, capped so none passes the next-narrowest column in
			// a single step.
			for i := range expand {
				count := len(expand) - i
				need := blk.width - total
				grow := (need + count - 1) / count
				if limit := nextWidth - minWidth; grow > limit {
					grow = limit
				}
				total += grow
				widths[expand[i]] += grow
			}
		}
	}
	return widths
}

// cellRef is a cell resolved against its row position and buffer span.
type cellRef struct {
	cellEntry
	column int
	text   string
}

// cursor walks one row's cells left to right, tracking the current column.
type cursor struct {
	b      *Builder
	column int
	idx    int
	end    int
}

// rowCursor returns a cursor over the given row, or nil past the last row.
func (b *Builder) rowCursor(row int) *cursor {
	if row >= len(b.rows) {
		return nil
	}
	return &cursor{b: b, idx: b.cellsIdx(row), end: b.cellsIdx(row + 1)}
}

func (b *Builder) cellsIdx(row int) int {
	if row < len(b.rows) {
		return b.rows[row].cellsIdx
	}
	return len(b.cells)
}

func (b *Builder) textEnd(cellsIdx int) int {
	if cellsIdx < len(b.cells) {
		return b.cells[cellsIdx].offset
	}
	return len(b.buf)
}

func (c *cursor) next() (cellRef, bool) {
	if c.idx == c.end {
		return cellRef{}, false
	}
	b := c.b
	entry := b.cells[c.idx]
	ref := cellRef{
		cellEntry: entry,
		column:    c.column,
		text:      string(b.buf[entry.offset:b.textEnd(c.idx+1)]),
	}
	c.column += entry.colspan
	c.idx++
	return ref, true
}

// String renders the grid. Rendering mutates nothing, so repeated calls
// yield byte-identical output.
func (b *Builder) String() string {
	var sb strings.Builder
	widths := b.widths()
	for row := range b.rows {
		b.writeRow(&sb, widths, row)
		if b.rows[row].separator {
			b.writeSeparator(&sb, widths, row)
		}
	}
	return sb.String()
}

// WriteTo writes the rendered grid to w.
func (b *Builder) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

func (b *Builder) writeRow(sb *strings.Builder, widths []int, row int) {
	if b.hasBorder(0) {
		sb.WriteByte('|')
	}
	cur := b.rowCursor(row)
	for {
		c, ok := cur.next()
		if !ok {
			break
		}
		if b.hasLeftPadding(c.column) {
			sb.WriteByte(' ')
		}
		pad := b.spanWidth(widths, c.column, c.colspan) - c.width
		align := c.style.Align
		if align == AlignDefault {
			align = AlignLeft
		}
		switch align {
		case AlignRight:
			sb.WriteString(strings.Repeat(" ", pad))
			sb.WriteString(c.text)
		case AlignCenter:
			lp := pad / 2
			sb.WriteString(strings.Repeat(" ", lp))
			sb.WriteString(c.text)
			sb.WriteString(strings.Repeat(" ", pad-lp))
		default:
			sb.WriteString(c.text)
			sb.WriteString(strings.Repeat(" ", pad))
		}
		if b.hasRightPadding(c.column + c.colspan - 1) {
			sb.WriteByte(' ')
		}
		if b.hasBorder(c.column + c.colspan) {
			sb.WriteByte('|')
		}
	}
	sb.WriteByte('\n')
}

// writeSeparator draws the rule under row. At each boundary a divider
// prints only when both the row above and the row below break exactly
// there; a cell spanning the boundary turns it into a dash so the rule runs
// continuously underneath.
func (b *Builder) writeSeparator(sb *strings.Builder, widths []int, row int) {
	above := b.rowCursor(row)
	below := b.rowCursor(row + 1)
	for column, width := range widths {
		if b.hasLeftPadding(column) {
			sb.WriteByte('-')
		}
		sb.WriteString(strings.Repeat("-", width))
		if b.hasRightPadding(column) {
			sb.WriteByte('-')
		}
		aligned := true
		for _, cur := range []*cursor{above, below} {
			if cur == nil {
				continue
			}
			for cur.column <= column {
				if _, ok := cur.next(); !ok {
					break
				}
			}
			if cur.column != column+1 {
				aligned = false
			}
		}
		if b.hasBorder(column + 1) {
			if aligned {
				sb.WriteByte('|')
			} else {
				sb.WriteByte('-')
			}
		}
	}
	sb.WriteByte('\n')
}
