package textgrid

import "fmt"

// Alignment controls horizontal alignment of a cell's text within its
// column. The zero value means "unset": the cell falls back to the default
// alignment for its value's type when the row is rendered.
type Alignment int

const (
	AlignDefault Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// CellStyle holds the per-cell presentation settings.
type CellStyle struct {
	Align Alignment
}

// Or returns s with unset fields replaced by the corresponding fields of o.
// Each field is judged independently.
func (s CellStyle) Or(o CellStyle) CellStyle {
	if s.Align == AlignDefault {
		s.Align = o.Align
	}
	return s
}

// Cell pairs a value with an explicit style. Schema leaves, row pushes, and
// headers all accept plain Go values; wrap a value in a Cell only to override
// its default alignment:
//
//	r.Push(textgrid.NewCell("total").Right())
type Cell struct {
	value any
	style CellStyle
}

// NewCell creates a Cell for v with no explicit style. If v is already a
// Cell it is returned unchanged.
func NewCell(v any) Cell {
	if c, ok := v.(Cell); ok {
		return c
	}
	return Cell{value: v}
}

// Cellf creates a Cell from a format string, like fmt.Sprintf.
func Cellf(format string, args ...any) Cell {
	return Cell{value: fmt.Sprintf(format, args...)}
}

// Left returns the cell with horizontal alignment set to the left.
func (c Cell) Left() Cell {
	c.style = CellStyle{Align: AlignLeft}
	return c
}

// Right returns the cell with horizontal alignment set to the right.
func (c Cell) Right() Cell {
	c.style = CellStyle{Align: AlignRight}
	return c
}

// Center returns the cell with horizontal alignment centered.
func (c Cell) Center() Cell {
	c.style = CellStyle{Align: AlignCenter}
	return c
}

// WithBaseStyle returns the cell with unset style fields replaced by style.
func (c Cell) WithBaseStyle(style CellStyle) Cell {
	c.style = c.style.Or(style)
	return c
}

// Style returns the cell's explicit style.
func (c Cell) Style() CellStyle {
	return c.style
}

// appendCellText formats v into buf. Writing happens exactly once per cell,
// into the builder's shared buffer; a cell never re-renders.
func appendCellText(buf []byte, v any) []byte {
	switch x := v.(type) {
	case nil:
		return buf
	case Cell:
		return appendCellText(buf, x.value)
	case string:
		return append(buf, x...)
	case []byte:
		return append(buf, x...)
	case fmt.Stringer:
		return append(buf, x.String()...)
	case error:
		return append(buf, x.Error()...)
	default:
		return fmt.Append(buf, v)
	}
}

// defaultStyle returns the default style for a value's type: numbers are
// right aligned, booleans centered, text left aligned. It is consulted only
// when the cell carries no explicit alignment.
func defaultStyle(v any) CellStyle {
	switch x := v.(type) {
	case Cell:
		return defaultStyle(x.value)
	case int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64, uintptr,
		float32, float64:
		return CellStyle{Align: AlignRight}
	case bool:
		return CellStyle{Align: AlignCenter}
	case nil:
		return CellStyle{}
	default:
		return CellStyle{Align: AlignLeft}
	}
}
