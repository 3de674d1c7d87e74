package textgrid

import (
	"io"
	"strings"
)

// Grid owns a collection of source values plus the schema that formats
// them. Rows are appended as values; the table itself is constructed on
// demand, so a Grid may keep growing between renders.
//
//	type Row struct{ A, B int }
//
//	schema := textgrid.SchemaFunc[Row](func(f *textgrid.Formatter[Row]) {
//		textgrid.Column(f, "a", func(r Row) any { return r.A })
//		textgrid.Column(f, "b", func(r Row) any { return r.B })
//	})
//	g := textgrid.GridOf(schema, Row{300, 1}, Row{2, 200})
//	fmt.Print(g)
//
// Output:
//
//	  a  |  b  |
//	-----|-----|
//	 300 |   1 |
//	   2 | 200 |
type Grid[T any] struct {
	schema Schema[T]
	items  []T
	seps   []bool
}

// NewGrid creates an empty Grid for the given schema.
func NewGrid[T any](schema Schema[T]) *Grid[T] {
	return &Grid[T]{schema: schema}
}

// GridOf creates a Grid pre-filled with sources.
func GridOf[T any](schema Schema[T], sources ...T) *Grid[T] {
	g := NewGrid(schema)
	for _, s := range sources {
		g.Push(s)
	}
	return g
}

// Push appends one source row to the bottom of the grid.
func (g *Grid[T]) Push(source T) {
	g.items = append(g.items, source)
	g.seps = append(g.seps, false)
}

// PushSeparator marks a separator line under the most recently pushed row.
func (g *Grid[T]) PushSeparator() {
	if n := len(g.seps); n > 0 {
		g.seps[n-1] = true
	}
}

// Len returns the number of source rows.
func (g *Grid[T]) Len() int {
	return len(g.items)
}

// Source returns the i'th source row.
func (g *Grid[T]) Source(i int) T {
	return g.items[i]
}

// Sources returns a copy of the source rows in push order.
func (g *Grid[T]) Sources() []T {
	return append([]T(nil), g.items...)
}

// Builder constructs the low-level builder for the current contents: the
// schema's layout pass, the header rows, then one body row per source.
func (g *Grid[T]) Builder() *Builder {
	b := NewBuilder()
	ExtendHeader(b, g.schema)
	for i, item := range g.items {
		PushBody(b, g.schema, item)
		if g.seps[i] {
			b.PushSeparator()
		}
	}
	return b
}

// String renders the grid as an aligned plain-text table.
func (g *Grid[T]) String() string {
	return g.Builder().String()
}

// WriteTo writes the rendered table to w.
func (g *Grid[T]) WriteTo(w io.Writer) (int64, error) {
	return g.Builder().WriteTo(w)
}

// WriteCSV writes the grid as CSV with header paths joined by ".".
func (g *Grid[T]) WriteCSV(w io.Writer) error {
	return WriteCSV(w, g.items, g.schema, ".")
}

// CSV renders the grid as a CSV string.
func (g *Grid[T]) CSV() (string, error) {
	var sb strings.Builder
	if err := g.WriteCSV(&sb); err != nil {
		return "", err
	}
	return sb.String(), nil
}

// WriteYAML writes the grid as a YAML sequence of per-row mappings.
func (g *Grid[T]) WriteYAML(w io.Writer) error {
	return WriteYAML(w, g.items, g.schema)
}
