package textgrid

// sink receives the operations a schema declares. One schema is replayed
// against several sinks per construction: layout discovery, one header pass
// per group depth, one body pass per source row, and the record-export
// writers. Each pass gets its own sink instance; no state is shared between
// passes.
type sink interface {
	// content is called once per leaf column. cell is nil when no value is
	// bound: layout and header passes, filtered-out rows, and leaves inside
	// a merge bracket.
	content(cell *Cell, stretch bool)

	// mergeStart and mergeEnd bracket leaves that collapse into one cell
	// spanning their columns.
	mergeStart(cell Cell)
	mergeEnd(cell Cell)

	// groupStart and groupEnd bracket a nested column group.
	groupStart(header Cell)
	groupEnd(header Cell)
}

// Schema declares the columns of a grid for source type T. The same schema
// is consulted for structure (no source bound) and for data (one source per
// body row), so column declarations must not depend on any particular source
// value.
type Schema[T any] interface {
	Cells(f *Formatter[T])
}

// SchemaFunc adapts a function to the Schema interface.
type SchemaFunc[T any] func(f *Formatter[T])

// Cells calls fn(f).
func (fn SchemaFunc[T]) Cells(f *Formatter[T]) { fn(f) }

// Formatter is the surface a schema declares columns against. Use [Column],
// [Group], and [Content] to declare columns, and [Map], [FilterMap], and
// [TryMap] to transform the bound source value before it reaches nested
// declarations.
type Formatter[T any] struct {
	w       sink
	src     *T
	stretch bool
}

func newFormatter[T any](w sink, src *T) *Formatter[T] {
	return &Formatter[T]{w: w, src: src}
}

// Column declares one terminal column under a header.
func Column[T any](f *Formatter[T], header any, get func(T) any) {
	Group(f, header, func(f *Formatter[T]) {
		Content(f, get)
	})
}

// Group declares a column group: nested declarations issued by body share
// the header, producing one extra header row per nesting level. The group is
// closed even if body panics.
func Group[T any](f *Formatter[T], header any, body func(*Formatter[T])) {
	h := NewCell(header)
	f.w.groupStart(h)
	defer f.w.groupEnd(h)
	body(f)
}

// Content declares a leaf that contributes to the enclosing column without a
// header of its own. When no source is bound (or the source was filtered
// out) a blank cell is emitted so column counts stay aligned.
func Content[T any](f *Formatter[T], get func(T) any) {
	if f.src == nil {
		f.w.content(nil, f.stretch)
		return
	}
	c := NewCell(get(*f.src))
	f.w.content(&c, f.stretch)
}

// Map runs body against a Formatter whose source value has been converted
// by m.
func Map[T, U any](f *Formatter[T], m func(T) U, body func(*Formatter[U])) {
	g := Formatter[U]{w: f.w, stretch: f.stretch}
	if f.src != nil {
		u := m(*f.src)
		g.src = &u
	}
	body(&g)
}

// FilterMap runs body against a Formatter whose source value has been
// converted by m; when m reports false the nested leaves emit blank cells.
func FilterMap[T, U any](f *Formatter[T], m func(T) (U, bool), body func(*Formatter[U])) {
	g := Formatter[U]{w: f.w, stretch: f.stretch}
	if f.src != nil {
		if u, ok := m(*f.src); ok {
			g.src = &u
		}
	}
	body(&g)
}

// TryMap runs body against a Formatter whose source value has been converted
// by m. When m fails, the error text is emitted as a single merged cell
// spanning every column body would have produced.
func TryMap[T, U any](f *Formatter[T], m func(T) (U, error), body func(*Formatter[U])) {
	g := Formatter[U]{w: f.w, stretch: f.stretch}
	if f.src != nil {
		u, err := m(*f.src)
		if err != nil {
			c := NewCell(err)
			f.w.mergeStart(c)
			defer f.w.mergeEnd(c)
		} else {
			g.src = &u
		}
	}
	body(&g)
}

// Filter returns a Formatter that emits blank body cells unless the bound
// source satisfies pred.
func (f *Formatter[T]) Filter(pred func(T) bool) *Formatter[T] {
	g := *f
	if g.src != nil && !pred(*g.src) {
		g.src = nil
	}
	return &g
}

// Stretch returns a Formatter whose leaves are flagged to receive priority
// when extra width is distributed under a spanning cell. See
// [ColumnStyle.Stretch].
func (f *Formatter[T]) Stretch() *Formatter[T] {
	g := *f
	g.stretch = true
	return &g
}
