package textgrid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasBorder(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	b.ColumnStyles = []ColumnStyle{{ColumnEnd: false}, {ColumnEnd: true}}
	b.PushRow(func(r *Row) {
		r.Push("a")
		r.Push("b")
		r.Push("c")
	})
	assert.False(t, b.hasBorder(0))
	assert.False(t, b.hasBorder(1))
	assert.True(t, b.hasBorder(2))
	assert.True(t, b.hasBorder(3))
}

func TestWidthsSimple(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	b.PushRow(func(r *Row) {
		r.Push("a")
		r.Push("bbbb")
	})
	b.PushRow(func(r *Row) {
		r.Push("aa")
		r.Push("b")
	})
	assert.Equal(t, []int{2, 4}, b.widths())
}

func TestWidthsSpanShortfall(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	b.PushRow(func(r *Row) {
		r.Push("a")
		r.Push("b")
	})
	b.PushRow(func(r *Row) {
		r.PushColspan("********", 2)
	})
	// The span renders 5 wide (1 + 3 + 1); the 3 missing characters go to
	// the narrower columns first, leaving them level.
	assert.Equal(t, []int{3, 2}, b.widths())
}

func TestWidthsStretch(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	b.ColumnStyles = []ColumnStyle{{ColumnEnd: true, Stretch: true}, {ColumnEnd: true}}
	b.PushRow(func(r *Row) {
		r.Push("a")
		r.Push("b")
	})
	b.PushRow(func(r *Row) {
		r.PushColspan("********", 2)
	})
	assert.Equal(t, []int{4, 1}, b.widths())
}

func TestWidthsDeterministic(t *testing.T) {
	t.Parallel()
	build := func() *Builder {
		b := NewBuilder()
		b.PushRow(func(r *Row) {
			r.PushColspan("aaaaaaaaaa", 2)
			r.PushColspan("bbbbbbbb", 2)
		})
		b.PushRow(func(r *Row) {
			r.Push("1")
			r.PushColspan("cccccccccccc", 2)
			r.Push("4")
		})
		return b
	}
	want := build().widths()
	for i := 0; i < 50; i++ {
		assert.Equal(t, want, build().widths())
	}
}

func TestSpanWidth(t *testing.T) {
	t.Parallel()
	b := NewBuilder()
	b.ColumnStyles = []ColumnStyle{{ColumnEnd: false}, {ColumnEnd: true}}
	b.PushRow(func(r *Row) {
		r.Push("aa")
		r.Push("bbb")
		r.Push("c")
	})
	widths := b.widths()
	require.Equal(t, []int{2, 3, 1}, widths)
	assert.Equal(t, 5, b.spanWidth(widths, 0, 2))
	assert.Equal(t, 7, b.spanWidth(widths, 1, 2))
	assert.Equal(t, 9, b.spanWidth(widths, 0, 3))
}

func TestLayoutOf(t *testing.T) {
	t.Parallel()
	type source struct{ A, B1, B2 int }
	schema := SchemaFunc[source](func(f *Formatter[source]) {
		Column(f, "a", func(s source) any { return s.A })
		Group(f, "b", func(f *Formatter[source]) {
			Column(f, "1", func(s source) any { return s.B1 })
			Column(f, "2", func(s source) any { return s.B2 })
		})
	})
	layout := layoutOf(schema)
	assert.Equal(t, 2, layout.depthMax)
	assert.Equal(t, []ColumnStyle{{ColumnEnd: true}, {ColumnEnd: true}}, layout.styles)
}

func TestLayoutOfStretch(t *testing.T) {
	t.Parallel()
	schema := SchemaFunc[int](func(f *Formatter[int]) {
		Group(f, "g", func(f *Formatter[int]) {
			Content(f.Stretch(), func(x int) any { return x })
			Content(f, func(x int) any { return x })
		})
	})
	layout := layoutOf(schema)
	assert.Equal(t, 1, layout.depthMax)
	assert.Equal(t, []ColumnStyle{{Stretch: true}}, layout.styles)
}

func TestDefaultStyle(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		value any
		want  Alignment
	}{
		"int":     {10, AlignRight},
		"uint":    {uint(10), AlignRight},
		"float":   {1.5, AlignRight},
		"bool":    {true, AlignCenter},
		"string":  {"x", AlignLeft},
		"nil":     {nil, AlignDefault},
		"wrapped": {NewCell(10), AlignRight},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, CellStyle{Align: tt.want}, defaultStyle(tt.value))
		})
	}
}

func TestCellStyleOr(t *testing.T) {
	t.Parallel()
	set := CellStyle{Align: AlignRight}
	assert.Equal(t, set, set.Or(CellStyle{Align: AlignLeft}))
	assert.Equal(t, CellStyle{Align: AlignLeft}, CellStyle{}.Or(CellStyle{Align: AlignLeft}))
	assert.Equal(t, CellStyle{}, CellStyle{}.Or(CellStyle{}))
}
