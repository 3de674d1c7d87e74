package textgrid_test

import (
	"bytes"
	"testing"

	"github.com/bjaus/textgrid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type xy struct {
	A int
	Y yz
}

type yz struct {
	B int
	C int
}

var xySchema = textgrid.SchemaFunc[xy](func(f *textgrid.Formatter[xy]) {
	textgrid.Column(f, "a", func(x xy) any { return x.A })
	textgrid.Group(f, "y", func(f *textgrid.Formatter[xy]) {
		textgrid.Column(f, "b", func(x xy) any { return x.Y.B })
		textgrid.Column(f, "c", func(x xy) any { return x.Y.C })
	})
})

func TestWriteCSV(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := textgrid.WriteCSV(&buf, []ab{{1, 2}, {3, 4}}, abSchema, ".")
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n3,4\n", buf.String())
}

func TestWriteCSVNested(t *testing.T) {
	t.Parallel()
	sources := []xy{{1, yz{2, 3}}, {4, yz{5, 6}}}
	var buf bytes.Buffer
	err := textgrid.WriteCSV(&buf, sources, xySchema, ".")
	require.NoError(t, err)
	assert.Equal(t, "a,y.b,y.c\n1,2,3\n4,5,6\n", buf.String())
}

func TestWriteCSVPathSep(t *testing.T) {
	t.Parallel()
	sources := []xy{{1, yz{2, 3}}}
	var buf bytes.Buffer
	err := textgrid.WriteCSV(&buf, sources, xySchema, "/")
	require.NoError(t, err)
	assert.Equal(t, "a,y/b,y/c\n1,2,3\n", buf.String())
}

func TestWriteCSVSharedContent(t *testing.T) {
	t.Parallel()
	schema := textgrid.SchemaFunc[ab](func(f *textgrid.Formatter[ab]) {
		textgrid.Column(f, "a", func(x ab) any { return x.A })
		textgrid.Group(f, "c", func(f *textgrid.Formatter[ab]) {
			textgrid.Content(f, func(x ab) any { return x.B })
			textgrid.Content(f, func(ab) any { return "!" })
		})
	})
	var buf bytes.Buffer
	err := textgrid.WriteCSV(&buf, []ab{{300, 5}}, schema, ".")
	require.NoError(t, err)
	assert.Equal(t, "a,c\n300,5!\n", buf.String())
}

func TestWriteCSVWriterError(t *testing.T) {
	t.Parallel()
	err := textgrid.WriteCSV(errWriter{}, []ab{{1, 2}}, abSchema, ".")
	assert.Error(t, err)
}

func TestGridCSV(t *testing.T) {
	t.Parallel()
	g := textgrid.GridOf(abSchema, ab{1, 2}, ab{3, 4})
	out, err := g.CSV()
	require.NoError(t, err)
	assert.Equal(t, "a,b\n1,2\n3,4\n", out)
}
