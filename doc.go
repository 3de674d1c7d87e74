// Package textgrid renders rows of Go values as aligned plain-text tables.
//
// Columns are declared once against a source type, and every row is then
// formatted through that declaration, so a table's shape lives in one place
// instead of being rebuilt at each call site.
//
// # Declaring columns
//
// A [Schema] declares the columns for a source type T. [Column] declares a
// header over a single value; [Group] nests declarations under a shared
// header, adding one header row per nesting level:
//
//	type Stat struct {
//		Name string
//		Hit  int
//		Miss int
//	}
//
//	schema := textgrid.SchemaFunc[Stat](func(f *textgrid.Formatter[Stat]) {
//		textgrid.Column(f, "name", func(s Stat) any { return s.Name })
//		textgrid.Group(f, "cache", func(f *textgrid.Formatter[Stat]) {
//			textgrid.Column(f, "hit", func(s Stat) any { return s.Hit })
//			textgrid.Column(f, "miss", func(s Stat) any { return s.Miss })
//		})
//	})
//
//	g := textgrid.GridOf(schema, Stat{"a", 10, 2}, Stat{"b", 7, 0})
//	fmt.Print(g)
//
// Output:
//
//	 name |   cache    |
//	      | hit | miss |
//	------|-----|------|
//	 a    |  10 |    2 |
//	 b    |   7 |    0 |
//
// Numbers are right aligned, booleans centered, and text left aligned by
// default; wrap a value in a [Cell] to override. [Map], [FilterMap], and
// [TryMap] transform the source value before nested declarations see it, and
// [Formatter.Filter] blanks out rows that fail a predicate.
//
// # The builder
//
// [Builder] is the low-level surface underneath [Grid]: rows of cells are
// pushed directly, including cells spanning several columns, and column
// widths are reconciled when the table is rendered. Use it when rows do not
// share a single source type.
//
// # Exports
//
// A grid also exports as CSV and YAML through [Grid.WriteCSV] and
// [Grid.WriteYAML]. Nested group headers flatten into dotted column paths.
package textgrid
