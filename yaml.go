package textgrid

import (
	"io"

	"gopkg.in/yaml.v3"
)

// WriteYAML writes sources as one YAML document: a sequence holding one
// mapping per source row. Keys are the flattened header paths in declaration
// order; the document is built from yaml.Node mappings, since a plain Go map
// would lose column order. Values are the same field strings the CSV export
// produces.
func WriteYAML[T any](w io.Writer, sources []T, schema Schema[T]) error {
	hw := &csvHeaderWriter{sep: "."}
	schema.Cells(newFormatter[T](hw, nil))

	doc := yaml.Node{Kind: yaml.SequenceNode}
	bw := &csvBodyWriter{}
	for i := range sources {
		schema.Cells(newFormatter(bw, &sources[i]))
		m := yaml.Node{Kind: yaml.MappingNode}
		for j, field := range bw.record {
			if j >= len(hw.record) {
				break
			}
			m.Content = append(m.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Value: hw.record[j]},
				&yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: field},
			)
		}
		doc.Content = append(doc.Content, &m)
		bw.record = bw.record[:0]
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return err
	}
	return enc.Close()
}
