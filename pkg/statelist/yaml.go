package statelist

import (
	"io"

	"gopkg.in/yaml.v3"
)

// ParseYAML builds a table from a YAML selector document: a mapping with a
// single "selector" key holding a sequence of item mappings. State values
// may be written as true/false or as yes/no/on/off.
func ParseYAML(r io.Reader, opts ...ParseOption) (*Table[string], error) {
	cfg := newParseConfig(opts)

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, cfg.malformed(0, 0, err, "read failed")
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, cfg.malformed(0, 0, err, "syntax error")
	}
	if len(doc.Content) == 0 {
		return nil, cfg.malformed(0, 0, nil, "no start tag found")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode || len(root.Content) != 2 {
		return nil, cfg.malformed(root.Line, root.Column, nil, "document must be a mapping with a single %q key", tagSelector)
	}
	key, items := root.Content[0], root.Content[1]
	if key.Value != tagSelector {
		return nil, cfg.malformed(key.Line, key.Column, nil, "invalid state list tag %q", key.Value)
	}
	if items.Kind != yaml.SequenceNode {
		if items.Tag == "!!null" {
			return nil, cfg.malformed(key.Line, key.Column, nil, "<%s> has no <%s> children", tagSelector, tagItem)
		}
		return nil, cfg.malformed(items.Line, items.Column, nil, "%q must be a sequence of items", tagSelector)
	}

	b := &tableBuilder{cfg: cfg, yesNo: true}
	for _, item := range items.Content {
		if item.Kind != yaml.MappingNode {
			return nil, cfg.malformed(item.Line, item.Column, nil, "item must be a mapping")
		}
		attrs := make([]attr, 0, len(item.Content)/2)
		for i := 0; i+1 < len(item.Content); i += 2 {
			k, v := item.Content[i], item.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return nil, cfg.malformed(v.Line, v.Column, nil, "attribute %q must be a scalar", k.Value)
			}
			attrs = append(attrs, attr{name: k.Value, value: v.Value})
		}
		if err := b.addItem(attrs, item.Line, item.Column); err != nil {
			return nil, err
		}
	}
	return b.build(key.Line, key.Column)
}
