package statelist

import (
	"encoding/xml"
	"io"
)

// ParseXML builds a table from an XML selector document. The root element
// must be <selector>; each direct <item> child becomes one entry.
func ParseXML(r io.Reader, opts ...ParseOption) (*Table[string], error) {
	cfg := newParseConfig(opts)
	dec := xml.NewDecoder(r)

	var root xml.StartElement
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			return nil, cfg.malformed(0, 0, nil, "no start tag found")
		}
		if err != nil {
			line, col := dec.InputPos()
			return nil, cfg.malformed(line, col, err, "syntax error")
		}
		if se, ok := tok.(xml.StartElement); ok {
			root = se
			break
		}
	}
	line, col := dec.InputPos()
	if root.Name.Local != tagSelector {
		return nil, cfg.malformed(line, col, nil, "invalid state list tag %q", root.Name.Local)
	}

	b := &tableBuilder{cfg: cfg}
	depth := 1
	for depth > 0 {
		tok, err := dec.Token()
		if err != nil {
			l, c := dec.InputPos()
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return nil, cfg.malformed(l, c, err, "syntax error")
		}
		switch t := tok.(type) {
		case xml.StartElement:
			if depth == 1 && t.Name.Local == tagItem {
				l, c := dec.InputPos()
				if err := b.addItem(xmlAttrs(t.Attr), l, c); err != nil {
					return nil, err
				}
			}
			depth++
		case xml.EndElement:
			depth--
		}
	}
	return b.build(line, col)
}

func xmlAttrs(in []xml.Attr) []attr {
	out := make([]attr, 0, len(in))
	for _, a := range in {
		if a.Name.Space == "xmlns" || (a.Name.Space == "" && a.Name.Local == "xmlns") {
			continue
		}
		out = append(out, attr{name: a.Name.Local, value: a.Value})
	}
	return out
}
