package statelist

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-drift/iconfont/pkg/errors"
)

// Mode controls how tolerant selector parsing is.
type Mode int

const (
	// Permissive treats a missing value as "", skips unknown attributes and
	// reads any non-boolean attribute value as false.
	Permissive Mode = iota
	// Strict rejects each of those cases with a MalformedTableError.
	Strict
)

// String returns the mode name as used in configuration files.
func (m Mode) String() string {
	switch m {
	case Permissive:
		return "permissive"
	case Strict:
		return "strict"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode parses "permissive" or "strict". An empty string is Permissive.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "permissive":
		return Permissive, nil
	case "strict":
		return Strict, nil
	default:
		return 0, fmt.Errorf("unknown parse mode %q (use permissive or strict)", s)
	}
}

const (
	// DefaultValueAttr is the reserved attribute that carries an item's value.
	DefaultValueAttr = "value"

	tagSelector = "selector"
	tagItem     = "item"
)

// ParseOption configures selector parsing.
type ParseOption func(*parseConfig)

type parseConfig struct {
	registry  *Registry
	mode      Mode
	valueAttr string
	source    string
}

// WithRegistry resolves attribute names through r instead of the default
// view-state registry.
func WithRegistry(r *Registry) ParseOption {
	return func(c *parseConfig) {
		if r != nil {
			c.registry = r
		}
	}
}

// WithMode selects permissive or strict parsing.
func WithMode(m Mode) ParseOption {
	return func(c *parseConfig) {
		c.mode = m
	}
}

// WithValueAttr changes the reserved value attribute name, e.g. "code" for
// glyph tables or "color" for color tables.
func WithValueAttr(name string) ParseOption {
	return func(c *parseConfig) {
		if name != "" {
			c.valueAttr = name
		}
	}
}

// WithSource names the document in error messages.
func WithSource(name string) ParseOption {
	return func(c *parseConfig) {
		c.source = name
	}
}

func newParseConfig(opts []ParseOption) *parseConfig {
	c := &parseConfig{
		registry:  defaultRegistry,
		mode:      Permissive,
		valueAttr: DefaultValueAttr,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *parseConfig) malformed(line, col int, err error, format string, args ...any) *errors.MalformedTableError {
	return &errors.MalformedTableError{
		Source: c.source,
		Line:   line,
		Column: col,
		Reason: fmt.Sprintf(format, args...),
		Err:    err,
	}
}

// attr is one item attribute.
type attr struct {
	name  string
	value string
}

// tableBuilder accumulates selector items in document order.
type tableBuilder struct {
	cfg    *parseConfig
	specs  []Spec
	values []string
	// yesNo also accepts the YAML 1.1 words yes/no/on/off as booleans.
	yesNo bool
}

func (b *tableBuilder) parseBool(s string) (bool, error) {
	s = strings.TrimSpace(s)
	if b.yesNo {
		switch strings.ToLower(s) {
		case "yes", "y", "on":
			return true, nil
		case "no", "n", "off":
			return false, nil
		}
	}
	return strconv.ParseBool(s)
}

func (b *tableBuilder) addItem(attrs []attr, line, col int) error {
	var (
		value    string
		hasValue bool
		spec     = make(Spec, 0, len(attrs))
	)
	for _, a := range attrs {
		if localName(a.name) == b.cfg.valueAttr {
			value, hasValue = a.value, true
			continue
		}
		id, ok := b.cfg.registry.Lookup(a.name)
		if !ok {
			if b.cfg.mode == Strict {
				return b.cfg.malformed(line, col, nil, "unknown state attribute %q", a.name)
			}
			continue
		}
		on, err := b.parseBool(a.value)
		if err != nil && b.cfg.mode == Strict {
			return b.cfg.malformed(line, col, nil, "state attribute %q has non-boolean value %q", a.name, a.value)
		}
		if on {
			spec = append(spec, id)
		} else {
			spec = append(spec, id.Not())
		}
	}
	if !hasValue && b.cfg.mode == Strict {
		return b.cfg.malformed(line, col, nil, "item is missing required %q attribute", b.cfg.valueAttr)
	}
	b.specs = append(b.specs, trim(spec))
	b.values = append(b.values, value)
	return nil
}

func (b *tableBuilder) build(line, col int) (*Table[string], error) {
	if len(b.specs) == 0 {
		return nil, b.cfg.malformed(line, col, nil, "<%s> has no <%s> children", tagSelector, tagItem)
	}
	return newTable(b.specs, b.values), nil
}

// ParseFile parses a selector document, choosing XML or YAML by extension.
func ParseFile(path string, opts ...ParseOption) (*Table[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open selector: %w", err)
	}
	defer f.Close()

	opts = append([]ParseOption{WithSource(path)}, opts...)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xml":
		return ParseXML(f, opts...)
	case ".yaml", ".yml":
		return ParseYAML(f, opts...)
	default:
		return nil, fmt.Errorf("unsupported selector file %q (want .xml, .yaml or .yml)", path)
	}
}
