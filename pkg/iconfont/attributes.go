package iconfont

import (
	"fmt"

	"github.com/go-drift/iconfont/pkg/errors"
	"github.com/go-drift/iconfont/pkg/graphics"
	"github.com/go-drift/iconfont/pkg/statelist"
)

// Reserved value attributes of code and color selector documents.
const (
	CodeAttr  = "code"
	ColorAttr = "color"
)

// Attributes describe a view declaratively. A selector path takes precedence
// over the matching literal; with neither set the view uses DefaultCode and
// DefaultColor.
type Attributes struct {
	Code          string
	CodeSelector  string
	Color         string
	ColorSelector string
	Padding       Insets
	// Mode applies to both selector documents.
	Mode     statelist.Mode
	Registry *statelist.Registry
}

// Options turns the attributes into view options, parsing selector documents
// as needed. Parse failures are reported and returned as *errors.Error.
func (a Attributes) Options() ([]Option, error) {
	opts := []Option{WithPadding(a.Padding)}

	codes, err := a.codes()
	if err != nil {
		return nil, parseError(err)
	}
	opts = append(opts, WithCodes(codes))

	colors, err := a.colors()
	if err != nil {
		return nil, parseError(err)
	}
	return append(opts, WithColors(colors)), nil
}

func parseError(err error) error {
	e := &errors.Error{Op: "iconfont.Attributes.Options", Kind: errors.KindParsing, Err: err}
	errors.Report(e)
	return e
}

func (a Attributes) parseOptions(valueAttr string) []statelist.ParseOption {
	return []statelist.ParseOption{
		statelist.WithMode(a.Mode),
		statelist.WithRegistry(a.Registry),
		statelist.WithValueAttr(valueAttr),
	}
}

func (a Attributes) codes() (*statelist.Table[string], error) {
	if a.CodeSelector != "" {
		return statelist.ParseFile(a.CodeSelector, a.parseOptions(CodeAttr)...)
	}
	return statelist.ValueOf(a.Code), nil
}

func (a Attributes) colors() (*statelist.Table[graphics.Color], error) {
	if a.ColorSelector != "" {
		raw, err := statelist.ParseFile(a.ColorSelector, a.parseOptions(ColorAttr)...)
		if err != nil {
			return nil, err
		}
		colors, err := statelist.Map(raw, graphics.ParseColor)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.ColorSelector, err)
		}
		return colors, nil
	}
	if a.Color == "" {
		return statelist.ValueOf(DefaultColor), nil
	}
	c, err := graphics.ParseColor(a.Color)
	if err != nil {
		return nil, err
	}
	return statelist.ValueOf(c), nil
}

// NewViewFromAttributes creates a view configured by attrs.
func NewViewFromAttributes(defaults *Defaults, attrs Attributes, opts ...Option) (*View, error) {
	base, err := attrs.Options()
	if err != nil {
		return nil, err
	}
	return NewView(defaults, append(base, opts...)...), nil
}
