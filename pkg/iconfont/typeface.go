package iconfont

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-drift/iconfont/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// DefaultTypefaceFile is the asset name probed by AssetLoader.
const DefaultTypefaceFile = "4B9C87F8981C89E7134F151D95C.ttf"

// Typeface is a parsed TrueType or OpenType icon font.
type Typeface struct {
	name string
	font *opentype.Font
}

// ParseTypeface parses font data. name is used in diagnostics only.
func ParseTypeface(name string, data []byte) (*Typeface, error) {
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse typeface %s: %w", name, err)
	}
	return &Typeface{name: name, font: f}, nil
}

// LoadTypeface reads and parses a font file.
func LoadTypeface(path string) (*Typeface, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read typeface: %w", err)
	}
	return ParseTypeface(filepath.Base(path), data)
}

// Name returns the name the typeface was loaded under.
func (t *Typeface) Name() string {
	return t.name
}

// Face returns a face at the given pixel size. Callers must Close it.
func (t *Typeface) Face(size float64) (font.Face, error) {
	return opentype.NewFace(t.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// HasGlyph reports whether the font maps r to a glyph.
func (t *Typeface) HasGlyph(r rune) bool {
	var buf sfnt.Buffer
	idx, err := t.font.GlyphIndex(&buf, r)
	return err == nil && idx != 0
}

// TypefaceLoader produces the default typeface on first use.
type TypefaceLoader func() (*Typeface, error)

// AssetLoader loads DefaultTypefaceFile from an asset directory.
func AssetLoader(dir string) TypefaceLoader {
	return func() (*Typeface, error) {
		path := filepath.Join(dir, DefaultTypefaceFile)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("can not find typeface file named %s in %s, and typeface has not been assigned manually", DefaultTypefaceFile, dir)
		}
		return LoadTypeface(path)
	}
}

// FileLoader loads the typeface at path.
func FileLoader(path string) TypefaceLoader {
	return func() (*Typeface, error) {
		return LoadTypeface(path)
	}
}

// ErrDefaultsInUse is returned by Defaults.Set after the default typeface
// has been handed out.
var ErrDefaultsInUse = stderrors.New("default typeface already initialized")

// Defaults is the process-wide typeface configuration shared by views.
// The typeface can be assigned with Set until the first call to Typeface;
// after that it is fixed, and so is a load failure.
type Defaults struct {
	mu       sync.Mutex
	loader   TypefaceLoader
	typeface *Typeface
	err      error
	done     bool
}

// NewDefaults creates defaults that run loader on first use. loader may be
// nil when the typeface is always assigned with Set.
func NewDefaults(loader TypefaceLoader) *Defaults {
	return &Defaults{loader: loader}
}

// Set assigns the default typeface. It fails once Typeface has been called.
func (d *Defaults) Set(tf *Typeface) error {
	if tf == nil {
		return fmt.Errorf("nil typeface")
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done {
		return ErrDefaultsInUse
	}
	d.typeface = tf
	return nil
}

// Typeface returns the default typeface, loading it on the first call.
// The result, including an error, is cached.
func (d *Defaults) Typeface() (*Typeface, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.done {
		return d.typeface, d.err
	}
	d.done = true
	if d.typeface != nil {
		return d.typeface, nil
	}
	if d.loader == nil {
		d.err = fmt.Errorf("no default typeface assigned and no loader configured")
	} else {
		d.typeface, d.err = d.loader()
	}
	if d.err != nil {
		initErr := &errors.Error{
			Op:   "iconfont.Defaults.Typeface",
			Kind: errors.KindInit,
			Err:  d.err,
		}
		errors.Report(initErr)
		d.err = initErr
	}
	return d.typeface, d.err
}
