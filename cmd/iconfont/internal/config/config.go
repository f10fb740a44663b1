// Package config loads the optional iconfont.yaml project file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/iconfont/pkg/iconfont"
	"github.com/go-drift/iconfont/pkg/statelist"
	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file looked up in a project directory.
const FileName = "iconfont.yaml"

// Config represents iconfont.yaml.
type Config struct {
	Schema   string       `yaml:"schema,omitempty"`
	Typeface string       `yaml:"typeface,omitempty"`
	Assets   string       `yaml:"assets,omitempty"`
	Mode     string       `yaml:"mode,omitempty"`
	Size     int          `yaml:"size,omitempty"`
	Icons    []IconConfig `yaml:"icons"`
}

// IconConfig describes one demo icon.
type IconConfig struct {
	Name          string `yaml:"name"`
	Code          string `yaml:"code,omitempty"`
	CodeSelector  string `yaml:"code_selector,omitempty"`
	Color         string `yaml:"color,omitempty"`
	ColorSelector string `yaml:"color_selector,omitempty"`
	Padding       int    `yaml:"padding,omitempty"`
	Toggle        string `yaml:"toggle,omitempty"`
}

// Resolved contains validated configuration with defaults applied and
// paths made absolute.
type Resolved struct {
	Root     string
	Typeface string
	Assets   string
	Mode     statelist.Mode
	Size     int
	Icons    []Icon
}

// Icon is a resolved icon entry.
type Icon struct {
	Name   string
	Attrs  iconfont.Attributes
	Toggle statelist.ViewState
}

const (
	defaultSchema = "v1.0.0"
	defaultSize   = 48
	defaultAssets = "assets"
)

var toggles = map[string]statelist.ViewState{
	"selected":       statelist.ViewSelected,
	"enabled":        statelist.ViewEnabled,
	"activated":      statelist.ViewActivated,
	"window_focused": statelist.ViewWindowFocused,
	"pressed":        statelist.ViewPressed,
	"focused":        statelist.ViewFocused,
	"hovered":        statelist.ViewHovered,
}

// LoadOptional reads iconfont.yaml if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolve loads iconfont.yaml (if present) and resolves defaults.
func Resolve(dir string) (*Resolved, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	if err := validateSchema(cfg.Schema); err != nil {
		return nil, err
	}

	mode, err := statelist.ParseMode(cfg.Mode)
	if err != nil {
		return nil, err
	}

	size := cfg.Size
	if size == 0 {
		size = defaultSize
	}
	if size < 0 {
		return nil, fmt.Errorf("size must be positive (got %d)", size)
	}

	assets := strings.TrimSpace(cfg.Assets)
	if assets == "" {
		assets = defaultAssets
	}

	res := &Resolved{
		Root:     dir,
		Typeface: abs(dir, strings.TrimSpace(cfg.Typeface)),
		Assets:   abs(dir, assets),
		Mode:     mode,
		Size:     size,
	}

	seen := make(map[string]bool)
	for i, ic := range cfg.Icons {
		icon, err := resolveIcon(dir, ic, mode)
		if err != nil {
			return nil, fmt.Errorf("icons[%d]: %w", i, err)
		}
		if seen[icon.Name] {
			return nil, fmt.Errorf("icons[%d]: duplicate icon name %q", i, icon.Name)
		}
		seen[icon.Name] = true
		res.Icons = append(res.Icons, icon)
	}

	return res, nil
}

// Icon returns the icon with the given name.
func (r *Resolved) Icon(name string) (Icon, bool) {
	for _, ic := range r.Icons {
		if ic.Name == name {
			return ic, true
		}
	}
	return Icon{}, false
}

// Defaults returns the typeface defaults described by the configuration:
// an explicit typeface file, or the default asset in the assets directory.
func (r *Resolved) Defaults() *iconfont.Defaults {
	if r.Typeface != "" {
		return iconfont.NewDefaults(iconfont.FileLoader(r.Typeface))
	}
	return iconfont.NewDefaults(iconfont.AssetLoader(r.Assets))
}

func resolveIcon(dir string, ic IconConfig, mode statelist.Mode) (Icon, error) {
	name := strings.TrimSpace(ic.Name)
	if name == "" {
		return Icon{}, fmt.Errorf("name is required")
	}
	if ic.Code != "" && ic.CodeSelector != "" {
		return Icon{}, fmt.Errorf("icon %q sets both code and code_selector", name)
	}
	if ic.Color != "" && ic.ColorSelector != "" {
		return Icon{}, fmt.Errorf("icon %q sets both color and color_selector", name)
	}
	if ic.Padding < 0 {
		return Icon{}, fmt.Errorf("icon %q has negative padding", name)
	}

	toggle := statelist.ViewSelected
	if t := strings.ToLower(strings.TrimSpace(ic.Toggle)); t != "" {
		v, ok := toggles[t]
		if !ok {
			return Icon{}, fmt.Errorf("icon %q has unknown toggle %q", name, ic.Toggle)
		}
		toggle = v
	}

	p := ic.Padding
	return Icon{
		Name: name,
		Attrs: iconfont.Attributes{
			Code:          ic.Code,
			CodeSelector:  abs(dir, ic.CodeSelector),
			Color:         ic.Color,
			ColorSelector: abs(dir, ic.ColorSelector),
			Padding:       iconfont.Insets{Left: p, Top: p, Right: p, Bottom: p},
			Mode:          mode,
		},
		Toggle: toggle,
	}, nil
}

// validateSchema accepts any v1 semantic version. An empty schema is the
// current one.
func validateSchema(schema string) error {
	schema = strings.TrimSpace(schema)
	if schema == "" {
		schema = defaultSchema
	}
	if !strings.HasPrefix(schema, "v") {
		schema = "v" + schema
	}
	if !semver.IsValid(schema) {
		return fmt.Errorf("schema %q is not a semantic version", schema)
	}
	if semver.Major(schema) != semver.Major(defaultSchema) {
		return fmt.Errorf("unsupported schema %s (this tool reads %s.x)", schema, semver.Major(defaultSchema))
	}
	return nil
}

// FindProjectRoot walks up from the current directory to find iconfont.yaml.
// It returns the current directory when none is found.
func FindProjectRoot() (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := wd
	for {
		if _, err := os.Stat(filepath.Join(dir, FileName)); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return wd, nil
		}
		dir = parent
	}
}

func abs(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
