package cmd

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-drift/iconfont/cmd/iconfont/internal/config"
	"github.com/go-drift/iconfont/pkg/errors"
	"github.com/go-drift/iconfont/pkg/iconfont"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render configured icons to PNG",
		Long: `Render every icon in iconfont.yaml to PNG files.

Each icon is drawn twice: once in the initial view state (enabled, window
focused) as <name>.png and once with its toggle state flipped as
<name>_<toggle>.png.

If no directory is given, the nearest directory containing iconfont.yaml is
used.

Flags:
  --out DIR    Output directory (default: build/icons under the project)
  --size N     Override the configured icon size in pixels`,
		Usage: "iconfont render [dir] [--out DIR] [--size N]",
		Run:   runRender,
	})
}

// defaultsFor builds the typeface defaults of a project. Replaced in tests.
var defaultsFor = (*config.Resolved).Defaults

func runRender(args []string) error {
	var dir, out string
	size := 0
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out":
			v, err := flagValue(args, i, "--out")
			if err != nil {
				return err
			}
			out = v
			i++
		case "--size":
			v, err := flagValue(args, i, "--size")
			if err != nil {
				return err
			}
			n, err := strconv.Atoi(v)
			if err != nil || n <= 0 {
				return fmt.Errorf("--size must be a positive integer, got %q", v)
			}
			size = n
			i++
		default:
			if isFlag(args[i]) {
				return fmt.Errorf("unknown flag %s", args[i])
			}
			if dir != "" {
				return fmt.Errorf("unexpected argument %q", args[i])
			}
			dir = args[i]
		}
	}

	res, err := loadProject(dir)
	if err != nil {
		return err
	}
	if len(res.Icons) == 0 {
		return fmt.Errorf("no icons configured in %s", filepath.Join(res.Root, config.FileName))
	}
	if size == 0 {
		size = res.Size
	}
	if out == "" {
		out = filepath.Join(res.Root, "build", "icons")
	}
	if err := os.MkdirAll(out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	defaults := defaultsFor(res)
	failed := 0
	for _, icon := range res.Icons {
		if err := renderIcon(defaults, icon, size, out); err != nil {
			logger.Errorw("render failed", "icon", icon.Name, "error", err)
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d icons failed to render", failed, len(res.Icons))
	}
	fmt.Fprintf(stdout, "Rendered %d icons to %s\n", len(res.Icons), out)
	return nil
}

// loadProject resolves the configuration in dir, or in the nearest project
// root when dir is empty.
func loadProject(dir string) (*config.Resolved, error) {
	if dir == "" {
		root, err := config.FindProjectRoot()
		if err != nil {
			return nil, err
		}
		dir = root
	}
	res, err := config.Resolve(dir)
	if err != nil {
		return nil, &errors.Error{Op: "config.Resolve", Kind: errors.KindConfig, Err: err}
	}
	return res, nil
}

func renderIcon(defaults *iconfont.Defaults, icon config.Icon, size int, out string) (err error) {
	defer errors.RecoverInto("render."+icon.Name, &err)

	view, err := iconfont.NewViewFromAttributes(defaults, icon.Attrs)
	if err != nil {
		return err
	}
	if err := writeViewPNG(view, size, filepath.Join(out, icon.Name+".png")); err != nil {
		return err
	}
	view.Toggle(icon.Toggle)
	name := fmt.Sprintf("%s_%s.png", icon.Name, icon.Toggle)
	return writeViewPNG(view, size, filepath.Join(out, name))
}

func writeViewPNG(view *iconfont.View, size int, path string) error {
	img, err := view.Render(size, size)
	if err != nil {
		return err
	}
	if err := writePNG(path, img); err != nil {
		return err
	}
	logger.Debugw("wrote icon", "path", path, "state", view.State().String())
	return nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode %s: %w", path, err)
	}
	return f.Close()
}
