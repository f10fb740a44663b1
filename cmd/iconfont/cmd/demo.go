package cmd

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-drift/iconfont/cmd/iconfont/internal/config"
	"github.com/go-drift/iconfont/pkg/iconfont"
)

func init() {
	RegisterCommand(&Command{
		Name:  "demo",
		Short: "Toggle icon states interactively",
		Long: `Create a view for every icon in iconfont.yaml and toggle their states from
standard input.

Commands read from standard input:
  tap <icon>   Flip the icon's toggle state and print the result
  list         Print every icon
  quit         Exit

With --out, an icon is re-rendered to <DIR>/<icon>.png every time a state
change invalidates it.

Flags:
  --out DIR    Write PNGs on invalidation`,
		Usage: "iconfont demo [dir] [--out DIR]",
		Run:   runDemo,
	})
}

type demoIcon struct {
	config.Icon
	view  *iconfont.View
	dirty bool
}

func runDemo(args []string) error {
	var dir, out string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--out":
			v, err := flagValue(args, i, "--out")
			if err != nil {
				return err
			}
			out = v
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
	if out != "" {
		if err := os.MkdirAll(out, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	defaults := defaultsFor(res)
	icons := make(map[string]*demoIcon, len(res.Icons))
	for _, ic := range res.Icons {
		view, err := iconfont.NewViewFromAttributes(defaults, ic.Attrs)
		if err != nil {
			return fmt.Errorf("icon %s: %w", ic.Name, err)
		}
		d := &demoIcon{Icon: ic, view: view}
		view.OnInvalidate = func() { d.dirty = true }
		icons[ic.Name] = d
	}
	for _, ic := range res.Icons {
		printDemoIcon(icons[ic.Name])
	}

	scanner := bufio.NewScanner(stdin)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		switch fields[0] {
		case "quit", "exit":
			return nil
		case "list":
			for _, ic := range res.Icons {
				printDemoIcon(icons[ic.Name])
			}
		case "tap":
			if len(fields) != 2 {
				fmt.Fprintln(stdout, "usage: tap <icon>")
				continue
			}
			d, ok := icons[fields[1]]
			if !ok {
				fmt.Fprintf(stdout, "unknown icon %q\n", fields[1])
				continue
			}
			d.dirty = false
			d.view.Toggle(d.Toggle)
			printDemoIcon(d)
			if d.dirty && out != "" {
				if err := writeViewPNG(d.view, res.Size, filepath.Join(out, d.Name+".png")); err != nil {
					logger.Errorw("redraw failed", "icon", d.Name, "error", err)
				}
			}
		default:
			fmt.Fprintf(stdout, "unknown command %q (tap, list, quit)\n", fields[0])
		}
	}
	return scanner.Err()
}

func printDemoIcon(d *demoIcon) {
	code, color := d.view.Resolved()
	fmt.Fprintf(stdout, "%s [%s] code=%s color=%s\n", d.Name, d.view.State(), formatValue(code), color)
}
