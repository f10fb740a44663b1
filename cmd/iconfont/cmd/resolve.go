package cmd

import (
	"fmt"
	"strings"

	"github.com/go-drift/iconfont/pkg/statelist"
	"github.com/goccy/go-json"
)

func init() {
	RegisterCommand(&Command{
		Name:  "resolve",
		Short: "Resolve a selector for a set of states",
		Long: `Parse a selector document and resolve it against the given active states.

States are registry names with or without the "state_" prefix. States that
are not listed are inactive.

Flags:
  --attr NAME        Reserved value attribute (default: value)
  --strict           Reject items without a value, unknown attributes and
                     non-boolean state values
  --fallback VALUE   Value printed when no entry matches (default: empty)
  --json             Print the table and the result as JSON

Examples:
  iconfont resolve star.xml selected enabled
  iconfont resolve tint.yaml --attr color --json`,
		Usage: "iconfont resolve <selector> [state...] [--attr NAME] [--strict] [--fallback VALUE] [--json]",
		Run:   runResolve,
	})
}

type resolveOptions struct {
	path      string
	states    []string
	valueAttr string
	strict    bool
	fallback  string
	json      bool
}

type resolveEntry struct {
	Spec  []string `json:"spec"`
	Value string   `json:"value"`
}

type resolveResult struct {
	Source   string         `json:"source"`
	Active   []string       `json:"active"`
	Value    string         `json:"value"`
	Default  *string        `json:"default"`
	Stateful bool           `json:"stateful"`
	Entries  []resolveEntry `json:"entries"`
}

func runResolve(args []string) error {
	opts := resolveOptions{valueAttr: statelist.DefaultValueAttr}
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--attr":
			v, err := flagValue(args, i, "--attr")
			if err != nil {
				return err
			}
			opts.valueAttr = v
			i++
		case "--fallback":
			v, err := flagValue(args, i, "--fallback")
			if err != nil {
				return err
			}
			opts.fallback = v
			i++
		case "--strict":
			opts.strict = true
		case "--json":
			opts.json = true
		default:
			if isFlag(args[i]) {
				return fmt.Errorf("unknown flag %s", args[i])
			}
			if opts.path == "" {
				opts.path = args[i]
			} else {
				opts.states = append(opts.states, args[i])
			}
		}
	}
	if opts.path == "" {
		return fmt.Errorf("selector path is required\n\nUsage: iconfont resolve <selector> [state...]")
	}

	reg := statelist.DefaultRegistry()
	active := make([]statelist.State, 0, len(opts.states))
	for _, name := range opts.states {
		id, err := lookupState(reg, name)
		if err != nil {
			return err
		}
		active = append(active, id)
	}

	mode := statelist.Permissive
	if opts.strict {
		mode = statelist.Strict
	}
	table, err := statelist.ParseFile(opts.path,
		statelist.WithRegistry(reg),
		statelist.WithMode(mode),
		statelist.WithValueAttr(opts.valueAttr),
	)
	if err != nil {
		return err
	}

	value := table.Resolve(active, opts.fallback)
	logger.Debugw("resolved selector", "source", opts.path, "active", active, "entries", table.Len())

	if !opts.json {
		fmt.Fprintln(stdout, formatValue(value))
		return nil
	}

	result := resolveResult{
		Source:   opts.path,
		Active:   make([]string, len(active)),
		Value:    value,
		Stateful: table.IsStateful(),
	}
	for i, s := range active {
		result.Active[i] = s.String()
	}
	if def, ok := table.Default(); ok {
		result.Default = &def
	}
	for _, e := range table.Entries() {
		spec := make([]string, len(e.Spec))
		for i, s := range e.Spec {
			spec[i] = s.String()
		}
		result.Entries = append(result.Entries, resolveEntry{Spec: spec, Value: e.Value})
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Fprintln(stdout, string(data))
	return nil
}

// lookupState accepts "selected", "state_selected" or "android:state_selected".
func lookupState(reg *statelist.Registry, name string) (statelist.State, error) {
	if id, ok := reg.Lookup(name); ok {
		return id, nil
	}
	if id, ok := reg.Lookup("state_" + strings.TrimPrefix(name, "state_")); ok {
		return id, nil
	}
	return 0, fmt.Errorf("unknown state %q (see \"iconfont states\")", name)
}

// formatValue prints a value with its code points, since icon glyphs are
// usually private use characters that terminals cannot show.
func formatValue(v string) string {
	if v == "" {
		return `""`
	}
	points := make([]string, 0, len(v))
	for _, r := range v {
		points = append(points, fmt.Sprintf("U+%04X", r))
	}
	return fmt.Sprintf("%q (%s)", v, strings.Join(points, " "))
}
