package cmd

import (
	"fmt"

	"github.com/go-drift/iconfont/pkg/statelist"
	"github.com/goccy/go-json"
)

func init() {
	RegisterCommand(&Command{
		Name:  "states",
		Short: "List known state names",
		Long: `List the state names accepted in selector documents and their ids.

Flags:
  --json   Print the registry as JSON`,
		Usage: "iconfont states [--json]",
		Run:   runStates,
	})
}

type stateInfo struct {
	Name string `json:"name"`
	ID   int32  `json:"id"`
}

func runStates(args []string) error {
	asJSON := false
	for _, arg := range args {
		switch arg {
		case "--json":
			asJSON = true
		default:
			return fmt.Errorf("unexpected argument %q", arg)
		}
	}

	reg := statelist.DefaultRegistry()
	var infos []stateInfo
	for _, name := range reg.Names() {
		id, _ := reg.Lookup(name)
		infos = append(infos, stateInfo{Name: name, ID: int32(id)})
	}

	if asJSON {
		data, err := json.MarshalIndent(infos, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode states: %w", err)
		}
		fmt.Fprintln(stdout, string(data))
		return nil
	}
	for _, info := range infos {
		fmt.Fprintf(stdout, "%-24s 0x%08x\n", info.Name, info.ID)
	}
	return nil
}
