// Command iconfont resolves state-list selectors and renders icon font glyphs.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/iconfont/cmd/iconfont/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
