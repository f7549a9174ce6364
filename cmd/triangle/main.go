// Command triangle solves and generates maximum-path triangles.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/jugglefest/internal/cli"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "triangle: %s\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
