// Command jugglefest assigns jugglers to circuits and prints the result.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/jugglefest/internal/cli"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jugglefest: %s\n", err)
		os.Exit(cli.ExitCode(err))
	}
}
