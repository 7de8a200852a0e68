// Command clrs runs the module's algorithms from the command line.
package main

import (
	"os"

	"github.com/katalvlaran/clrs/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
