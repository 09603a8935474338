// Command wastecalc prices sorted household waste at a flat rate per
// kilogram, interactively or from scripts.
package main

import (
	"os"

	"github.com/rshade/wastecalc/internal/cli"
	"github.com/rshade/wastecalc/pkg/version"
)

func run() error {
	root := cli.NewRootCmd(version.GetVersion())
	return root.Execute()
}

func main() {
	if err := run(); err != nil {
		os.Exit(cli.ExitCode(err))
	}
}
