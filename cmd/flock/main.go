// Command flock launches a fleet of coding agents in parallel git worktrees.
package main

import (
	"os"

	"github.com/NielsdaWheelz/flock/internal/cli"
	"github.com/NielsdaWheelz/flock/internal/errors"
)

func main() {
	if err := cli.Execute(); err != nil {
		errors.Print(os.Stderr, err)
		os.Exit(errors.ExitCode(err))
	}
}
