// Package cli wires the cobra command tree around the flock commands.
package cli

import (
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/flock/internal/commands"
	"github.com/NielsdaWheelz/flock/internal/confirm"
	"github.com/NielsdaWheelz/flock/internal/errors"
	"github.com/NielsdaWheelz/flock/internal/exec"
	"github.com/NielsdaWheelz/flock/internal/fs"
	"github.com/NielsdaWheelz/flock/internal/logging"
	"github.com/NielsdaWheelz/flock/internal/terminal"
)

var (
	logLevel string

	// built by PersistentPreRunE
	deps commands.Deps
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flock",
		Short: "flock — parallel agent orchestration over git worktrees",
		Long: "Flock provisions an isolated git worktree per agent, seeds report and\n" +
			"inbox files, and opens each agent in its own terminal window.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := logLevel
			if level == "" {
				level = "info"
			}
			log := logging.New(nil, level)

			runner := exec.NewRealRunner()
			deps = commands.Deps{
				Runner:     runner,
				FS:         fs.NewRealFS(),
				Dispatcher: terminal.New(terminal.Host(), runner, log),
				Gate:       confirm.Gate{In: os.Stdin, Out: os.Stdout},
				Log:        log,
				Now:        time.Now,
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (trace, debug, info, warn, error, silent)")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newLaunchCmd())
	cmd.AddCommand(newPrepareCmd())
	cmd.AddCommand(newDispatchCmd())
	cmd.AddCommand(newDoctorCmd())

	return cmd
}

// Execute runs the root command.
func Execute() error {
	return newRootCmd().Execute()
}

func workingDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrap(errors.EInternal, "failed to get working directory", err)
	}
	return cwd, nil
}
