package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/flock/internal/commands"
	"github.com/NielsdaWheelz/flock/internal/terminal"
)

func newDoctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check git, the current repository, and available terminals",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workingDir()
			if err != nil {
				return err
			}
			return commands.Doctor(cmd.Context(), deps, terminal.Host(), cwd, os.Stdout)
		},
	}
}
