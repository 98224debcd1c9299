package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/flock/internal/commands"
)

func newLaunchCmd() *cobra.Command {
	var opts commands.LaunchOpts

	cmd := &cobra.Command{
		Use:   "launch",
		Short: "Provision worktrees and launch every agent in the roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workingDir()
			if err != nil {
				return err
			}
			return commands.Launch(cmd.Context(), deps, cwd, opts, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to the agent roster file")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "print the plan without creating anything")
	cmd.Flags().BoolVar(&opts.NoWindow, "no-window", false, "provision worktrees and stubs but skip terminal windows")
	cmd.Flags().BoolVar(&opts.Confirm, "confirm", false, "require confirmation even for a single agent")
	cmd.Flags().BoolVar(&opts.Yes, "yes", false, "skip the confirmation gate")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
