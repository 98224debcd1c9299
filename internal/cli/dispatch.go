package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/flock/internal/commands"
)

func newDispatchCmd() *cobra.Command {
	var opts commands.DispatchOpts

	cmd := &cobra.Command{
		Use:   "dispatch",
		Short: "Append a command to agent inbox files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workingDir()
			if err != nil {
				return err
			}
			return commands.Dispatch(cmd.Context(), deps, cwd, opts, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&opts.ConfigPath, "config", "", "path to the agent roster file")
	cmd.Flags().StringArrayVar(&opts.Agents, "agent", nil, "target agent by name or slug (repeatable)")
	cmd.Flags().BoolVar(&opts.All, "all", false, "target every agent in the roster")
	cmd.Flags().StringVar(&opts.Message, "message", "", "command text to append")
	cmd.Flags().StringVar(&opts.File, "file", "", "file holding the command text")
	cmd.Flags().StringVar(&opts.ID, "id", "", "command identifier for the block header")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", false, "show the targets without writing")
	_ = cmd.MarkFlagRequired("config")

	return cmd
}
