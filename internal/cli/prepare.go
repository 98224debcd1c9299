package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/flock/internal/commands"
)

func newPrepareCmd() *cobra.Command {
	var opts commands.PrepareOpts

	cmd := &cobra.Command{
		Use:   "prepare",
		Short: "Create an agent roster file, interactively or from an example",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := workingDir()
			if err != nil {
				return err
			}
			return commands.Prepare(deps, cwd, opts, os.Stdin, os.Stdout)
		},
	}

	cmd.Flags().StringVar(&opts.Output, "output", "", "path to write the roster to")
	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "replace an existing file without asking")
	cmd.Flags().BoolVar(&opts.Example, "example", false, "write a generated example roster instead of prompting")
	cmd.Flags().IntVar(&opts.Count, "count", 2, "agent count for --example")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}
