package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/NielsdaWheelz/flock/internal/version"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of flock",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("flock " + version.Version)
		},
	}
}
