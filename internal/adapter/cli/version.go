package cli

import (
	"fmt"

	"github.com/kyson/warptui/internal/core/version"
	"github.com/spf13/cobra"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), (&version.Info{}).String())
		},
	}
}
