package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSettingsCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "settings",
		Short: "Print warp-cli settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := s.client().Settings(cmd.Context())
			if err != nil {
				return fmt.Errorf("get settings: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), settings)
			return nil
		},
	}
}
