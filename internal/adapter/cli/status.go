package cli

import (
	"encoding/json"
	"fmt"

	"github.com/kyson/warptui/internal/ui/dashboard"
	"github.com/spf13/cobra"
)

func newStatusCommand(s *session) *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show WARP connection status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info, err := s.client().Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("get status: %w", err)
			}

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintln(out, dashboard.Summary(info))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print status as JSON")
	return cmd
}
