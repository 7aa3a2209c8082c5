package cli

import (
	"fmt"

	"github.com/kyson/warptui/internal/adapter/logger"
	"github.com/spf13/cobra"
)

func newCheckCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check configuration and warp-cli availability",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client := s.client()
			logger.Info("Checking warp-cli.....", "binary", client.Binary())

			// 配置在 PersistentPreRunE 里已经加载并校验过
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Binary: %s\n", client.Binary())
			fmt.Fprintf(out, "Command timeout: %s\n", client.Timeout())
			fmt.Fprintf(out, "Refresh interval: %s\n", s.opts.RefreshInterval)

			if !client.IsAvailable(cmd.Context()) {
				return fmt.Errorf("warp-cli is not installed or not runnable (binary %q)", client.Binary())
			}

			v, err := client.Version(cmd.Context())
			if err != nil {
				return fmt.Errorf("get warp-cli version: %w", err)
			}
			logger.Info("warp-cli is available", "version", v)
			fmt.Fprintf(out, "warp-cli: %s\n", v)
			return nil
		},
	}
}
