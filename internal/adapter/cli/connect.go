package cli

import (
	"fmt"

	"github.com/kyson/warptui/internal/adapter/logger"
	"github.com/spf13/cobra"
)

func newConnectCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "connect",
		Short: "Connect to WARP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.client().Connect(cmd.Context()); err != nil {
				return err
			}
			logger.Debug("connect succeeded")
			fmt.Fprintln(cmd.OutOrStdout(), "Connected.")
			return nil
		},
	}
}

func newDisconnectCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect",
		Short: "Disconnect from WARP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.client().Disconnect(cmd.Context()); err != nil {
				return err
			}
			logger.Debug("disconnect succeeded")
			fmt.Fprintln(cmd.OutOrStdout(), "Disconnected.")
			return nil
		},
	}
}
