package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRegistrationCommand(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "registration",
		Short: "Manage the WARP device registration",
	}
	cmd.AddCommand(newRegistrationNewCommand(s), newRegistrationDeleteCommand(s))
	return cmd
}

func newRegistrationNewCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "new",
		Short: "Register this device",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := s.client().CreateRegistration(cmd.Context())
			if err != nil {
				return fmt.Errorf("create registration: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Registration created.")
			for _, field := range []struct{ label, value string }{
				{"Device ID", reg.DeviceID},
				{"Organization", reg.Organization},
				{"Account type", reg.AccountType},
				{"License key", reg.LicenseKey},
			} {
				if field.value != "" {
					fmt.Fprintf(out, "%s: %s\n", field.label, field.value)
				}
			}
			return nil
		},
	}
}

func newRegistrationDeleteCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "delete",
		Short: "Delete the current registration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := s.client().DeleteRegistration(cmd.Context()); err != nil {
				return fmt.Errorf("delete registration: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Registration deleted.")
			return nil
		},
	}
}
