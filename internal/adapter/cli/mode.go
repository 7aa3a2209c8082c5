package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/kyson/warptui/internal/core/warp"
	"github.com/spf13/cobra"
)

// pickMode 交互式选择模式，测试时可替换
var pickMode = func(current string) (string, error) {
	selected := current
	if selected == "" {
		selected = warp.AvailableModes[0]
	}

	options := make([]huh.Option[string], 0, len(warp.AvailableModes))
	for _, token := range warp.AvailableModes {
		options = append(options, huh.NewOption(warp.ParseDNSMode(token).String(), token))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("DNS mode").
				Options(options...).
				Value(&selected),
		),
	)
	if err := form.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

func newModeCommand(s *session) *cobra.Command {
	var interactive bool
	cmd := &cobra.Command{
		Use:   "mode [" + strings.Join(warp.AvailableModes, "|") + "]",
		Short: "Show or switch the DNS mode",
		Long: `Show or switch the WARP DNS mode:
  doh       - DNS over HTTPS
  dot       - DNS over TLS
  warp+doh  - WARP tunnel with DNS over HTTPS
  warp+dot  - WARP tunnel with DNS over TLS

Without an argument the current mode is printed; -i opens a picker.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client := s.client()
			out := cmd.OutOrStdout()

			var token string
			switch {
			case len(args) == 1:
				token = strings.ToLower(strings.TrimSpace(args[0]))
			case interactive:
				current, err := client.OperationMode(cmd.Context())
				if err != nil {
					return fmt.Errorf("get current mode: %w", err)
				}
				token, err = pickMode(current.Token())
				if err != nil {
					return err
				}
			default:
				current, err := client.OperationMode(cmd.Context())
				if err != nil {
					return fmt.Errorf("get current mode: %w", err)
				}
				fmt.Fprintf(out, "Current DNS mode: %s\n", current)
				return nil
			}

			mode := warp.ParseDNSMode(token)
			if mode == warp.ModeUnknown {
				return fmt.Errorf("invalid mode %q, expected one of: %s", token, strings.Join(warp.AvailableModes, ", "))
			}
			if err := client.SetMode(cmd.Context(), mode.Token()); err != nil {
				return fmt.Errorf("switch mode: %w", err)
			}
			fmt.Fprintf(out, "DNS mode switched to: %s\n", mode)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Choose the mode interactively")
	return cmd
}
