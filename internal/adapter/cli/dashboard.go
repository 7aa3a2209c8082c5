package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyson/warptui/internal/adapter/logger"
	"github.com/kyson/warptui/internal/ui/dashboard"
	"github.com/spf13/cobra"
)

func newDashboardCommand(s *session) *cobra.Command {
	return &cobra.Command{
		Use:         "dashboard",
		Short:       "Open the interactive WARP dashboard",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{tuiAnnotation: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, s)
		},
	}
}

// runProgram 运行全屏界面，测试中替换
var runProgram = func(model tea.Model) error {
	_, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	return err
}

// runDashboard 进入全屏界面；warp-cli 不可用时照常打开，状态显示为 Unknown
func runDashboard(cmd *cobra.Command, s *session) error {
	client := s.client()
	if !client.IsAvailable(cmd.Context()) {
		logger.Warn("warp-cli not available, dashboard will show Unknown", "binary", client.Binary())
	}

	logger.Info("run dashboard", "binary", client.Binary(), "refresh", s.opts.RefreshInterval)
	model := dashboard.NewModel(client, s.opts.RefreshInterval)
	if err := runProgram(model); err != nil {
		return fmt.Errorf("run dashboard failed: %w", err)
	}
	logger.Info("dashboard closed")
	return nil
}
