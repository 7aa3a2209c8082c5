package cli

import (
	"io"

	"github.com/kyson/warptui/internal/adapter/logger"
	"github.com/kyson/warptui/internal/core/config"
	"github.com/kyson/warptui/internal/core/warp"
	"github.com/spf13/cobra"
)

// tuiAnnotation 标记占用整个终端的命令，这类命令不往 stderr 打日志
const tuiAnnotation = "tui"

// session 一次命令执行共享的参数
// 全局 flag 先写进这里，PersistentPreRunE 再合并成最终的 Options
type session struct {
	debug      bool
	configPath string
	logPath    string
	binary     string

	opts config.Options
}

func (s *session) client() *warp.Client {
	return clientFactory(s.opts)
}

// prepare 读取配置文件，再用显式传入的 flag 覆盖
func (s *session) prepare(cmd *cobra.Command) error {
	opts, err := config.Load(s.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("binary") {
		opts.Binary = s.binary
	}
	if flags.Changed("log") {
		opts.LogFile = s.logPath
	}
	if err := opts.Validate(); err != nil {
		return err
	}
	s.opts = opts

	out := cmd.ErrOrStderr()
	if cmd.Annotations[tuiAnnotation] != "" {
		out = io.Discard
	}
	if err := logger.Setup(logger.Config{Debug: s.debug, FilePath: opts.LogFile, Output: out}); err != nil {
		return err
	}
	logger.Debug("Logger initialized", "command", cmd.Name(), "binary", opts.Binary)
	return nil
}

// NewRootCommand 构建完整的命令树
// 不带子命令时直接进入 dashboard
func NewRootCommand() *cobra.Command {
	s := &session{}
	cmd := &cobra.Command{
		Use:          "warptui",
		Short:        "Terminal dashboard for Cloudflare WARP",
		Long:         "warptui wraps warp-cli: a live dashboard plus one-shot commands for status, connect, mode and registration.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		Annotations:  map[string]string{tuiAnnotation: "true"},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return s.prepare(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, s)
		},
	}

	// bind global flags
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&s.debug, "debug", "d", false, "Enable debug logging")
	pf.StringVarP(&s.configPath, "config", "c", "", "Path to YAML config file")
	pf.StringVar(&s.logPath, "log", "", "Write logs to this file")
	pf.StringVar(&s.binary, "binary", "", "Path to warp-cli (default \"warp-cli\")")

	// register sub commands
	cmd.AddCommand(
		newDashboardCommand(s),
		newStatusCommand(s),
		newConnectCommand(s),
		newDisconnectCommand(s),
		newModeCommand(s),
		newRegistrationCommand(s),
		newSettingsCommand(s),
		newCheckCommand(s),
		newWatchCommand(s),
		newLogCommand(s),
		newVersionCommand(),
	)

	return cmd
}

// Execute 执行命令
func Execute() error {
	defer logger.Close()
	return NewRootCommand().Execute()
}
