package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/kyson/warptui/internal/adapter/logger"
	"github.com/kyson/warptui/internal/core/manager"
	"github.com/spf13/cobra"
)

func newWatchCommand(s *session) *cobra.Command {
	var (
		interval   time.Duration
		count      int
		connect    bool
		disconnect bool
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Poll WARP status in the background and print every update",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if connect && disconnect {
				return fmt.Errorf("--connect and --disconnect are mutually exclusive")
			}
			if !cmd.Flags().Changed("interval") {
				interval = s.opts.PollInterval
			}
			if interval <= 0 {
				return fmt.Errorf("interval must be positive, got %s", interval)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			m := manager.New(s.client(), interval)
			sender := m.Sender()
			switch {
			case connect:
				sender.Send(manager.Connect())
			case disconnect:
				sender.Send(manager.Disconnect())
			}

			logger.Info("watch started", "interval", interval, "count", count)
			m.Start(ctx)

			out := cmd.OutOrStdout()
			seen := 0
			m.Process(ctx, func(msg manager.Message) {
				printMessage(out, msg)
				seen++
				if count > 0 && seen >= count {
					cancel()
				}
			})
			logger.Info("watch stopped", "messages", seen)
			return nil
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", manager.DefaultInterval, "Polling interval (default from config poll_interval)")
	cmd.Flags().IntVarP(&count, "count", "n", 0, "Stop after this many messages (0 = until interrupted)")
	cmd.Flags().BoolVar(&connect, "connect", false, "Connect before watching")
	cmd.Flags().BoolVar(&disconnect, "disconnect", false, "Disconnect before watching")
	return cmd
}

// printMessage 一条消息一行
func printMessage(out io.Writer, msg manager.Message) {
	ts := time.Now().Format("15:04:05")
	switch msg.Kind {
	case manager.KindStatusUpdate:
		info := msg.Status
		mode := "N/A"
		if info.Mode != nil {
			mode = info.Mode.String()
		}
		parts := []string{
			info.State.String(),
			"mode=" + mode,
		}
		if info.AccountType != "" {
			parts = append(parts, "account="+info.AccountType)
		}
		fmt.Fprintf(out, "[%s] %s\n", ts, strings.Join(parts, " "))
	case manager.KindError:
		fmt.Fprintf(out, "[%s] error: %s\n", ts, msg.Err)
	}
}
