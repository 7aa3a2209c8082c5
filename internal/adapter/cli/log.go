package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/nxadm/tail"
	"github.com/spf13/cobra"
)

func newLogCommand(s *session) *cobra.Command {
	var (
		follow    bool
		fromStart bool
	)

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Stream application logs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logPath := s.opts.LogFile
			if logPath == "" {
				return errors.New("no log file configured, set --log or log_file")
			}

			whence := io.SeekEnd
			if fromStart {
				whence = io.SeekStart
			}
			t, err := tail.TailFile(logPath, tail.Config{
				Follow:   follow,
				ReOpen:   follow, // 支持日志轮转后继续读
				Location: &tail.SeekInfo{Offset: 0, Whence: whence},
				Logger:   tail.DiscardingLogger,
			})
			if err != nil {
				return fmt.Errorf("open log file: %w", err)
			}
			defer t.Cleanup()

			out := cmd.OutOrStdout()
			done := cmd.Context().Done()
			for {
				select {
				case <-done:
					return t.Stop()
				case line, ok := <-t.Lines:
					if !ok {
						return nil
					}
					if line.Err != nil {
						return line.Err
					}
					fmt.Fprintln(out, line.Text)
				}
			}
		},
	}

	cmd.Flags().BoolVarP(&follow, "follow", "f", true, "Keep waiting for new lines")
	cmd.Flags().BoolVar(&fromStart, "all", false, "Print the whole file instead of starting at the end")
	return cmd
}
