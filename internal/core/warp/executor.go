package warp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/kyson/warptui/internal/adapter/logger"
)

// Result 一次子进程调用的原始输出
type Result struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// Runner runs an external program. A non-zero exit is reported through
// Result.ExitCode; the error is reserved for processes that never ran.
type Runner interface {
	Run(ctx context.Context, name string, args []string) (Result, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, name string, args []string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, err
	}
	return res, nil
}

// execute 调用 warp-cli 并返回去掉首尾空白的 stdout
// bounded 为 true 时套上 c.timeout
func (c *Client) execute(ctx context.Context, bounded bool, args ...string) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if bounded {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	start := time.Now()
	res, err := c.runner.Run(ctx, c.binary, args)
	logger.Debug("warp-cli executed",
		"args", strings.Join(args, " "),
		"exit", res.ExitCode,
		"elapsed", time.Since(start),
		"error", err)

	// 超时优先判断：CommandContext 杀掉进程后 Run 可能只报告 signal: killed
	if bounded && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return "", fmt.Errorf("%w after %s: %s %s", ErrTimeout, c.timeout, c.binary, strings.Join(args, " "))
	}
	if err != nil {
		// PATH 里找不到，或者显式给出的路径不存在
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return "", ErrCommandNotFound
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return "", fmt.Errorf("%w: %s %s", ErrTimeout, c.binary, strings.Join(args, " "))
		}
		return "", &SpawnError{Err: err}
	}
	if res.ExitCode != 0 {
		return "", &CommandError{
			Args:     append([]string(nil), args...),
			ExitCode: res.ExitCode,
			Stderr:   string(res.Stderr),
		}
	}
	return strings.TrimSpace(string(res.Stdout)), nil
}
