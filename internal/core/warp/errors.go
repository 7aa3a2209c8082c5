package warp

import (
	"errors"
	"strconv"
	"strings"
)

var (
	ErrCommandNotFound     = errors.New("warp-cli is not installed or not in PATH")
	ErrTimeout             = errors.New("command timed out")
	ErrConnectionFailed    = errors.New("connection failed")
	ErrDisconnectionFailed = errors.New("disconnection failed")

	// 目前没有调用路径返回这两个错误，保留给 registration 相关的判断
	ErrRegistrationExists = errors.New("registration already exists")
	ErrNoRegistration     = errors.New("no registration found")
)

// CommandError warp-cli 以非零退出码结束
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := strings.TrimSpace(e.Stderr)
	if msg == "" {
		msg = "exit status " + strconv.Itoa(e.ExitCode)
	}
	return "command execution failed: " + msg
}

// SpawnError 进程无法启动（二进制缺失之外的 I/O 错误）
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "io error: " + e.Err.Error()
}

func (e *SpawnError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError 输出无法解析，目前只有 --json settings 会产生
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return "failed to parse command output: " + e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// StateChangeError connect/disconnect 在排除 already connected/disconnected 之后的失败
type StateChangeError struct {
	Op     string // "connect" 或 "disconnect"
	Reason string
}

func (e *StateChangeError) Error() string {
	if e == nil {
		return "<nil>"
	}
	prefix := "connection failed"
	if e.Op == "disconnect" {
		prefix = "disconnection failed"
	}
	return prefix + ": " + strings.TrimSpace(e.Reason)
}

// Is 让 errors.Is 可以直接和 ErrConnectionFailed / ErrDisconnectionFailed 比较
func (e *StateChangeError) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case ErrConnectionFailed:
		return e.Op == "connect"
	case ErrDisconnectionFailed:
		return e.Op == "disconnect"
	}
	return false
}
