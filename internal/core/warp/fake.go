package warp

import (
	"context"
	"os/exec"
	"strings"
	"sync"
)

// FakeResponse 是 FakeRunner 对某一组参数的预设回应
type FakeResponse struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
	// Block 为 true 时一直等到 ctx 结束，用来模拟超时
	Block bool
}

// FakeRunner allows tests and the CLI test suite to script warp-cli output
// without the binary being installed. Responses are keyed by the argument
// list joined with single spaces, e.g. "--json settings".
type FakeRunner struct {
	mu        sync.Mutex
	Responses map[string]FakeResponse
	// Missing 为 true 时模拟二进制不在 PATH 中
	Missing bool
	calls   [][]string
}

// NewFakeRunner 创建一个空的 FakeRunner
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{Responses: make(map[string]FakeResponse)}
}

// Set 设置某条命令的回应，返回自身便于链式调用
func (f *FakeRunner) Set(args string, resp FakeResponse) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Responses == nil {
		f.Responses = make(map[string]FakeResponse)
	}
	f.Responses[args] = resp
	return f
}

func (f *FakeRunner) Run(ctx context.Context, name string, args []string) (Result, error) {
	f.mu.Lock()
	f.calls = append(f.calls, append([]string(nil), args...))
	missing := f.Missing
	resp, ok := f.Responses[strings.Join(args, " ")]
	f.mu.Unlock()

	if missing {
		return Result{}, &exec.Error{Name: name, Err: exec.ErrNotFound}
	}
	if !ok {
		return Result{ExitCode: 1, Stderr: []byte("unrecognized command: " + strings.Join(args, " "))}, nil
	}
	if resp.Block {
		<-ctx.Done()
		return Result{ExitCode: -1}, nil
	}
	if resp.Err != nil {
		return Result{}, resp.Err
	}
	return Result{
		Stdout:   []byte(resp.Stdout),
		Stderr:   []byte(resp.Stderr),
		ExitCode: resp.ExitCode,
	}, nil
}

// Calls 返回已记录的调用参数
func (f *FakeRunner) Calls() [][]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]string, len(f.calls))
	copy(out, f.calls)
	return out
}
