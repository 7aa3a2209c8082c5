package warp

import (
	"context"
	"errors"
	"strings"
	"time"
)

const (
	DefaultBinary  = "warp-cli"
	DefaultTimeout = 30 * time.Second
)

// Client 封装对 warp-cli 的调用
// 构造后不再修改，可以在多个 goroutine 中并发使用
//
// 每个操作都有两个版本：带 ctx 的版本会套上命令超时，适合在后台 goroutine
// 或 tea.Cmd 里调用；Sync 版本不设超时，一直等到子进程结束
type Client struct {
	binary  string
	timeout time.Duration
	runner  Runner
}

// New 创建客户端，binary 为空使用 warp-cli，timeout 为 0 使用 30s
func New(binary string, timeout time.Duration) *Client {
	return NewWithRunner(binary, timeout, ExecRunner{})
}

// NewWithRunner 使用指定 Runner 创建客户端，主要给测试用
func NewWithRunner(binary string, timeout time.Duration, runner Runner) *Client {
	if binary == "" {
		binary = DefaultBinary
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if runner == nil {
		runner = ExecRunner{}
	}
	return &Client{binary: binary, timeout: timeout, runner: runner}
}

// Binary 返回调用的可执行文件
func (c *Client) Binary() string { return c.binary }

// Timeout 返回带 ctx 版本使用的命令超时
func (c *Client) Timeout() time.Duration { return c.timeout }

// -----------------------------------------------------------------------------
// 1. 可用性
// -----------------------------------------------------------------------------

// IsAvailable 检查 warp-cli --version 能否成功执行
func (c *Client) IsAvailable(ctx context.Context) bool {
	_, err := c.execute(ctx, true, "--version")
	return err == nil
}

func (c *Client) IsAvailableSync() bool {
	_, err := c.execute(context.Background(), false, "--version")
	return err == nil
}

// Version 返回 warp-cli --version 的输出
func (c *Client) Version(ctx context.Context) (string, error) {
	return c.execute(ctx, true, "--version")
}

// -----------------------------------------------------------------------------
// 2. 状态
// -----------------------------------------------------------------------------

// Status 查询连接状态，并用 --json settings 补全 DNS 模式
func (c *Client) Status(ctx context.Context) (StatusInfo, error) {
	return c.status(ctx, true)
}

func (c *Client) StatusSync() (StatusInfo, error) {
	return c.status(context.Background(), false)
}

func (c *Client) status(ctx context.Context, bounded bool) (StatusInfo, error) {
	output, err := c.execute(ctx, bounded, "status")
	if err != nil {
		return DefaultStatus(), err
	}
	// status 自带的 Mode 行不可靠，以 settings 为准
	mode, err := c.operationMode(ctx, bounded)
	if err != nil {
		return DefaultStatus(), err
	}
	info := ParseStatusOutput(output)
	info.Mode = &mode
	return info, nil
}

// OperationMode 读取当前 DNS 模式
func (c *Client) OperationMode(ctx context.Context) (DNSMode, error) {
	return c.operationMode(ctx, true)
}

func (c *Client) OperationModeSync() (DNSMode, error) {
	return c.operationMode(context.Background(), false)
}

func (c *Client) operationMode(ctx context.Context, bounded bool) (DNSMode, error) {
	output, err := c.execute(ctx, bounded, "--json", "settings")
	if err != nil {
		return ModeUnknown, err
	}
	return ParseOperationMode([]byte(output))
}

// Settings 返回 warp-cli settings 的原始输出
func (c *Client) Settings(ctx context.Context) (string, error) {
	return c.execute(ctx, true, "settings")
}

func (c *Client) SettingsSync() (string, error) {
	return c.execute(context.Background(), false, "settings")
}

// -----------------------------------------------------------------------------
// 3. 连接控制
// -----------------------------------------------------------------------------

// Connect 连接 WARP，已经连接时视为成功
func (c *Client) Connect(ctx context.Context) error {
	return c.changeState(ctx, true, "connect", "already connected")
}

func (c *Client) ConnectSync() error {
	return c.changeState(context.Background(), false, "connect", "already connected")
}

// Disconnect 断开 WARP，已经断开时视为成功
func (c *Client) Disconnect(ctx context.Context) error {
	return c.changeState(ctx, true, "disconnect", "already disconnected")
}

func (c *Client) DisconnectSync() error {
	return c.changeState(context.Background(), false, "disconnect", "already disconnected")
}

func (c *Client) changeState(ctx context.Context, bounded bool, op, idempotent string) error {
	_, err := c.execute(ctx, bounded, op)
	if err == nil {
		return nil
	}
	var cmdErr *CommandError
	if !errors.As(err, &cmdErr) {
		return err
	}
	if strings.Contains(cmdErr.Stderr, idempotent) {
		return nil
	}
	return &StateChangeError{Op: op, Reason: cmdErr.Stderr}
}

// SetMode 通过 set-mode 子命令切换 DNS 模式
func (c *Client) SetMode(ctx context.Context, mode string) error {
	_, err := c.execute(ctx, true, "set-mode", mode)
	return err
}

// SetModeSync 通过 mode 子命令切换 DNS 模式（新版 warp-cli 的写法）
func (c *Client) SetModeSync(mode string) error {
	_, err := c.execute(context.Background(), false, "mode", mode)
	return err
}

// -----------------------------------------------------------------------------
// 4. Registration
// -----------------------------------------------------------------------------

// CreateRegistration 注册新设备并解析返回的信息
func (c *Client) CreateRegistration(ctx context.Context) (RegistrationInfo, error) {
	return c.createRegistration(ctx, true)
}

func (c *Client) CreateRegistrationSync() (RegistrationInfo, error) {
	return c.createRegistration(context.Background(), false)
}

func (c *Client) createRegistration(ctx context.Context, bounded bool) (RegistrationInfo, error) {
	output, err := c.execute(ctx, bounded, "registration", "new")
	if err != nil {
		return RegistrationInfo{}, err
	}
	return ParseRegistrationOutput(output), nil
}

// DeleteRegistration 删除当前设备注册
func (c *Client) DeleteRegistration(ctx context.Context) error {
	_, err := c.execute(ctx, true, "registration", "delete")
	return err
}

func (c *Client) DeleteRegistrationSync() error {
	_, err := c.execute(context.Background(), false, "registration", "delete")
	return err
}
