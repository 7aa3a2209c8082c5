package dashboard

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyson/warptui/internal/core/warp"
)

// ============================================================================
// 异步命令定义
// 所有调用 warp-cli 的操作都封装为 tea.Cmd，避免阻塞事件循环
// ============================================================================

// writeClipboard 测试时可替换
var writeClipboard = clipboard.WriteAll

// cmdFetchStatus 获取状态信息
func cmdFetchStatus(c Client) tea.Cmd {
	return func() tea.Msg {
		info, err := c.StatusSync()
		return statusMsg{Info: info, Err: err}
	}
}

// cmdRefreshTick 自动刷新计时
func cmdRefreshTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return refreshTickMsg(t)
	})
}

// cmdConnect 连接
func cmdConnect(c Client) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{Action: "connect", Err: c.ConnectSync()}
	}
}

// cmdDisconnect 断开
func cmdDisconnect(c Client) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{Action: "disconnect", Err: c.DisconnectSync()}
	}
}

// cmdSetMode 切换 DNS 模式
func cmdSetMode(c Client, mode string) tea.Cmd {
	return func() tea.Msg {
		return actionMsg{Action: "mode " + mode, Err: c.SetModeSync(mode)}
	}
}

// cmdCopyStatus 把状态摘要写入剪贴板
func cmdCopyStatus(info warp.StatusInfo) tea.Cmd {
	text := Summary(info)
	return func() tea.Msg {
		return clipboardMsg{Err: writeClipboard(text)}
	}
}

// Summary 状态的纯文本摘要，status 命令和剪贴板共用
func Summary(info warp.StatusInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Status: %s\n", info.State)
	fmt.Fprintf(&b, "Mode: %s\n", modeText(info.Mode))
	fmt.Fprintf(&b, "Account Type: %s\n", orNA(info.AccountType))
	fmt.Fprintf(&b, "WARP Enabled: %s\n", yesNo(info.WarpEnabled))
	fmt.Fprintf(&b, "Gateway Enabled: %s", yesNo(info.GatewayEnabled))
	if len(info.ConnectedNetworks) > 0 {
		fmt.Fprintf(&b, "\nNetworks: %s", strings.Join(info.ConnectedNetworks, ", "))
	}
	return b.String()
}

func modeText(mode *warp.DNSMode) string {
	if mode == nil {
		return "N/A"
	}
	return mode.String()
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
