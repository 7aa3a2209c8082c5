package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kyson/warptui/internal/core/warp"
)

// 颜色定义 - 使用柔和色调
var (
	colorGreen   = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B")) // 柔和绿
	colorYellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C")) // 柔和黄
	colorRed     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6E6E")) // 柔和红
	colorGray    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4")) // 灰紫
	colorCyan    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD")) // 柔和青
	colorMagenta = lipgloss.NewStyle().Foreground(lipgloss.Color("#BD93F9")) // 柔和紫
	colorWhite   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F8F8F2")) // 暖白
	colorDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("#44475A")) // 暗灰
)

// 样式定义
var (
	// 主边框
	mainBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#F38020")).
			Padding(0, 1)

	// 标题
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#F38020")).
			Padding(0, 1).
			Bold(true)

	// 卡片样式
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1).
			Width(40)

	// 帮助栏
	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262"))

	// 高亮键
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F38020")).
			Bold(true)
)

func (m Model) View() string {
	var body, help string
	if m.selector != nil {
		body = renderSelector(m)
		help = renderHelpBar(selectorKeys)
	} else {
		body = renderStatusCard(m)
		help = renderHelpBar(dashboardKeys)
	}

	parts := []string{renderHeader(), "", body}
	if line := renderFooter(m); line != "" {
		parts = append(parts, "", line)
	}
	parts = append(parts, "", help)

	box := mainBoxStyle
	if m.width > 0 {
		box = box.MaxWidth(m.width)
	}
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// renderHeader 标题栏
func renderHeader() string {
	return titleStyle.Render(" ☁ Cloudflare WARP ")
}

// renderStatusCard 状态卡片
func renderStatusCard(m Model) string {
	info := m.info
	row := func(label, value string) string {
		return fmt.Sprintf("%s %s", colorGray.Render(fmt.Sprintf("%-16s", label)), value)
	}

	lines := []string{
		colorMagenta.Render("Status"),
		"",
		row("Connection:", renderState(info.State)),
		row("DNS Mode:", colorWhite.Render(modeText(info.Mode))),
		row("Account Type:", colorWhite.Render(orNA(info.AccountType))),
		row("WARP Enabled:", renderBool(info.WarpEnabled)),
		row("Gateway Enabled:", renderBool(info.GatewayEnabled)),
	}
	if len(info.ConnectedNetworks) > 0 {
		lines = append(lines, row("Networks:", colorCyan.Render(strings.Join(info.ConnectedNetworks, ", "))))
	}
	lines = append(lines, "", colorDim.Render(fmt.Sprintf("Auto-refresh every %s", m.refreshInterval)))

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// renderSelector 模式选择层
func renderSelector(m Model) string {
	lines := []string{colorMagenta.Render("Select DNS Mode"), ""}

	current := ""
	if m.info.Mode != nil {
		current = m.info.Mode.Token()
	}

	for i, token := range warp.AvailableModes {
		mode := warp.ParseDNSMode(token)
		name := fmt.Sprintf("%-10s", mode.String())

		prefix := "  "
		nameStr := colorDim.Render(name)
		if i == m.selector.cursor {
			prefix = colorCyan.Render("▸ ")
			nameStr = colorWhite.Render(name)
		}

		mark := ""
		if token == current {
			mark = colorGreen.Render(" ✓")
		}
		lines = append(lines, prefix+nameStr+mark)
	}

	return cardStyle.Render(strings.Join(lines, "\n"))
}

// renderFooter 动作进度、提示或最近的错误
func renderFooter(m Model) string {
	switch {
	case m.busy != "":
		return colorYellow.Render(fmt.Sprintf("⟳ Running %s...", m.busy))
	case m.actionErr != nil:
		return colorRed.Render("Error: " + m.actionErr.Error())
	case m.lastError != nil:
		return colorRed.Render("Error: " + m.lastError.Error())
	case m.notice != "":
		return colorGreen.Render(m.notice)
	}
	return ""
}

// renderState 连接状态着色
func renderState(state warp.ConnectionState) string {
	switch state {
	case warp.StateConnected:
		return colorGreen.Render("● " + state.String())
	case warp.StateDisconnected:
		return colorRed.Render("○ " + state.String())
	case warp.StateConnecting, warp.StateDisconnecting:
		return colorYellow.Render("◐ " + state.String())
	default:
		return colorGray.Render("? " + state.String())
	}
}

func renderBool(v bool) string {
	if v {
		return colorGreen.Render("Yes")
	}
	return colorDim.Render("No")
}

type keyHelp struct{ key, desc string }

var dashboardKeys = []keyHelp{
	{"c", "Connect"},
	{"d", "Disconnect"},
	{"r", "Refresh"},
	{"m", "Mode"},
	{"y", "Copy"},
	{"q", "Quit"},
}

var selectorKeys = []keyHelp{
	{"↑↓", "Move"},
	{"Enter", "Apply"},
	{"Esc", "Cancel"},
}

// renderHelpBar 帮助栏
func renderHelpBar(keys []keyHelp) string {
	var parts []string
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s",
			keyStyle.Render(k.key),
			helpStyle.Render(k.desc),
		))
	}
	return " " + strings.Join(parts, "  │  ")
}
