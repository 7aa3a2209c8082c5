package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyson/warptui/internal/adapter/logger"
	"github.com/kyson/warptui/internal/core/warp"
)

// ============================================================================
// 消息处理器
// ============================================================================

// -----------------------------------------------------------------------------
// 1. 状态刷新处理器
// -----------------------------------------------------------------------------

// handleStatus 处理状态查询结果
// 失败时回到默认状态，避免显示过期数据
func (m *Model) handleStatus(msg statusMsg) (Model, tea.Cmd) {
	m.statusInFlight = false

	if msg.Err != nil {
		logger.Debug("dashboard status failed", "error", msg.Err)
		m.info = warp.DefaultStatus()
		m.lastError = msg.Err
	} else {
		m.info = msg.Info
		m.lastError = nil
	}

	if m.refreshPending {
		m.refreshPending = false
		cmd := m.startFetch()
		return *m, cmd
	}
	return *m, nil
}

// handleRefreshTick 处理自动刷新计时器，总是继续下一轮计时
// 上一次查询还没返回时跳过这一轮，不排队
func (m *Model) handleRefreshTick() (Model, tea.Cmd) {
	next := cmdRefreshTick(m.refreshInterval)
	if m.statusInFlight {
		return *m, next
	}
	fetch := m.startFetch()
	return *m, tea.Batch(fetch, next)
}

// startFetch 发起状态查询；已有查询在进行时只记一个待刷新标记
func (m *Model) startFetch() tea.Cmd {
	if m.statusInFlight {
		m.refreshPending = true
		return nil
	}
	m.statusInFlight = true
	return cmdFetchStatus(m.client)
}

// -----------------------------------------------------------------------------
// 2. 动作结果处理器
// -----------------------------------------------------------------------------

// handleAction 处理 connect/disconnect/mode 结果，之后立即刷新状态
// 动作错误单独保存，随后的状态刷新不会清掉它
func (m *Model) handleAction(msg actionMsg) (Model, tea.Cmd) {
	m.busy = ""
	m.actionErr = msg.Err
	if msg.Err != nil {
		logger.Warn("dashboard action failed", "action", msg.Action, "error", msg.Err)
	}
	cmd := m.startFetch()
	return *m, cmd
}

// handleClipboard 处理复制结果
func (m *Model) handleClipboard(msg clipboardMsg) (Model, tea.Cmd) {
	if msg.Err != nil {
		m.actionErr = msg.Err
		m.notice = ""
		return *m, nil
	}
	m.notice = "Status copied to clipboard"
	return *m, nil
}

// -----------------------------------------------------------------------------
// 3. 键盘输入处理器
// -----------------------------------------------------------------------------

// handleKeyPress 处理键盘输入
func (m *Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return *m, tea.Quit
	}

	// 选择层打开时独占键盘
	if m.selector != nil {
		return m.handleSelectorKey(key)
	}

	m.notice = ""
	m.actionErr = nil
	switch key {
	case "q", "Q", "esc":
		return *m, tea.Quit

	case "c", "C":
		return m.handleKeyConnect()

	case "d", "D":
		return m.handleKeyDisconnect()

	case "r", "R":
		cmd := m.startFetch()
		return *m, cmd

	case "m", "M":
		return m.handleKeyMode()

	case "y", "Y":
		return *m, cmdCopyStatus(m.info)
	}

	return *m, nil
}

// handleKeyConnect 连接；已有动作在执行时忽略
func (m *Model) handleKeyConnect() (Model, tea.Cmd) {
	if m.busy != "" {
		logger.Debug("handleKeyConnect", "rejected", m.busy)
		return *m, nil
	}
	m.busy = "connect"
	return *m, cmdConnect(m.client)
}

// handleKeyDisconnect 断开
func (m *Model) handleKeyDisconnect() (Model, tea.Cmd) {
	if m.busy != "" {
		logger.Debug("handleKeyDisconnect", "rejected", m.busy)
		return *m, nil
	}
	m.busy = "disconnect"
	return *m, cmdDisconnect(m.client)
}

// handleKeyMode 打开模式选择层，光标停在当前模式上
func (m *Model) handleKeyMode() (Model, tea.Cmd) {
	if m.busy != "" {
		return *m, nil
	}
	m.selector = &modeSelector{cursor: currentModeIndex(m.info.Mode)}
	return *m, nil
}

// -----------------------------------------------------------------------------
// 4. 模式选择层
// -----------------------------------------------------------------------------

// handleSelectorKey 选择层内的按键：上下循环移动，回车提交，esc 取消
func (m *Model) handleSelectorKey(key string) (Model, tea.Cmd) {
	n := len(warp.AvailableModes)
	switch key {
	case "up":
		m.selector.cursor = (m.selector.cursor - 1 + n) % n

	case "down":
		m.selector.cursor = (m.selector.cursor + 1) % n

	case "enter":
		mode := warp.AvailableModes[m.selector.cursor]
		m.selector = nil
		m.busy = "mode"
		return *m, cmdSetMode(m.client, mode)

	case "esc", "m", "M":
		m.selector = nil
	}
	return *m, nil
}

func currentModeIndex(mode *warp.DNSMode) int {
	if mode == nil {
		return 0
	}
	for i, token := range warp.AvailableModes {
		if token == mode.Token() {
			return i
		}
	}
	return 0
}
