package dashboard

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ============================================================================
// BubbleTea 接口实现
// ============================================================================

// Init 立即拉取一次状态并启动自动刷新
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		cmdFetchStatus(m.client),
		cmdRefreshTick(m.refreshInterval),
	)
}

// Update 消息分发器
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	// =========================================================================
	// 状态刷新
	// =========================================================================
	case statusMsg:
		newM, cmd := m.handleStatus(msg)
		return newM, cmd

	case refreshTickMsg:
		newM, cmd := m.handleRefreshTick()
		return newM, cmd

	// =========================================================================
	// 请求结果
	// =========================================================================
	case actionMsg:
		newM, cmd := m.handleAction(msg)
		return newM, cmd

	case clipboardMsg:
		newM, cmd := m.handleClipboard(msg)
		return newM, cmd

	// =========================================================================
	// 终端与键盘
	// =========================================================================
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		newM, cmd := m.handleKeyPress(msg)
		return newM, cmd
	}

	return m, nil
}
