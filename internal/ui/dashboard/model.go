package dashboard

import (
	"time"

	"github.com/kyson/warptui/internal/core/warp"
)

// ============================================================================
// Model 定义
// ============================================================================

// DefaultRefreshInterval 自动刷新间隔
const DefaultRefreshInterval = time.Second

// Client 界面需要的 warp-cli 操作（同步版本，在 tea.Cmd 里执行）
type Client interface {
	StatusSync() (warp.StatusInfo, error)
	ConnectSync() error
	DisconnectSync() error
	SetModeSync(mode string) error
}

// Model TUI 核心模型
type Model struct {
	// =========================================================================
	// 第一层：外部依赖
	// =========================================================================
	client Client

	// =========================================================================
	// 第二层：业务数据
	// =========================================================================
	info      warp.StatusInfo // 最近一次状态，整体替换
	lastError error           // 最近一次状态查询的错误，查询成功后清除
	actionErr error           // 最近一次动作失败，下一次按键清除

	// 刷新控制
	refreshInterval time.Duration
	statusInFlight  bool   // 正在查询状态
	refreshPending  bool   // 查询期间又请求了刷新
	busy            string // 正在执行的动作: connect, disconnect, mode

	// =========================================================================
	// 第三层：UI 交互状态
	// =========================================================================
	selector *modeSelector // 非 nil 表示模式选择层打开
	notice   string        // 一次性提示，例如复制成功
	width    int
}

// modeSelector 模式选择层的光标
type modeSelector struct {
	cursor int
}

// NewModel 创建新的 Model，refreshInterval 为 0 时使用 1s
func NewModel(client Client, refreshInterval time.Duration) Model {
	if refreshInterval <= 0 {
		refreshInterval = DefaultRefreshInterval
	}
	return Model{
		client:          client,
		info:            warp.DefaultStatus(),
		refreshInterval: refreshInterval,
		// Init 会立即发起一次查询
		statusInFlight: true,
	}
}

// ============================================================================
// Model 访问器（只读）
// ============================================================================

// Info 当前显示的状态
func (m *Model) Info() warp.StatusInfo {
	return m.info
}

// LastError 最近的错误
func (m *Model) LastError() error {
	return m.lastError
}

// ActionError 最近一次失败的动作，下一次按键前一直保留
func (m *Model) ActionError() error {
	return m.actionErr
}

// SelectorOpen 模式选择层是否打开
func (m *Model) SelectorOpen() bool {
	return m.selector != nil
}

// SelectorCursor 选择层光标位置，未打开时返回 -1
func (m *Model) SelectorCursor() int {
	if m.selector == nil {
		return -1
	}
	return m.selector.cursor
}

// Busy 正在执行的动作，空串表示空闲
func (m *Model) Busy() string {
	return m.busy
}

// RefreshInterval 自动刷新间隔
func (m *Model) RefreshInterval() time.Duration {
	return m.refreshInterval
}
