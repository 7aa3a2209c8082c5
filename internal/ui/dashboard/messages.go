package dashboard

import (
	"time"

	"github.com/kyson/warptui/internal/core/warp"
)

// ============================================================================
// 消息定义
// BubbleTea 基于消息驱动，所有异步操作都通过消息通知状态变更
// ============================================================================

// statusMsg 一次状态查询的结果
type statusMsg struct {
	Info warp.StatusInfo
	Err  error
}

// actionMsg connect/disconnect/mode 执行完成
type actionMsg struct {
	Action string
	Err    error
}

// refreshTickMsg 自动刷新计时器触发
type refreshTickMsg time.Time

// clipboardMsg 复制到剪贴板的结果
type clipboardMsg struct {
	Err error
}
