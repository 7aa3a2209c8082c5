package warp

import "strings"

// ConnectionState 连接状态，由 status 输出的文本匹配得出
type ConnectionState int

const (
	StateUnknown ConnectionState = iota // 无法识别
	StateConnected
	StateDisconnected
	StateConnecting
	StateDisconnecting
)

func (s ConnectionState) String() string {
	switch s {
	case StateConnected:
		return "Connected"
	case StateDisconnected:
		return "Disconnected"
	case StateConnecting:
		return "Connecting"
	case StateDisconnecting:
		return "Disconnecting"
	default:
		return "Unknown"
	}
}

// MarshalText 让 JSON 输出使用可读的状态名
func (s ConnectionState) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DNSMode 对应 warp-cli settings 里的 operation_mode
type DNSMode int

const (
	ModeUnknown DNSMode = iota
	ModeDoH             // DNS over HTTPS
	ModeDoT             // DNS over TLS
	ModeWarpDoH         // WARP 隧道 + DoH
	ModeWarpDoT         // WARP 隧道 + DoT
)

// AvailableModes 是 mode/set-mode 接受的全部 token，顺序即选择器里的顺序
var AvailableModes = []string{"doh", "dot", "warp+doh", "warp+dot"}

func (m DNSMode) String() string {
	switch m {
	case ModeDoH:
		return "DoH"
	case ModeDoT:
		return "DoT"
	case ModeWarpDoH:
		return "Warp+DoH"
	case ModeWarpDoT:
		return "Warp+DoT"
	default:
		return "Unknown"
	}
}

// Token 返回 warp-cli 命令行使用的模式名，Unknown 返回空串
func (m DNSMode) Token() string {
	switch m {
	case ModeDoH:
		return "doh"
	case ModeDoT:
		return "dot"
	case ModeWarpDoH:
		return "warp+doh"
	case ModeWarpDoT:
		return "warp+dot"
	default:
		return ""
	}
}

func (m DNSMode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ParseDNSMode 把 token 映射为 DNSMode，无法识别时返回 ModeUnknown
func ParseDNSMode(token string) DNSMode {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "doh":
		return ModeDoH
	case "dot":
		return ModeDoT
	case "warp+doh":
		return ModeWarpDoH
	case "warp+dot":
		return ModeWarpDoT
	default:
		return ModeUnknown
	}
}

// StatusInfo 一次状态查询的完整结果
// 每次刷新整体替换，不做字段级更新
type StatusInfo struct {
	State             ConnectionState `json:"status"`
	Mode              *DNSMode        `json:"mode,omitempty"`
	AccountType       string          `json:"account_type,omitempty"`
	WarpEnabled       bool            `json:"warp_enabled"`
	GatewayEnabled    bool            `json:"gateway_enabled"`
	ConnectedNetworks []string        `json:"connected_networks"`
}

// DefaultStatus 查询失败时界面回退显示的状态
func DefaultStatus() StatusInfo {
	return StatusInfo{
		State:             StateUnknown,
		ConnectedNetworks: []string{},
	}
}

// RegistrationInfo registration new 的解析结果，空串表示没有该字段
type RegistrationInfo struct {
	DeviceID     string `json:"device_id,omitempty"`
	Organization string `json:"organization,omitempty"`
	AccountType  string `json:"account_type,omitempty"`
	LicenseKey   string `json:"license_key,omitempty"`
}
