package warp

import (
	"encoding/json"
	"strings"
)

// settingsResponse 对应 warp-cli --json settings 的输出
type settingsResponse struct {
	Settings struct {
		OperationMode string `json:"operation_mode"`
	} `json:"settings"`
}

// ParseStatusLine maps a single status line to a ConnectionState.
//
// "Status update: <state>" must match a state word exactly. The legacy
// "Status: <state>" form is matched by substring, so the "dis" forms are
// ruled out before concluding "connected" or "connecting".
func ParseStatusLine(line string) ConnectionState {
	lower := strings.ToLower(strings.TrimSpace(line))

	if rest, ok := strings.CutPrefix(lower, "status update:"); ok {
		switch strings.TrimSpace(rest) {
		case "connected":
			return StateConnected
		case "disconnected":
			return StateDisconnected
		case "connecting":
			return StateConnecting
		case "disconnecting":
			return StateDisconnecting
		default:
			return StateUnknown
		}
	}

	if _, rest, ok := strings.Cut(lower, "status:"); ok {
		part := strings.TrimSpace(rest)
		switch {
		case strings.Contains(part, "connected") && !strings.Contains(part, "disconnected"):
			return StateConnected
		case strings.Contains(part, "disconnected"):
			return StateDisconnected
		case strings.Contains(part, "disconnecting"):
			return StateDisconnecting
		case strings.Contains(part, "connecting"):
			return StateConnecting
		}
	}
	return StateUnknown
}

// ParseStatusOutput 解析 warp-cli status 的完整输出
// Mode 不从这里取，由 Client 通过 --json settings 补上
func ParseStatusOutput(output string) StatusInfo {
	info := DefaultStatus()

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.HasPrefix(line, "Status update:") || strings.Contains(line, "Status:"):
			info.State = ParseStatusLine(line)
		case strings.Contains(line, "Account type:"):
			info.AccountType, _ = ValueAfterColon(line)
		case strings.Contains(line, "Warp enabled:"):
			info.WarpEnabled = strings.Contains(line, "true")
		case strings.Contains(line, "Gateway enabled:"):
			info.GatewayEnabled = strings.Contains(line, "true")
		}
	}
	return info
}

// ParseRegistrationOutput 解析 registration new 的输出
func ParseRegistrationOutput(output string) RegistrationInfo {
	var info RegistrationInfo

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)

		switch {
		case strings.Contains(line, "Device ID:"):
			info.DeviceID, _ = ValueAfterColon(line)
		case strings.Contains(line, "Organization:"):
			info.Organization, _ = ValueAfterColon(line)
		case strings.Contains(line, "Account type:"):
			info.AccountType, _ = ValueAfterColon(line)
		case strings.Contains(line, "License key:"):
			info.LicenseKey, _ = ValueAfterColon(line)
		}
	}
	return info
}

// ValueAfterColon returns the trimmed text between the first colon and the
// next one. ok is false when there is no colon or nothing follows it.
func ValueAfterColon(line string) (string, bool) {
	parts := strings.Split(line, ":")
	if len(parts) < 2 {
		return "", false
	}
	value := strings.TrimSpace(parts[1])
	if value == "" {
		return "", false
	}
	return value, true
}

// ParseOperationMode 解析 --json settings 输出中的 operation_mode
func ParseOperationMode(data []byte) (DNSMode, error) {
	var resp settingsResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return ModeUnknown, &ParseError{Input: string(data), Err: err}
	}
	return ParseDNSMode(resp.Settings.OperationMode), nil
}
