package manager

import (
	"github.com/kyson/warptui/internal/core/warp"
)

// Kind 消息类型
type Kind int

const (
	// 命令消息，由消费者处理
	KindConnect Kind = iota
	KindDisconnect
	KindRefresh
	KindCreateRegistration
	KindDeleteRegistration

	// 输出消息，消费者不再处理，只交给观察者
	KindStatusUpdate
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindConnect:
		return "Connect"
	case KindDisconnect:
		return "Disconnect"
	case KindRefresh:
		return "Refresh"
	case KindCreateRegistration:
		return "CreateRegistration"
	case KindDeleteRegistration:
		return "DeleteRegistration"
	case KindStatusUpdate:
		return "StatusUpdate"
	case KindError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Message 队列中的一条消息
// Status 只在 KindStatusUpdate 时有效，Err 只在 KindError 时有效
type Message struct {
	Kind   Kind
	Status warp.StatusInfo
	Err    string
}

// IsCommand 是否为需要消费者处理的命令消息
func (m Message) IsCommand() bool {
	return m.Kind < KindStatusUpdate
}

func Connect() Message            { return Message{Kind: KindConnect} }
func Disconnect() Message         { return Message{Kind: KindDisconnect} }
func Refresh() Message            { return Message{Kind: KindRefresh} }
func CreateRegistration() Message { return Message{Kind: KindCreateRegistration} }
func DeleteRegistration() Message { return Message{Kind: KindDeleteRegistration} }

func StatusUpdate(info warp.StatusInfo) Message {
	return Message{Kind: KindStatusUpdate, Status: info}
}

func ErrorMessage(text string) Message {
	return Message{Kind: KindError, Err: text}
}
