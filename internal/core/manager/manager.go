package manager

import (
	"context"
	"fmt"
	"time"

	"github.com/kyson/warptui/internal/adapter/logger"
	"github.com/kyson/warptui/internal/core/warp"
)

// DefaultInterval 后台轮询状态的间隔
const DefaultInterval = 5 * time.Second

// StatusClient is the part of warp.Client the manager drives.
type StatusClient interface {
	Status(ctx context.Context) (warp.StatusInfo, error)
	Connect(ctx context.Context) error
	Disconnect(ctx context.Context) error
	CreateRegistration(ctx context.Context) (warp.RegistrationInfo, error)
	DeleteRegistration(ctx context.Context) error
}

// Manager polls warp status in the background and serialises command
// messages through one queue. The queue has exactly one consumer (Process);
// any number of Senders may enqueue.
type Manager struct {
	client   StatusClient
	interval time.Duration
	queue    *queue
}

// Sender 可复制的发送端
type Sender struct {
	q *queue
}

// Send 入队，永不阻塞
func (s Sender) Send(msg Message) {
	if s.q == nil {
		return
	}
	s.q.push(msg)
}

// New 创建 Manager，interval 为 0 时使用 5s
func New(client StatusClient, interval time.Duration) *Manager {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Manager{
		client:   client,
		interval: interval,
		queue:    newQueue(),
	}
}

// Sender 返回一个发送端
func (m *Manager) Sender() Sender {
	return Sender{q: m.queue}
}

// Pending 当前队列长度
func (m *Manager) Pending() int {
	return m.queue.len()
}

// Start 启动后台轮询 goroutine：立即查询一次，之后每个 interval 查询一次
// goroutine 在 ctx 结束时退出，调用方不需要等待它
func (m *Manager) Start(ctx context.Context) {
	sender := m.Sender()
	go func() {
		ticker := time.NewTicker(m.interval)
		defer ticker.Stop()

		for {
			m.poll(ctx, sender)

			select {
			case <-ctx.Done():
				logger.Debug("manager poller stopped")
				return
			case <-ticker.C:
			}
		}
	}()
}

func (m *Manager) poll(ctx context.Context, sender Sender) {
	info, err := m.client.Status(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		sender.Send(ErrorMessage(fmt.Sprintf("Status update failed: %v", err)))
		return
	}
	sender.Send(StatusUpdate(info))
}

// Handle 处理单条消息
// 命令执行后追加一条 StatusUpdate；StatusUpdate/Error 不做任何处理
func (m *Manager) Handle(ctx context.Context, msg Message) error {
	switch msg.Kind {
	case KindConnect:
		if err := m.client.Connect(ctx); err != nil {
			return err
		}
	case KindDisconnect:
		if err := m.client.Disconnect(ctx); err != nil {
			return err
		}
	case KindRefresh:
	case KindCreateRegistration:
		if _, err := m.client.CreateRegistration(ctx); err != nil {
			return err
		}
	case KindDeleteRegistration:
		if err := m.client.DeleteRegistration(ctx); err != nil {
			return err
		}
	default:
		return nil
	}

	info, err := m.client.Status(ctx)
	if err != nil {
		return err
	}
	m.queue.push(StatusUpdate(info))
	return nil
}

// Process 消费循环，一次处理一条消息，直到 ctx 结束
// observe 不为 nil 时，每条 StatusUpdate/Error 都会交给它
func (m *Manager) Process(ctx context.Context, observe func(Message)) {
	for ctx.Err() == nil {
		msg, ok := m.queue.pop(ctx)
		if !ok {
			return
		}

		if !msg.IsCommand() {
			if observe != nil {
				observe(msg)
			}
			continue
		}

		logger.Debug("manager handling message", "kind", msg.Kind)
		if err := m.Handle(ctx, msg); err != nil {
			if ctx.Err() != nil {
				return
			}
			logger.Warn("manager command failed", "kind", msg.Kind, "error", err)
			m.queue.push(ErrorMessage(fmt.Sprintf("Command failed: %v", err)))
		}
	}
}
