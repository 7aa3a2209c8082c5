package dashboard

import (
	"errors"
	"io"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/kyson/warptui/internal/adapter/logger"
	"github.com/kyson/warptui/internal/core/warp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.Config{Output: io.Discard})
	os.Exit(m.Run())
}

const settingsDoT = `{"settings":{"operation_mode":"dot"}}`

func newFakeClient() (*warp.Client, *warp.FakeRunner) {
	runner := warp.NewFakeRunner().
		Set("status", warp.FakeResponse{Stdout: "Status update: Disconnected\nAccount type: Free\nWarp enabled: true\n"}).
		Set("--json settings", warp.FakeResponse{Stdout: settingsDoT}).
		Set("connect", warp.FakeResponse{Stdout: "Success"}).
		Set("disconnect", warp.FakeResponse{Stdout: "Success"}).
		Set("mode warp+doh", warp.FakeResponse{Stdout: "Success"})
	return warp.NewWithRunner("warp-cli", time.Second, runner), runner
}

func key(s string) tea.KeyMsg {
	switch s {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// step 执行一次 Update 并断言返回的仍是 Model
func step(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

// loaded 返回一个已经完成首次查询的 Model
func loaded(t *testing.T, c Client) Model {
	t.Helper()
	m := NewModel(c, time.Second)
	m, _ = step(t, m, cmdFetchStatus(c)())
	return m
}

func TestNewModel_Defaults(t *testing.T) {
	c, _ := newFakeClient()
	m := NewModel(c, 0)
	assert.Equal(t, DefaultRefreshInterval, m.RefreshInterval())
	assert.Equal(t, warp.StateUnknown, m.Info().State)
	assert.False(t, m.SelectorOpen())
	assert.Equal(t, -1, m.SelectorCursor())
	assert.NotNil(t, m.Init())
}

func TestUpdate_StatusLoaded(t *testing.T) {
	c, _ := newFakeClient()
	m := loaded(t, c)

	assert.Equal(t, warp.StateDisconnected, m.Info().State)
	assert.Equal(t, "Free", m.Info().AccountType)
	require.NotNil(t, m.Info().Mode)
	assert.Equal(t, warp.ModeDoT, *m.Info().Mode)
	assert.NoError(t, m.LastError())
	assert.False(t, m.statusInFlight)
}

func TestUpdate_StatusErrorResetsInfo(t *testing.T) {
	c, _ := newFakeClient()
	m := loaded(t, c)

	m, _ = step(t, m, statusMsg{Info: warp.StatusInfo{State: warp.StateConnected}, Err: warp.ErrCommandNotFound})
	assert.Equal(t, warp.DefaultStatus(), m.Info())
	assert.ErrorIs(t, m.LastError(), warp.ErrCommandNotFound)
	assert.Contains(t, m.View(), "Error:")
}

func TestUpdate_ConnectRefreshesStatus(t *testing.T) {
	c, runner := newFakeClient()
	m := loaded(t, c)

	m, cmd := step(t, m, key("c"))
	assert.Equal(t, "connect", m.Busy())
	require.NotNil(t, cmd)

	// 执行中再按一次不会重复发起
	m, again := step(t, m, key("C"))
	assert.Nil(t, again)

	runner.Set("status", warp.FakeResponse{Stdout: "Status update: Connected"})
	m, cmd = step(t, m, cmd())
	assert.Empty(t, m.Busy())
	require.NotNil(t, cmd, "action result triggers a status refresh")

	m, _ = step(t, m, cmd())
	assert.Equal(t, warp.StateConnected, m.Info().State)
	assert.Contains(t, runner.Calls(), []string{"connect"})
}

func TestUpdate_DisconnectFailureShowsError(t *testing.T) {
	c, runner := newFakeClient()
	runner.Set("disconnect", warp.FakeResponse{ExitCode: 1, Stderr: "daemon unreachable"})
	m := loaded(t, c)

	m, cmd := step(t, m, key("d"))
	require.NotNil(t, cmd)
	m, cmd = step(t, m, cmd())
	require.NotNil(t, cmd, "action result triggers a status refresh")

	// 随后的状态查询成功，动作错误仍然保留
	m, _ = step(t, m, cmd())
	assert.NoError(t, m.LastError())
	var stateErr *warp.StateChangeError
	require.ErrorAs(t, m.ActionError(), &stateErr)
	assert.Equal(t, "disconnect", stateErr.Op)
	assert.Contains(t, m.View(), "disconnection failed")

	// 自动刷新也不清除
	m, _ = step(t, m, refreshTickMsg(time.Now()))
	m, _ = step(t, m, cmdFetchStatus(c)())
	assert.Error(t, m.ActionError())

	// 下一次按键清除
	m, _ = step(t, m, key("x"))
	assert.NoError(t, m.ActionError())
	assert.NotContains(t, m.View(), "disconnection failed")
}

func TestUpdate_RefreshSkippedWhileInFlight(t *testing.T) {
	c, _ := newFakeClient()
	m := NewModel(c, time.Second)

	// Init 的查询还没回来
	m, cmd := step(t, m, key("r"))
	assert.Nil(t, cmd)
	assert.True(t, m.refreshPending)

	// 查询回来后补一次刷新
	m, cmd = step(t, m, cmdFetchStatus(c)())
	assert.NotNil(t, cmd)
	assert.True(t, m.statusInFlight)
	assert.False(t, m.refreshPending)
}

func TestUpdate_RefreshTick(t *testing.T) {
	c, _ := newFakeClient()
	m := loaded(t, c)

	// 空闲时每个 tick 都发起查询
	m, cmd := step(t, m, refreshTickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.True(t, m.statusInFlight)

	// 查询未返回时只继续计时，不排队
	m, cmd = step(t, m, refreshTickMsg(time.Now()))
	assert.NotNil(t, cmd)
	assert.True(t, m.statusInFlight)
	assert.False(t, m.refreshPending)

	// 查询返回后紧接着的 tick 立即再查一次
	m, cmd = step(t, m, cmdFetchStatus(c)())
	assert.Nil(t, cmd)
	m, _ = step(t, m, refreshTickMsg(time.Now()))
	assert.True(t, m.statusInFlight)
}

func TestSelector_OpensOnCurrentModeAndWraps(t *testing.T) {
	c, _ := newFakeClient()
	m := loaded(t, c)

	m, _ = step(t, m, key("m"))
	require.True(t, m.SelectorOpen())
	assert.Equal(t, 1, m.SelectorCursor(), "cursor starts on dot")
	assert.Contains(t, m.View(), "Select DNS Mode")

	m, _ = step(t, m, key("up"))
	assert.Equal(t, 0, m.SelectorCursor())
	m, _ = step(t, m, key("up"))
	assert.Equal(t, len(warp.AvailableModes)-1, m.SelectorCursor())
	m, _ = step(t, m, key("down"))
	assert.Equal(t, 0, m.SelectorCursor())

	m, cmd := step(t, m, key("esc"))
	assert.False(t, m.SelectorOpen())
	assert.Nil(t, cmd, "esc closes the selector without quitting")
}

func TestSelector_EnterAppliesMode(t *testing.T) {
	c, runner := newFakeClient()
	m := loaded(t, c)

	m, _ = step(t, m, key("M"))
	m, _ = step(t, m, key("down"))
	m, _ = step(t, m, key("down"))
	assert.Equal(t, "warp+doh", warp.AvailableModes[m.SelectorCursor()])

	m, cmd := step(t, m, key("enter"))
	assert.False(t, m.SelectorOpen())
	require.NotNil(t, cmd)

	m, cmd = step(t, m, cmd())
	assert.NoError(t, m.LastError())
	assert.NotNil(t, cmd)
	assert.Contains(t, runner.Calls(), []string{"mode", "warp+doh"})
}

func TestSelector_NoModeStartsAtZero(t *testing.T) {
	c, _ := newFakeClient()
	m := NewModel(c, time.Second)

	m, _ = step(t, m, key("m"))
	assert.Equal(t, 0, m.SelectorCursor())
}

func TestUpdate_QuitKeys(t *testing.T) {
	c, _ := newFakeClient()
	for _, k := range []string{"q", "Q", "esc", "ctrl+c"} {
		t.Run(k, func(t *testing.T) {
			m := NewModel(c, time.Second)
			_, cmd := step(t, m, key(k))
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
		})
	}

	// ctrl+c 在选择层里也能退出
	m := NewModel(c, time.Second)
	m, _ = step(t, m, key("m"))
	_, cmd := step(t, m, key("ctrl+c"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestUpdate_CopyStatus(t *testing.T) {
	orig := writeClipboard
	t.Cleanup(func() { writeClipboard = orig })

	var copied string
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}

	c, _ := newFakeClient()
	m := loaded(t, c)

	m, cmd := step(t, m, key("y"))
	require.NotNil(t, cmd)
	m, _ = step(t, m, cmd())

	assert.Contains(t, copied, "Status: Disconnected")
	assert.Contains(t, copied, "Mode: DoT")
	assert.Contains(t, m.View(), "copied")

	writeClipboard = func(string) error { return errors.New("no clipboard") }
	m, cmd = step(t, m, key("y"))
	m, _ = step(t, m, cmd())
	assert.EqualError(t, m.ActionError(), "no clipboard")
	assert.NoError(t, m.LastError())
}

func TestView_Rendering(t *testing.T) {
	c, _ := newFakeClient()
	m := NewModel(c, time.Second)

	out := m.View()
	assert.Contains(t, out, "Cloudflare WARP")
	assert.Contains(t, out, "Unknown")
	assert.Contains(t, out, "N/A", "missing mode and account type")

	m = loaded(t, c)
	out = m.View()
	assert.Contains(t, out, "Disconnected")
	assert.Contains(t, out, "Free")
	assert.Contains(t, out, "Connect")
}

func TestSummary(t *testing.T) {
	mode := warp.ModeWarpDoT
	info := warp.StatusInfo{
		State:             warp.StateConnected,
		Mode:              &mode,
		WarpEnabled:       true,
		ConnectedNetworks: []string{"home"},
	}

	out := Summary(info)
	assert.Contains(t, out, "Status: Connected")
	assert.Contains(t, out, "Mode: Warp+DoT")
	assert.Contains(t, out, "Account Type: N/A")
	assert.Contains(t, out, "WARP Enabled: Yes")
	assert.Contains(t, out, "Gateway Enabled: No")
	assert.Contains(t, out, "Networks: home")
}
