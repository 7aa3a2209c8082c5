package warp

import (
	"context"
	"errors"
	"path/filepath"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const settingsWarpDoH = `{"settings":{"operation_mode":"warp+doh"}}`

func newTestClient(runner *FakeRunner) *Client {
	return &Client{binary: "warp-cli", timeout: time.Second, runner: runner}
}

func TestNew_Defaults(t *testing.T) {
	c := New("", 0)
	assert.Equal(t, "warp-cli", c.Binary())
	assert.Equal(t, 30*time.Second, c.Timeout())

	c = New("/opt/warp/warp-cli", time.Minute)
	assert.Equal(t, "/opt/warp/warp-cli", c.Binary())
	assert.Equal(t, time.Minute, c.Timeout())
}

func TestClient_Status(t *testing.T) {
	runner := NewFakeRunner().
		Set("status", FakeResponse{Stdout: "Status update: Connected\nMode: Warp+DoH\nAccount type: Free\n"}).
		Set("--json settings", FakeResponse{Stdout: settingsWarpDoH})
	c := newTestClient(runner)

	for name, get := range map[string]func() (StatusInfo, error){
		"bounded": func() (StatusInfo, error) { return c.Status(context.Background()) },
		"sync":    c.StatusSync,
	} {
		t.Run(name, func(t *testing.T) {
			info, err := get()
			require.NoError(t, err)
			assert.Equal(t, StateConnected, info.State)
			assert.Equal(t, "Free", info.AccountType)
			require.NotNil(t, info.Mode)
			assert.Equal(t, ModeWarpDoH, *info.Mode)
		})
	}
}

func TestClient_StatusSettingsFailure(t *testing.T) {
	// settings 查询失败时整个状态查询失败，不返回半成品
	runner := NewFakeRunner().
		Set("status", FakeResponse{Stdout: "Status update: Connected"}).
		Set("--json settings", FakeResponse{Stdout: "not json"})
	c := newTestClient(runner)

	info, err := c.StatusSync()
	require.Error(t, err)
	var parseErr *ParseError
	assert.ErrorAs(t, err, &parseErr)
	assert.Equal(t, StateUnknown, info.State)
	assert.Nil(t, info.Mode)
}

func TestClient_OperationMode(t *testing.T) {
	runner := NewFakeRunner().Set("--json settings", FakeResponse{Stdout: `{"settings":{"operation_mode":"tunnel_only"}}`})
	c := newTestClient(runner)

	mode, err := c.OperationMode(context.Background())
	require.NoError(t, err)
	assert.Equal(t, ModeUnknown, mode)

	runner.Set("--json settings", FakeResponse{Stdout: settingsWarpDoH})
	mode, err = c.OperationModeSync()
	require.NoError(t, err)
	assert.Equal(t, ModeWarpDoH, mode)
}

func TestClient_ConnectIdempotent(t *testing.T) {
	tests := []struct {
		name    string
		resp    FakeResponse
		wantErr error
	}{
		{name: "success", resp: FakeResponse{Stdout: "Success"}},
		{name: "already connected", resp: FakeResponse{ExitCode: 1, Stderr: "Error: already connected"}},
		{name: "other failure", resp: FakeResponse{ExitCode: 1, Stderr: "Error: registration missing"}, wantErr: ErrConnectionFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(NewFakeRunner().Set("connect", tt.resp))

			for _, err := range []error{c.Connect(context.Background()), c.ConnectSync()} {
				if tt.wantErr == nil {
					assert.NoError(t, err)
					continue
				}
				assert.ErrorIs(t, err, tt.wantErr)
				assert.NotErrorIs(t, err, ErrDisconnectionFailed)
				assert.Contains(t, err.Error(), "registration missing")
			}
		})
	}
}

func TestClient_DisconnectIdempotent(t *testing.T) {
	c := newTestClient(NewFakeRunner().Set("disconnect", FakeResponse{ExitCode: 1, Stderr: "already disconnected"}))
	assert.NoError(t, c.Disconnect(context.Background()))
	assert.NoError(t, c.DisconnectSync())

	c = newTestClient(NewFakeRunner().Set("disconnect", FakeResponse{ExitCode: 1, Stderr: "daemon busy"}))
	err := c.DisconnectSync()
	assert.ErrorIs(t, err, ErrDisconnectionFailed)

	var stateErr *StateChangeError
	require.ErrorAs(t, err, &stateErr)
	assert.Equal(t, "disconnect", stateErr.Op)
}

func TestClient_ConnectPassesThroughNonCommandErrors(t *testing.T) {
	runner := NewFakeRunner()
	runner.Missing = true
	c := newTestClient(runner)

	err := c.ConnectSync()
	assert.ErrorIs(t, err, ErrCommandNotFound)
	assert.NotErrorIs(t, err, ErrConnectionFailed)
}

func TestClient_BinaryMissing(t *testing.T) {
	runner := NewFakeRunner()
	runner.Missing = true
	c := newTestClient(runner)
	ctx := context.Background()

	_, err := c.Status(ctx)
	assert.ErrorIs(t, err, ErrCommandNotFound)
	_, err = c.StatusSync()
	assert.ErrorIs(t, err, ErrCommandNotFound)
	assert.ErrorIs(t, c.Disconnect(ctx), ErrCommandNotFound)
	assert.ErrorIs(t, c.SetModeSync("doh"), ErrCommandNotFound)
	_, err = c.OperationMode(ctx)
	assert.ErrorIs(t, err, ErrCommandNotFound)
	_, err = c.Settings(ctx)
	assert.ErrorIs(t, err, ErrCommandNotFound)
	_, err = c.CreateRegistration(ctx)
	assert.ErrorIs(t, err, ErrCommandNotFound)
	assert.ErrorIs(t, c.DeleteRegistrationSync(), ErrCommandNotFound)
	assert.False(t, c.IsAvailable(ctx))
	assert.False(t, c.IsAvailableSync())
}

func TestClient_SetModeArgs(t *testing.T) {
	runner := NewFakeRunner().
		Set("set-mode warp+dot", FakeResponse{Stdout: "Success"}).
		Set("mode dot", FakeResponse{Stdout: "Success"})
	c := newTestClient(runner)

	require.NoError(t, c.SetMode(context.Background(), "warp+dot"))
	require.NoError(t, c.SetModeSync("dot"))

	assert.Equal(t, [][]string{{"set-mode", "warp+dot"}, {"mode", "dot"}}, runner.Calls())
}

func TestClient_CommandFailed(t *testing.T) {
	c := newTestClient(NewFakeRunner().Set("settings", FakeResponse{ExitCode: 2, Stderr: "Error: daemon not running\n"}))

	_, err := c.Settings(context.Background())
	var cmdErr *CommandError
	require.ErrorAs(t, err, &cmdErr)
	assert.Equal(t, 2, cmdErr.ExitCode)
	assert.Equal(t, []string{"settings"}, cmdErr.Args)
	assert.Equal(t, "command execution failed: Error: daemon not running", err.Error())
}

func TestClient_Timeout(t *testing.T) {
	runner := NewFakeRunner().Set("status", FakeResponse{Block: true})
	c := &Client{binary: "warp-cli", timeout: 20 * time.Millisecond, runner: runner}

	start := time.Now()
	_, err := c.Status(context.Background())
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), time.Second)
}

func TestClient_SpawnError(t *testing.T) {
	c := newTestClient(NewFakeRunner().Set("--version", FakeResponse{Err: syscall.EACCES}))

	_, err := c.Version(context.Background())
	var spawnErr *SpawnError
	require.ErrorAs(t, err, &spawnErr)
	assert.True(t, errors.Is(err, syscall.EACCES))
}

func TestClient_Registration(t *testing.T) {
	runner := NewFakeRunner().
		Set("registration new", FakeResponse{Stdout: "Device ID: abc-123\nAccount type: Free\nLicense key: k-1"}).
		Set("registration delete", FakeResponse{Stdout: "Success"})
	c := newTestClient(runner)

	info, err := c.CreateRegistration(context.Background())
	require.NoError(t, err)
	assert.Equal(t, RegistrationInfo{DeviceID: "abc-123", AccountType: "Free", LicenseKey: "k-1"}, info)

	info, err = c.CreateRegistrationSync()
	require.NoError(t, err)
	assert.Equal(t, "abc-123", info.DeviceID)

	assert.NoError(t, c.DeleteRegistration(context.Background()))
	assert.NoError(t, c.DeleteRegistrationSync())
}

func TestClient_Availability(t *testing.T) {
	c := newTestClient(NewFakeRunner().Set("--version", FakeResponse{Stdout: "warp-cli 2024.6.497\n"}))

	assert.True(t, c.IsAvailable(context.Background()))
	assert.True(t, c.IsAvailableSync())

	version, err := c.Version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "warp-cli 2024.6.497", version)
}

func TestClient_Settings(t *testing.T) {
	c := newTestClient(NewFakeRunner().Set("settings", FakeResponse{Stdout: "Merged settings:\n  Mode: WarpWithDnsOverHttps\n\n"}))

	out, err := c.Settings(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Merged settings:\n  Mode: WarpWithDnsOverHttps", out)

	out, err = c.SettingsSync()
	require.NoError(t, err)
	assert.Contains(t, out, "WarpWithDnsOverHttps")
}

func TestExecRunner_MissingBinary(t *testing.T) {
	c := New("warptui-definitely-not-installed", time.Second)

	_, err := c.Settings(context.Background())
	assert.ErrorIs(t, err, ErrCommandNotFound)
}

func TestExecRunner_MissingAbsolutePath(t *testing.T) {
	binary := filepath.Join(t.TempDir(), "missing", "warp-cli")
	c := New(binary, time.Second)

	_, err := c.Status(context.Background())
	assert.ErrorIs(t, err, ErrCommandNotFound)

	var spawnErr *SpawnError
	assert.False(t, errors.As(err, &spawnErr))
	assert.False(t, c.IsAvailableSync())
}
