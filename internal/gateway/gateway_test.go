package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	cws "github.com/coder/websocket"

	"github.com/lockpilot/lockpilot/common"
	"github.com/lockpilot/lockpilot/pkg/logger"
	"github.com/lockpilot/lockpilot/pkg/pilotcli"
)

type fakeBackend struct {
	timers    []*common.TimerInfo
	cancelled map[string]bool
	update    *common.UpdateInfo
	releases  []common.ReleaseVersion
	err       error
}

func (f *fakeBackend) CreateTimer(p *common.CreateTimerParams) (*common.TimerInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	info := &common.TimerInfo{Id: "t-new", Action: p.Action}
	f.timers = append(f.timers, info)
	return info, nil
}

func (f *fakeBackend) ListTimers() ([]*common.TimerInfo, error) {
	return f.timers, f.err
}

func (f *fakeBackend) CancelTimer(id string) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	return f.cancelled[id], nil
}

func (f *fakeBackend) ResolvePreAction(promptId string, d common.PreActionDecision) (bool, error) {
	return f.err == nil, f.err
}

func (f *fakeBackend) CheckChannelUpdate(v string, ch common.UpdateChannel) (*common.UpdateInfo, error) {
	return f.update, f.err
}

func (f *fakeBackend) InstallChannelUpdate(ch common.UpdateChannel) (string, error) {
	return "installing", f.err
}

func (f *fakeBackend) InstallRelease(tag string) (string, error) {
	return "installing " + tag, f.err
}

func (f *fakeBackend) ListReleaseVersions() ([]common.ReleaseVersion, error) {
	return f.releases, f.err
}

type fakeEvents struct {
	handlers map[common.UpdateType]pilotcli.Handler
}

func (f *fakeEvents) AddHandler(t common.UpdateType, h pilotcli.Handler) {
	if f.handlers == nil {
		f.handlers = make(map[common.UpdateType]pilotcli.Handler)
	}
	f.handlers[t] = h
}

const testSecret = "gw-test-secret"

func newTestGateway(t *testing.T, backend Backend) (*Gateway, string, func()) {
	t.Helper()
	g := New(&Config{
		Secret:    testSecret,
		Version:   "1.0.0",
		Commit:    "abc123",
		BuildType: "test",
	}, backend, logger.NewNopLogger())
	srv := httptest.NewServer(g.handler())
	return g, srv.URL, srv.Close
}

func wsConnect(t *testing.T, serverURL string) *cws.Conn {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(serverURL, "http") + "/jsonrpc/ws"
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	conn, _, err := cws.Dial(ctx, wsURL, &cws.DialOptions{
		HTTPHeader: http.Header{
			"Authorization": []string{"Bearer " + testSecret},
		},
	})
	if err != nil {
		t.Fatalf("WebSocket dial failed: %v", err)
	}
	return conn
}

func rpcCall(t *testing.T, conn *cws.Conn, id int, method string, params any) map[string]any {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req := map[string]any{"jsonrpc": "2.0", "method": method, "id": id}
	if params != nil {
		req["params"] = params
	}
	data, _ := json.Marshal(req)
	if err := conn.Write(ctx, cws.MessageText, data); err != nil {
		t.Fatalf("write %s: %v", method, err)
	}
	_, respData, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read %s: %v", method, err)
	}
	var resp map[string]any
	if err := json.Unmarshal(respData, &resp); err != nil {
		t.Fatalf("unmarshal %s: %v", method, err)
	}
	return resp
}

func TestGatewayRejectsUnauthenticated(t *testing.T) {
	_, srvURL, cleanup := newTestGateway(t, &fakeBackend{})
	defer cleanup()

	wsURL := "ws" + strings.TrimPrefix(srvURL, "http") + "/jsonrpc/ws"
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, resp, err := cws.Dial(ctx, wsURL, nil)
	if err == nil {
		t.Fatal("expected unauthorized dial to fail")
	}
	if resp != nil && resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestGatewayVersion(t *testing.T) {
	_, srvURL, cleanup := newTestGateway(t, &fakeBackend{})
	defer cleanup()

	conn := wsConnect(t, srvURL)
	defer conn.Close(cws.StatusNormalClosure, "")

	resp := rpcCall(t, conn, 1, "system.getVersion", nil)
	result, ok := resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("expected result, got %v", resp)
	}
	if result["version"] != "1.0.0" || result["buildType"] != "test" {
		t.Errorf("result = %v", result)
	}
}

func TestGatewayForwardsOperations(t *testing.T) {
	backend := &fakeBackend{
		cancelled: map[string]bool{"t-1": true},
		update:    &common.UpdateInfo{Tag: "v1.3.0"},
		releases:  []common.ReleaseVersion{{Tag: "v1.3.0"}},
	}
	_, srvURL, cleanup := newTestGateway(t, backend)
	defer cleanup()

	conn := wsConnect(t, srvURL)
	defer conn.Close(cws.StatusNormalClosure, "")

	resp := rpcCall(t, conn, 1, string(common.UPDATE_CREATE_TIMER), map[string]any{
		"action":     "lock",
		"targetTime": time.Now().Add(time.Hour).Format(time.RFC3339),
	})
	result, ok := resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("create_timer: %v", resp)
	}
	if result["id"] != "t-new" {
		t.Errorf("create_timer id = %v", result["id"])
	}

	resp = rpcCall(t, conn, 2, string(common.UPDATE_LIST_TIMERS), nil)
	if _, ok := resp["result"].(map[string]any); !ok {
		t.Fatalf("list_timers: %v", resp)
	}

	resp = rpcCall(t, conn, 3, string(common.UPDATE_CANCEL_TIMER), map[string]any{"id": "t-1"})
	result, ok = resp["result"].(map[string]any)
	if !ok || result["cancelled"] != true {
		t.Fatalf("cancel_timer: %v", resp)
	}

	resp = rpcCall(t, conn, 4, string(common.UPDATE_RESOLVE_PRE_ACTION), map[string]any{
		"promptId": "p-1",
		"decision": "snooze_10",
	})
	result, ok = resp["result"].(map[string]any)
	if !ok || result["resolved"] != true {
		t.Fatalf("resolve_pre_action: %v", resp)
	}

	resp = rpcCall(t, conn, 5, string(common.UPDATE_CHECK_CHANNEL_UPDATE), map[string]any{
		"currentVersion": "1.2.0",
		"channel":        "main",
	})
	result, ok = resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("check_channel_update: %v", resp)
	}
	if update, ok := result["update"].(map[string]any); !ok || update["tag"] != "v1.3.0" {
		t.Errorf("check_channel_update result = %v", result)
	}

	resp = rpcCall(t, conn, 6, string(common.UPDATE_INSTALL_CHANNEL_UPDATE), map[string]any{"channel": "main"})
	if _, ok := resp["result"].(map[string]any); !ok {
		t.Fatalf("install_channel_update: %v", resp)
	}

	resp = rpcCall(t, conn, 7, string(common.UPDATE_INSTALL_RELEASE), map[string]any{"tag": "v1.2.0"})
	if _, ok := resp["result"].(map[string]any); !ok {
		t.Fatalf("install_release: %v", resp)
	}

	resp = rpcCall(t, conn, 8, string(common.UPDATE_LIST_RELEASE_VERSIONS), nil)
	if _, ok := resp["result"].(map[string]any); !ok {
		t.Fatalf("list_release_versions: %v", resp)
	}
}

func TestGatewayValidatesParams(t *testing.T) {
	_, srvURL, cleanup := newTestGateway(t, &fakeBackend{})
	defer cleanup()

	conn := wsConnect(t, srvURL)
	defer conn.Close(cws.StatusNormalClosure, "")

	resp := rpcCall(t, conn, 1, string(common.UPDATE_CREATE_TIMER), map[string]any{
		"action": "hibernate",
	})
	if resp["error"] == nil {
		t.Fatalf("expected error for invalid action, got %v", resp)
	}

	resp = rpcCall(t, conn, 2, string(common.UPDATE_CHECK_CHANNEL_UPDATE), map[string]any{
		"channel": "nightly",
	})
	if resp["error"] == nil {
		t.Fatalf("expected error for invalid channel, got %v", resp)
	}
}

func TestGatewaySurfacesBackendErrors(t *testing.T) {
	_, srvURL, cleanup := newTestGateway(t, &fakeBackend{err: errors.New("bridge unavailable")})
	defer cleanup()

	conn := wsConnect(t, srvURL)
	defer conn.Close(cws.StatusNormalClosure, "")

	resp := rpcCall(t, conn, 1, string(common.UPDATE_LIST_TIMERS), nil)
	errObj, ok := resp["error"].(map[string]any)
	if !ok {
		t.Fatalf("expected error, got %v", resp)
	}
	if msg, _ := errObj["message"].(string); !strings.Contains(msg, "bridge unavailable") {
		t.Errorf("error message = %v", errObj)
	}
}

func TestGatewayPushesPreActionWarnings(t *testing.T) {
	g, srvURL, cleanup := newTestGateway(t, &fakeBackend{})
	defer cleanup()

	events := &fakeEvents{}
	g.BindEvents(events)
	h, ok := events.handlers[common.EVENT_PRE_ACTION_WARNING]
	if !ok {
		t.Fatal("pre-action handler not registered")
	}

	conn := wsConnect(t, srvURL)
	defer conn.Close(cws.StatusNormalClosure, "")

	rpcCall(t, conn, 1, "system.getVersion", nil)
	deadline := time.Now().Add(2 * time.Second)
	for g.notifier.Count() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if g.notifier.Count() == 0 {
		t.Fatal("connection never registered for pushes")
	}

	raw, _ := json.Marshal(common.PreActionWarning{
		PromptId:         "p-1",
		TimerId:          "t-1",
		Action:           common.ActionShutdown,
		WarningMinutes:   5,
		CountdownSeconds: 300,
		SnoozeMinutes:    10,
	})
	if err := h.Handle(raw); err != nil {
		t.Fatalf("Handle: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, data, err := conn.Read(ctx)
	if err != nil {
		t.Fatalf("read push: %v", err)
	}
	var note struct {
		Method string                  `json:"method"`
		Params common.PreActionWarning `json:"params"`
	}
	if err := json.Unmarshal(data, &note); err != nil {
		t.Fatalf("unmarshal push: %v", err)
	}
	if note.Method != string(common.EVENT_PRE_ACTION_WARNING) {
		t.Errorf("method = %q", note.Method)
	}
	if note.Params.PromptId != "p-1" || note.Params.CountdownSeconds != 300 {
		t.Errorf("params = %+v", note.Params)
	}
}
