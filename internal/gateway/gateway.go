// Package gateway serves the webview UI over JSON-RPC 2.0 on a
// loopback WebSocket. Every bridge operation is exposed as an RPC
// method and backend pre-action warnings are pushed to connected UIs
// as notifications.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"sync"

	cws "github.com/coder/websocket"
	"github.com/creachadair/jrpc2"

	"github.com/lockpilot/lockpilot/common"
	"github.com/lockpilot/lockpilot/pkg/logger"
	"github.com/lockpilot/lockpilot/pkg/pilotcli"
)

// DefaultAddr is the loopback bind used when Config.Addr is empty.
const DefaultAddr = "127.0.0.1:3942"

// Backend is the slice of the bridge client the gateway forwards to.
// *pilotcli.Client satisfies it.
type Backend interface {
	CreateTimer(params *common.CreateTimerParams) (*common.TimerInfo, error)
	ListTimers() ([]*common.TimerInfo, error)
	CancelTimer(timerId string) (bool, error)
	ResolvePreAction(promptId string, decision common.PreActionDecision) (bool, error)
	CheckChannelUpdate(currentVersion string, channel common.UpdateChannel) (*common.UpdateInfo, error)
	InstallChannelUpdate(channel common.UpdateChannel) (string, error)
	InstallRelease(tag string) (string, error)
	ListReleaseVersions() ([]common.ReleaseVersion, error)
}

// EventSource registers handlers for pushed bridge events.
// *pilotcli.Client satisfies it.
type EventSource interface {
	AddHandler(t common.UpdateType, h pilotcli.Handler)
}

// Config holds gateway settings.
type Config struct {
	// Addr is the listen address, loopback by default.
	Addr string
	// Secret is the auth token. Empty rejects every connection.
	Secret string
	// Version, Commit and BuildType describe the running build.
	Version   string
	Commit    string
	BuildType string
}

// Gateway accepts webview connections and runs one jrpc2 server per
// connection.
type Gateway struct {
	cfg      *Config
	backend  Backend
	notifier *Notifier
	log      logger.Logger
	server   *http.Server
	mu       sync.Mutex
}

// New creates a gateway forwarding to the given backend.
func New(cfg *Config, backend Backend, l logger.Logger) *Gateway {
	if l == nil {
		l = logger.NewNopLogger()
	}
	return &Gateway{
		cfg:      cfg,
		backend:  backend,
		notifier: NewNotifier(l),
		log:      l,
	}
}

// Notifier exposes the broadcast set, mainly for tests.
func (g *Gateway) Notifier() *Notifier {
	return g.notifier
}

// BindEvents subscribes to backend pre-action warnings and rebroadcasts
// them to every connected UI.
func (g *Gateway) BindEvents(events EventSource) {
	events.AddHandler(common.EVENT_PRE_ACTION_WARNING, pilotcli.NewPreActionWarningHandler(func(w *common.PreActionWarning) error {
		g.log.Info("pushing pre-action warning %s to %d client(s)", w.PromptId, g.notifier.Count())
		g.notifier.Broadcast(string(common.EVENT_PRE_ACTION_WARNING), w)
		return nil
	}))
}

func (g *Gateway) handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/jsonrpc/ws", requireToken(g.cfg.Secret, http.HandlerFunc(g.handleWS)))
	return mux
}

func (g *Gateway) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := cws.Accept(w, r, nil)
	if err != nil {
		g.log.Error("websocket accept: %v", err)
		return
	}
	ch := &wsChannel{conn: conn, ctx: r.Context()}
	srv := jrpc2.NewServer(g.methods(), &jrpc2.ServerOptions{AllowPush: true})
	srv.Start(ch)
	g.notifier.Register(srv)
	defer g.notifier.Unregister(srv)
	if err := srv.Wait(); err != nil {
		g.log.Info("ui connection closed: %v", err)
	}
}

func (g *Gateway) addr() string {
	if g.cfg.Addr == "" {
		return DefaultAddr
	}
	return g.cfg.Addr
}

// Start serves until Shutdown is called.
func (g *Gateway) Start() error {
	g.mu.Lock()
	g.server = &http.Server{
		Addr:    g.addr(),
		Handler: g.handler(),
	}
	g.mu.Unlock()

	g.log.Info("gateway listening on %s", g.addr())
	err := g.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	if err != nil {
		return fmt.Errorf("gateway: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the gateway.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.server == nil {
		return nil
	}
	return g.server.Shutdown(ctx)
}
