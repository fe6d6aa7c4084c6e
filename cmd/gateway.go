package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/urfave/cli"

	cmdCommon "github.com/lockpilot/lockpilot/cmd/common"
	"github.com/lockpilot/lockpilot/internal/gateway"
	"github.com/lockpilot/lockpilot/pkg/logger"
	"github.com/lockpilot/lockpilot/pkg/pilotcli"
	"github.com/lockpilot/lockpilot/pkg/pilotlib"
)

const GatewayDescription = `Runs the webview gateway: a loopback JSON-RPC 2.0 WebSocket endpoint
the UI connects to. Bridge operations are exposed as RPC methods and
pre-action warnings are pushed to every connected UI. Connections
authenticate with the gateway token (kept in the OS keyring).`

var (
	gatewayAddr       string
	gatewayPrintToken bool

	gatewayFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "addr, b",
			Usage:       "listen address",
			Value:       gateway.DefaultAddr,
			Destination: &gatewayAddr,
		},
		cli.BoolFlag{
			Name:        "print-token",
			Usage:       "print the gateway token and exit (default: false)",
			Destination: &gatewayPrintToken,
		},
		uriFlag,
	}
)

// gatewayLogger fans log output to stderr and gateway.log in the config
// dir; stderr alone when the file cannot be opened.
func gatewayLogger() logger.Logger {
	console := logger.NewStandardLogger(log.New(os.Stderr, "", log.LstdFlags))
	dir, err := pilotlib.ConfigDir()
	if err != nil {
		return console
	}
	f, err := os.OpenFile(filepath.Join(dir, "gateway.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return console
	}
	return logger.NewMultiLogger(console, logger.NewFileLogger(f))
}

func runGateway(ctx *cli.Context, bArgs BuildArgs) error {
	l := gatewayLogger()
	defer l.Close()

	token, err := gateway.EnsureToken(l)
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "gateway", "ensure_token", err)
		return nil
	}
	if gatewayPrintToken {
		fmt.Println(token)
		return nil
	}

	backend, err := newClient(ctx, "gateway")
	if err != nil {
		return nil
	}
	defer backend.Disconnect()

	// second connection dedicated to the event stream
	events, err := pilotcli.NewClientWithURI(daemonURI)
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "gateway", "event_client", err)
		return nil
	}

	g := gateway.New(&gateway.Config{
		Addr:      gatewayAddr,
		Secret:    token,
		Version:   bArgs.Version,
		Commit:    bArgs.Commit,
		BuildType: bArgs.BuildType,
	}, backend, l)
	g.BindEvents(events)

	go func() {
		if err := events.Listen(); err != nil {
			l.Error("event stream: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	done := make(chan error, 1)
	go func() {
		done <- g.Start()
	}()

	select {
	case err := <-done:
		if err != nil {
			cmdCommon.PrintRuntimeErr(ctx, "gateway", "start", err)
		}
	case <-stop:
		l.Info("shutting down gateway")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := g.Shutdown(shutdownCtx); err != nil {
			l.Error("shutdown: %v", err)
		}
		_ = events.Disconnect()
		<-done
	}
	return nil
}
