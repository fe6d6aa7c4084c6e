package cmd

import (
	"github.com/urfave/cli"

	"github.com/lockpilot/lockpilot/cmd/common"
	"github.com/lockpilot/lockpilot/pkg/pilotcli"
)

var daemonURI string

var uriFlag = cli.StringFlag{
	Name:        "uri, u",
	Usage:       "bridge uri to connect to (e.g. unix:///tmp/lockpilot.sock or tcp://localhost:3941)",
	Destination: &daemonURI,
}

// newClient connects to the backend bridge, printing a runtime error on
// failure so actions can simply bail out with nil.
func newClient(ctx *cli.Context, cmd string) (*pilotcli.Client, error) {
	client, err := pilotcli.NewClientWithURI(daemonURI)
	if err != nil {
		common.PrintRuntimeErr(ctx, cmd, "new_client", err)
		return nil, err
	}
	return client, nil
}
