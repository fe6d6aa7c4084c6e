package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	cmdCommon "github.com/lockpilot/lockpilot/cmd/common"
)

const CancelDescription = `Cancels an active timer by id. Recurring timers stop repeating; a timer
mid pre-action countdown is cancelled on the backend as well.

Example:
        lockpilot cancel 4f9a21c8
`

var (
	cancelForce bool

	cancelFlags = []cli.Flag{
		cli.BoolFlag{
			Name:        "force, f",
			Usage:       "skip the confirmation prompt (default: false)",
			Destination: &cancelForce,
		},
		uriFlag,
	}
)

func cancel(ctx *cli.Context) error {
	id := ctx.Args().First()
	if id == "help" || id == "" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if !confirm(operation("cancel"), cancelForce) {
		return nil
	}
	client, err := newClient(ctx, "cancel")
	if err != nil {
		return nil
	}
	defer client.Disconnect()

	cancelled, err := client.CancelTimer(id)
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "cancel", "cancel_timer", err)
		return nil
	}
	if !cancelled {
		fmt.Printf("lockpilot: no timer with id %s\n", id)
		return nil
	}
	fmt.Printf("Cancelled timer %s\n", id)
	return nil
}
