package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	cmdCommon "github.com/lockpilot/lockpilot/cmd/common"
	"github.com/lockpilot/lockpilot/common"
	"github.com/lockpilot/lockpilot/pkg/pilotcli"
)

const WatchDescription = `Attaches to the backend event stream and renders a countdown prompt for
every pre-action warning. The prompt offers run-now, snooze, skip and
continue; leaving it unanswered lets the action fire as scheduled.`

var watchFlags = []cli.Flag{
	uriFlag,
}

func watch(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	client, err := newClient(ctx, "watch")
	if err != nil {
		return nil
	}

	client.AddHandler(
		common.EVENT_PRE_ACTION_WARNING,
		pilotcli.NewPreActionWarningHandler(func(w *common.PreActionWarning) error {
			// resolve over a fresh connection; this one stays on the
			// event stream
			go func() {
				if err := runWarningPrompt(w); err != nil {
					cmdCommon.PrintRuntimeErr(ctx, "watch", "resolve_pre_action", err)
				}
			}()
			return nil
		}),
	)

	fmt.Println("Watching for pre-action warnings, press ctrl-c to stop.")
	if err := client.Listen(); err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "watch", "listen", err)
	}
	return nil
}

func runWarningPrompt(w *common.PreActionWarning) error {
	decision := promptDecision(w)
	client, err := pilotcli.NewClientWithURI(daemonURI)
	if err != nil {
		return err
	}
	defer client.Disconnect()
	resolved, err := client.ResolvePreAction(w.PromptId, decision)
	if err != nil {
		return err
	}
	if !resolved {
		fmt.Println("lockpilot: prompt already resolved")
	}
	return nil
}
