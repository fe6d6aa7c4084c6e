package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/urfave/cli"

	cmdCommon "github.com/lockpilot/lockpilot/cmd/common"
	"github.com/lockpilot/lockpilot/common"
	"github.com/lockpilot/lockpilot/pkg/pilotlib"
)

const ListDescription = `Displays the active timers with their target time, time remaining and
recurrence. Timers are sorted by target time, soonest first.`

var (
	listWatch    bool
	listInterval uint

	lsFlags = []cli.Flag{
		cli.BoolFlag{
			Name:        "watch, f",
			Usage:       "refresh the list periodically (default: false)",
			Destination: &listWatch,
		},
		cli.UintFlag{
			Name:        "interval, n",
			Usage:       "refresh interval in seconds for --watch",
			Value:       5,
			Destination: &listInterval,
		},
		uriFlag,
	}
)

func list(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	client, err := newClient(ctx, "list")
	if err != nil {
		return nil
	}
	defer client.Disconnect()

	use12h := timeFormatPref() == pilotlib.TimeFormat12h
	for {
		timers, err := client.ListTimers()
		if err != nil {
			cmdCommon.PrintRuntimeErr(ctx, "list", "list_timers", err)
			return nil
		}
		fmt.Println(renderTimerTable(timers, time.Now(), use12h))
		if !listWatch {
			return nil
		}
		time.Sleep(time.Duration(listInterval) * time.Second)
	}
}

func renderTimerTable(timers []*common.TimerInfo, now time.Time, use12h bool) string {
	if len(timers) == 0 {
		return "lockpilot: no active timers"
	}
	sort.Slice(timers, func(i, j int) bool {
		return timers[i].TargetTime.Before(timers[j].TargetTime)
	})
	txt := "Here are your timers:"
	txt += "\n\n---------------------------------------------------------------------------------"
	txt += "\n|Num|  Action  |        Target        | Remaining |     Repeats     |    Id    |"
	txt += "\n|---|----------|----------------------|-----------|-----------------|----------|"
	for i, tm := range timers {
		id := tm.Id
		if len(id) > 8 {
			id = id[:8]
		}
		txt += fmt.Sprintf("\n| %d |%s|%s|%s|%s|%s|",
			i+1,
			cmdCommon.Beaut(pilotlib.ActionLabel(tm.Action), 10),
			cmdCommon.Beaut(pilotlib.FormatTarget(tm.TargetTime, now, use12h), 22),
			cmdCommon.Beaut(pilotlib.FormatRemaining(tm.TargetTime, now), 11),
			cmdCommon.Beaut(pilotlib.RecurrenceLabel(tm.Recurrence), 17),
			cmdCommon.Beaut(id, 10),
		)
	}
	txt += "\n---------------------------------------------------------------------------------"
	return txt
}
