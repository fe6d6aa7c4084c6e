package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/urfave/cli"

	cmdCommon "github.com/lockpilot/lockpilot/cmd/common"
	"github.com/lockpilot/lockpilot/common"
	"github.com/lockpilot/lockpilot/pkg/pilotlib"
)

const CreateDescription = `Schedules a system action at a target time.

The target is given either as a delay (--in 45m, --in 2h30m) or as an
absolute time (--at 22:30, --at "2026-09-01 08:00", or RFC3339). Timers
may repeat via --repeat and warn before firing via --warn.

Examples:
        lockpilot create --in 45m
        lockpilot create -a shutdown --at 23:00 --warn 5,10
        lockpilot create -a popup --at 09:00 --repeat weekdays -m "standup"
        lockpilot create --at 21:00 --repeat days --days Mon,Wed,Fri
`

var (
	createAction  string
	createIn      string
	createAt      string
	createMessage string
	createWarn    string
	createRepeat  string
	createDays    string
	createHours   uint
	createMinutes uint

	createFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "action, a",
			Usage:       "action to schedule: lock, shutdown, reboot or popup",
			Value:       "lock",
			Destination: &createAction,
		},
		cli.StringFlag{
			Name:        "in, i",
			Usage:       "delay until the action fires (e.g. 45m, 2h30m)",
			Destination: &createIn,
		},
		cli.StringFlag{
			Name:        "at, t",
			Usage:       "absolute target time (22:30, \"2026-09-01 08:00\" or RFC3339)",
			Destination: &createAt,
		},
		cli.StringFlag{
			Name:        "message, m",
			Usage:       "message shown by popup actions and warnings",
			Destination: &createMessage,
		},
		cli.StringFlag{
			Name:        "warn, w",
			Usage:       "pre-action warning minutes, comma separated (allowed: 1, 5, 10)",
			Destination: &createWarn,
		},
		cli.StringFlag{
			Name:        "repeat, r",
			Usage:       "recurrence preset: daily, weekdays, days, hours or minutes",
			Destination: &createRepeat,
		},
		cli.StringFlag{
			Name:        "days",
			Usage:       "weekday list for --repeat days (e.g. Mon,Wed,Fri)",
			Destination: &createDays,
		},
		cli.UintFlag{
			Name:        "every-hours",
			Usage:       "interval for --repeat hours (1-24)",
			Destination: &createHours,
		},
		cli.UintFlag{
			Name:        "every-minutes",
			Usage:       "interval for --repeat minutes (1-1440)",
			Destination: &createMinutes,
		},
		uriFlag,
	}
)

var (
	errNoTarget   = errors.New("either --in or --at is required")
	errBothTarget = errors.New("--in and --at are mutually exclusive")
)

// parseTargetTime resolves the --in / --at flags against now. A bare
// clock time that already passed today rolls over to tomorrow.
func parseTargetTime(in, at string, now time.Time) (time.Time, error) {
	switch {
	case in != "" && at != "":
		return time.Time{}, errBothTarget
	case in != "":
		d, err := time.ParseDuration(in)
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid delay %q: %w", in, err)
		}
		if d <= 0 {
			return time.Time{}, fmt.Errorf("delay %q must be positive", in)
		}
		return now.Add(d), nil
	case at != "":
		if t, err := time.Parse(time.RFC3339, at); err == nil {
			return t, nil
		}
		if t, err := time.ParseInLocation("2006-01-02 15:04", at, now.Location()); err == nil {
			return t, nil
		}
		clock, err := time.ParseInLocation("15:04", at, now.Location())
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid target time %q", at)
		}
		target := time.Date(now.Year(), now.Month(), now.Day(),
			clock.Hour(), clock.Minute(), 0, 0, now.Location())
		if !target.After(now) {
			target = target.AddDate(0, 0, 1)
		}
		return target, nil
	default:
		return time.Time{}, errNoTarget
	}
}

func parseWarnMinutes(s string) ([]uint, error) {
	if s == "" {
		return nil, nil
	}
	var out []uint
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid warning minutes %q", part)
		}
		out = append(out, uint(v))
	}
	return out, nil
}

// buildRecurrence assembles the wire recurrence config from the repeat
// flags. An empty repeat flag means a one-time timer.
func buildRecurrence(repeat, days string, hours, minutes uint) (*common.RecurrenceConfig, error) {
	switch repeat {
	case "":
		return nil, nil
	case "daily":
		return &common.RecurrenceConfig{Preset: common.RecurDaily}, nil
	case "weekdays":
		return &common.RecurrenceConfig{Preset: common.RecurWeekdays}, nil
	case "days", string(common.RecurSpecificDays):
		var list []string
		for _, d := range strings.Split(days, ",") {
			if d = strings.TrimSpace(d); d != "" {
				list = append(list, d)
			}
		}
		return &common.RecurrenceConfig{
			Preset:     common.RecurSpecificDays,
			DaysOfWeek: list,
		}, nil
	case "hours", string(common.RecurEveryNHours):
		return &common.RecurrenceConfig{
			Preset:        common.RecurEveryNHours,
			IntervalHours: hours,
		}, nil
	case "minutes", string(common.RecurEveryNMinutes):
		return &common.RecurrenceConfig{
			Preset:          common.RecurEveryNMinutes,
			IntervalMinutes: minutes,
		}, nil
	default:
		return nil, fmt.Errorf("unknown recurrence preset %q", repeat)
	}
}

func create(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	now := time.Now()
	target, err := parseTargetTime(createIn, createAt, now)
	if err != nil {
		return cmdCommon.PrintErrWithCmdHelp(ctx, err)
	}
	warn, err := parseWarnMinutes(createWarn)
	if err != nil {
		return cmdCommon.PrintErrWithCmdHelp(ctx, err)
	}
	recurrence, err := buildRecurrence(createRepeat, createDays, createHours, createMinutes)
	if err != nil {
		return cmdCommon.PrintErrWithCmdHelp(ctx, err)
	}

	client, err := newClient(ctx, "create")
	if err != nil {
		return nil
	}
	defer client.Disconnect()

	info, err := client.CreateTimer(&common.CreateTimerParams{
		Action:            common.TimerAction(createAction),
		TargetTime:        target.Format(time.RFC3339),
		Recurrence:        recurrence,
		PreWarningMinutes: warn,
		Message:           createMessage,
	})
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "create", "create_timer", err)
		return nil
	}

	use12h := timeFormatPref() == pilotlib.TimeFormat12h
	fmt.Printf("Scheduled %s at %s (%s)\n",
		pilotlib.ActionLabel(info.Action),
		pilotlib.FormatTarget(info.TargetTime, now, use12h),
		pilotlib.FormatRemaining(info.TargetTime, now))
	fmt.Printf("Repeats: %s\n", pilotlib.RecurrenceLabel(info.Recurrence))
	if len(info.PreWarningMinutes) > 0 {
		fmt.Printf("Warnings: %s\n", pilotlib.WarningLabel(info.PreWarningMinutes))
	}
	fmt.Printf("Timer id: %s\n", info.Id)
	return nil
}
