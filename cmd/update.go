package cmd

import (
	"fmt"

	"github.com/urfave/cli"

	cmdCommon "github.com/lockpilot/lockpilot/cmd/common"
	"github.com/lockpilot/lockpilot/common"
	"github.com/lockpilot/lockpilot/pkg/pilotlib"
)

const UpdateDescription = `Checks for, installs and rolls back application updates.

The release channel comes from the update_channel preference unless
overridden with --channel. Rollback installs an exact published tag
from "lockpilot update versions".

Examples:
        lockpilot update check
        lockpilot update install --channel dev
        lockpilot update rollback v1.2.0
`

var (
	updateChannel string
	updateForce   bool

	updateFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "channel, c",
			Usage:       "release channel: main or dev (default: update_channel preference)",
			Destination: &updateChannel,
		},
		cli.BoolFlag{
			Name:        "yes, y",
			Usage:       "skip the confirmation prompt (default: false)",
			Destination: &updateForce,
		},
		uriFlag,
	}
)

// resolveChannel picks the flag value when given, otherwise the stored
// preference.
func resolveChannel() (common.UpdateChannel, error) {
	if updateChannel != "" {
		ch := common.UpdateChannel(updateChannel)
		if !ch.Valid() {
			return "", fmt.Errorf("unknown channel %q (allowed: main, dev)", updateChannel)
		}
		return ch, nil
	}
	prefs, err := openPrefs()
	if err != nil {
		return common.ChannelMain, nil
	}
	defer prefs.Close()
	v, err := prefs.Get(pilotlib.PrefUpdateChannel)
	if err != nil {
		return common.ChannelMain, nil
	}
	return common.UpdateChannel(v), nil
}

func updateCheck(ctx *cli.Context) error {
	channel, err := resolveChannel()
	if err != nil {
		return cmdCommon.PrintErrWithCmdHelp(ctx, err)
	}
	client, err := newClient(ctx, "update")
	if err != nil {
		return nil
	}
	defer client.Disconnect()

	update, err := client.CheckChannelUpdate(ctx.App.Version, channel)
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "update", "check_channel_update", err)
		return nil
	}
	if update == nil {
		fmt.Printf("You are on the latest %s version (%s).\n", channel, ctx.App.Version)
		return nil
	}
	fmt.Printf("Update available on %s: %s (%s)\n", channel, update.Name, update.Tag)
	if update.PublishedAt != "" {
		fmt.Printf("Published: %s\n", update.PublishedAt)
	}
	if update.Notes != "" {
		fmt.Printf("\n%s\n", update.Notes)
	}
	fmt.Println("\nRun \"lockpilot update install\" to install it.")
	return nil
}

func updateInstall(ctx *cli.Context) error {
	channel, err := resolveChannel()
	if err != nil {
		return cmdCommon.PrintErrWithCmdHelp(ctx, err)
	}
	if !confirm(operation("update install"), updateForce) {
		return nil
	}
	client, err := newClient(ctx, "update")
	if err != nil {
		return nil
	}
	defer client.Disconnect()

	msg, err := client.InstallChannelUpdate(channel)
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "update", "install_channel_update", err)
		return nil
	}
	fmt.Println(msg)
	return nil
}

func updateVersions(ctx *cli.Context) error {
	client, err := newClient(ctx, "update")
	if err != nil {
		return nil
	}
	defer client.Disconnect()

	releases, err := client.ListReleaseVersions()
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "update", "list_release_versions", err)
		return nil
	}
	if len(releases) == 0 {
		fmt.Println("lockpilot: no published versions found")
		return nil
	}
	txt := "Published versions (newest first):"
	txt += "\n\n--------------------------------------------------"
	txt += "\n|Num|    Tag     |          Published           |"
	txt += "\n|---|------------|------------------------------|"
	for i, r := range releases {
		txt += fmt.Sprintf("\n| %d |%s|%s|",
			i+1,
			cmdCommon.Beaut(r.Tag, 12),
			cmdCommon.Beaut(r.PublishedAt, 30),
		)
	}
	txt += "\n--------------------------------------------------"
	fmt.Println(txt)
	return nil
}

func updateRollback(ctx *cli.Context) error {
	tag := ctx.Args().First()
	if tag == "" || tag == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if !confirm(operation("rollback"), updateForce) {
		return nil
	}
	client, err := newClient(ctx, "update")
	if err != nil {
		return nil
	}
	defer client.Disconnect()

	msg, err := client.InstallRelease(tag)
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "update", "install_release", err)
		return nil
	}
	fmt.Println(msg)
	return nil
}
