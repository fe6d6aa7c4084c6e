package cmd

import (
	"fmt"
	"runtime"

	"github.com/urfave/cli"

	"github.com/lockpilot/lockpilot/cmd/common"
)

// BuildArgs carries build-time metadata injected via ldflags.
type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "lockpilot",
		HelpName:              "lockpilot",
		Usage:                 "Schedule lock, shutdown, reboot and popup timers.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "lockpilot <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Commands: []cli.Command{
			{
				Name:                   "create",
				Aliases:                []string{"c"},
				Usage:                  "schedule a new timer",
				Action:                 create,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            CreateDescription,
				UseShortOptionHandling: true,
				Flags:                  createFlags,
			},
			{
				Name:                   "list",
				Aliases:                []string{"l"},
				Usage:                  "display the active timers",
				Action:                 list,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            ListDescription,
				UseShortOptionHandling: true,
				Flags:                  lsFlags,
			},
			{
				Name:                   "cancel",
				Aliases:                []string{"x"},
				Usage:                  "cancel a timer by id",
				Action:                 cancel,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            CancelDescription,
				UseShortOptionHandling: true,
				Flags:                  cancelFlags,
			},
			{
				Name:                   "watch",
				Aliases:                []string{"w"},
				Usage:                  "answer pre-action warnings interactively",
				Action:                 watch,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Description:            WatchDescription,
				UseShortOptionHandling: true,
				Flags:                  watchFlags,
			},
			{
				Name:               "update",
				Usage:              "check, install and roll back updates",
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        UpdateDescription,
				Subcommands: []cli.Command{
					{
						Name:   "check",
						Usage:  "check the channel for a newer version",
						Action: updateCheck,
						Flags:  updateFlags,
					},
					{
						Name:   "install",
						Usage:  "install the latest channel version",
						Action: updateInstall,
						Flags:  updateFlags,
					},
					{
						Name:   "versions",
						Usage:  "list installable published versions",
						Action: updateVersions,
						Flags:  updateFlags,
					},
					{
						Name:      "rollback",
						Usage:     "install an exact published tag",
						ArgsUsage: "<tag>",
						Action:    updateRollback,
						Flags:     updateFlags,
					},
				},
			},
			{
				Name:               "prefs",
				Usage:              "read and write local preference flags",
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        PrefsDescription,
				Subcommands: []cli.Command{
					{
						Name:      "get",
						Usage:     "print one preference, or all when no key is given",
						ArgsUsage: "[key]",
						Action:    prefsGet,
					},
					{
						Name:      "set",
						Usage:     "store a preference value",
						ArgsUsage: "<key> <value>",
						Action:    prefsSet,
					},
				},
			},
			{
				Name:               "ui",
				Usage:              "shared ui mirroring and drift checks",
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        UIDescription,
				Subcommands: []cli.Command{
					{
						Name:   "sync",
						Usage:  "mirror the shared ui into the platform folders",
						Action: uiSync,
						Flags:  uiFlags,
					},
					{
						Name:   "check",
						Usage:  "report drift, exit non-zero when out of sync",
						Action: uiCheck,
						Flags:  uiFlags,
					},
				},
			},
			{
				Name:               "gateway",
				Usage:              "run the webview JSON-RPC gateway",
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Description:        GatewayDescription,
				Flags:              gatewayFlags,
				Action: func(ctx *cli.Context) error {
					return runGateway(ctx, bArgs)
				},
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints the installed version of lockpilot",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:                 list,
		Flags:                  lsFlags,
		UseShortOptionHandling: true,
		HideHelp:               true,
		HideVersion:            true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
