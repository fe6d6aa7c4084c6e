package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/urfave/cli"

	cmdCommon "github.com/lockpilot/lockpilot/cmd/common"
	"github.com/lockpilot/lockpilot/pkg/pilotlib"
)

const PrefsDescription = `Reads and writes the local preference flags.

Known keys:
        update_channel  release track for updates (main, dev)
        time_format     clock style for timer rendering (24h, 12h)

Examples:
        lockpilot prefs get update_channel
        lockpilot prefs set time_format 12h
`

func openPrefs() (*pilotlib.Prefs, error) {
	dir, err := pilotlib.ConfigDir()
	if err != nil {
		return nil, err
	}
	return pilotlib.OpenPrefs(filepath.Join(dir, "prefs.db"))
}

// timeFormatPref returns the stored clock style, defaulting to 24h when
// the store is unreadable.
func timeFormatPref() string {
	prefs, err := openPrefs()
	if err != nil {
		return pilotlib.TimeFormat24h
	}
	defer prefs.Close()
	v, err := prefs.Get(pilotlib.PrefTimeFormat)
	if err != nil {
		return pilotlib.TimeFormat24h
	}
	return v
}

func prefsGet(ctx *cli.Context) error {
	key := ctx.Args().First()
	if key == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	prefs, err := openPrefs()
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "prefs", "open", err)
		return nil
	}
	defer prefs.Close()

	if key == "" {
		for _, k := range prefs.Keys() {
			v, err := prefs.Get(k)
			if err != nil {
				cmdCommon.PrintRuntimeErr(ctx, "prefs", "get", err)
				return nil
			}
			fmt.Printf("%s = %s\n", k, v)
		}
		return nil
	}
	v, err := prefs.Get(key)
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "prefs", "get", err)
		return nil
	}
	fmt.Println(v)
	return nil
}

func prefsSet(ctx *cli.Context) error {
	key := ctx.Args().Get(0)
	value := ctx.Args().Get(1)
	if key == "help" || key == "" || value == "" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	prefs, err := openPrefs()
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "prefs", "open", err)
		return nil
	}
	defer prefs.Close()

	if err := prefs.Set(key, value); err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "prefs", "set", err)
		return nil
	}
	fmt.Printf("%s = %s\n", key, value)
	return nil
}
