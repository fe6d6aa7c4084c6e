package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/afero"
	"github.com/urfave/cli"

	cmdCommon "github.com/lockpilot/lockpilot/cmd/common"
	"github.com/lockpilot/lockpilot/internal/mirror"
	"github.com/lockpilot/lockpilot/pkg/logger"
)

const UIDescription = `Repo tooling for the shared UI tree. "ui sync" mirrors the shared
source directory into each platform app folder (copy-with-delete);
"ui check" reports drift between them and exits non-zero when the trees
diverge, which makes it usable as a pre-commit check.

Examples:
        lockpilot ui sync
        lockpilot ui check --src shared-ui --dest apps/windows/ui
`

var (
	uiSrc     string
	uiDests   cli.StringSlice
	uiExclude cli.StringSlice
	uiDryRun  bool
	uiNoTool  bool

	uiFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "src, s",
			Usage:       "shared ui source directory",
			Value:       "shared-ui",
			Destination: &uiSrc,
		},
		cli.StringSliceFlag{
			Name:  "dest, d",
			Usage: "platform target directory (repeatable)",
			Value: &uiDests,
		},
		cli.StringSliceFlag{
			Name:  "exclude, x",
			Usage: "entry name to skip on both sides (repeatable)",
			Value: &uiExclude,
		},
		cli.BoolFlag{
			Name:        "dry-run, n",
			Usage:       "log planned changes without writing (default: false)",
			Destination: &uiDryRun,
		},
		cli.BoolFlag{
			Name:        "no-tool",
			Usage:       "skip rsync/robocopy and always use the built-in copier (default: false)",
			Destination: &uiNoTool,
		},
	}
)

func uiTargets() []string {
	if len(uiDests) > 0 {
		return uiDests
	}
	return []string{"apps/windows/ui", "apps/macos/ui"}
}

func uiOptions() *mirror.Options {
	exclude := []string(uiExclude)
	if len(exclude) == 0 {
		exclude = []string{".git"}
	}
	return &mirror.Options{
		Exclude:    exclude,
		DryRun:     uiDryRun,
		PreferTool: !uiNoTool,
	}
}

func uiSync(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	l := logger.NewStandardLogger(log.New(os.Stderr, "", log.LstdFlags))
	defer l.Close()

	err := mirror.Mirror(afero.NewOsFs(), uiSrc, uiTargets(), uiOptions(), l)
	if err != nil {
		cmdCommon.PrintRuntimeErr(ctx, "ui", "sync", err)
		return cli.NewExitError("", 1)
	}
	fmt.Println("Shared UI mirrored.")
	return nil
}

func uiCheck(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	fsys := afero.NewOsFs()
	opts := uiOptions()
	dirty := false
	for _, dest := range uiTargets() {
		diffs, err := mirror.Drift(fsys, uiSrc, dest, opts)
		if err != nil {
			cmdCommon.PrintRuntimeErr(ctx, "ui", "check", err)
			return cli.NewExitError("", 1)
		}
		if len(diffs) == 0 {
			fmt.Printf("%s: in sync\n", dest)
			continue
		}
		dirty = true
		fmt.Printf("%s: %d difference(s)\n", dest, len(diffs))
		for _, d := range diffs {
			fmt.Printf("  %s\n", d)
		}
	}
	if dirty {
		return cli.NewExitError("shared ui out of sync, run \"lockpilot ui sync\"", 1)
	}
	return nil
}
