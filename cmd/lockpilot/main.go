package main

import (
	"fmt"
	"os"

	"github.com/lockpilot/lockpilot/cmd"
)

// populated at build time via -ldflags
var (
	version   = "dev"
	buildType = "dev"
	date      = ""
	commit    = ""
)

func main() {
	err := cmd.Execute(os.Args, cmd.BuildArgs{
		Version:   version,
		BuildType: buildType,
		Date:      date,
		Commit:    commit,
	})
	if err != nil {
		fmt.Printf("lockpilot: %s\n", err.Error())
		os.Exit(1)
	}
}
