package cmd

import (
	"testing"

	"github.com/lockpilot/lockpilot/common"
	"github.com/lockpilot/lockpilot/pkg/pilotlib"
)

func TestResolveChannel(t *testing.T) {
	defer func() { updateChannel = "" }()

	updateChannel = "dev"
	ch, err := resolveChannel()
	if err != nil {
		t.Fatal(err)
	}
	if ch != common.ChannelDev {
		t.Errorf("expected dev channel, got %s", ch)
	}

	updateChannel = "nightly"
	if _, err = resolveChannel(); err == nil {
		t.Error("expected error for unknown channel")
	}

	t.Setenv(pilotlib.ConfigDirEnv, t.TempDir())
	updateChannel = ""
	ch, err = resolveChannel()
	if err != nil {
		t.Fatal(err)
	}
	if ch != common.ChannelMain {
		t.Errorf("expected main channel default, got %s", ch)
	}
}
