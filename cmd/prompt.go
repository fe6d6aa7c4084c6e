package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/vbauerster/mpb/v8"

	cmdCommon "github.com/lockpilot/lockpilot/cmd/common"
	"github.com/lockpilot/lockpilot/common"
	"github.com/lockpilot/lockpilot/pkg/pilotlib"
)

// decisionReader is swapped in tests.
var decisionReader = func() *bufio.Reader { return bufio.NewReader(os.Stdin) }

// A single long-lived goroutine reads input lines for every prompt; a
// prompt that times out must not leave a reader behind that swallows
// the next prompt's line.
var (
	decisionMu    sync.Mutex
	decisionLines chan string
)

func decisionLine() chan string {
	decisionMu.Lock()
	defer decisionMu.Unlock()
	if decisionLines == nil {
		decisionLines = make(chan string)
		go func(r *bufio.Reader, out chan<- string) {
			for {
				line, err := r.ReadString('\n')
				if err != nil {
					close(out)
					return
				}
				out <- line
			}
		}(decisionReader(), decisionLines)
	}
	return decisionLines
}

// promptDecision renders the warning countdown and reads the user's
// choice. The countdown is wall-clock driven so a suspended terminal
// does not stretch the window; timing out means continue as scheduled.
func promptDecision(w *common.PreActionWarning) common.PreActionDecision {
	label := pilotlib.ActionLabel(w.Action)
	fmt.Printf("\n%s in %d minute(s).\n", label, w.WarningMinutes)
	fmt.Printf("[r]un now, [s]nooze %d min, [c]ancel action, or enter to continue:\n", w.SnoozeMinutes)

	p := mpb.New(mpb.WithWidth(64))
	total := int64(w.CountdownSeconds)
	bar := cmdCommon.InitCountdownBar(p, label, total)

	lines := decisionLine()

	start := time.Now()
	deadline := start.Add(time.Duration(w.CountdownSeconds) * time.Second)
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	decision := common.DecisionContinueScheduled
loop:
	for {
		select {
		case line, ok := <-lines:
			if !ok {
				// input closed; wait out the countdown
				lines = nil
				continue
			}
			decision = parseDecision(line)
			break loop
		case <-ticker.C:
			bar.SetCurrent(int64(time.Since(start).Seconds()))
			if !time.Now().Before(deadline) {
				break loop
			}
		}
	}
	bar.Abort(true)
	p.Wait()
	fmt.Printf("Decision: %s\n", decisionLabel(decision))
	return decision
}

func parseDecision(line string) common.PreActionDecision {
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "r", "run", "now":
		return common.DecisionRunNow
	case "s", "snooze":
		return common.DecisionSnooze
	case "c", "cancel", "skip":
		return common.DecisionCancelAction
	default:
		return common.DecisionContinueScheduled
	}
}

func decisionLabel(d common.PreActionDecision) string {
	switch d {
	case common.DecisionRunNow:
		return "run now"
	case common.DecisionSnooze:
		return "snooze"
	case common.DecisionCancelAction:
		return "cancel action"
	default:
		return "continue as scheduled"
	}
}
