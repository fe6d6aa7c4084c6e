// Package pilotlib holds the purely local half of the LockPilot frontend:
// display formatting for timers, the configuration directory, and the
// preference store. Nothing in this package talks to the backend.
package pilotlib

import (
	"fmt"
	"strings"
	"time"

	"github.com/lockpilot/lockpilot/common"
)

// FormatRemaining renders the time left until target as a compact
// human-readable span, from plain wall-clock subtraction.
func FormatRemaining(target, now time.Time) string {
	d := target.Sub(now)
	if d <= 0 {
		return "due"
	}
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d/time.Minute) % 60
	s := int(d/time.Second) % 60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %02dm %02ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %02ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// FormatCountdown renders a prompt countdown as M:SS (or H:MM:SS past
// the hour), clamping negatives to zero.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatTarget renders a timer's target time in the user's preferred
// clock style, using relative day names for near dates.
func FormatTarget(target, now time.Time, use12h bool) string {
	clock := "15:04"
	if use12h {
		clock = "3:04 PM"
	}
	return relativeDay(target, now) + " " + target.Format(clock)
}

func relativeDay(target, now time.Time) string {
	ty, tm, td := target.Date()
	ny, nm, nd := now.Date()
	if ty == ny && tm == nm && td == nd {
		return "today"
	}
	y2, m2, d2 := now.AddDate(0, 0, 1).Date()
	if ty == y2 && tm == m2 && td == d2 {
		return "tomorrow"
	}
	return target.Format("Mon 02 Jan 2006")
}

// ActionLabel renders a timer action for display.
func ActionLabel(a common.TimerAction) string {
	switch a {
	case common.ActionPopup:
		return "Popup"
	case common.ActionLock:
		return "Lock"
	case common.ActionShutdown:
		return "Shutdown"
	case common.ActionReboot:
		return "Reboot"
	}
	return string(a)
}

// RecurrenceLabel renders a recurrence descriptor the way the timer list
// shows it. A nil config is a one-time timer.
func RecurrenceLabel(rc *common.RecurrenceConfig) string {
	if rc == nil {
		return "One-time"
	}
	switch rc.Preset {
	case common.RecurDaily:
		return "Daily"
	case common.RecurWeekdays:
		return "Weekdays"
	case common.RecurSpecificDays:
		return dayListLabel(rc.DaysOfWeek)
	case common.RecurEveryNHours:
		if rc.IntervalHours == 1 {
			return "Every hour"
		}
		return fmt.Sprintf("Every %d hours", rc.IntervalHours)
	case common.RecurEveryNMinutes:
		if rc.IntervalMinutes == 1 {
			return "Every minute"
		}
		return fmt.Sprintf("Every %d minutes", rc.IntervalMinutes)
	}
	return string(rc.Preset)
}

func dayListLabel(days []string) string {
	labels := make([]string, 0, len(days))
	for _, day := range days {
		wd, ok := common.ParseWeekday(day)
		if !ok {
			labels = append(labels, day)
			continue
		}
		labels = append(labels, wd.String()[:3])
	}
	return strings.Join(labels, ", ")
}

// WarningLabel renders the pre-warning offsets ("1, 5, 10 min before").
func WarningLabel(minutes []uint) string {
	if len(minutes) == 0 {
		return "none"
	}
	parts := make([]string, len(minutes))
	for i, m := range minutes {
		parts[i] = fmt.Sprintf("%d", m)
	}
	return strings.Join(parts, ", ") + " min before"
}
