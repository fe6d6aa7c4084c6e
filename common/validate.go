package common

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Validation errors surfaced verbatim to the user by every frontend.
var (
	ErrPastTarget      = errors.New("selected time must be in the future")
	ErrBadWarnMinutes  = errors.New("pre-warning options must be any of: 1, 5, 10 minutes")
	ErrNoSpecificDays  = errors.New("specific days requires at least one day")
	ErrTooManyDays     = errors.New("specific days can include at most 7 days")
	ErrInvalidWeekday  = errors.New("specific days contains an invalid weekday")
	ErrMissingInterval = errors.New("recurrence preset requires an interval")
)

// ValidateCreateTimer applies the full request-shaping rules to a
// create_timer request before it leaves the frontend. now is the clock
// used for the future-target check.
func ValidateCreateTimer(p *CreateTimerParams, now time.Time) error {
	if !p.Action.Valid() {
		return fmt.Errorf("unknown action: %q", p.Action)
	}
	target, err := time.Parse(time.RFC3339, p.TargetTime)
	if err != nil {
		return fmt.Errorf("invalid date/time format: %q", p.TargetTime)
	}
	if !target.After(now) {
		return ErrPastTarget
	}
	if err := ValidateRecurrence(p.Recurrence); err != nil {
		return err
	}
	normalized, err := NormalizePreWarningMinutes(p.PreWarningMinutes)
	if err != nil {
		return err
	}
	p.PreWarningMinutes = normalized
	p.Message = strings.TrimSpace(p.Message)
	return nil
}

// ValidateRecurrence checks a recurrence descriptor against its preset.
// A nil config (one-time timer) is valid.
func ValidateRecurrence(rc *RecurrenceConfig) error {
	if rc == nil {
		return nil
	}
	switch rc.Preset {
	case RecurDaily, RecurWeekdays:
		return nil
	case RecurSpecificDays:
		if len(rc.DaysOfWeek) == 0 {
			return ErrNoSpecificDays
		}
		if len(rc.DaysOfWeek) > 7 {
			return ErrTooManyDays
		}
		for _, day := range rc.DaysOfWeek {
			if _, ok := ParseWeekday(day); !ok {
				return ErrInvalidWeekday
			}
		}
		return nil
	case RecurEveryNHours:
		if rc.IntervalHours == 0 {
			return ErrMissingInterval
		}
		if rc.IntervalHours > 24 {
			return errors.New("interval hours must be between 1 and 24")
		}
		return nil
	case RecurEveryNMinutes:
		if rc.IntervalMinutes == 0 {
			return ErrMissingInterval
		}
		if rc.IntervalMinutes > 1440 {
			return errors.New("interval minutes must be between 1 and 1440")
		}
		return nil
	default:
		return fmt.Errorf("unknown recurrence preset: %q", rc.Preset)
	}
}

// NormalizePreWarningMinutes sorts and dedupes the pre-warning offsets.
// Only the offsets 1, 5 and 10 are accepted; any other value, and any
// duplicate, rejects the whole set.
func NormalizePreWarningMinutes(values []uint) ([]uint, error) {
	if values == nil {
		return nil, nil
	}
	normalized := make([]uint, 0, len(values))
	for _, v := range values {
		switch v {
		case 1, 5, 10:
			normalized = append(normalized, v)
		}
	}
	sort.Slice(normalized, func(i, j int) bool { return normalized[i] < normalized[j] })
	n := 0
	for i, v := range normalized {
		if i == 0 || normalized[n-1] != v {
			normalized[n] = v
			n++
		}
	}
	normalized = normalized[:n]
	if len(normalized) != len(values) {
		return nil, ErrBadWarnMinutes
	}
	return normalized, nil
}

// ParseWeekday maps common spellings and abbreviations to a weekday.
func ParseWeekday(input string) (time.Weekday, bool) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "mon", "monday":
		return time.Monday, true
	case "tue", "tues", "tuesday":
		return time.Tuesday, true
	case "wed", "wednesday":
		return time.Wednesday, true
	case "thu", "thur", "thurs", "thursday":
		return time.Thursday, true
	case "fri", "friday":
		return time.Friday, true
	case "sat", "saturday":
		return time.Saturday, true
	case "sun", "sunday":
		return time.Sunday, true
	}
	return 0, false
}
