package common

import (
	"testing"
	"time"
)

func TestValidateCreateTimer(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	future := now.Add(time.Hour).Format(time.RFC3339)

	tests := []struct {
		name    string
		params  CreateTimerParams
		wantErr bool
	}{
		{
			name:   "minimal lock timer",
			params: CreateTimerParams{Action: ActionLock, TargetTime: future},
		},
		{
			name:    "unknown action",
			params:  CreateTimerParams{Action: "hibernate", TargetTime: future},
			wantErr: true,
		},
		{
			name:    "garbage timestamp",
			params:  CreateTimerParams{Action: ActionLock, TargetTime: "tomorrowish"},
			wantErr: true,
		},
		{
			name: "target in the past",
			params: CreateTimerParams{
				Action:     ActionShutdown,
				TargetTime: now.Add(-time.Minute).Format(time.RFC3339),
			},
			wantErr: true,
		},
		{
			name: "target equal to now",
			params: CreateTimerParams{
				Action:     ActionShutdown,
				TargetTime: now.Format(time.RFC3339),
			},
			wantErr: true,
		},
		{
			name: "valid warnings",
			params: CreateTimerParams{
				Action:            ActionReboot,
				TargetTime:        future,
				PreWarningMinutes: []uint{10, 1},
			},
		},
		{
			name: "bad warning offset",
			params: CreateTimerParams{
				Action:            ActionReboot,
				TargetTime:        future,
				PreWarningMinutes: []uint{3},
			},
			wantErr: true,
		},
		{
			name: "bad recurrence",
			params: CreateTimerParams{
				Action:     ActionPopup,
				TargetTime: future,
				Recurrence: &RecurrenceConfig{Preset: RecurEveryNHours},
			},
			wantErr: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateCreateTimer(&tc.params, now)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateCreateTimer: err = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestValidateCreateTimerNormalizes(t *testing.T) {
	now := time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	p := CreateTimerParams{
		Action:            ActionPopup,
		TargetTime:        now.Add(time.Hour).Format(time.RFC3339),
		PreWarningMinutes: []uint{10, 1, 5},
		Message:           "  wrap it up  ",
	}
	if err := ValidateCreateTimer(&p, now); err != nil {
		t.Fatalf("ValidateCreateTimer: %v", err)
	}
	want := []uint{1, 5, 10}
	if len(p.PreWarningMinutes) != len(want) {
		t.Fatalf("warn minutes = %v, want %v", p.PreWarningMinutes, want)
	}
	for i, v := range want {
		if p.PreWarningMinutes[i] != v {
			t.Fatalf("warn minutes = %v, want %v", p.PreWarningMinutes, want)
		}
	}
	if p.Message != "wrap it up" {
		t.Fatalf("message = %q, want trimmed", p.Message)
	}
}

func TestValidateRecurrence(t *testing.T) {
	tests := []struct {
		name    string
		rc      *RecurrenceConfig
		wantErr bool
	}{
		{name: "nil is one-time", rc: nil},
		{name: "daily", rc: &RecurrenceConfig{Preset: RecurDaily}},
		{name: "weekdays", rc: &RecurrenceConfig{Preset: RecurWeekdays}},
		{
			name: "specific days valid",
			rc:   &RecurrenceConfig{Preset: RecurSpecificDays, DaysOfWeek: []string{"mon", "Friday"}},
		},
		{
			name:    "specific days empty",
			rc:      &RecurrenceConfig{Preset: RecurSpecificDays},
			wantErr: true,
		},
		{
			name: "specific days too many",
			rc: &RecurrenceConfig{
				Preset:     RecurSpecificDays,
				DaysOfWeek: []string{"mon", "tue", "wed", "thu", "fri", "sat", "sun", "mon"},
			},
			wantErr: true,
		},
		{
			name:    "specific days invalid name",
			rc:      &RecurrenceConfig{Preset: RecurSpecificDays, DaysOfWeek: []string{"humpday"}},
			wantErr: true,
		},
		{name: "hours ok", rc: &RecurrenceConfig{Preset: RecurEveryNHours, IntervalHours: 24}},
		{name: "hours zero", rc: &RecurrenceConfig{Preset: RecurEveryNHours}, wantErr: true},
		{name: "hours too big", rc: &RecurrenceConfig{Preset: RecurEveryNHours, IntervalHours: 25}, wantErr: true},
		{name: "minutes ok", rc: &RecurrenceConfig{Preset: RecurEveryNMinutes, IntervalMinutes: 45}},
		{name: "minutes too big", rc: &RecurrenceConfig{Preset: RecurEveryNMinutes, IntervalMinutes: 1441}, wantErr: true},
		{name: "unknown preset", rc: &RecurrenceConfig{Preset: "lunar"}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateRecurrence(tc.rc)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ValidateRecurrence: err = %v, wantErr = %v", err, tc.wantErr)
			}
		})
	}
}

func TestNormalizePreWarningMinutes(t *testing.T) {
	tests := []struct {
		name    string
		in      []uint
		want    []uint
		wantErr bool
	}{
		{name: "nil passthrough", in: nil, want: nil},
		{name: "empty stays empty", in: []uint{}, want: []uint{}},
		{name: "sorted", in: []uint{10, 5, 1}, want: []uint{1, 5, 10}},
		{name: "duplicate rejected", in: []uint{5, 5}, wantErr: true},
		{name: "unknown offset rejected", in: []uint{2}, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NormalizePreWarningMinutes(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr = %v", err, tc.wantErr)
			}
			if err != nil {
				return
			}
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range got {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}

func TestParseWeekday(t *testing.T) {
	cases := map[string]time.Weekday{
		"mon":       time.Monday,
		" Tuesday ": time.Tuesday,
		"WED":       time.Wednesday,
		"thurs":     time.Thursday,
		"fri":       time.Friday,
		"saturday":  time.Saturday,
		"sun":       time.Sunday,
	}
	for in, want := range cases {
		got, ok := ParseWeekday(in)
		if !ok || got != want {
			t.Errorf("ParseWeekday(%q) = %v, %v; want %v, true", in, got, ok, want)
		}
	}
	if _, ok := ParseWeekday("humpday"); ok {
		t.Errorf("ParseWeekday accepted an invalid day")
	}
}
