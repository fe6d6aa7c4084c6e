package common

import "time"

// TimerAction is the system action a timer executes when it fires.
type TimerAction string

const (
	ActionPopup    TimerAction = "popup"
	ActionLock     TimerAction = "lock"
	ActionShutdown TimerAction = "shutdown"
	ActionReboot   TimerAction = "reboot"
)

// Valid reports whether a is one of the known timer actions.
func (a TimerAction) Valid() bool {
	switch a {
	case ActionPopup, ActionLock, ActionShutdown, ActionReboot:
		return true
	}
	return false
}

// UpdateChannel is a release track label.
type UpdateChannel string

const (
	// ChannelMain tracks stable releases.
	ChannelMain UpdateChannel = "main"
	// ChannelDev tracks prereleases.
	ChannelDev UpdateChannel = "dev"
)

// Valid reports whether c is a known release channel.
func (c UpdateChannel) Valid() bool {
	return c == ChannelMain || c == ChannelDev
}

// RecurrencePreset names a repetition pattern attached to a timer.
type RecurrencePreset string

const (
	RecurDaily         RecurrencePreset = "daily"
	RecurWeekdays      RecurrencePreset = "weekdays"
	RecurSpecificDays  RecurrencePreset = "specific_days"
	RecurEveryNHours   RecurrencePreset = "every_n_hours"
	RecurEveryNMinutes RecurrencePreset = "every_n_minutes"
)

// RecurrenceConfig describes how a timer repeats after its first run.
// Only the fields relevant to the preset are set.
type RecurrenceConfig struct {
	Preset          RecurrencePreset `json:"preset"`
	IntervalHours   uint             `json:"intervalHours,omitempty"`
	IntervalMinutes uint             `json:"intervalMinutes,omitempty"`
	DaysOfWeek      []string         `json:"daysOfWeek,omitempty"`
}

// TimerInfo is the backend's record of a scheduled timer. The backend
// owns every field; frontends only render them.
type TimerInfo struct {
	Id                string            `json:"id"`
	Action            TimerAction       `json:"action"`
	TargetTime        time.Time         `json:"targetTime"`
	Recurrence        *RecurrenceConfig `json:"recurrence,omitempty"`
	PreWarningMinutes []uint            `json:"preWarningMinutes,omitempty"`
	Message           string            `json:"message,omitempty"`
	CreatedAt         time.Time         `json:"createdAt"`
}

// CreateTimerParams is the input for create_timer. TargetTime is an
// RFC 3339 timestamp.
type CreateTimerParams struct {
	Action            TimerAction       `json:"action"`
	TargetTime        string            `json:"targetTime"`
	Recurrence        *RecurrenceConfig `json:"recurrence,omitempty"`
	PreWarningMinutes []uint            `json:"preWarningMinutes,omitempty"`
	Message           string            `json:"message,omitempty"`
}

// CancelTimerParams is the input for cancel_timer.
type CancelTimerParams struct {
	Id string `json:"id"`
}

// CancelTimerResponse reports whether the timer existed and was cancelled.
type CancelTimerResponse struct {
	Cancelled bool `json:"cancelled"`
}

// ListTimersResponse carries the active timers sorted by target time.
type ListTimersResponse struct {
	Timers []*TimerInfo `json:"timers"`
}

// PreActionDecision is the user's answer to a pre-action warning.
type PreActionDecision string

const (
	DecisionRunNow            PreActionDecision = "run_now"
	DecisionSnooze            PreActionDecision = "snooze_10"
	DecisionCancelAction      PreActionDecision = "cancel_action"
	DecisionContinueScheduled PreActionDecision = "continue_scheduled"
)

// Valid reports whether d is a known decision.
func (d PreActionDecision) Valid() bool {
	switch d {
	case DecisionRunNow, DecisionSnooze, DecisionCancelAction, DecisionContinueScheduled:
		return true
	}
	return false
}

// PreActionWarning is the payload of the pre_action_warning event. The
// prompt stays open for CountdownSeconds; an unanswered prompt resolves
// as continue_scheduled on the backend.
type PreActionWarning struct {
	PromptId         string      `json:"promptId"`
	TimerId          string      `json:"timerId"`
	Action           TimerAction `json:"action"`
	WarningMinutes   uint        `json:"warningMinutes"`
	CountdownSeconds uint        `json:"countdownSeconds"`
	SnoozeMinutes    uint        `json:"snoozeMinutes"`
}

// ResolvePreActionParams is the input for resolve_pre_action.
type ResolvePreActionParams struct {
	PromptId string            `json:"promptId"`
	Decision PreActionDecision `json:"decision"`
}

// ResolvePreActionResponse reports whether the prompt was still pending.
type ResolvePreActionResponse struct {
	Resolved bool `json:"resolved"`
}

// CheckChannelUpdateParams is the input for check_channel_update.
type CheckChannelUpdateParams struct {
	CurrentVersion string        `json:"currentVersion"`
	Channel        UpdateChannel `json:"channel"`
}

// UpdateInfo describes a newer published version on a channel.
type UpdateInfo struct {
	Tag         string `json:"tag"`
	Name        string `json:"name"`
	Notes       string `json:"notes,omitempty"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// CheckChannelUpdateResponse carries the available update, or a nil
// Update when the current version is already the newest on the channel.
type CheckChannelUpdateResponse struct {
	Update *UpdateInfo `json:"update,omitempty"`
}

// InstallChannelUpdateParams is the input for install_channel_update.
type InstallChannelUpdateParams struct {
	Channel UpdateChannel `json:"channel"`
}

// InstallReleaseParams is the input for install_release (rollback or
// forward to an exact published tag).
type InstallReleaseParams struct {
	Tag string `json:"tag"`
}

// InstallResponse carries the backend's human-readable install summary.
type InstallResponse struct {
	Message string `json:"message"`
}

// ReleaseVersion is one entry of list_release_versions.
type ReleaseVersion struct {
	Tag         string `json:"tag"`
	Name        string `json:"name"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// ListReleaseVersionsResponse carries published versions, newest first.
type ListReleaseVersionsResponse struct {
	Releases []ReleaseVersion `json:"releases"`
}
