package pilotcli

import (
	"encoding/json"
	"time"

	"github.com/lockpilot/lockpilot/common"
)

func invoke[T any](c *Client, method common.UpdateType, message any) (*T, error) {
	resp, err := c.invoke(method, message)
	if err != nil {
		return nil, err
	}
	var d T
	return &d, json.Unmarshal(resp, &d)
}

// CreateTimer schedules a new timer. Params are validated locally
// before the call so obviously bad input never reaches the bridge.
func (c *Client) CreateTimer(params *common.CreateTimerParams) (*common.TimerInfo, error) {
	if err := common.ValidateCreateTimer(params, time.Now()); err != nil {
		return nil, err
	}
	return invoke[common.TimerInfo](c, common.UPDATE_CREATE_TIMER, params)
}

// ListTimers returns every active timer known to the backend.
func (c *Client) ListTimers() ([]*common.TimerInfo, error) {
	resp, err := invoke[common.ListTimersResponse](c, common.UPDATE_LIST_TIMERS, nil)
	if err != nil {
		return nil, err
	}
	return resp.Timers, nil
}

// CancelTimer cancels the timer with the given id. It reports false
// when the backend no longer knows the timer.
func (c *Client) CancelTimer(timerId string) (bool, error) {
	resp, err := invoke[common.CancelTimerResponse](c, common.UPDATE_CANCEL_TIMER, &common.CancelTimerParams{
		Id: timerId,
	})
	if err != nil {
		return false, err
	}
	return resp.Cancelled, nil
}

// ResolvePreAction answers an outstanding pre-action warning prompt.
func (c *Client) ResolvePreAction(promptId string, decision common.PreActionDecision) (bool, error) {
	resp, err := invoke[common.ResolvePreActionResponse](c, common.UPDATE_RESOLVE_PRE_ACTION, &common.ResolvePreActionParams{
		PromptId: promptId,
		Decision: decision,
	})
	if err != nil {
		return false, err
	}
	return resp.Resolved, nil
}

// CheckChannelUpdate asks the backend whether a newer build exists on
// the given channel. A nil UpdateInfo means the current version is the
// latest.
func (c *Client) CheckChannelUpdate(currentVersion string, channel common.UpdateChannel) (*common.UpdateInfo, error) {
	resp, err := invoke[common.CheckChannelUpdateResponse](c, common.UPDATE_CHECK_CHANNEL_UPDATE, &common.CheckChannelUpdateParams{
		CurrentVersion: currentVersion,
		Channel:        channel,
	})
	if err != nil {
		return nil, err
	}
	return resp.Update, nil
}

// InstallChannelUpdate downloads and installs the latest build of the
// given channel. The returned message is backend status text.
func (c *Client) InstallChannelUpdate(channel common.UpdateChannel) (string, error) {
	resp, err := invoke[common.InstallResponse](c, common.UPDATE_INSTALL_CHANNEL_UPDATE, &common.InstallChannelUpdateParams{
		Channel: channel,
	})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// InstallRelease installs the exact release identified by tag,
// regardless of channel. Used for rollbacks.
func (c *Client) InstallRelease(tag string) (string, error) {
	resp, err := invoke[common.InstallResponse](c, common.UPDATE_INSTALL_RELEASE, &common.InstallReleaseParams{
		Tag: tag,
	})
	if err != nil {
		return "", err
	}
	return resp.Message, nil
}

// ListReleaseVersions returns installable releases, newest first.
func (c *Client) ListReleaseVersions() ([]common.ReleaseVersion, error) {
	resp, err := invoke[common.ListReleaseVersionsResponse](c, common.UPDATE_LIST_RELEASE_VERSIONS, nil)
	if err != nil {
		return nil, err
	}
	return resp.Releases, nil
}
