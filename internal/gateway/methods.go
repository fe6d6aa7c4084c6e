package gateway

import (
	"context"

	"github.com/creachadair/jrpc2"
	"github.com/creachadair/jrpc2/handler"

	"github.com/lockpilot/lockpilot/common"
)

// JSON-RPC error codes surfaced to the UI.
const (
	codeBackendError  = jrpc2.Code(-32001)
	codeInvalidParams = jrpc2.Code(-32602)
)

// VersionResult is the response for system.getVersion.
type VersionResult struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildType string `json:"buildType,omitempty"`
}

// methods maps the bridge operations 1:1 onto RPC method names the
// webview calls.
func (g *Gateway) methods() handler.Map {
	return handler.Map{
		"system.getVersion":                          handler.New(g.systemGetVersion),
		string(common.UPDATE_CREATE_TIMER):           handler.New(g.createTimer),
		string(common.UPDATE_LIST_TIMERS):            handler.New(g.listTimers),
		string(common.UPDATE_CANCEL_TIMER):           handler.New(g.cancelTimer),
		string(common.UPDATE_RESOLVE_PRE_ACTION):     handler.New(g.resolvePreAction),
		string(common.UPDATE_CHECK_CHANNEL_UPDATE):   handler.New(g.checkChannelUpdate),
		string(common.UPDATE_INSTALL_CHANNEL_UPDATE): handler.New(g.installChannelUpdate),
		string(common.UPDATE_INSTALL_RELEASE):        handler.New(g.installRelease),
		string(common.UPDATE_LIST_RELEASE_VERSIONS):  handler.New(g.listReleaseVersions),
	}
}

func backendErr(err error) error {
	return &jrpc2.Error{Code: codeBackendError, Message: err.Error()}
}

func (g *Gateway) systemGetVersion(_ context.Context) (*VersionResult, error) {
	return &VersionResult{
		Version:   g.cfg.Version,
		Commit:    g.cfg.Commit,
		BuildType: g.cfg.BuildType,
	}, nil
}

func (g *Gateway) createTimer(_ context.Context, p *common.CreateTimerParams) (*common.TimerInfo, error) {
	if !p.Action.Valid() {
		return nil, &jrpc2.Error{Code: codeInvalidParams, Message: "invalid action: " + string(p.Action)}
	}
	info, err := g.backend.CreateTimer(p)
	if err != nil {
		return nil, backendErr(err)
	}
	return info, nil
}

func (g *Gateway) listTimers(_ context.Context) (*common.ListTimersResponse, error) {
	timers, err := g.backend.ListTimers()
	if err != nil {
		return nil, backendErr(err)
	}
	if timers == nil {
		timers = []*common.TimerInfo{}
	}
	return &common.ListTimersResponse{Timers: timers}, nil
}

func (g *Gateway) cancelTimer(_ context.Context, p *common.CancelTimerParams) (*common.CancelTimerResponse, error) {
	if p.Id == "" {
		return nil, &jrpc2.Error{Code: codeInvalidParams, Message: "missing required param: id"}
	}
	cancelled, err := g.backend.CancelTimer(p.Id)
	if err != nil {
		return nil, backendErr(err)
	}
	return &common.CancelTimerResponse{Cancelled: cancelled}, nil
}

func (g *Gateway) resolvePreAction(_ context.Context, p *common.ResolvePreActionParams) (*common.ResolvePreActionResponse, error) {
	if p.PromptId == "" {
		return nil, &jrpc2.Error{Code: codeInvalidParams, Message: "missing required param: promptId"}
	}
	if !p.Decision.Valid() {
		return nil, &jrpc2.Error{Code: codeInvalidParams, Message: "invalid decision: " + string(p.Decision)}
	}
	resolved, err := g.backend.ResolvePreAction(p.PromptId, p.Decision)
	if err != nil {
		return nil, backendErr(err)
	}
	return &common.ResolvePreActionResponse{Resolved: resolved}, nil
}

func (g *Gateway) checkChannelUpdate(_ context.Context, p *common.CheckChannelUpdateParams) (*common.CheckChannelUpdateResponse, error) {
	if !p.Channel.Valid() {
		return nil, &jrpc2.Error{Code: codeInvalidParams, Message: "invalid channel: " + string(p.Channel)}
	}
	update, err := g.backend.CheckChannelUpdate(p.CurrentVersion, p.Channel)
	if err != nil {
		return nil, backendErr(err)
	}
	return &common.CheckChannelUpdateResponse{Update: update}, nil
}

func (g *Gateway) installChannelUpdate(_ context.Context, p *common.InstallChannelUpdateParams) (*common.InstallResponse, error) {
	if !p.Channel.Valid() {
		return nil, &jrpc2.Error{Code: codeInvalidParams, Message: "invalid channel: " + string(p.Channel)}
	}
	msg, err := g.backend.InstallChannelUpdate(p.Channel)
	if err != nil {
		return nil, backendErr(err)
	}
	return &common.InstallResponse{Message: msg}, nil
}

func (g *Gateway) installRelease(_ context.Context, p *common.InstallReleaseParams) (*common.InstallResponse, error) {
	if p.Tag == "" {
		return nil, &jrpc2.Error{Code: codeInvalidParams, Message: "missing required param: tag"}
	}
	msg, err := g.backend.InstallRelease(p.Tag)
	if err != nil {
		return nil, backendErr(err)
	}
	return &common.InstallResponse{Message: msg}, nil
}

func (g *Gateway) listReleaseVersions(_ context.Context) (*common.ListReleaseVersionsResponse, error) {
	releases, err := g.backend.ListReleaseVersions()
	if err != nil {
		return nil, backendErr(err)
	}
	if releases == nil {
		releases = []common.ReleaseVersion{}
	}
	return &common.ListReleaseVersionsResponse{Releases: releases}, nil
}
