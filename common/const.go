package common

// UpdateType identifies a bridge method in requests and the payload type
// in responses and pushed events. Methods and events share one namespace
// so a client can route everything through a single dispatcher.
type UpdateType string

const (
	UPDATE_CREATE_TIMER           UpdateType = "create_timer"
	UPDATE_LIST_TIMERS            UpdateType = "list_timers"
	UPDATE_CANCEL_TIMER           UpdateType = "cancel_timer"
	UPDATE_RESOLVE_PRE_ACTION     UpdateType = "resolve_pre_action"
	UPDATE_CHECK_CHANNEL_UPDATE   UpdateType = "check_channel_update"
	UPDATE_INSTALL_CHANNEL_UPDATE UpdateType = "install_channel_update"
	UPDATE_INSTALL_RELEASE        UpdateType = "install_release"
	UPDATE_LIST_RELEASE_VERSIONS  UpdateType = "list_release_versions"

	// EVENT_PRE_ACTION_WARNING is pushed by the backend to every attached
	// client when a timer enters its warning window.
	EVENT_PRE_ACTION_WARNING UpdateType = "pre_action_warning"
)

// MaxMessageSize caps a single framed message on the bridge socket.
const MaxMessageSize = 4 << 20

// TCPHost is the host used for TCP fallback connections.
const TCPHost = "localhost"

// DefaultTCPPort is the TCP fallback port when the socket transport is
// unavailable.
const DefaultTCPPort = 3941
