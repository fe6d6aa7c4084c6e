package pilotcli

import (
	"encoding/json"

	"github.com/lockpilot/lockpilot/common"
)

// Request is the envelope for every call issued to the backend bridge.
type Request struct {
	Method  common.UpdateType `json:"method"`
	Message any               `json:"message,omitempty"`
}

// Response is the envelope for replies and pushed events. Replies to an
// invocation carry the invoked method as the update type; pushed events
// carry an event type instead.
type Response struct {
	Ok     bool    `json:"ok"`
	Error  string  `json:"error,omitempty"`
	Update *Update `json:"update,omitempty"`
}

// Update is the typed payload inside a Response.
type Update struct {
	Type    common.UpdateType `json:"type"`
	Message json.RawMessage   `json:"message"`
}
