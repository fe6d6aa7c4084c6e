package pilotcli

import (
	"encoding/json"

	"github.com/lockpilot/lockpilot/common"
)

// Handler consumes the raw payload of a pushed event.
type Handler interface {
	Handle(message json.RawMessage) error
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(message json.RawMessage) error

func (f HandlerFunc) Handle(message json.RawMessage) error {
	return f(message)
}

// NewPreActionWarningHandler wraps cb in a handler that decodes
// pre-action warning events before invoking it.
func NewPreActionWarningHandler(cb func(*common.PreActionWarning) error) Handler {
	return HandlerFunc(func(message json.RawMessage) error {
		var w common.PreActionWarning
		if err := json.Unmarshal(message, &w); err != nil {
			return err
		}
		return cb(&w)
	})
}
