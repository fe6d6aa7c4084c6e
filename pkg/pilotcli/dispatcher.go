package pilotcli

import (
	"encoding/json"
	"errors"

	"github.com/lockpilot/lockpilot/common"
)

// ErrDisconnect can be returned by a handler to stop the listen loop.
var ErrDisconnect = errors.New("client: disconnect")

// Dispatcher routes pushed events to their registered handlers.
type Dispatcher struct {
	Handlers map[common.UpdateType][]Handler
}

// NewDispatcher creates a dispatcher with no handlers registered.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		Handlers: make(map[common.UpdateType][]Handler),
	}
}

// AddHandler registers h for events of type t. Multiple handlers may be
// registered for the same type; they run in registration order.
func (d *Dispatcher) AddHandler(t common.UpdateType, h Handler) {
	d.Handlers[t] = append(d.Handlers[t], h)
}

// RemoveHandlers drops every handler registered for t.
func (d *Dispatcher) RemoveHandlers(t common.UpdateType) {
	delete(d.Handlers, t)
}

func (d *Dispatcher) process(b []byte) error {
	var res Response
	if err := json.Unmarshal(b, &res); err != nil {
		return err
	}
	if !res.Ok {
		return errors.New(res.Error)
	}
	if res.Update == nil {
		debugLog("dispatcher: response without update")
		return nil
	}
	handlers, ok := d.Handlers[res.Update.Type]
	if !ok || len(handlers) == 0 {
		debugLog("dispatcher: no handler for %q", res.Update.Type)
		return nil
	}
	for _, h := range handlers {
		if err := h.Handle(res.Update.Message); err != nil {
			return err
		}
	}
	return nil
}
