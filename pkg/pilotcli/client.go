// Package pilotcli is the client library for the lockpilot backend
// bridge. It speaks length-prefixed JSON over a unix socket or named
// pipe, with a loopback TCP fallback, and dispatches pushed events such
// as pre-action warnings to registered handlers.
package pilotcli

import (
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"

	"github.com/lockpilot/lockpilot/common"
)

// Client is a connection to the backend bridge.
type Client struct {
	mu     *sync.RWMutex
	d      *Dispatcher
	conn   net.Conn
	listen atomic.Bool
}

// NewClient connects to the bridge over the platform transport.
func NewClient() (*Client, error) {
	conn, err := dial()
	if err != nil {
		return nil, fmt.Errorf("error connecting to bridge: %s", err.Error())
	}
	return newClient(conn), nil
}

// NewClientWithURI connects to the bridge at the given scheme://address
// uri. An empty uri behaves like NewClient.
func NewClientWithURI(uri string) (*Client, error) {
	if uri == "" {
		return NewClient()
	}
	d, err := ParseDaemonURI(uri)
	if err != nil {
		return nil, err
	}
	conn, err := dialURI(d)
	if err != nil {
		return nil, fmt.Errorf("error connecting to bridge: %s", err.Error())
	}
	return newClient(conn), nil
}

func newClient(conn net.Conn) *Client {
	return &Client{
		conn: conn,
		mu:   &sync.RWMutex{},
		d:    NewDispatcher(),
	}
}

// AddHandler registers h for pushed events of type t.
func (c *Client) AddHandler(t common.UpdateType, h Handler) {
	c.d.AddHandler(t, h)
}

// RemoveHandlers drops every handler registered for t.
func (c *Client) RemoveHandlers(t common.UpdateType) {
	c.d.RemoveHandlers(t)
}

// Listen blocks reading pushed events from the bridge and dispatching
// them until the connection drops, Disconnect is called, or a handler
// returns ErrDisconnect.
func (c *Client) Listen() (err error) {
	defer c.conn.Close()
	c.listen.Store(true)
	for {
		c.mu.RLock()
		var buf []byte
		buf, err = read(c.conn)
		if err != nil {
			c.mu.RUnlock()
			if !c.listen.Load() {
				// Disconnect closed the connection under us.
				return nil
			}
			err = fmt.Errorf("error reading: %s", err.Error())
			return
		}
		err = c.d.process(buf)
		if err != nil {
			c.mu.RUnlock()
			if errors.Is(err, ErrDisconnect) {
				err = nil
				break
			}
			err = fmt.Errorf("error processing: %s", err.Error())
			return
		}
		c.mu.RUnlock()
	}
	return
}

// Disconnect stops the listen loop and closes the connection.
func (c *Client) Disconnect() error {
	c.listen.Store(false)
	return c.conn.Close()
}

func (c *Client) invoke(method common.UpdateType, message any) (json.RawMessage, error) {
	// block the updates listener while invoking a method to retrieve
	// the reply here instead
	c.mu.Lock()
	defer c.mu.Unlock()
	buf, err := json.Marshal(&Request{
		Method:  method,
		Message: message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %s", method, err.Error())
	}
	err = write(c.conn, buf)
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %s", method, err.Error())
	}
	buf, err = read(c.conn)
	if err != nil {
		return nil, fmt.Errorf("failed to invoke %s: %s", method, err.Error())
	}
	var res Response
	err = json.Unmarshal(buf, &res)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %s", method, err.Error())
	}
	if !res.Ok {
		return nil, errors.New(res.Error)
	}
	if res.Update == nil {
		return nil, fmt.Errorf("failed to read %s: empty reply", method)
	}
	return res.Update.Message, nil
}
