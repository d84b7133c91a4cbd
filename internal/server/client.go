package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 2 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 256
)

// Client is one registered connection: an assigned display name, the
// transport handle, and a buffered outbound queue drained by writePump.
type Client struct {
	name       string
	seq        uint64 // registration order, fixes broadcast fan-out order
	remoteAddr string

	relay *Relay
	conn  *websocket.Conn
	send  chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

func newClient(relay *Relay, conn *websocket.Conn, remoteAddr string) *Client {
	return &Client{
		relay:      relay,
		conn:       conn,
		remoteAddr: remoteAddr,
		send:       make(chan []byte, sendBuffer),
		done:       make(chan struct{}),
	}
}

// Name returns the display name assigned at registration.
func (c *Client) Name() string {
	return c.name
}

// shutdown signals writePump to finish. Safe to call more than once.
func (c *Client) shutdown() {
	c.closeOnce.Do(func() { close(c.done) })
}

// readPump consumes inbound messages until the connection drops, handing
// each line to the relay. Unregistration is the deferred cleanup step, so
// it runs whether the close was graceful or an error.
func (c *Client) readPump(ctx context.Context) {
	defer func() {
		c.relay.hub.Unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				slog.Warn("websocket read error", slog.String("name", c.name), slog.Any("error", err))
			}
			return
		}
		c.relay.Dispatch(ctx, c, string(message))
	}
}

// writePump drains the send queue onto the wire and keeps the connection
// alive with pings. One writer per connection; gorilla allows only one
// concurrent writer anyway.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				slog.Warn("websocket write error", slog.String("name", c.name), slog.Any("error", err))
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
