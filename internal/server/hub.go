package server

import (
	"log/slog"
	"sort"
	"sync"

	"rate_relay/internal/infra"

	"github.com/google/uuid"
)

// Hub is the connection registry and broadcast mediator. Membership is the
// single shared state of the whole server, guarded by one mutex; broadcast
// takes a point-in-time snapshot so a concurrent register or unregister
// never corrupts an in-progress fan-out.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]struct{}
	nextSeq uint64
}

// NewHub creates an empty registry.
func NewHub() *Hub {
	return &Hub{clients: make(map[*Client]struct{})}
}

// Register adds the client to the registry and assigns it a display name
// no live connection is currently using.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	c.seq = h.nextSeq
	h.nextSeq++
	c.name = h.uniqueNameLocked()
	h.clients[c] = struct{}{}
	h.mu.Unlock()

	infra.GlobalMetrics.IncrementConnections()
	slog.Info("client connected",
		slog.String("name", c.name),
		slog.String("remote", c.remoteAddr),
	)
}

// Unregister removes the client. A client that is not registered is a
// no-op: disconnect races must never crash the server.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	_, present := h.clients[c]
	if present {
		delete(h.clients, c)
	}
	h.mu.Unlock()

	if !present {
		return
	}
	c.shutdown()
	infra.GlobalMetrics.DecrementConnections()
	slog.Info("client disconnected",
		slog.String("name", c.name),
		slog.String("remote", c.remoteAddr),
	)
}

// Broadcast queues text for every currently registered client, in
// registration order. A client whose outbound buffer is full is skipped
// and logged; it stays registered, only its own read loop may remove it.
func (h *Hub) Broadcast(text string) {
	members := h.snapshot()
	if len(members) == 0 {
		return
	}

	msg := []byte(text)
	for _, c := range members {
		select {
		case c.send <- msg:
		default:
			slog.Warn("client send buffer full, message dropped",
				slog.String("name", c.name),
			)
		}
	}
	infra.GlobalMetrics.RecordBroadcast()
}

// Names returns the display names of live clients in registration order.
func (h *Hub) Names() []string {
	members := h.snapshot()
	names := make([]string, len(members))
	for i, c := range members {
		names[i] = c.name
	}
	return names
}

// Size returns the current number of registered clients.
func (h *Hub) Size() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// snapshot copies the membership set under the read lock and orders it by
// registration sequence, the fan-out order promised to callers.
func (h *Hub) snapshot() []*Client {
	h.mu.RLock()
	members := make([]*Client, 0, len(h.clients))
	for c := range h.clients {
		members = append(members, c)
	}
	h.mu.RUnlock()

	sort.Slice(members, func(i, j int) bool { return members[i].seq < members[j].seq })
	return members
}

func (h *Hub) uniqueNameLocked() string {
	for {
		name := "guest-" + uuid.NewString()[:8]
		inUse := false
		for c := range h.clients {
			if c.name == name {
				inUse = true
				break
			}
		}
		if !inUse {
			return name
		}
	}
}
