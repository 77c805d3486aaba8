package hub

import (
	"sync"

	"astrid/internal/logger"

	"github.com/google/uuid"
)

// Conn is the write side of one live channel. *websocket.Conn satisfies it;
// tests inject failing implementations.
type Conn interface {
	WriteJSON(v any) error
	Close() error
}

// Client is one registered channel. Writes are serialized per client so a
// broadcast and a direct send never interleave a frame.
type Client struct {
	id   string
	conn Conn

	mu sync.Mutex
}

// ID returns the client's registry id.
func (c *Client) ID() string { return c.id }

// Send writes a single event to this client only.
func (c *Client) Send(ev Event) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(ev)
}

// Hub is the connection registry and broadcast coordinator. Delivery is
// best-effort, at-most-once per channel: a failed send drops the channel,
// succeeding channels keep their registration. Broadcasts are serialized under
// the hub mutex, which gives per-channel ordering across Broadcast calls.
type Hub struct {
	log *logger.Logger

	mu      sync.Mutex
	clients map[*Client]struct{}
}

// New returns an empty hub.
func New(log *logger.Logger) *Hub {
	return &Hub{
		log:     log,
		clients: make(map[*Client]struct{}),
	}
}

// Register adds a channel and returns its handle.
func (h *Hub) Register(conn Conn) *Client {
	c := &Client{id: uuid.NewString(), conn: conn}
	h.mu.Lock()
	h.clients[c] = struct{}{}
	n := len(h.clients)
	h.mu.Unlock()
	if h.log != nil {
		h.log.Infow("client_registered", "client_id", c.id, "total", n)
	}
	return c
}

// Unregister removes a channel. Removing an absent channel is a no-op.
func (h *Hub) Unregister(c *Client) {
	if c == nil {
		return
	}
	h.mu.Lock()
	_, present := h.clients[c]
	delete(h.clients, c)
	n := len(h.clients)
	h.mu.Unlock()
	if present && h.log != nil {
		h.log.Infow("client_unregistered", "client_id", c.id, "total", n)
	}
}

// Len reports the number of registered channels.
func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast sends ev to every registered channel. Channels whose send fails
// are silently dropped from the registry; the failure is not retried and not
// surfaced to the caller.
func (h *Hub) Broadcast(ev Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		if err := c.Send(ev); err != nil {
			delete(h.clients, c)
			if h.log != nil {
				h.log.Infow("broadcast_send_failed", "client_id", c.id, "type", ev.Type, "err", err)
			}
		}
	}
}
