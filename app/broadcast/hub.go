// Package broadcast is the outbound side of the pipeline: a WebSocket
// hub that fans synthesized payloads out to every connected consumer.
// Delivery is best-effort with no acknowledgment; consumers that cannot
// keep up are dropped.
package broadcast

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/coder/websocket"
)

// EventSyntheticPost is the event name for publisher broadcasts. Kept
// distinct from user-authored content events; consumers merge both into
// one content stream.
const EventSyntheticPost = "synthetic_post"

const writeTimeout = 5 * time.Second

type envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// Hub tracks connected consumers.
type Hub struct {
	mu    sync.RWMutex
	conns map[*websocket.Conn]struct{}
}

func NewHub() *Hub {
	return &Hub{
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Subscribe upgrades the request to a WebSocket connection and keeps it
// registered until the consumer disconnects. Inbound messages are
// discarded; the channel is one-way.
func (h *Hub) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		slog.Warn("WebSocket accept failed", "error", err)
		return
	}

	h.add(conn)
	defer h.remove(conn)

	ctx := r.Context()
	for {
		if _, _, err := conn.Read(ctx); err != nil {
			return
		}
	}
}

// Publish sends one event to every connected consumer. Errors on
// individual connections remove that consumer and never propagate.
func (h *Hub) Publish(event string, data any) {
	payload, err := json.Marshal(envelope{Event: event, Data: data})
	if err != nil {
		slog.Error("Failed to marshal broadcast payload", "event", event, "error", err)
		return
	}

	for _, conn := range h.snapshot() {
		ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
		err := conn.Write(ctx, websocket.MessageText, payload)
		cancel()

		if err != nil {
			h.remove(conn)
			conn.Close(websocket.StatusPolicyViolation, "write failed")
		}
	}
}

// ConsumerCount returns the number of currently connected consumers.
func (h *Hub) ConsumerCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.conns)
}

// Close disconnects all consumers.
func (h *Hub) Close() {
	for _, conn := range h.snapshot() {
		h.remove(conn)
		conn.Close(websocket.StatusGoingAway, "server shutting down")
	}
}

func (h *Hub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

func (h *Hub) snapshot() []*websocket.Conn {
	h.mu.RLock()
	defer h.mu.RUnlock()

	conns := make([]*websocket.Conn, 0, len(h.conns))
	for conn := range h.conns {
		conns = append(conns, conn)
	}
	return conns
}
