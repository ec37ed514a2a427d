// Package netsync broadcasts full feeding-configuration snapshots to remote
// replicas over websockets. There is a single message type and no delta
// protocol: every publish sends the whole configuration, and a replica that
// attaches later immediately receives the then-current snapshot.
package netsync

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/pthm-cable/trough/config"
)

// MessageType is the type tag carried by every replication message.
const MessageType = "feed_config"

// Message is the single replication payload: a full configuration snapshot.
type Message struct {
	Type   string             `json:"type"`
	Config *config.FeedConfig `json:"config"`
}

// Hub fans snapshots out to attached replicas.
type Hub struct {
	log      *slog.Logger
	upgrader websocket.Upgrader

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
	last  []byte // most recent snapshot, resent to late joiners
}

// NewHub creates a hub logging through log.
func NewHub(log *slog.Logger) *Hub {
	if log == nil {
		log = slog.Default()
	}
	return &Hub{
		log: log,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		conns: make(map[*websocket.Conn]struct{}),
	}
}

// Publish broadcasts cfg to every attached replica and retains it for
// replicas that attach afterward. A replica that fails to take the write is
// dropped; the rest still receive the snapshot.
func (h *Hub) Publish(cfg *config.FeedConfig) {
	data, err := json.Marshal(Message{Type: MessageType, Config: cfg})
	if err != nil {
		h.log.Warn("could not marshal feed config snapshot", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.last = data
	for c := range h.conns {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Warn("dropping replica, write failed", "error", err)
			c.Close()
			delete(h.conns, c)
		}
	}
}

// ReplicaCount returns the number of attached replicas.
func (h *Hub) ReplicaCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

// ServeHTTP upgrades the connection, sends the current snapshot if one
// exists, and holds the connection open until the replica goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Error("failed to upgrade replica connection", "error", err)
		return
	}

	h.mu.Lock()
	h.conns[ws] = struct{}{}
	last := h.last
	h.mu.Unlock()
	h.log.Info("replica attached", "remote", ws.RemoteAddr().String())

	if last != nil {
		if err := ws.WriteMessage(websocket.TextMessage, last); err != nil {
			h.log.Warn("could not send snapshot to new replica", "error", err)
			h.detach(ws)
			return
		}
	}

	// Replicas never send anything meaningful; the read loop exists to
	// notice the close.
	for {
		if _, _, err := ws.ReadMessage(); err != nil {
			break
		}
	}
	h.log.Info("replica detached", "remote", ws.RemoteAddr().String())
	h.detach(ws)
}

func (h *Hub) detach(ws *websocket.Conn) {
	h.mu.Lock()
	delete(h.conns, ws)
	h.mu.Unlock()
	ws.Close()
}
