package main

import (
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 16384,
	// Demo daemon: any origin may subscribe.
	CheckOrigin: func(*http.Request) bool { return true },
}

// hub fans frames out to every connected websocket client.
type hub struct {
	log zerolog.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

func newHub(log zerolog.Logger) *hub {
	return &hub{log: log, conns: make(map[*websocket.Conn]struct{})}
}

// handle upgrades the request and keeps the connection registered until
// the client goes away.
func (h *hub) handle(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.log.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	n := len(h.conns)
	h.mu.Unlock()
	wsClients.Set(float64(n))
	h.log.Info().Str("remote", conn.RemoteAddr().String()).Int("clients", n).Msg("client connected")

	// Reader loop only to observe the close handshake.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(conn)
				return
			}
		}
	}()
}

// broadcast JSON-encodes v to every client, dropping the ones that fail.
func (h *hub) broadcast(v any) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(v); err != nil {
			delete(h.conns, conn)
			_ = conn.Close()
			continue
		}
		framesSent.Inc()
	}
	wsClients.Set(float64(len(h.conns)))
}

func (h *hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	if _, ok := h.conns[conn]; ok {
		delete(h.conns, conn)
		_ = conn.Close()
	}
	n := len(h.conns)
	h.mu.Unlock()
	wsClients.Set(float64(n))
	h.log.Info().Int("clients", n).Msg("client disconnected")
}

func (h *hub) close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		_ = conn.Close()
		delete(h.conns, conn)
	}
	wsClients.Set(0)
}
