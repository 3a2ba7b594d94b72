package devserver

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

// hub tracks connected reload clients by an id used in logs
type hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]string
	logger  *zap.Logger
}

func newHub(logger *zap.Logger) *hub {
	return &hub{
		clients: make(map[*websocket.Conn]string),
		logger:  logger,
	}
}

func (h *hub) add(conn *websocket.Conn) string {
	id := uuid.NewString()
	h.mu.Lock()
	h.clients[conn] = id
	n := len(h.clients)
	h.mu.Unlock()
	h.logger.Debug("reload client connected", zap.String("client", id), zap.Int("clients", n))
	return id
}

func (h *hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	id, ok := h.clients[conn]
	if ok {
		delete(h.clients, conn)
		conn.Close()
	}
	h.mu.Unlock()
	if ok {
		h.logger.Debug("reload client disconnected", zap.String("client", id))
	}
}

func (h *hub) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// broadcast sends msg to every client and drops the ones that fail
func (h *hub) broadcast(msg string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn, id := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteMessage(websocket.TextMessage, []byte(msg)); err != nil {
			h.logger.Debug("dropping reload client", zap.String("client", id), zap.Error(err))
			delete(h.clients, conn)
			conn.Close()
		}
	}
}

func (h *hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		conn.Close()
		delete(h.clients, conn)
	}
}
