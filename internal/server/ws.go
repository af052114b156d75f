package server

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/duelforge/duel-server-go/internal/game/rules"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The gateway serves a local presentation layer; origin checks belong to
	// whatever fronts it in a real deployment.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// eventMessage is the JSON envelope pushed to websocket clients.
type eventMessage struct {
	MsgType string      `json:"msgtype"`
	Event   rules.Event `json:"event"`
}

// wsHub fans match events out to the session's websocket clients.
type wsHub struct {
	logger *zap.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func newWSHub(logger *zap.Logger) *wsHub {
	return &wsHub{
		logger: logger,
		conns:  make(map[*websocket.Conn]bool),
	}
}

func (h *wsHub) add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = true
}

func (h *wsHub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	conn.Close()
}

// broadcast pushes one match event to every connected client. Writes that
// fail drop the client.
func (h *wsHub) broadcast(event rules.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	msg := eventMessage{MsgType: "event", Event: event}
	for conn := range h.conns {
		if err := conn.WriteJSON(msg); err != nil {
			h.logger.Debug("dropping websocket client", zap.Error(err))
			delete(h.conns, conn)
			conn.Close()
		}
	}
}

// handleWebSocket upgrades the connection and streams match events until the
// client disconnects. Clients only listen; intents go through the HTTP API.
func (s *Server) handleWebSocket(c *gin.Context) {
	sess, ok := s.Session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	sess.hub.add(conn)

	go func() {
		defer sess.hub.remove(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
