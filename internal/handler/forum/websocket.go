package forum

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/qnaboard/backend/internal/session"
	"github.com/qnaboard/backend/internal/store"
)

const readWait = 60 * time.Second

// WebSocketHandler upgrades connections and pumps events into one
// session.Session per client. Messages within a connection are handled
// strictly sequentially; connections run independently of each other.
type WebSocketHandler struct {
	store     store.Store
	pageSize  int
	opTimeout time.Duration
	upgrader  websocket.Upgrader
}

// NewWebSocketHandler creates the websocket handler. opTimeout bounds the
// store work done for a single message.
func NewWebSocketHandler(st store.Store, pageSize int, opTimeout time.Duration) *WebSocketHandler {
	return &WebSocketHandler{
		store:     st,
		pageSize:  pageSize,
		opTimeout: opTimeout,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket endpoint.
func (h *WebSocketHandler) RegisterRoutes(r chi.Router) {
	r.Get("/ws", h.handleWebSocket)
}

// handleWebSocket owns one connection: upgrade, initial load, then the
// read loop until the client goes away.
func (h *WebSocketHandler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[websocket] upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	log.Printf("[websocket] new connection conn=%s", connID)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	conn.SetReadDeadline(time.Now().Add(readWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(readWait))
		return nil
	})

	go h.pingLoop(ctx, conn)

	sess := session.New(h.store, h.pageSize)

	reply := h.runOp(ctx, connID, func(opCtx context.Context) (any, error) {
		return sess.Connect(opCtx)
	})
	if !h.writeReply(conn, connID, reply) {
		sess.Disconnect()
		return
	}

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure, websocket.CloseAbnormalClosure) {
				log.Printf("[websocket] read error conn=%s: %v", connID, err)
			}
			sess.Disconnect()
			log.Printf("[websocket] connection closed conn=%s", connID)
			return
		}

		conn.SetReadDeadline(time.Now().Add(readWait))

		reply := h.runOp(ctx, connID, func(opCtx context.Context) (any, error) {
			return sess.Handle(opCtx, raw)
		})
		if !h.writeReply(conn, connID, reply) {
			sess.Disconnect()
			return
		}
	}
}

// runOp executes one session operation under the per-message timeout.
// Store failures keep the connection open and come back as a generic
// internal-error status.
func (h *WebSocketHandler) runOp(ctx context.Context, connID string, op func(context.Context) (any, error)) any {
	opCtx, cancel := context.WithTimeout(ctx, h.opTimeout)
	defer cancel()

	reply, err := op(opCtx)
	if err != nil {
		log.Printf("[websocket] operation failed conn=%s: %v", connID, err)
		return session.StatusReply{Status: session.StatusInternalError}
	}
	return reply
}

// writeReply sends one outbound message, reporting whether the connection
// is still usable.
func (h *WebSocketHandler) writeReply(conn *websocket.Conn, connID string, reply any) bool {
	if reply == nil {
		return true
	}
	if err := conn.WriteJSON(reply); err != nil {
		log.Printf("[websocket] write failed conn=%s: %v", connID, err)
		return false
	}
	return true
}

// pingLoop keeps the connection alive while the client is idle.
func (h *WebSocketHandler) pingLoop(ctx context.Context, conn *websocket.Conn) {
	ticker := time.NewTicker(54 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
