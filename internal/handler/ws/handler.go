package ws

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// DialogueManager runs one conversation turn and always yields a reply.
type DialogueManager interface {
	HandleTurn(ctx context.Context, sessionID, utterance string) string
}

// Handler serves the websocket chat transport: one JSON frame in per user
// utterance, one frame out per assistant reply.
type Handler struct {
	manager  DialogueManager
	upgrader websocket.Upgrader
}

// New creates the websocket chat handler.
func New(manager DialogueManager) *Handler {
	return &Handler{
		manager: manager,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes mounts the websocket route.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/ws/{sessionID}", h.handleWebSocket)
}

type inboundMessage struct {
	Message string `json:"message"`
}

type outboundMessage struct {
	SessionID string `json:"sessionId"`
	Reply     string `json:"reply,omitempty"`
	Error     string `json:"error,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		http.Error(w, "sessionID is required", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[ws] upgrade failed for session=%s: %v", sessionID, err)
		return
	}
	defer conn.Close()

	log.Printf("[ws] connection opened for session=%s", sessionID)

	for {
		var inbound inboundMessage
		if err := conn.ReadJSON(&inbound); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("[ws] read failed for session=%s: %v", sessionID, err)
			}
			return
		}

		if strings.TrimSpace(inbound.Message) == "" {
			h.write(conn, outboundMessage{
				SessionID: sessionID,
				Error:     "message is required",
				Timestamp: time.Now().UnixMilli(),
			})
			continue
		}

		reply := h.manager.HandleTurn(r.Context(), sessionID, inbound.Message)

		h.write(conn, outboundMessage{
			SessionID: sessionID,
			Reply:     reply,
			Timestamp: time.Now().UnixMilli(),
		})
	}
}

func (h *Handler) write(conn *websocket.Conn, msg outboundMessage) {
	if err := conn.WriteJSON(msg); err != nil {
		log.Printf("[ws] write failed for session=%s: %v", msg.SessionID, err)
	}
}
