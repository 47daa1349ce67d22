package stream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/skolathu-cds/smart-travel-consultant/pkg/utils"
)

// DialogueManager runs one conversation turn and always yields a reply.
type DialogueManager interface {
	HandleTurn(ctx context.Context, sessionID, utterance string) string
}

// Handler replays a conversation turn over Server-Sent Events so the UI
// can keep a single streaming code path for replies.
type Handler struct {
	manager DialogueManager
}

// New creates the stream handler.
func New(manager DialogueManager) *Handler {
	return &Handler{manager: manager}
}

// turnEvent is one SSE frame of a streamed turn.
type turnEvent struct {
	Event     string `json:"event"`
	SessionID string `json:"sessionId,omitempty"`
	Reply     string `json:"reply,omitempty"`
	Finished  bool   `json:"finished,omitempty"`
}

// HandleStreamRequest runs the turn and emits start/answer/done frames.
func (h *Handler) HandleStreamRequest(ctx context.Context, w http.ResponseWriter, sessionID, userMessage string) error {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return fmt.Errorf("streaming unsupported")
	}

	utils.SetupSSEHeaders(w)

	utils.SendSSEChunk(w, flusher, turnEvent{Event: "start", SessionID: sessionID})

	reply := h.manager.HandleTurn(ctx, sessionID, userMessage)
	utils.SendSSEChunk(w, flusher, turnEvent{Event: "answer", SessionID: sessionID, Reply: reply})

	utils.SendSSEChunk(w, flusher, turnEvent{Event: "done", SessionID: sessionID, Finished: true})
	return nil
}
