package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/skolathu-cds/smart-travel-consultant/internal/service/session"
	"github.com/skolathu-cds/smart-travel-consultant/pkg/utils"
)

// welcome is the static copy shown by the UI before the first turn.
var welcome = map[string]any{
	"title": "AI Travel Advisor",
	"greeting": "Your personal AI travel advisor to assist you on queries related to " +
		"visa requirements, hotels, city & airport information, flights and much more. " +
		"How can I assist you with your travel plans today?",
	"capabilities": []string{
		"Visa requirements",
		"Flight options",
		"Hotel recommendations",
		"City and airport information",
		"Event and conference details",
	},
}

// DialogueManager runs one conversation turn and always yields a reply.
type DialogueManager interface {
	HandleTurn(ctx context.Context, sessionID, utterance string) string
}

// Handler exposes the conversation REST surface.
type Handler struct {
	store   *session.Store
	manager DialogueManager
}

// New creates the chat handler.
func New(store *session.Store, manager DialogueManager) *Handler {
	return &Handler{store: store, manager: manager}
}

// RegisterRoutes mounts the chat routes.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/info", h.handleInfo)
	r.Post("/session", h.handleCreateSession)
	r.Get("/session/{sessionID}/transcript", h.handleTranscript)
	r.Post("/chat", h.handleChat)
}

func (h *Handler) handleInfo(w http.ResponseWriter, _ *http.Request) {
	utils.RespondJSON(w, http.StatusOK, welcome)
}

func (h *Handler) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	created := h.store.Create()
	utils.RespondJSON(w, http.StatusCreated, created)
}

func (h *Handler) handleTranscript(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")

	snapshot, ok := h.store.Snapshot(sessionID)
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "session not found")
		return
	}

	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"sessionId": snapshot.ID,
		"turns":     snapshot.Turns,
	})
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SessionID string `json:"sessionId"`
		Message   string `json:"message"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if payload.SessionID == "" {
		utils.RespondError(w, http.StatusBadRequest, "sessionId is required")
		return
	}
	if strings.TrimSpace(payload.Message) == "" {
		utils.RespondError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply := h.manager.HandleTurn(r.Context(), payload.SessionID, payload.Message)

	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"sessionId": payload.SessionID,
		"reply":     reply,
	})
}
