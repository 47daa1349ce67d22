package handler

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/skolathu-cds/smart-travel-consultant/internal/handler/chat"
	"github.com/skolathu-cds/smart-travel-consultant/internal/handler/stream"
	"github.com/skolathu-cds/smart-travel-consultant/internal/handler/ws"
	middlewarePkg "github.com/skolathu-cds/smart-travel-consultant/internal/middleware"
	"github.com/skolathu-cds/smart-travel-consultant/internal/service/dialogue"
	"github.com/skolathu-cds/smart-travel-consultant/internal/service/session"
	"github.com/skolathu-cds/smart-travel-consultant/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(store *session.Store, manager *dialogue.Manager) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chat.New(store, manager)
	streamHandler := stream.New(manager)
	wsHandler := ws.New(manager)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		wsHandler.RegisterRoutes(api)

		api.Get("/stream/{sessionID}", func(w http.ResponseWriter, r *http.Request) {
			sessionID := chi.URLParam(r, "sessionID")
			userMessage := r.URL.Query().Get("message")

			if userMessage == "" {
				utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
				return
			}

			if err := streamHandler.HandleStreamRequest(r.Context(), w, sessionID, userMessage); err != nil {
				log.Printf("[stream] error handling request: %v", err)
				utils.RespondError(w, http.StatusInternalServerError, "streaming failed")
			}
		})
	})

	return r
}
