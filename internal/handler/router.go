package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	forumHandler "github.com/qnaboard/backend/internal/handler/forum"
	middlewarePkg "github.com/qnaboard/backend/internal/middleware"
	"github.com/qnaboard/backend/internal/store"
	"github.com/qnaboard/backend/pkg/utils"
)

// NewRouter wires the websocket endpoint and the health probe.
func NewRouter(st store.Store, pageSize int, storeTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	wsHandler := forumHandler.NewWebSocketHandler(st, pageSize, storeTimeout)
	wsHandler.RegisterRoutes(r)

	r.Route("/api", func(api chi.Router) {
		api.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	return r
}
