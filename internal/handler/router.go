package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	replayHandler "github.com/106-/wows-chat-viewer/internal/handler/replay"
	"github.com/106-/wows-chat-viewer/internal/handler/web"
	"github.com/106-/wows-chat-viewer/internal/metrics"
	middlewarePkg "github.com/106-/wows-chat-viewer/internal/middleware"
	"github.com/106-/wows-chat-viewer/internal/service/extract"
	"github.com/106-/wows-chat-viewer/internal/service/session"
	"github.com/106-/wows-chat-viewer/pkg/utils"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(extractor *extract.Extractor, sessions *session.Service, maxUpload int64) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	r.Get("/", web.Index)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	r.Route("/api", func(api chi.Router) {
		replayHandler.New(extractor, sessions, maxUpload).RegisterRoutes(api)
	})

	return r
}
