package httptransport

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"skinatlas/internal/platform/metrics"
	"skinatlas/internal/platform/middleware"
	dErrors "skinatlas/pkg/domain-errors"
	"skinatlas/pkg/platform/httputil"
	"skinatlas/pkg/platform/middleware/requesttime"
)

// Registrar is implemented by module handlers that mount their own routes.
type Registrar interface {
	Register(r chi.Router)
}

// NewRouter wires the shared middleware chain, the operational endpoints,
// and every module handler. Handlers stay thin and delegate to services.
func NewRouter(logger *slog.Logger, m *metrics.Metrics, handlers ...Registrar) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(requesttime.Middleware)
	r.Use(middleware.AccessLog(logger, m))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteError(w, dErrors.New(dErrors.CodeNotFound, "no such endpoint"))
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method_not_allowed"})
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())
	for _, h := range handlers {
		h.Register(r)
	}
	return r
}
