package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"skinatlas/internal/selection"
	"skinatlas/internal/selection/metrics"
	"skinatlas/pkg/platform/httputil"
	"skinatlas/pkg/requestcontext"
)

var tracer = otel.Tracer("skinatlas/internal/selection/handler")

// Service defines the interface for selection operations.
type Service interface {
	Resolve(country *string) (selection.DisplayPayload, selection.Outcome)
}

// Handler wires selection endpoints to the selection service.
type Handler struct {
	service Service
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// New constructs a selection handler with its dependencies.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
		metrics: metrics,
	}
}

// Register mounts selection endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/api/selection", h.HandleQuery)
	r.Post("/api/selection", h.HandleClick)
}

// HandleQuery handles GET /api/selection?country=<label>. An absent country
// parameter is a null selection; a present one, even empty, is looked up.
func (h *Handler) HandleQuery(w http.ResponseWriter, r *http.Request) {
	var country *string
	if values, ok := r.URL.Query()["country"]; ok && len(values) > 0 {
		country = &values[0]
	}
	h.respond(w, r, country)
}

// HandleClick handles POST /api/selection with a click event body.
func (h *Handler) HandleClick(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[SelectRequest](w, r, h.logger, ctx, requestcontext.RequestID(ctx))
	if !ok {
		return
	}
	h.respond(w, r, req.Country)
}

func (h *Handler) respond(w http.ResponseWriter, r *http.Request, country *string) {
	ctx, span := tracer.Start(r.Context(), "selection.resolve", trace.WithSpanKind(trace.SpanKindInternal))
	defer span.End()
	start := requestcontext.Now(ctx)

	payload, outcome := h.service.Resolve(country)

	span.SetAttributes(attribute.String("selection.outcome", string(outcome)))
	if country != nil {
		span.SetAttributes(attribute.String("selection.country", *country))
	}
	h.metrics.IncrementSelection(string(outcome))

	attrs := []any{
		"request_id", requestcontext.RequestID(ctx),
		"outcome", outcome,
	}
	if country != nil {
		attrs = append(attrs, "country", *country)
	}
	if span.SpanContext().HasTraceID() {
		attrs = append(attrs, "trace_id", span.SpanContext().TraceID().String())
	}
	h.logger.DebugContext(ctx, "country selected", attrs...)

	httputil.WriteJSON(w, http.StatusOK, FromPayload(payload))
	h.metrics.ObserveSelection(start)
}
