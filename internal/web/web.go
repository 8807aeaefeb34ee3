// Package web serves the single map page.
package web

import (
	"bytes"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"skinatlas/internal/regions"
	"skinatlas/internal/selection"
	"skinatlas/pkg/requestcontext"
)

//go:embed templates/index.html
var templateFS embed.FS

// DefaultPlotlyURL is the plotly.js bundle the page loads.
const DefaultPlotlyURL = "https://cdn.plot.ly/plotly-2.35.2.min.js"

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html"))

// Selector produces the panel content shown before any click.
type Selector interface {
	OnCountryClicked(country *string) selection.DisplayPayload
}

type pageData struct {
	PageTitle     string
	PlotlyURL     string
	SelectionPath string
	Regions       []regions.Region
	Initial       selection.DisplayPayload
}

// Handler renders the map page.
type Handler struct {
	selector  Selector
	regions   []regions.Region
	plotlyURL string
	logger    *slog.Logger
}

// New constructs the page handler. An empty plotlyURL uses DefaultPlotlyURL.
func New(selector Selector, mapRegions []regions.Region, plotlyURL string, logger *slog.Logger) *Handler {
	if plotlyURL == "" {
		plotlyURL = DefaultPlotlyURL
	}
	return &Handler{
		selector:  selector,
		regions:   mapRegions,
		plotlyURL: plotlyURL,
		logger:    logger,
	}
}

// Register mounts the page on the router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/", h.HandleIndex)
}

// HandleIndex handles GET /.
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	data := pageData{
		PageTitle:     "Skin Pigmentation Adaptations",
		PlotlyURL:     h.plotlyURL,
		SelectionPath: "/api/selection",
		Regions:       h.regions,
		Initial:       h.selector.OnCountryClicked(nil),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		h.logger.ErrorContext(ctx, "render index page failed",
			"request_id", requestcontext.RequestID(ctx),
			"error", err,
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = buf.WriteTo(w)
}
