package httptransport

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"skinatlas/internal/regions"
	"skinatlas/pkg/platform/httputil"
)

// Catalog is the read-only listing side of the fact store.
type Catalog interface {
	Countries() []string
	Len() int
}

// CatalogHandler serves the static lists the page and operators need.
type CatalogHandler struct {
	catalog Catalog
	regions []regions.Region
}

// NewCatalogHandler constructs a catalog handler.
func NewCatalogHandler(catalog Catalog, mapRegions []regions.Region) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, regions: mapRegions}
}

// Register mounts catalog endpoints on the router.
func (h *CatalogHandler) Register(r chi.Router) {
	r.Get("/api/countries", h.HandleCountries)
	r.Get("/api/regions", h.HandleRegions)
	r.Get("/healthz", h.HandleHealth)
}

// HandleCountries handles GET /api/countries.
func (h *CatalogHandler) HandleCountries(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string][]string{"countries": h.catalog.Countries()})
}

// HandleRegions handles GET /api/regions.
func (h *CatalogHandler) HandleRegions(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string][]regions.Region{"regions": h.regions})
}

// HandleHealth handles GET /healthz. The fact table is loaded before the
// server starts, so a running process is healthy.
func (h *CatalogHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"countries": h.catalog.Len(),
	})
}
