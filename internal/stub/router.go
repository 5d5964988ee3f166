package stub

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter builds the stub backend's HTTP router. The brand-summary
// route is registered before the keyed route so it is never captured as
// a product key.
func NewRouter(store *Store, l *slog.Logger) http.Handler {
	h := NewHandler(store, l)

	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(RequestLogging(l))
	r.Use(Metrics())

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/products", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/brand-summary", h.BrandSummary)
		r.Get("/{key}", h.Get)
		r.Put("/{key}", h.Update)
		r.Delete("/{key}", h.Delete)
	})

	return r
}
