package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"promo-pages/internal/observability"
)

func Router(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(observability.Measure)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/readyz", h.Ready)
	r.Handle("/metrics", observability.MetricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/campaigns", h.Catalog)
		r.Get("/preview", h.Preview)
		r.Group(func(r chi.Router) {
			r.Use(middleware.AllowContentType("application/json"))
			if h.MaxBodyBytes > 0 {
				r.Use(middleware.RequestSize(h.MaxBodyBytes))
			}
			r.Post("/render", h.Render)
			r.Post("/publish", h.Publish)
		})
	})
	return r
}
