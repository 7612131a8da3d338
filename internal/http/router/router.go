// Package router arma el árbol de rutas HTTP del catálogo.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dropDatabas3/catalogo/internal/http/controllers"
	httperrors "github.com/dropDatabas3/catalogo/internal/http/errors"
	"github.com/dropDatabas3/catalogo/internal/http/middlewares"
)

// Options configura el router.
type Options struct {
	CORSAllowedOrigins []string
}

// New construye el handler raíz: middlewares globales, endpoints de
// operación (/healthz, /metrics) y las rutas de entidades bajo /v1.
func New(c *controllers.Controllers, opts Options) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.WithRequestLog())
	r.Use(middlewares.WithRecover())
	r.Use(middlewares.WithMetrics())
	if len(opts.CORSAllowedOrigins) > 0 {
		r.Use(middlewares.WithCORS(opts.CORSAllowedOrigins))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrRouteNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		httperrors.WriteError(w, httperrors.ErrMethodNotAllowed)
	})

	r.Get("/healthz", c.Health.Healthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Route("/brands", func(r chi.Router) {
			r.Get("/", c.Brands.List)
			r.Post("/", c.Brands.Create)
			r.Put("/", c.Brands.Update)
			r.Delete("/", c.Brands.Delete)
		})
		r.Route("/models", func(r chi.Router) {
			r.Get("/", c.Models.List)
			r.Post("/", c.Models.Create)
			r.Put("/", c.Models.Update)
			r.Delete("/", c.Models.Delete)
		})
		r.Route("/types", func(r chi.Router) {
			r.Get("/", c.Types.List)
			r.Post("/", c.Types.Create)
			r.Put("/", c.Types.Update)
			r.Delete("/", c.Types.Delete)
		})
		r.Route("/subtypes", func(r chi.Router) {
			r.Get("/", c.Subtypes.List)
			r.Post("/", c.Subtypes.Create)
			r.Put("/", c.Subtypes.Update)
			r.Delete("/", c.Subtypes.Delete)
		})
		r.Route("/prices", func(r chi.Router) {
			r.Get("/", c.Prices.List)
			r.Post("/", c.Prices.Upsert)
			r.Put("/", c.Prices.Update)
			r.Delete("/", c.Prices.Delete)
		})
		r.Route("/clients", func(r chi.Router) {
			r.Get("/", c.Clients.List)
			r.Post("/", c.Clients.Create)
			r.Put("/", c.Clients.Update)
			r.Delete("/", c.Clients.Delete)
		})
	})

	return r
}
