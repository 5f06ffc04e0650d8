package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-vh/airbour-web-sub001/internal/transport/dataloader"
	"github.com/noah-vh/airbour-web-sub001/internal/transport/middleware"
)

// APIPrefix is the mount point of the versioned JSON API.
const APIPrefix = "/api/v1"

// RouterDeps holds the handlers and middleware the HTTP surface is built
// from. Global middleware wraps every route including probes and metrics.
// API middleware wraps only the versioned API.
type RouterDeps struct {
	Health      *HealthHandler
	Signals     *SignalHandler
	Sources     *SourceHandler
	Subscribers *SubscriberHandler
	Analytics   *AnalyticsHandler
	Loaders     *dataloader.Repos

	Global []middleware.Middleware
	API    []middleware.Middleware
}

// NewRouter builds the chi router of the service.
func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Chain(d.Global...))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "NOT_FOUND", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "METHOD_NOT_ALLOWED", "method not allowed")
	})

	r.Get("/live", d.Health.Live)
	r.Get("/ready", d.Health.Ready)
	r.Get("/health", d.Health.Health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route(APIPrefix, func(r chi.Router) {
		r.Use(middleware.Chain(d.API...))

		r.Route("/signals", func(r chi.Router) {
			r.Use(dataloader.Middleware(d.Loaders))
			d.Signals.Routes(r)
		})
		r.Route("/sources", d.Sources.Routes)
		r.Route("/subscribers", d.Subscribers.Routes)
		r.Route("/analytics", d.Analytics.Routes)
	})

	return r
}
