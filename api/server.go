package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/9seconds/clientgeo/locator"
)

type contextKey string

const contextKeyLocator contextKey = "locator"

// Locator is a part of locator.Locator used by HTTP handlers.
type Locator interface {
	ClientIP(*http.Request) string
	Lookup(string) (locator.Location, error)
}

// MakeServer returns a router which exposes loc. Metrics are
// registered in registry and served on /metrics.
func MakeServer(loc Locator, registry *prometheus.Registry) *chi.Mux {
	router := chi.NewRouter()
	stats := newMetrics(registry)

	ctxLocator := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := context.WithValue(r.Context(), contextKeyLocator, loc)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}

	router.Use(middleware.StripSlashes)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(middleware.Recoverer)

	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	router.Group(func(r chi.Router) {
		r.Use(ctxLocator)
		r.Get("/", stats.wrap(selfLookup))
		r.Get("/{ip}", stats.wrap(ipLookup))
	})

	return router
}

func getLocator(r *http.Request) Locator {
	return r.Context().Value(contextKeyLocator).(Locator)
}

func sendJSON(w http.ResponseWriter, code int, data interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Errorf("Cannot write response: %s", err.Error())
	}
}

func abort(w http.ResponseWriter, code int, message string) {
	sendJSON(w, code, errorResponse{Error: message})
}
