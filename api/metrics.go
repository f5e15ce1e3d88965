package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	lookups *prometheus.CounterVec
}

func (m *metrics) wrap(handler func(http.ResponseWriter, *http.Request) string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m.lookups.WithLabelValues(handler(w, r)).Inc()
	}
}

func newMetrics(registry prometheus.Registerer) *metrics {
	m := &metrics{
		lookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "clientgeo_lookups_total",
				Help: "Total subdivision lookups by result",
			},
			[]string{"result"},
		),
	}

	registry.MustRegister(m.lookups)

	return m
}
