package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// HTTP-level Prometheus metrics. Standalone package so both middlewares and
// services can record without import cycles.

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalogo_http_requests_total",
		Help: "Total de requests HTTP por método, ruta y status",
	}, []string{"method", "route", "status"})

	HTTPRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "catalogo_http_request_duration_seconds",
		Help:    "Duración de requests HTTP en segundos",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})

	StoreWritesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "catalogo_store_writes_total",
		Help: "Escrituras persistidas por tabla",
	}, []string{"table"})
)

// ObserveRequest registra una request completada.
func ObserveRequest(method, route string, status int, elapsed time.Duration) {
	HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}

// Register registers the HTTP metrics on the given registry (or default if nil).
func Register(reg prometheus.Registerer) error {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	collectors := []prometheus.Collector{
		HTTPRequestsTotal,
		HTTPRequestDuration,
		StoreWritesTotal,
	}
	for _, c := range collectors {
		if err := reg.Register(c); err != nil {
			if _, ok := err.(prometheus.AlreadyRegisteredError); !ok {
				return err
			}
		}
	}
	return nil
}
