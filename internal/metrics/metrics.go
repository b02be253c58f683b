// Package metrics expõe contadores Prometheus da API.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	requests    *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	rateLimited prometheus.Counter
}

// NewCollector registra as métricas em reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vetscheduler_http_requests_total",
			Help: "Requisições HTTP por método, rota e status.",
		}, []string{"method", "route", "status"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vetscheduler_http_request_duration_seconds",
			Help:    "Latência das requisições HTTP (segundos).",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route"}),
		rateLimited: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vetscheduler_rate_limited_total",
			Help: "Requisições recusadas pelo limitador.",
		}),
	}

	reg.MustRegister(
		c.requests,
		c.latency,
		c.rateLimited,
	)

	return c
}

func (c *Collector) ObserveRequest(method, route string, status int, d time.Duration) {
	c.requests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	c.latency.WithLabelValues(method, route).Observe(d.Seconds())
}

func (c *Collector) RecordRateLimited() {
	c.rateLimited.Inc()
}

// Handler serve a exposição para o scrape do Prometheus.
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
