package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics хранит метрики HTTP-сервера
type Metrics struct {
	// общее число HTTP-запросов (method, path, status_code)
	HTTPRequestsTotal *prometheus.CounterVec

	// длительность HTTP-запросов (method, path)
	HTTPRequestDuration *prometheus.HistogramVec
}

// New создаёт метрики и регистрирует их в реестре по умолчанию
func New() *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry регистрирует метрики в указанном реестре
func NewWithRegistry(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status_code"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds",
				Buckets: []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}
