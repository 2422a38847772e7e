package web

import (
	"strconv"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/phyten/hsbcontrast/internal/engine"
	"github.com/phyten/hsbcontrast/internal/output"
)

const (
	MetricEvaluationsTotal    = "hsbcontrast_evaluations_total"
	MetricHTTPRequestDuration = "hsbcontrast_http_request_duration_seconds"
)

var knownRoutes = map[string]bool{
	"/api/contrast": true,
	"/api/demo":     true,
	"/healthz":      true,
	"/metrics":      true,
}

// Metrics are the collectors exported on /metrics. Safe for concurrent use.
type Metrics struct {
	evaluations *prometheus.CounterVec
	duration    *prometheus.HistogramVec
}

func NewMetrics() *Metrics {
	return &Metrics{
		evaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: MetricEvaluationsTotal,
				Help: "Color pairs evaluated, by endpoint and verdict",
			},
			[]string{"endpoint", "verdict"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    MetricHTTPRequestDuration,
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
			[]string{"path", "status"},
		),
	}
}

func (m *Metrics) Register(reg prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{m.evaluations, m.duration} {
		if err := reg.Register(c); err != nil {
			return err
		}
	}
	return nil
}

// ObserveItems counts one evaluation per item under its pass/fail/error verdict.
func (m *Metrics) ObserveItems(endpoint string, items []engine.Item) {
	for _, it := range items {
		m.evaluations.WithLabelValues(endpoint, strings.ToLower(output.Verdict(it))).Inc()
	}
}

func (m *Metrics) ObserveRequest(path string, status int, elapsed time.Duration) {
	m.duration.WithLabelValues(path, strconv.Itoa(status)).Observe(elapsed.Seconds())
}

// routeLabel keeps unknown paths out of the label set.
func routeLabel(path string) string {
	if knownRoutes[path] {
		return path
	}
	return "other"
}
