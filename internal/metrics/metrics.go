// Package metrics exposes conversion counters in the Prometheus format.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/JonMunkholm/uniseparate/internal/core"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "uniseparate"

// Metrics holds the collectors of one process.
type Metrics struct {
	registry    *prometheus.Registry
	conversions *prometheus.CounterVec
	duration    *prometheus.HistogramVec
	characters  *prometheus.CounterVec
}

// New registers the conversion collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		conversions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "conversions_total",
			Help:      "Conversions by direction and outcome.",
		}, []string{"direction", "status", "code"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "conversion_duration_seconds",
			Help:      "Time spent converting a document.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"direction"}),
		characters: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "characters_total",
			Help:      "Characters read and written by successful conversions.",
		}, []string{"direction", "side"}),
	}

	m.registry.MustRegister(m.conversions, m.duration, m.characters)
	return m
}

// WatchLimiter exports the service's limiter as gauges read at scrape time.
func (m *Metrics) WatchLimiter(service *core.Service) {
	m.registry.MustRegister(
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "conversions_active",
			Help:      "Conversions holding a limiter slot.",
		}, func() float64 { return float64(service.LimiterStatus().Active) }),
		prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "conversions_max_concurrent",
			Help:      "Limiter capacity.",
		}, func() float64 { return float64(service.LimiterStatus().MaxConcurrent) }),
	)
}

// Handler serves the registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Observe counts one recorded conversion.
func (m *Metrics) Observe(e core.HistoryEntry) {
	dir := string(e.Direction)
	m.conversions.WithLabelValues(dir, string(e.Status), e.ErrorCode).Inc()
	m.duration.WithLabelValues(dir).Observe((time.Duration(e.DurationMs) * time.Millisecond).Seconds())
	if e.Status == core.StatusSucceeded {
		m.characters.WithLabelValues(dir, "input").Add(float64(e.InputChars))
		m.characters.WithLabelValues(dir, "output").Add(float64(e.OutputChars))
	}
}

// InstrumentStore returns a store that observes every recorded entry before
// passing it on.
func (m *Metrics) InstrumentStore(store core.HistoryStore) core.HistoryStore {
	return &instrumentedStore{HistoryStore: store, metrics: m}
}

type instrumentedStore struct {
	core.HistoryStore
	metrics *Metrics
}

func (s *instrumentedStore) Record(ctx context.Context, e core.HistoryEntry) error {
	s.metrics.Observe(e)
	return s.HistoryStore.Record(ctx, e)
}
