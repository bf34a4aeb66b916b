package observability

import (
	"context"

	"github.com/aretw0/arbor/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the parser collectors.
type Metrics struct {
	parses   *prometheus.CounterVec
	inFlight prometheus.Gauge
	duration *prometheus.HistogramVec
	nodes    prometheus.Histogram
	depth    prometheus.Histogram
	bytes    prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		parses: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "arbor_parses_total",
				Help: "Total number of parse calls by cache outcome",
			},
			[]string{"cache"},
		),
		inFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "arbor_parses_in_flight",
			Help: "Parse calls currently running",
		}),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "arbor_parse_duration_seconds",
				Help:    "Duration of parse calls",
				Buckets: prometheus.ExponentialBuckets(0.00001, 4, 10),
			},
			[]string{"cache"},
		),
		nodes: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arbor_document_nodes",
			Help:    "Number of nodes in parsed documents",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		}),
		depth: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "arbor_document_depth",
			Help:    "Element nesting depth of parsed documents",
			Buckets: prometheus.LinearBuckets(0, 4, 10),
		}),
		bytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "arbor_input_bytes_total",
			Help: "Total markup bytes received",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.parses, m.inFlight, m.duration, m.nodes, m.depth, m.bytes)
	}
	return m
}

// Hooks records parse events into the collectors.
func (m *Metrics) Hooks() domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnParseStart: func(_ context.Context, e *domain.ParseEvent) {
			m.inFlight.Inc()
			m.bytes.Add(float64(e.InputBytes))
		},
		OnParseDone: func(_ context.Context, e *domain.ParseEvent) {
			m.inFlight.Dec()
			outcome := cacheLabel(e.CacheHit)
			m.parses.WithLabelValues(outcome).Inc()
			m.duration.WithLabelValues(outcome).Observe(e.Duration.Seconds())
			m.nodes.Observe(float64(e.Nodes))
			m.depth.Observe(float64(e.Depth))
		},
	}
}

func cacheLabel(hit bool) string {
	if hit {
		return "hit"
	}
	return "miss"
}
