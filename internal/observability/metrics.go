package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// comparison service.
type Metrics struct {
	RecordsLoaded prometheus.Gauge
	StoreReady    prometheus.Gauge

	// Comparison metrics.
	ComparisonsTotal   prometheus.Counter
	ComparisonDuration prometheus.Histogram

	// Map image fetch metrics.
	ImageFetchTotal    *prometheus.CounterVec // labels: outcome={live,fallback}
	ImageFetchDuration prometheus.Histogram
	ImageCacheTotal    *prometheus.CounterVec // labels: result={hit,miss}

	// Diagnostics sink metrics.
	DiagEventsPublished prometheus.Counter
	DiagSinkEnabled     prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		RecordsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "droughtwatch",
			Name:      "records_loaded",
			Help:      "Number of yearly records loaded from the dataset.",
		}),
		StoreReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "droughtwatch",
			Name:      "store_ready",
			Help:      "1 when the record store is loaded and serving, 0 otherwise.",
		}),
		ComparisonsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "droughtwatch",
			Name:      "comparisons_total",
			Help:      "Total year-to-year comparisons computed.",
		}),
		ComparisonDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "droughtwatch",
			Name:      "comparison_duration_seconds",
			Help:      "Duration of a complete two-sided comparison.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ImageFetchTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "droughtwatch",
			Name:      "image_fetch_total",
			Help:      "Map image resolutions by outcome.",
		}, []string{"outcome"}),
		ImageFetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "droughtwatch",
			Name:      "image_fetch_duration_seconds",
			Help:      "Upstream image fetch duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		ImageCacheTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "droughtwatch",
			Name:      "image_cache_total",
			Help:      "Image cache lookups by result.",
		}, []string{"result"}),
		DiagEventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "droughtwatch",
			Name:      "diag_events_published_total",
			Help:      "Fetch-failure diagnostic events published to the sink.",
		}),
		DiagSinkEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "droughtwatch",
			Name:      "diag_sink_enabled",
			Help:      "1 when the Kafka diagnostics sink is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.RecordsLoaded,
		m.StoreReady,
		m.ComparisonsTotal,
		m.ComparisonDuration,
		m.ImageFetchTotal,
		m.ImageFetchDuration,
		m.ImageCacheTotal,
		m.DiagEventsPublished,
		m.DiagSinkEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics with unregistered collectors to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		RecordsLoaded:       prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "droughtwatch", Name: "records_loaded"}),
		StoreReady:          prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "droughtwatch", Name: "store_ready"}),
		ComparisonsTotal:    prometheus.NewCounter(prometheus.CounterOpts{Namespace: "droughtwatch", Name: "comparisons_total"}),
		ComparisonDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "droughtwatch", Name: "comparison_duration_seconds"}),
		ImageFetchTotal:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "droughtwatch", Name: "image_fetch_total"}, []string{"outcome"}),
		ImageFetchDuration:  prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "droughtwatch", Name: "image_fetch_duration_seconds"}),
		ImageCacheTotal:     prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "droughtwatch", Name: "image_cache_total"}, []string{"result"}),
		DiagEventsPublished: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "droughtwatch", Name: "diag_events_published_total"}),
		DiagSinkEnabled:     prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "droughtwatch", Name: "diag_sink_enabled"}),
	}
}
