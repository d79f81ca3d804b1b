package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	chartsNormalized *prometheus.CounterVec
	synastryScored   prometheus.Counter
	errorsTotal      *prometheus.CounterVec
	cacheLookups     *prometheus.CounterVec
	latency          *prometheus.HistogramVec
}

// New creates a new Prometheus metrics recorder.
func New() *Recorder {
	return &Recorder{
		chartsNormalized: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astrocore_charts_normalized_total",
				Help: "Total number of charts normalized",
			},
			[]string{"source"},
		),
		synastryScored: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "astrocore_synastry_scored_total",
				Help: "Total number of synastry comparisons scored",
			},
		),
		errorsTotal: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astrocore_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		cacheLookups: promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "astrocore_cache_lookups_total",
				Help: "Total number of chart cache lookups",
			},
			[]string{"result"},
		),
		latency: promauto.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "astrocore_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
	}
}

// RecordChartNormalized records a completed chart normalization. The source
// label distinguishes cache hits from fresh ephemeris fetches.
func (r *Recorder) RecordChartNormalized(source string) {
	r.chartsNormalized.WithLabelValues(source).Inc()
}

// RecordSynastryScored records a completed synastry scoring.
func (r *Recorder) RecordSynastryScored() {
	r.synastryScored.Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordCacheLookup records a cache lookup outcome ("hit" or "miss").
func (r *Recorder) RecordCacheLookup(result string) {
	r.cacheLookups.WithLabelValues(result).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}
