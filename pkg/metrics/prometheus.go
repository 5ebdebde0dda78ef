package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain repository.Metrics using Prometheus.
type Recorder struct {
	analysesTotal  *prometheus.CounterVec
	errorsTotal    *prometheus.CounterVec
	latency        *prometheus.HistogramVec
	cacheLookups   *prometheus.CounterVec
	timelineVolume prometheus.Histogram
}

// New creates a Prometheus metrics recorder registered on reg.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		analysesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentimentscope_analyses_total",
				Help: "Completed analyses by kind and resulting label",
			},
			[]string{"kind", "label"},
		),
		errorsTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentimentscope_errors_total",
				Help: "Failed analyses by error kind",
			},
			[]string{"type"},
		),
		latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sentimentscope_operation_duration_seconds",
				Help:    "Duration of analysis operations in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"operation"},
		),
		cacheLookups: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sentimentscope_cache_lookups_total",
				Help: "URL analysis cache lookups by result",
			},
			[]string{"result"},
		),
		timelineVolume: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "sentimentscope_timeline_volume",
				Help:    "Total simulated volume per hashtag timeline",
				Buckets: prometheus.LinearBuckets(1000, 1000, 12),
			},
		),
	}
}

// RecordAnalysis records a completed analysis.
func (r *Recorder) RecordAnalysis(kind, label string) {
	r.analysesTotal.WithLabelValues(kind, label).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordCacheLookup records a cache hit or miss.
func (r *Recorder) RecordCacheLookup(hit bool) {
	result := "miss"
	if hit {
		result = "hit"
	}
	r.cacheLookups.WithLabelValues(result).Inc()
}

// RecordTimelineVolume records the summed volume of a simulated timeline.
func (r *Recorder) RecordTimelineVolume(total int) {
	r.timelineVolume.Observe(float64(total))
}
