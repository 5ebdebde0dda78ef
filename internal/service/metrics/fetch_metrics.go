// Package metrics instruments the outbound page fetcher.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// FetchMetrics records page fetch outcomes.
type FetchMetrics struct {
	Latency *prometheus.HistogramVec
	Errors  *prometheus.CounterVec
	Bytes   prometheus.Histogram
	Shared  prometheus.Counter
}

func NewFetchMetrics(reg prometheus.Registerer) *FetchMetrics {
	f := promauto.With(reg)
	return &FetchMetrics{
		Latency: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "sentimentscope",
				Subsystem: "fetcher",
				Name:      "latency_seconds",
				Help:      "Latency of page fetches",
				Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"outcome"},
		),
		Errors: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "sentimentscope",
				Subsystem: "fetcher",
				Name:      "errors_total",
				Help:      "Page fetch errors by reason",
			},
			[]string{"reason"},
		),
		Bytes: f.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "sentimentscope",
				Subsystem: "fetcher",
				Name:      "extracted_bytes",
				Help:      "Size of extracted page text",
				Buckets:   prometheus.ExponentialBuckets(256, 4, 8),
			},
		),
		Shared: f.NewCounter(
			prometheus.CounterOpts{
				Namespace: "sentimentscope",
				Subsystem: "fetcher",
				Name:      "shared_total",
				Help:      "Fetches served by an identical in-flight request",
			},
		),
	}
}
