package repository

import (
	"context"
	"time"
)

// PageFetcher retrieves the visible text of a web page.
type PageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (string, error)
}

// AnalysisCache stores serialized analysis results.
type AnalysisCache interface {
	GetBytes(ctx context.Context, key string) (b []byte, ok bool, err error)
	SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Close() error
}

type Metrics interface {
	RecordAnalysis(kind, label string)
	RecordError(kind string)
	RecordLatency(op string, seconds float64)
	RecordCacheLookup(hit bool)
	RecordTimelineVolume(total int)
}
