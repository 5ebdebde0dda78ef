// Package webpage fetches remote pages and extracts their visible text.
package webpage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	domainservice "SentimentScope/internal/domain/service"
	"SentimentScope/internal/service/metrics"
	apphttp "SentimentScope/pkg/http"
	"SentimentScope/pkg/logger"
)

const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher implements repository.PageFetcher over HTTP. Concurrent fetches of
// the same URL share one request.
type Fetcher struct {
	client    *apphttp.Client
	userAgent string
	group     singleflight.Group
	metrics   *metrics.FetchMetrics
	log       *logger.Logger
}

type Option func(*Fetcher)

func WithClient(c *apphttp.Client) Option {
	return func(f *Fetcher) { f.client = c }
}

func WithUserAgent(ua string) Option {
	return func(f *Fetcher) { f.userAgent = ua }
}

func WithMetrics(m *metrics.FetchMetrics) Option {
	return func(f *Fetcher) { f.metrics = m }
}

func WithLogger(l *logger.Logger) Option {
	return func(f *Fetcher) { f.log = l }
}

func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		userAgent: DefaultUserAgent,
		log:       logger.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = apphttp.NewClient(
			apphttp.WithTimeout(10*time.Second),
			apphttp.WithMaxBodyBytes(5<<20),
		)
	}
	return f
}

func (f *Fetcher) Fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(rawURL))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("%w: invalid url %q", domainservice.ErrFetch, rawURL)
	}

	start := time.Now()
	v, err, shared := f.group.Do(u.String(), func() (interface{}, error) {
		return f.fetch(ctx, u)
	})
	if shared && f.metrics != nil {
		f.metrics.Shared.Inc()
	}
	f.observe(start, err)
	if err != nil {
		f.log.Warn("page fetch failed", logger.String("url", u.String()), logger.Error(err))
		return "", err
	}

	text := v.(string)
	if f.metrics != nil {
		f.metrics.Bytes.Observe(float64(len(text)))
	}
	return text, nil
}

func (f *Fetcher) fetch(ctx context.Context, u *url.URL) (string, error) {
	var raw []byte
	err := f.client.SendAndParse(ctx, &apphttp.RequestOptions{
		Method: apphttp.MethodGet,
		URL:    u.String(),
		Headers: map[string]string{
			"User-Agent": f.userAgent,
			"Accept":     "text/html,application/xhtml+xml",
		},
	}, &raw)
	if err != nil {
		var se *apphttp.StatusError
		if errors.As(err, &se) {
			return "", fmt.Errorf("%w: %s returned status %d", domainservice.ErrFetch, u.Host, se.StatusCode)
		}
		return "", fmt.Errorf("%w: %v", domainservice.ErrFetch, err)
	}

	return ExtractText(raw, u)
}

func (f *Fetcher) observe(start time.Time, err error) {
	if f.metrics == nil {
		return
	}
	outcome := "ok"
	switch {
	case errors.Is(err, domainservice.ErrNoContent):
		outcome = "empty"
		f.metrics.Errors.WithLabelValues("no_content").Inc()
	case err != nil:
		outcome = "error"
		f.metrics.Errors.WithLabelValues("fetch").Inc()
	}
	f.metrics.Latency.WithLabelValues(outcome).Observe(time.Since(start).Seconds())
}
