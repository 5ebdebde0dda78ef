package di

import (
	"context"
	"fmt"
	"time"

	"SentimentScope/internal/domain/repository"
	domainservice "SentimentScope/internal/domain/service"
	"SentimentScope/internal/handler/api"
	icache "SentimentScope/internal/service/cache"
	imetrics "SentimentScope/internal/service/metrics"
	"SentimentScope/internal/service/ratelimit"
	"SentimentScope/internal/service/webpage"
	"SentimentScope/internal/services/lexicon"
	"SentimentScope/internal/services/sentiment"
	"SentimentScope/internal/usecase"
	"SentimentScope/pkg/config"
	xhttp "SentimentScope/pkg/http"
	"SentimentScope/pkg/http/middleware"
	"SentimentScope/pkg/logger"
	"SentimentScope/pkg/metrics"
	"SentimentScope/pkg/server"

	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// ProvideLogger creates the application logger from config.
func ProvideLogger(cfg *config.Config) (*logger.Logger, error) {
	l, err := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return l.With(logger.String("env", cfg.Environment)), nil
}

// ProvideRegistry creates the Prometheus registry shared by every collector.
func ProvideRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	return reg
}

// ProvideMetrics creates a Prometheus metrics recorder.
func ProvideMetrics(reg *prometheus.Registry) repository.Metrics {
	return metrics.New(reg)
}

func ProvideHTTPMetrics(reg *prometheus.Registry) *middleware.HTTPMetrics {
	return middleware.NewHTTPMetrics(reg)
}

func ProvideFetchMetrics(reg *prometheus.Registry) *imetrics.FetchMetrics {
	return imetrics.NewFetchMetrics(reg)
}

func ProvideClock() clockwork.Clock {
	return clockwork.NewRealClock()
}

// ProvideLocation resolves the timezone used for timeline hours.
func ProvideLocation(cfg *config.Config) (*time.Location, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, fmt.Errorf("timezone: %w", err)
	}
	return loc, nil
}

func ProvideCompoundOracle() domainservice.CompoundOracle {
	return lexicon.NewVaderOracle()
}

func ProvidePolarityOracle(l *logger.Logger) domainservice.PolarityOracle {
	return lexicon.NewPatternOracle(l)
}

// ProvidePageFetcher creates the HTTP page fetcher.
func ProvidePageFetcher(cfg *config.Config, m *imetrics.FetchMetrics, l *logger.Logger) repository.PageFetcher {
	client := xhttp.NewClient(
		xhttp.WithTimeout(cfg.Fetcher.Timeout),
		xhttp.WithMaxBodyBytes(cfg.Fetcher.MaxBodyBytes),
	)
	return webpage.NewFetcher(
		webpage.WithClient(client),
		webpage.WithUserAgent(cfg.Fetcher.UserAgent),
		webpage.WithMetrics(m),
		webpage.WithLogger(l),
	)
}

// ProvideAnalysisCache connects the configured cache backend. Returns nil
// when caching is disabled.
func ProvideAnalysisCache(cfg *config.Config, l *logger.Logger) (repository.AnalysisCache, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	c, err := icache.New(ctx, cfg, l)
	if err != nil {
		return nil, fmt.Errorf("analysis cache: %w", err)
	}
	return c, nil
}

// ProvideAnalyzer creates the analysis use case.
func ProvideAnalyzer(
	cfg *config.Config,
	blender *sentiment.Blender,
	simulator *sentiment.Simulator,
	fetcher repository.PageFetcher,
	store repository.AnalysisCache,
	m repository.Metrics,
	l *logger.Logger,
) *usecase.Analyzer {
	return usecase.NewAnalyzer(blender, simulator, fetcher, store, m, l, usecase.AnalyzerOptions{
		TopN:           cfg.Analysis.TopN,
		MinTokenLength: cfg.Analysis.MinTokenLength,
		CacheTTL:       cfg.Cache.TTL,
	})
}

func ProvideHTTPHandler(h *api.AnalyzeEchoHandler) xhttp.Handler {
	return h
}

// ProvideRateLimiter returns nil when rate limiting is disabled.
func ProvideRateLimiter(cfg *config.Config) middleware.Allower {
	if !cfg.RateLimit.Enabled {
		return nil
	}
	return ratelimit.New(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
}

// ProvideHTTPServer creates the Echo server with the configured middleware.
func ProvideHTTPServer(
	cfg *config.Config,
	handler xhttp.Handler,
	l *logger.Logger,
	reg *prometheus.Registry,
	httpMetrics *middleware.HTTPMetrics,
	limiter middleware.Allower,
) *xhttp.Server {
	opts := []xhttp.ServerOption{
		xhttp.WithPort(cfg.Server.Port),
		xhttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
		xhttp.WithCORSOrigins(cfg.Server.CORSOrigins),
	}
	if cfg.Metrics.Enabled {
		opts = append(opts, xhttp.WithMetrics(httpMetrics, reg, cfg.Metrics.Path, cfg.Metrics.SlowThreshold))
	}
	if limiter != nil {
		opts = append(opts, xhttp.WithRateLimiter(limiter))
	}
	l.Info("http server configured",
		logger.Int("port", cfg.Server.Port),
		logger.Strings("cors_origins", cfg.Server.CORSOrigins),
		logger.Bool("metrics", cfg.Metrics.Enabled),
		logger.Bool("rate_limit", limiter != nil),
	)
	return xhttp.NewServer(handler, l, opts...)
}

// ProvideApp creates the application.
func ProvideApp(cfg *config.Config, srv *xhttp.Server, store repository.AnalysisCache, l *logger.Logger) *server.App {
	return server.New(srv, store, l, cfg.Server.ShutdownTimeout)
}
