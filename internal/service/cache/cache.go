// Package cache builds the analysis cache selected by configuration.
package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"SentimentScope/internal/domain/repository"
	"SentimentScope/pkg/cache"
	"SentimentScope/pkg/config"
	"SentimentScope/pkg/logger"
)

// Store adapts a cache.Service to repository.AnalysisCache.
type Store struct {
	svc cache.Service
}

func NewStore(svc cache.Service) *Store {
	return &Store{svc: svc}
}

func (s *Store) GetBytes(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.svc.Get(ctx, key)
	if errors.Is(err, cache.ErrCacheMiss) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *Store) SetBytes(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return s.svc.Set(ctx, key, value, ttl)
}

func (s *Store) Close() error {
	return s.svc.Close()
}

// New returns nil when caching is disabled. Remote backends get an
// in-process L1 in front of them.
func New(ctx context.Context, cfg *config.Config, l *logger.Logger) (repository.AnalysisCache, error) {
	if !cfg.Cache.Enabled {
		l.Info("analysis cache disabled")
		return nil, nil
	}

	opts := []cache.RedisOption{
		cache.WithRedisAddr(cfg.Cache.Redis.Addr),
		cache.WithRedisPassword(cfg.Cache.Redis.Password),
		cache.WithRedisDB(cfg.Cache.Redis.DB),
		cache.WithRedisPrefix(cfg.Cache.Redis.Prefix),
	}

	var svc cache.Service
	switch cfg.Cache.Backend {
	case config.CacheBackendMemory:
		svc = cache.NewMemoryCache(cache.WithMemoryMaxSize(cfg.Cache.MaxEntries))
	case config.CacheBackendRedis:
		rc, err := cache.NewRedisCache(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("init redis cache: %w", err)
		}
		svc = cache.NewLayeredCache(rc, cache.WithLayeredMemorySize(cfg.Cache.MaxEntries))
	case config.CacheBackendValkey:
		vc, err := cache.NewValkeyCache(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("init valkey cache: %w", err)
		}
		svc = cache.NewLayeredCache(vc, cache.WithLayeredMemorySize(cfg.Cache.MaxEntries))
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}

	l.Info("analysis cache ready",
		logger.String("backend", cfg.Cache.Backend),
		logger.Duration("ttl_ms", cfg.Cache.TTL),
	)
	return NewStore(svc), nil
}
