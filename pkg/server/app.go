package server

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SentimentScope/internal/domain/repository"
	xhttp "SentimentScope/pkg/http"
	applogger "SentimentScope/pkg/logger"
)

const defaultShutdownTimeout = 10 * time.Second

// App encapsulates the entire application lifecycle.
type App struct {
	httpServer      *xhttp.Server
	cache           repository.AnalysisCache
	logger          *applogger.Logger
	shutdownTimeout time.Duration
}

// New creates a new App. cache may be nil when caching is disabled.
func New(
	httpServer *xhttp.Server,
	cache repository.AnalysisCache,
	l *applogger.Logger,
	shutdownTimeout time.Duration,
) *App {
	if l == nil {
		l = applogger.Nop()
	}
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &App{
		httpServer:      httpServer,
		cache:           cache,
		logger:          l,
		shutdownTimeout: shutdownTimeout,
	}
}

// Run starts the application and blocks until interrupted.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.RunContext(ctx)
}

// RunContext starts the HTTP server and blocks until ctx is done or the
// listener fails.
func (a *App) RunContext(ctx context.Context) error {
	if err := a.httpServer.Start(); err != nil {
		a.logger.Error("http server start error", applogger.Error(err))
		return err
	}

	var runErr error
	select {
	case <-ctx.Done():
		a.logger.Info("shutdown signal received")
	case runErr = <-a.httpServer.Errors():
		a.logger.Error("http server failed", applogger.Error(runErr))
	}

	if err := a.shutdown(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}

// shutdown gracefully stops all services.
func (a *App) shutdown() error {
	a.logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	var firstErr error
	if err := a.httpServer.Stop(shutdownCtx); err != nil {
		a.logger.Error("http shutdown error", applogger.Error(err))
		firstErr = err
	}

	if a.cache != nil {
		if err := a.cache.Close(); err != nil {
			a.logger.Warn("cache close error", applogger.Error(err))
		}
	}

	a.logger.Info("shutdown complete")
	return firstErr
}
