//go:build wireinject
// +build wireinject

package di

import (
	"SentimentScope/internal/handler/api"
	"SentimentScope/internal/services/sentiment"
	"SentimentScope/pkg/config"
	"SentimentScope/pkg/server"

	"github.com/google/wire"
)

// InitializeApp wires up all dependencies and returns the application.
// Wire will generate the implementation of this function.
func InitializeApp(cfg *config.Config) (*server.App, error) {
	wire.Build(
		// Observability
		ProvideLogger,
		ProvideRegistry,
		ProvideMetrics,
		ProvideHTTPMetrics,
		ProvideFetchMetrics,

		// Oracles and engines
		ProvideCompoundOracle,
		ProvidePolarityOracle,
		sentiment.NewBlender,
		ProvideClock,
		ProvideLocation,
		sentiment.NewSimulator,

		// Infrastructure
		ProvidePageFetcher,
		ProvideAnalysisCache,
		ProvideRateLimiter,

		// Use cases and transport
		ProvideAnalyzer,
		api.NewAnalyzeEchoHandler,
		ProvideHTTPHandler,
		ProvideHTTPServer,

		// Application server
		ProvideApp,
	)
	return &server.App{}, nil
}
