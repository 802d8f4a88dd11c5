// Package app wires configuration, storage, clients and services into a
// single application core shared by cmd/strata-server and the tests.
package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/stratahq/strata/internal/cache"
	"github.com/stratahq/strata/internal/clients/gemini"
	"github.com/stratahq/strata/internal/clients/groq"
	"github.com/stratahq/strata/internal/clients/yahoo"
	"github.com/stratahq/strata/internal/common"
	"github.com/stratahq/strata/internal/interfaces"
	"github.com/stratahq/strata/internal/services/analysis"
	"github.com/stratahq/strata/internal/services/portfolio"
	"github.com/stratahq/strata/internal/services/quote"
	badgerstore "github.com/stratahq/strata/internal/storage/badger"
)

// App holds all initialized services and clients.
type App struct {
	Config           *common.Config
	Logger           *common.Logger
	Store            *badgerstore.Store
	YahooClient      interfaces.MarketDataClient
	LLMClient        interfaces.LLMClient
	QuoteService     interfaces.QuoteService
	PortfolioService interfaces.PortfolioService
	AnalysisService  interfaces.AnalysisService
	StartupTime      time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes configuration, storage, clients and services.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	binDir := getBinaryDir()

	// Load configuration - check provided path, STRATA_CONFIG, then binary dir
	if configPath == "" {
		configPath = os.Getenv("STRATA_CONFIG")
	}
	if configPath == "" {
		configPath = filepath.Join(binDir, "strata.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/strata.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Resolve relative storage path to binary directory
	if config.Storage.Path != "" && !filepath.IsAbs(config.Storage.Path) {
		config.Storage.Path = filepath.Join(binDir, config.Storage.Path)
	}

	logger := common.NewLogger(&config.Logging)

	store, err := badgerstore.NewStore(logger, config.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	yahooClient := yahoo.NewClient(
		yahoo.WithBaseURL(config.Clients.Yahoo.BaseURL),
		yahoo.WithLogger(logger),
		yahoo.WithRateLimit(config.Clients.Yahoo.RateLimit),
		yahoo.WithTimeout(config.Clients.Yahoo.GetTimeout()),
	)

	llmClient := newLLMClient(config, logger)

	quoteCache := cache.New(config.Cache.GetTTL())
	quoteService := quote.NewService(yahooClient, quoteCache, logger)
	portfolioStorage := badgerstore.NewPortfolioStorage(store, logger)
	portfolioService := portfolio.NewService(quoteService, portfolioStorage, logger)
	analysisService := analysis.NewService(llmClient, config.Clients.LLM.Provider, logger)

	a := &App{
		Config:           config,
		Logger:           logger,
		Store:            store,
		YahooClient:      yahooClient,
		LLMClient:        llmClient,
		QuoteService:     quoteService,
		PortfolioService: portfolioService,
		AnalysisService:  analysisService,
		StartupTime:      startupStart,
	}

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// newLLMClient builds the configured analysis provider. A missing API key is
// not fatal; the analysis service degrades to its fallback output.
func newLLMClient(config *common.Config, logger *common.Logger) interfaces.LLMClient {
	provider := config.Clients.LLM.Provider

	apiKey, err := common.ResolveAPIKey(provider, config.Clients.LLM.APIKey)
	if err != nil {
		logger.Warn().Str("provider", provider).Msg("LLM API key not configured - AI analysis will use fallback output")
		return nil
	}

	switch provider {
	case "gemini":
		client, err := gemini.NewClient(context.Background(), apiKey,
			gemini.WithLogger(logger),
			gemini.WithModel(config.Clients.LLM.Model),
		)
		if err != nil {
			logger.Warn().Err(err).Msg("Failed to initialize Gemini client")
			return nil
		}
		return client
	case "groq":
		return groq.NewClient(apiKey, groq.DefaultBaseURL,
			groq.WithLogger(logger),
			groq.WithModel(config.Clients.LLM.Model),
		)
	default:
		logger.Warn().Str("provider", provider).Msg("Unknown LLM provider")
		return nil
	}
}

// Close releases all resources held by the App.
func (a *App) Close() {
	if a.Store != nil {
		a.Store.Close()
		a.Store = nil
	}
}
