package interfaces

import (
	"context"

	"github.com/stratahq/strata/internal/models"
)

// QuoteService serves market data through a short-lived cache
type QuoteService interface {
	// GetQuote returns a quote, served from cache when fresh
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// GetHistory returns historical bars, served from cache when fresh
	GetHistory(ctx context.Context, symbol, period, interval string) ([]models.HistoryBar, error)

	// GetFinancials returns detailed financials, served from cache when fresh
	GetFinancials(ctx context.Context, symbol string) (*models.Financials, error)
}

// PortfolioService computes portfolio analytics
type PortfolioService interface {
	// Analyze computes metrics, risk and recommendations for a set of holdings
	Analyze(ctx context.Context, holdings []models.Holding, prefs models.UserPreferences) (*models.AnalyzeResult, error)

	// Performance compares portfolio performance against the S&P 500
	Performance(ctx context.Context, holdings []models.Holding, timeframe string) (*models.PerformanceResult, error)

	// ParseInput normalizes JSON or free-text portfolio input into holdings
	ParseInput(input string) (*models.ParsedPortfolio, error)

	// Save persists a portfolio and returns its generated ID
	Save(ctx context.Context, name string, holdings []models.Holding) (*models.SavedPortfolio, error)

	// Load retrieves a previously saved portfolio
	Load(ctx context.Context, id string) (*models.SavedPortfolio, error)

	// PerformanceChart renders the performance series as a PNG
	PerformanceChart(ctx context.Context, holdings []models.Holding, timeframe string) ([]byte, error)
}

// AnalysisService produces stock analysis narratives
type AnalysisService interface {
	// AnalyzeStocks runs the LLM analysis over stock snapshots, falling back
	// to canned analysis when the LLM is unavailable. Never returns an error
	// for LLM failures.
	AnalyzeStocks(ctx context.Context, stocks []models.AnalysisInput) *models.StockAnalysis

	// SimpleAnalysis produces the rule-based analysis with per-stock signals
	SimpleAnalysis(stocks []models.AnalysisInput) *models.SimpleAnalysis

	// Available reports whether an LLM provider is configured
	Available() bool

	// Provider returns the configured LLM provider name, or "none"
	Provider() string
}
