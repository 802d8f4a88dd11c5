// Package interfaces defines service contracts for Strata
package interfaces

import (
	"context"
	"errors"

	"github.com/stratahq/strata/internal/models"
)

// ErrSymbolNotFound is returned when the market-data provider has no data
// for a requested symbol.
var ErrSymbolNotFound = errors.New("symbol not found")

// MarketDataClient provides access to the market-data provider
type MarketDataClient interface {
	// GetQuote retrieves a normalized real-time quote for a symbol
	GetQuote(ctx context.Context, symbol string) (*models.Quote, error)

	// GetHistory retrieves historical bars for a symbol. Period and interval
	// use provider notation (e.g. "1y", "1d"). An empty series is not an error.
	GetHistory(ctx context.Context, symbol, period, interval string) ([]models.HistoryBar, error)

	// GetFinancials retrieves detailed valuation and profile data
	GetFinancials(ctx context.Context, symbol string) (*models.Financials, error)
}

// LLMClient generates free text from a prompt
type LLMClient interface {
	// GenerateText sends a prompt and returns the model's raw text response
	GenerateText(ctx context.Context, prompt string) (string, error)

	// Model returns the identifier of the underlying model
	Model() string
}
