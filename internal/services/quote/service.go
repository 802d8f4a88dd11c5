// Package quote provides cached access to market data
package quote

import (
	"context"
	"strings"

	"github.com/stratahq/strata/internal/cache"
	"github.com/stratahq/strata/internal/common"
	"github.com/stratahq/strata/internal/interfaces"
	"github.com/stratahq/strata/internal/models"
)

// Service implements QuoteService, serving market data through a TTL cache.
// Cache reads are last-write-wins; concurrent fetches of the same symbol may
// each hit the provider once, which is acceptable for a short TTL.
type Service struct {
	client interfaces.MarketDataClient
	cache  *cache.Cache
	logger *common.Logger
}

var _ interfaces.QuoteService = (*Service)(nil)

// NewService creates a new quote service
func NewService(client interfaces.MarketDataClient, c *cache.Cache, logger *common.Logger) *Service {
	return &Service{
		client: client,
		cache:  c,
		logger: logger,
	}
}

// GetQuote returns a quote, served from cache when fresh
func (s *Service) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	symbol = normalizeSymbol(symbol)
	key := cache.Key("quote", symbol)

	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug().Str("symbol", symbol).Msg("Quote served from cache")
		return cached.(*models.Quote), nil
	}

	quote, err := s.client.GetQuote(ctx, symbol)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, quote)
	return quote, nil
}

// GetHistory returns historical bars, served from cache when fresh
func (s *Service) GetHistory(ctx context.Context, symbol, period, interval string) ([]models.HistoryBar, error) {
	symbol = normalizeSymbol(symbol)
	if period == "" {
		period = "1y"
	}
	if interval == "" {
		interval = "1d"
	}
	key := cache.Key("history", symbol, period, interval)

	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug().Str("symbol", symbol).Msg("History served from cache")
		return cached.([]models.HistoryBar), nil
	}

	bars, err := s.client.GetHistory(ctx, symbol, period, interval)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, bars)
	return bars, nil
}

// GetFinancials returns detailed financials, served from cache when fresh
func (s *Service) GetFinancials(ctx context.Context, symbol string) (*models.Financials, error) {
	symbol = normalizeSymbol(symbol)
	key := cache.Key("financials", symbol)

	if cached, ok := s.cache.Get(key); ok {
		s.logger.Debug().Str("symbol", symbol).Msg("Financials served from cache")
		return cached.(*models.Financials), nil
	}

	fin, err := s.client.GetFinancials(ctx, symbol)
	if err != nil {
		return nil, err
	}

	s.cache.Set(key, fin)
	return fin, nil
}

func normalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
