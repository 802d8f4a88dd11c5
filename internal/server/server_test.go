package server

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/stratahq/strata/internal/app"
	"github.com/stratahq/strata/internal/common"
	"github.com/stratahq/strata/internal/interfaces"
	"github.com/stratahq/strata/internal/models"
	"github.com/stratahq/strata/internal/services/analysis"
	"github.com/stratahq/strata/internal/services/portfolio"
	badgerstore "github.com/stratahq/strata/internal/storage/badger"
)

// stubQuotes is a canned market-data source for handler tests.
type stubQuotes struct {
	quotes  map[string]*models.Quote
	bars    map[string][]models.HistoryBar
	fin     map[string]*models.Financials
	histErr error
}

func (s *stubQuotes) GetQuote(_ context.Context, symbol string) (*models.Quote, error) {
	if q, ok := s.quotes[symbol]; ok {
		return q, nil
	}
	return nil, interfaces.ErrSymbolNotFound
}

func (s *stubQuotes) GetHistory(_ context.Context, symbol, _, _ string) ([]models.HistoryBar, error) {
	if s.histErr != nil {
		return nil, s.histErr
	}
	return s.bars[symbol], nil
}

func (s *stubQuotes) GetFinancials(_ context.Context, symbol string) (*models.Financials, error) {
	if f, ok := s.fin[symbol]; ok {
		return f, nil
	}
	return nil, interfaces.ErrSymbolNotFound
}

func newTestServer(t *testing.T) (*Server, *stubQuotes) {
	t.Helper()
	logger := common.NewSilentLogger()
	cfg := common.NewDefaultConfig()

	store, err := badgerstore.NewStore(logger, filepath.Join(t.TempDir(), "portfolios"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	quotes := &stubQuotes{
		quotes: map[string]*models.Quote{
			"AAPL": {Symbol: "AAPL", Name: "Apple Inc.", Price: 150, Sector: "Technology", ChangePercent: 1.5},
			"MSFT": {Symbol: "MSFT", Name: "Microsoft Corporation", Price: 310, Sector: "Technology", ChangePercent: -0.4},
		},
		bars: map[string][]models.HistoryBar{
			"AAPL":  {{Date: "2025-06-14", Price: 149}, {Date: "2025-06-15", Price: 150}},
			"^GSPC": {{Date: "2025-06-14", Price: 5400}, {Date: "2025-06-15", Price: 5500}},
		},
		fin: map[string]*models.Financials{
			"AAPL": {Symbol: "AAPL", Name: "Apple Inc.", MarketCap: "2.5T", TrailingPE: 28.46},
		},
	}

	a := &app.App{
		Config:           cfg,
		Logger:           logger,
		Store:            store,
		QuoteService:     quotes,
		PortfolioService: portfolio.NewService(quotes, badgerstore.NewPortfolioStorage(store, logger), logger),
		AnalysisService:  analysis.NewService(nil, "groq", logger),
	}
	return &Server{app: a, logger: logger}, quotes
}

func jsonBody(t *testing.T, v interface{}) *bytes.Buffer {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal JSON: %v", err)
	}
	return bytes.NewBuffer(data)
}
