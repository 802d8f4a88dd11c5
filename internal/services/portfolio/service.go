// Package portfolio computes portfolio analytics: per-holding P&L, sector
// allocation, risk metrics and performance against the S&P 500 benchmark.
package portfolio

import (
	"context"
	"fmt"
	"time"

	"github.com/stratahq/strata/internal/common"
	"github.com/stratahq/strata/internal/interfaces"
	"github.com/stratahq/strata/internal/models"
)

// Service implements PortfolioService
type Service struct {
	quotes  interfaces.QuoteService
	storage interfaces.PortfolioStorage
	logger  *common.Logger
	now     func() time.Time // injectable clock for testing
}

var _ interfaces.PortfolioService = (*Service)(nil)

// NewService creates a new portfolio service.
// storage may be nil; Save and Load will return an error.
func NewService(quotes interfaces.QuoteService, storage interfaces.PortfolioStorage, logger *common.Logger) *Service {
	return &Service{
		quotes:  quotes,
		storage: storage,
		logger:  logger,
		now:     time.Now,
	}
}

// Analyze fetches quotes for each holding in input order, computes per-holding
// P&L, sector allocation and risk metrics, and attaches rule-based
// recommendations. A holding whose quote cannot be fetched is skipped and
// reported in FailedSymbols rather than aborting the whole computation.
func (s *Service) Analyze(ctx context.Context, holdings []models.Holding, prefs models.UserPreferences) (*models.AnalyzeResult, error) {
	metrics := s.computeMetrics(ctx, holdings)

	result := &models.AnalyzeResult{
		Portfolio:       metrics,
		Recommendations: generateRecommendations(metrics, prefs),
		UserPreferences: prefs,
		AIAnalysis:      summarizePortfolio(metrics, len(holdings)),
		Timestamp:       s.now(),
	}

	return result, nil
}

// holdingValue carries the full-precision value and sector of one successfully
// priced holding into the risk computation.
type holdingValue struct {
	symbol string
	value  float64
	sector string
}

// computeMetrics prices each holding and aggregates totals, allocation and
// risk. All aggregation runs at full precision; rounding happens only when
// populating the response structs.
func (s *Service) computeMetrics(ctx context.Context, holdings []models.Holding) *models.PortfolioMetrics {
	var (
		totalValue float64
		totalCost  float64
		details    []models.HoldingDetail
		values     []holdingValue
		failed     []string
	)

	sectorValues := map[string]float64{}
	sectorOrder := []string{}

	for _, h := range holdings {
		quote, err := s.quotes.GetQuote(ctx, h.Symbol)
		if err != nil {
			s.logger.Warn().Str("symbol", h.Symbol).Err(err).Msg("Skipping holding: quote fetch failed")
			failed = append(failed, h.Symbol)
			continue
		}

		currentValue := h.Quantity * quote.Price
		costBasis := h.Quantity * h.PurchasePrice
		gainLoss := currentValue - costBasis
		gainLossPercent := 0.0
		if costBasis > 0 {
			gainLossPercent = gainLoss / costBasis * 100
		}

		totalValue += currentValue
		totalCost += costBasis

		sector := normalizeSector(quote.Sector)
		if _, seen := sectorValues[sector]; !seen {
			sectorOrder = append(sectorOrder, sector)
		}
		sectorValues[sector] += currentValue

		details = append(details, models.HoldingDetail{
			Symbol:          quote.Symbol,
			Name:            quote.Name,
			Quantity:        h.Quantity,
			CurrentPrice:    round2(quote.Price),
			PurchasePrice:   h.PurchasePrice,
			Value:           round2(currentValue),
			CostBasis:       round2(costBasis),
			GainLoss:        round2(gainLoss),
			GainLossPercent: round2(gainLossPercent),
			Sector:          sector,
		})
		values = append(values, holdingValue{symbol: quote.Symbol, value: currentValue, sector: sector})
	}

	totalGainLoss := totalValue - totalCost
	totalGainLossPercent := 0.0
	if totalCost > 0 {
		totalGainLossPercent = totalGainLoss / totalCost * 100
	}

	allocation := make([]models.SectorAllocation, 0, len(sectorOrder))
	for _, sector := range sectorOrder {
		value := sectorValues[sector]
		percentage := 0.0
		if totalValue > 0 {
			percentage = value / totalValue * 100
		}
		allocation = append(allocation, models.SectorAllocation{
			Name:       sector,
			Value:      round2(value),
			Percentage: round2(percentage),
			Color:      models.SectorColor(sector),
		})
	}

	return &models.PortfolioMetrics{
		TotalValue:           round2(totalValue),
		TotalCost:            round2(totalCost),
		TotalGainLoss:        round2(totalGainLoss),
		TotalGainLossPercent: round2(totalGainLossPercent),
		DailyChange:          round2(totalGainLoss * 0.02),
		DailyChangePercent:   round2(totalGainLossPercent * 0.02),
		Holdings:             details,
		SectorAllocation:     allocation,
		RiskMetrics:          computeRiskMetrics(values, totalValue),
		FailedSymbols:        failed,
	}
}

// Save persists a named portfolio and returns it with its generated ID
func (s *Service) Save(ctx context.Context, name string, holdings []models.Holding) (*models.SavedPortfolio, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("portfolio storage not configured")
	}

	portfolio := &models.SavedPortfolio{
		Name:     name,
		Holdings: holdings,
	}
	if err := s.storage.SavePortfolio(ctx, portfolio); err != nil {
		return nil, err
	}
	return portfolio, nil
}

// Load retrieves a previously saved portfolio
func (s *Service) Load(ctx context.Context, id string) (*models.SavedPortfolio, error) {
	if s.storage == nil {
		return nil, fmt.Errorf("portfolio storage not configured")
	}
	return s.storage.GetPortfolio(ctx, id)
}

// normalizeSector maps the provider's missing-sector placeholders to the
// Unknown profile key.
func normalizeSector(sector string) string {
	if sector == "" || sector == "N/A" {
		return models.UnknownSector
	}
	return sector
}
