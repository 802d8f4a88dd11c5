package portfolio

import (
	"context"
	"time"

	"github.com/stratahq/strata/internal/models"
)

const benchmarkSymbol = "^GSPC"

var timeframePeriods = map[string]string{
	"1M": "1mo",
	"3M": "3mo",
	"6M": "6mo",
	"1Y": "1y",
}

// mockBenchmarkReturns are the fallback S&P 500 returns used when the
// benchmark fetch yields no data.
var mockBenchmarkReturns = map[string]float64{
	"1M": 2.5,
	"3M": 8.2,
	"6M": 15.7,
	"1Y": 22.3,
}

const mockBenchmarkValue = 4500

// Performance prices the portfolio and compares its return against the
// S&P 500 over the requested timeframe. A holding whose quote fails is
// valued at its purchase price rather than dropped, so the totals stay
// comparable with the analyze endpoint.
func (s *Service) Performance(ctx context.Context, holdings []models.Holding, timeframe string) (*models.PerformanceResult, error) {
	var (
		totalValue float64
		totalCost  float64
		details    []models.HoldingDetail
	)

	for _, h := range holdings {
		currentPrice := h.PurchasePrice
		name := h.Symbol

		quote, err := s.quotes.GetQuote(ctx, h.Symbol)
		if err != nil {
			s.logger.Warn().Str("symbol", h.Symbol).Err(err).Msg("Using purchase price: quote fetch failed")
		} else {
			currentPrice = quote.Price
			name = quote.Name
		}

		currentValue := h.Quantity * currentPrice
		costBasis := h.Quantity * h.PurchasePrice
		gainLoss := currentValue - costBasis
		gainLossPercent := 0.0
		if costBasis > 0 {
			gainLossPercent = gainLoss / costBasis * 100
		}

		totalValue += currentValue
		totalCost += costBasis

		details = append(details, models.HoldingDetail{
			Symbol:          h.Symbol,
			Name:            name,
			Quantity:        h.Quantity,
			CurrentPrice:    round2(currentPrice),
			PurchasePrice:   h.PurchasePrice,
			Value:           round2(currentValue),
			CostBasis:       round2(costBasis),
			GainLoss:        round2(gainLoss),
			GainLossPercent: round2(gainLossPercent),
		})
	}

	portfolioReturn := totalValue - totalCost
	portfolioReturnPercent := 0.0
	if totalCost > 0 {
		portfolioReturnPercent = portfolioReturn / totalCost * 100
	}

	benchmark, bars := s.benchmarkPerformance(ctx, timeframe)

	return &models.PerformanceResult{
		PortfolioValue:         round2(totalValue),
		PortfolioReturn:        round2(portfolioReturn),
		PortfolioReturnPercent: round2(portfolioReturnPercent),
		SP500Value:             benchmark.CurrentValue,
		SP500Return:            benchmark.ReturnValue,
		SP500ReturnPercent:     benchmark.ReturnPercent,
		Outperformance:         round2(portfolioReturnPercent - benchmark.ReturnPercent),
		HistoricalData:         buildPerformanceSeries(totalValue, bars, timeframe, s.now()),
		Holdings:               details,
		LastUpdated:            s.now(),
	}, nil
}

// benchmarkPerformance fetches the S&P 500 series for a timeframe, falling
// back to canned figures when the provider has no data.
func (s *Service) benchmarkPerformance(ctx context.Context, timeframe string) (models.BenchmarkPerformance, []models.HistoryBar) {
	period, ok := timeframePeriods[timeframe]
	if !ok {
		period = "1mo"
	}

	bars, err := s.quotes.GetHistory(ctx, benchmarkSymbol, period, "1d")
	if err != nil || len(bars) == 0 {
		if err != nil {
			s.logger.Warn().Err(err).Msg("Benchmark fetch failed, using mock data")
		}
		return mockBenchmark(timeframe), nil
	}

	startValue := bars[0].Price
	currentValue := bars[len(bars)-1].Price
	returnValue := currentValue - startValue
	returnPercent := 0.0
	if startValue > 0 {
		returnPercent = returnValue / startValue * 100
	}

	return models.BenchmarkPerformance{
		CurrentValue:  round2(currentValue),
		ReturnValue:   round2(returnValue),
		ReturnPercent: round2(returnPercent),
	}, bars
}

func mockBenchmark(timeframe string) models.BenchmarkPerformance {
	returnPercent, ok := mockBenchmarkReturns[timeframe]
	if !ok {
		returnPercent = mockBenchmarkReturns["1M"]
	}
	return models.BenchmarkPerformance{
		CurrentValue:  mockBenchmarkValue,
		ReturnValue:   round2(mockBenchmarkValue * returnPercent / 100),
		ReturnPercent: returnPercent,
	}
}

// buildPerformanceSeries derives the daily portfolio-vs-benchmark chart from
// the benchmark closes: the portfolio is assumed to track the index day to
// day, anchored so its final point equals the current portfolio value. With
// no benchmark data a flat-growth mock series is produced instead.
func buildPerformanceSeries(totalValue float64, bars []models.HistoryBar, timeframe string, now time.Time) []models.PerformancePoint {
	if len(bars) == 0 {
		return mockPerformanceSeries(totalValue, timeframe, now)
	}

	last := bars[len(bars)-1].Price
	points := make([]models.PerformancePoint, 0, len(bars))
	for _, bar := range bars {
		portfolioValue := totalValue
		if last > 0 {
			portfolioValue = totalValue * bar.Price / last
		}
		points = append(points, models.PerformancePoint{
			Date:      bar.Date,
			Portfolio: round2(portfolioValue),
			SP500:     round2(bar.Price),
		})
	}
	return points
}

var timeframeDays = map[string]int{
	"1M": 30,
	"3M": 90,
	"6M": 180,
	"1Y": 365,
}

// mockPerformanceSeries interpolates linearly from the implied start values
// to today's, one point per day.
func mockPerformanceSeries(totalValue float64, timeframe string, now time.Time) []models.PerformancePoint {
	days, ok := timeframeDays[timeframe]
	if !ok {
		days = 30
	}
	returnPercent, ok := mockBenchmarkReturns[timeframe]
	if !ok {
		returnPercent = mockBenchmarkReturns["1M"]
	}

	growth := 1 + returnPercent/100
	portfolioStart := totalValue / growth
	benchmarkStart := float64(mockBenchmarkValue) / growth

	points := make([]models.PerformancePoint, 0, days+1)
	for i := 0; i <= days; i++ {
		progress := float64(i) / float64(days)
		points = append(points, models.PerformancePoint{
			Date:      now.AddDate(0, 0, -(days - i)).Format("2006-01-02"),
			Portfolio: round2(portfolioStart + (totalValue-portfolioStart)*progress),
			SP500:     round2(benchmarkStart + (mockBenchmarkValue-benchmarkStart)*progress),
		})
	}
	return points
}
