package models

import "time"

// Holding represents a single portfolio position as supplied by the user
type Holding struct {
	Symbol        string  `json:"symbol"`
	Quantity      float64 `json:"quantity"`
	PurchasePrice float64 `json:"purchasePrice"`
}

// HoldingDetail is a holding enriched with current market data and P&L
type HoldingDetail struct {
	Symbol          string  `json:"symbol"`
	Name            string  `json:"name"`
	Quantity        float64 `json:"quantity"`
	CurrentPrice    float64 `json:"currentPrice"`
	PurchasePrice   float64 `json:"purchasePrice"`
	Value           float64 `json:"value"`
	CostBasis       float64 `json:"costBasis"`
	GainLoss        float64 `json:"gainLoss"`
	GainLossPercent float64 `json:"gainLossPercent"`
	Sector          string  `json:"sector"`
}

// SectorAllocation is the portfolio value held in one sector
type SectorAllocation struct {
	Name       string  `json:"name"`
	Value      float64 `json:"value"`
	Percentage float64 `json:"percentage"`
	Color      string  `json:"color"`
}

// RiskMetrics is the derived portfolio risk bundle
type RiskMetrics struct {
	Volatility  float64 `json:"volatility"`
	SharpeRatio float64 `json:"sharpeRatio"`
	Beta        float64 `json:"beta"`
	MaxDrawdown float64 `json:"maxDrawdown"`
	VaR95       float64 `json:"var95"`
}

// PortfolioMetrics aggregates holdings, allocation and risk for one request.
// FailedSymbols lists holdings skipped because their quote could not be
// fetched; the rest of the metrics cover the successful holdings only.
type PortfolioMetrics struct {
	TotalValue           float64            `json:"totalValue"`
	TotalCost            float64            `json:"totalCost"`
	TotalGainLoss        float64            `json:"totalGainLoss"`
	TotalGainLossPercent float64            `json:"totalGainLossPercent"`
	DailyChange          float64            `json:"dailyChange"`
	DailyChangePercent   float64            `json:"dailyChangePercent"`
	Holdings             []HoldingDetail    `json:"holdings"`
	SectorAllocation     []SectorAllocation `json:"sectorAllocation"`
	RiskMetrics          RiskMetrics        `json:"riskMetrics"`
	FailedSymbols        []string           `json:"failedSymbols,omitempty"`
}

// UserPreferences captures the optional investor profile sent with analyze requests
type UserPreferences struct {
	RiskTolerance     string  `json:"riskTolerance"`
	InvestmentGoals   string  `json:"investmentGoals"`
	TimeHorizon       string  `json:"timeHorizon"`
	MonthlyInvestment float64 `json:"monthlyInvestment"`
	AvailableCapital  float64 `json:"availableCapital"`
}

// Recommendation is a single rule-generated portfolio action
type Recommendation struct {
	Type     string `json:"type"` // rebalance, buy, sell, hold
	Message  string `json:"message"`
	Priority string `json:"priority"` // high, medium, low
}

// PortfolioSummary is the short narrative block attached to an analysis response
type PortfolioSummary struct {
	Summary         string `json:"summary"`
	RiskLevel       string `json:"riskLevel"`
	Diversification string `json:"diversification"`
}

// AnalyzeResult is the full response for a portfolio analyze request
type AnalyzeResult struct {
	Portfolio       *PortfolioMetrics `json:"portfolio"`
	Recommendations []Recommendation  `json:"recommendations"`
	UserPreferences UserPreferences   `json:"userPreferences"`
	AIAnalysis      PortfolioSummary  `json:"aiAnalysis"`
	Timestamp       time.Time         `json:"timestamp"`
}

// PerformancePoint is one day of portfolio vs benchmark values
type PerformancePoint struct {
	Date      string  `json:"date"`
	Portfolio float64 `json:"portfolio"`
	SP500     float64 `json:"sp500"`
}

// BenchmarkPerformance summarizes the benchmark index over a timeframe
type BenchmarkPerformance struct {
	CurrentValue  float64 `json:"current_value"`
	ReturnValue   float64 `json:"return_value"`
	ReturnPercent float64 `json:"return_percent"`
}

// PerformanceResult compares portfolio performance against the S&P 500
type PerformanceResult struct {
	PortfolioValue         float64            `json:"portfolioValue"`
	PortfolioReturn        float64            `json:"portfolioReturn"`
	PortfolioReturnPercent float64            `json:"portfolioReturnPercent"`
	SP500Value             float64            `json:"sp500Value"`
	SP500Return            float64            `json:"sp500Return"`
	SP500ReturnPercent     float64            `json:"sp500ReturnPercent"`
	Outperformance         float64            `json:"outperformance"`
	HistoricalData         []PerformancePoint `json:"historicalData"`
	Holdings               []HoldingDetail    `json:"holdings"`
	LastUpdated            time.Time          `json:"lastUpdated"`
}

// ParsedPortfolio is the result of parsing free-text or JSON portfolio input
type ParsedPortfolio struct {
	Holdings    []Holding `json:"holdings"`
	InputFormat string    `json:"input_format"`
	Timestamp   time.Time `json:"timestamp"`
}

// SavedPortfolio is a persisted portfolio snapshot
type SavedPortfolio struct {
	ID        string    `json:"id" badgerhold:"key"`
	Name      string    `json:"name"`
	Holdings  []Holding `json:"holdings"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
