package models

import "time"

// StockAnalysis is the structured result of an LLM stock analysis, split into
// named sections from the model's markdown response.
type StockAnalysis struct {
	Summary                string    `json:"summary"`
	MarketAnalysis         string    `json:"market_analysis"`
	TechnicalAnalysis      string    `json:"technical_analysis"`
	RiskAssessment         string    `json:"risk_assessment"`
	Recommendations        string    `json:"recommendations"`
	PortfolioAllocation    string    `json:"portfolio_allocation,omitempty"`
	InvestmentTimeline     string    `json:"investment_timeline,omitempty"`
	KeyFactors             string    `json:"key_factors,omitempty"`
	AlternativeInvestments string    `json:"alternative_investments,omitempty"`
	ExpectedReturns        string    `json:"expected_returns,omitempty"`
	StocksAnalyzed         []string  `json:"stocks_analyzed"`
	Timestamp              time.Time `json:"timestamp"`
	AIModel                string    `json:"ai_model"`
	ConfidenceScore        float64   `json:"confidence_score"`
	Note                   string    `json:"note,omitempty"`
}

// TechnicalSignals are the heuristic per-stock indicators from the simple analyzer
type TechnicalSignals struct {
	Trend      string `json:"trend"`      // Bullish / Bearish
	Momentum   string `json:"momentum"`   // Strong / Moderate
	Volatility string `json:"volatility"` // High / Low
}

// StockAssessment is one stock's entry in a simple (non-LLM) analysis
type StockAssessment struct {
	Symbol           string           `json:"symbol"`
	CurrentPrice     float64          `json:"current_price"`
	ChangePercent    float64          `json:"change_percent"`
	Volume           string           `json:"volume"`
	MarketCap        string           `json:"market_cap"`
	Recommendation   string           `json:"recommendation"` // BUY / HOLD / SELL
	Reasoning        string           `json:"reasoning"`
	TechnicalSignals TechnicalSignals `json:"technical_signals"`
}

// PortfolioInsights is the portfolio-level block of a simple analysis
type PortfolioInsights struct {
	DiversificationScore float64  `json:"diversification_score"`
	RiskLevel            string   `json:"risk_level"`
	SectorExposure       string   `json:"sector_exposure"`
	RecommendedActions   []string `json:"recommended_actions"`
}

// SimpleAnalysis is the rule-based analysis produced without an LLM call
type SimpleAnalysis struct {
	Summary           string            `json:"summary"`
	MarketAnalysis    string            `json:"market_analysis"`
	TechnicalAnalysis string            `json:"technical_analysis"`
	RiskAssessment    string            `json:"risk_assessment"`
	Recommendations   string            `json:"recommendations"`
	StocksAnalyzed    []string          `json:"stocks_analyzed"`
	Timestamp         time.Time         `json:"timestamp"`
	AIModel           string            `json:"ai_model"`
	ConfidenceScore   float64           `json:"confidence_score"`
	AnalysisType      string            `json:"analysis_type"`
	StockAnalyses     []StockAssessment `json:"stock_analyses"`
	PortfolioInsights PortfolioInsights `json:"portfolio_insights"`
}

// AnalysisInput is the per-stock snapshot fed into analysis prompts
type AnalysisInput struct {
	Symbol           string  `json:"symbol"`
	Price            float64 `json:"price"`
	ChangePercent    float64 `json:"changePercent"`
	Volume           string  `json:"volume"`
	MarketCap        string  `json:"marketCap"`
	FiftyTwoWeekHigh float64 `json:"fiftyTwoWeekHigh,omitempty"`
	FiftyTwoWeekLow  float64 `json:"fiftyTwoWeekLow,omitempty"`
	PE               float64 `json:"pe,omitempty"`
}
