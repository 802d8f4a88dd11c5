package analysis

import (
	"strings"
	"testing"

	"github.com/stratahq/strata/internal/models"
)

func TestSimpleAnalysis_Recommendations(t *testing.T) {
	tests := []struct {
		name           string
		changePercent  float64
		recommendation string
		reasoning      string
	}{
		{"stable", 1.2, "HOLD", "stable performance with minimal volatility"},
		{"stable negative", -2.9, "HOLD", "stable performance with minimal volatility"},
		{"overbought", 6.1, "SELL", "strong positive momentum but may be overbought"},
		{"oversold", -7.5, "BUY", "oversold conditions with potential recovery"},
		{"moderate up", 4.0, "HOLD", "moderate positive momentum"},
		{"moderate down", -4.0, "HOLD", "moderate negative momentum"},
	}

	svc := newTestService(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := svc.SimpleAnalysis([]models.AnalysisInput{
				{Symbol: "TEST", Price: 100, ChangePercent: tt.changePercent},
			})
			if len(result.StockAnalyses) != 1 {
				t.Fatalf("len(StockAnalyses) = %d", len(result.StockAnalyses))
			}
			got := result.StockAnalyses[0]
			if got.Recommendation != tt.recommendation {
				t.Errorf("Recommendation = %q, want %q", got.Recommendation, tt.recommendation)
			}
			if !strings.Contains(got.Reasoning, tt.reasoning) {
				t.Errorf("Reasoning = %q, want substring %q", got.Reasoning, tt.reasoning)
			}
		})
	}
}

func TestSimpleAnalysis_TechnicalSignals(t *testing.T) {
	svc := newTestService(nil)
	result := svc.SimpleAnalysis([]models.AnalysisInput{
		{Symbol: "UP", ChangePercent: 6},
		{Symbol: "DOWN", ChangePercent: -1},
	})

	up := result.StockAnalyses[0].TechnicalSignals
	if up.Trend != "Bullish" || up.Momentum != "Strong" || up.Volatility != "High" {
		t.Errorf("signals for +6%% = %+v", up)
	}
	down := result.StockAnalyses[1].TechnicalSignals
	if down.Trend != "Bearish" || down.Momentum != "Moderate" || down.Volatility != "Low" {
		t.Errorf("signals for -1%% = %+v", down)
	}
}

func TestSimpleAnalysis_Envelope(t *testing.T) {
	svc := newTestService(nil)
	result := svc.SimpleAnalysis([]models.AnalysisInput{
		{Symbol: "AAPL", Price: 150, ChangePercent: 1, Volume: "45.2M", MarketCap: "2.5T"},
		{Symbol: "MSFT", Price: 310, ChangePercent: 2},
	})

	if result.AIModel != "Enhanced Market Analysis" {
		t.Errorf("AIModel = %q", result.AIModel)
	}
	if result.ConfidenceScore != 0.75 {
		t.Errorf("ConfidenceScore = %v", result.ConfidenceScore)
	}
	if result.AnalysisType != "comprehensive_stock_analysis" {
		t.Errorf("AnalysisType = %q", result.AnalysisType)
	}
	if !strings.Contains(result.Summary, "2 stocks") {
		t.Errorf("Summary = %q", result.Summary)
	}
	if !strings.Contains(result.MarketAnalysis, "AAPL, MSFT") {
		t.Errorf("MarketAnalysis = %q", result.MarketAnalysis)
	}
	if len(result.PortfolioInsights.RecommendedActions) != 4 {
		t.Errorf("RecommendedActions = %v", result.PortfolioInsights.RecommendedActions)
	}

	// Missing volume and market cap fall back to N/A
	if result.StockAnalyses[1].Volume != "N/A" || result.StockAnalyses[1].MarketCap != "N/A" {
		t.Errorf("missing fields = %q/%q, want N/A", result.StockAnalyses[1].Volume, result.StockAnalyses[1].MarketCap)
	}
}
