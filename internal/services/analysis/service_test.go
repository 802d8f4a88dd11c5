package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stratahq/strata/internal/common"
	"github.com/stratahq/strata/internal/models"
)

type mockLLM struct {
	response string
	err      error
	prompts  []string
}

func (m *mockLLM) GenerateText(_ context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.err != nil {
		return "", m.err
	}
	return m.response, nil
}

func (m *mockLLM) Model() string { return "test-model" }

func newTestService(llm *mockLLM) *Service {
	svc := NewService(nil, "groq", common.NewSilentLogger())
	if llm != nil {
		svc.llm = llm
	}
	svc.now = func() time.Time { return time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC) }
	return svc
}

const structuredResponse = `Here is my analysis.

**Market Analysis:**
Markets are choppy.

**Sector Trends:**
Tech leads.

**Technical Analysis:**
Uptrend intact.

**Key Indicators:**
RSI at 60.

**Investment Recommendations:**
Buy AAPL.

**Risk Assessment:**
Concentration risk.

**Expected Returns:**
8-12% base case.`

func TestAnalyzeStocks_StructuredResponse(t *testing.T) {
	llm := &mockLLM{response: structuredResponse}
	svc := newTestService(llm)

	result := svc.AnalyzeStocks(context.Background(), []models.AnalysisInput{
		{Symbol: "AAPL", Price: 150.25, ChangePercent: 1.5, Volume: "45.2M", MarketCap: "2.5T"},
	})

	if result.MarketAnalysis != "Markets are choppy.\n\nTech leads." {
		t.Errorf("MarketAnalysis = %q", result.MarketAnalysis)
	}
	if result.TechnicalAnalysis != "Uptrend intact.\n\nRSI at 60." {
		t.Errorf("TechnicalAnalysis = %q", result.TechnicalAnalysis)
	}
	if result.Recommendations != "Buy AAPL." {
		t.Errorf("Recommendations = %q", result.Recommendations)
	}
	if result.RiskAssessment != "Concentration risk." {
		t.Errorf("RiskAssessment = %q", result.RiskAssessment)
	}
	if result.ExpectedReturns != "8-12% base case." {
		t.Errorf("ExpectedReturns = %q", result.ExpectedReturns)
	}
	if result.ConfidenceScore != 0.85 {
		t.Errorf("ConfidenceScore = %v, want 0.85", result.ConfidenceScore)
	}
	if result.AIModel != "test-model" {
		t.Errorf("AIModel = %q", result.AIModel)
	}
	if len(result.StocksAnalyzed) != 1 || result.StocksAnalyzed[0] != "AAPL" {
		t.Errorf("StocksAnalyzed = %v", result.StocksAnalyzed)
	}
	if result.Note != "" {
		t.Errorf("Note = %q, want empty on success", result.Note)
	}
}

func TestAnalyzeStocks_PromptCarriesStockData(t *testing.T) {
	llm := &mockLLM{response: structuredResponse}
	svc := newTestService(llm)

	svc.AnalyzeStocks(context.Background(), []models.AnalysisInput{
		{Symbol: "AAPL", Price: 150.25, ChangePercent: 1.5, Volume: "45.2M", MarketCap: "2.5T"},
		{Symbol: "MSFT", Price: 310, ChangePercent: -0.5, Volume: "22M", MarketCap: "2.3T"},
	})

	if len(llm.prompts) != 1 {
		t.Fatalf("len(prompts) = %d, want 1 combined call", len(llm.prompts))
	}
	prompt := llm.prompts[0]
	for _, want := range []string{
		"AAPL, MSFT",
		"AAPL: $150.25 (1.5%)",
		"Market Cap: 2.5T",
		"**Market Analysis:**",
		"**Expected Returns:**",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestAnalyzeStocks_UnstructuredResponseKeptWhole(t *testing.T) {
	llm := &mockLLM{response: "Free-form analysis without any headers."}
	svc := newTestService(llm)

	result := svc.AnalyzeStocks(context.Background(), []models.AnalysisInput{{Symbol: "AAPL"}})

	if result.Recommendations != "Free-form analysis without any headers." {
		t.Errorf("Recommendations = %q, want full response", result.Recommendations)
	}
	if result.MarketAnalysis != "Market analysis completed by AI agents" {
		t.Errorf("MarketAnalysis = %q", result.MarketAnalysis)
	}
	if result.TechnicalAnalysis != "Technical analysis completed by AI agents" {
		t.Errorf("TechnicalAnalysis = %q", result.TechnicalAnalysis)
	}
}

func TestAnalyzeStocks_LLMErrorFallsBack(t *testing.T) {
	llm := &mockLLM{err: errors.New("rate limited")}
	svc := newTestService(llm)

	result := svc.AnalyzeStocks(context.Background(), []models.AnalysisInput{
		{Symbol: "AAPL"}, {Symbol: "MSFT"},
	})

	if result.AIModel != "Fallback Analysis" {
		t.Errorf("AIModel = %q, want Fallback Analysis", result.AIModel)
	}
	if result.ConfidenceScore != 0.5 {
		t.Errorf("ConfidenceScore = %v, want 0.5", result.ConfidenceScore)
	}
	if result.MarketAnalysis != "Basic market analysis for AAPL, MSFT" {
		t.Errorf("MarketAnalysis = %q", result.MarketAnalysis)
	}
	if result.Note == "" {
		t.Error("Note should flag the fallback")
	}
}

func TestAnalyzeStocks_NoLLMConfigured(t *testing.T) {
	svc := newTestService(nil)

	result := svc.AnalyzeStocks(context.Background(), []models.AnalysisInput{{Symbol: "AAPL"}})
	if result.AIModel != "Fallback Analysis" {
		t.Errorf("AIModel = %q, want Fallback Analysis", result.AIModel)
	}
	if svc.Available() {
		t.Error("Available() = true with nil client")
	}
	if svc.Provider() != "none" {
		t.Errorf("Provider() = %q, want none", svc.Provider())
	}
}

func TestProvider_Configured(t *testing.T) {
	svc := newTestService(&mockLLM{})
	if !svc.Available() {
		t.Error("Available() = false with client set")
	}
	if svc.Provider() != "groq" {
		t.Errorf("Provider() = %q, want groq", svc.Provider())
	}
}

func TestSplitSections_IgnoresPreamble(t *testing.T) {
	sections := splitSections("ignored preamble\n**Risk Assessment:**\nline one\nline two")
	if sections["risk_assessment"] != "line one\nline two" {
		t.Errorf("risk_assessment = %q", sections["risk_assessment"])
	}
	if len(sections) != 1 {
		t.Errorf("len(sections) = %d, want 1", len(sections))
	}
}
