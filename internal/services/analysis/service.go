// Package analysis turns quote snapshots into investment narratives, either
// through a configured LLM provider or a deterministic rule-based fallback.
package analysis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stratahq/strata/internal/common"
	"github.com/stratahq/strata/internal/interfaces"
	"github.com/stratahq/strata/internal/models"
)

// Service implements AnalysisService
type Service struct {
	llm      interfaces.LLMClient
	provider string
	logger   *common.Logger
	now      func() time.Time // injectable clock for testing
}

var _ interfaces.AnalysisService = (*Service)(nil)

// NewService creates an analysis service. llm may be nil, in which case
// AnalyzeStocks always produces the fallback analysis.
func NewService(llm interfaces.LLMClient, provider string, logger *common.Logger) *Service {
	return &Service{
		llm:      llm,
		provider: provider,
		logger:   logger,
		now:      time.Now,
	}
}

// Available reports whether an LLM provider is configured
func (s *Service) Available() bool {
	return s.llm != nil
}

// Provider returns the configured LLM provider name, or "none"
func (s *Service) Provider() string {
	if s.llm == nil {
		return "none"
	}
	return s.provider
}

// AnalyzeStocks runs a single combined LLM task over the stock snapshots and
// splits the response into named sections. Any LLM failure degrades to the
// canned fallback analysis rather than an error, so the endpoint always has
// something to return.
func (s *Service) AnalyzeStocks(ctx context.Context, stocks []models.AnalysisInput) *models.StockAnalysis {
	symbols := make([]string, 0, len(stocks))
	for _, stock := range stocks {
		symbols = append(symbols, stock.Symbol)
	}

	if s.llm == nil {
		return s.fallbackAnalysis(symbols)
	}

	response, err := s.llm.GenerateText(ctx, buildAnalysisPrompt(stocks, symbols))
	if err != nil {
		s.logger.Warn().Err(err).Str("provider", s.provider).Msg("LLM analysis failed, using fallback")
		return s.fallbackAnalysis(symbols)
	}

	analysis := s.structureResponse(response, symbols)
	s.logger.Debug().Strs("symbols", symbols).Str("model", s.llm.Model()).Msg("Stock analysis completed")
	return analysis
}

// buildAnalysisPrompt renders the combined investment-advisor task. The
// section headers are load-bearing: structureResponse splits on them.
func buildAnalysisPrompt(stocks []models.AnalysisInput, symbols []string) string {
	var overview strings.Builder
	for i, stock := range stocks {
		if i > 0 {
			overview.WriteString("\n")
		}
		fmt.Fprintf(&overview, "%s: $%v (%v%%), Volume: %s, Market Cap: %s, 52W: $%v - $%v, PE: %v",
			stock.Symbol, stock.Price, stock.ChangePercent,
			orNA(stock.Volume), orNA(stock.MarketCap),
			stock.FiftyTwoWeekLow, stock.FiftyTwoWeekHigh, stock.PE)
	}

	return fmt.Sprintf(`You are a single professional investment advisor responsible for providing a comprehensive analysis
for the following stocks:
%s

STOCK DATA:
%s

Provide a concise, investor-focused analysis that includes ALL of the following sections in order.
Do NOT omit any sections. Be specific and actionable. Keep each section crisp and avoid repetition.

FORMAT YOUR RESPONSE WITH THESE EXACT SECTIONS:

**Market Analysis:**
[Overall market and sector context relevant to these stocks]

**Technical Analysis:**
[Key technical insights across the symbols: trend, momentum, support/resistance]

**Investment Recommendations:**
[Buy/Hold/Sell with reasoning and expected scenarios for each symbol]

**Portfolio Allocation:**
[Suggested allocation guidelines and risk considerations]

**Investment Timeline:**
[Suggested horizons and milestones]

**Key Factors to Monitor:**
[Critical catalysts and trigger points to watch]

**Risk Assessment:**
[Key risks and mitigation ideas]

**Expected Returns:**
[Scenario-based expectations with probabilities]`,
		strings.Join(symbols, ", "), overview.String())
}

// structureResponse splits the raw model output into the response sections,
// merging the market and technical subsections. A response with none of the
// expected headers is kept whole under recommendations.
func (s *Service) structureResponse(response string, symbols []string) *models.StockAnalysis {
	sections := splitSections(response)

	analysis := &models.StockAnalysis{
		Summary:                "AI-powered analysis completed successfully",
		MarketAnalysis:         combineSections(sections, marketKeys),
		TechnicalAnalysis:      combineSections(sections, technicalKeys),
		RiskAssessment:         sections["risk_assessment"],
		Recommendations:        sections["recommendations"],
		PortfolioAllocation:    sections["portfolio_allocation"],
		InvestmentTimeline:     sections["investment_timeline"],
		KeyFactors:             sections["key_factors"],
		AlternativeInvestments: sections["alternative_investments"],
		ExpectedReturns:        sections["expected_returns"],
		StocksAnalyzed:         symbols,
		Timestamp:              s.now(),
		AIModel:                s.llm.Model(),
		ConfidenceScore:        0.85,
	}

	if analysis.Recommendations == "" && analysis.MarketAnalysis == "" && analysis.TechnicalAnalysis == "" {
		analysis.Recommendations = strings.TrimSpace(response)
		analysis.MarketAnalysis = "Market analysis completed by AI agents"
		analysis.TechnicalAnalysis = "Technical analysis completed by AI agents"
	}

	return analysis
}

// fallbackAnalysis is returned when no LLM is configured or the call failed
func (s *Service) fallbackAnalysis(symbols []string) *models.StockAnalysis {
	return &models.StockAnalysis{
		Summary:           "Analysis completed with basic insights",
		MarketAnalysis:    fmt.Sprintf("Basic market analysis for %s", strings.Join(symbols, ", ")),
		TechnicalAnalysis: "Technical indicators suggest monitoring price movements",
		RiskAssessment:    "Standard risk assessment - diversify portfolio",
		Recommendations:   "Consider consulting with a financial advisor",
		StocksAnalyzed:    symbols,
		Timestamp:         s.now(),
		AIModel:           "Fallback Analysis",
		ConfidenceScore:   0.5,
		Note:              "AI analysis temporarily unavailable, using basic insights",
	}
}
