package portfolio

import (
	"fmt"

	"github.com/stratahq/strata/internal/models"
)

// generateRecommendations produces rule-based portfolio actions from the
// computed metrics and the user's stated preferences.
func generateRecommendations(metrics *models.PortfolioMetrics, prefs models.UserPreferences) []models.Recommendation {
	recommendations := []models.Recommendation{}

	var techValue float64
	for _, s := range metrics.SectorAllocation {
		if s.Name == "Technology" {
			techValue += s.Value
		}
	}
	techPercentage := 0.0
	if metrics.TotalValue > 0 {
		techPercentage = techValue / metrics.TotalValue * 100
	}

	if techPercentage > 30 {
		recommendations = append(recommendations, models.Recommendation{
			Type:     "rebalance",
			Message:  fmt.Sprintf("Consider reducing Technology exposure (currently %.1f%%) to improve diversification", techPercentage),
			Priority: "high",
		})
	}

	if prefs.RiskTolerance == "conservative" && metrics.RiskMetrics.Volatility > 0.15 {
		recommendations = append(recommendations, models.Recommendation{
			Type:     "buy",
			Message:  "Add defensive stocks like JNJ or PG to reduce portfolio volatility",
			Priority: "medium",
		})
	}

	for _, holding := range metrics.Holdings {
		if holding.GainLossPercent > 20 {
			recommendations = append(recommendations, models.Recommendation{
				Type:     "hold",
				Message:  fmt.Sprintf("Current %s position is performing well (+%.1f%%), maintain position", holding.Symbol, holding.GainLossPercent),
				Priority: "low",
			})
		}
	}

	return recommendations
}

// summarizePortfolio builds the short narrative block for an analyze response
func summarizePortfolio(metrics *models.PortfolioMetrics, holdingCount int) models.PortfolioSummary {
	riskLevel := "Moderate"
	if metrics.RiskMetrics.Volatility >= 0.2 {
		riskLevel = "High"
	}

	sectors := map[string]bool{}
	for _, h := range metrics.Holdings {
		sectors[h.Sector] = true
	}
	diversification := "Needs Improvement"
	if len(sectors) > 3 {
		diversification = "Good"
	}

	return models.PortfolioSummary{
		Summary:         fmt.Sprintf("Portfolio valued at $%.2f with %d holdings", metrics.TotalValue, holdingCount),
		RiskLevel:       riskLevel,
		Diversification: diversification,
	}
}
