package portfolio

import (
	"math"

	"github.com/stratahq/strata/internal/models"
)

const (
	marketReturn  = 0.08
	riskFreeRate  = 0.02
	tradingDays   = 252
	zScore95      = 1.645
	defensiveBand = 0.3
)

// computeRiskMetrics derives the portfolio risk bundle from sector risk
// profiles weighted by holding value. The computation order is load-bearing:
// Sharpe, drawdown and VaR are taken from the diversification-adjusted
// volatility BEFORE the defensive-sector reduction, which only lowers the
// reported volatility itself.
func computeRiskMetrics(values []holdingValue, totalValue float64) models.RiskMetrics {
	if len(values) == 0 || totalValue == 0 {
		return models.RiskMetrics{}
	}

	sectorWeights := map[string]float64{}
	var weightedVolatility, weightedBeta float64

	for _, v := range values {
		weight := v.value / totalValue
		sectorWeights[v.sector] += weight

		profile := models.RiskProfileFor(v.sector)
		weightedVolatility += weight * profile.Volatility
		weightedBeta += weight * profile.Beta
	}

	// More sectors lower aggregate risk, floored at 0.7
	sectorCount := len(sectorWeights)
	diversificationFactor := math.Max(0.7, 1-float64(sectorCount-1)*0.05)
	weightedVolatility *= diversificationFactor

	expectedReturn := weightedBeta*(marketReturn-riskFreeRate) + riskFreeRate
	sharpeRatio := 0.0
	if weightedVolatility > 0 {
		sharpeRatio = (expectedReturn - riskFreeRate) / weightedVolatility
	}

	maxDrawdown := -weightedVolatility * 0.4
	var95 := -weightedVolatility / math.Sqrt(tradingDays) * zScore95

	var defensiveWeight float64
	for _, sector := range models.DefensiveSectors {
		defensiveWeight += sectorWeights[sector]
	}
	if defensiveWeight > defensiveBand {
		weightedVolatility *= 1 - defensiveWeight*0.1
	}

	return models.RiskMetrics{
		Volatility:  round3(weightedVolatility),
		SharpeRatio: round3(sharpeRatio),
		Beta:        round3(weightedBeta),
		MaxDrawdown: round3(maxDrawdown),
		VaR95:       round3(var95),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
