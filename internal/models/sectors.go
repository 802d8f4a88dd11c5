package models

// SectorRiskProfile is the fixed (volatility, beta) pair assigned to a market
// sector, used as a proxy for per-holding risk absent historical return data.
type SectorRiskProfile struct {
	Volatility float64
	Beta       float64
}

// UnknownSector is the profile key applied to unrecognized sectors
const UnknownSector = "Unknown"

// SectorRiskProfiles maps sector names to their risk characteristics
var SectorRiskProfiles = map[string]SectorRiskProfile{
	"Technology":             {Volatility: 0.25, Beta: 1.2},
	"Financial Services":     {Volatility: 0.20, Beta: 1.1},
	"Healthcare":             {Volatility: 0.22, Beta: 0.9},
	"Consumer Defensive":     {Volatility: 0.18, Beta: 0.8},
	"Consumer Cyclical":      {Volatility: 0.23, Beta: 1.0},
	"Energy":                 {Volatility: 0.30, Beta: 1.3},
	"Industrials":            {Volatility: 0.21, Beta: 1.0},
	"Communication Services": {Volatility: 0.24, Beta: 1.1},
	"Basic Materials":        {Volatility: 0.26, Beta: 1.2},
	"Real Estate":            {Volatility: 0.19, Beta: 0.9},
	"Utilities":              {Volatility: 0.15, Beta: 0.6},
	UnknownSector:            {Volatility: 0.20, Beta: 1.0},
}

// RiskProfileFor returns the risk profile for a sector, falling back to the
// Unknown profile for unrecognized names.
func RiskProfileFor(sector string) SectorRiskProfile {
	if profile, ok := SectorRiskProfiles[sector]; ok {
		return profile
	}
	return SectorRiskProfiles[UnknownSector]
}

// DefensiveSectors are the sectors that earn a volatility reduction when their
// combined portfolio weight exceeds the defensive threshold.
var DefensiveSectors = []string{"Consumer Defensive", "Utilities", "Healthcare"}

var sectorColors = map[string]string{
	"Technology":             "#3B82F6",
	"Healthcare":             "#10B981",
	"Financial Services":     "#F59E0B",
	"Consumer Cyclical":      "#EF4444",
	"Communication Services": "#8B5CF6",
	"Industrials":            "#06B6D4",
	"Consumer Defensive":     "#84CC16",
	"Energy":                 "#F97316",
	"Basic Materials":        "#EC4899",
	"Real Estate":            "#6366F1",
	UnknownSector:            "#6B7280",
}

// SectorColor returns the chart color for a sector allocation slice
func SectorColor(sector string) string {
	if color, ok := sectorColors[sector]; ok {
		return color
	}
	return sectorColors[UnknownSector]
}
