package analysis

import "strings"

// Section headers the model is instructed to emit. The splitter matches them
// literally at the start of a line.
var sectionHeaders = map[string]string{
	"**Market Analysis:**":            "market_analysis",
	"**Sector Trends:**":              "sector_trends",
	"**Market Drivers:**":             "market_drivers",
	"**Comparative Analysis:**":       "comparative_analysis",
	"**Technical Analysis:**":         "technical_analysis",
	"**Key Indicators:**":             "key_indicators",
	"**Support & Resistance:**":       "support_resistance",
	"**Chart Patterns:**":             "chart_patterns",
	"**Price Targets:**":              "price_targets",
	"**Momentum Analysis:**":          "momentum_analysis",
	"**Investment Recommendations:**": "recommendations",
	"**Portfolio Allocation:**":       "portfolio_allocation",
	"**Investment Timeline:**":        "investment_timeline",
	"**Key Factors to Monitor:**":     "key_factors",
	"**Alternative Investments:**":    "alternative_investments",
	"**Risk Assessment:**":            "risk_assessment",
	"**Expected Returns:**":           "expected_returns",
}

var marketKeys = []string{"market_analysis", "sector_trends", "market_drivers", "comparative_analysis"}

var technicalKeys = []string{
	"technical_analysis", "key_indicators", "support_resistance",
	"chart_patterns", "price_targets", "momentum_analysis",
}

// splitSections walks the model's response line by line and buckets content
// under the last seen header. Lines before any header are discarded; an
// unheadered response yields an empty map.
func splitSections(text string) map[string]string {
	sections := map[string]string{}

	var current string
	var buf []string

	flush := func() {
		if current != "" && len(buf) > 0 {
			sections[current] = strings.TrimSpace(strings.Join(buf, "\n"))
		}
		buf = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		matched := false
		for header, key := range sectionHeaders {
			if strings.HasPrefix(line, header) {
				flush()
				current = key
				matched = true
				break
			}
		}
		if matched {
			continue
		}
		if current != "" {
			buf = append(buf, line)
		}
	}
	flush()

	return sections
}

// combineSections joins the named sections in order with blank lines,
// skipping empties.
func combineSections(sections map[string]string, keys []string) string {
	var parts []string
	for _, key := range keys {
		if content := sections[key]; content != "" {
			parts = append(parts, content)
		}
	}
	return strings.Join(parts, "\n\n")
}
