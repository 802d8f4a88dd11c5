package portfolio

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/stratahq/strata/internal/models"
)

// ParseInput normalizes portfolio input into a holdings list. JSON is tried
// first (either {"holdings": [...]} or a bare holdings array); anything else
// is parsed line by line. Unparseable lines are logged and skipped, never
// fatal, and input order is preserved.
func (s *Service) ParseInput(input string) (*models.ParsedPortfolio, error) {
	trimmed := strings.TrimSpace(input)

	var wrapper struct {
		Holdings []models.Holding `json:"holdings"`
	}
	if err := json.Unmarshal([]byte(trimmed), &wrapper); err == nil && wrapper.Holdings != nil {
		return &models.ParsedPortfolio{
			Holdings:    wrapper.Holdings,
			InputFormat: "json",
			Timestamp:   s.now(),
		}, nil
	}

	var list []models.Holding
	if err := json.Unmarshal([]byte(trimmed), &list); err == nil {
		return &models.ParsedPortfolio{
			Holdings:    list,
			InputFormat: "json",
			Timestamp:   s.now(),
		}, nil
	}

	return &models.ParsedPortfolio{
		Holdings:    s.parseTextHoldings(trimmed),
		InputFormat: "text_parsed",
		Timestamp:   s.now(),
	}, nil
}

// parseTextHoldings handles the free-text formats:
//
//	SYMBOL, QTY, PRICE
//	SYMBOL QTY PRICE
//	SYMBOL - QTY @ PRICE
//
// Blank lines and lines starting with # are ignored.
func (s *Service) parseTextHoldings(text string) []models.Holding {
	holdings := []models.Holding{}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := splitHoldingLine(line)
		if len(parts) < 3 {
			s.logger.Warn().Str("line", line).Msg("Could not parse portfolio line")
			continue
		}

		symbol := strings.ToUpper(strings.TrimSpace(parts[0]))
		quantity, qErr := parseAmount(parts[1])
		price, pErr := parseAmount(parts[2])
		if symbol == "" || qErr != nil || pErr != nil {
			s.logger.Warn().Str("line", line).Msg("Could not parse portfolio line")
			continue
		}

		holdings = append(holdings, models.Holding{
			Symbol:        symbol,
			Quantity:      quantity,
			PurchasePrice: price,
		})
	}

	return holdings
}

// splitHoldingLine tokenizes one line into (symbol, quantity, price) parts.
// The dash form is checked before the whitespace split so "AAPL - 10 @ 150"
// is not mis-read as five whitespace tokens.
func splitHoldingLine(line string) []string {
	if strings.Contains(line, " - ") && strings.Contains(line, "@") {
		dashParts := strings.SplitN(line, " - ", 2)
		if len(dashParts) == 2 {
			qtyPrice := strings.SplitN(dashParts[1], "@", 2)
			if len(qtyPrice) == 2 {
				return []string{dashParts[0], qtyPrice[0], qtyPrice[1]}
			}
		}
	}

	if strings.Contains(line, ",") {
		return strings.Split(line, ",")
	}

	return strings.Fields(line)
}

// parseAmount parses a numeric token, tolerating $ signs and thousands
// separators.
func parseAmount(token string) (float64, error) {
	cleaned := strings.TrimSpace(token)
	cleaned = strings.ReplaceAll(cleaned, "$", "")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	return strconv.ParseFloat(cleaned, 64)
}
