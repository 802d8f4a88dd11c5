package server

import (
	"strings"

	"github.com/stratahq/strata/internal/models"
)

// commonStocks is the static universe served by /api/stocks/search. A proper
// symbol directory would come from the market-data provider; this list covers
// the names the frontend's autocomplete needs.
var commonStocks = []models.StockListing{
	{Symbol: "AAPL", Name: "Apple Inc."},
	{Symbol: "GOOGL", Name: "Alphabet Inc."},
	{Symbol: "MSFT", Name: "Microsoft Corporation"},
	{Symbol: "TSLA", Name: "Tesla, Inc."},
	{Symbol: "AMZN", Name: "Amazon.com, Inc."},
	{Symbol: "META", Name: "Meta Platforms, Inc."},
	{Symbol: "NVDA", Name: "NVIDIA Corporation"},
	{Symbol: "NFLX", Name: "Netflix, Inc."},
	{Symbol: "JPM", Name: "JPMorgan Chase & Co."},
	{Symbol: "JNJ", Name: "Johnson & Johnson"},
	{Symbol: "V", Name: "Visa Inc."},
	{Symbol: "PG", Name: "Procter & Gamble Co."},
	{Symbol: "UNH", Name: "UnitedHealth Group Incorporated"},
	{Symbol: "HD", Name: "The Home Depot, Inc."},
	{Symbol: "MA", Name: "Mastercard Incorporated"},
	{Symbol: "DIS", Name: "The Walt Disney Company"},
	{Symbol: "PYPL", Name: "PayPal Holdings, Inc."},
	{Symbol: "ADBE", Name: "Adobe Inc."},
	{Symbol: "CRM", Name: "Salesforce, Inc."},
	{Symbol: "NKE", Name: "NIKE, Inc."},
}

// trendingStocks is the static most-active list served by /api/stocks/trending.
var trendingStocks = []models.TrendingStock{
	{Symbol: "AAPL", Name: "Apple Inc.", Volume: "45.2M"},
	{Symbol: "TSLA", Name: "Tesla, Inc.", Volume: "89.5M"},
	{Symbol: "NVDA", Name: "NVIDIA Corporation", Volume: "67.3M"},
	{Symbol: "AMD", Name: "Advanced Micro Devices, Inc.", Volume: "52.1M"},
	{Symbol: "SPY", Name: "SPDR S&P 500 ETF Trust", Volume: "123.4M"},
}

const maxSearchResults = 10

// searchCommonStocks filters the static universe on symbol or name substring,
// case-insensitive, capped at maxSearchResults.
func searchCommonStocks(query string) []models.StockListing {
	query = strings.ToLower(query)
	results := []models.StockListing{}
	for _, stock := range commonStocks {
		if strings.Contains(strings.ToLower(stock.Symbol), query) ||
			strings.Contains(strings.ToLower(stock.Name), query) {
			results = append(results, stock)
			if len(results) == maxSearchResults {
				break
			}
		}
	}
	return results
}
