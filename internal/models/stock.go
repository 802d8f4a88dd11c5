// Package models defines data structures for Strata
package models

import "fmt"

// Quote represents a normalized real-time stock quote
type Quote struct {
	Symbol           string  `json:"symbol"`
	Name             string  `json:"name"`
	Price            float64 `json:"price"`
	Change           float64 `json:"change"`
	ChangePercent    float64 `json:"changePercent"`
	Volume           string  `json:"volume"`    // formatted with K/M/B/T suffix
	MarketCap        string  `json:"marketCap"` // formatted with K/M/B/T suffix
	PE               float64 `json:"pe"`
	High             float64 `json:"high"`
	Low              float64 `json:"low"`
	Open             float64 `json:"open"`
	PreviousClose    float64 `json:"previousClose"`
	FiftyTwoWeekHigh float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow  float64 `json:"fiftyTwoWeekLow"`
	Beta             float64 `json:"beta"`
	DividendYield    float64 `json:"dividendYield"`
	Sector           string  `json:"sector"`
	Industry         string  `json:"industry"`
	MarketCapRaw     int64   `json:"marketCapRaw"`
	VolumeRaw        int64   `json:"volumeRaw"`
}

// HistoryBar is a single row of historical price data. Date carries a time
// component for intraday intervals and a bare date for daily and coarser.
type HistoryBar struct {
	Date   string  `json:"date"`
	Price  float64 `json:"price"`
	Volume int64   `json:"volume"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
}

// StockComparison is a quote combined with its chart series for side-by-side views
type StockComparison struct {
	Quote
	ChartData []HistoryBar `json:"chartData"`
}

// Financials holds detailed valuation and profile data for a symbol
type Financials struct {
	Symbol               string  `json:"symbol"`
	Name                 string  `json:"name"`
	MarketCap            string  `json:"marketCap"`
	EnterpriseValue      string  `json:"enterpriseValue"`
	TrailingPE           float64 `json:"trailingPE"`
	ForwardPE            float64 `json:"forwardPE"`
	PriceToBook          float64 `json:"priceToBook"`
	PriceToSales         float64 `json:"priceToSales"`
	DividendYield        float64 `json:"dividendYield"`
	PayoutRatio          float64 `json:"payoutRatio"`
	Beta                 float64 `json:"beta"`
	FiftyTwoWeekHigh     float64 `json:"fiftyTwoWeekHigh"`
	FiftyTwoWeekLow      float64 `json:"fiftyTwoWeekLow"`
	FiftyDayAverage      float64 `json:"fiftyDayAverage"`
	TwoHundredDayAverage float64 `json:"twoHundredDayAverage"`
	Sector               string  `json:"sector"`
	Industry             string  `json:"industry"`
	Country              string  `json:"country"`
	Website              string  `json:"website"`
	BusinessSummary      string  `json:"businessSummary"`
}

// StockListing is a symbol/name pair used by search results
type StockListing struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// TrendingStock is a symbol with its formatted trading volume
type TrendingStock struct {
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
	Volume string `json:"volume"`
}

// FormatNumber formats large values with K/M/B/T suffixes for display.
// Negative values are not expected from market data and pass through
// the base case.
func FormatNumber(num float64) string {
	switch {
	case num >= 1e12:
		return fmt.Sprintf("%.1fT", num/1e12)
	case num >= 1e9:
		return fmt.Sprintf("%.1fB", num/1e9)
	case num >= 1e6:
		return fmt.Sprintf("%.1fM", num/1e6)
	case num >= 1e3:
		return fmt.Sprintf("%.1fK", num/1e3)
	default:
		return fmt.Sprintf("%.0f", num)
	}
}
