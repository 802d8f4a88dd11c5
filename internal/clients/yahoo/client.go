// Package yahoo provides a client for the Yahoo Finance API
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/stratahq/strata/internal/common"
	"github.com/stratahq/strata/internal/interfaces"
	"github.com/stratahq/strata/internal/models"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second

	// Yahoo rejects requests without a browser-ish or curl User-Agent.
	userAgent = "curl/8"

	quoteSummaryModules = "price,summaryDetail,assetProfile,defaultKeyStatistics"
)

// Client implements the MarketDataClient interface against Yahoo Finance
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter
}

var _ interfaces.MarketDataClient = (*Client)(nil)

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Yahoo Finance client
func NewClient(opts ...ClientOption) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError represents an API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yahoo API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// get performs a rate-limited GET request
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	reqURL := c.baseURL + path
	if len(params) > 0 {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	c.logger.Debug().Str("url", c.baseURL+path).Msg("Yahoo API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%s: %w", path, interfaces.ErrSymbolNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(body),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// GetQuote retrieves a normalized quote from the quoteSummary endpoint
func (c *Client) GetQuote(ctx context.Context, symbol string) (*models.Quote, error) {
	summary, err := c.getQuoteSummary(ctx, symbol)
	if err != nil {
		return nil, err
	}

	price := summary.Price
	detail := summary.SummaryDetail
	profile := summary.AssetProfile

	currentPrice := price.RegularMarketPrice.Raw
	previousClose := price.RegularMarketPreviousClose.Raw

	var change, changePercent float64
	if currentPrice != 0 && previousClose != 0 {
		change = currentPrice - previousClose
		changePercent = change / previousClose * 100
	}

	name := price.LongName
	if name == "" {
		name = price.Symbol
	}

	sector := profile.Sector
	if sector == "" {
		sector = "N/A"
	}
	industry := profile.Industry
	if industry == "" {
		industry = "N/A"
	}

	quote := &models.Quote{
		Symbol:           price.Symbol,
		Name:             name,
		Price:            round2(currentPrice),
		Change:           round2(change),
		ChangePercent:    round2(changePercent),
		Volume:           models.FormatNumber(price.RegularMarketVolume.Raw),
		MarketCap:        models.FormatNumber(price.MarketCap.Raw),
		PE:               round2(detail.TrailingPE.Raw),
		High:             round2(price.RegularMarketDayHigh.Raw),
		Low:              round2(price.RegularMarketDayLow.Raw),
		Open:             round2(price.RegularMarketOpen.Raw),
		PreviousClose:    round2(previousClose),
		FiftyTwoWeekHigh: round2(detail.FiftyTwoWeekHigh.Raw),
		FiftyTwoWeekLow:  round2(detail.FiftyTwoWeekLow.Raw),
		Beta:             round2(detail.Beta.Raw),
		DividendYield:    round2(detail.DividendYield.Raw * 100),
		Sector:           sector,
		Industry:         industry,
		MarketCapRaw:     int64(price.MarketCap.Raw),
		VolumeRaw:        int64(price.RegularMarketVolume.Raw),
	}

	return quote, nil
}

// GetFinancials retrieves detailed valuation and profile data
func (c *Client) GetFinancials(ctx context.Context, symbol string) (*models.Financials, error) {
	summary, err := c.getQuoteSummary(ctx, symbol)
	if err != nil {
		return nil, err
	}

	price := summary.Price
	detail := summary.SummaryDetail
	profile := summary.AssetProfile
	stats := summary.DefaultKeyStatistics

	name := price.LongName
	if name == "" {
		name = price.Symbol
	}

	fin := &models.Financials{
		Symbol:               price.Symbol,
		Name:                 name,
		MarketCap:            models.FormatNumber(price.MarketCap.Raw),
		EnterpriseValue:      models.FormatNumber(stats.EnterpriseValue.Raw),
		TrailingPE:           round2(detail.TrailingPE.Raw),
		ForwardPE:            round2(stats.ForwardPE.Raw),
		PriceToBook:          round2(stats.PriceToBook.Raw),
		PriceToSales:         round2(detail.PriceToSalesTrailing12Months.Raw),
		DividendYield:        round2(detail.DividendYield.Raw * 100),
		PayoutRatio:          round2(detail.PayoutRatio.Raw * 100),
		Beta:                 round2(detail.Beta.Raw),
		FiftyTwoWeekHigh:     round2(detail.FiftyTwoWeekHigh.Raw),
		FiftyTwoWeekLow:      round2(detail.FiftyTwoWeekLow.Raw),
		FiftyDayAverage:      round2(detail.FiftyDayAverage.Raw),
		TwoHundredDayAverage: round2(detail.TwoHundredDayAverage.Raw),
		Sector:               orNA(profile.Sector),
		Industry:             orNA(profile.Industry),
		Country:              orNA(profile.Country),
		Website:              orNA(profile.Website),
		BusinessSummary:      orNA(profile.LongBusinessSummary),
	}

	return fin, nil
}

func (c *Client) getQuoteSummary(ctx context.Context, symbol string) (*quoteSummaryResult, error) {
	params := url.Values{}
	params.Set("modules", quoteSummaryModules)

	path := fmt.Sprintf("/v10/finance/quoteSummary/%s", url.PathEscape(symbol))

	var resp quoteSummaryResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("%s: %w", symbol, interfaces.ErrSymbolNotFound)
	}

	return &resp.QuoteSummary.Result[0], nil
}

// GetHistory retrieves OHLCV bars from the chart endpoint. Intraday intervals
// produce datetime-stamped rows, daily and coarser produce bare dates.
func (c *Client) GetHistory(ctx context.Context, symbol, period, interval string) ([]models.HistoryBar, error) {
	if period == "" {
		period = "1y"
	}
	if interval == "" {
		interval = "1d"
	}

	params := url.Values{}
	params.Set("range", period)
	params.Set("interval", interval)

	path := fmt.Sprintf("/v8/finance/chart/%s", url.PathEscape(symbol))

	var resp chartResponse
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	if len(resp.Chart.Result) == 0 || len(resp.Chart.Result[0].Indicators.Quote) == 0 {
		return []models.HistoryBar{}, nil
	}

	result := resp.Chart.Result[0]
	quote := result.Indicators.Quote[0]

	dateFormat := "2006-01-02"
	if isIntraday(interval) {
		dateFormat = "2006-01-02 15:04:05"
	}

	bars := make([]models.HistoryBar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == 0 {
			continue
		}
		bar := models.HistoryBar{
			Date:  time.Unix(ts, 0).UTC().Format(dateFormat),
			Price: round2(quote.Close[i]),
		}
		if i < len(quote.Open) {
			bar.Open = round2(quote.Open[i])
		}
		if i < len(quote.High) {
			bar.High = round2(quote.High[i])
		}
		if i < len(quote.Low) {
			bar.Low = round2(quote.Low[i])
		}
		if i < len(quote.Volume) {
			bar.Volume = quote.Volume[i]
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

func isIntraday(interval string) bool {
	switch interval {
	case "1m", "2m", "5m", "15m", "30m", "60m", "90m":
		return true
	}
	return false
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
