package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/stratahq/strata/internal/interfaces"
	"github.com/stratahq/strata/internal/models"
)

const maxCompareSymbols = 5

// handleStockQuote handles GET /api/stock/quote/{symbol}.
func (s *Server) handleStockQuote(w http.ResponseWriter, r *http.Request) {
	s.serveQuote(w, r, "/api/stock/quote/")
}

// handleStockInfo handles GET /api/stock/info/{symbol}. Same payload as the
// quote endpoint, kept as a separate path for the frontend.
func (s *Server) handleStockInfo(w http.ResponseWriter, r *http.Request) {
	s.serveQuote(w, r, "/api/stock/info/")
}

func (s *Server) serveQuote(w http.ResponseWriter, r *http.Request, prefix string) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := PathParam(r, prefix)
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "Symbol is required")
		return
	}

	quote, err := s.app.QuoteService.GetQuote(r.Context(), symbol)
	if err != nil {
		if errors.Is(err, interfaces.ErrSymbolNotFound) {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("Could not fetch data for %s", strings.ToUpper(symbol)))
			return
		}
		s.logger.Error().Err(err).Str("symbol", symbol).Msg("Quote fetch failed")
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteJSON(w, http.StatusOK, quote)
}

// handleStockHistory handles GET /api/stock/history/{symbol}?period=&interval=.
func (s *Server) handleStockHistory(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := PathParam(r, "/api/stock/history/")
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "Symbol is required")
		return
	}

	period := r.URL.Query().Get("period")
	interval := r.URL.Query().Get("interval")

	bars, err := s.app.QuoteService.GetHistory(r.Context(), symbol, period, interval)
	if err != nil && !errors.Is(err, interfaces.ErrSymbolNotFound) {
		s.logger.Error().Err(err).Str("symbol", symbol).Msg("History fetch failed")
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}
	if bars == nil {
		bars = []models.HistoryBar{}
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{"data": bars})
}

// handleStockFinancials handles GET /api/stock/financials/{symbol}.
func (s *Server) handleStockFinancials(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	symbol := PathParam(r, "/api/stock/financials/")
	if symbol == "" {
		WriteError(w, http.StatusBadRequest, "Symbol is required")
		return
	}

	financials, err := s.app.QuoteService.GetFinancials(r.Context(), symbol)
	if err != nil {
		if errors.Is(err, interfaces.ErrSymbolNotFound) {
			WriteError(w, http.StatusNotFound, fmt.Sprintf("Could not fetch data for %s", strings.ToUpper(symbol)))
			return
		}
		s.logger.Error().Err(err).Str("symbol", symbol).Msg("Financials fetch failed")
		WriteError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	WriteJSON(w, http.StatusOK, financials)
}

// handleStocksCompare handles POST /api/stocks/compare. Symbols without data
// are skipped rather than failing the comparison.
func (s *Server) handleStocksCompare(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Symbols  []string `json:"symbols"`
		Period   string   `json:"period"`
		Interval string   `json:"interval"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if len(req.Symbols) == 0 {
		WriteError(w, http.StatusBadRequest, "No symbols provided")
		return
	}
	if len(req.Symbols) > maxCompareSymbols {
		WriteError(w, http.StatusBadRequest, fmt.Sprintf("Maximum %d stocks allowed", maxCompareSymbols))
		return
	}
	if req.Period == "" {
		req.Period = "1y"
	}
	if req.Interval == "" {
		req.Interval = "1d"
	}

	results := []models.StockComparison{}
	for _, symbol := range req.Symbols {
		symbol = strings.ToUpper(strings.TrimSpace(symbol))

		quote, err := s.app.QuoteService.GetQuote(r.Context(), symbol)
		if err != nil {
			s.logger.Warn().Err(err).Str("symbol", symbol).Msg("Skipping symbol in comparison")
			continue
		}

		bars, err := s.app.QuoteService.GetHistory(r.Context(), symbol, req.Period, req.Interval)
		if err != nil {
			bars = []models.HistoryBar{}
		}

		results = append(results, models.StockComparison{Quote: *quote, ChartData: bars})
	}

	WriteJSON(w, http.StatusOK, results)
}

// handleStocksSearch handles GET /api/stocks/search?q=.
func (s *Server) handleStocksSearch(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	query := strings.TrimSpace(r.URL.Query().Get("q"))
	if len(query) < 2 {
		WriteError(w, http.StatusBadRequest, "Query must be at least 2 characters")
		return
	}

	WriteJSON(w, http.StatusOK, searchCommonStocks(query))
}

// handleStocksTrending handles GET /api/stocks/trending.
func (s *Server) handleStocksTrending(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}
	WriteJSON(w, http.StatusOK, trendingStocks)
}
