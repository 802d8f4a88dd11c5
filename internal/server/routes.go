package server

import (
	"net/http"
	"time"

	"github.com/stratahq/strata/internal/common"
)

// registerRoutes sets up all REST API routes on the mux.
func (s *Server) registerRoutes(mux *http.ServeMux) {
	// System
	mux.HandleFunc("/api/health", s.handleHealth)
	mux.HandleFunc("/api/version", s.handleVersion)

	// Portfolio
	mux.HandleFunc("/api/portfolio/analyze", s.handlePortfolioAnalyze)
	mux.HandleFunc("/api/portfolio/performance/chart", s.handlePortfolioPerformanceChart)
	mux.HandleFunc("/api/portfolio/performance", s.handlePortfolioPerformance)
	mux.HandleFunc("/api/portfolio/process-input", s.handlePortfolioProcessInput)
	mux.HandleFunc("/api/portfolio/save", s.handlePortfolioSave)
	mux.HandleFunc("/api/portfolio/load/", s.handlePortfolioLoad)

	// Stock data
	mux.HandleFunc("/api/stock/quote/", s.handleStockQuote)
	mux.HandleFunc("/api/stock/info/", s.handleStockInfo)
	mux.HandleFunc("/api/stock/history/", s.handleStockHistory)
	mux.HandleFunc("/api/stock/financials/", s.handleStockFinancials)
	mux.HandleFunc("/api/stocks/compare", s.handleStocksCompare)
	mux.HandleFunc("/api/stocks/search", s.handleStocksSearch)
	mux.HandleFunc("/api/stocks/trending", s.handleStocksTrending)

	// AI analysis
	mux.HandleFunc("/api/ai/analyze-stocks", s.handleAIAnalyzeStocks)
	mux.HandleFunc("/api/ai/analyze-single-stock", s.handleAIAnalyzeSingleStock)
	mux.HandleFunc("/api/ai/status", s.handleAIStatus)
	mux.HandleFunc("/api/ai/health", s.handleAIHealth)
}

// --- System handlers ---

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().Format(time.RFC3339),
		"service":     "Strata API",
		"environment": s.app.Config.Environment,
		"features": map[string]bool{
			"ai_analysis":        s.app.AnalysisService.Available(),
			"stock_data":         true,
			"portfolio_analysis": true,
		},
	})
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet, http.MethodHead) {
		return
	}
	WriteJSON(w, http.StatusOK, map[string]string{
		"version": common.GetVersion(),
		"build":   common.GetBuild(),
		"commit":  common.GetGitCommit(),
	})
}
