package server

import (
	"net/http"
	"time"

	"github.com/stratahq/strata/internal/models"
)

// aiAnalyzeRequest carries the quote snapshots to analyze. Mode selects the
// rule-based analyzer (default) or the LLM bridge; the latter requires a
// configured provider.
type aiAnalyzeRequest struct {
	Stocks []models.AnalysisInput `json:"stocks"`
	Mode   string                 `json:"mode"`
}

// handleAIAnalyzeStocks handles POST /api/ai/analyze-stocks.
func (s *Server) handleAIAnalyzeStocks(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req aiAnalyzeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if len(req.Stocks) == 0 {
		WriteError(w, http.StatusBadRequest, "No stocks provided")
		return
	}

	s.serveAnalysis(w, r, req)
}

// handleAIAnalyzeSingleStock handles POST /api/ai/analyze-single-stock. The
// body is a single stock snapshot rather than a list.
func (s *Server) handleAIAnalyzeSingleStock(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var stock models.AnalysisInput
	if !DecodeJSON(w, r, &stock) {
		return
	}
	if stock.Symbol == "" {
		WriteError(w, http.StatusBadRequest, "Symbol is required")
		return
	}

	s.serveAnalysis(w, r, aiAnalyzeRequest{Stocks: []models.AnalysisInput{stock}})
}

func (s *Server) serveAnalysis(w http.ResponseWriter, r *http.Request, req aiAnalyzeRequest) {
	switch req.Mode {
	case "", "simple":
		WriteJSON(w, http.StatusOK, s.app.AnalysisService.SimpleAnalysis(req.Stocks))
	case "llm":
		if !s.app.AnalysisService.Available() {
			WriteError(w, http.StatusServiceUnavailable, "AI analysis service not available - LLM provider not configured")
			return
		}
		WriteJSON(w, http.StatusOK, s.app.AnalysisService.AnalyzeStocks(r.Context(), req.Stocks))
	default:
		WriteError(w, http.StatusBadRequest, "Mode must be \"simple\" or \"llm\"")
	}
}

// handleAIStatus handles GET /api/ai/status.
func (s *Server) handleAIStatus(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"ai_services": map[string]interface{}{
			"stock_analysis": map[string]interface{}{
				"available": true,
				"provider":  s.app.AnalysisService.Provider(),
				"method":    "simplified_analysis",
			},
		},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// handleAIHealth handles GET /api/ai/health.
func (s *Server) handleAIHealth(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	configured := s.app.AnalysisService.Available()
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"ai_services": map[string]interface{}{
			"stock_analysis": map[string]interface{}{
				"available": true,
				"method":    "simplified_analysis",
				"llm": map[string]interface{}{
					"available":  configured,
					"configured": configured,
					"provider":   s.app.AnalysisService.Provider(),
				},
			},
		},
		"timestamp": time.Now().Format(time.RFC3339),
	})
}
