package server

import (
	"errors"
	"net/http"

	"github.com/stratahq/strata/internal/interfaces"
	"github.com/stratahq/strata/internal/models"
)

// analyzeRequest carries the holdings plus the flattened investor profile.
type analyzeRequest struct {
	Holdings          []models.Holding `json:"holdings"`
	RiskTolerance     string           `json:"riskTolerance"`
	InvestmentGoals   string           `json:"investmentGoals"`
	TimeHorizon       string           `json:"timeHorizon"`
	MonthlyInvestment float64          `json:"monthlyInvestment"`
	AvailableCapital  float64          `json:"availableCapital"`
}

func (req *analyzeRequest) preferences() models.UserPreferences {
	prefs := models.UserPreferences{
		RiskTolerance:     req.RiskTolerance,
		InvestmentGoals:   req.InvestmentGoals,
		TimeHorizon:       req.TimeHorizon,
		MonthlyInvestment: req.MonthlyInvestment,
		AvailableCapital:  req.AvailableCapital,
	}
	if prefs.RiskTolerance == "" {
		prefs.RiskTolerance = "moderate"
	}
	if prefs.InvestmentGoals == "" {
		prefs.InvestmentGoals = "wealth-building"
	}
	if prefs.TimeHorizon == "" {
		prefs.TimeHorizon = "long-term"
	}
	return prefs
}

// handlePortfolioAnalyze handles POST /api/portfolio/analyze.
func (s *Server) handlePortfolioAnalyze(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req analyzeRequest
	if !DecodeJSON(w, r, &req) {
		return
	}
	if len(req.Holdings) == 0 {
		WriteError(w, http.StatusBadRequest, "No holdings provided")
		return
	}

	result, err := s.app.PortfolioService.Analyze(r.Context(), req.Holdings, req.preferences())
	if err != nil {
		s.logger.Error().Err(err).Msg("Portfolio analysis failed")
		WriteError(w, http.StatusInternalServerError, "Failed to analyze portfolio")
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// handlePortfolioPerformance handles POST /api/portfolio/performance.
func (s *Server) handlePortfolioPerformance(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Holdings  []models.Holding `json:"holdings"`
		Timeframe string           `json:"timeframe"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if len(req.Holdings) == 0 {
		WriteError(w, http.StatusBadRequest, "No holdings provided")
		return
	}
	if req.Timeframe == "" {
		req.Timeframe = "1M"
	}

	result, err := s.app.PortfolioService.Performance(r.Context(), req.Holdings, req.Timeframe)
	if err != nil {
		s.logger.Error().Err(err).Msg("Portfolio performance failed")
		WriteError(w, http.StatusInternalServerError, "Failed to calculate portfolio performance")
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// handlePortfolioPerformanceChart handles POST /api/portfolio/performance/chart.
// Returns a PNG rendering of the portfolio-vs-benchmark series.
func (s *Server) handlePortfolioPerformanceChart(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Holdings  []models.Holding `json:"holdings"`
		Timeframe string           `json:"timeframe"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if len(req.Holdings) == 0 {
		WriteError(w, http.StatusBadRequest, "No holdings provided")
		return
	}
	if req.Timeframe == "" {
		req.Timeframe = "1M"
	}

	png, err := s.app.PortfolioService.PerformanceChart(r.Context(), req.Holdings, req.Timeframe)
	if err != nil {
		s.logger.Error().Err(err).Msg("Performance chart render failed")
		WriteError(w, http.StatusInternalServerError, "Failed to render performance chart")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png)
}

// handlePortfolioProcessInput handles POST /api/portfolio/process-input.
func (s *Server) handlePortfolioProcessInput(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		PortfolioInput string `json:"portfolio_input"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.PortfolioInput == "" {
		WriteError(w, http.StatusBadRequest, "Portfolio input is required")
		return
	}

	result, err := s.app.PortfolioService.ParseInput(req.PortfolioInput)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	WriteJSON(w, http.StatusOK, result)
}

// handlePortfolioSave handles POST /api/portfolio/save.
func (s *Server) handlePortfolioSave(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodPost) {
		return
	}

	var req struct {
		Name     string           `json:"name"`
		Holdings []models.Holding `json:"holdings"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if len(req.Holdings) == 0 {
		WriteError(w, http.StatusBadRequest, "No holdings provided")
		return
	}

	saved, err := s.app.PortfolioService.Save(r.Context(), req.Name, req.Holdings)
	if err != nil {
		s.logger.Error().Err(err).Msg("Portfolio save failed")
		WriteError(w, http.StatusInternalServerError, "Failed to save portfolio")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Portfolio saved successfully",
		"portfolioId": saved.ID,
	})
}

// handlePortfolioLoad handles GET /api/portfolio/load/{id}.
func (s *Server) handlePortfolioLoad(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	id := PathParam(r, "/api/portfolio/load/")
	if id == "" {
		WriteError(w, http.StatusBadRequest, "Portfolio ID is required")
		return
	}

	portfolio, err := s.app.PortfolioService.Load(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrPortfolioNotFound) {
			WriteError(w, http.StatusNotFound, "Portfolio not found")
			return
		}
		s.logger.Error().Err(err).Str("id", id).Msg("Portfolio load failed")
		WriteError(w, http.StatusInternalServerError, "Failed to load portfolio")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"message":     "Portfolio loaded successfully",
		"portfolioId": portfolio.ID,
		"data":        portfolio,
	})
}
