package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleAIAnalyzeStocks_SimpleMode(t *testing.T) {
	srv, _ := newTestServer(t)

	body := jsonBody(t, map[string]interface{}{
		"stocks": []map[string]interface{}{
			{"symbol": "AAPL", "price": 150.25, "changePercent": 1.5, "volume": "45.2M", "marketCap": "2.5T"},
			{"symbol": "TSLA", "price": 242.10, "changePercent": -6.2, "volume": "89.5M", "marketCap": "770B"},
		},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/ai/analyze-stocks", body)
	rec := httptest.NewRecorder()

	srv.handleAIAnalyzeStocks(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "comprehensive_stock_analysis", resp["analysis_type"])
	assert.Equal(t, "Enhanced Market Analysis", resp["ai_model"])

	analyses := resp["stock_analyses"].([]interface{})
	require.Len(t, analyses, 2)
	first := analyses[0].(map[string]interface{})
	assert.Equal(t, "AAPL", first["symbol"])
	assert.Equal(t, "HOLD", first["recommendation"])
	second := analyses[1].(map[string]interface{})
	assert.Equal(t, "BUY", second["recommendation"])
}

func TestHandleAIAnalyzeStocks_NoStocks(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/ai/analyze-stocks",
		jsonBody(t, map[string]interface{}{"stocks": []interface{}{}}))
	rec := httptest.NewRecorder()

	srv.handleAIAnalyzeStocks(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "No stocks provided")
}

func TestHandleAIAnalyzeStocks_LLMModeUnavailable(t *testing.T) {
	srv, _ := newTestServer(t)

	body := jsonBody(t, map[string]interface{}{
		"stocks": []map[string]interface{}{{"symbol": "AAPL", "price": 150.0}},
		"mode":   "llm",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/ai/analyze-stocks", body)
	rec := httptest.NewRecorder()

	srv.handleAIAnalyzeStocks(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "LLM provider not configured")
}

func TestHandleAIAnalyzeStocks_UnknownMode(t *testing.T) {
	srv, _ := newTestServer(t)

	body := jsonBody(t, map[string]interface{}{
		"stocks": []map[string]interface{}{{"symbol": "AAPL", "price": 150.0}},
		"mode":   "quantum",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/ai/analyze-stocks", body)
	rec := httptest.NewRecorder()

	srv.handleAIAnalyzeStocks(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleAIAnalyzeSingleStock_Success(t *testing.T) {
	srv, _ := newTestServer(t)

	body := jsonBody(t, map[string]interface{}{
		"symbol": "AAPL", "price": 150.25, "changePercent": 1.5,
		"volume": "45.2M", "marketCap": "2.5T",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/ai/analyze-single-stock", body)
	rec := httptest.NewRecorder()

	srv.handleAIAnalyzeSingleStock(rec, req)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	analyses := resp["stock_analyses"].([]interface{})
	require.Len(t, analyses, 1)
	assert.Equal(t, "AAPL", analyses[0].(map[string]interface{})["symbol"])
}

func TestHandleAIAnalyzeSingleStock_MissingSymbol(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/ai/analyze-single-stock",
		jsonBody(t, map[string]interface{}{"price": 150.0}))
	rec := httptest.NewRecorder()

	srv.handleAIAnalyzeSingleStock(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Symbol is required")
}

func TestHandleAIStatus(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ai/status", nil)
	rec := httptest.NewRecorder()

	srv.handleAIStatus(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	services := resp["ai_services"].(map[string]interface{})
	analysis := services["stock_analysis"].(map[string]interface{})
	assert.Equal(t, true, analysis["available"])
	assert.Equal(t, "none", analysis["provider"])
	assert.Equal(t, "simplified_analysis", analysis["method"])
}

func TestHandleAIHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/ai/health", nil)
	rec := httptest.NewRecorder()

	srv.handleAIHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp["status"])

	services := resp["ai_services"].(map[string]interface{})
	analysis := services["stock_analysis"].(map[string]interface{})
	llm := analysis["llm"].(map[string]interface{})
	assert.Equal(t, false, llm["available"])
	assert.Equal(t, false, llm["configured"])
}
