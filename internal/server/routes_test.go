package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleHealth(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()

	srv.handleHealth(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]interface{}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "healthy", resp["status"])
	assert.Equal(t, "Strata API", resp["service"])

	features := resp["features"].(map[string]interface{})
	assert.Equal(t, false, features["ai_analysis"])
	assert.Equal(t, true, features["stock_data"])
	assert.Equal(t, true, features["portfolio_analysis"])
}

func TestHandleVersion(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()

	srv.handleVersion(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.NotEmpty(t, resp["version"])
}

func TestHandleHealth_MethodNotAllowed(t *testing.T) {
	srv, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/health", nil)
	rec := httptest.NewRecorder()

	srv.handleHealth(rec, req)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

// TestHandlerRouting drives requests through the full mux and middleware chain.
func TestHandlerRouting(t *testing.T) {
	srv, _ := newTestServer(t)
	full := NewServer(srv.app)
	handler := full.Handler()

	t.Run("health via mux", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.NotEmpty(t, rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("correlation id echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/stocks/trending", nil)
		req.Header.Set("X-Request-ID", "req-42")
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "req-42", rec.Header().Get("X-Correlation-ID"))
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/portfolio/analyze", nil)
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "POST")
	})

	t.Run("chart path dispatch", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/portfolio/performance/chart",
			jsonBody(t, map[string]interface{}{
				"holdings": []map[string]interface{}{
					{"symbol": "AAPL", "shares": 10, "purchasePrice": 100},
				},
			}))
		rec := httptest.NewRecorder()

		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	})
}
