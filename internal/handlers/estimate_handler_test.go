package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/RenoBuildCo/reno-marketplace/internal/ai"
)

func stubProvider(t *testing.T, content string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(gin.H{
			"choices": []gin.H{{"message": gin.H{"role": "assistant", "content": content}}},
		})
	}))
}

func newEstimateRouter(providerURL string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	estimator := ai.NewEstimator(ai.NewClient("test-key", providerURL, "gpt-4o"))
	h := NewEstimateHandler(estimator, nil)

	r := gin.New()
	r.POST("/api/estimate/renovation", h.Renovation)
	return r
}

func TestRenovationEstimateEndToEnd(t *testing.T) {
	srv := stubProvider(t, `{
		"totalCostMin": 500000,
		"totalCostMax": 750000,
		"breakdown": {
			"materials": {"min": 200000, "max": 300000},
			"labor": {"min": 150000, "max": 250000},
			"fixtures": {"min": 100000, "max": 150000},
			"permits": 50000
		},
		"recommendations": "Buy locally.",
		"timeline": "8 weeks"
	}`)
	defer srv.Close()

	r := newEstimateRouter(srv.URL)

	w := doJSON(t, r, http.MethodPost, "/api/estimate/renovation", gin.H{
		"renovationType": "kitchen",
		"squareFootage":  200,
		"qualityLevel":   "premium",
		"location":       "Mumbai",
		"scope":          "full remodel",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var result ai.EstimateResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if result.TotalCost != "₹5,00,000 - ₹7,50,000" {
		t.Errorf("totalCost = %q", result.TotalCost)
	}
}

func TestRenovationEstimateValidatesInput(t *testing.T) {
	r := newEstimateRouter("http://localhost:0")

	w := doJSON(t, r, http.MethodPost, "/api/estimate/renovation", gin.H{
		"renovationType": "kitchen",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}
