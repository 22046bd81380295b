package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"nifty-navigator/internal/domain"
	"nifty-navigator/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

var testTracer = trace.NewNoopTracerProvider().Tracer("handler-test")

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := service.NewAnalyticsService(testTracer, nil, nil, nil, service.Options{WindowDays: 3, HistoryDays: 5})
	h := New(testTracer, svc)
	r := gin.New()
	h.RegisterRoutes(r)
	return r
}

func get(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := newTestRouter()
	w := get(t, r, "/health")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "healthy" || body["service"] != "nifty-navigator" {
		t.Errorf("unexpected body: %v", body)
	}
}

func TestGetBacktest(t *testing.T) {
	r := newTestRouter()
	w := get(t, r, "/api/backtest/RELIANCE")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var result domain.BacktestResult
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if result.Symbol != "RELIANCE" {
		t.Fatalf("symbol = %s, want RELIANCE", result.Symbol)
	}
	if result.PriceAtPrediction < 1000 || result.PriceAtPrediction >= 3000 {
		t.Fatalf("base price %v outside seeded range", result.PriceAtPrediction)
	}
	if len(result.PriceHistory) != 6 {
		t.Fatalf("expected 6 history points, got %d", len(result.PriceHistory))
	}
}

func TestGetBacktestLowercaseSymbol(t *testing.T) {
	r := newTestRouter()
	if w := get(t, r, "/api/backtest/reliance"); w.Code != http.StatusOK {
		t.Fatalf("lowercase symbol should be accepted, got %d", w.Code)
	}
}

func TestGetBacktestUnsupportedSymbol(t *testing.T) {
	r := newTestRouter()
	w := get(t, r, "/api/backtest/AAPL")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetDateStats(t *testing.T) {
	r := newTestRouter()
	w := get(t, r, "/api/stats/2024-03-14")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var stats domain.DateStats
	if err := json.Unmarshal(w.Body.Bytes(), &stats); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if stats.TotalStocks != len(domain.SupportedSymbols) {
		t.Fatalf("total stocks = %d, want %d", stats.TotalStocks, len(domain.SupportedSymbols))
	}
}

func TestGetDateStatsInvalidDate(t *testing.T) {
	r := newTestRouter()
	if w := get(t, r, "/api/stats/not-a-date"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestGetRiskMetrics(t *testing.T) {
	r := newTestRouter()
	w := get(t, r, "/api/risk-metrics")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var metrics domain.RiskMetrics
	if err := json.Unmarshal(w.Body.Bytes(), &metrics); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if metrics.TotalTrades != 3*len(domain.SupportedSymbols) {
		t.Fatalf("total trades = %d, want %d", metrics.TotalTrades, 3*len(domain.SupportedSymbols))
	}
}

func TestGetOverallReturnsFormula(t *testing.T) {
	r := newTestRouter()
	w := get(t, r, "/api/returns-overall")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Multiplier     float64 `json:"multiplier"`
		FinalReturnPct float64 `json:"final_return_pct"`
		Formula        string  `json:"formula"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Formula == "" {
		t.Fatal("formula missing")
	}
	if body.Multiplier == 0 {
		t.Fatal("multiplier missing")
	}
}

func TestGetReturnDistribution(t *testing.T) {
	r := newTestRouter()
	w := get(t, r, "/api/distribution")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Buckets []domain.ReturnBucket `json:"buckets"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Buckets) != 8 {
		t.Fatalf("expected 8 bands, got %d", len(body.Buckets))
	}
}

func TestGetAccuracyTrend(t *testing.T) {
	r := newTestRouter()
	w := get(t, r, "/api/accuracy-trend")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body struct {
		Points []domain.AccuracyPoint `json:"points"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(body.Points))
	}
}

func TestGetRecommendationsInvalidDate(t *testing.T) {
	r := newTestRouter()
	if w := get(t, r, "/api/recommendations/2024-3-1"); w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestAPIKeyAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyAuth("secret"))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing key: expected 401, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-API-Key", "wrong")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("wrong key: expected 403, got %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set("X-API-Key", "secret")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid key: expected 200, got %d", w.Code)
	}
}

func TestAPIKeyAuthDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(APIKeyAuth(""))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 with auth disabled, got %d", w.Code)
	}
}
