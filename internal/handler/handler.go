package handler

import (
	"nifty-navigator/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer    trace.Tracer
	analytics *service.AnalyticsService
}

func New(tracer trace.Tracer, analytics *service.AnalyticsService) *Handler {
	return &Handler{
		tracer:    tracer,
		analytics: analytics,
	}
}

// RegisterRoutes wires the dashboard endpoints. Middleware in
// apiMiddleware guards /api only, leaving /health open for probes.
func (h *Handler) RegisterRoutes(r *gin.Engine, apiMiddleware ...gin.HandlerFunc) {
	r.GET("/health", h.Health)

	api := r.Group("/api", apiMiddleware...)
	api.GET("/backtest/:symbol", h.GetBacktest)
	api.GET("/recommendations/:date", h.GetRecommendations)
	api.GET("/stats/:date", h.GetDateStats)
	api.GET("/risk-metrics", h.GetRiskMetrics)
	api.GET("/returns/:date", h.GetReturnBreakdown)
	api.GET("/returns-overall", h.GetOverallReturns)
	api.GET("/cumulative-returns", h.GetCumulativeReturns)
	api.GET("/distribution", h.GetReturnDistribution)
	api.GET("/accuracy-trend", h.GetAccuracyTrend)
	api.GET("/index-history", h.GetIndexHistory)
}
