package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetDateStats godoc
// @Summary      Get portfolio stats for one trading date
// @Description  Returns the weighted daily return, accuracy, and decision counts
// @Tags         analytics
// @Produce      json
// @Param        date  path  string  true  "Trading date (YYYY-MM-DD)"
// @Success      200  {object}  domain.DateStats
// @Failure      400  {object}  map[string]string
// @Router       /api/stats/{date} [get]
func (h *Handler) GetDateStats(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-date-stats")
	defer span.End()

	date := c.Param("date")
	span.SetAttributes(attribute.String("date", date))

	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + date + ", want YYYY-MM-DD"})
		return
	}

	stats, err := h.analytics.DateStats(ctx, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetRiskMetrics godoc
// @Summary      Get portfolio risk metrics
// @Description  Returns Sharpe ratio, max drawdown, win/loss ratio, win rate, and volatility over the analytics window
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  domain.RiskMetrics
// @Router       /api/risk-metrics [get]
func (h *Handler) GetRiskMetrics(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-risk-metrics")
	defer span.End()

	metrics, err := h.analytics.RiskMetrics(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, metrics)
}

// GetReturnBreakdown godoc
// @Summary      Explain one date's weighted return
// @Description  Returns per-symbol contributions and the correct/incorrect blend for the date
// @Tags         analytics
// @Produce      json
// @Param        date  path  string  true  "Trading date (YYYY-MM-DD)"
// @Success      200  {object}  domain.ReturnBreakdown
// @Failure      400  {object}  map[string]string
// @Router       /api/returns/{date} [get]
func (h *Handler) GetReturnBreakdown(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-return-breakdown")
	defer span.End()

	date := c.Param("date")
	span.SetAttributes(attribute.String("date", date))

	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + date + ", want YYYY-MM-DD"})
		return
	}

	breakdown, err := h.analytics.ReturnBreakdown(ctx, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, breakdown)
}

// GetOverallReturns godoc
// @Summary      Get the compounded overall return
// @Description  Returns the cumulative multiplier, final percentage, and the exact multiplication chain as a formula string
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/returns-overall [get]
func (h *Handler) GetOverallReturns(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-overall-returns")
	defer span.End()

	out, err := h.analytics.CumulativeReturns(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"multiplier":       out.Multiplier,
		"final_return_pct": out.FinalReturnPct,
		"formula":          out.Formula,
	})
}

// GetCumulativeReturns godoc
// @Summary      Get the day-by-day compounding chain
// @Description  Returns each step's daily return, multiplier, and running cumulative percentage
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  domain.CumulativeReturns
// @Router       /api/cumulative-returns [get]
func (h *Handler) GetCumulativeReturns(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-cumulative-returns")
	defer span.End()

	out, err := h.analytics.CumulativeReturns(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, out)
}

// GetReturnDistribution godoc
// @Summary      Get the 1-day return histogram
// @Description  Returns the latest recommendation set's returns bucketed into fixed bands
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/distribution [get]
func (h *Handler) GetReturnDistribution(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-return-distribution")
	defer span.End()

	buckets, err := h.analytics.ReturnDistribution(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"buckets": buckets})
}

// GetAccuracyTrend godoc
// @Summary      Get per-date accuracy by decision type
// @Description  Returns overall/BUY/SELL/HOLD accuracy for each date in the analytics window
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/accuracy-trend [get]
func (h *Handler) GetAccuracyTrend(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-accuracy-trend")
	defer span.End()

	points, err := h.analytics.AccuracyTrend(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"points": points})
}

// GetIndexHistory godoc
// @Summary      Get the benchmark index series
// @Description  Returns the synthetic NIFTY50 price history over the analytics window
// @Tags         analytics
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/index-history [get]
func (h *Handler) GetIndexHistory(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-index-history")
	defer span.End()

	points, err := h.analytics.IndexHistory(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"symbol": "NIFTY50", "points": points})
}
