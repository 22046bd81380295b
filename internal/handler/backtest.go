package handler

import (
	"net/http"
	"strings"
	"time"

	"nifty-navigator/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetBacktest godoc
// @Summary      Get the simulated backtest for a symbol
// @Description  Returns prediction correctness, 1d/1w/1m returns, and the synthetic price series
// @Tags         backtest
// @Produce      json
// @Param        symbol  path  string  true  "NSE symbol (e.g., RELIANCE, TCS)"
// @Success      200  {object}  domain.BacktestResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/backtest/{symbol} [get]
func (h *Handler) GetBacktest(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-backtest")
	defer span.End()

	symbol := strings.ToUpper(c.Param("symbol"))
	span.SetAttributes(attribute.String("symbol", symbol))

	if _, ok := domain.CompanyNames[symbol]; !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "unsupported symbol: " + symbol,
			"supported_symbols": domain.SupportedSymbols,
		})
		return
	}

	result, err := h.analytics.BacktestResult(ctx, symbol)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if result == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no backtest data for " + symbol})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetRecommendations godoc
// @Summary      Get the recommendation set for a trading date
// @Description  Returns every symbol's decision, confidence, and risk for the date
// @Tags         recommendations
// @Produce      json
// @Param        date  path  string  true  "Trading date (YYYY-MM-DD)"
// @Success      200  {object}  domain.RecommendationSet
// @Failure      400  {object}  map[string]string
// @Router       /api/recommendations/{date} [get]
func (h *Handler) GetRecommendations(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-recommendations")
	defer span.End()

	date := c.Param("date")
	span.SetAttributes(attribute.String("date", date))

	if !validDate(date) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date: " + date + ", want YYYY-MM-DD"})
		return
	}

	set, err := h.analytics.RecommendationSet(ctx, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, set)
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
