package backtest

import (
	"time"

	"nifty-navigator/internal/domain"
)

// Fixed demo tuning constants. They have no stated derivation; keep the
// literal values unless product requirements change them.
const (
	buyCorrectThreshold  = 0.75
	sellCorrectThreshold = 0.83
	holdCorrectThreshold = 0.70

	buyGainSpan   = 0.08
	buyLossSpan   = 0.05
	sellGainSpan  = 0.08
	sellLossSpan  = 0.05
	holdDriftSpan = 0.04

	weekOfMonthRatio = 0.3
	dayOfWeekBase    = 0.4
	dayOfWeekSpan    = 0.3
)

// GenerateOutcome deterministically derives a backtest result for one
// decision from a seed. Base price, correctness, and all three return
// horizons are functions of the seed alone. historyDays <= 0 skips the
// price series for callers that only need the returns.
func GenerateOutcome(symbol string, decision domain.Decision, seed int32, historyDays int, endDate time.Time) *domain.BacktestResult {
	basePrice := 1000 + Rand(seed)*2000
	outcomeRoll := Rand(seed + 1)

	var correct bool
	var trend Trend
	var multiplier float64

	switch decision {
	case domain.DecisionBuy:
		correct = outcomeRoll < buyCorrectThreshold
		if correct {
			trend = TrendUp
			multiplier = 1 + Rand(seed+2)*buyGainSpan
		} else {
			trend = TrendDown
			multiplier = 1 - Rand(seed+2)*buyLossSpan
		}
	case domain.DecisionSell:
		correct = outcomeRoll < sellCorrectThreshold
		if correct {
			trend = TrendDown
			multiplier = 1 - Rand(seed+2)*sellGainSpan
		} else {
			trend = TrendUp
			multiplier = 1 + Rand(seed+2)*sellLossSpan
		}
	default: // HOLD
		correct = outcomeRoll < holdCorrectThreshold
		trend = TrendFlat
		multiplier = 1 + (Rand(seed+2)-0.5)*holdDriftSpan
	}

	currentPrice := basePrice * multiplier
	return1m := (currentPrice - basePrice) / basePrice * 100
	return1w := return1m * weekOfMonthRatio
	return1d := return1w * (dayOfWeekBase + Rand(seed+3)*dayOfWeekSpan)

	result := &domain.BacktestResult{
		Symbol:            symbol,
		Decision:          decision,
		PredictionCorrect: correct,
		ActualReturn1D:    return1d,
		ActualReturn1W:    return1w,
		ActualReturn1M:    return1m,
		PriceAtPrediction: basePrice,
		CurrentPrice:      currentPrice,
	}
	if historyDays > 0 {
		result.PriceHistory = GeneratePriceHistory(ExtendedPreset, seed, basePrice, trend, historyDays, endDate)
	}
	return result
}
