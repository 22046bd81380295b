package analytics

import (
	"math"
	"sort"

	"nifty-navigator/internal/domain"
)

// DefaultRiskFreeRate is the fixed per-period rate used for the Sharpe
// ratio. A demo constant, not an observed rate.
const DefaultRiskFreeRate = 0.02

// meanStd returns the mean and population standard deviation of values.
func meanStd(values []float64) (float64, float64) {
	if len(values) == 0 {
		return 0, 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(len(values))
	var variance float64
	for _, v := range values {
		d := v - mean
		variance += d * d
	}
	variance /= float64(len(values))
	return mean, math.Sqrt(variance)
}

// ComputeRiskMetrics derives risk statistics over the chronologically
// ordered daily-return series. Win rate counts prediction correctness
// across all dates, not positive-return days: a correct HOLD with a flat
// weighted return is still a win.
func ComputeRiskMetrics(stats []domain.DateStats, riskFreeRate float64) domain.RiskMetrics {
	ordered := make([]domain.DateStats, len(stats))
	copy(ordered, stats)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Date < ordered[j].Date })

	var metrics domain.RiskMetrics
	if len(ordered) == 0 {
		return metrics
	}

	returns := make([]float64, len(ordered))
	for i, day := range ordered {
		returns[i] = day.WeightedReturn1D
		metrics.TotalTrades += day.TotalStocks
	}

	mean, volatility := meanStd(returns)
	metrics.Volatility = volatility
	if volatility > 0 {
		metrics.SharpeRatio = (mean - riskFreeRate) / volatility
	}

	// Max drawdown: run a synthetic portfolio from 100 and track the
	// worst decline from the running peak. Later recoveries do not
	// shrink an already-observed drawdown.
	value := 100.0
	peak := value
	for _, r := range returns {
		value *= 1 + r/100
		if value > peak {
			peak = value
		}
		if dd := (peak - value) / peak * 100; dd > metrics.MaxDrawdownPct {
			metrics.MaxDrawdownPct = dd
		}
	}

	var winSum, lossSum float64
	var winDays, lossDays int
	for _, r := range returns {
		if r > 0 {
			winSum += r
			winDays++
		} else if r < 0 {
			lossSum += -r
			lossDays++
		}
	}
	avgWin := 0.0
	if winDays > 0 {
		avgWin = winSum / float64(winDays)
	}
	avgLoss := 1.0
	if lossDays > 0 {
		avgLoss = lossSum / float64(lossDays)
	}
	metrics.WinLossRatio = avgWin / avgLoss

	var correct int
	for _, day := range ordered {
		correct += day.CorrectPredictions
	}
	if metrics.TotalTrades > 0 {
		metrics.WinRatePct = float64(correct) / float64(metrics.TotalTrades) * 100
	}
	return metrics
}
