// Package analytics folds per-symbol backtest outcomes into the
// portfolio-level statistics the dashboard displays: weighted daily
// returns, compounded performance, risk metrics, return distributions,
// and accuracy trends. All functions are pure and total; empty
// partitions degrade to zero rather than NaN.
package analytics

import (
	"math"

	"nifty-navigator/internal/domain"
)

// holdCreditReturn is credited to a correct HOLD when the underlying
// move stayed inside the +/-2% band.
const (
	holdCreditReturn = 0.1
	holdCreditBand   = 2.0
)

// contribution converts one outcome into its share of the day's blended
// return.
func contribution(decision domain.Decision, correct bool, return1d float64) float64 {
	if correct {
		switch decision {
		case domain.DecisionBuy:
			return return1d
		case domain.DecisionSell:
			// A correct SELL avoided the drop; credit the magnitude.
			return math.Abs(return1d)
		default: // HOLD
			if math.Abs(return1d) < holdCreditBand {
				return holdCreditReturn
			}
			return 0
		}
	}
	switch decision {
	case domain.DecisionBuy:
		// Already negative for an incorrect BUY.
		return return1d
	default: // SELL, HOLD
		return -math.Abs(return1d)
	}
}

// ComputeReturnBreakdown partitions one date's symbols into correct and
// incorrect sets and blends their average contributions by headcount:
//
//	weighted = correctAvg*(correct/total) + incorrectAvg*(incorrect/total)
//
// The count weighting is load-bearing; it is not a plain average over
// all symbols.
func ComputeReturnBreakdown(date string, records []domain.StockDecisionRecord, outcomes map[string]*domain.BacktestResult) domain.ReturnBreakdown {
	breakdown := domain.ReturnBreakdown{Date: date}

	var correctSum, incorrectSum float64
	for _, rec := range records {
		outcome := outcomes[rec.Symbol]
		if outcome == nil {
			continue
		}
		entry := domain.SymbolReturn{
			Symbol:       rec.Symbol,
			Decision:     rec.Decision,
			Correct:      outcome.PredictionCorrect,
			Return1D:     outcome.ActualReturn1D,
			Contribution: contribution(rec.Decision, outcome.PredictionCorrect, outcome.ActualReturn1D),
		}
		breakdown.Entries = append(breakdown.Entries, entry)
		if entry.Correct {
			breakdown.CorrectCount++
			correctSum += entry.Contribution
		} else {
			breakdown.IncorrectCount++
			incorrectSum += entry.Contribution
		}
	}

	total := breakdown.CorrectCount + breakdown.IncorrectCount
	if total == 0 {
		return breakdown
	}
	if breakdown.CorrectCount > 0 {
		breakdown.CorrectAvg = correctSum / float64(breakdown.CorrectCount)
	}
	if breakdown.IncorrectCount > 0 {
		breakdown.IncorrectAvg = incorrectSum / float64(breakdown.IncorrectCount)
	}
	breakdown.WeightedReturn = breakdown.CorrectAvg*(float64(breakdown.CorrectCount)/float64(total)) +
		breakdown.IncorrectAvg*(float64(breakdown.IncorrectCount)/float64(total))
	return breakdown
}

// ComputeDateStats rolls one date's records and outcomes into the stats
// row consumed by the charts.
func ComputeDateStats(date string, records []domain.StockDecisionRecord, outcomes map[string]*domain.BacktestResult) domain.DateStats {
	stats := domain.DateStats{Date: date}

	for _, rec := range records {
		switch rec.Decision {
		case domain.DecisionBuy:
			stats.BuyCount++
		case domain.DecisionSell:
			stats.SellCount++
		case domain.DecisionHold:
			stats.HoldCount++
		}
		outcome := outcomes[rec.Symbol]
		if outcome == nil {
			continue
		}
		stats.TotalStocks++
		if outcome.PredictionCorrect {
			stats.CorrectPredictions++
		}
	}

	if stats.TotalStocks > 0 {
		stats.AccuracyPct = float64(stats.CorrectPredictions) / float64(stats.TotalStocks) * 100
	}
	stats.WeightedReturn1D = ComputeReturnBreakdown(date, records, outcomes).WeightedReturn
	return stats
}
