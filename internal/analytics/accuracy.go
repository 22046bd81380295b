package analytics

import "nifty-navigator/internal/domain"

// ComputeAccuracyPoint reports per-date accuracy overall and per
// decision type, reusing the correctness already decided for each
// outcome. It never re-rolls correctness itself.
func ComputeAccuracyPoint(date string, records []domain.StockDecisionRecord, outcomes map[string]*domain.BacktestResult) domain.AccuracyPoint {
	point := domain.AccuracyPoint{Date: date}

	var buyCorrect, sellCorrect, holdCorrect, correct int
	for _, rec := range records {
		outcome := outcomes[rec.Symbol]
		if outcome == nil {
			continue
		}
		point.Total++
		if outcome.PredictionCorrect {
			correct++
		}
		switch rec.Decision {
		case domain.DecisionBuy:
			point.BuyTotal++
			if outcome.PredictionCorrect {
				buyCorrect++
			}
		case domain.DecisionSell:
			point.SellTotal++
			if outcome.PredictionCorrect {
				sellCorrect++
			}
		case domain.DecisionHold:
			point.HoldTotal++
			if outcome.PredictionCorrect {
				holdCorrect++
			}
		}
	}

	point.OverallPct = pct(correct, point.Total)
	point.BuyPct = pct(buyCorrect, point.BuyTotal)
	point.SellPct = pct(sellCorrect, point.SellTotal)
	point.HoldPct = pct(holdCorrect, point.HoldTotal)
	return point
}

func pct(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
