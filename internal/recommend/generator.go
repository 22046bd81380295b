// Package recommend is the seeded stand-in for the external decision
// pipeline. A real deployment sources daily recommendation sets from the
// multi-agent pipeline and its persistence layer; here every set is a
// deterministic function of (symbol, date), which keeps the whole
// dashboard reproducible without market data.
package recommend

import (
	"time"

	"nifty-navigator/internal/backtest"
	"nifty-navigator/internal/domain"
)

const (
	buyShare  = 0.40
	sellShare = 0.25
	// remainder holds
)

type Generator struct {
	symbols []string
}

func NewGenerator(symbols []string) *Generator {
	if len(symbols) == 0 {
		symbols = domain.SupportedSymbols
	}
	return &Generator{symbols: symbols}
}

// SetForDate produces the recommendation set for one trading date.
// Calling it twice for the same date yields identical records.
func (g *Generator) SetForDate(date string) *domain.RecommendationSet {
	set := &domain.RecommendationSet{
		Date:    date,
		Records: make([]domain.StockDecisionRecord, 0, len(g.symbols)),
	}
	for _, symbol := range g.symbols {
		seed := DecisionSeed(symbol, date)
		set.Records = append(set.Records, domain.StockDecisionRecord{
			Symbol:      symbol,
			CompanyName: domain.CompanyNames[symbol],
			Decision:    decisionFor(seed),
			Confidence:  confidenceFor(seed),
			Risk:        riskFor(seed),
		})
	}
	return set
}

// DecisionSeed derives the per-(symbol,date) seed that drives both the
// recommendation draw and that date's outcome derivation.
func DecisionSeed(symbol, date string) int32 {
	return backtest.Seed(symbol + "|" + date)
}

func decisionFor(seed int32) domain.Decision {
	roll := backtest.Rand(seed)
	switch {
	case roll < buyShare:
		return domain.DecisionBuy
	case roll < buyShare+sellShare:
		return domain.DecisionSell
	default:
		return domain.DecisionHold
	}
}

func confidenceFor(seed int32) domain.ConfidenceLevel {
	switch roll := backtest.Rand(seed + 11); {
	case roll < 0.3:
		return domain.ConfidenceHigh
	case roll < 0.7:
		return domain.ConfidenceMedium
	default:
		return domain.ConfidenceLow
	}
}

func riskFor(seed int32) domain.RiskLevel {
	switch roll := backtest.Rand(seed + 17); {
	case roll < 0.25:
		return domain.RiskHigh
	case roll < 0.65:
		return domain.RiskMedium
	default:
		return domain.RiskLow
	}
}

// TradingDates returns the last n weekdays up to and including end (or
// the nearest prior weekday), ascending, formatted as 2006-01-02.
func TradingDates(end time.Time, n int) []string {
	if n <= 0 {
		return nil
	}
	day := end.UTC().Truncate(24 * time.Hour)
	dates := make([]string, 0, n)
	for len(dates) < n {
		if wd := day.Weekday(); wd != time.Saturday && wd != time.Sunday {
			dates = append(dates, day.Format("2006-01-02"))
		}
		day = day.AddDate(0, 0, -1)
	}
	// collected newest-first; reverse to ascending
	for i, j := 0, len(dates)-1; i < j; i, j = i+1, j-1 {
		dates[i], dates[j] = dates[j], dates[i]
	}
	return dates
}
