package domain

import "time"

type Decision string

const (
	DecisionBuy  Decision = "BUY"
	DecisionSell Decision = "SELL"
	DecisionHold Decision = "HOLD"
)

func (d Decision) IsValid() bool {
	return d == DecisionBuy || d == DecisionSell || d == DecisionHold
}

type ConfidenceLevel string

const (
	ConfidenceHigh   ConfidenceLevel = "HIGH"
	ConfidenceMedium ConfidenceLevel = "MEDIUM"
	ConfidenceLow    ConfidenceLevel = "LOW"
)

type RiskLevel string

const (
	RiskHigh   RiskLevel = "HIGH"
	RiskMedium RiskLevel = "MEDIUM"
	RiskLow    RiskLevel = "LOW"
)

// StockDecisionRecord is one recommendation for one symbol on one trading
// date. Records are produced by the (external) decision pipeline and never
// mutated after creation.
type StockDecisionRecord struct {
	Symbol      string          `json:"symbol"`
	CompanyName string          `json:"company_name"`
	Decision    Decision        `json:"decision"`
	Confidence  ConfidenceLevel `json:"confidence"`
	Risk        RiskLevel       `json:"risk"`
}

// RecommendationSet is the full recommendation list for one trading date.
type RecommendationSet struct {
	Date    string                `json:"date"`
	Records []StockDecisionRecord `json:"records"`
}

// RecordFor returns the record for symbol, or nil if the set has none.
func (s *RecommendationSet) RecordFor(symbol string) *StockDecisionRecord {
	if s == nil {
		return nil
	}
	for i := range s.Records {
		if s.Records[i].Symbol == symbol {
			return &s.Records[i]
		}
	}
	return nil
}

// PricePoint is a single day on a synthetic price series.
type PricePoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
}

// BacktestResult is the simulated outcome of one recommendation. It is
// derived, never stored: recomputed on first access per symbol and owned
// by the backtest cache for the rest of the process lifetime.
type BacktestResult struct {
	Symbol            string       `json:"symbol"`
	Decision          Decision     `json:"decision"`
	PredictionCorrect bool         `json:"prediction_correct"`
	ActualReturn1D    float64      `json:"actual_return_1d"`
	ActualReturn1W    float64      `json:"actual_return_1w"`
	ActualReturn1M    float64      `json:"actual_return_1m"`
	PriceAtPrediction float64      `json:"price_at_prediction"`
	CurrentPrice      float64      `json:"current_price"`
	PriceHistory      []PricePoint `json:"price_history,omitempty"`
}

// DateStats is the portfolio-level rollup of all outcomes for one date.
type DateStats struct {
	Date               string  `json:"date"`
	WeightedReturn1D   float64 `json:"weighted_return_1d"`
	TotalStocks        int     `json:"total_stocks"`
	CorrectPredictions int     `json:"correct_predictions"`
	AccuracyPct        float64 `json:"accuracy_pct"`
	BuyCount           int     `json:"buy_count"`
	SellCount          int     `json:"sell_count"`
	HoldCount          int     `json:"hold_count"`
}

// SymbolReturn is one symbol's contribution inside a ReturnBreakdown.
type SymbolReturn struct {
	Symbol       string   `json:"symbol"`
	Decision     Decision `json:"decision"`
	Correct      bool     `json:"correct"`
	Return1D     float64  `json:"return_1d"`
	Contribution float64  `json:"contribution"`
}

// ReturnBreakdown explains how one date's weighted return was blended
// from correct and incorrect predictions.
type ReturnBreakdown struct {
	Date           string         `json:"date"`
	Entries        []SymbolReturn `json:"entries"`
	CorrectCount   int            `json:"correct_count"`
	IncorrectCount int            `json:"incorrect_count"`
	CorrectAvg     float64        `json:"correct_avg"`
	IncorrectAvg   float64        `json:"incorrect_avg"`
	WeightedReturn float64        `json:"weighted_return"`
}

// CompoundStep is one link of the compounding chain.
type CompoundStep struct {
	Date           string  `json:"date"`
	DailyReturn    float64 `json:"daily_return"`
	StepMultiplier float64 `json:"step_multiplier"`
	CumulativePct  float64 `json:"cumulative_pct"`
}

// CumulativeReturns is the compounded portfolio performance over the full
// date range. Formula reproduces the exact multiplication chain behind
// Multiplier and FinalReturnPct; the numbers in it are formatted from the
// same floats the steps were computed with.
type CumulativeReturns struct {
	Steps          []CompoundStep `json:"steps"`
	Multiplier     float64        `json:"multiplier"`
	FinalReturnPct float64        `json:"final_return_pct"`
	Formula        string         `json:"formula"`
}

type RiskMetrics struct {
	SharpeRatio    float64 `json:"sharpe_ratio"`
	MaxDrawdownPct float64 `json:"max_drawdown_pct"`
	WinLossRatio   float64 `json:"win_loss_ratio"`
	WinRatePct     float64 `json:"win_rate_pct"`
	Volatility     float64 `json:"volatility"`
	TotalTrades    int     `json:"total_trades"`
}

// ReturnBucket is one band of the 1-day return histogram. Min is
// inclusive, Max exclusive; a nil bound marks an open end, which keeps
// the outermost bands representable in JSON.
type ReturnBucket struct {
	RangeLabel string   `json:"range_label"`
	Min        *float64 `json:"min,omitempty"`
	Max        *float64 `json:"max,omitempty"`
	Count      int      `json:"count"`
	Symbols    []string `json:"symbols"`
}

// AccuracyPoint is per-date prediction accuracy broken out by decision type.
type AccuracyPoint struct {
	Date       string  `json:"date"`
	OverallPct float64 `json:"overall_pct"`
	BuyPct     float64 `json:"buy_pct"`
	SellPct    float64 `json:"sell_pct"`
	HoldPct    float64 `json:"hold_pct"`
	BuyTotal   int     `json:"buy_total"`
	SellTotal  int     `json:"sell_total"`
	HoldTotal  int     `json:"hold_total"`
	Total      int     `json:"total"`
}
