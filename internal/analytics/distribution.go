package analytics

import (
	"math"

	"nifty-navigator/internal/domain"
)

// bucketBounds fixes the histogram bands for 1-day returns. Min is
// inclusive and Max exclusive, so a return of exactly -1.0 lands in
// "-1..0", not "-2..-1". The outermost bands are open-ended.
var bucketBounds = []struct {
	label string
	min   float64
	max   float64
}{
	{"<-3%", math.Inf(-1), -3},
	{"-3%..-2%", -3, -2},
	{"-2%..-1%", -2, -1},
	{"-1%..0%", -1, 0},
	{"0%..1%", 0, 1},
	{"1%..2%", 1, 2},
	{"2%..3%", 2, 3},
	{">3%", 3, math.Inf(1)},
}

// BucketReturns histograms each symbol's 1-day return into exactly one
// band. Buckets are recomputed on every call, never cached.
func BucketReturns(records []domain.StockDecisionRecord, outcomes map[string]*domain.BacktestResult) []domain.ReturnBucket {
	buckets := make([]domain.ReturnBucket, len(bucketBounds))
	for i, b := range bucketBounds {
		buckets[i] = domain.ReturnBucket{
			RangeLabel: b.label,
			Min:        finiteBound(b.min),
			Max:        finiteBound(b.max),
			Symbols:    []string{},
		}
	}

	for _, rec := range records {
		outcome := outcomes[rec.Symbol]
		if outcome == nil {
			continue
		}
		idx := bucketIndex(outcome.ActualReturn1D)
		buckets[idx].Count++
		buckets[idx].Symbols = append(buckets[idx].Symbols, rec.Symbol)
	}
	return buckets
}

// finiteBound drops the infinite sentinels so the open-ended bands do
// not break JSON encoding, which rejects +/-Inf.
func finiteBound(v float64) *float64 {
	if math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func bucketIndex(return1d float64) int {
	for i, b := range bucketBounds {
		if return1d >= b.min && return1d < b.max {
			return i
		}
	}
	// Only +Inf and NaN escape the half-open scan; both belong in the
	// top band by the inclusive-upper rule.
	return len(bucketBounds) - 1
}
