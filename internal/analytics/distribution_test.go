package analytics

import (
	"encoding/json"
	"testing"

	"nifty-navigator/internal/domain"
)

func TestBucketReturnsBoundaryInclusiveMin(t *testing.T) {
	t.Parallel()

	records := []domain.StockDecisionRecord{record("A", domain.DecisionBuy)}
	outcomes := map[string]*domain.BacktestResult{"A": outcome(true, -1.0)}

	buckets := BucketReturns(records, outcomes)
	for _, b := range buckets {
		switch b.RangeLabel {
		case "-1%..0%":
			if b.Count != 1 {
				t.Fatalf("exactly -1.0 must land in -1..0, got count %d", b.Count)
			}
		case "-2%..-1%":
			if b.Count != 0 {
				t.Fatal("exactly -1.0 leaked into -2..-1")
			}
		}
	}
}

func TestBucketReturnsEachSymbolExactlyOnce(t *testing.T) {
	t.Parallel()

	returns := []float64{-5, -2.3, -1.4, -0.1, 0, 0.9, 1.5, 2.99, 3, 12}
	records := make([]domain.StockDecisionRecord, len(returns))
	outcomes := make(map[string]*domain.BacktestResult, len(returns))
	for i, r := range returns {
		symbol := string(rune('A' + i))
		records[i] = record(symbol, domain.DecisionBuy)
		outcomes[symbol] = outcome(true, r)
	}

	buckets := BucketReturns(records, outcomes)
	if len(buckets) != 8 {
		t.Fatalf("expected 8 fixed bands, got %d", len(buckets))
	}
	total := 0
	for _, b := range buckets {
		total += b.Count
		if len(b.Symbols) != b.Count {
			t.Fatalf("band %s: %d symbols vs count %d", b.RangeLabel, len(b.Symbols), b.Count)
		}
	}
	if total != len(returns) {
		t.Fatalf("placed %d returns, want %d", total, len(returns))
	}
}

func TestBucketReturnsOpenEndedBands(t *testing.T) {
	t.Parallel()

	records := []domain.StockDecisionRecord{
		record("LOW", domain.DecisionSell),
		record("HIGH", domain.DecisionBuy),
		record("EDGE", domain.DecisionBuy),
	}
	outcomes := map[string]*domain.BacktestResult{
		"LOW":  outcome(true, -40),
		"HIGH": outcome(true, 40),
		"EDGE": outcome(true, 3), // inclusive lower bound of the top band
	}

	buckets := BucketReturns(records, outcomes)
	if buckets[0].RangeLabel != "<-3%" || buckets[0].Count != 1 {
		t.Fatalf("bottom band = %+v", buckets[0])
	}
	top := buckets[len(buckets)-1]
	if top.RangeLabel != ">3%" || top.Count != 2 {
		t.Fatalf("top band = %+v", top)
	}
	if buckets[0].Min != nil || top.Max != nil {
		t.Fatal("outermost bands must have open (nil) bounds")
	}
	if buckets[0].Max == nil || *buckets[0].Max != -3 {
		t.Fatalf("bottom band upper bound = %v, want -3", buckets[0].Max)
	}
	if top.Min == nil || *top.Min != 3 {
		t.Fatalf("top band lower bound = %v, want 3", top.Min)
	}
}

func TestBucketReturnsMarshalToJSON(t *testing.T) {
	t.Parallel()

	records := []domain.StockDecisionRecord{record("A", domain.DecisionBuy)}
	outcomes := map[string]*domain.BacktestResult{"A": outcome(true, 40)}

	data, err := json.Marshal(BucketReturns(records, outcomes))
	if err != nil {
		t.Fatalf("buckets must be JSON-encodable: %v", err)
	}

	var decoded []domain.ReturnBucket
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(decoded) != 8 {
		t.Fatalf("expected 8 bands after round trip, got %d", len(decoded))
	}
	if decoded[0].Min != nil || decoded[len(decoded)-1].Max != nil {
		t.Fatal("open ends must stay absent through JSON")
	}
}

func TestBucketReturnsSkipsMissingOutcomes(t *testing.T) {
	t.Parallel()

	records := []domain.StockDecisionRecord{
		record("A", domain.DecisionBuy),
		record("B", domain.DecisionBuy),
	}
	outcomes := map[string]*domain.BacktestResult{"A": outcome(true, 0.5)}

	buckets := BucketReturns(records, outcomes)
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total != 1 {
		t.Fatalf("missing outcomes must be skipped, placed %d", total)
	}
}
