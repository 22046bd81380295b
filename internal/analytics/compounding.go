package analytics

import (
	"fmt"
	"sort"
	"strings"

	"nifty-navigator/internal/domain"
)

// CompoundReturns folds daily weighted returns into a cumulative
// multiplier, strictly in chronological order. The returned Formula
// string reproduces the exact multiplication chain; its numbers are
// formatted from the same floats carried in Steps, so the displayed
// arithmetic always matches the computed result.
func CompoundReturns(stats []domain.DateStats) domain.CumulativeReturns {
	ordered := make([]domain.DateStats, len(stats))
	copy(ordered, stats)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Date < ordered[j].Date })

	out := domain.CumulativeReturns{Multiplier: 1}
	var formula strings.Builder
	for i, day := range ordered {
		step := 1 + day.WeightedReturn1D/100
		out.Multiplier *= step
		out.Steps = append(out.Steps, domain.CompoundStep{
			Date:           day.Date,
			DailyReturn:    day.WeightedReturn1D,
			StepMultiplier: step,
			CumulativePct:  (out.Multiplier - 1) * 100,
		})
		if i > 0 {
			formula.WriteString("×")
		}
		fmt.Fprintf(&formula, "(1+%.4f%%)", day.WeightedReturn1D)
	}
	out.FinalReturnPct = (out.Multiplier - 1) * 100

	if len(ordered) == 0 {
		out.Formula = "(no data) = 1.000000 → 0.0000%"
		return out
	}
	fmt.Fprintf(&formula, " = %.6f → %.4f%%", out.Multiplier, out.FinalReturnPct)
	out.Formula = formula.String()
	return out
}
