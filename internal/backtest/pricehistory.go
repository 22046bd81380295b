package backtest

import (
	"math"
	"time"

	"nifty-navigator/internal/domain"
)

type Trend string

const (
	TrendUp   Trend = "up"
	TrendDown Trend = "down"
	TrendFlat Trend = "flat"
)

// HistoryPreset parameterizes the price-path generator. Both presets run
// the identical compounding algorithm; only the constants differ.
type HistoryPreset struct {
	Name          string
	Volatility    float64
	UpBias        float64
	DownBias      float64
	WaveAmplitude float64
}

// VisualPreset produces exaggerated, wavy paths for sparkline demos.
var VisualPreset = HistoryPreset{
	Name:          "visual",
	Volatility:    0.12,
	UpBias:        0.012,
	DownBias:      -0.012,
	WaveAmplitude: 0.02,
}

// ExtendedPreset produces calmer paths for the full chart view.
var ExtendedPreset = HistoryPreset{
	Name:       "extended",
	Volatility: 0.02,
	UpBias:     0.004,
	DownBias:   -0.004,
}

func (p HistoryPreset) bias(trend Trend) float64 {
	switch trend {
	case TrendUp:
		return p.UpBias
	case TrendDown:
		return p.DownBias
	default:
		return 0
	}
}

// GeneratePriceHistory compounds a daily series forward from basePrice.
// The result is ascending by date, has numDays+1 points, and ends at
// endDate truncated to the day.
func GeneratePriceHistory(preset HistoryPreset, seed int32, basePrice float64, trend Trend, numDays int, endDate time.Time) []domain.PricePoint {
	if numDays < 0 {
		numDays = 0
	}
	end := endDate.UTC().Truncate(24 * time.Hour)

	points := make([]domain.PricePoint, 0, numDays+1)
	price := basePrice
	for i := numDays; i >= 0; i-- {
		step := numDays - i
		dailyReturn := preset.bias(trend) + (Rand(seed+int32(step))-0.5)*preset.Volatility
		if preset.WaveAmplitude != 0 {
			dailyReturn += math.Sin(float64(step)/3.0) * preset.WaveAmplitude
		}
		price *= 1 + dailyReturn
		points = append(points, domain.PricePoint{
			Date:  end.AddDate(0, 0, -i),
			Price: price,
		})
	}
	return points
}
