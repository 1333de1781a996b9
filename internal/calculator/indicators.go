package calculator

import (
	"fmt"
	"math"

	"stockdash/internal/model"
)

// indicatorWindow is the period for both moving-average indicators.
const indicatorWindow = 20

// SMASeries computes the windowed simple moving average of values. Indices
// before the window is filled are NaN.
func SMASeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if period <= 1 {
		copy(out, values)
		return out
	}
	for i := range values {
		if i < period-1 {
			out[i] = math.NaN()
			continue
		}
		sum := 0.0
		for j := i - period + 1; j <= i; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(period)
	}
	return out
}

// EMASeries computes the recursive exponential moving average of values with
// smoothing factor 2/(period+1), seeded by the first value. Indices before
// the window is filled are NaN, matching the SMA convention.
func EMASeries(values []float64, period int) []float64 {
	out := make([]float64, len(values))
	if len(values) == 0 {
		return out
	}
	if period <= 1 {
		copy(out, values)
		return out
	}
	alpha := 2.0 / (float64(period) + 1.0)
	ema := values[0]
	for i := range values {
		if i > 0 {
			ema = alpha*values[i] + (1-alpha)*ema
		}
		if i < period-1 {
			out[i] = math.NaN()
		} else {
			out[i] = ema
		}
	}
	return out
}

// AddIndicators appends SMA_20 and EMA_20 columns derived from the canonical
// Close column. Existing columns are never removed or modified, and the new
// series never feed back into the metrics tuple.
func AddIndicators(t *model.Table) error {
	closes, ok := t.Values("Close")
	if !ok {
		return fmt.Errorf("%w: Close", model.ErrMissingColumn)
	}
	t.AddColumn(model.IndicatorSMA20, SMASeries(closes, indicatorWindow))
	t.AddColumn(model.IndicatorEMA20, EMASeries(closes, indicatorWindow))
	return nil
}
