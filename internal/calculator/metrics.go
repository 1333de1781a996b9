package calculator

import (
	"fmt"
	"math"

	"stockdash/internal/model"
)

// ComputeMetrics derives the summary tuple from a canonical table. Change is
// measured from the first row of the queried window, so multi-day periods
// report change over the displayed period rather than day-over-day. A zero
// first close yields IEEE Inf/NaN in PctChange; that is not guarded here.
func ComputeMetrics(t *model.Table) (*model.Metrics, error) {
	closes, ok := t.Values("Close")
	if !ok {
		return nil, fmt.Errorf("%w: Close", model.ErrMissingColumn)
	}
	highs, ok := t.Values("High")
	if !ok {
		return nil, fmt.Errorf("%w: High", model.ErrMissingColumn)
	}
	lows, ok := t.Values("Low")
	if !ok {
		return nil, fmt.Errorf("%w: Low", model.ErrMissingColumn)
	}
	volumes, ok := t.Values("Volume")
	if !ok {
		return nil, fmt.Errorf("%w: Volume", model.ErrMissingColumn)
	}
	if len(closes) == 0 {
		return nil, model.ErrInsufficientData
	}

	lastClose := closes[len(closes)-1]
	prevClose := closes[0]
	change := lastClose - prevClose

	high := math.Inf(-1)
	low := math.Inf(1)
	for i := range highs {
		if highs[i] > high {
			high = highs[i]
		}
		if lows[i] < low {
			low = lows[i]
		}
	}

	var volume float64
	for _, v := range volumes {
		volume += v
	}

	return &model.Metrics{
		LastClose: lastClose,
		Change:    change,
		PctChange: change / prevClose * 100,
		High:      high,
		Low:       low,
		Volume:    int64(volume),
	}, nil
}
