package collector

import (
	"time"

	"stockdash/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Table  *model.Table
	Tables map[string]*model.Table // per-symbol override; falls back to Table
	Err    error
	Errs   map[string]error // per-symbol error
	Calls  []string         // symbols in fetch order
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) Fetch(symbol string, _ model.Period, _ string) (*model.Table, error) {
	m.Calls = append(m.Calls, symbol)
	if err, ok := m.Errs[symbol]; ok {
		return nil, err
	}
	if m.Err != nil {
		return nil, m.Err
	}
	if t, ok := m.Tables[symbol]; ok {
		return t, nil
	}
	if m.Table != nil {
		return m.Table, nil
	}
	return GenerateRawTable(symbol, 100, 30), nil
}

// GenerateRawTable builds a raw-shaped table (aware UTC index, grouped
// labels) with closes walking up from basePrice, one bar per day.
func GenerateRawTable(symbol string, basePrice float64, count int) *model.Table {
	start := time.Now().UTC().AddDate(0, 0, -count)
	t := &model.Table{
		IndexName: "Date",
		Index:     make([]time.Time, count),
		IndexTZ:   time.UTC,
	}
	opens := make([]float64, count)
	highs := make([]float64, count)
	lows := make([]float64, count)
	closes := make([]float64, count)
	volumes := make([]float64, count)
	for i := 0; i < count; i++ {
		p := basePrice + float64(i)
		t.Index[i] = start.AddDate(0, 0, i)
		opens[i] = p * 0.999
		highs[i] = p * 1.005
		lows[i] = p * 0.995
		closes[i] = p
		volumes[i] = 1000000
	}
	t.Columns = []model.Column{
		{Label: model.Label{Name: "Open", Sub: symbol}, Values: opens},
		{Label: model.Label{Name: "High", Sub: symbol}, Values: highs},
		{Label: model.Label{Name: "Low", Sub: symbol}, Values: lows},
		{Label: model.Label{Name: "Close", Sub: symbol}, Values: closes},
		{Label: model.Label{Name: "Volume", Sub: symbol}, Values: volumes},
	}
	return t
}
