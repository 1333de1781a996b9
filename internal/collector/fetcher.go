package collector

import "stockdash/internal/model"

// Fetcher defines the interface for fetching raw market data. The returned
// table may be empty, and its columns may be grouped or loosely named; the
// normalizer is responsible for repairing the shape.
type Fetcher interface {
	Fetch(symbol string, period model.Period, interval string) (*model.Table, error)
	Name() string
}
