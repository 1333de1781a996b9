package model

// Metrics holds the summary values derived from a canonical table. Change and
// PctChange are measured against the first row of the queried window, not the
// prior session's close. Recomputed on every pipeline run, never stored.
type Metrics struct {
	LastClose float64
	Change    float64
	PctChange float64
	High      float64
	Low       float64
	Volume    int64
}
