// Package render defines the display layer the pipeline hands its results to,
// plus a plain-text implementation of it.
package render

import (
	"time"

	"stockdash/internal/model"
)

// Metric is one scalar display cell: a label, a formatted value, and an
// optional signed delta.
type Metric struct {
	Label string
	Value string
	Delta string
}

// Overlay is a named indicator series drawn over the main chart.
type Overlay struct {
	Name string
	X    []time.Time
	Y    []float64
}

// Chart describes a single chart-series request: either a candlestick OHLC
// series or a line series, plus zero or more indicator overlays.
type Chart struct {
	Title    string
	Type     model.ChartType
	X        []time.Time
	Open     []float64 // candlestick only
	High     []float64
	Low      []float64
	Close    []float64
	Line     []float64 // line only
	Overlays []Overlay
}

// Renderer is the display layer consumed by the orchestrator. The pipeline
// is a pure producer for it; implementations decide how things look.
type Renderer interface {
	// ShowMetrics displays scalar metric cells.
	ShowMetrics(cells []Metric)
	// ShowChart displays the main chart.
	ShowChart(c *Chart)
	// ShowTable displays the named columns of a canonical table.
	ShowTable(title string, t *model.Table, columns []string)
	// ShowQuote displays one watchlist entry.
	ShowQuote(symbol string, m Metric)
	// WarnQuote displays an inline warning for one watchlist symbol.
	WarnQuote(symbol string, msg string)
	// ShowWarning displays a non-fatal warning for the current request.
	ShowWarning(msg string)
	// ShowError displays a request-fatal error message.
	ShowError(msg string)
}
