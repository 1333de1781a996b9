// Package orchestrator sequences Fetch -> Normalize -> Metrics -> Indicators
// and dispatches the results to the display layer.
package orchestrator

import (
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"stockdash/internal/calculator"
	"stockdash/internal/collector"
	"stockdash/internal/model"
	"stockdash/internal/normalizer"
	"stockdash/internal/render"
)

// State is the orchestrator's position within one pipeline run.
type State int

const (
	StateIdle State = iota
	StateFetching
	StateProcessing
	StateRendered
	StateEmpty
	StateError
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateFetching:
		return "fetching"
	case StateProcessing:
		return "processing"
	case StateRendered:
		return "rendered"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	}
	return "unknown"
}

// minCandlestickRows is the smallest row count still rendered as candles;
// below it a candlestick request downgrades to a line.
const minCandlestickRows = 5

// Watchlist requests use a fixed short window with minute bars.
const (
	watchPeriod   = model.PeriodDay
	watchInterval = "1m"
)

// Orchestrator runs the dashboard pipeline. Each run is independent and
// stateless aside from the read-only watchlist; errors terminate the current
// run only and are surfaced through the display layer.
type Orchestrator struct {
	Fetcher   collector.Fetcher
	Renderer  render.Renderer
	Watchlist []string

	state State
}

// NewOrchestrator creates an Orchestrator.
func NewOrchestrator(f collector.Fetcher, r render.Renderer, watchlist []string) *Orchestrator {
	return &Orchestrator{Fetcher: f, Renderer: r, Watchlist: watchlist}
}

// State returns the state reached by the most recent run.
func (o *Orchestrator) State() State { return o.state }

// UpdateChart runs one full pipeline for a user chart request. All failures
// are surfaced through the display layer; the orchestrator itself keeps
// accepting triggers.
func (o *Orchestrator) UpdateChart(req model.ChartRequest) State {
	runID := uuid.NewString()
	log.Printf("[INFO] run %s: update chart %s %s %s", runID, req.Symbol, req.Period, req.ChartType)

	o.state = StateFetching
	raw, err := o.Fetcher.Fetch(req.Symbol, req.Period, req.Period.Interval())
	if err != nil {
		return o.fail(runID, fmt.Errorf("fetch %s: %w", req.Symbol, err))
	}
	if raw == nil || raw.Rows() < 2 {
		o.state = StateEmpty
		log.Printf("[WARN] run %s: %v", runID, model.ErrInsufficientData)
		o.Renderer.ShowWarning("Not enough data to display chart.")
		return o.state
	}

	o.state = StateProcessing
	data := normalizer.Normalize(raw)

	metrics, err := calculator.ComputeMetrics(data)
	if err != nil {
		return o.fail(runID, err)
	}
	if err := calculator.AddIndicators(data); err != nil {
		return o.fail(runID, err)
	}

	o.renderResult(req, data, metrics)
	o.state = StateRendered
	log.Printf("[INFO] run %s: rendered %d rows", runID, data.Rows())
	return o.state
}

func (o *Orchestrator) fail(runID string, err error) State {
	o.state = StateError
	log.Printf("[ERROR] run %s: %v", runID, err)
	o.Renderer.ShowError(err.Error())
	return o.state
}

// renderResult dispatches the metrics cells, the chart series, and the two
// table projections for a finished run.
func (o *Orchestrator) renderResult(req model.ChartRequest, data *model.Table, m *model.Metrics) {
	o.Renderer.ShowMetrics([]render.Metric{
		{
			Label: fmt.Sprintf("%s Last Price", req.Symbol),
			Value: render.FormatPrice(m.LastClose),
			Delta: render.FormatDelta(m.Change, m.PctChange),
		},
		{Label: "High", Value: render.FormatPrice(m.High)},
		{Label: "Low", Value: render.FormatPrice(m.Low)},
		{Label: "Volume", Value: render.FormatVolume(m.Volume)},
	})

	chartType := req.ChartType
	if chartType == model.ChartCandlestick && data.Rows() < minCandlestickRows {
		chartType = model.ChartLine
		o.Renderer.ShowWarning("Not enough candles. Showing line chart instead.")
	}

	times, _ := data.Times("Datetime")
	closes, _ := data.Values("Close")
	chart := &render.Chart{
		Title: fmt.Sprintf("%s %s Chart", req.Symbol, strings.ToUpper(string(req.Period))),
		Type:  chartType,
		X:     times,
	}
	if chartType == model.ChartCandlestick {
		chart.Open, _ = data.Values("Open")
		chart.High, _ = data.Values("High")
		chart.Low, _ = data.Values("Low")
		chart.Close = closes
	} else {
		chart.Line = closes
	}
	for _, name := range req.Indicators {
		if vals, ok := data.Values(name); ok {
			chart.Overlays = append(chart.Overlays, render.Overlay{Name: name, X: times, Y: vals})
		}
	}
	o.Renderer.ShowChart(chart)

	o.Renderer.ShowTable("Historical Data", data,
		[]string{"Datetime", "Open", "High", "Low", "Close", "Volume"})
	o.Renderer.ShowTable("Technical Indicators", data,
		[]string{"Datetime", model.IndicatorSMA20, model.IndicatorEMA20})
}

// RefreshWatchlist runs the pipeline once per watchlist symbol, in order.
// Failures are isolated: one symbol's error is reported inline and the loop
// moves on.
func (o *Orchestrator) RefreshWatchlist() {
	for _, symbol := range o.Watchlist {
		if err := o.refreshQuote(symbol); err != nil {
			log.Printf("[WARN] watchlist %s: %v", symbol, err)
			o.Renderer.WarnQuote(symbol, err.Error())
		}
	}
}

func (o *Orchestrator) refreshQuote(symbol string) error {
	raw, err := o.Fetcher.Fetch(symbol, watchPeriod, watchInterval)
	if err != nil {
		return fmt.Errorf("fetch: %w", err)
	}
	if raw == nil || raw.Rows() < 2 {
		return model.ErrInsufficientData
	}
	data := normalizer.Normalize(raw)
	m, err := calculator.ComputeMetrics(data)
	if err != nil {
		return err
	}
	o.Renderer.ShowQuote(symbol, render.Metric{
		Label: symbol,
		Value: render.FormatPrice(m.LastClose),
		Delta: render.FormatDelta(m.Change, m.PctChange),
	})
	return nil
}
