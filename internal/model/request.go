package model

// Period is the queried time window for a chart request.
type Period string

const (
	PeriodDay   Period = "1d"
	PeriodWeek  Period = "1wk"
	PeriodMonth Period = "1mo"
	PeriodYear  Period = "1y"
	PeriodMax   Period = "max"
)

// Valid reports whether p is one of the supported periods.
func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodWeek, PeriodMonth, PeriodYear, PeriodMax:
		return true
	}
	return false
}

// Interval returns the fetch interval used for this period.
func (p Period) Interval() string {
	switch p {
	case PeriodDay:
		return "5m"
	case PeriodWeek:
		return "30m"
	case PeriodMonth:
		return "1d"
	default: // PeriodYear, PeriodMax
		return "1wk"
	}
}

// ChartType selects the rendering style for the main chart.
type ChartType string

const (
	ChartCandlestick ChartType = "candlestick"
	ChartLine        ChartType = "line"
)

// Indicator column names added by the indicator engine.
const (
	IndicatorSMA20 = "SMA_20"
	IndicatorEMA20 = "EMA_20"
)

// ChartRequest captures one user-triggered chart update: the symbol, the
// queried window, the rendering style, and which indicator overlays to draw.
type ChartRequest struct {
	Symbol     string
	Period     Period
	ChartType  ChartType
	Indicators []string
}
