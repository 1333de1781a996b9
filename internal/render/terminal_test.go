package render

import (
	"bytes"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"stockdash/internal/model"
)

func TestTerminal_ShowMetrics(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminal(&buf)

	r.ShowMetrics([]Metric{
		{Label: "ADBE Last Price", Value: "104.50 USD", Delta: "+1.00 (+0.97%)"},
		{Label: "Volume", Value: "1,234"},
	})
	out := buf.String()
	require.Contains(t, out, "ADBE Last Price: 104.50 USD  +1.00 (+0.97%)")
	require.Contains(t, out, "Volume: 1,234")
}

func TestTerminal_ShowTableRendersNaNAsDash(t *testing.T) {
	tbl := &model.Table{
		Columns: []model.Column{
			{Label: model.Label{Name: "Datetime"}, Times: []time.Time{
				time.Date(2024, 6, 3, 9, 30, 0, 0, time.UTC),
			}},
			{Label: model.Label{Name: "SMA_20"}, Values: []float64{math.NaN()}},
		},
	}
	var buf bytes.Buffer
	r := NewTerminal(&buf)
	r.ShowTable("Technical Indicators", tbl, []string{"Datetime", "SMA_20"})

	out := buf.String()
	require.Contains(t, out, "Technical Indicators")
	require.Contains(t, out, "2024-06-03 09:30 UTC")
	require.Contains(t, out, "-")
}

func TestTerminal_ShowChartSummary(t *testing.T) {
	var buf bytes.Buffer
	r := NewTerminal(&buf)
	r.ShowChart(&Chart{
		Title: "ADBE 1D Chart",
		Type:  model.ChartLine,
		X:     make([]time.Time, 3),
		Line:  []float64{1, 2, 3},
		Overlays: []Overlay{
			{Name: "SMA_20"},
		},
	})
	out := buf.String()
	require.Contains(t, out, "ADBE 1D Chart")
	require.Contains(t, out, "3 bars")
	require.Contains(t, out, "overlay SMA_20")
}
