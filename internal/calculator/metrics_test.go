package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"stockdash/internal/model"
)

func canonicalTable(closes []float64) *model.Table {
	n := len(closes)
	opens := make([]float64, n)
	highs := make([]float64, n)
	lows := make([]float64, n)
	closeVals := make([]float64, n)
	volumes := make([]float64, n)
	for i, c := range closes {
		opens[i] = c
		highs[i] = c + 1
		lows[i] = c - 1
		closeVals[i] = c
		volumes[i] = 1000
	}
	t := &model.Table{}
	t.AddColumn("Open", opens)
	t.AddColumn("High", highs)
	t.AddColumn("Low", lows)
	t.AddColumn("Close", closeVals)
	t.AddColumn("Volume", volumes)
	return t
}

func TestComputeMetrics_ChangeOverDisplayedWindow(t *testing.T) {
	closes := []float64{100, 101, 102, 103, 104, 105, 106, 107, 108, 109}
	m, err := ComputeMetrics(canonicalTable(closes))
	require.NoError(t, err)

	require.Equal(t, 109.0, m.LastClose)
	require.Equal(t, closes[len(closes)-1]-closes[0], m.Change)
	require.Equal(t, m.Change/closes[0]*100, m.PctChange)
	require.InDelta(t, 9.0, m.PctChange, 1e-9)
}

func TestComputeMetrics_HighLowVolume(t *testing.T) {
	tbl := canonicalTable([]float64{50, 80, 20, 60})
	m, err := ComputeMetrics(tbl)
	require.NoError(t, err)

	require.Equal(t, 81.0, m.High)
	require.Equal(t, 19.0, m.Low)
	require.Equal(t, int64(4000), m.Volume)
}

func TestComputeMetrics_VolumeTruncatedToInteger(t *testing.T) {
	tbl := canonicalTable([]float64{10, 11})
	c, ok := tbl.Column("Volume")
	require.True(t, ok)
	c.Values = []float64{1.5, 2.25}

	m, err := ComputeMetrics(tbl)
	require.NoError(t, err)
	require.Equal(t, int64(3), m.Volume)
}

func TestComputeMetrics_MissingClose(t *testing.T) {
	tbl := &model.Table{}
	tbl.AddColumn("High", []float64{1})
	tbl.AddColumn("Low", []float64{1})
	tbl.AddColumn("Volume", []float64{1})

	_, err := ComputeMetrics(tbl)
	require.ErrorIs(t, err, model.ErrMissingColumn)
}

func TestComputeMetrics_MissingVolume(t *testing.T) {
	tbl := canonicalTable([]float64{10, 11})
	for i := range tbl.Columns {
		if tbl.Columns[i].Label.Name == "Volume" {
			tbl.Columns = append(tbl.Columns[:i], tbl.Columns[i+1:]...)
			break
		}
	}
	_, err := ComputeMetrics(tbl)
	require.ErrorIs(t, err, model.ErrMissingColumn)
}

func TestComputeMetrics_ZeroFirstCloseNotGuarded(t *testing.T) {
	m, err := ComputeMetrics(canonicalTable([]float64{0, 10}))
	require.NoError(t, err)
	require.True(t, math.IsInf(m.PctChange, 1))
}

func TestComputeMetrics_EmptyTable(t *testing.T) {
	_, err := ComputeMetrics(canonicalTable(nil))
	require.ErrorIs(t, err, model.ErrInsufficientData)
}
