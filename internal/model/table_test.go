package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestTable_RowsFromIndexOrColumns(t *testing.T) {
	raw := &Table{Index: make([]time.Time, 4)}
	require.Equal(t, 4, raw.Rows())

	canonical := &Table{}
	canonical.AddColumn("Close", []float64{1, 2, 3})
	require.Equal(t, 3, canonical.Rows())

	require.Equal(t, 0, (&Table{}).Rows())
}

func TestTable_ColumnSkipsGroupedLabels(t *testing.T) {
	tbl := &Table{
		Columns: []Column{
			{Label: Label{Name: "Close", Sub: "XYZ"}, Values: []float64{1}},
		},
	}
	_, ok := tbl.Column("Close")
	require.False(t, ok)

	tbl.Columns[0].Label.Sub = ""
	c, ok := tbl.Column("Close")
	require.True(t, ok)
	require.Equal(t, []float64{1}, c.Values)
}

func TestPeriod_IntervalMapping(t *testing.T) {
	tests := []struct {
		period   Period
		interval string
	}{
		{PeriodDay, "5m"},
		{PeriodWeek, "30m"},
		{PeriodMonth, "1d"},
		{PeriodYear, "1wk"},
		{PeriodMax, "1wk"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.interval, tt.period.Interval(), "period %s", tt.period)
	}
	require.False(t, Period("2d").Valid())
}
