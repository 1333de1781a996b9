// Package normalizer turns raw, structurally inconsistent time-series tables
// into the canonical flat OHLCV schema the rest of the pipeline works on.
package normalizer

import (
	"strings"
	"time"

	"stockdash/internal/model"
)

// TargetZone is the display timezone for all canonical timestamps.
var TargetZone = func() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		panic("load America/New_York: " + err.Error())
	}
	return loc
}()

// renameRules maps label substrings to canonical OHLCV names. Rules are
// checked in this fixed order; the first match wins per column.
var renameRules = []struct {
	substr string
	name   string
}{
	{"Open", "Open"},
	{"High", "High"},
	{"Low", "Low"},
	{"Close", "Close"},
	{"Volume", "Volume"},
}

// Normalize rewrites a raw table into canonical form: grouped column labels
// are flattened, the timestamp index is made timezone-aware and converted to
// the target zone, the index becomes a leading Datetime column, and loosely
// named price/volume columns get canonical OHLCV names. It is tolerant of
// extra or missing columns and never fails; a table lacking a mappable Close
// or Volume is caught downstream. Running it on an already-canonical table is
// a no-op.
func Normalize(t *model.Table) *model.Table {
	flattenColumns(t)
	fixTimezone(t)
	promoteIndex(t)
	canonicalizeNames(t)
	return t
}

// flattenColumns collapses two-level (field, symbol) labels into a single
// space-joined string, matching the shape grouped sources produce.
func flattenColumns(t *model.Table) {
	for i := range t.Columns {
		c := &t.Columns[i]
		if c.Label.Sub == "" {
			continue
		}
		c.Label.Name = strings.TrimSpace(c.Label.Name + " " + c.Label.Sub)
		c.Label.Sub = ""
	}
}

// fixTimezone localizes a naive index to UTC (the source already represents
// UTC instants) and converts every timestamp to the target zone.
func fixTimezone(t *model.Table) {
	if t.Index == nil {
		return
	}
	if t.IndexTZ == nil {
		for i, ts := range t.Index {
			y, m, d := ts.Date()
			h, min, s := ts.Clock()
			t.Index[i] = time.Date(y, m, d, h, min, s, ts.Nanosecond(), time.UTC)
		}
		t.IndexTZ = time.UTC
	}
	for i := range t.Index {
		t.Index[i] = t.Index[i].In(TargetZone)
	}
	t.IndexTZ = TargetZone
}

// promoteIndex moves the timestamp index into a regular leading column and
// settles its name: a literal "Date" becomes "Datetime"; failing that, the
// first column is renamed unless a "Datetime" column already exists. Daily
// and intraday granularities name their index differently upstream, which is
// what this repairs.
func promoteIndex(t *model.Table) {
	if t.Index != nil {
		cols := make([]model.Column, 0, len(t.Columns)+1)
		cols = append(cols, model.Column{
			Label: model.Label{Name: t.IndexName},
			Times: t.Index,
		})
		cols = append(cols, t.Columns...)
		t.Columns = cols
		t.Index = nil
		t.IndexName = ""
		t.IndexTZ = nil
	}
	if c, ok := t.Column("Date"); ok {
		c.Label.Name = "Datetime"
		return
	}
	if _, ok := t.Column("Datetime"); !ok && len(t.Columns) > 0 {
		t.Columns[0].Label.Name = "Datetime"
	}
}

// canonicalizeNames applies the substring rename rules once per column.
// Columns matching no rule keep their label and are ignored downstream.
func canonicalizeNames(t *model.Table) {
	for i := range t.Columns {
		for _, r := range renameRules {
			if strings.Contains(t.Columns[i].Label.Name, r.substr) {
				t.Columns[i].Label.Name = r.name
				break
			}
		}
	}
}
