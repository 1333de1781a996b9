package model

import "time"

// Label identifies a table column. Sub carries the second level of a grouped
// (field, symbol) label as returned by some data sources; it is empty for flat
// columns.
type Label struct {
	Name string
	Sub  string
}

// Column is a single table column holding either timestamps or numeric values.
type Column struct {
	Label  Label
	Times  []time.Time
	Values []float64
}

// Table is a time-series table. Raw tables carry their timestamps in Index;
// IndexTZ nil means the index is naive (wall-clock fields only, no zone).
// Canonical tables have a nil Index and a leading Datetime time column.
type Table struct {
	IndexName string
	Index     []time.Time
	IndexTZ   *time.Location
	Columns   []Column
}

// Rows returns the number of rows in the table.
func (t *Table) Rows() int {
	if t.Index != nil {
		return len(t.Index)
	}
	if len(t.Columns) == 0 {
		return 0
	}
	c := &t.Columns[0]
	if c.Times != nil {
		return len(c.Times)
	}
	return len(c.Values)
}

// Column returns the column with the given flat name, or false if absent.
// Columns still carrying a two-level label never match.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Label.Sub == "" && t.Columns[i].Label.Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// Values returns the numeric values of the named column. A present column
// holding timestamps does not match.
func (t *Table) Values(name string) ([]float64, bool) {
	c, ok := t.Column(name)
	if !ok || c.Times != nil {
		return nil, false
	}
	return c.Values, true
}

// Times returns the timestamps of the named column.
func (t *Table) Times(name string) ([]time.Time, bool) {
	c, ok := t.Column(name)
	if !ok || c.Times == nil {
		return nil, false
	}
	return c.Times, true
}

// AddColumn appends a numeric column with a flat label.
func (t *Table) AddColumn(name string, values []float64) {
	t.Columns = append(t.Columns, Column{
		Label:  Label{Name: name},
		Values: values,
	})
}
