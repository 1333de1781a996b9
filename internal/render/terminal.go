package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"stockdash/internal/model"
)

// timeFormat is how canonical timestamps are printed.
const timeFormat = "2006-01-02 15:04 MST"

// Terminal renders dashboard output as plain text on a writer.
type Terminal struct {
	W io.Writer
}

// NewTerminal creates a text renderer writing to w.
func NewTerminal(w io.Writer) *Terminal {
	return &Terminal{W: w}
}

func (r *Terminal) ShowMetrics(cells []Metric) {
	for _, c := range cells {
		if c.Delta != "" {
			fmt.Fprintf(r.W, "%s: %s  %s\n", c.Label, c.Value, c.Delta)
		} else {
			fmt.Fprintf(r.W, "%s: %s\n", c.Label, c.Value)
		}
	}
}

// ShowChart prints a compact summary of the chart request. A terminal has no
// plotting surface, so the series itself is shown through ShowTable.
func (r *Terminal) ShowChart(c *Chart) {
	n := len(c.X)
	fmt.Fprintf(r.W, "\n%s [%s, %d bars", c.Title, c.Type, n)
	for _, o := range c.Overlays {
		fmt.Fprintf(r.W, ", overlay %s", o.Name)
	}
	fmt.Fprintln(r.W, "]")
}

func (r *Terminal) ShowTable(title string, t *model.Table, columns []string) {
	fmt.Fprintf(r.W, "\n%s\n", title)
	tw := tabwriter.NewWriter(r.W, 0, 4, 2, ' ', 0)
	for i, name := range columns {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, name)
	}
	fmt.Fprintln(tw)

	rows := t.Rows()
	for i := 0; i < rows; i++ {
		for j, name := range columns {
			if j > 0 {
				fmt.Fprint(tw, "\t")
			}
			c, ok := t.Column(name)
			switch {
			case !ok:
				fmt.Fprint(tw, "?")
			case c.Times != nil:
				fmt.Fprint(tw, c.Times[i].Format(timeFormat))
			default:
				fmt.Fprint(tw, FormatCell(c.Values[i]))
			}
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func (r *Terminal) ShowQuote(symbol string, m Metric) {
	fmt.Fprintf(r.W, "%-6s %s  %s\n", symbol, m.Value, m.Delta)
}

func (r *Terminal) WarnQuote(symbol string, msg string) {
	fmt.Fprintf(r.W, "%-6s data error: %s\n", symbol, msg)
}

func (r *Terminal) ShowWarning(msg string) {
	fmt.Fprintf(r.W, "warning: %s\n", msg)
}

func (r *Terminal) ShowError(msg string) {
	fmt.Fprintf(r.W, "error: %s\n", msg)
}
