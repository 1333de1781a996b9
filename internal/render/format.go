package render

import (
	"fmt"
	"math"

	"github.com/dustin/go-humanize"
)

// FormatPrice formats a price value as "123.45 USD".
func FormatPrice(p float64) string {
	return fmt.Sprintf("%.2f USD", p)
}

// FormatDelta formats an absolute and percent change as "+1.23 (+0.45%)".
func FormatDelta(change, pct float64) string {
	return fmt.Sprintf("%+.2f (%+.2f%%)", change, pct)
}

// FormatVolume formats a share count with thousands separators.
func FormatVolume(v int64) string {
	return humanize.Comma(v)
}

// FormatCell formats a single numeric table cell; NaN renders as "-".
func FormatCell(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
