package util

import "fmt"

// FormatPercent formats a [0,1] fraction as a whole percentage, clamping
// out-of-range values.
func FormatPercent(f float64) string {
	if f < 0 {
		f = 0
	}
	if f > 1 {
		f = 1
	}
	return fmt.Sprintf("%d%%", int(f*100+0.5))
}
