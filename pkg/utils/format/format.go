// ABOUTME: Display formatting for feed counters and media durations
// ABOUTME: Produces compact K/M counts and m:ss clip lengths

package format

import (
	"fmt"
	"strconv"
)

// Count renders a counter compactly: 999, 1.5K, 2.0M.
// One decimal is always kept above a thousand.
func Count(n float64) string {
	switch {
	case n >= 1_000_000:
		return strconv.FormatFloat(n/1_000_000, 'f', 1, 64) + "M"
	case n >= 1_000:
		return strconv.FormatFloat(n/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(n, 'f', -1, 64)
	}
}

// CountInt is Count for integer counters
func CountInt(n int64) string {
	return Count(float64(n))
}

// Earnings renders creator earnings with the rupee sign
func Earnings(v float64) string {
	return "₹" + Count(v)
}

// Duration renders seconds as m:ss
func Duration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
