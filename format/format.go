// Package format renders quote outputs for display. Quotes are advisory,
// so formatting favors readability over full precision: tiny magnitudes
// switch to exponential notation and empty quotes render as "0".
package format

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// exponentialBelow is the magnitude under which fixed notation stops being
// readable.
var exponentialBelow = decimal.NewFromFloat(1e-3)

// ForDisplay renders a token amount at the given precision.
func ForDisplay(value decimal.Decimal, precision int32) string {
	if value.Sign() <= 0 {
		return "0"
	}
	if value.Cmp(exponentialBelow) < 0 {
		return fmt.Sprintf("%.*e", int(precision), value.InexactFloat64())
	}
	return trimTrailingZeros(value.StringFixed(precision))
}

// Percent renders a ratio (0.0244 -> "2.44%"). Negative ratios are clamped
// the same way the quote engine clamps slippage.
func Percent(ratio decimal.Decimal) string {
	if ratio.Sign() <= 0 {
		return "0%"
	}
	pct := ratio.Mul(decimal.NewFromInt(100))
	return trimTrailingZeros(pct.StringFixed(2)) + "%"
}

func trimTrailingZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "" {
		return "0"
	}
	return s
}
