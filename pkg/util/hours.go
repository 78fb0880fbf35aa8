package util

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// HoursScale is the number of decimal places hours are stored with.
const HoursScale = 2

var sixty = decimal.NewFromInt(60)

// RoundHours rounds hours to the stored scale.
func RoundHours(hours decimal.Decimal) decimal.Decimal {
	return hours.Round(HoursScale)
}

// FormatHours renders hours as "{H}h {M}m", "{H}h" or "{M}m". Minutes are the
// rounded fractional part, and a rounded 60m carries into the hour.
func FormatHours(hours decimal.Decimal) string {
	if hours.IsNegative() {
		hours = decimal.Zero
	}

	whole := hours.Floor()
	h := whole.IntPart()
	m := hours.Sub(whole).Mul(sixty).Round(0).IntPart()
	if m == 60 {
		h++
		m = 0
	}

	switch {
	case h > 0 && m > 0:
		return fmt.Sprintf("%dh %dm", h, m)
	case h > 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dm", m)
	}
}
