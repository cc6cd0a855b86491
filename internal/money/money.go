package money

import "github.com/shopspring/decimal"

// Round2 rounds a monetary value to two decimals. Applied only at the
// presentation boundary; accumulation stays unrounded.
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Format renders a value with exactly two decimal places, e.g. "20.00".
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}
