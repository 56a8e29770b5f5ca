package output

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FormatQuantile renders a quantile probability as a percentage label.
// Kept here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatQuantile(q decimal.Decimal) string {
	return q.Mul(hundred).StringFixed(0) + "%"
}

// FormatValue renders a present value with four decimals, enough to compare
// decile tables across runs without drowning in precision.
func FormatValue(v decimal.Decimal) string {
	return v.StringFixed(4)
}

// FormatRate renders a rate or ratio with up to four decimals, trimming
// trailing zeros.
func FormatRate(r decimal.Decimal) string {
	return r.Round(4).String()
}
