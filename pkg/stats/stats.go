// Package stats provides small decimal statistics helpers shared by the
// simulation driver and the report formatters.
package stats

import (
	"sort"

	"github.com/shopspring/decimal"
)

// SortedCopy returns an ascending copy of values, leaving the input untouched.
func SortedCopy(values []decimal.Decimal) []decimal.Decimal {
	sorted := append([]decimal.Decimal(nil), values...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].LessThan(sorted[j]) })
	return sorted
}

// Quantile returns the q-th quantile (0 <= q <= 1) of values using linear
// interpolation between the two nearest order statistics.
func Quantile(values []decimal.Decimal, q decimal.Decimal) decimal.Decimal {
	return QuantileSorted(SortedCopy(values), q)
}

// QuantileSorted is Quantile for input already sorted ascending.
func QuantileSorted(sorted []decimal.Decimal, q decimal.Decimal) decimal.Decimal {
	if len(sorted) == 0 {
		return decimal.Zero
	}
	if len(sorted) == 1 {
		return sorted[0]
	}
	pos := q.Mul(decimal.NewFromInt(int64(len(sorted) - 1)))
	idx := pos.Floor()
	lower := int(idx.IntPart())
	if lower < 0 {
		return sorted[0]
	}
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := pos.Sub(idx)
	return sorted[lower].Add(sorted[lower+1].Sub(sorted[lower]).Mul(frac))
}

// Mean returns the arithmetic mean of values, zero for an empty slice.
func Mean(values []decimal.Decimal) decimal.Decimal {
	if len(values) == 0 {
		return decimal.Zero
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(v)
	}
	return sum.Div(decimal.NewFromInt(int64(len(values))))
}
