package calculation

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// returnOutcome pairs a one-year asset return with its sampling weight.
type returnOutcome struct {
	value  decimal.Decimal
	weight float64
}

// returnDistribution is the fixed discrete return set. The weights sum to
// 0.90, not 1.0; they are applied as relative weights over their own total,
// which preserves their ratios.
var returnDistribution = []returnOutcome{
	{decimal.NewFromFloat(0.3), 0.30},
	{decimal.NewFromFloat(0.2), 0.30},
	{decimal.NewFromFloat(-0.1), 0.25},
	{decimal.NewFromFloat(-0.3), 0.05},
}

// ReturnModel draws one-year asset returns from the fixed discrete
// distribution, offset by a calibration bump.
type ReturnModel struct {
	rng *rand.Rand
}

// NewReturnModel creates a return model reading from rng. The source is
// injected so tests and parallel trials can run independently seeded streams.
func NewReturnModel(rng *rand.Rand) *ReturnModel {
	return &ReturnModel{rng: rng}
}

// Draw samples one return and adds bump. Draws are independent across calls.
func (m *ReturnModel) Draw(bump decimal.Decimal) decimal.Decimal {
	var total float64
	for _, o := range returnDistribution {
		total += o.weight
	}
	u := m.rng.Float64() * total
	for _, o := range returnDistribution {
		if u < o.weight {
			return o.value.Add(bump)
		}
		u -= o.weight
	}
	// Only reachable through float rounding at the top of the range.
	return returnDistribution[len(returnDistribution)-1].value.Add(bump)
}
