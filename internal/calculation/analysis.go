package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/divsim/dividend-simulator/internal/domain"
	"github.com/divsim/dividend-simulator/pkg/stats"
)

// decileProbabilities are the nine report quantiles, 0.1 through 0.9.
var decileProbabilities = func() []decimal.Decimal {
	step := decimal.NewFromFloat(0.1)
	qs := make([]decimal.Decimal, 0, 9)
	for i := 1; i <= 9; i++ {
		qs = append(qs, step.Mul(decimal.NewFromInt(int64(i))))
	}
	return qs
}()

// Summarize reduces a batch of trial present values to the decile table and
// arithmetic mean reported to callers. Quantiles interpolate linearly
// between order statistics.
func Summarize(outcomes []decimal.Decimal) *domain.SimulationSummary {
	sorted := stats.SortedCopy(outcomes)
	deciles := make([]domain.DecilePoint, 0, len(decileProbabilities))
	for _, q := range decileProbabilities {
		deciles = append(deciles, domain.DecilePoint{
			Quantile: q,
			Value:    stats.QuantileSorted(sorted, q),
		})
	}
	return &domain.SimulationSummary{
		Outcomes: outcomes,
		Deciles:  deciles,
		Mean:     stats.Mean(outcomes),
	}
}
