package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/divsim/dividend-simulator/internal/domain"
)

// DefaultHorizonYears caps any company's simulated lifetime.
const DefaultHorizonYears = 50

// LifecycleSimulator runs the year-by-year loop for one company instance
// until ruin or the horizon.
type LifecycleSimulator struct {
	Returns *ReturnModel
	Policy  FinancingPolicy
	// Horizon is the maximum number of simulated years; zero or negative
	// means DefaultHorizonYears.
	Horizon int
}

// Run simulates the company in place and returns its cash-flow sequence:
// exactly one event per simulated year, years strictly increasing from 1.
// The loop exits the instant equity goes negative; the losing year's zero
// dividend is still recorded first.
func (s *LifecycleSimulator) Run(c *domain.CompanyState, profitBump decimal.Decimal) ([]domain.CashFlowEvent, error) {
	horizon := s.Horizon
	if horizon <= 0 {
		horizon = DefaultHorizonYears
	}
	for year := 1; year <= horizon; year++ {
		actualLeverage, err := s.Policy.Leverage(c)
		if err != nil {
			return nil, fmt.Errorf("year %d: %w", year, err)
		}
		rate := s.Policy.InterestRate(actualLeverage)
		roa := s.Returns.Draw(profitBump)
		profit := roa.Mul(c.Assets()).Sub(rate.Mul(c.Debt))
		dividend := s.Policy.ApplyProfit(c, profit, actualLeverage)
		c.RecordCashFlow(dividend, year)
		if c.Equity.IsNegative() {
			break
		}
	}
	return c.CashFlows, nil
}
