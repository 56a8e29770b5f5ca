package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/divsim/dividend-simulator/internal/domain"
)

var (
	one = decimal.NewFromInt(1)
	two = decimal.NewFromInt(2)

	// Best-in-class borrowers at ~0 leverage pay 50bp over risk-free.
	baseSpread = decimal.NewFromFloat(0.005)
	// Each additional half-turn of leverage costs 1 point.
	halfTurnSpread = decimal.NewFromFloat(0.01)
)

// FinancingPolicy prices the company's debt and decides how a year's profit
// is split between debt paydown, reinvestment, and dividend.
type FinancingPolicy struct {
	RiskFreeRate decimal.Decimal
}

// Leverage returns assets over equity. Equity of exactly zero is a hard
// failure (ErrZeroEquity) rather than a clamped or infinite ratio.
func (p FinancingPolicy) Leverage(c *domain.CompanyState) (decimal.Decimal, error) {
	if c.Equity.IsZero() {
		return decimal.Zero, ErrZeroEquity
	}
	return c.Debt.Add(c.Equity).Div(c.Equity), nil
}

// InterestRate prices the company's debt at the given actual leverage. A net
// cash position (negative leverage) earns exactly the risk-free rate.
func (p FinancingPolicy) InterestRate(actualLeverage decimal.Decimal) decimal.Decimal {
	if actualLeverage.IsNegative() {
		return p.RiskFreeRate
	}
	halfTurns := actualLeverage.Mul(two).Floor()
	return p.RiskFreeRate.Add(baseSpread).Add(halfTurns.Mul(halfTurnSpread))
}

// ApplyProfit mutates the company for one year's realized profit and returns
// the dividend paid (zero for paydown and loss years). actualLeverage must be
// the pre-profit ratio from Leverage.
func (p FinancingPolicy) ApplyProfit(c *domain.CompanyState, profit, actualLeverage decimal.Decimal) decimal.Decimal {
	switch {
	case profit.IsNegative():
		// Losses hit equity only; debt stays put and leverage drifts.
		c.Equity = c.Equity.Add(profit)
		return decimal.Zero
	case actualLeverage.GreaterThanOrEqual(c.TargetLeverage):
		// Over-levered: the whole profit pays down debt. Leverage may
		// still be above target afterwards.
		c.Debt = c.Debt.Sub(profit)
		c.Equity = c.Equity.Add(profit)
		return decimal.Zero
	default:
		dividend := profit.Mul(one.Sub(c.ReinvestRate))
		retained := profit.Mul(c.ReinvestRate)
		c.Equity = c.Equity.Add(retained)
		c.Relever()
		return dividend
	}
}
