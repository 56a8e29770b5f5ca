package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/divsim/dividend-simulator/internal/domain"
)

// equityPremium is the spread over risk-free used when the caller does not
// supply a discount rate.
var equityPremium = decimal.NewFromFloat(0.06)

// DefaultDiscountRate returns the valuation rate used when none is supplied:
// the risk-free rate plus a 600bp equity premium.
func DefaultDiscountRate(riskFreeRate decimal.Decimal) decimal.Decimal {
	return riskFreeRate.Add(equityPremium)
}

// PresentValue discounts a cash-flow sequence at a fixed annual rate:
// sum of amount/(1+rate)^year. An empty sequence is worth zero, and the sum
// does not depend on event order.
func PresentValue(cashFlows []domain.CashFlowEvent, rate decimal.Decimal) decimal.Decimal {
	pv := decimal.Zero
	base := one.Add(rate)
	for _, cf := range cashFlows {
		discount := base.Pow(decimal.NewFromInt(int64(cf.Year)))
		pv = pv.Add(cf.Amount.Div(discount))
	}
	return pv
}
