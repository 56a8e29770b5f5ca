package domain

import "github.com/shopspring/decimal"

// CashFlowEvent is a single payout to investors: the amount distributed and
// the simulation year (1-based) in which it was received. Years with no
// dividend (paydown years, loss years) still record an event with amount zero.
type CashFlowEvent struct {
	Amount decimal.Decimal `json:"amount"`
	Year   int             `json:"year"`
}

// CompanyState represents one simulated firm at a point in time. It is
// created once per trial and mutated in place each simulated year.
type CompanyState struct {
	// Equity is the book value of equity. It starts positive and may go
	// negative only transiently before the lifecycle loop terminates.
	Equity decimal.Decimal

	// Debt is signed: negative debt represents net cash holdings.
	Debt decimal.Decimal

	// TargetLeverage is assets over equity, fixed for the company's
	// lifetime. The company re-levers toward it whenever it reinvests.
	TargetLeverage decimal.Decimal

	// ReinvestRate is the fraction of positive, under-levered profit
	// retained in the business rather than paid as a dividend. Must be
	// in [0,1].
	ReinvestRate decimal.Decimal

	// CashFlows is append-only; insertion order is chronological.
	CashFlows []CashFlowEvent
}

// NewCompanyState constructs a firm at its target capital structure:
// debt = equity*target_leverage - equity.
func NewCompanyState(equity, targetLeverage, reinvestRate decimal.Decimal) *CompanyState {
	return &CompanyState{
		Equity:         equity,
		Debt:           equity.Mul(targetLeverage).Sub(equity),
		TargetLeverage: targetLeverage,
		ReinvestRate:   reinvestRate,
	}
}

// Assets returns total assets, equity plus debt.
func (c *CompanyState) Assets() decimal.Decimal {
	return c.Equity.Add(c.Debt)
}

// Relever resets debt so that debt = equity*target_leverage - equity. Called
// only on reinvestment; paydown years and loss years leave leverage drifted.
func (c *CompanyState) Relever() {
	c.Debt = c.Equity.Mul(c.TargetLeverage).Sub(c.Equity)
}

// RecordCashFlow appends one payout event for the given year.
func (c *CompanyState) RecordCashFlow(amount decimal.Decimal, year int) {
	c.CashFlows = append(c.CashFlows, CashFlowEvent{Amount: amount, Year: year})
}
