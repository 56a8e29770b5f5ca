package domain

import "github.com/shopspring/decimal"

// DecilePoint pairs a quantile probability with the present value at that
// point of the outcome distribution.
type DecilePoint struct {
	Quantile decimal.Decimal `json:"quantile"`
	Value    decimal.Decimal `json:"value"`
}

// SimulationSummary is the reduced result of a Monte Carlo batch: the raw
// per-trial present values plus the decile table and mean reported to users,
// and an echo of the parameters that produced them.
type SimulationSummary struct {
	Outcomes []decimal.Decimal `json:"outcomes"`
	Deciles  []DecilePoint     `json:"deciles"`
	Mean     decimal.Decimal   `json:"mean"`

	Trials         int             `json:"trials"`
	DiscountRate   decimal.Decimal `json:"discount_rate"`
	TargetLeverage decimal.Decimal `json:"target_leverage"`
	ReinvestRate   decimal.Decimal `json:"reinvest_rate"`
	ProfitBump     decimal.Decimal `json:"profit_bump"`
	Seed           int64           `json:"seed"`
}
