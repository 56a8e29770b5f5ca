package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/divsim/dividend-simulator/internal/domain"
)

func TestDefaultDiscountRate(t *testing.T) {
	got := DefaultDiscountRate(decimal.NewFromFloat(0.04))
	assert.True(t, got.Equal(decimal.NewFromFloat(0.1)), "expected 0.1, got %s", got)
}

func TestPresentValueEmptySequence(t *testing.T) {
	pv := PresentValue(nil, decimal.NewFromFloat(0.1))
	assert.True(t, pv.IsZero())
}

func TestPresentValueSingleFlow(t *testing.T) {
	cashFlows := []domain.CashFlowEvent{
		{Amount: decimal.NewFromInt(11), Year: 1},
	}
	pv := PresentValue(cashFlows, decimal.NewFromFloat(0.1))
	assert.True(t, pv.Equal(decimal.NewFromInt(10)), "11/(1.1)^1 should be exactly 10, got %s", pv)
}

func TestPresentValueZeroRateIsPlainSum(t *testing.T) {
	cashFlows := []domain.CashFlowEvent{
		{Amount: decimal.NewFromInt(3), Year: 1},
		{Amount: decimal.NewFromInt(4), Year: 17},
		{Amount: decimal.NewFromInt(5), Year: 50},
	}
	pv := PresentValue(cashFlows, decimal.Zero)
	assert.True(t, pv.Equal(decimal.NewFromInt(12)))
}

func TestPresentValueCompounds(t *testing.T) {
	cashFlows := []domain.CashFlowEvent{
		{Amount: decimal.NewFromFloat(12.1), Year: 2},
	}
	pv := PresentValue(cashFlows, decimal.NewFromFloat(0.1))
	assert.True(t, pv.Equal(decimal.NewFromInt(10)), "12.1/(1.1)^2 should be exactly 10, got %s", pv)
}

func TestPresentValueOrderIndependent(t *testing.T) {
	rate := decimal.NewFromFloat(0.095)
	forward := []domain.CashFlowEvent{
		{Amount: decimal.NewFromFloat(1.25), Year: 1},
		{Amount: decimal.NewFromFloat(0.75), Year: 2},
		{Amount: decimal.NewFromInt(2), Year: 3},
	}
	reversed := []domain.CashFlowEvent{forward[2], forward[1], forward[0]}

	assert.True(t, PresentValue(forward, rate).Equal(PresentValue(reversed, rate)))
}
