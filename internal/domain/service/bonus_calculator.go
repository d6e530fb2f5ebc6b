package service

import (
	"github.com/shopspring/decimal"

	"github.com/givebridge/givebridge/pkg/money"
)

// BonusCalculator turns a matched rule's percentage into a concrete bonus
// amount on a payment's USD value.
type BonusCalculator struct{}

// NewBonusCalculator creates a BonusCalculator.
func NewBonusCalculator() *BonusCalculator {
	return &BonusCalculator{}
}

// Calculate returns percentage of amountUSD rounded half-up to cents.
// A zero percentage yields exactly 0.00.
func (c *BonusCalculator) Calculate(amountUSD, percentage decimal.Decimal) decimal.Decimal {
	return money.PercentOf(amountUSD, percentage)
}
