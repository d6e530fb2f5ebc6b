package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// BonusCalculation entity
// ---------------------------------------------------------------------------

// BonusCalculation snapshots the rule, percentage and amount behind a
// payment's bonus. At most one row exists per payment at any time;
// recalculation replaces the row rather than accumulating history.
// The projection of these fields onto Payment is a read-only cache and is
// always written together with this entity.
type BonusCalculation struct {
	id           string
	paymentID    string
	ruleID       string
	percentage   decimal.Decimal
	amount       decimal.Decimal
	isPaid       bool
	calculatedAt time.Time
}

// NewBonusCalculation creates a calculation snapshot for a payment.
func NewBonusCalculation(
	paymentID, ruleID string,
	percentage, amount decimal.Decimal,
	now time.Time,
) BonusCalculation {
	return BonusCalculation{
		id:           uuid.New().String(),
		paymentID:    paymentID,
		ruleID:       ruleID,
		percentage:   percentage,
		amount:       amount,
		isPaid:       false,
		calculatedAt: now,
	}
}

// ReconstructBonusCalculation rebuilds a BonusCalculation from persistence.
func ReconstructBonusCalculation(
	id, paymentID, ruleID string,
	percentage, amount decimal.Decimal,
	isPaid bool,
	calculatedAt time.Time,
) BonusCalculation {
	return BonusCalculation{
		id:           id,
		paymentID:    paymentID,
		ruleID:       ruleID,
		percentage:   percentage,
		amount:       amount,
		isPaid:       isPaid,
		calculatedAt: calculatedAt,
	}
}

// MarkPaid flags the calculation as paid out. A paid calculation is
// immutable from the recalculation path.
func (c BonusCalculation) MarkPaid() BonusCalculation {
	next := c
	next.isPaid = true
	return next
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (c BonusCalculation) ID() string                  { return c.id }
func (c BonusCalculation) PaymentID() string           { return c.paymentID }
func (c BonusCalculation) RuleID() string              { return c.ruleID }
func (c BonusCalculation) Percentage() decimal.Decimal { return c.percentage }
func (c BonusCalculation) Amount() decimal.Decimal     { return c.amount }
func (c BonusCalculation) IsPaid() bool                { return c.isPaid }
func (c BonusCalculation) CalculatedAt() time.Time     { return c.calculatedAt }
