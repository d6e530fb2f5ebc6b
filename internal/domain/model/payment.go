package model

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/givebridge/givebridge/internal/apperror"
	"github.com/givebridge/givebridge/internal/domain/event"
	"github.com/givebridge/givebridge/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Payment aggregate root (Bonus Ledger)
// ---------------------------------------------------------------------------

// Payment is an immutable aggregate. Mutations return a new copy.
//
// The bonus fields (percentage, amount, rule reference) are a denormalized
// projection of the payment's single BonusCalculation row. They are written
// together with that row and never updated independently: bonusAmount is
// always bonusPercentage x amountUsd / 100 rounded to cents, and a non-zero
// bonus never exists without its rule reference.
type Payment struct {
	id              string
	pledgeID        string
	amount          decimal.Decimal
	currency        string
	amountUSD       decimal.Decimal
	paymentDate     time.Time
	status          valueobject.PaymentStatus
	solicitorID     *string
	bonusPercentage decimal.Decimal
	bonusAmount     decimal.Decimal
	bonusRuleID     *string
	paymentPlanID   *string
	version         int
	createdAt       time.Time
	updatedAt       time.Time
	domainEvents    []event.DomainEvent
}

// ReconstructPayment rebuilds a Payment aggregate from persistence.
func ReconstructPayment(
	id, pledgeID string,
	amount decimal.Decimal,
	currency string,
	amountUSD decimal.Decimal,
	paymentDate time.Time,
	status valueobject.PaymentStatus,
	solicitorID *string,
	bonusPercentage, bonusAmount decimal.Decimal,
	bonusRuleID, paymentPlanID *string,
	version int,
	createdAt, updatedAt time.Time,
) Payment {
	return Payment{
		id:              id,
		pledgeID:        pledgeID,
		amount:          amount,
		currency:        currency,
		amountUSD:       amountUSD,
		paymentDate:     paymentDate,
		status:          status,
		solicitorID:     solicitorID,
		bonusPercentage: bonusPercentage,
		bonusAmount:     bonusAmount,
		bonusRuleID:     bonusRuleID,
		paymentPlanID:   paymentPlanID,
		version:         version,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// AssignSolicitor credits the payment to a solicitor. The bonus fields are
// rewritten separately by ApplyBonus or ClearBonus in the same logical
// operation.
func (p Payment) AssignSolicitor(solicitorID string, now time.Time) (Payment, error) {
	if solicitorID == "" {
		return p, apperror.Validation("solicitorId", "solicitor ID is required")
	}

	next := p
	next.solicitorID = &solicitorID
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewSolicitorAssigned(p.id, solicitorID))
	return next, nil
}

// ApplyBonus records the matched rule's percentage and the computed bonus
// amount on the payment.
func (p Payment) ApplyBonus(ruleID string, percentage, amount decimal.Decimal, now time.Time) (Payment, error) {
	if p.solicitorID == nil {
		return p, apperror.Conflict("cannot apply a bonus to a payment with no solicitor")
	}

	next := p
	next.bonusPercentage = percentage
	next.bonusAmount = amount
	next.bonusRuleID = &ruleID
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewBonusApplied(
		p.id, *p.solicitorID, ruleID, percentage, amount,
	))
	return next, nil
}

// ClearBonus zeroes the bonus projection. Percentage and amount become 0.00
// and the rule reference is dropped in the same step, so the fields never
// disagree with each other.
func (p Payment) ClearBonus(now time.Time) Payment {
	next := p
	next.bonusPercentage = decimal.Zero.Round(2)
	next.bonusAmount = decimal.Zero.Round(2)
	next.bonusRuleID = nil
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewBonusCleared(p.id))
	return next
}

// EnsureDeletable enforces the deletion guards: a completed payment, or one
// whose bonus has already been paid out, must never be deleted.
func (p Payment) EnsureDeletable(bonusPaid bool) error {
	if p.status.IsCompleted() {
		return apperror.Conflict("payment %s is completed and cannot be deleted", p.id)
	}
	if bonusPaid {
		return apperror.Conflict("payment %s has a paid bonus and cannot be deleted", p.id)
	}
	return nil
}

// HasBonus reports whether the payment currently carries a non-zero bonus.
func (p Payment) HasBonus() bool {
	return p.bonusAmount.IsPositive()
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (p Payment) ID() string                        { return p.id }
func (p Payment) PledgeID() string                  { return p.pledgeID }
func (p Payment) Amount() decimal.Decimal           { return p.amount }
func (p Payment) Currency() string                  { return p.currency }
func (p Payment) AmountUSD() decimal.Decimal        { return p.amountUSD }
func (p Payment) PaymentDate() time.Time            { return p.paymentDate }
func (p Payment) Status() valueobject.PaymentStatus { return p.status }
func (p Payment) SolicitorID() *string              { return p.solicitorID }
func (p Payment) BonusPercentage() decimal.Decimal  { return p.bonusPercentage }
func (p Payment) BonusAmount() decimal.Decimal      { return p.bonusAmount }
func (p Payment) BonusRuleID() *string              { return p.bonusRuleID }
func (p Payment) PaymentPlanID() *string            { return p.paymentPlanID }
func (p Payment) Version() int                      { return p.version }
func (p Payment) CreatedAt() time.Time              { return p.createdAt }
func (p Payment) UpdatedAt() time.Time              { return p.updatedAt }
func (p Payment) DomainEvents() []event.DomainEvent { return p.domainEvents }

// ClearEvents returns a copy with an empty event list.
func (p Payment) ClearEvents() Payment {
	next := p
	next.domainEvents = nil
	return next
}

func copyEvents(evts []event.DomainEvent) []event.DomainEvent {
	if evts == nil {
		return nil
	}
	out := make([]event.DomainEvent, len(evts))
	copy(out, evts)
	return out
}
