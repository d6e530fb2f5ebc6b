package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/givebridge/givebridge/internal/apperror"
	"github.com/givebridge/givebridge/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// BonusRule aggregate root (Solicitor Commission Rules)
// ---------------------------------------------------------------------------

// BonusRule scopes a solicitor's commission percentage by payment type,
// amount band and effective date range. Several rules for one solicitor may
// be live at the same time; priority plus recency resolve the overlap.
// Rules are never auto-expired: effectiveTo and isActive are operator-set.
type BonusRule struct {
	id              string
	solicitorID     string
	name            string
	bonusPercentage decimal.Decimal
	scope           valueobject.PaymentTypeScope
	minAmount       *decimal.Decimal
	maxAmount       *decimal.Decimal
	effectiveFrom   time.Time
	effectiveTo     *time.Time
	isActive        bool
	priority        int
	notes           string
	createdAt       time.Time
	updatedAt       time.Time
}

// NewBonusRule creates a bonus rule after validating its bounds.
func NewBonusRule(
	solicitorID, name string,
	bonusPercentage decimal.Decimal,
	scope valueobject.PaymentTypeScope,
	minAmount, maxAmount *decimal.Decimal,
	effectiveFrom time.Time,
	effectiveTo *time.Time,
	priority int,
	notes string,
	now time.Time,
) (BonusRule, error) {
	if solicitorID == "" {
		return BonusRule{}, apperror.Validation("solicitorId", "solicitor ID is required")
	}
	if name == "" {
		return BonusRule{}, apperror.Validation("name", "rule name is required")
	}
	if scope.IsZero() {
		return BonusRule{}, apperror.Validation("paymentType", "payment type scope is required")
	}
	if bonusPercentage.IsNegative() || bonusPercentage.GreaterThan(decimal.NewFromInt(100)) {
		return BonusRule{}, apperror.Validation("bonusPercentage", "must be between 0 and 100")
	}
	if minAmount != nil && maxAmount != nil && minAmount.GreaterThan(*maxAmount) {
		return BonusRule{}, apperror.Validation("minAmount", "must not exceed maxAmount")
	}
	if effectiveFrom.IsZero() {
		return BonusRule{}, apperror.Validation("effectiveFrom", "effective-from date is required")
	}
	if effectiveTo != nil && effectiveTo.Before(effectiveFrom) {
		return BonusRule{}, apperror.Validation("effectiveTo", "must not precede effectiveFrom")
	}

	return BonusRule{
		id:              uuid.New().String(),
		solicitorID:     solicitorID,
		name:            name,
		bonusPercentage: bonusPercentage,
		scope:           scope,
		minAmount:       minAmount,
		maxAmount:       maxAmount,
		effectiveFrom:   effectiveFrom,
		effectiveTo:     effectiveTo,
		isActive:        true,
		priority:        priority,
		notes:           notes,
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

// ReconstructBonusRule rebuilds a BonusRule from persistence.
func ReconstructBonusRule(
	id, solicitorID, name string,
	bonusPercentage decimal.Decimal,
	scope valueobject.PaymentTypeScope,
	minAmount, maxAmount *decimal.Decimal,
	effectiveFrom time.Time,
	effectiveTo *time.Time,
	isActive bool,
	priority int,
	notes string,
	createdAt, updatedAt time.Time,
) BonusRule {
	return BonusRule{
		id:              id,
		solicitorID:     solicitorID,
		name:            name,
		bonusPercentage: bonusPercentage,
		scope:           scope,
		minAmount:       minAmount,
		maxAmount:       maxAmount,
		effectiveFrom:   effectiveFrom,
		effectiveTo:     effectiveTo,
		isActive:        isActive,
		priority:        priority,
		notes:           notes,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

// AppliesTo reports whether this rule covers a payment with the given USD
// amount, payment date and donation classification. All predicates must
// hold: active flag, effective window (open-ended when effectiveTo is nil),
// payment-type scope, and the optional amount band.
func (r BonusRule) AppliesTo(amountUSD decimal.Decimal, paymentDate time.Time, isDonation bool) bool {
	if !r.isActive {
		return false
	}
	if r.effectiveFrom.After(paymentDate) {
		return false
	}
	if r.effectiveTo != nil && r.effectiveTo.Before(paymentDate) {
		return false
	}
	if !r.scope.Covers(isDonation) {
		return false
	}
	if r.minAmount != nil && r.minAmount.GreaterThan(amountUSD) {
		return false
	}
	if r.maxAmount != nil && r.maxAmount.LessThan(amountUSD) {
		return false
	}
	return true
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (r BonusRule) ID() string                          { return r.id }
func (r BonusRule) SolicitorID() string                 { return r.solicitorID }
func (r BonusRule) Name() string                        { return r.name }
func (r BonusRule) BonusPercentage() decimal.Decimal    { return r.bonusPercentage }
func (r BonusRule) Scope() valueobject.PaymentTypeScope { return r.scope }
func (r BonusRule) MinAmount() *decimal.Decimal         { return r.minAmount }
func (r BonusRule) MaxAmount() *decimal.Decimal         { return r.maxAmount }
func (r BonusRule) EffectiveFrom() time.Time            { return r.effectiveFrom }
func (r BonusRule) EffectiveTo() *time.Time             { return r.effectiveTo }
func (r BonusRule) IsActive() bool                      { return r.isActive }
func (r BonusRule) Priority() int                       { return r.priority }
func (r BonusRule) Notes() string                       { return r.notes }
func (r BonusRule) CreatedAt() time.Time                { return r.createdAt }
func (r BonusRule) UpdatedAt() time.Time                { return r.updatedAt }
