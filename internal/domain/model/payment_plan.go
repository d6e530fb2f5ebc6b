package model

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/givebridge/givebridge/internal/apperror"
	"github.com/givebridge/givebridge/internal/domain/event"
	"github.com/givebridge/givebridge/internal/domain/valueobject"
	"github.com/givebridge/givebridge/pkg/money"
)

// ---------------------------------------------------------------------------
// PaymentPlan aggregate root (Installment Allocation)
// ---------------------------------------------------------------------------

// PaymentPlan splits a pledge's committed amount into installments. It is an
// immutable aggregate; mutations return a new copy.
//
// remainingAmount = totalPlannedAmount - totalPaid holds at all times. For
// FIXED plans installmentAmount x numberOfInstallments equals the planned
// total within a 0.01 tolerance; for CUSTOM plans the authoritative
// per-installment amounts live in the schedule entries and installmentAmount
// is only the stored average. The pledge's exchange rate is frozen onto the
// plan at creation and never re-derived.
type PaymentPlan struct {
	id                   string
	pledgeID             string
	frequency            valueobject.PlanFrequency
	distributionType     valueobject.DistributionType
	totalPlannedAmount   decimal.Decimal
	currency             string
	exchangeRate         decimal.Decimal // plan currency -> USD, frozen at creation
	installmentAmount    decimal.Decimal
	numberOfInstallments int
	startDate            time.Time
	endDate              time.Time
	nextPaymentDate      time.Time
	installmentsPaid     int
	totalPaid            decimal.Decimal
	remainingAmount      decimal.Decimal
	status               valueobject.PlanStatus
	schedule             []InstallmentEntry
	version              int
	createdAt            time.Time
	updatedAt            time.Time
	domainEvents         []event.DomainEvent
}

// NewFixedPaymentPlan creates a plan whose installments are computed
// uniformly from an amount and a count supplied by the caller.
func NewFixedPaymentPlan(
	pledgeID string,
	frequency valueobject.PlanFrequency,
	totalPlannedAmount decimal.Decimal,
	currency string,
	exchangeRate decimal.Decimal,
	startDate time.Time,
	nextPaymentDate *time.Time,
	installmentAmount *decimal.Decimal,
	numberOfInstallments *int,
	now time.Time,
) (PaymentPlan, error) {
	base, err := newPlanBase(pledgeID, frequency, totalPlannedAmount, currency, exchangeRate, startDate, now)
	if err != nil {
		return PaymentPlan{}, err
	}

	if installmentAmount == nil {
		return PaymentPlan{}, apperror.Validation("installmentAmount", "required for a fixed plan")
	}
	if numberOfInstallments == nil {
		return PaymentPlan{}, apperror.Validation("numberOfInstallments", "required for a fixed plan")
	}
	if *numberOfInstallments <= 0 {
		return PaymentPlan{}, apperror.Validation("numberOfInstallments", "must be positive")
	}
	if !installmentAmount.IsPositive() {
		return PaymentPlan{}, apperror.Validation("installmentAmount", "must be positive")
	}

	product := installmentAmount.Mul(decimal.NewFromInt(int64(*numberOfInstallments)))
	if !money.WithinCentTolerance(product, totalPlannedAmount) {
		return PaymentPlan{}, apperror.Validation("totalPlannedAmount",
			"installmentAmount x numberOfInstallments is %s, expected %s within 0.01",
			product.StringFixed(2), totalPlannedAmount.StringFixed(2))
	}

	plan := base
	plan.distributionType = valueobject.DistributionTypeFixed
	plan.installmentAmount = *installmentAmount
	plan.numberOfInstallments = *numberOfInstallments
	plan.endDate = frequency.Advance(plan.startDate, *numberOfInstallments-1)
	plan.nextPaymentDate = plan.startDate
	if nextPaymentDate != nil {
		plan.nextPaymentDate = truncateToDate(*nextPaymentDate)
	}

	plan.domainEvents = append(plan.domainEvents, event.NewPaymentPlanCreated(
		plan.id, pledgeID, plan.distributionType.String(),
		totalPlannedAmount, currency, plan.numberOfInstallments,
	))
	return plan, nil
}

// NewCustomPaymentPlan creates a plan from individually specified
// installments. The installment count is derived from the supplied list,
// overriding any caller-supplied value, and the stored installment amount is
// the simple average kept for reference only.
func NewCustomPaymentPlan(
	pledgeID string,
	frequency valueobject.PlanFrequency,
	totalPlannedAmount decimal.Decimal,
	currency string,
	exchangeRate decimal.Decimal,
	startDate time.Time,
	nextPaymentDate *time.Time,
	specs []InstallmentSpec,
	today time.Time,
	now time.Time,
) (PaymentPlan, error) {
	base, err := newPlanBase(pledgeID, frequency, totalPlannedAmount, currency, exchangeRate, startDate, now)
	if err != nil {
		return PaymentPlan{}, err
	}

	if len(specs) == 0 {
		return PaymentPlan{}, apperror.Validation("customInstallments", "at least one installment is required")
	}

	todayDate := truncateToDate(today)
	seen := make(map[string]struct{}, len(specs))
	sum := decimal.Zero
	for _, spec := range specs {
		if !spec.Amount.IsPositive() {
			return PaymentPlan{}, apperror.Validation("customInstallments",
				"installment on %s has a non-positive amount", spec.Date.Format("2006-01-02"))
		}
		day := truncateToDate(spec.Date).Format("2006-01-02")
		if _, dup := seen[day]; dup {
			return PaymentPlan{}, apperror.Validation("customInstallments", "duplicate installment date %s", day)
		}
		seen[day] = struct{}{}
		if truncateToDate(spec.Date).Before(todayDate) {
			return PaymentPlan{}, apperror.Validation("customInstallments",
				"installment date %s is in the past", day)
		}
		sum = sum.Add(spec.Amount)
	}

	if !money.WithinCentTolerance(sum, totalPlannedAmount) {
		return PaymentPlan{}, apperror.Validation("totalPlannedAmount",
			"installment amounts sum to %s, expected %s within 0.01",
			sum.StringFixed(2), totalPlannedAmount.StringFixed(2))
	}

	ordered := make([]InstallmentSpec, len(specs))
	copy(ordered, specs)
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].Date.Before(ordered[j].Date) })

	schedule := make([]InstallmentEntry, 0, len(ordered))
	for i, spec := range ordered {
		schedule = append(schedule, InstallmentEntry{
			Sequence: i + 1,
			DueDate:  truncateToDate(spec.Date),
			Amount:   spec.Amount,
			Currency: currency,
			Notes:    spec.Notes,
		})
	}

	count := len(schedule)
	plan := base
	plan.distributionType = valueobject.DistributionTypeCustom
	plan.numberOfInstallments = count
	plan.installmentAmount = money.RoundCents(totalPlannedAmount.Div(decimal.NewFromInt(int64(count))))
	plan.schedule = schedule
	plan.endDate = schedule[count-1].DueDate
	plan.nextPaymentDate = plan.startDate
	if nextPaymentDate != nil {
		plan.nextPaymentDate = truncateToDate(*nextPaymentDate)
	}

	plan.domainEvents = append(plan.domainEvents, event.NewPaymentPlanCreated(
		plan.id, pledgeID, plan.distributionType.String(),
		totalPlannedAmount, currency, count,
	))
	return plan, nil
}

// newPlanBase validates the fields shared by both distribution types.
func newPlanBase(
	pledgeID string,
	frequency valueobject.PlanFrequency,
	totalPlannedAmount decimal.Decimal,
	currency string,
	exchangeRate decimal.Decimal,
	startDate time.Time,
	now time.Time,
) (PaymentPlan, error) {
	if pledgeID == "" {
		return PaymentPlan{}, apperror.Validation("pledgeId", "pledge ID is required")
	}
	if frequency.IsZero() {
		return PaymentPlan{}, apperror.Validation("frequency", "frequency is required")
	}
	if !totalPlannedAmount.IsPositive() {
		return PaymentPlan{}, apperror.Validation("totalPlannedAmount", "must be positive")
	}
	if _, err := money.NewCurrency(currency); err != nil {
		return PaymentPlan{}, apperror.Validation("currency", "%v", err)
	}
	if !exchangeRate.IsPositive() {
		return PaymentPlan{}, apperror.Validation("exchangeRate", "must be positive")
	}
	if startDate.IsZero() {
		return PaymentPlan{}, apperror.Validation("startDate", "start date is required")
	}

	return PaymentPlan{
		id:                 uuid.New().String(),
		pledgeID:           pledgeID,
		frequency:          frequency,
		totalPlannedAmount: totalPlannedAmount,
		currency:           currency,
		exchangeRate:       exchangeRate,
		startDate:          truncateToDate(startDate),
		installmentsPaid:   0,
		totalPaid:          decimal.Zero,
		remainingAmount:    totalPlannedAmount,
		status:             valueobject.PlanStatusActive,
		version:            1,
		createdAt:          now,
		updatedAt:          now,
	}, nil
}

// ReconstructPaymentPlan rebuilds a PaymentPlan aggregate from persistence.
func ReconstructPaymentPlan(
	id, pledgeID string,
	frequency valueobject.PlanFrequency,
	distributionType valueobject.DistributionType,
	totalPlannedAmount decimal.Decimal,
	currency string,
	exchangeRate decimal.Decimal,
	installmentAmount decimal.Decimal,
	numberOfInstallments int,
	startDate, endDate, nextPaymentDate time.Time,
	installmentsPaid int,
	totalPaid, remainingAmount decimal.Decimal,
	status valueobject.PlanStatus,
	schedule []InstallmentEntry,
	version int,
	createdAt, updatedAt time.Time,
) PaymentPlan {
	return PaymentPlan{
		id:                   id,
		pledgeID:             pledgeID,
		frequency:            frequency,
		distributionType:     distributionType,
		totalPlannedAmount:   totalPlannedAmount,
		currency:             currency,
		exchangeRate:         exchangeRate,
		installmentAmount:    installmentAmount,
		numberOfInstallments: numberOfInstallments,
		startDate:            startDate,
		endDate:              endDate,
		nextPaymentDate:      nextPaymentDate,
		installmentsPaid:     installmentsPaid,
		totalPaid:            totalPaid,
		remainingAmount:      remainingAmount,
		status:               status,
		schedule:             schedule,
		version:              version,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions
// ---------------------------------------------------------------------------

// Pause transitions ACTIVE -> PAUSED.
func (p PaymentPlan) Pause(now time.Time) (PaymentPlan, error) {
	if !p.status.Equal(valueobject.PlanStatusActive) {
		return p, valueobject.ErrInvalidStatusTransition
	}
	next := p
	next.status = valueobject.PlanStatusPaused
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentPlanPaused(p.id, p.pledgeID))
	return next, nil
}

// Resume transitions PAUSED -> ACTIVE.
func (p PaymentPlan) Resume(now time.Time) (PaymentPlan, error) {
	if !p.status.Equal(valueobject.PlanStatusPaused) {
		return p, valueobject.ErrInvalidStatusTransition
	}
	next := p
	next.status = valueobject.PlanStatusActive
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentPlanResumed(p.id, p.pledgeID))
	return next, nil
}

// Cancel transitions ACTIVE or PAUSED -> CANCELLED.
func (p PaymentPlan) Cancel(now time.Time) (PaymentPlan, error) {
	if !p.status.Equal(valueobject.PlanStatusActive) && !p.status.Equal(valueobject.PlanStatusPaused) {
		return p, valueobject.ErrInvalidStatusTransition
	}
	next := p
	next.status = valueobject.PlanStatusCancelled
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewPaymentPlanCancelled(p.id, p.pledgeID, p.remainingAmount))
	return next, nil
}

// ApplyInstallmentPayment records a paid installment on the running ledger.
// The remaining amount is recomputed from the identity so repeated
// applications cannot drift, and the plan completes once everything is paid.
func (p PaymentPlan) ApplyInstallmentPayment(amount decimal.Decimal, now time.Time) (PaymentPlan, error) {
	if !p.status.Equal(valueobject.PlanStatusActive) {
		return p, apperror.Conflict("payment plan %s is %s and cannot accept payments", p.id, p.status)
	}
	if !amount.IsPositive() {
		return p, apperror.Validation("amount", "payment amount must be positive")
	}

	next := p
	next.installmentsPaid = p.installmentsPaid + 1
	next.totalPaid = p.totalPaid.Add(amount)
	next.remainingAmount = p.totalPlannedAmount.Sub(next.totalPaid)
	next.nextPaymentDate = p.advanceNextPaymentDate(next.installmentsPaid)
	next.updatedAt = now
	next.domainEvents = copyEvents(p.domainEvents)

	if next.installmentsPaid >= p.numberOfInstallments || !next.remainingAmount.IsPositive() {
		next.status = valueobject.PlanStatusCompleted
		next.domainEvents = append(next.domainEvents, event.NewPaymentPlanCompleted(p.id, p.pledgeID, next.totalPaid))
	}
	return next, nil
}

// advanceNextPaymentDate computes the due date following the given number of
// paid installments. Custom plans walk the schedule; fixed plans step by
// frequency from the start date.
func (p PaymentPlan) advanceNextPaymentDate(installmentsPaid int) time.Time {
	if p.distributionType.IsCustom() {
		if installmentsPaid < len(p.schedule) {
			return p.schedule[installmentsPaid].DueDate
		}
		return p.endDate
	}
	if installmentsPaid >= p.numberOfInstallments {
		return p.endDate
	}
	return p.frequency.Advance(p.startDate, installmentsPaid)
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (p PaymentPlan) ID() string                                     { return p.id }
func (p PaymentPlan) PledgeID() string                               { return p.pledgeID }
func (p PaymentPlan) Frequency() valueobject.PlanFrequency           { return p.frequency }
func (p PaymentPlan) DistributionType() valueobject.DistributionType { return p.distributionType }
func (p PaymentPlan) TotalPlannedAmount() decimal.Decimal            { return p.totalPlannedAmount }
func (p PaymentPlan) Currency() string                               { return p.currency }
func (p PaymentPlan) ExchangeRate() decimal.Decimal                  { return p.exchangeRate }
func (p PaymentPlan) InstallmentAmount() decimal.Decimal             { return p.installmentAmount }
func (p PaymentPlan) NumberOfInstallments() int                      { return p.numberOfInstallments }
func (p PaymentPlan) StartDate() time.Time                           { return p.startDate }
func (p PaymentPlan) EndDate() time.Time                             { return p.endDate }
func (p PaymentPlan) NextPaymentDate() time.Time                     { return p.nextPaymentDate }
func (p PaymentPlan) InstallmentsPaid() int                          { return p.installmentsPaid }
func (p PaymentPlan) TotalPaid() decimal.Decimal                     { return p.totalPaid }
func (p PaymentPlan) RemainingAmount() decimal.Decimal               { return p.remainingAmount }
func (p PaymentPlan) Status() valueobject.PlanStatus                 { return p.status }
func (p PaymentPlan) Version() int                                   { return p.version }
func (p PaymentPlan) CreatedAt() time.Time                           { return p.createdAt }
func (p PaymentPlan) UpdatedAt() time.Time                           { return p.updatedAt }
func (p PaymentPlan) DomainEvents() []event.DomainEvent              { return p.domainEvents }

// Schedule returns a defensive copy of the installment schedule.
func (p PaymentPlan) Schedule() []InstallmentEntry {
	if p.schedule == nil {
		return nil
	}
	out := make([]InstallmentEntry, len(p.schedule))
	copy(out, p.schedule)
	return out
}

// ClearEvents returns a copy with an empty event list.
func (p PaymentPlan) ClearEvents() PaymentPlan {
	next := p
	next.domainEvents = nil
	return next
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
