package event

import (
	"github.com/shopspring/decimal"

	"github.com/givebridge/givebridge/pkg/events"
)

// DomainEvent is re-exported so domain packages depend on a single name.
type DomainEvent = events.DomainEvent

// Event type names as published on the broker.
const (
	TypeSolicitorAssigned        = "crm.payment.solicitor_assigned"
	TypeBonusApplied             = "crm.payment.bonus_applied"
	TypeBonusCleared             = "crm.payment.bonus_cleared"
	TypePaymentDeleted           = "crm.payment.deleted"
	TypePaymentPlanCreated       = "crm.payment_plan.created"
	TypePaymentPlanPaused        = "crm.payment_plan.paused"
	TypePaymentPlanResumed       = "crm.payment_plan.resumed"
	TypePaymentPlanCancelled     = "crm.payment_plan.cancelled"
	TypePaymentPlanCompleted     = "crm.payment_plan.completed"
	TypePaymentPlanRollbackFault = "crm.payment_plan.rollback_failed"
)

const (
	aggregatePayment     = "Payment"
	aggregatePaymentPlan = "PaymentPlan"
)

// ---------------------------------------------------------------------------
// Payment events
// ---------------------------------------------------------------------------

// SolicitorAssigned is emitted when a payment is credited to a solicitor.
type SolicitorAssigned struct {
	events.BaseEvent
	PaymentID   string `json:"payment_id"`
	SolicitorID string `json:"solicitor_id"`
}

func NewSolicitorAssigned(paymentID, solicitorID string) SolicitorAssigned {
	return SolicitorAssigned{
		BaseEvent:   events.NewBaseEvent(TypeSolicitorAssigned, paymentID, aggregatePayment),
		PaymentID:   paymentID,
		SolicitorID: solicitorID,
	}
}

// BonusApplied is emitted when a bonus calculation is recorded on a payment.
type BonusApplied struct {
	events.BaseEvent
	PaymentID   string          `json:"payment_id"`
	SolicitorID string          `json:"solicitor_id"`
	RuleID      string          `json:"rule_id"`
	Percentage  decimal.Decimal `json:"percentage"`
	Amount      decimal.Decimal `json:"amount"`
}

func NewBonusApplied(paymentID, solicitorID, ruleID string, percentage, amount decimal.Decimal) BonusApplied {
	return BonusApplied{
		BaseEvent:   events.NewBaseEvent(TypeBonusApplied, paymentID, aggregatePayment),
		PaymentID:   paymentID,
		SolicitorID: solicitorID,
		RuleID:      ruleID,
		Percentage:  percentage,
		Amount:      amount,
	}
}

// BonusCleared is emitted when a payment's bonus is zeroed, either because no
// rule matched on recalculation or because the solicitor was unassigned.
type BonusCleared struct {
	events.BaseEvent
	PaymentID string `json:"payment_id"`
}

func NewBonusCleared(paymentID string) BonusCleared {
	return BonusCleared{
		BaseEvent: events.NewBaseEvent(TypeBonusCleared, paymentID, aggregatePayment),
		PaymentID: paymentID,
	}
}

// PaymentDeleted is emitted after a payment passes its deletion guards and is
// removed together with its bonus calculation.
type PaymentDeleted struct {
	events.BaseEvent
	PaymentID string          `json:"payment_id"`
	PledgeID  string          `json:"pledge_id"`
	Amount    decimal.Decimal `json:"amount"`
}

func NewPaymentDeleted(paymentID, pledgeID string, amount decimal.Decimal) PaymentDeleted {
	return PaymentDeleted{
		BaseEvent: events.NewBaseEvent(TypePaymentDeleted, paymentID, aggregatePayment),
		PaymentID: paymentID,
		PledgeID:  pledgeID,
		Amount:    amount,
	}
}

// ---------------------------------------------------------------------------
// Payment plan events
// ---------------------------------------------------------------------------

// PaymentPlanCreated is emitted once a plan and all of its installments are
// durably stored.
type PaymentPlanCreated struct {
	events.BaseEvent
	PlanID               string          `json:"plan_id"`
	PledgeID             string          `json:"pledge_id"`
	DistributionType     string          `json:"distribution_type"`
	TotalPlannedAmount   decimal.Decimal `json:"total_planned_amount"`
	Currency             string          `json:"currency"`
	NumberOfInstallments int             `json:"number_of_installments"`
}

func NewPaymentPlanCreated(
	planID, pledgeID, distributionType string,
	totalPlannedAmount decimal.Decimal,
	currency string,
	numberOfInstallments int,
) PaymentPlanCreated {
	return PaymentPlanCreated{
		BaseEvent:            events.NewBaseEvent(TypePaymentPlanCreated, planID, aggregatePaymentPlan),
		PlanID:               planID,
		PledgeID:             pledgeID,
		DistributionType:     distributionType,
		TotalPlannedAmount:   totalPlannedAmount,
		Currency:             currency,
		NumberOfInstallments: numberOfInstallments,
	}
}

// PaymentPlanPaused is emitted when an active plan is suspended.
type PaymentPlanPaused struct {
	events.BaseEvent
	PlanID   string `json:"plan_id"`
	PledgeID string `json:"pledge_id"`
}

func NewPaymentPlanPaused(planID, pledgeID string) PaymentPlanPaused {
	return PaymentPlanPaused{
		BaseEvent: events.NewBaseEvent(TypePaymentPlanPaused, planID, aggregatePaymentPlan),
		PlanID:    planID,
		PledgeID:  pledgeID,
	}
}

// PaymentPlanResumed is emitted when a paused plan becomes active again.
type PaymentPlanResumed struct {
	events.BaseEvent
	PlanID   string `json:"plan_id"`
	PledgeID string `json:"pledge_id"`
}

func NewPaymentPlanResumed(planID, pledgeID string) PaymentPlanResumed {
	return PaymentPlanResumed{
		BaseEvent: events.NewBaseEvent(TypePaymentPlanResumed, planID, aggregatePaymentPlan),
		PlanID:    planID,
		PledgeID:  pledgeID,
	}
}

// PaymentPlanCancelled is emitted when a plan is terminated before completion.
type PaymentPlanCancelled struct {
	events.BaseEvent
	PlanID          string          `json:"plan_id"`
	PledgeID        string          `json:"pledge_id"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

func NewPaymentPlanCancelled(planID, pledgeID string, remainingAmount decimal.Decimal) PaymentPlanCancelled {
	return PaymentPlanCancelled{
		BaseEvent:       events.NewBaseEvent(TypePaymentPlanCancelled, planID, aggregatePaymentPlan),
		PlanID:          planID,
		PledgeID:        pledgeID,
		RemainingAmount: remainingAmount,
	}
}

// PaymentPlanCompleted is emitted when the final installment is paid.
type PaymentPlanCompleted struct {
	events.BaseEvent
	PlanID    string          `json:"plan_id"`
	PledgeID  string          `json:"pledge_id"`
	TotalPaid decimal.Decimal `json:"total_paid"`
}

func NewPaymentPlanCompleted(planID, pledgeID string, totalPaid decimal.Decimal) PaymentPlanCompleted {
	return PaymentPlanCompleted{
		BaseEvent: events.NewBaseEvent(TypePaymentPlanCompleted, planID, aggregatePaymentPlan),
		PlanID:    planID,
		PledgeID:  pledgeID,
		TotalPaid: totalPaid,
	}
}

// PaymentPlanRollbackFailed is emitted when installment persistence fails and
// the compensating delete of the plan row also fails, leaving an orphaned
// plan that needs operator attention.
type PaymentPlanRollbackFailed struct {
	events.BaseEvent
	PlanID   string `json:"plan_id"`
	PledgeID string `json:"pledge_id"`
	Reason   string `json:"reason"`
}

func NewPaymentPlanRollbackFailed(planID, pledgeID, reason string) PaymentPlanRollbackFailed {
	return PaymentPlanRollbackFailed{
		BaseEvent: events.NewBaseEvent(TypePaymentPlanRollbackFault, planID, aggregatePaymentPlan),
		PlanID:    planID,
		PledgeID:  pledgeID,
		Reason:    reason,
	}
}
