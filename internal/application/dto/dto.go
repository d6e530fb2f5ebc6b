package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Request DTOs
// ---------------------------------------------------------------------------

// AssignSolicitorRequest credits a payment to a solicitor and triggers a
// bonus calculation.
type AssignSolicitorRequest struct {
	PaymentID   string `json:"payment_id"`
	SolicitorID string `json:"solicitor_id"`
}

// RecalculateBonusRequest re-runs the bonus calculation for a payment
// against the currently live rules.
type RecalculateBonusRequest struct {
	PaymentID string `json:"payment_id"`
}

// InstallmentSpecRequest is one caller-specified installment of a custom
// plan.
type InstallmentSpecRequest struct {
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Notes  string          `json:"notes,omitempty"`
}

// CreatePaymentPlanRequest carries the data for a new payment plan.
type CreatePaymentPlanRequest struct {
	PledgeID             string                   `json:"pledge_id"`
	Frequency            string                   `json:"frequency"`
	DistributionType     string                   `json:"distribution_type"`
	TotalPlannedAmount   decimal.Decimal          `json:"total_planned_amount"`
	Currency             string                   `json:"currency,omitempty"`
	StartDate            time.Time                `json:"start_date"`
	NextPaymentDate      *time.Time               `json:"next_payment_date,omitempty"`
	InstallmentAmount    *decimal.Decimal         `json:"installment_amount,omitempty"`
	NumberOfInstallments *int                     `json:"number_of_installments,omitempty"`
	CustomInstallments   []InstallmentSpecRequest `json:"custom_installments,omitempty"`
}

// GetPaymentRequest identifies a payment to retrieve.
type GetPaymentRequest struct {
	PaymentID string `json:"payment_id"`
}

// DeletePaymentRequest identifies a payment to delete.
type DeletePaymentRequest struct {
	PaymentID string `json:"payment_id"`
}

// GetPaymentPlanRequest identifies a payment plan to retrieve.
type GetPaymentPlanRequest struct {
	PlanID string `json:"plan_id"`
}

// ChangePlanStatusRequest identifies a plan for a pause, resume or cancel
// transition.
type ChangePlanStatusRequest struct {
	PlanID string `json:"plan_id"`
}

// ---------------------------------------------------------------------------
// Response DTOs
// ---------------------------------------------------------------------------

// PaymentResponse is the external representation of a payment with its bonus
// projection.
type PaymentResponse struct {
	ID              string          `json:"id"`
	PledgeID        string          `json:"pledge_id"`
	Amount          decimal.Decimal `json:"amount"`
	Currency        string          `json:"currency"`
	AmountUSD       decimal.Decimal `json:"amount_usd"`
	PaymentDate     time.Time       `json:"payment_date"`
	Status          string          `json:"status"`
	SolicitorID     string          `json:"solicitor_id,omitempty"`
	BonusPercentage decimal.Decimal `json:"bonus_percentage"`
	BonusAmount     decimal.Decimal `json:"bonus_amount"`
	BonusRuleID     string          `json:"bonus_rule_id,omitempty"`
	PaymentPlanID   string          `json:"payment_plan_id,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BonusCalculationResponse is the external representation of the
// authoritative bonus record behind a payment.
type BonusCalculationResponse struct {
	ID           string          `json:"id"`
	PaymentID    string          `json:"payment_id"`
	RuleID       string          `json:"rule_id"`
	Percentage   decimal.Decimal `json:"percentage"`
	Amount       decimal.Decimal `json:"amount"`
	IsPaid       bool            `json:"is_paid"`
	CalculatedAt time.Time       `json:"calculated_at"`
}

// BonusResponse is returned by the assignment and recalculation operations.
// Calculation is nil when no rule matched and the bonus was cleared.
type BonusResponse struct {
	Payment     PaymentResponse           `json:"payment"`
	Calculation *BonusCalculationResponse `json:"calculation,omitempty"`
}

// InstallmentEntryResponse represents a single scheduled installment of a
// custom plan.
type InstallmentEntryResponse struct {
	Sequence int             `json:"sequence"`
	DueDate  time.Time       `json:"due_date"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Notes    string          `json:"notes,omitempty"`
}

// PaymentPlanResponse is the external representation of a payment plan.
type PaymentPlanResponse struct {
	ID                   string                     `json:"id"`
	PledgeID             string                     `json:"pledge_id"`
	Frequency            string                     `json:"frequency"`
	DistributionType     string                     `json:"distribution_type"`
	TotalPlannedAmount   decimal.Decimal            `json:"total_planned_amount"`
	Currency             string                     `json:"currency"`
	ExchangeRate         decimal.Decimal            `json:"exchange_rate"`
	InstallmentAmount    decimal.Decimal            `json:"installment_amount"`
	NumberOfInstallments int                        `json:"number_of_installments"`
	StartDate            time.Time                  `json:"start_date"`
	EndDate              time.Time                  `json:"end_date"`
	NextPaymentDate      time.Time                  `json:"next_payment_date"`
	InstallmentsPaid     int                        `json:"installments_paid"`
	TotalPaid            decimal.Decimal            `json:"total_paid"`
	RemainingAmount      decimal.Decimal            `json:"remaining_amount"`
	Status               string                     `json:"status"`
	Schedule             []InstallmentEntryResponse `json:"schedule,omitempty"`
	CreatedAt            time.Time                  `json:"created_at"`
	UpdatedAt            time.Time                  `json:"updated_at"`
}
