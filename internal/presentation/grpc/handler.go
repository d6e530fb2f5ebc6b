package grpc

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/givebridge/givebridge/internal/application/dto"
	"github.com/givebridge/givebridge/internal/application/usecase"
)

// PledgeHandler implements the gRPC pledge service handler.
type PledgeHandler struct {
	UnimplementedPledgeServiceServer

	assignSolicitor *usecase.AssignSolicitorUseCase
	recalcBonus     *usecase.RecalculateBonusUseCase
	getPayment      *usecase.GetPaymentUseCase
	deletePayment   *usecase.DeletePaymentUseCase
	createPlan      *usecase.CreatePaymentPlanUseCase
	getPlan         *usecase.GetPaymentPlanUseCase
	pausePlan       *usecase.PausePaymentPlanUseCase
	resumePlan      *usecase.ResumePaymentPlanUseCase
	cancelPlan      *usecase.CancelPaymentPlanUseCase
}

// NewPledgeHandler creates a new gRPC pledge handler.
func NewPledgeHandler(
	assignSolicitor *usecase.AssignSolicitorUseCase,
	recalcBonus *usecase.RecalculateBonusUseCase,
	getPayment *usecase.GetPaymentUseCase,
	deletePayment *usecase.DeletePaymentUseCase,
	createPlan *usecase.CreatePaymentPlanUseCase,
	getPlan *usecase.GetPaymentPlanUseCase,
	pausePlan *usecase.PausePaymentPlanUseCase,
	resumePlan *usecase.ResumePaymentPlanUseCase,
	cancelPlan *usecase.CancelPaymentPlanUseCase,
) *PledgeHandler {
	return &PledgeHandler{
		assignSolicitor: assignSolicitor,
		recalcBonus:     recalcBonus,
		getPayment:      getPayment,
		deletePayment:   deletePayment,
		createPlan:      createPlan,
		getPlan:         getPlan,
		pausePlan:       pausePlan,
		resumePlan:      resumePlan,
		cancelPlan:      cancelPlan,
	}
}

// ---------------------------------------------------------------------------
// Wire messages
// ---------------------------------------------------------------------------

// AssignSolicitorRequest represents the gRPC request for crediting a payment
// to a solicitor.
type AssignSolicitorRequest struct {
	PaymentID   string `json:"payment_id"`
	SolicitorID string `json:"solicitor_id"`
}

// RecalculateBonusRequest represents the gRPC request for re-running a
// payment's bonus calculation.
type RecalculateBonusRequest struct {
	PaymentID string `json:"payment_id"`
}

// GetPaymentRequest represents the gRPC request for retrieving a payment.
type GetPaymentRequest struct {
	PaymentID string `json:"payment_id"`
}

// DeletePaymentRequest represents the gRPC request for deleting a payment.
type DeletePaymentRequest struct {
	PaymentID string `json:"payment_id"`
}

// DeletePaymentResponse acknowledges a deletion.
type DeletePaymentResponse struct {
	Deleted bool `json:"deleted"`
}

// InstallmentSpec is one caller-specified installment of a custom plan.
type InstallmentSpec struct {
	Date   string `json:"date"`
	Amount string `json:"amount"`
	Notes  string `json:"notes,omitempty"`
}

// CreatePaymentPlanRequest represents the gRPC request for creating a plan.
type CreatePaymentPlanRequest struct {
	PledgeID             string             `json:"pledge_id"`
	Frequency            string             `json:"frequency"`
	DistributionType     string             `json:"distribution_type"`
	TotalPlannedAmount   string             `json:"total_planned_amount"`
	Currency             string             `json:"currency,omitempty"`
	StartDate            string             `json:"start_date"`
	NextPaymentDate      string             `json:"next_payment_date,omitempty"`
	InstallmentAmount    string             `json:"installment_amount,omitempty"`
	NumberOfInstallments int32              `json:"number_of_installments,omitempty"`
	CustomInstallments   []*InstallmentSpec `json:"custom_installments,omitempty"`
}

// GetPaymentPlanRequest represents the gRPC request for retrieving a plan.
type GetPaymentPlanRequest struct {
	PlanID string `json:"plan_id"`
}

// PlanStatusRequest identifies a plan for a pause, resume or cancel
// transition.
type PlanStatusRequest struct {
	PlanID string `json:"plan_id"`
}

// PaymentResponse represents a payment with its bonus projection.
type PaymentResponse struct {
	ID              string `json:"id"`
	PledgeID        string `json:"pledge_id"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	AmountUSD       string `json:"amount_usd"`
	PaymentDate     string `json:"payment_date"`
	Status          string `json:"status"`
	SolicitorID     string `json:"solicitor_id,omitempty"`
	BonusPercentage string `json:"bonus_percentage"`
	BonusAmount     string `json:"bonus_amount"`
	BonusRuleID     string `json:"bonus_rule_id,omitempty"`
	PaymentPlanID   string `json:"payment_plan_id,omitempty"`
}

// BonusCalculationResponse represents the authoritative bonus record.
type BonusCalculationResponse struct {
	ID           string `json:"id"`
	PaymentID    string `json:"payment_id"`
	RuleID       string `json:"rule_id"`
	Percentage   string `json:"percentage"`
	Amount       string `json:"amount"`
	IsPaid       bool   `json:"is_paid"`
	CalculatedAt string `json:"calculated_at"`
}

// BonusResponse pairs a payment with its calculation, when one exists.
type BonusResponse struct {
	Payment     *PaymentResponse          `json:"payment"`
	Calculation *BonusCalculationResponse `json:"calculation,omitempty"`
}

// InstallmentEntry represents one scheduled installment.
type InstallmentEntry struct {
	Sequence int32  `json:"sequence"`
	DueDate  string `json:"due_date"`
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
	Notes    string `json:"notes,omitempty"`
}

// PaymentPlanResponse represents a payment plan.
type PaymentPlanResponse struct {
	ID                   string              `json:"id"`
	PledgeID             string              `json:"pledge_id"`
	Frequency            string              `json:"frequency"`
	DistributionType     string              `json:"distribution_type"`
	TotalPlannedAmount   string              `json:"total_planned_amount"`
	Currency             string              `json:"currency"`
	ExchangeRate         string              `json:"exchange_rate"`
	InstallmentAmount    string              `json:"installment_amount"`
	NumberOfInstallments int32               `json:"number_of_installments"`
	StartDate            string              `json:"start_date"`
	EndDate              string              `json:"end_date"`
	NextPaymentDate      string              `json:"next_payment_date"`
	InstallmentsPaid     int32               `json:"installments_paid"`
	TotalPaid            string              `json:"total_paid"`
	RemainingAmount      string              `json:"remaining_amount"`
	Status               string              `json:"status"`
	Schedule             []*InstallmentEntry `json:"schedule,omitempty"`
}

// ---------------------------------------------------------------------------
// Methods
// ---------------------------------------------------------------------------

// AssignSolicitor handles the gRPC AssignSolicitor request.
func (h *PledgeHandler) AssignSolicitor(ctx context.Context, req *AssignSolicitorRequest) (*BonusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.PaymentID == "" {
		return nil, status.Error(codes.InvalidArgument, "payment_id is required")
	}

	result, err := h.assignSolicitor.Execute(ctx, dto.AssignSolicitorRequest{
		PaymentID:   req.PaymentID,
		SolicitorID: req.SolicitorID,
	})
	if err != nil {
		return nil, mapError(err)
	}
	return toBonusResponse(result), nil
}

// RecalculateBonus handles the gRPC RecalculateBonus request.
func (h *PledgeHandler) RecalculateBonus(ctx context.Context, req *RecalculateBonusRequest) (*BonusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.PaymentID == "" {
		return nil, status.Error(codes.InvalidArgument, "payment_id is required")
	}

	result, err := h.recalcBonus.Execute(ctx, dto.RecalculateBonusRequest{PaymentID: req.PaymentID})
	if err != nil {
		return nil, mapError(err)
	}
	return toBonusResponse(result), nil
}

// GetPayment handles the gRPC GetPayment request.
func (h *PledgeHandler) GetPayment(ctx context.Context, req *GetPaymentRequest) (*BonusResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.PaymentID == "" {
		return nil, status.Error(codes.InvalidArgument, "payment_id is required")
	}

	result, err := h.getPayment.Execute(ctx, dto.GetPaymentRequest{PaymentID: req.PaymentID})
	if err != nil {
		return nil, mapError(err)
	}
	return toBonusResponse(result), nil
}

// DeletePayment handles the gRPC DeletePayment request.
func (h *PledgeHandler) DeletePayment(ctx context.Context, req *DeletePaymentRequest) (*DeletePaymentResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.PaymentID == "" {
		return nil, status.Error(codes.InvalidArgument, "payment_id is required")
	}

	if err := h.deletePayment.Execute(ctx, dto.DeletePaymentRequest{PaymentID: req.PaymentID}); err != nil {
		return nil, mapError(err)
	}
	return &DeletePaymentResponse{Deleted: true}, nil
}

// CreatePaymentPlan handles the gRPC CreatePaymentPlan request.
func (h *PledgeHandler) CreatePaymentPlan(ctx context.Context, req *CreatePaymentPlanRequest) (*PaymentPlanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.PledgeID == "" {
		return nil, status.Error(codes.InvalidArgument, "pledge_id is required")
	}

	total, err := decimal.NewFromString(req.TotalPlannedAmount)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid total_planned_amount: %v", err))
	}
	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid start_date: %v", err))
	}

	ucReq := dto.CreatePaymentPlanRequest{
		PledgeID:           req.PledgeID,
		Frequency:          req.Frequency,
		DistributionType:   req.DistributionType,
		TotalPlannedAmount: total,
		Currency:           req.Currency,
		StartDate:          startDate,
	}

	if req.NextPaymentDate != "" {
		next, err := parseDate(req.NextPaymentDate)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid next_payment_date: %v", err))
		}
		ucReq.NextPaymentDate = &next
	}
	if req.InstallmentAmount != "" {
		amt, err := decimal.NewFromString(req.InstallmentAmount)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid installment_amount: %v", err))
		}
		ucReq.InstallmentAmount = &amt
	}
	if req.NumberOfInstallments != 0 {
		n := int(req.NumberOfInstallments)
		ucReq.NumberOfInstallments = &n
	}
	for i, spec := range req.CustomInstallments {
		if spec == nil {
			continue
		}
		date, err := parseDate(spec.Date)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid custom_installments[%d].date: %v", i, err))
		}
		amt, err := decimal.NewFromString(spec.Amount)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, fmt.Sprintf("invalid custom_installments[%d].amount: %v", i, err))
		}
		ucReq.CustomInstallments = append(ucReq.CustomInstallments, dto.InstallmentSpecRequest{
			Date:   date,
			Amount: amt,
			Notes:  spec.Notes,
		})
	}

	result, err := h.createPlan.Execute(ctx, ucReq)
	if err != nil {
		return nil, mapError(err)
	}
	return toPlanResponse(result), nil
}

// GetPaymentPlan handles the gRPC GetPaymentPlan request.
func (h *PledgeHandler) GetPaymentPlan(ctx context.Context, req *GetPaymentPlanRequest) (*PaymentPlanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.PlanID == "" {
		return nil, status.Error(codes.InvalidArgument, "plan_id is required")
	}

	result, err := h.getPlan.Execute(ctx, dto.GetPaymentPlanRequest{PlanID: req.PlanID})
	if err != nil {
		return nil, mapError(err)
	}
	return toPlanResponse(result), nil
}

// PausePaymentPlan handles the gRPC PausePaymentPlan request.
func (h *PledgeHandler) PausePaymentPlan(ctx context.Context, req *PlanStatusRequest) (*PaymentPlanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.PlanID == "" {
		return nil, status.Error(codes.InvalidArgument, "plan_id is required")
	}

	result, err := h.pausePlan.Execute(ctx, dto.ChangePlanStatusRequest{PlanID: req.PlanID})
	if err != nil {
		return nil, mapError(err)
	}
	return toPlanResponse(result), nil
}

// ResumePaymentPlan handles the gRPC ResumePaymentPlan request.
func (h *PledgeHandler) ResumePaymentPlan(ctx context.Context, req *PlanStatusRequest) (*PaymentPlanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.PlanID == "" {
		return nil, status.Error(codes.InvalidArgument, "plan_id is required")
	}

	result, err := h.resumePlan.Execute(ctx, dto.ChangePlanStatusRequest{PlanID: req.PlanID})
	if err != nil {
		return nil, mapError(err)
	}
	return toPlanResponse(result), nil
}

// CancelPaymentPlan handles the gRPC CancelPaymentPlan request.
func (h *PledgeHandler) CancelPaymentPlan(ctx context.Context, req *PlanStatusRequest) (*PaymentPlanResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}
	if req.PlanID == "" {
		return nil, status.Error(codes.InvalidArgument, "plan_id is required")
	}

	result, err := h.cancelPlan.Execute(ctx, dto.ChangePlanStatusRequest{PlanID: req.PlanID})
	if err != nil {
		return nil, mapError(err)
	}
	return toPlanResponse(result), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}

func toBonusResponse(r dto.BonusResponse) *BonusResponse {
	resp := &BonusResponse{Payment: toPaymentResponse(r.Payment)}
	if r.Calculation != nil {
		resp.Calculation = &BonusCalculationResponse{
			ID:           r.Calculation.ID,
			PaymentID:    r.Calculation.PaymentID,
			RuleID:       r.Calculation.RuleID,
			Percentage:   r.Calculation.Percentage.StringFixed(2),
			Amount:       r.Calculation.Amount.StringFixed(2),
			IsPaid:       r.Calculation.IsPaid,
			CalculatedAt: r.Calculation.CalculatedAt.Format(time.RFC3339),
		}
	}
	return resp
}

func toPaymentResponse(p dto.PaymentResponse) *PaymentResponse {
	return &PaymentResponse{
		ID:              p.ID,
		PledgeID:        p.PledgeID,
		Amount:          p.Amount.StringFixed(2),
		Currency:        p.Currency,
		AmountUSD:       p.AmountUSD.StringFixed(2),
		PaymentDate:     p.PaymentDate.Format(time.RFC3339),
		Status:          p.Status,
		SolicitorID:     p.SolicitorID,
		BonusPercentage: p.BonusPercentage.StringFixed(2),
		BonusAmount:     p.BonusAmount.StringFixed(2),
		BonusRuleID:     p.BonusRuleID,
		PaymentPlanID:   p.PaymentPlanID,
	}
}

func toPlanResponse(p dto.PaymentPlanResponse) *PaymentPlanResponse {
	resp := &PaymentPlanResponse{
		ID:                   p.ID,
		PledgeID:             p.PledgeID,
		Frequency:            p.Frequency,
		DistributionType:     p.DistributionType,
		TotalPlannedAmount:   p.TotalPlannedAmount.StringFixed(2),
		Currency:             p.Currency,
		ExchangeRate:         p.ExchangeRate.String(),
		InstallmentAmount:    p.InstallmentAmount.StringFixed(2),
		NumberOfInstallments: int32(p.NumberOfInstallments),
		StartDate:            p.StartDate.Format(time.RFC3339),
		EndDate:              p.EndDate.Format(time.RFC3339),
		NextPaymentDate:      p.NextPaymentDate.Format(time.RFC3339),
		InstallmentsPaid:     int32(p.InstallmentsPaid),
		TotalPaid:            p.TotalPaid.StringFixed(2),
		RemainingAmount:      p.RemainingAmount.StringFixed(2),
		Status:               p.Status,
	}
	for _, e := range p.Schedule {
		resp.Schedule = append(resp.Schedule, &InstallmentEntry{
			Sequence: int32(e.Sequence),
			DueDate:  e.DueDate.Format(time.RFC3339),
			Amount:   e.Amount.StringFixed(2),
			Currency: e.Currency,
			Notes:    e.Notes,
		})
	}
	return resp
}
