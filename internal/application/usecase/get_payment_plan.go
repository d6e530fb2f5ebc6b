package usecase

import (
	"context"
	"fmt"

	"github.com/givebridge/givebridge/internal/application/dto"
	"github.com/givebridge/givebridge/internal/domain/port"
)

// GetPaymentPlanUseCase retrieves a payment plan with its schedule.
type GetPaymentPlanUseCase struct {
	planRepo port.PaymentPlanRepository
}

// NewGetPaymentPlanUseCase wires dependencies.
func NewGetPaymentPlanUseCase(planRepo port.PaymentPlanRepository) *GetPaymentPlanUseCase {
	return &GetPaymentPlanUseCase{planRepo: planRepo}
}

// Execute retrieves a payment plan by ID.
func (uc *GetPaymentPlanUseCase) Execute(
	ctx context.Context,
	req dto.GetPaymentPlanRequest,
) (dto.PaymentPlanResponse, error) {
	plan, err := uc.planRepo.FindByID(ctx, req.PlanID)
	if err != nil {
		return dto.PaymentPlanResponse{}, fmt.Errorf("find payment plan: %w", err)
	}
	return toPlanResponse(plan), nil
}
