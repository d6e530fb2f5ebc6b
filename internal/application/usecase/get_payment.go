package usecase

import (
	"context"
	"fmt"

	"github.com/givebridge/givebridge/internal/application/dto"
	"github.com/givebridge/givebridge/internal/domain/port"
)

// GetPaymentUseCase retrieves a payment with its bonus projection and, when
// one exists, the authoritative calculation behind it.
type GetPaymentUseCase struct {
	paymentRepo port.PaymentRepository
	calcRepo    port.BonusCalculationRepository
}

// NewGetPaymentUseCase wires dependencies.
func NewGetPaymentUseCase(
	paymentRepo port.PaymentRepository,
	calcRepo port.BonusCalculationRepository,
) *GetPaymentUseCase {
	return &GetPaymentUseCase{paymentRepo: paymentRepo, calcRepo: calcRepo}
}

// Execute retrieves a payment by ID.
func (uc *GetPaymentUseCase) Execute(
	ctx context.Context,
	req dto.GetPaymentRequest,
) (dto.BonusResponse, error) {
	payment, err := uc.paymentRepo.FindByID(ctx, req.PaymentID)
	if err != nil {
		return dto.BonusResponse{}, fmt.Errorf("find payment: %w", err)
	}

	calc, err := uc.calcRepo.FindByPaymentID(ctx, payment.ID())
	if err != nil {
		return dto.BonusResponse{}, fmt.Errorf("find bonus calculation: %w", err)
	}

	return toBonusResponse(payment, calc), nil
}
