package usecase

import (
	"context"
	"fmt"

	"github.com/givebridge/givebridge/internal/application/dto"
	"github.com/givebridge/givebridge/internal/domain/event"
	"github.com/givebridge/givebridge/internal/domain/port"
)

// DeletePaymentUseCase removes a payment after checking the deletion guards.
// A completed payment, or one whose bonus has been paid out, is never
// deleted; the bonus calculation row goes with the payment.
type DeletePaymentUseCase struct {
	paymentRepo port.PaymentRepository
	calcRepo    port.BonusCalculationRepository
	publisher   port.EventPublisher
}

// NewDeletePaymentUseCase wires dependencies.
func NewDeletePaymentUseCase(
	paymentRepo port.PaymentRepository,
	calcRepo port.BonusCalculationRepository,
	publisher port.EventPublisher,
) *DeletePaymentUseCase {
	return &DeletePaymentUseCase{
		paymentRepo: paymentRepo,
		calcRepo:    calcRepo,
		publisher:   publisher,
	}
}

// Execute deletes a payment by ID.
func (uc *DeletePaymentUseCase) Execute(ctx context.Context, req dto.DeletePaymentRequest) error {
	// 1. Retrieve the payment.
	payment, err := uc.paymentRepo.FindByID(ctx, req.PaymentID)
	if err != nil {
		return fmt.Errorf("find payment: %w", err)
	}

	// 2. Check guards against the authoritative calculation.
	calc, err := uc.calcRepo.FindByPaymentID(ctx, payment.ID())
	if err != nil {
		return fmt.Errorf("find bonus calculation: %w", err)
	}
	bonusPaid := calc != nil && calc.IsPaid()
	if err := payment.EnsureDeletable(bonusPaid); err != nil {
		return err
	}

	// 3. Delete payment and calculation together.
	if err := uc.paymentRepo.Delete(ctx, payment); err != nil {
		return fmt.Errorf("delete payment: %w", err)
	}

	// 4. Publish the deletion.
	if err := uc.publisher.Publish(ctx, event.NewPaymentDeleted(
		payment.ID(), payment.PledgeID(), payment.Amount(),
	)); err != nil {
		return fmt.Errorf("publish events: %w", err)
	}
	return nil
}
