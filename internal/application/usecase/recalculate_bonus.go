package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/givebridge/givebridge/internal/apperror"
	"github.com/givebridge/givebridge/internal/application/dto"
	"github.com/givebridge/givebridge/internal/domain/port"
	"github.com/givebridge/givebridge/internal/domain/service"
)

// RecalculateBonusUseCase re-runs the bonus calculation for a payment
// against the currently live rules. Running it twice with unchanged rules is
// a no-op beyond replacing the calculation row with an identical one.
type RecalculateBonusUseCase struct {
	paymentRepo port.PaymentRepository
	calcRepo    port.BonusCalculationRepository
	engine      *bonusEngine
	publisher   port.EventPublisher
}

// NewRecalculateBonusUseCase wires dependencies.
func NewRecalculateBonusUseCase(
	paymentRepo port.PaymentRepository,
	calcRepo port.BonusCalculationRepository,
	ruleRepo port.BonusRuleRepository,
	pledgeRepo port.PledgeRepository,
	categoryRepo port.CategoryRepository,
	matcher *service.RuleMatcher,
	calculator *service.BonusCalculator,
	publisher port.EventPublisher,
) *RecalculateBonusUseCase {
	return &RecalculateBonusUseCase{
		paymentRepo: paymentRepo,
		calcRepo:    calcRepo,
		engine:      newBonusEngine(ruleRepo, pledgeRepo, categoryRepo, matcher, calculator),
		publisher:   publisher,
	}
}

// Execute recalculates the payment's bonus. A payment whose rules no longer
// match ends up with a cleared bonus and no calculation row; a payment that
// was never credited to a solicitor has nothing to recalculate.
func (uc *RecalculateBonusUseCase) Execute(
	ctx context.Context,
	req dto.RecalculateBonusRequest,
) (dto.BonusResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the payment.
	payment, err := uc.paymentRepo.FindByID(ctx, req.PaymentID)
	if err != nil {
		return dto.BonusResponse{}, fmt.Errorf("find payment: %w", err)
	}

	// 2. Recalculation only makes sense for an assigned payment.
	if payment.SolicitorID() == nil {
		return dto.BonusResponse{}, apperror.NotFound("solicitor assignment for payment", req.PaymentID)
	}

	// 3. A paid-out bonus is frozen.
	if err := ensureBonusNotPaid(ctx, uc.calcRepo, payment.ID()); err != nil {
		return dto.BonusResponse{}, err
	}

	// 4. Re-run the match.
	payment, calc, err := uc.engine.apply(ctx, payment, now)
	if err != nil {
		return dto.BonusResponse{}, err
	}

	// 5. Persist payment and calculation in one transaction.
	if err := uc.paymentRepo.ReplaceBonusState(ctx, payment, calc); err != nil {
		return dto.BonusResponse{}, fmt.Errorf("replace bonus state: %w", err)
	}

	// 6. Publish events.
	if err := uc.publisher.Publish(ctx, payment.DomainEvents()...); err != nil {
		return dto.BonusResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toBonusResponse(payment, calc), nil
}
