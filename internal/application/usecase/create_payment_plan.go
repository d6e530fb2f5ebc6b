package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/givebridge/givebridge/internal/apperror"
	"github.com/givebridge/givebridge/internal/application/dto"
	"github.com/givebridge/givebridge/internal/domain/event"
	"github.com/givebridge/givebridge/internal/domain/model"
	"github.com/givebridge/givebridge/internal/domain/port"
	"github.com/givebridge/givebridge/internal/domain/valueobject"
)

// CreatePaymentPlanUseCase validates and stores a new payment plan. The plan
// row and its installment rows are two writes; when the second fails the
// first is compensated with a delete so no plan ever exists half-written.
type CreatePaymentPlanUseCase struct {
	planRepo   port.PaymentPlanRepository
	pledgeRepo port.PledgeRepository
	publisher  port.EventPublisher
}

// NewCreatePaymentPlanUseCase wires dependencies.
func NewCreatePaymentPlanUseCase(
	planRepo port.PaymentPlanRepository,
	pledgeRepo port.PledgeRepository,
	publisher port.EventPublisher,
) *CreatePaymentPlanUseCase {
	return &CreatePaymentPlanUseCase{
		planRepo:   planRepo,
		pledgeRepo: pledgeRepo,
		publisher:  publisher,
	}
}

// Execute creates a payment plan for a pledge.
func (uc *CreatePaymentPlanUseCase) Execute(
	ctx context.Context,
	req dto.CreatePaymentPlanRequest,
) (dto.PaymentPlanResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the pledge; it supplies the currency default and the
	// frozen exchange rate.
	pledge, err := uc.pledgeRepo.FindByID(ctx, req.PledgeID)
	if err != nil {
		return dto.PaymentPlanResponse{}, fmt.Errorf("find pledge: %w", err)
	}

	frequency, err := valueobject.NewPlanFrequency(req.Frequency)
	if err != nil {
		return dto.PaymentPlanResponse{}, apperror.Validation("frequency", "%v", err)
	}
	distribution, err := valueobject.NewDistributionType(req.DistributionType)
	if err != nil {
		return dto.PaymentPlanResponse{}, apperror.Validation("distributionType", "%v", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = pledge.Currency()
	}

	// 2. Build and validate the plan.
	var plan model.PaymentPlan
	if distribution.IsCustom() {
		specs := make([]model.InstallmentSpec, 0, len(req.CustomInstallments))
		for _, s := range req.CustomInstallments {
			specs = append(specs, model.InstallmentSpec{
				Date:   s.Date,
				Amount: s.Amount,
				Notes:  s.Notes,
			})
		}
		plan, err = model.NewCustomPaymentPlan(
			pledge.ID(), frequency, req.TotalPlannedAmount, currency,
			pledge.ExchangeRate(), req.StartDate, req.NextPaymentDate,
			specs, now, now,
		)
	} else {
		plan, err = model.NewFixedPaymentPlan(
			pledge.ID(), frequency, req.TotalPlannedAmount, currency,
			pledge.ExchangeRate(), req.StartDate, req.NextPaymentDate,
			req.InstallmentAmount, req.NumberOfInstallments, now,
		)
	}
	if err != nil {
		return dto.PaymentPlanResponse{}, err
	}

	// 3. Persist the plan row.
	if err := uc.planRepo.Create(ctx, plan); err != nil {
		return dto.PaymentPlanResponse{}, fmt.Errorf("create payment plan: %w", err)
	}

	// 4. Persist installment rows, compensating on failure.
	if entries := plan.Schedule(); len(entries) > 0 {
		if err := uc.planRepo.AddInstallments(ctx, plan.ID(), entries); err != nil {
			return dto.PaymentPlanResponse{}, uc.compensate(ctx, plan, err)
		}
	}

	// 5. Publish events.
	if err := uc.publisher.Publish(ctx, plan.DomainEvents()...); err != nil {
		return dto.PaymentPlanResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toPlanResponse(plan), nil
}

// compensate deletes the already-created plan row after an installment write
// failure. When the delete itself fails the plan is orphaned; that is
// surfaced as an integrity error carrying both causes, plus a rollback event
// for operators.
func (uc *CreatePaymentPlanUseCase) compensate(ctx context.Context, plan model.PaymentPlan, cause error) error {
	if delErr := uc.planRepo.Delete(ctx, plan.ID()); delErr != nil {
		// Best effort; the integrity error is the primary signal.
		_ = uc.publisher.Publish(ctx, event.NewPaymentPlanRollbackFailed(
			plan.ID(), plan.PledgeID(), cause.Error(),
		))
		return apperror.Integrity("create payment plan", cause, delErr)
	}
	return fmt.Errorf("add installments: %w", cause)
}
