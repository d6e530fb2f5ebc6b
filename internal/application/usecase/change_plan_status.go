package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/givebridge/givebridge/internal/apperror"
	"github.com/givebridge/givebridge/internal/application/dto"
	"github.com/givebridge/givebridge/internal/domain/model"
	"github.com/givebridge/givebridge/internal/domain/port"
	"github.com/givebridge/givebridge/internal/domain/valueobject"
)

// PausePaymentPlanUseCase suspends an active plan.
type PausePaymentPlanUseCase struct {
	planRepo  port.PaymentPlanRepository
	publisher port.EventPublisher
}

// NewPausePaymentPlanUseCase wires dependencies.
func NewPausePaymentPlanUseCase(planRepo port.PaymentPlanRepository, publisher port.EventPublisher) *PausePaymentPlanUseCase {
	return &PausePaymentPlanUseCase{planRepo: planRepo, publisher: publisher}
}

// Execute pauses the plan.
func (uc *PausePaymentPlanUseCase) Execute(ctx context.Context, req dto.ChangePlanStatusRequest) (dto.PaymentPlanResponse, error) {
	return transitionPlan(ctx, uc.planRepo, uc.publisher, req.PlanID, "pause",
		func(p model.PaymentPlan, now time.Time) (model.PaymentPlan, error) { return p.Pause(now) })
}

// ResumePaymentPlanUseCase reactivates a paused plan.
type ResumePaymentPlanUseCase struct {
	planRepo  port.PaymentPlanRepository
	publisher port.EventPublisher
}

// NewResumePaymentPlanUseCase wires dependencies.
func NewResumePaymentPlanUseCase(planRepo port.PaymentPlanRepository, publisher port.EventPublisher) *ResumePaymentPlanUseCase {
	return &ResumePaymentPlanUseCase{planRepo: planRepo, publisher: publisher}
}

// Execute resumes the plan.
func (uc *ResumePaymentPlanUseCase) Execute(ctx context.Context, req dto.ChangePlanStatusRequest) (dto.PaymentPlanResponse, error) {
	return transitionPlan(ctx, uc.planRepo, uc.publisher, req.PlanID, "resume",
		func(p model.PaymentPlan, now time.Time) (model.PaymentPlan, error) { return p.Resume(now) })
}

// CancelPaymentPlanUseCase terminates a plan before completion.
type CancelPaymentPlanUseCase struct {
	planRepo  port.PaymentPlanRepository
	publisher port.EventPublisher
}

// NewCancelPaymentPlanUseCase wires dependencies.
func NewCancelPaymentPlanUseCase(planRepo port.PaymentPlanRepository, publisher port.EventPublisher) *CancelPaymentPlanUseCase {
	return &CancelPaymentPlanUseCase{planRepo: planRepo, publisher: publisher}
}

// Execute cancels the plan.
func (uc *CancelPaymentPlanUseCase) Execute(ctx context.Context, req dto.ChangePlanStatusRequest) (dto.PaymentPlanResponse, error) {
	return transitionPlan(ctx, uc.planRepo, uc.publisher, req.PlanID, "cancel",
		func(p model.PaymentPlan, now time.Time) (model.PaymentPlan, error) { return p.Cancel(now) })
}

// transitionPlan loads a plan, applies a status transition and persists the
// result. An invalid transition surfaces as a conflict naming the current
// status.
func transitionPlan(
	ctx context.Context,
	planRepo port.PaymentPlanRepository,
	publisher port.EventPublisher,
	planID, verb string,
	transition func(model.PaymentPlan, time.Time) (model.PaymentPlan, error),
) (dto.PaymentPlanResponse, error) {
	now := time.Now().UTC()

	plan, err := planRepo.FindByID(ctx, planID)
	if err != nil {
		return dto.PaymentPlanResponse{}, fmt.Errorf("find payment plan: %w", err)
	}

	plan, err = transition(plan, now)
	if err != nil {
		if errors.Is(err, valueobject.ErrInvalidStatusTransition) {
			return dto.PaymentPlanResponse{}, apperror.Conflict(
				"cannot %s payment plan %s while it is %s", verb, planID, plan.Status())
		}
		return dto.PaymentPlanResponse{}, err
	}

	if err := planRepo.Save(ctx, plan); err != nil {
		return dto.PaymentPlanResponse{}, fmt.Errorf("save payment plan: %w", err)
	}

	if err := publisher.Publish(ctx, plan.DomainEvents()...); err != nil {
		return dto.PaymentPlanResponse{}, fmt.Errorf("publish events: %w", err)
	}
	return toPlanResponse(plan), nil
}
