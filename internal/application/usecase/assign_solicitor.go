package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/givebridge/givebridge/internal/apperror"
	"github.com/givebridge/givebridge/internal/application/dto"
	"github.com/givebridge/givebridge/internal/domain/model"
	"github.com/givebridge/givebridge/internal/domain/port"
	"github.com/givebridge/givebridge/internal/domain/service"
)

// AssignSolicitorUseCase credits a payment to a solicitor and computes the
// bonus in the same logical operation.
type AssignSolicitorUseCase struct {
	paymentRepo port.PaymentRepository
	calcRepo    port.BonusCalculationRepository
	engine      *bonusEngine
	publisher   port.EventPublisher
}

// NewAssignSolicitorUseCase wires dependencies.
func NewAssignSolicitorUseCase(
	paymentRepo port.PaymentRepository,
	calcRepo port.BonusCalculationRepository,
	ruleRepo port.BonusRuleRepository,
	pledgeRepo port.PledgeRepository,
	categoryRepo port.CategoryRepository,
	matcher *service.RuleMatcher,
	calculator *service.BonusCalculator,
	publisher port.EventPublisher,
) *AssignSolicitorUseCase {
	return &AssignSolicitorUseCase{
		paymentRepo: paymentRepo,
		calcRepo:    calcRepo,
		engine:      newBonusEngine(ruleRepo, pledgeRepo, categoryRepo, matcher, calculator),
		publisher:   publisher,
	}
}

// Execute assigns the solicitor, matches a rule and replaces the payment's
// bonus state atomically.
func (uc *AssignSolicitorUseCase) Execute(
	ctx context.Context,
	req dto.AssignSolicitorRequest,
) (dto.BonusResponse, error) {
	now := time.Now().UTC()

	// 1. Retrieve the payment.
	payment, err := uc.paymentRepo.FindByID(ctx, req.PaymentID)
	if err != nil {
		return dto.BonusResponse{}, fmt.Errorf("find payment: %w", err)
	}

	// 2. A paid-out bonus is frozen; reassignment would rewrite it.
	if err := ensureBonusNotPaid(ctx, uc.calcRepo, payment.ID()); err != nil {
		return dto.BonusResponse{}, err
	}

	// 3. Assign the solicitor.
	payment, err = payment.AssignSolicitor(req.SolicitorID, now)
	if err != nil {
		return dto.BonusResponse{}, err
	}

	// 4. Match and apply the bonus.
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

// ---------------------------------------------------------------------------
// Shared bonus workflow
// ---------------------------------------------------------------------------

// bonusEngine runs the match-and-calculate pipeline shared by assignment and
// recalculation.
type bonusEngine struct {
	ruleRepo     port.BonusRuleRepository
	pledgeRepo   port.PledgeRepository
	categoryRepo port.CategoryRepository
	matcher      *service.RuleMatcher
	calculator   *service.BonusCalculator
}

func newBonusEngine(
	ruleRepo port.BonusRuleRepository,
	pledgeRepo port.PledgeRepository,
	categoryRepo port.CategoryRepository,
	matcher *service.RuleMatcher,
	calculator *service.BonusCalculator,
) *bonusEngine {
	return &bonusEngine{
		ruleRepo:     ruleRepo,
		pledgeRepo:   pledgeRepo,
		categoryRepo: categoryRepo,
		matcher:      matcher,
		calculator:   calculator,
	}
}

// apply evaluates the live rules against the payment and returns the payment
// with its bonus projection rewritten, plus the new calculation. The
// calculation is nil when no rule matched or the matched rule yields a zero
// amount; in both cases the bonus is cleared.
func (e *bonusEngine) apply(
	ctx context.Context,
	payment model.Payment,
	now time.Time,
) (model.Payment, *model.BonusCalculation, error) {
	if payment.SolicitorID() == nil {
		return payment.ClearBonus(now), nil, nil
	}

	pledge, err := e.pledgeRepo.FindByID(ctx, payment.PledgeID())
	if err != nil {
		return model.Payment{}, nil, fmt.Errorf("find pledge: %w", err)
	}
	category, err := e.categoryRepo.FindByID(ctx, pledge.CategoryID())
	if err != nil {
		return model.Payment{}, nil, fmt.Errorf("find category: %w", err)
	}

	rules, err := e.ruleRepo.FindActiveBySolicitor(ctx, *payment.SolicitorID())
	if err != nil {
		return model.Payment{}, nil, fmt.Errorf("find bonus rules: %w", err)
	}

	match := e.matcher.BestMatch(rules, service.MatchQuery{
		AmountUSD:   payment.AmountUSD(),
		PaymentDate: payment.PaymentDate(),
		IsDonation:  service.IsDonationCategory(category.Name),
	})
	if match == nil {
		return payment.ClearBonus(now), nil, nil
	}

	amount := e.calculator.Calculate(payment.AmountUSD(), match.BonusPercentage())
	if !amount.IsPositive() {
		// A matched rule that yields nothing, e.g. a zero percentage,
		// stores no calculation row.
		return payment.ClearBonus(now), nil, nil
	}
	payment, err = payment.ApplyBonus(match.ID(), match.BonusPercentage(), amount, now)
	if err != nil {
		return model.Payment{}, nil, err
	}

	calc := model.NewBonusCalculation(payment.ID(), match.ID(), match.BonusPercentage(), amount, now)
	return payment, &calc, nil
}

// ensureBonusNotPaid rejects a rewrite of a bonus that has already been paid
// out to the solicitor.
func ensureBonusNotPaid(ctx context.Context, calcRepo port.BonusCalculationRepository, paymentID string) error {
	existing, err := calcRepo.FindByPaymentID(ctx, paymentID)
	if err != nil {
		return fmt.Errorf("find bonus calculation: %w", err)
	}
	if existing != nil && existing.IsPaid() {
		return apperror.Conflict("bonus for payment %s has been paid out and cannot be recalculated", paymentID)
	}
	return nil
}

func toBonusResponse(payment model.Payment, calc *model.BonusCalculation) dto.BonusResponse {
	resp := dto.BonusResponse{Payment: toPaymentResponse(payment)}
	if calc != nil {
		c := toCalculationResponse(*calc)
		resp.Calculation = &c
	}
	return resp
}
