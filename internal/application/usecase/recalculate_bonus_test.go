package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givebridge/givebridge/internal/apperror"
	"github.com/givebridge/givebridge/internal/application/dto"
	"github.com/givebridge/givebridge/internal/application/usecase"
	"github.com/givebridge/givebridge/internal/domain/model"
	"github.com/givebridge/givebridge/internal/domain/service"
	"github.com/givebridge/givebridge/internal/domain/valueobject"
)

func assignedPayment(solicitorID, ruleID string) model.Payment {
	now := time.Now().UTC()
	rid := ruleID
	return model.ReconstructPayment(
		"pay-001", "pledge-001",
		decimal.NewFromInt(1000), "USD", decimal.NewFromInt(1000),
		now.AddDate(0, 0, -1),
		valueobject.PaymentStatusPending,
		&solicitorID,
		decimal.NewFromInt(5), decimal.NewFromInt(50), &rid, nil,
		2, now, now,
	)
}

func newRecalcUseCase(
	paymentRepo *mockPaymentRepository,
	calcRepo *mockBonusCalculationRepository,
	ruleRepo *mockBonusRuleRepository,
	pledgeRepo *mockPledgeRepository,
	publisher *mockEventPublisher,
) *usecase.RecalculateBonusUseCase {
	return usecase.NewRecalculateBonusUseCase(
		paymentRepo, calcRepo, ruleRepo, pledgeRepo, &mockCategoryRepository{},
		service.NewRuleMatcher(), service.NewBonusCalculator(), publisher,
	)
}

func TestRecalculateBonus_Execute(t *testing.T) {
	t.Run("recalculation with unchanged rules reproduces the same bonus", func(t *testing.T) {
		payment := assignedPayment("sol-001", "rule-001")
		paymentRepo := &mockPaymentRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Payment, error) { return payment, nil },
		}
		ruleRepo := &mockBonusRuleRepository{
			findActiveFunc: func(_ context.Context, _ string) ([]model.BonusRule, error) {
				return []model.BonusRule{fivePercentRule("rule-001", 0, time.Now().UTC())}, nil
			},
		}
		pledgeRepo := &mockPledgeRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Pledge, error) { return donationPledge(), nil },
		}

		uc := newRecalcUseCase(paymentRepo, &mockBonusCalculationRepository{}, ruleRepo, pledgeRepo, &mockEventPublisher{})

		first, err := uc.Execute(context.Background(), dto.RecalculateBonusRequest{PaymentID: "pay-001"})
		require.NoError(t, err)
		second, err := uc.Execute(context.Background(), dto.RecalculateBonusRequest{PaymentID: "pay-001"})
		require.NoError(t, err)

		assert.Equal(t, first.Payment.BonusAmount.StringFixed(2), second.Payment.BonusAmount.StringFixed(2))
		assert.Equal(t, first.Payment.BonusRuleID, second.Payment.BonusRuleID)
		assert.Equal(t, "50.00", second.Payment.BonusAmount.StringFixed(2))
		require.Len(t, paymentRepo.replacedStates, 2)
	})

	t.Run("clears bonus when rules were deactivated", func(t *testing.T) {
		payment := assignedPayment("sol-001", "rule-001")
		paymentRepo := &mockPaymentRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Payment, error) { return payment, nil },
		}
		pledgeRepo := &mockPledgeRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Pledge, error) { return donationPledge(), nil },
		}

		uc := newRecalcUseCase(paymentRepo, &mockBonusCalculationRepository{}, &mockBonusRuleRepository{}, pledgeRepo, &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.RecalculateBonusRequest{PaymentID: "pay-001"})

		require.NoError(t, err)
		assert.Equal(t, "0.00", resp.Payment.BonusAmount.StringFixed(2))
		assert.Equal(t, "0.00", resp.Payment.BonusPercentage.StringFixed(2))
		assert.Empty(t, resp.Payment.BonusRuleID)
		assert.Nil(t, resp.Calculation)
	})

	t.Run("fails when payment has no solicitor", func(t *testing.T) {
		payment := pendingPayment()
		paymentRepo := &mockPaymentRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Payment, error) { return payment, nil },
		}

		uc := newRecalcUseCase(paymentRepo, &mockBonusCalculationRepository{}, &mockBonusRuleRepository{}, &mockPledgeRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.RecalculateBonusRequest{PaymentID: "pay-001"})

		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
		assert.Empty(t, paymentRepo.replacedStates)
	})

	t.Run("rejects recalculation over a paid bonus", func(t *testing.T) {
		payment := assignedPayment("sol-001", "rule-001")
		paymentRepo := &mockPaymentRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Payment, error) { return payment, nil },
		}
		calcRepo := &mockBonusCalculationRepository{
			findByPaymentIDFunc: func(_ context.Context, paymentID string) (*model.BonusCalculation, error) {
				calc := model.ReconstructBonusCalculation(
					"calc-001", paymentID, "rule-001",
					decimal.NewFromInt(5), decimal.NewFromInt(50),
					true, time.Now().UTC(),
				)
				return &calc, nil
			},
		}

		uc := newRecalcUseCase(paymentRepo, calcRepo, &mockBonusRuleRepository{}, &mockPledgeRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.RecalculateBonusRequest{PaymentID: "pay-001"})

		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
		assert.Empty(t, paymentRepo.replacedStates)
	})

	t.Run("fails when replace write fails", func(t *testing.T) {
		payment := assignedPayment("sol-001", "rule-001")
		paymentRepo := &mockPaymentRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Payment, error) { return payment, nil },
			replaceFunc: func(_ context.Context, _ model.Payment, _ *model.BonusCalculation) error {
				return errDatabaseDown
			},
		}
		pledgeRepo := &mockPledgeRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Pledge, error) { return donationPledge(), nil },
		}

		uc := newRecalcUseCase(paymentRepo, &mockBonusCalculationRepository{}, &mockBonusRuleRepository{}, pledgeRepo, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.RecalculateBonusRequest{PaymentID: "pay-001"})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "replace bonus state")
	})
}
