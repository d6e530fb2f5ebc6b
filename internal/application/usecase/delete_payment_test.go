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
	"github.com/givebridge/givebridge/internal/domain/event"
	"github.com/givebridge/givebridge/internal/domain/model"
	"github.com/givebridge/givebridge/internal/domain/valueobject"
)

func completedPayment() model.Payment {
	now := time.Now().UTC()
	sol := "sol-001"
	return model.ReconstructPayment(
		"pay-002", "pledge-001",
		decimal.NewFromInt(500), "USD", decimal.NewFromInt(500),
		now.AddDate(0, 0, -7),
		valueobject.PaymentStatusCompleted,
		&sol, decimal.Zero, decimal.Zero, nil, nil,
		1, now, now,
	)
}

func TestDeletePayment_Execute(t *testing.T) {
	t.Run("deletes a pending payment", func(t *testing.T) {
		payment := pendingPayment()
		paymentRepo := &mockPaymentRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Payment, error) { return payment, nil },
		}
		publisher := &mockEventPublisher{}

		uc := usecase.NewDeletePaymentUseCase(paymentRepo, &mockBonusCalculationRepository{}, publisher)

		err := uc.Execute(context.Background(), dto.DeletePaymentRequest{PaymentID: "pay-001"})

		require.NoError(t, err)
		require.Len(t, paymentRepo.deletedPayments, 1)
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, event.TypePaymentDeleted, publisher.publishedEvents[0].EventType())
	})

	t.Run("refuses to delete a completed payment", func(t *testing.T) {
		payment := completedPayment()
		paymentRepo := &mockPaymentRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Payment, error) { return payment, nil },
		}

		uc := usecase.NewDeletePaymentUseCase(paymentRepo, &mockBonusCalculationRepository{}, &mockEventPublisher{})

		err := uc.Execute(context.Background(), dto.DeletePaymentRequest{PaymentID: "pay-002"})

		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
		assert.Empty(t, paymentRepo.deletedPayments)
	})

	t.Run("refuses to delete a payment with a paid bonus", func(t *testing.T) {
		payment := pendingPayment()
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

		uc := usecase.NewDeletePaymentUseCase(paymentRepo, calcRepo, &mockEventPublisher{})

		err := uc.Execute(context.Background(), dto.DeletePaymentRequest{PaymentID: "pay-001"})

		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
		assert.Empty(t, paymentRepo.deletedPayments)
	})

	t.Run("allows deletion when the bonus exists but is unpaid", func(t *testing.T) {
		payment := pendingPayment()
		paymentRepo := &mockPaymentRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Payment, error) { return payment, nil },
		}
		calcRepo := &mockBonusCalculationRepository{
			findByPaymentIDFunc: func(_ context.Context, paymentID string) (*model.BonusCalculation, error) {
				calc := model.ReconstructBonusCalculation(
					"calc-001", paymentID, "rule-001",
					decimal.NewFromInt(5), decimal.NewFromInt(50),
					false, time.Now().UTC(),
				)
				return &calc, nil
			},
		}

		uc := usecase.NewDeletePaymentUseCase(paymentRepo, calcRepo, &mockEventPublisher{})

		err := uc.Execute(context.Background(), dto.DeletePaymentRequest{PaymentID: "pay-001"})

		require.NoError(t, err)
		require.Len(t, paymentRepo.deletedPayments, 1)
	})

	t.Run("fails when payment not found", func(t *testing.T) {
		uc := usecase.NewDeletePaymentUseCase(&mockPaymentRepository{}, &mockBonusCalculationRepository{}, &mockEventPublisher{})

		err := uc.Execute(context.Background(), dto.DeletePaymentRequest{PaymentID: "missing"})

		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})
}
