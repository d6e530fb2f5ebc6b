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
)

func intPtr(n int) *int                         { return &n }
func decPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func fixedPlanRequest() dto.CreatePaymentPlanRequest {
	return dto.CreatePaymentPlanRequest{
		PledgeID:             "pledge-001",
		Frequency:            "MONTHLY",
		DistributionType:     "FIXED",
		TotalPlannedAmount:   decimal.NewFromInt(12000),
		StartDate:            time.Now().UTC().AddDate(0, 0, 1),
		InstallmentAmount:    decPtr(decimal.NewFromInt(1000)),
		NumberOfInstallments: intPtr(12),
	}
}

func customPlanRequest() dto.CreatePaymentPlanRequest {
	start := time.Now().UTC().AddDate(0, 0, 1)
	return dto.CreatePaymentPlanRequest{
		PledgeID:           "pledge-001",
		Frequency:          "MONTHLY",
		DistributionType:   "CUSTOM",
		TotalPlannedAmount: decimal.NewFromInt(3000),
		StartDate:          start,
		CustomInstallments: []dto.InstallmentSpecRequest{
			{Date: start.AddDate(0, 2, 0), Amount: decimal.NewFromInt(500)},
			{Date: start, Amount: decimal.NewFromInt(1000)},
			{Date: start.AddDate(0, 1, 0), Amount: decimal.NewFromInt(1500)},
		},
	}
}

func TestCreatePaymentPlan_Execute(t *testing.T) {
	pledgeRepo := func() *mockPledgeRepository {
		return &mockPledgeRepository{
			findByIDFunc: func(_ context.Context, _ string) (model.Pledge, error) { return donationPledge(), nil },
		}
	}

	t.Run("creates a fixed plan", func(t *testing.T) {
		planRepo := &mockPaymentPlanRepository{}
		publisher := &mockEventPublisher{}
		uc := usecase.NewCreatePaymentPlanUseCase(planRepo, pledgeRepo(), publisher)

		resp, err := uc.Execute(context.Background(), fixedPlanRequest())

		require.NoError(t, err)
		assert.Equal(t, "FIXED", resp.DistributionType)
		assert.Equal(t, 12, resp.NumberOfInstallments)
		assert.Equal(t, "1000.00", resp.InstallmentAmount.StringFixed(2))
		assert.Equal(t, "12000.00", resp.RemainingAmount.StringFixed(2))
		assert.Equal(t, "ACTIVE", resp.Status)
		assert.Equal(t, "USD", resp.Currency) // inherited from the pledge
		require.Len(t, planRepo.createdPlans, 1)
		assert.Empty(t, planRepo.addedInstallments)
		assert.NotEmpty(t, publisher.publishedEvents)
	})

	t.Run("rejects a fixed plan whose installments do not sum to the total", func(t *testing.T) {
		planRepo := &mockPaymentPlanRepository{}
		uc := usecase.NewCreatePaymentPlanUseCase(planRepo, pledgeRepo(), &mockEventPublisher{})

		req := fixedPlanRequest()
		req.TotalPlannedAmount = decimal.RequireFromString("12000.02")

		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
		assert.Contains(t, err.Error(), "totalPlannedAmount")
		assert.Empty(t, planRepo.createdPlans)
	})

	t.Run("creates a custom plan with a sorted schedule", func(t *testing.T) {
		planRepo := &mockPaymentPlanRepository{}
		uc := usecase.NewCreatePaymentPlanUseCase(planRepo, pledgeRepo(), &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), customPlanRequest())

		require.NoError(t, err)
		assert.Equal(t, "CUSTOM", resp.DistributionType)
		assert.Equal(t, 3, resp.NumberOfInstallments)
		require.Len(t, resp.Schedule, 3)
		assert.Equal(t, 1, resp.Schedule[0].Sequence)
		assert.Equal(t, "1000.00", resp.Schedule[0].Amount.StringFixed(2))
		assert.Equal(t, "1500.00", resp.Schedule[1].Amount.StringFixed(2))
		assert.Equal(t, "500.00", resp.Schedule[2].Amount.StringFixed(2))
		assert.True(t, resp.Schedule[0].DueDate.Before(resp.Schedule[1].DueDate))
		assert.True(t, resp.Schedule[1].DueDate.Before(resp.Schedule[2].DueDate))

		require.Len(t, planRepo.createdPlans, 1)
		require.Len(t, planRepo.addedInstallments[resp.ID], 3)
	})

	t.Run("compensates by deleting the plan when installment write fails", func(t *testing.T) {
		planRepo := &mockPaymentPlanRepository{
			addInstallmentsFunc: func(_ context.Context, _ string, _ []model.InstallmentEntry) error {
				return errDatabaseDown
			},
		}
		uc := usecase.NewCreatePaymentPlanUseCase(planRepo, pledgeRepo(), &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), customPlanRequest())

		require.Error(t, err)
		assert.False(t, apperror.IsIntegrity(err))
		assert.Contains(t, err.Error(), "add installments")
		require.Len(t, planRepo.createdPlans, 1)
		require.Len(t, planRepo.deletedPlanIDs, 1)
		assert.Equal(t, planRepo.createdPlans[0].ID(), planRepo.deletedPlanIDs[0])
	})

	t.Run("reports integrity failure when the rollback itself fails", func(t *testing.T) {
		planRepo := &mockPaymentPlanRepository{
			addInstallmentsFunc: func(_ context.Context, _ string, _ []model.InstallmentEntry) error {
				return errDatabaseDown
			},
			deleteFunc: func(_ context.Context, _ string) error {
				return errDatabaseDown
			},
		}
		publisher := &mockEventPublisher{}
		uc := usecase.NewCreatePaymentPlanUseCase(planRepo, pledgeRepo(), publisher)

		_, err := uc.Execute(context.Background(), customPlanRequest())

		require.Error(t, err)
		assert.True(t, apperror.IsIntegrity(err))
		assert.Contains(t, err.Error(), "manual reconciliation")

		// The orphaned plan is flagged for operators.
		require.Len(t, publisher.publishedEvents, 1)
		assert.Equal(t, event.TypePaymentPlanRollbackFault, publisher.publishedEvents[0].EventType())
	})

	t.Run("fails when pledge not found", func(t *testing.T) {
		uc := usecase.NewCreatePaymentPlanUseCase(&mockPaymentPlanRepository{}, &mockPledgeRepository{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), fixedPlanRequest())

		require.Error(t, err)
		assert.True(t, apperror.IsNotFound(err))
	})

	t.Run("rejects an unknown frequency", func(t *testing.T) {
		uc := usecase.NewCreatePaymentPlanUseCase(&mockPaymentPlanRepository{}, pledgeRepo(), &mockEventPublisher{})

		req := fixedPlanRequest()
		req.Frequency = "FORTNIGHTLY"

		_, err := uc.Execute(context.Background(), req)

		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})
}
