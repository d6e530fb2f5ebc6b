package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/givebridge/givebridge/internal/apperror"
	"github.com/givebridge/givebridge/internal/domain/model"
	"github.com/givebridge/givebridge/internal/domain/valueobject"
)

func planIntPtr(n int) *int {
	return &n
}

func planDecPtr(d decimal.Decimal) *decimal.Decimal {
	return &d
}

func newFixedPlan(t *testing.T, total, installment decimal.Decimal, count int) (model.PaymentPlan, error) {
	t.Helper()
	now := time.Now().UTC()
	return model.NewFixedPaymentPlan(
		"pledge-001", valueobject.PlanFrequencyMonthly,
		total, "USD", decimal.NewFromInt(1),
		now.AddDate(0, 0, 1), nil,
		planDecPtr(installment), planIntPtr(count),
		now,
	)
}

func TestNewFixedPaymentPlan(t *testing.T) {
	t.Run("accepts installments that sum exactly to the total", func(t *testing.T) {
		plan, err := newFixedPlan(t, decimal.NewFromInt(12000), decimal.NewFromInt(1000), 12)

		require.NoError(t, err)
		assert.Equal(t, 12, plan.NumberOfInstallments())
		assert.Equal(t, "1000.00", plan.InstallmentAmount().StringFixed(2))
		assert.Equal(t, "12000.00", plan.RemainingAmount().StringFixed(2))
		assert.Equal(t, "0.00", plan.TotalPaid().StringFixed(2))
		assert.True(t, plan.Status().Equal(valueobject.PlanStatusActive))
		assert.Empty(t, plan.Schedule())

		// End date is start plus eleven monthly steps.
		assert.Equal(t, plan.StartDate().AddDate(0, 11, 0), plan.EndDate())
	})

	t.Run("normalises plan dates to midnight UTC", func(t *testing.T) {
		now := time.Now().UTC()
		start := time.Date(2026, 9, 15, 8, 11, 44, 950000000, time.UTC)
		next := start.AddDate(0, 1, 0)

		plan, err := model.NewFixedPaymentPlan(
			"pledge-001", valueobject.PlanFrequencyMonthly,
			decimal.NewFromInt(12000), "USD", decimal.NewFromInt(1),
			start, &next,
			planDecPtr(decimal.NewFromInt(1000)), planIntPtr(12),
			now,
		)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), plan.StartDate())
		assert.Equal(t, plan.StartDate().AddDate(0, 11, 0), plan.EndDate())
		assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), plan.NextPaymentDate())
	})

	t.Run("accepts a one-cent rounding difference", func(t *testing.T) {
		// 3 x 3333.33 = 9999.99 against a 10000 total.
		_, err := newFixedPlan(t, decimal.NewFromInt(10000), decimal.RequireFromString("3333.33"), 3)
		require.NoError(t, err)
	})

	t.Run("rejects a sum off by more than one cent", func(t *testing.T) {
		_, err := newFixedPlan(t, decimal.RequireFromString("12000.02"), decimal.NewFromInt(1000), 12)

		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
		assert.Contains(t, err.Error(), "totalPlannedAmount")
	})

	t.Run("requires installment amount and count", func(t *testing.T) {
		now := time.Now().UTC()
		_, err := model.NewFixedPaymentPlan(
			"pledge-001", valueobject.PlanFrequencyMonthly,
			decimal.NewFromInt(12000), "USD", decimal.NewFromInt(1),
			now.AddDate(0, 0, 1), nil,
			nil, planIntPtr(12),
			now,
		)
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))

		_, err = model.NewFixedPaymentPlan(
			"pledge-001", valueobject.PlanFrequencyMonthly,
			decimal.NewFromInt(12000), "USD", decimal.NewFromInt(1),
			now.AddDate(0, 0, 1), nil,
			planDecPtr(decimal.NewFromInt(1000)), nil,
			now,
		)
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("rejects an invalid currency", func(t *testing.T) {
		now := time.Now().UTC()
		_, err := model.NewFixedPaymentPlan(
			"pledge-001", valueobject.PlanFrequencyMonthly,
			decimal.NewFromInt(12000), "usd", decimal.NewFromInt(1),
			now.AddDate(0, 0, 1), nil,
			planDecPtr(decimal.NewFromInt(1000)), planIntPtr(12),
			now,
		)
		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestNewCustomPaymentPlan(t *testing.T) {
	now := time.Now().UTC()
	start := now.AddDate(0, 0, 1)

	specs := func() []model.InstallmentSpec {
		return []model.InstallmentSpec{
			{Date: start.AddDate(0, 2, 0), Amount: decimal.NewFromInt(500)},
			{Date: start, Amount: decimal.NewFromInt(1000)},
			{Date: start.AddDate(0, 1, 0), Amount: decimal.NewFromInt(1500)},
		}
	}

	t.Run("builds a date-ordered schedule", func(t *testing.T) {
		plan, err := model.NewCustomPaymentPlan(
			"pledge-001", valueobject.PlanFrequencyMonthly,
			decimal.NewFromInt(3000), "USD", decimal.NewFromInt(1),
			start, nil, specs(), now, now,
		)

		require.NoError(t, err)
		schedule := plan.Schedule()
		require.Len(t, schedule, 3)
		assert.Equal(t, 1, schedule[0].Sequence)
		assert.Equal(t, "1000", schedule[0].Amount.String())
		assert.Equal(t, "1500", schedule[1].Amount.String())
		assert.Equal(t, "500", schedule[2].Amount.String())
		assert.True(t, schedule[0].DueDate.Before(schedule[1].DueDate))
		assert.Equal(t, 3, plan.NumberOfInstallments())
		assert.Equal(t, schedule[2].DueDate, plan.EndDate())
		assert.Equal(t, "1000.00", plan.InstallmentAmount().StringFixed(2))
	})

	t.Run("rejects duplicate installment dates", func(t *testing.T) {
		dup := specs()
		dup[2].Date = dup[0].Date

		_, err := model.NewCustomPaymentPlan(
			"pledge-001", valueobject.PlanFrequencyMonthly,
			decimal.NewFromInt(3000), "USD", decimal.NewFromInt(1),
			start, nil, dup, now, now,
		)

		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
		assert.Contains(t, err.Error(), "duplicate")
	})

	t.Run("rejects installment dates in the past", func(t *testing.T) {
		past := specs()
		past[1].Date = now.AddDate(0, 0, -2)

		_, err := model.NewCustomPaymentPlan(
			"pledge-001", valueobject.PlanFrequencyMonthly,
			decimal.NewFromInt(3000), "USD", decimal.NewFromInt(1),
			start, nil, past, now, now,
		)

		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
		assert.Contains(t, err.Error(), "past")
	})

	t.Run("rejects amounts that do not sum to the total", func(t *testing.T) {
		_, err := model.NewCustomPaymentPlan(
			"pledge-001", valueobject.PlanFrequencyMonthly,
			decimal.NewFromInt(3500), "USD", decimal.NewFromInt(1),
			start, nil, specs(), now, now,
		)

		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
		assert.Contains(t, err.Error(), "totalPlannedAmount")
	})

	t.Run("rejects an empty installment list", func(t *testing.T) {
		_, err := model.NewCustomPaymentPlan(
			"pledge-001", valueobject.PlanFrequencyMonthly,
			decimal.NewFromInt(3000), "USD", decimal.NewFromInt(1),
			start, nil, nil, now, now,
		)

		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})

	t.Run("rejects a non-positive installment amount", func(t *testing.T) {
		bad := specs()
		bad[0].Amount = decimal.Zero

		_, err := model.NewCustomPaymentPlan(
			"pledge-001", valueobject.PlanFrequencyMonthly,
			decimal.NewFromInt(3000), "USD", decimal.NewFromInt(1),
			start, nil, bad, now, now,
		)

		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})
}

func TestPaymentPlan_StatusTransitions(t *testing.T) {
	now := time.Now().UTC()

	activePlan := func(t *testing.T) model.PaymentPlan {
		plan, err := newFixedPlan(t, decimal.NewFromInt(12000), decimal.NewFromInt(1000), 12)
		require.NoError(t, err)
		return plan.ClearEvents()
	}

	t.Run("pause then resume round-trips", func(t *testing.T) {
		plan := activePlan(t)

		paused, err := plan.Pause(now)
		require.NoError(t, err)
		assert.True(t, paused.Status().Equal(valueobject.PlanStatusPaused))

		resumed, err := paused.Resume(now)
		require.NoError(t, err)
		assert.True(t, resumed.Status().Equal(valueobject.PlanStatusActive))
	})

	t.Run("cannot resume an active plan", func(t *testing.T) {
		_, err := activePlan(t).Resume(now)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("cancel works from active and paused", func(t *testing.T) {
		cancelled, err := activePlan(t).Cancel(now)
		require.NoError(t, err)
		assert.True(t, cancelled.Status().Equal(valueobject.PlanStatusCancelled))

		paused, err := activePlan(t).Pause(now)
		require.NoError(t, err)
		cancelled, err = paused.Cancel(now)
		require.NoError(t, err)
		assert.True(t, cancelled.Status().Equal(valueobject.PlanStatusCancelled))
	})

	t.Run("cannot cancel twice", func(t *testing.T) {
		cancelled, err := activePlan(t).Cancel(now)
		require.NoError(t, err)

		_, err = cancelled.Cancel(now)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestPaymentPlan_ApplyInstallmentPayment(t *testing.T) {
	now := time.Now().UTC()

	t.Run("tracks paid installments and remaining amount", func(t *testing.T) {
		plan, err := newFixedPlan(t, decimal.NewFromInt(3000), decimal.NewFromInt(1000), 3)
		require.NoError(t, err)
		plan = plan.ClearEvents()

		plan, err = plan.ApplyInstallmentPayment(decimal.NewFromInt(1000), now)
		require.NoError(t, err)
		assert.Equal(t, 1, plan.InstallmentsPaid())
		assert.Equal(t, "2000.00", plan.RemainingAmount().StringFixed(2))
		assert.True(t, plan.Status().Equal(valueobject.PlanStatusActive))
		assert.Equal(t, plan.StartDate().AddDate(0, 1, 0), plan.NextPaymentDate())
	})

	t.Run("completes after the final installment", func(t *testing.T) {
		plan, err := newFixedPlan(t, decimal.NewFromInt(2000), decimal.NewFromInt(1000), 2)
		require.NoError(t, err)
		plan = plan.ClearEvents()

		plan, err = plan.ApplyInstallmentPayment(decimal.NewFromInt(1000), now)
		require.NoError(t, err)
		plan, err = plan.ApplyInstallmentPayment(decimal.NewFromInt(1000), now)
		require.NoError(t, err)

		assert.True(t, plan.Status().Equal(valueobject.PlanStatusCompleted))
		assert.Equal(t, "0.00", plan.RemainingAmount().StringFixed(2))
		assert.Equal(t, "2000.00", plan.TotalPaid().StringFixed(2))
	})

	t.Run("completes early when the full amount arrives at once", func(t *testing.T) {
		plan, err := newFixedPlan(t, decimal.NewFromInt(2000), decimal.NewFromInt(1000), 2)
		require.NoError(t, err)
		plan = plan.ClearEvents()

		plan, err = plan.ApplyInstallmentPayment(decimal.NewFromInt(2000), now)
		require.NoError(t, err)

		assert.True(t, plan.Status().Equal(valueobject.PlanStatusCompleted))
	})

	t.Run("rejects payments on a paused plan", func(t *testing.T) {
		plan, err := newFixedPlan(t, decimal.NewFromInt(2000), decimal.NewFromInt(1000), 2)
		require.NoError(t, err)
		plan, err = plan.Pause(now)
		require.NoError(t, err)

		_, err = plan.ApplyInstallmentPayment(decimal.NewFromInt(1000), now)

		require.Error(t, err)
		assert.True(t, apperror.IsConflict(err))
	})

	t.Run("rejects a non-positive amount", func(t *testing.T) {
		plan, err := newFixedPlan(t, decimal.NewFromInt(2000), decimal.NewFromInt(1000), 2)
		require.NoError(t, err)

		_, err = plan.ApplyInstallmentPayment(decimal.Zero, now)

		require.Error(t, err)
		assert.True(t, apperror.IsValidation(err))
	})
}
