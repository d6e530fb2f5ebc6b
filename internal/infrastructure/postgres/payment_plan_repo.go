package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/givebridge/givebridge/internal/apperror"
	"github.com/givebridge/givebridge/internal/domain/model"
	"github.com/givebridge/givebridge/internal/domain/valueobject"
	pgshared "github.com/givebridge/givebridge/pkg/postgres"
)

// PaymentPlanRepo implements port.PaymentPlanRepository. Create and
// AddInstallments are intentionally separate statements; the create use case
// compensates with Delete when the installment write fails.
type PaymentPlanRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentPlanRepo creates a new PostgreSQL-backed payment plan repository.
func NewPaymentPlanRepo(pool *pgxpool.Pool) *PaymentPlanRepo {
	return &PaymentPlanRepo{pool: pool}
}

const planColumns = `
	id, pledge_id, frequency, distribution_type, total_planned_amount,
	currency, exchange_rate, installment_amount, number_of_installments,
	start_date, end_date, next_payment_date, installments_paid,
	total_paid, remaining_amount, status, version, created_at, updated_at
`

// Create inserts a new plan row. A duplicate ID is a conflict.
func (r *PaymentPlanRepo) Create(ctx context.Context, plan model.PaymentPlan) error {
	query := `
		INSERT INTO payment_plans (` + planColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		ON CONFLICT (id) DO NOTHING
	`
	tag, err := r.pool.Exec(ctx, query, planArgs(plan)...)
	if err != nil {
		return fmt.Errorf("create payment plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.Conflict("payment plan %s already exists", plan.ID())
	}
	return nil
}

// AddInstallments inserts the schedule rows of a custom plan.
func (r *PaymentPlanRepo) AddInstallments(ctx context.Context, planID string, entries []model.InstallmentEntry) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		for _, e := range entries {
			if _, err := tx.Exec(ctx, `
				INSERT INTO plan_installments (plan_id, sequence, due_date, amount, currency, notes)
				VALUES ($1,$2,$3,$4,$5,$6)`,
				planID, e.Sequence, e.DueDate, e.Amount, e.Currency, e.Notes,
			); err != nil {
				return fmt.Errorf("insert installment %d: %w", e.Sequence, err)
			}
		}
		return nil
	})
}

// Delete removes a plan and its installments.
func (r *PaymentPlanRepo) Delete(ctx context.Context, planID string) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM plan_installments WHERE plan_id = $1`, planID,
		); err != nil {
			return fmt.Errorf("delete installments: %w", err)
		}
		if _, err := tx.Exec(ctx,
			`DELETE FROM payment_plans WHERE id = $1`, planID,
		); err != nil {
			return fmt.Errorf("delete payment plan: %w", err)
		}
		return nil
	})
}

// Save persists plan state changes (upsert by ID with optimistic locking).
func (r *PaymentPlanRepo) Save(ctx context.Context, plan model.PaymentPlan) error {
	query := `
		INSERT INTO payment_plans (` + planColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19)
		ON CONFLICT (id) DO UPDATE SET
			next_payment_date = EXCLUDED.next_payment_date,
			installments_paid = EXCLUDED.installments_paid,
			total_paid        = EXCLUDED.total_paid,
			remaining_amount  = EXCLUDED.remaining_amount,
			status            = EXCLUDED.status,
			version           = payment_plans.version + 1,
			updated_at        = EXCLUDED.updated_at
		WHERE payment_plans.version = $17
	`
	tag, err := r.pool.Exec(ctx, query, planArgs(plan)...)
	if err != nil {
		return fmt.Errorf("save payment plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.Conflict("payment plan %s was modified concurrently", plan.ID())
	}
	return nil
}

// FindByID retrieves a plan and its schedule.
func (r *PaymentPlanRepo) FindByID(ctx context.Context, id string) (model.PaymentPlan, error) {
	query := `SELECT ` + planColumns + ` FROM payment_plans WHERE id = $1`

	var (
		pid, pledgeID                 string
		frequencyStr, distributionStr string
		totalPlannedAmount            decimal.Decimal
		currency                      string
		exchangeRate, installmentAmt  decimal.Decimal
		numberOfInstallments          int
		startDate, endDate, nextDate  time.Time
		installmentsPaid              int
		totalPaid, remainingAmount    decimal.Decimal
		statusStr                     string
		version                       int
		createdAt, updatedAt          time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&pid, &pledgeID, &frequencyStr, &distributionStr, &totalPlannedAmount,
		&currency, &exchangeRate, &installmentAmt, &numberOfInstallments,
		&startDate, &endDate, &nextDate, &installmentsPaid,
		&totalPaid, &remainingAmount, &statusStr, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.PaymentPlan{}, notFoundOr(err, "payment plan", id)
	}

	frequency, err := valueobject.NewPlanFrequency(frequencyStr)
	if err != nil {
		return model.PaymentPlan{}, fmt.Errorf("parse frequency: %w", err)
	}
	distribution, err := valueobject.NewDistributionType(distributionStr)
	if err != nil {
		return model.PaymentPlan{}, fmt.Errorf("parse distribution type: %w", err)
	}
	status, err := valueobject.NewPlanStatus(statusStr)
	if err != nil {
		return model.PaymentPlan{}, fmt.Errorf("parse plan status: %w", err)
	}

	var schedule []model.InstallmentEntry
	if distribution.IsCustom() {
		schedule, err = r.loadSchedule(ctx, id)
		if err != nil {
			return model.PaymentPlan{}, err
		}
	}

	return model.ReconstructPaymentPlan(
		pid, pledgeID, frequency, distribution,
		totalPlannedAmount, currency, exchangeRate,
		installmentAmt, numberOfInstallments,
		startDate, endDate, nextDate,
		installmentsPaid, totalPaid, remainingAmount,
		status, schedule, version, createdAt, updatedAt,
	), nil
}

func (r *PaymentPlanRepo) loadSchedule(ctx context.Context, planID string) ([]model.InstallmentEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT sequence, due_date, amount, currency, notes
		FROM plan_installments
		WHERE plan_id = $1
		ORDER BY sequence`, planID)
	if err != nil {
		return nil, fmt.Errorf("query installments: %w", err)
	}
	defer rows.Close()

	var schedule []model.InstallmentEntry
	for rows.Next() {
		var e model.InstallmentEntry
		if err := rows.Scan(&e.Sequence, &e.DueDate, &e.Amount, &e.Currency, &e.Notes); err != nil {
			return nil, fmt.Errorf("scan installment: %w", err)
		}
		schedule = append(schedule, e)
	}
	return schedule, rows.Err()
}

func planArgs(p model.PaymentPlan) []any {
	return []any{
		p.ID(), p.PledgeID(), p.Frequency().String(), p.DistributionType().String(),
		p.TotalPlannedAmount(), p.Currency(), p.ExchangeRate(),
		p.InstallmentAmount(), p.NumberOfInstallments(),
		p.StartDate(), p.EndDate(), p.NextPaymentDate(), p.InstallmentsPaid(),
		p.TotalPaid(), p.RemainingAmount(), p.Status().String(),
		p.Version(), p.CreatedAt(), p.UpdatedAt(),
	}
}
