package postgres

import (
	"context"
	"errors"
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

// PaymentRepo implements port.PaymentRepository and
// port.BonusCalculationRepository. Both live on the same tables because the
// bonus projection on payments and the calculation rows must move together.
type PaymentRepo struct {
	pool *pgxpool.Pool
}

// NewPaymentRepo creates a new PostgreSQL-backed payment repository.
func NewPaymentRepo(pool *pgxpool.Pool) *PaymentRepo {
	return &PaymentRepo{pool: pool}
}

const paymentColumns = `
	id, pledge_id, amount, currency, amount_usd, payment_date, status,
	solicitor_id, bonus_percentage, bonus_amount, bonus_rule_id,
	payment_plan_id, version, created_at, updated_at
`

// Save persists a payment (upsert by ID with optimistic locking).
func (r *PaymentRepo) Save(ctx context.Context, payment model.Payment) error {
	tag, err := r.pool.Exec(ctx, upsertPaymentQuery, paymentArgs(payment)...)
	if err != nil {
		return fmt.Errorf("save payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.Conflict("payment %s was modified concurrently", payment.ID())
	}
	return nil
}

const upsertPaymentQuery = `
	INSERT INTO payments (` + paymentColumns + `)
	VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	ON CONFLICT (id) DO UPDATE SET
		status           = EXCLUDED.status,
		solicitor_id     = EXCLUDED.solicitor_id,
		bonus_percentage = EXCLUDED.bonus_percentage,
		bonus_amount     = EXCLUDED.bonus_amount,
		bonus_rule_id    = EXCLUDED.bonus_rule_id,
		payment_plan_id  = EXCLUDED.payment_plan_id,
		version          = payments.version + 1,
		updated_at       = EXCLUDED.updated_at
	WHERE payments.version = $13
`

func paymentArgs(p model.Payment) []any {
	return []any{
		p.ID(), p.PledgeID(), p.Amount(), p.Currency(), p.AmountUSD(),
		p.PaymentDate(), p.Status().String(),
		p.SolicitorID(), p.BonusPercentage(), p.BonusAmount(), p.BonusRuleID(),
		p.PaymentPlanID(), p.Version(), p.CreatedAt(), p.UpdatedAt(),
	}
}

// FindByID retrieves a single payment.
func (r *PaymentRepo) FindByID(ctx context.Context, id string) (model.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`
	payment, err := scanPayment(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.Payment{}, notFoundOr(err, "payment", id)
	}
	return payment, nil
}

// ReplaceBonusState writes the payment's bonus projection and replaces its
// calculation row in one transaction. The existing row is always deleted
// first; a nil calc leaves the payment without one.
func (r *PaymentRepo) ReplaceBonusState(ctx context.Context, payment model.Payment, calc *model.BonusCalculation) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, upsertPaymentQuery, paymentArgs(payment)...)
		if err != nil {
			return fmt.Errorf("save payment: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperror.Conflict("payment %s was modified concurrently", payment.ID())
		}

		if _, err := tx.Exec(ctx,
			`DELETE FROM bonus_calculations WHERE payment_id = $1`, payment.ID(),
		); err != nil {
			return fmt.Errorf("delete bonus calculation: %w", err)
		}

		if calc != nil {
			if _, err := tx.Exec(ctx, `
				INSERT INTO bonus_calculations (id, payment_id, rule_id, percentage, amount, is_paid, calculated_at)
				VALUES ($1,$2,$3,$4,$5,$6,$7)`,
				calc.ID(), calc.PaymentID(), calc.RuleID(),
				calc.Percentage(), calc.Amount(), calc.IsPaid(), calc.CalculatedAt(),
			); err != nil {
				return fmt.Errorf("insert bonus calculation: %w", err)
			}
		}
		return nil
	})
}

// Delete removes the payment together with its bonus calculation.
func (r *PaymentRepo) Delete(ctx context.Context, payment model.Payment) error {
	return pgshared.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx,
			`DELETE FROM bonus_calculations WHERE payment_id = $1`, payment.ID(),
		); err != nil {
			return fmt.Errorf("delete bonus calculation: %w", err)
		}
		tag, err := tx.Exec(ctx, `DELETE FROM payments WHERE id = $1`, payment.ID())
		if err != nil {
			return fmt.Errorf("delete payment: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return apperror.NotFound("payment", payment.ID())
		}
		return nil
	})
}

// FindByPaymentID retrieves the payment's single calculation, or nil when
// the payment has none.
func (r *PaymentRepo) FindByPaymentID(ctx context.Context, paymentID string) (*model.BonusCalculation, error) {
	query := `
		SELECT id, payment_id, rule_id, percentage, amount, is_paid, calculated_at
		FROM bonus_calculations
		WHERE payment_id = $1
	`
	var (
		id, pid, ruleID    string
		percentage, amount decimal.Decimal
		isPaid             bool
		calculatedAt       time.Time
	)
	err := r.pool.QueryRow(ctx, query, paymentID).Scan(
		&id, &pid, &ruleID, &percentage, &amount, &isPaid, &calculatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan bonus calculation: %w", err)
	}

	calc := model.ReconstructBonusCalculation(id, pid, ruleID, percentage, amount, isPaid, calculatedAt)
	return &calc, nil
}

func scanPayment(s scannable) (model.Payment, error) {
	var (
		id, pledgeID                 string
		amount                       decimal.Decimal
		currency                     string
		amountUSD                    decimal.Decimal
		paymentDate                  time.Time
		statusStr                    string
		solicitorID                  *string
		bonusPercentage, bonusAmount decimal.Decimal
		bonusRuleID, paymentPlanID   *string
		version                      int
		createdAt, updatedAt         time.Time
	)

	err := s.Scan(
		&id, &pledgeID, &amount, &currency, &amountUSD, &paymentDate, &statusStr,
		&solicitorID, &bonusPercentage, &bonusAmount, &bonusRuleID,
		&paymentPlanID, &version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Payment{}, err
	}

	status, err := valueobject.NewPaymentStatus(statusStr)
	if err != nil {
		return model.Payment{}, fmt.Errorf("parse payment status: %w", err)
	}

	return model.ReconstructPayment(
		id, pledgeID, amount, currency, amountUSD, paymentDate, status,
		solicitorID, bonusPercentage, bonusAmount, bonusRuleID, paymentPlanID,
		version, createdAt, updatedAt,
	), nil
}
