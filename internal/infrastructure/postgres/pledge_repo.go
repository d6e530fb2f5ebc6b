package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/givebridge/givebridge/internal/apperror"
	"github.com/givebridge/givebridge/internal/domain/model"
)

// PledgeRepo implements port.PledgeRepository.
type PledgeRepo struct {
	pool *pgxpool.Pool
}

// NewPledgeRepo creates a new PostgreSQL-backed pledge repository.
func NewPledgeRepo(pool *pgxpool.Pool) *PledgeRepo {
	return &PledgeRepo{pool: pool}
}

const pledgeColumns = `
	id, donor_id, category_id, currency, exchange_rate,
	original_amount, total_paid, balance,
	original_amount_usd, total_paid_usd, balance_usd,
	version, created_at, updated_at
`

// Save persists a pledge (upsert by ID with optimistic locking).
func (r *PledgeRepo) Save(ctx context.Context, pledge model.Pledge) error {
	query := `
		INSERT INTO pledges (` + pledgeColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT (id) DO UPDATE SET
			total_paid     = EXCLUDED.total_paid,
			balance        = EXCLUDED.balance,
			total_paid_usd = EXCLUDED.total_paid_usd,
			balance_usd    = EXCLUDED.balance_usd,
			version        = pledges.version + 1,
			updated_at     = EXCLUDED.updated_at
		WHERE pledges.version = $12
	`
	tag, err := r.pool.Exec(ctx, query,
		pledge.ID(), pledge.DonorID(), pledge.CategoryID(), pledge.Currency(), pledge.ExchangeRate(),
		pledge.OriginalAmount(), pledge.TotalPaid(), pledge.Balance(),
		pledge.OriginalAmountUSD(), pledge.TotalPaidUSD(), pledge.BalanceUSD(),
		pledge.Version(), pledge.CreatedAt(), pledge.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save pledge: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperror.Conflict("pledge %s was modified concurrently", pledge.ID())
	}
	return nil
}

// FindByID retrieves a single pledge.
func (r *PledgeRepo) FindByID(ctx context.Context, id string) (model.Pledge, error) {
	query := `SELECT ` + pledgeColumns + ` FROM pledges WHERE id = $1`

	var (
		pid, donorID, categoryID, currency          string
		exchangeRate                                decimal.Decimal
		originalAmount, totalPaid, balance          decimal.Decimal
		originalAmountUSD, totalPaidUSD, balanceUSD decimal.Decimal
		version                                     int
		createdAt, updatedAt                        time.Time
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&pid, &donorID, &categoryID, &currency, &exchangeRate,
		&originalAmount, &totalPaid, &balance,
		&originalAmountUSD, &totalPaidUSD, &balanceUSD,
		&version, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.Pledge{}, notFoundOr(err, "pledge", id)
	}

	return model.ReconstructPledge(
		pid, donorID, categoryID, currency, exchangeRate,
		originalAmount, totalPaid, balance,
		originalAmountUSD, totalPaidUSD, balanceUSD,
		version, createdAt, updatedAt,
	), nil
}
