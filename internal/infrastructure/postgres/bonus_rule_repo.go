package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/givebridge/givebridge/internal/domain/model"
	"github.com/givebridge/givebridge/internal/domain/valueobject"
)

// BonusRuleRepo implements port.BonusRuleRepository.
type BonusRuleRepo struct {
	pool *pgxpool.Pool
}

// NewBonusRuleRepo creates a new PostgreSQL-backed bonus rule repository.
func NewBonusRuleRepo(pool *pgxpool.Pool) *BonusRuleRepo {
	return &BonusRuleRepo{pool: pool}
}

const bonusRuleColumns = `
	id, solicitor_id, name, bonus_percentage, payment_type,
	min_amount, max_amount, effective_from, effective_to,
	is_active, priority, notes, created_at, updated_at
`

// Save persists a bonus rule (upsert by ID).
func (r *BonusRuleRepo) Save(ctx context.Context, rule model.BonusRule) error {
	query := `
		INSERT INTO bonus_rules (` + bonusRuleColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT (id) DO UPDATE SET
			name             = EXCLUDED.name,
			bonus_percentage = EXCLUDED.bonus_percentage,
			payment_type     = EXCLUDED.payment_type,
			min_amount       = EXCLUDED.min_amount,
			max_amount       = EXCLUDED.max_amount,
			effective_from   = EXCLUDED.effective_from,
			effective_to     = EXCLUDED.effective_to,
			is_active        = EXCLUDED.is_active,
			priority         = EXCLUDED.priority,
			notes            = EXCLUDED.notes,
			updated_at       = EXCLUDED.updated_at
	`
	_, err := r.pool.Exec(ctx, query,
		rule.ID(), rule.SolicitorID(), rule.Name(), rule.BonusPercentage(), rule.Scope().String(),
		rule.MinAmount(), rule.MaxAmount(), rule.EffectiveFrom(), rule.EffectiveTo(),
		rule.IsActive(), rule.Priority(), rule.Notes(), rule.CreatedAt(), rule.UpdatedAt(),
	)
	if err != nil {
		return fmt.Errorf("save bonus rule: %w", err)
	}
	return nil
}

// FindByID retrieves a single bonus rule.
func (r *BonusRuleRepo) FindByID(ctx context.Context, id string) (model.BonusRule, error) {
	query := `SELECT ` + bonusRuleColumns + ` FROM bonus_rules WHERE id = $1`
	rule, err := scanBonusRule(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		return model.BonusRule{}, notFoundOr(err, "bonus rule", id)
	}
	return rule, nil
}

// FindActiveBySolicitor retrieves every active rule for a solicitor.
func (r *BonusRuleRepo) FindActiveBySolicitor(ctx context.Context, solicitorID string) ([]model.BonusRule, error) {
	query := `
		SELECT ` + bonusRuleColumns + `
		FROM bonus_rules
		WHERE solicitor_id = $1 AND is_active
		ORDER BY priority DESC, created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, solicitorID)
	if err != nil {
		return nil, fmt.Errorf("query bonus rules: %w", err)
	}
	defer rows.Close()

	var rules []model.BonusRule
	for rows.Next() {
		rule, err := scanBonusRule(rows)
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, rows.Err()
}

func scanBonusRule(s scannable) (model.BonusRule, error) {
	var (
		id, solicitorID, name string
		bonusPercentage       decimal.Decimal
		paymentType           string
		minAmount, maxAmount  *decimal.Decimal
		effectiveFrom         time.Time
		effectiveTo           *time.Time
		isActive              bool
		priority              int
		notes                 string
		createdAt, updatedAt  time.Time
	)

	err := s.Scan(
		&id, &solicitorID, &name, &bonusPercentage, &paymentType,
		&minAmount, &maxAmount, &effectiveFrom, &effectiveTo,
		&isActive, &priority, &notes, &createdAt, &updatedAt,
	)
	if err != nil {
		return model.BonusRule{}, err
	}

	scope, err := valueobject.NewPaymentTypeScope(paymentType)
	if err != nil {
		return model.BonusRule{}, fmt.Errorf("parse payment type: %w", err)
	}

	return model.ReconstructBonusRule(
		id, solicitorID, name,
		bonusPercentage, scope,
		minAmount, maxAmount,
		effectiveFrom, effectiveTo,
		isActive, priority, notes,
		createdAt, updatedAt,
	), nil
}
