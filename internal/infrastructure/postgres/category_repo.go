package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/givebridge/givebridge/internal/domain/model"
)

// CategoryRepo implements port.CategoryRepository.
type CategoryRepo struct {
	pool *pgxpool.Pool
}

// NewCategoryRepo creates a new PostgreSQL-backed category repository.
func NewCategoryRepo(pool *pgxpool.Pool) *CategoryRepo {
	return &CategoryRepo{pool: pool}
}

// FindByID retrieves a single category.
func (r *CategoryRepo) FindByID(ctx context.Context, id string) (model.Category, error) {
	var c model.Category
	err := r.pool.QueryRow(ctx,
		`SELECT id, name FROM categories WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name)
	if err != nil {
		return model.Category{}, notFoundOr(err, "category", id)
	}
	return c, nil
}
