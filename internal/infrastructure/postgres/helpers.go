package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/givebridge/givebridge/internal/apperror"
)

type scannable interface {
	Scan(dest ...any) error
}

// notFoundOr translates the driver's no-rows sentinel into the not-found
// error the use cases expect, leaving everything else untouched.
func notFoundOr(err error, resource, id string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperror.NotFound(resource, id)
	}
	return err
}
