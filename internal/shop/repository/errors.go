package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/fixhub/repairshop/internal/shop/domain"
)

// Postgres error classes surfaced as conflicts.
const (
	pgUniqueViolation = "23505"
	pgFKViolation     = "23503"
	pgCheckViolation  = "23514"
)

// notFound maps gorm's record miss to the domain error, so every repository
// reports the same shape for a missing row or a broken ownership link.
func notFound(err error, resource string, id uint) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.NotFound(resource, id)
	}
	return fmt.Errorf("failed to find %s: %w", resource, err)
}

// writeError surfaces Postgres constraint violations as conflicts and wraps
// everything else for the handler boundary to report as a server error.
func writeError(err error, action string) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgUniqueViolation, pgFKViolation, pgCheckViolation:
			return &domain.ConflictError{Constraint: pgErr.ConstraintName, Err: err}
		}
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) || errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return &domain.ConflictError{Err: err}
	}
	return fmt.Errorf("failed to %s: %w", action, err)
}
