package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Duplicate unique-field errors surfaced to handlers as Conflict.
var (
	ErrDuplicateUsername = errors.New("student with this username already exists")
	ErrDuplicateBatch    = errors.New("batch with this name already exists")
	ErrDuplicateCategory = errors.New("category with this name already exists")
	ErrDuplicateCourse   = errors.New("course with this name already exists")
)

// ErrNotFound is returned when a row targeted by id does not exist.
var ErrNotFound = pgx.ErrNoRows

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
