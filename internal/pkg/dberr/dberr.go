// Package dberr maps storage-layer failures onto a small error taxonomy so
// callers can tell a duplicate quotation number from an unknown client from
// a transient connection loss.
package dberr

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	ErrDuplicateKey        = errors.New("duplicate key")
	ErrForeignKeyViolation = errors.New("referential integrity violation")
	ErrNotNullViolation    = errors.New("not-null violation")
	ErrRecordNotFound      = errors.New("record not found")
)

// SQLSTATE codes for the constraint classes we distinguish.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeNotNullViolation    = "23502"
)

// Map translates a raw database error into the taxonomy, wrapping the
// original so details (constraint name, column) stay reachable via
// errors.Unwrap. Unknown errors pass through unchanged.
func Map(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return fmt.Errorf("%w: %w", ErrDuplicateKey, err)
		case codeForeignKeyViolation:
			return fmt.Errorf("%w: %w", ErrForeignKeyViolation, err)
		case codeNotNullViolation:
			return fmt.Errorf("%w: %w", ErrNotNullViolation, err)
		}
	}

	return err
}

// IsDuplicateKey reports whether err is a unique-constraint rejection.
func IsDuplicateKey(err error) bool {
	return errors.Is(Map(err), ErrDuplicateKey)
}

// IsNotFound reports whether err means the requested row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(Map(err), ErrRecordNotFound)
}
