package repository

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// IsDuplicate reports a unique constraint violation.
func IsDuplicate(err error) bool {
	var pgerr *pgconn.PgError
	return errors.As(err, &pgerr) && pgerr.Code == "23505"
}

// IsNotFound reports an empty result.
func IsNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// IsRetryable reports errors worth another attempt: serialization failures,
// deadlocks and failures that happened before anything reached the server.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) {
		switch pgerr.Code {
		case "40001", "40P01":
			return true
		}
		return false
	}
	return pgconn.SafeToRetry(err)
}
