package loadtx

import (
	"context"

	"github.com/google/uuid"

	"loadvoice-synqall/internal/domain"
)

// Repository is the set of load operations available inside a transaction.
type Repository interface {
	// GetForUpdate locks and returns the load, or nil if it does not exist.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Load, error)
	// UpdateStatus applies u only if the load still has u.ExpectedStatus.
	// It reports false when the guard did not match.
	UpdateStatus(ctx context.Context, u domain.StatusUpdate) (bool, error)
	AppendHistory(ctx context.Context, e *domain.HistoryEntry) error
}

// Runner runs fn in a single transaction.
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
