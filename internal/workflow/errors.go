package workflow

import (
	"strings"

	"loadvoice-synqall/internal/apperr"
	"loadvoice-synqall/internal/domain"
)

// Kind classifies a transition failure.
type Kind string

// List of transition failure kinds
const (
	KindUnknownStatus     Kind = "unknown_status"
	KindInvalidTransition Kind = "invalid_transition"
	KindMissingFields     Kind = "missing_fields"
	KindIrreversible      Kind = "irreversible"
)

// TransitionError is a recoverable transition failure. Callers surface Message
// and MissingFields and must not apply any mutation.
type TransitionError struct {
	Kind          Kind
	From          domain.LoadStatus
	To            domain.LoadStatus
	Message       string
	MissingFields []string
}

func (e *TransitionError) Error() string {
	if len(e.MissingFields) == 0 {
		return e.Message
	}
	return e.Message + ": " + strings.Join(e.MissingFields, ", ")
}

// Unwrap lets errors.Is(err, apperr.ErrInvalid) match every transition failure.
func (e *TransitionError) Unwrap() error { return apperr.ErrInvalid }
