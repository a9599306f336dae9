package internal

import (
	"errors"
	"strings"
)

var (
	ErrNotFound            = errors.New("record does not exist or belongs to another seller")
	ErrAccountInUse        = errors.New("bank account is referenced by a pending withdrawal")
	ErrInvalidState        = errors.New("withdrawal request has already been decided")
	ErrReasonRequired      = errors.New("a reason is required")
	ErrNetAmountRequired   = errors.New("a positive net amount is required on approval")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrPendingExists       = errors.New("another withdrawal request is still pending")
	ErrUnknownStatus       = errors.New("unknown withdrawal status")
)

// ValidationError carries every failed precondition at once so the
// caller can surface them all instead of fixing one at a time.
type ValidationError struct {
	Reasons []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Reasons, "; ")
}

func NewValidationError(reasons ...string) *ValidationError {
	return &ValidationError{Reasons: reasons}
}
