package errs

import "errors"

// Failure taxonomy surfaced to callers. Specific errors are Mark()ed with one of these.
var (
	ErrNotFound             = errors.New("not found")
	ErrValidation           = errors.New("validation failed")
	ErrCapacityExhausted    = errors.New("capacity exhausted")
	ErrDuplicatePending     = errors.New("duplicate pending offer")
	ErrInvalidTransition    = errors.New("invalid offer transition")
	ErrConsistencyViolation = errors.New("consistency violation")

	// Account errors
	ErrDuplicateAccount = errors.New("account already registered")
	ErrUnauthorized     = errors.New("invalid credentials")
)
