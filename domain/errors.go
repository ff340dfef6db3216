package domain

import "errors"

var (
	ErrValidation           = errors.New("validation failed")
	ErrFileTooLarge         = errors.New("file too large")
	ErrPolicyViolation      = errors.New("policy violation")
	ErrTransportFailure     = errors.New("submission transport failure")
	ErrUnknownPlan          = errors.New("unknown plan")
	ErrUnknownSlot          = errors.New("unknown attachment slot")
	ErrUnknownField         = errors.New("unknown form field")
	ErrSubmissionInFlight   = errors.New("a submission is already in progress")
	ErrIncompleteSubmission = errors.New("submission is incomplete")
)

// ValidationError carries a user-facing reason and the field to focus.
type ValidationError struct {
	Reason string
	Field  string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Reason + " (" + e.Field + ")"
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
