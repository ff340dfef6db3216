package domain

type ValidationResult struct {
	OK     bool
	Reason string
	Field  string // focus target, empty when none
}

func Pass() ValidationResult {
	return ValidationResult{OK: true}
}

func Fail(reason, field string) ValidationResult {
	return ValidationResult{Reason: reason, Field: field}
}

// Err converts a failed result into a *ValidationError; nil when passed.
func (r ValidationResult) Err() error {
	if r.OK {
		return nil
	}
	return &ValidationError{Reason: r.Reason, Field: r.Field}
}
