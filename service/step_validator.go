package service

import (
	"regexp"
	"strings"

	"statement-wizard/domain"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// AttachmentChecker is the read side of the attachment registry.
type AttachmentChecker interface {
	IsFilled(slot domain.SlotID) bool
}

// ValidateStep checks whether the given step is complete. It reads state and
// attachments only and reports at most one reason, first failure wins.
func ValidateStep(
	step int,
	state domain.WizardState,
	files AttachmentChecker,
) domain.ValidationResult {
	switch step {
	case 1:
		if state.Plan == nil {
			return domain.Fail(MsgSelectPlan, "")
		}
		if !state.StatementAmount.IsPositive() {
			return domain.Fail(MsgInvalidAmount, FieldStatementAmount)
		}
		return domain.Pass()
	case 2:
		return validateFields(domain.ApplicantFields(), state.Applicant, domain.FieldEmailName)
	case 3:
		return validateFields(domain.NextOfKinFields(), state.NextOfKin, domain.FieldNokEmailName)
	case 4, 5:
		return validateSlots(step, files)
	default:
		return domain.Pass()
	}
}

func validateFields(
	specs []domain.FieldSpec,
	values map[string]string,
	emailField string,
) domain.ValidationResult {
	for _, f := range specs {
		if f.Required && strings.TrimSpace(values[f.Name]) == "" {
			return domain.Fail(MsgRequiredFields, f.Name)
		}
	}
	if !IsValidEmail(values[emailField]) {
		return domain.Fail(MsgInvalidEmail, emailField)
	}
	return domain.Pass()
}

func validateSlots(step int, files AttachmentChecker) domain.ValidationResult {
	msg := MsgMissingDocuments
	if step == domain.TotalSteps {
		msg = MsgMissingPayment
	}
	for _, s := range domain.SlotsForStep(step) {
		if !s.Required {
			continue
		}
		if files == nil || !files.IsFilled(s.ID) {
			return domain.Fail(msg, string(s.ID))
		}
	}
	return domain.Pass()
}

func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}
