package service

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"

	"statement-wizard/domain"
)

type fakeFiles map[domain.SlotID]bool

func (f fakeFiles) IsFilled(slot domain.SlotID) bool {
	return f[slot]
}

func completeApplicant() map[string]string {
	out := make(map[string]string)
	for _, f := range domain.ApplicantFields() {
		out[f.Name] = "value"
	}
	out["email"] = "ada@example.com"
	return out
}

func completeNextOfKin() map[string]string {
	out := make(map[string]string)
	for _, f := range domain.NextOfKinFields() {
		out[f.Name] = "value"
	}
	out["nokEmail"] = "kin@example.org"
	return out
}

func TestValidateStep1(t *testing.T) {
	plan, _ := domain.LookupPlan(domain.PlanVisa)

	cases := []struct {
		name   string
		plan   *domain.PlanOption
		amount decimal.Decimal
		want   domain.ValidationResult
	}{
		{"no plan", nil, decimal.NewFromInt(500), domain.Fail(MsgSelectPlan, "")},
		{"no plan and no amount", nil, decimal.Zero, domain.Fail(MsgSelectPlan, "")},
		{"zero amount", &plan, decimal.Zero, domain.Fail(MsgInvalidAmount, FieldStatementAmount)},
		{"ok", &plan, decimal.RequireFromString("0.01"), domain.Pass()},
	}

	for _, tc := range cases {
		state := domain.NewWizardState()
		state.Plan = tc.plan
		state.StatementAmount = tc.amount

		got := ValidateStep(1, state, fakeFiles{})
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Errorf("%s: result mismatch (-want +got):\n%s", tc.name, diff)
		}
	}
}

func TestValidateStep2_FirstBlankFieldWins(t *testing.T) {
	state := domain.NewWizardState()
	state.Applicant = completeApplicant()
	state.Applicant["surname"] = "   "
	state.Applicant["phone"] = ""
	state.Applicant["email"] = "not-an-email"

	got := ValidateStep(2, state, nil)

	want := domain.Fail(MsgRequiredFields, "surname")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateStep2_OptionalFieldMayBeEmpty(t *testing.T) {
	state := domain.NewWizardState()
	state.Applicant = completeApplicant()
	delete(state.Applicant, "middleName")

	if got := ValidateStep(2, state, nil); !got.OK {
		t.Errorf("expected pass, got %+v", got)
	}
}

func TestValidateStep2_Email(t *testing.T) {
	bad := []string{"ada", "ada@example", "ada @example.com", "@example.com", "ada@.com"}

	for _, email := range bad {
		state := domain.NewWizardState()
		state.Applicant = completeApplicant()
		state.Applicant["email"] = email

		got := ValidateStep(2, state, nil)
		want := domain.Fail(MsgInvalidEmail, "email")
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("%q: result mismatch (-want +got):\n%s", email, diff)
		}
	}
}

func TestValidateStep3(t *testing.T) {
	state := domain.NewWizardState()
	state.NextOfKin = completeNextOfKin()

	if got := ValidateStep(3, state, nil); !got.OK {
		t.Fatalf("expected pass, got %+v", got)
	}

	state.NextOfKin["nokRelationship"] = ""
	got := ValidateStep(3, state, nil)
	if got.OK || got.Field != "nokRelationship" {
		t.Errorf("expected nokRelationship to be reported, got %+v", got)
	}

	state.NextOfKin["nokRelationship"] = "Sibling"
	state.NextOfKin["nokEmail"] = "kin@localhost"
	got = ValidateStep(3, state, nil)
	if got.OK || got.Field != "nokEmail" || got.Reason != MsgInvalidEmail {
		t.Errorf("expected nokEmail failure, got %+v", got)
	}
}

func TestValidateStep4_ReportsFirstMissingSlot(t *testing.T) {
	files := fakeFiles{
		domain.SlotValidID:       true,
		domain.SlotUtilityBill:   true,
		domain.SlotPassportPhoto: false,
		domain.SlotSignature:     true,
	}

	got := ValidateStep(4, domain.NewWizardState(), files)

	want := domain.Fail(MsgMissingDocuments, "passportPhoto")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	files[domain.SlotPassportPhoto] = true
	if got := ValidateStep(4, domain.NewWizardState(), files); !got.OK {
		t.Errorf("expected pass with all documents, got %+v", got)
	}
}

func TestValidateStep5(t *testing.T) {
	got := ValidateStep(5, domain.NewWizardState(), fakeFiles{})
	want := domain.Fail(MsgMissingPayment, "paymentProof")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}

	got = ValidateStep(5, domain.NewWizardState(), fakeFiles{domain.SlotPaymentProof: true})
	if !got.OK {
		t.Errorf("expected pass, got %+v", got)
	}
}

func TestValidateStep_OutOfRangePasses(t *testing.T) {
	for _, step := range []int{0, 6, -1, 42} {
		if got := ValidateStep(step, domain.NewWizardState(), nil); !got.OK {
			t.Errorf("step %d: expected pass, got %+v", step, got)
		}
	}
}
