package service

import (
	"strings"

	"github.com/shopspring/decimal"

	"statement-wizard/domain"
	"statement-wizard/repository"
)

// Present derives the view state from the wizard state. It has no side effects
// and is meant to be called after every mutation.
func Present(state domain.WizardState, files repository.AttachmentRepository) domain.ViewState {
	v := domain.ViewState{
		Step:            state.Step,
		TotalSteps:      domain.TotalSteps,
		ProgressPercent: float64(state.Step-1) / float64(domain.TotalSteps-1) * 100,
		Steps:           make([]domain.StepStatus, domain.TotalSteps),
		ShowPrev:        state.Step > 1,
		ShowNext:        state.Step < domain.TotalSteps,
		ShowSubmit:      state.Step == domain.TotalSteps,
		Duration:        state.Duration,
		Uploaded:        make(map[domain.SlotID]string),
	}

	for i := range v.Steps {
		switch {
		case i+1 < state.Step:
			v.Steps[i] = domain.StepCompleted
		case i+1 == state.Step:
			v.Steps[i] = domain.StepActive
		default:
			v.Steps[i] = domain.StepPending
		}
	}

	if state.Plan != nil {
		v.SelectedPlan = state.Plan.ID
	}

	fee := CalculateServiceFee(state.Plan, state.StatementAmount)
	if state.Plan != nil && state.StatementAmount.IsPositive() {
		v.PriceSummary = &domain.PriceSummary{
			PlanName:        state.Plan.Name,
			StatementAmount: FormatAmount(state.StatementAmount),
			FeePercent:      FormatPercent(state.Plan.Percent),
			Total:           FormatAmount(fee),
		}
	}

	if files != nil {
		for _, part := range files.Files() {
			v.Uploaded[part.Slot] = part.File.Name
		}
	}

	if state.Step == domain.TotalSteps {
		v.FinalSummary = finalSummary(state, fee)
	}

	return v
}

func finalSummary(state domain.WizardState, fee decimal.Decimal) *domain.FinalSummary {
	s := &domain.FinalSummary{
		Plan:       "-",
		Amount:     FormatAmount(state.StatementAmount),
		FeePercent: "0% of statement",
		Total:      FormatAmount(fee),
		Email:      orDash(state.Applicant[domain.FieldEmailName]),
		Phone:      orDash(state.Applicant["phone"]),
		Needed:     "-",
	}
	if state.Plan != nil {
		s.Plan = state.Plan.Name
		s.FeePercent = FormatPercent(state.Plan.Percent) + " of statement"
	}

	name := strings.Join([]string{
		state.Applicant["title"],
		state.Applicant["firstName"],
		state.Applicant["surname"],
	}, " ")
	s.Name = strings.TrimSpace(name)

	if raw := state.Applicant["amountNeeded"]; raw != "" {
		s.Needed = FormatAmount(ParseAmount(raw))
	}
	return s
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
