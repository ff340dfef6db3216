package domain

import "github.com/shopspring/decimal"

const (
	TotalSteps      = 5
	AllowedDuration = 1 // months; the only duration on offer
)

type WizardState struct {
	Step            int
	Plan            *PlanOption
	Duration        int
	StatementAmount decimal.Decimal
	Applicant       map[string]string
	NextOfKin       map[string]string
}

// NewWizardState returns the state of a freshly opened wizard.
func NewWizardState() WizardState {
	return WizardState{
		Step:            1,
		Duration:        AllowedDuration,
		StatementAmount: decimal.Zero,
		Applicant:       make(map[string]string),
		NextOfKin:       make(map[string]string),
	}
}

// Clone returns a deep copy so snapshots never alias controller state.
func (s WizardState) Clone() WizardState {
	out := s
	if s.Plan != nil {
		p := *s.Plan
		out.Plan = &p
	}
	out.Applicant = cloneMap(s.Applicant)
	out.NextOfKin = cloneMap(s.NextOfKin)
	return out
}

func cloneMap(src map[string]string) map[string]string {
	out := make(map[string]string, len(src))
	for k, v := range src {
		out[k] = v
	}
	return out
}
