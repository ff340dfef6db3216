package domain

import "github.com/shopspring/decimal"

type PlanID string

const (
	PlanCAS  PlanID = "cas"
	PlanVisa PlanID = "visa"
	PlanBoth PlanID = "both"
)

type PlanOption struct {
	ID      PlanID
	Name    string
	Percent decimal.Decimal // service fee, percent of the statement amount
}

var plans = []PlanOption{
	{ID: PlanCAS, Name: "CAS Only", Percent: decimal.RequireFromString("1.2")},
	{ID: PlanVisa, Name: "Visa Only", Percent: decimal.RequireFromString("1.2")},
	{ID: PlanBoth, Name: "CAS + Visa", Percent: decimal.RequireFromString("1.7")},
}

// Plans returns the plan catalogue in display order.
func Plans() []PlanOption {
	out := make([]PlanOption, len(plans))
	copy(out, plans)
	return out
}

// LookupPlan finds a plan by id.
func LookupPlan(id PlanID) (PlanOption, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return PlanOption{}, false
}
