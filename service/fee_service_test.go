package service

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"statement-wizard/domain"
)

func mustPlan(t *testing.T, id domain.PlanID) *domain.PlanOption {
	t.Helper()
	p, ok := domain.LookupPlan(id)
	if !ok {
		t.Fatalf("plan %s missing from catalogue", id)
	}
	return &p
}

func TestCalculateServiceFee_Combined(t *testing.T) {
	fee := CalculateServiceFee(mustPlan(t, domain.PlanBoth), decimal.RequireFromString("1000.00"))

	expected := decimal.RequireFromString("17")
	if !fee.Equal(expected) {
		t.Errorf("expected %s, got %s", expected, fee)
	}
	if got := FormatAmount(fee); got != "$17.00" {
		t.Errorf("expected $17.00, got %s", got)
	}
}

func TestCalculateServiceFee_MatchesFormula(t *testing.T) {
	amounts := []string{"0.01", "1", "250.5", "999999.99", "123456789.123"}

	for _, p := range domain.Plans() {
		plan := p
		for _, raw := range amounts {
			amount := decimal.RequireFromString(raw)
			want := amount.Mul(plan.Percent).Div(decimal.NewFromInt(100))

			got := CalculateServiceFee(&plan, amount)
			if !got.Equal(want) {
				t.Errorf("%s @ %s: expected %s, got %s", plan.ID, raw, want, got)
			}
		}
	}
}

func TestCalculateServiceFee_NoPlan(t *testing.T) {
	fee := CalculateServiceFee(nil, decimal.NewFromInt(500))

	if !fee.IsZero() {
		t.Errorf("expected 0 without a plan, got %s", fee)
	}
}

func TestCalculateServiceFee_NonPositiveAmount(t *testing.T) {
	plan := mustPlan(t, domain.PlanCAS)

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-10)} {
		if fee := CalculateServiceFee(plan, amount); !fee.IsZero() {
			t.Errorf("expected 0 for amount %s, got %s", amount, fee)
		}
	}
}

func TestCalculateServiceFee_KeepsPrecision(t *testing.T) {
	fee := CalculateServiceFee(mustPlan(t, domain.PlanCAS), decimal.RequireFromString("10.01"))

	expected := decimal.RequireFromString("0.12012")
	if !fee.Equal(expected) {
		t.Errorf("expected %s, got %s", expected, fee)
	}
	if got := FormatAmount(fee); got != "$0.12" {
		t.Errorf("expected $0.12, got %s", got)
	}
}

func TestParseAmount(t *testing.T) {
	cases := map[string]string{
		"":                 "0",
		"   ":              "0",
		"abc":              "0",
		"-25":              "0",
		"0":                "0",
		"1500":             "1500",
		" 42.75 ":          "42.75",
		"12abc":            "12",
		"1e3":              "1000",
		"1.5e2kg":          "150",
		"7e":               "7",
		".5":               "0.5",
		"+3":               "3",
		"1,000":            "1",
		"NaN":              "0",
		"Infinity":         "0",
		"-Infinity":        "0",
		"inf":              "0",
		"0x1p3":            "0",
		"1e400":            "0",
		"1e999999999":      "0",
		"1e-999999999":     "0",
		"5e-999999999x":    "0",
		"1000000000000000": "1000000000000000",
		"1000000000000001": "0",
	}

	for raw, want := range cases {
		got := ParseAmount(raw)
		if !got.Equal(decimal.RequireFromString(want)) {
			t.Errorf("ParseAmount(%q): expected %s, got %s", raw, want, got)
		}
	}
}

func TestParseAmount_ExtremeInputKeepsWizardUsable(t *testing.T) {
	plan := mustPlan(t, domain.PlanBoth)
	for _, raw := range []string{"1e999999999", "1e-999999999", "9" + strings.Repeat("9", 5000)} {
		done := make(chan struct{})
		go func() {
			defer close(done)
			state := domain.NewWizardState()
			state.Plan = plan
			state.StatementAmount = ParseAmount(raw)
			Present(state, nil)
			FormatAmount(CalculateServiceFee(plan, state.StatementAmount))
		}()
		select {
		case <-done:
		case <-time.After(2 * time.Second):
			t.Fatalf("input %.20q did not return", raw)
		}
	}
}

func TestLeadingNumber_LongGarbage(t *testing.T) {
	raw := "12" + strings.Repeat("x", 100000)
	if got := ParseAmount(raw); !got.Equal(decimal.NewFromInt(12)) {
		t.Errorf("expected 12, got %s", got)
	}
}

func TestFormatAmount(t *testing.T) {
	cases := map[string]string{
		"0":                 "$0.00",
		"5":                 "$5.00",
		"1000":              "$1,000.00",
		"1234567.891":       "$1,234,567.89",
		"0.005":             "$0.01",
		"99999999999999.99": "$99,999,999,999,999.99",
		"-5":                "-$5.00",
	}

	for raw, want := range cases {
		if got := FormatAmount(decimal.RequireFromString(raw)); got != want {
			t.Errorf("FormatAmount(%s): expected %s, got %s", raw, want, got)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(mustPlan(t, domain.PlanBoth).Percent); got != "1.7%" {
		t.Errorf("expected 1.7%%, got %s", got)
	}
}
