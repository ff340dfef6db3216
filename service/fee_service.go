package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"statement-wizard/domain"
)

var hundred = decimal.NewFromInt(100)

var amountPrinter = message.NewPrinter(language.AmericanEnglish)

// CalculateServiceFee returns amount × plan percent / 100 at full precision.
// The fee is zero when no plan is selected or the amount is not positive.
func CalculateServiceFee(plan *domain.PlanOption, amount decimal.Decimal) decimal.Decimal {
	if plan == nil || !amount.IsPositive() {
		return decimal.Zero
	}
	return amount.Mul(plan.Percent).Div(hundred)
}

// ParseAmount converts raw user input into a non-negative amount. Input that
// is not a finite number, is negative or is above MaxStatementAmount becomes
// zero. The amount field drives a live preview and is never rejected.
func ParseAmount(raw string) decimal.Decimal {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		// accept what a browser number parser would, e.g. "1e3" or "12abc"
		var ok bool
		if d, ok = leadingNumber(s); !ok {
			return decimal.Zero
		}
	}
	// exponent first: comparing or rounding a value like 1e999999999
	// materialises a power of ten that size
	if exp := d.Exponent(); exp > maxAmountExponent || exp < -maxAmountExponent {
		return decimal.Zero
	}
	if !d.IsPositive() || d.GreaterThan(MaxStatementAmount) {
		return decimal.Zero
	}
	return d
}

var numberPrefix = regexp.MustCompile(`^([+-]?)(?:(\d+)(?:\.(\d+))?|\.(\d+))(?:[eE]([+-]?\d+))?`)

// leadingNumber parses the longest decimal prefix of s, the way parseFloat
// does in a browser. Hex, "inf" and "nan" spellings do not match.
func leadingNumber(s string) (decimal.Decimal, bool) {
	m := numberPrefix.FindStringSubmatch(s)
	if m == nil {
		return decimal.Zero, false
	}
	sign, whole, frac := m[1], m[2], m[3]
	if whole == "" {
		whole, frac = "0", m[4]
	}
	num := sign + whole
	if frac != "" {
		num += "." + frac
	}
	if m[5] != "" {
		num += "e" + m[5]
	}
	d, err := decimal.NewFromString(num)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// FormatAmount renders a currency amount as "$1,234.56".
func FormatAmount(amount decimal.Decimal) string {
	sign := ""
	if amount.Round(2).IsNegative() {
		sign = "-"
		amount = amount.Abs()
	}
	whole, cents, _ := strings.Cut(amount.StringFixed(2), ".")

	grouped := whole
	if n, err := strconv.ParseInt(whole, 10, 64); err == nil {
		grouped = amountPrinter.Sprint(number.Decimal(n))
	}
	return sign + "$" + grouped + "." + cents
}

// FormatPercent renders a plan percentage as "1.7%".
func FormatPercent(p decimal.Decimal) string {
	return p.String() + "%"
}
