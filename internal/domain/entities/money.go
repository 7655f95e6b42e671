package entities

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const DefaultCurrency = "USD"

// Money is an amount in integer minor units (cents) plus a currency code.
// Raw numeric amounts never cross internal component boundaries; everything
// arriving from the payment gateway passes through NormalizeAmount exactly
// once, at ingestion.

type Money struct {
	AmountMinor int64  `json:"amount_minor"`
	Currency    string `json:"currency"`
}

func NewMoney(minor int64, currency string) Money {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Money{AmountMinor: minor, Currency: currency}
}

// NormalizeAmount interprets a raw numeric amount whose unit is ambiguous:
// gateway payloads carry minor units (cents) while legacy fields carry major
// units (dollars) as floats.
//
// Heuristic (best effort):
//   - v >= 10000: minor units
//   - 1000 <= v < 10000 and v divisible by 100: minor units (2500 = $25.00)
//   - otherwise: major units
//
// Known limitation: whole-dollar legacy values in the $10.00-$99.99 range
// entered as e.g. 2500 are indistinguishable from $25.00 in cents.
func NormalizeAmount(v float64) Money {
	d := decimal.NewFromFloat(v)
	if v >= 10000 {
		return NewMoney(d.Round(0).IntPart(), DefaultCurrency)
	}
	if v >= 1000 && d.IsInteger() && d.IntPart()%100 == 0 {
		return NewMoney(d.IntPart(), DefaultCurrency)
	}
	return NewMoney(d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), DefaultCurrency)
}

// Equal compares amount and currency.
func (m Money) Equal(other Money) bool {
	return m.AmountMinor == other.AmountMinor && m.Currency == other.Currency
}

func (m Money) IsZero() bool {
	return m.AmountMinor == 0
}

// Major returns the amount in major units as a decimal.
func (m Money) Major() decimal.Decimal {
	return decimal.NewFromInt(m.AmountMinor).Div(decimal.NewFromInt(100))
}

// String renders e.g. "$1,495.00". Non-USD currencies are prefixed with the
// currency code instead of a symbol.
func (m Money) String() string {
	neg := m.AmountMinor < 0
	minor := m.AmountMinor
	if neg {
		minor = -minor
	}
	whole := minor / 100
	cents := minor % 100

	digits := fmt.Sprintf("%d", whole)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	out := fmt.Sprintf("%s.%02d", strings.Join(groups, ","), cents)
	if m.Currency == DefaultCurrency || m.Currency == "" {
		out = "$" + out
	} else {
		out = m.Currency + " " + out
	}
	if neg {
		out = "-" + out
	}
	return out
}
