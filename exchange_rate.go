package money

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ExchangeRate represents a unidirectional exchange rate between two currencies.
// The zero value corresponds to an exchange rate of "XXX/XXX 0", where XXX
// indicates an unknown currency.
// ExchangeRate is an immutable value type and is safe for concurrent use by
// multiple goroutines.
//
// ExchangeRate is a convenience over [Amount.Conv]: it binds a rate to the
// pair of currencies it converts between, so that applying it to an amount
// in the wrong currency surfaces as a [Mismatch] instead of silently
// producing a nonsensical quantity. The rate itself is still entirely
// caller-supplied; no lookup or rate-correctness validation is performed.
type ExchangeRate struct {
	base  Currency        // currency being exchanged
	quote Currency        // currency being obtained in exchange for the base currency
	value decimal.Decimal // units of quote currency per 1 unit of the base currency
}

// NewExchRate returns a new exchange rate between the base and quote currencies.
//
// NewExchRate returns an error if:
//   - the rate is not positive;
//   - the base and quote currencies are the same, but the rate is not equal to 1.
func NewExchRate(base, quote Currency, rate decimal.Decimal) (ExchangeRate, error) {
	if !rate.IsPositive() {
		return ExchangeRate{}, fmt.Errorf("exchange rate must be positive")
	}
	if base == quote && !rate.Equal(decimal.NewFromInt(1)) {
		return ExchangeRate{}, fmt.Errorf("exchange rate between identical currencies must be equal to 1")
	}
	return ExchangeRate{base: base, quote: quote, value: rate}, nil
}

func mustNewExchRate(base, quote Currency, rate decimal.Decimal) ExchangeRate {
	r, err := NewExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("NewExchRate(%v, %v, %v) failed: %v", base, quote, rate, err))
	}
	return r
}

// ParseExchRate converts currency and decimal strings to an exchange rate.
// See also constructors [ParseCurr] and [NewExchRate].
func ParseExchRate(base, quote, rate string) (ExchangeRate, error) {
	b, err := ParseCurr(base)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("base currency parsing: %w", err)
	}
	q, err := ParseCurr(quote)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("quote currency parsing: %w", err)
	}
	d, err := decimal.NewFromString(rate)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate parsing: %w", err)
	}
	r, err := NewExchRate(b, q, d)
	if err != nil {
		return ExchangeRate{}, fmt.Errorf("rate construction: %w", err)
	}
	return r, nil
}

// MustParseExchRate is like [ParseExchRate] but panics if any of the strings
// cannot be parsed.
// It simplifies safe initialization of global variables holding exchange rates.
func MustParseExchRate(base, quote, rate string) ExchangeRate {
	r, err := ParseExchRate(base, quote, rate)
	if err != nil {
		panic(fmt.Sprintf("ParseExchRate(%q, %q, %q) failed: %v", base, quote, rate, err))
	}
	return r
}

// Base returns the currency being exchanged.
func (r ExchangeRate) Base() Currency {
	return r.base
}

// Quote returns the currency being obtained in exchange for the base currency.
func (r ExchangeRate) Quote() Currency {
	return r.quote
}

// Rate returns how many units of the quote currency are obtained in exchange
// for 1 unit of the base currency.
func (r ExchangeRate) Rate() decimal.Decimal {
	return r.value
}

// CanConv returns true if [ExchangeRate.Conv] can successfully convert
// the given amount.
func (r ExchangeRate) CanConv(b Amount) bool {
	return b.Curr() == r.base &&
		r.base != XXX &&
		r.quote != XXX &&
		r.value.IsPositive()
}

// Conv returns the amount converted from the base currency to the quote
// currency.
//
// Conv returns an erroneous result holding [Mismatch] between the amount's
// currency and the base currency if the amount is not denominated in the
// base currency.
func (r ExchangeRate) Conv(b Amount) Result {
	if !r.CanConv(b) {
		return Err(Mismatch(b.Curr(), r.base))
	}
	return Ok(b.Conv(r.quote, r.value))
}

// Inv returns the inverse of the exchange rate.
//
// Inv panics if the rate is zero, which is only possible for the zero value
// of ExchangeRate.
func (r ExchangeRate) Inv() ExchangeRate {
	if r.value.IsZero() {
		panic(fmt.Sprintf("%q.Inv() failed: zero rate does not have an inverse: %v", r, ErrDivisionByZero))
	}
	return mustNewExchRate(r.quote, r.base, decimal.NewFromInt(1).Div(r.value))
}

// Mul returns an exchange rate with the same base and quote currencies,
// but with the rate multiplied by a positive factor e.
//
// Mul panics if factor e is not positive.
// To avoid this panic, use [decimal.Decimal.IsPositive] to verify the factor
// before calling Mul.
//
// [decimal.Decimal.IsPositive]: https://pkg.go.dev/github.com/shopspring/decimal#Decimal.IsPositive
func (r ExchangeRate) Mul(e decimal.Decimal) ExchangeRate {
	if !e.IsPositive() {
		panic(fmt.Sprintf("%q.Mul(%q) failed: factor must be positive", r, e))
	}
	return mustNewExchRate(r.base, r.quote, r.value.Mul(e))
}

// SameCurr returns true if exchange rates are denominated in the same base
// and quote currencies.
// See also methods [ExchangeRate.Base] and [ExchangeRate.Quote].
func (r ExchangeRate) SameCurr(q ExchangeRate) bool {
	return q.base == r.base && q.quote == r.quote
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of the exchange rate, e.g. "USD/EUR 0.9".
// See also methods [Currency.String] and [decimal.Decimal.String].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
// [decimal.Decimal.String]: https://pkg.go.dev/github.com/shopspring/decimal#Decimal.String
func (r ExchangeRate) String() string {
	return r.base.Code() + "/" + r.quote.Code() + " " + r.value.String()
}
