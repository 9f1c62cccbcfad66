package money

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Amount type represents a monetary amount: an arbitrary-precision decimal
// quantity denominated in a currency.
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
// Amount is an immutable value type and is safe for concurrent use by
// multiple goroutines.
//
// Operations that can never fail return an Amount; operations whose outcome
// depends on the currencies of both operands, or on a divisor, return a
// [Result] instead, forcing the caller to handle a possible [CurrencyError]
// before the numeric value can be used.
type Amount struct {
	curr  Currency        // ISO 4217 currency
	value decimal.Decimal // monetary quantity
}

// NewAmount returns an amount with the given quantity and currency.
// It is total: any quantity, including zero and negative values, is valid.
func NewAmount(curr Currency, value decimal.Decimal) Amount {
	return Amount{curr: curr, value: value}
}

// NewAmountFromInt64 returns an amount with a whole-number quantity.
func NewAmountFromInt64(curr Currency, value int64) Amount {
	return NewAmount(curr, decimal.NewFromInt(value))
}

// NewAmountFromFloat64 converts a float to an amount.
//
// NewAmountFromFloat64 returns an error if the float is a special value
// (NaN or Inf).
func NewAmountFromFloat64(curr Currency, value float64) (Amount, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Amount{}, fmt.Errorf("converting float: special value %v", value)
	}
	return NewAmount(curr, decimal.NewFromFloat(value)), nil
}

// ParseAmount converts currency and decimal strings to an amount.
// See also constructors [ParseCurr] and [decimal.NewFromString].
//
// [decimal.NewFromString]: https://pkg.go.dev/github.com/shopspring/decimal#NewFromString
func ParseAmount(curr, value string) (Amount, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing currency: %w", err)
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return NewAmount(c, d), nil
}

// MustParseAmount is like [ParseAmount] but panics if any of the strings
// cannot be parsed.
// It simplifies safe initialization of global variables holding amounts.
func MustParseAmount(curr, value string) Amount {
	a, err := ParseAmount(curr, value)
	if err != nil {
		panic(fmt.Sprintf("ParseAmount(%q, %q) failed: %v", curr, value, err))
	}
	return a
}

// Curr returns the currency of the amount.
func (a Amount) Curr() Currency {
	return a.curr
}

// Decimal returns the quantity of the amount.
func (a Amount) Decimal() decimal.Decimal {
	return a.value
}

// Sign returns:
//
//	-1 if a < 0
//	 0 if a = 0
//	+1 if a > 0
func (a Amount) Sign() int {
	return a.value.Sign()
}

// IsZero returns:
//
//	true  if a = 0
//	false otherwise
func (a Amount) IsZero() bool {
	return a.value.IsZero()
}

// IsNeg returns:
//
//	true  if a < 0
//	false otherwise
func (a Amount) IsNeg() bool {
	return a.value.IsNegative()
}

// IsPos returns:
//
//	true  if a > 0
//	false otherwise
func (a Amount) IsPos() bool {
	return a.value.IsPositive()
}

// Neg returns an amount with the opposite sign and the same currency.
func (a Amount) Neg() Amount {
	return NewAmount(a.curr, a.value.Neg())
}

// Abs returns the absolute value of the amount.
func (a Amount) Abs() Amount {
	return NewAmount(a.curr, a.value.Abs())
}

// Mul returns the product of amount a and factor e.
// Scaling never touches the currency, so Mul cannot fail.
func (a Amount) Mul(e decimal.Decimal) Amount {
	return NewAmount(a.curr, a.value.Mul(e))
}

// Quo returns the quotient of amount a and divisor e.
//
// Quo returns an erroneous result holding [DivisionByZero] if the divisor
// is zero.
func (a Amount) Quo(e decimal.Decimal) Result {
	if e.IsZero() {
		return Err(DivisionByZero())
	}
	return Ok(NewAmount(a.curr, a.value.Div(e)))
}

// Add returns the sum of amounts a and b.
//
// Add returns an erroneous result holding [Mismatch] (with the operand
// currencies in operand order) if the amounts are denominated in different
// currencies.
func (a Amount) Add(b Amount) Result {
	if !a.SameCurr(b) {
		return Err(Mismatch(a.curr, b.curr))
	}
	return Ok(NewAmount(a.curr, a.value.Add(b.value)))
}

// Sub returns the difference between amounts a and b.
//
// Sub returns an erroneous result holding [Mismatch] (with the operand
// currencies in operand order) if the amounts are denominated in different
// currencies.
func (a Amount) Sub(b Amount) Result {
	if !a.SameCurr(b) {
		return Err(Mismatch(a.curr, b.curr))
	}
	return Ok(NewAmount(a.curr, a.value.Sub(b.value)))
}

// AddResult returns the sum of amount a and result r.
// If r is already erroneous, its error is returned unchanged; there is no
// prior error on the left to prefer.
func (a Amount) AddResult(r Result) Result {
	if r.IsErr() {
		return r
	}
	return a.Add(r.amount)
}

// SubResult returns the difference between amount a and result r.
// If r is already erroneous, its error is returned unchanged.
func (a Amount) SubResult(r Result) Result {
	if r.IsErr() {
		return r
	}
	return a.Sub(r.amount)
}

// Conv returns the amount converted to the quote currency using the given
// exchange rate, expressed in units of the quote currency per unit of a's
// currency. Conv performs no validation of the rate; its correctness and
// direction are entirely the caller's responsibility.
// See also type [ExchangeRate].
func (a Amount) Conv(quote Currency, rate decimal.Decimal) Amount {
	return NewAmount(quote, a.value.Mul(rate))
}

// SameCurr returns true if amounts are denominated in the same currency.
// See also method [Amount.Curr].
func (a Amount) SameCurr(b Amount) bool {
	return a.curr == b.curr
}

// Equal reports whether amounts a and b are equal.
// Equality is total: it is false whenever the currencies differ, regardless
// of the quantities, including when both quantities are zero.
// When the currencies match, equality is numeric, so "USD 1.5" and
// "USD 1.50" are equal.
func (a Amount) Equal(b Amount) bool {
	return a.SameCurr(b) && a.value.Equal(b.value)
}

// EqualResult returns true if r holds an amount equal to a.
// See also method [Result.EqualAmount].
func (a Amount) EqualResult(r Result) bool {
	return r.EqualAmount(a)
}

// Cmp compares amounts and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Ordering requires equal currencies as a precondition: unlike [Amount.Equal],
// Cmp panics if the amounts are denominated in different currencies.
// To avoid this panic, use the [Amount.SameCurr] method to verify the
// currencies are compatible before calling Cmp.
func (a Amount) Cmp(b Amount) int {
	if !a.SameCurr(b) {
		panic(fmt.Sprintf("%q.Cmp(%q) failed: %v", a, b, Mismatch(a.curr, b.curr)))
	}
	return a.value.Cmp(b.value)
}

// Less returns true if amount a is strictly smaller than amount b.
// It is a shorthand for a.Cmp(b) < 0 and shares its panic on currency
// mismatch.
func (a Amount) Less(b Amount) bool {
	return a.Cmp(b) < 0
}

// Min returns the smaller amount.
// See also method [Amount.Cmp].
//
// Min panics if amounts are denominated in different currencies.
func (a Amount) Min(b Amount) Amount {
	if a.Cmp(b) <= 0 {
		return a
	}
	return b
}

// Max returns the larger amount.
// See also method [Amount.Cmp].
//
// Max panics if amounts are denominated in different currencies.
func (a Amount) Max(b Amount) Amount {
	if a.Cmp(b) >= 0 {
		return a
	}
	return b
}

// String method implements the [fmt.Stringer] interface and returns a string
// representation of an amount, e.g. "USD 1.50".
// See also methods [Currency.String] and [Amount.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (a Amount) String() string {
	return a.curr.Code() + " " + a.value.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example    | Description                |
//	| ------ | ---------- | -------------------------- |
//	| %s, %v | USD 5.67   | Currency and amount        |
//	| %q     | "USD 5.67" | Quoted currency and amount |
//	| %f     | 5.67       | Amount                     |
//	| %c     | USD        | Currency                   |
//
// The '-' format flag can be used with all verbs.
// Precision is only supported for the %f verb; the default precision is
// the larger of the amount's scale and the currency's scale.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (a Amount) Format(state fmt.State, verb rune) {
	var s string
	switch verb {
	case 'f', 'F':
		scale := int32(a.curr.Scale())
		if p, ok := state.Precision(); ok {
			scale = int32(p)
		} else if exp := -a.value.Exponent(); exp > scale {
			scale = exp
		}
		s = a.value.StringFixed(scale)
	case 'c', 'C':
		s = a.curr.Code()
	case 's', 'S', 'v', 'V':
		s = a.String()
	case 'q', 'Q':
		s = "\"" + a.String() + "\""
	default:
		fmt.Fprintf(state, "%%!%c(money.Amount=%s)", verb, a.String())
		return
	}
	writePadded(state, s)
}

// amountJSON mirrors the serialized record structure of an amount.
type amountJSON struct {
	Value    decimal.Decimal `json:"value"`
	Currency Currency        `json:"currency"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// An amount marshals as a record of its quantity and currency:
//
//	{"value":"1.50","currency":"USD"}
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(amountJSON{Value: a.value, Currency: a.curr})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Amount.MarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (a *Amount) UnmarshalJSON(data []byte) error {
	var v amountJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Amount{}, err)
	}
	*a = NewAmount(v.Currency, v.Value)
	return nil
}
