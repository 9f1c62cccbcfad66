package money

import (
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// Result type represents the outcome of a computation involving amounts of
// money: either a valid [Amount] or the [CurrencyError] that made the
// computation fail.
// Its zero value corresponds to [Ok] of "XXX 0", where [XXX] indicates
// an unknown currency.
// Result is an immutable value type and is safe for concurrent use by
// multiple goroutines.
//
// Results can themselves be used in arithmetic operations, either with other
// results or with amounts. Failure is sticky: once a result is erroneous,
// every subsequent operation consuming it returns the same error untouched,
// so a chain of operations can be checked once, at the very end.
type Result struct {
	amount Amount
	err    CurrencyError // zero kind marks the result as holding an amount
}

// Ok returns a successful result holding the given amount.
func Ok(a Amount) Result {
	return Result{amount: a}
}

// Err returns an erroneous result holding the given error.
//
// Err panics if e is the zero value, which does not represent any of the
// constructible error variants.
// See also constructors [Mismatch] and [DivisionByZero].
func Err(e CurrencyError) Result {
	if e.kind == noErr {
		panic("Err(CurrencyError{}) failed: zero value is not a valid error")
	}
	return Result{err: e}
}

// IsOK returns true if the result holds an amount.
func (r Result) IsOK() bool {
	return r.err.kind == noErr
}

// IsErr returns true if the result holds an error.
func (r Result) IsErr() bool {
	return r.err.kind != noErr
}

// IsMismatch returns true if the result holds a currency mismatch error.
func (r Result) IsMismatch() bool {
	return r.err.IsMismatch()
}

// IsDivisionByZero returns true if the result holds a division-by-zero error.
func (r Result) IsDivisionByZero() bool {
	return r.err.IsDivisionByZero()
}

// Amount returns the underlying amount, or a non-nil error if the result is
// erroneous. The returned error is always a [CurrencyError] and can be
// tested with [errors.Is] against [ErrCurrencyMismatch] and
// [ErrDivisionByZero].
//
// [errors.Is]: https://pkg.go.dev/errors#Is
func (r Result) Amount() (Amount, error) {
	if r.IsErr() {
		return Amount{}, r.err
	}
	return r.amount, nil
}

// MustAmount is like [Result.Amount] but panics if the result is erroneous.
func (r Result) MustAmount() Amount {
	a, err := r.Amount()
	if err != nil {
		panic(fmt.Sprintf("MustAmount() failed: %v", err))
	}
	return a
}

// Err returns the underlying error and true if the result is erroneous,
// or the zero error and false otherwise.
func (r Result) Err() (CurrencyError, bool) {
	return r.err, r.IsErr()
}

// Neg returns a result with the amount's sign flipped.
// An erroneous result passes through unchanged.
func (r Result) Neg() Result {
	if r.IsErr() {
		return r
	}
	return Ok(r.amount.Neg())
}

// Abs returns a result holding the absolute value of the amount.
// An erroneous result passes through unchanged.
func (r Result) Abs() Result {
	if r.IsErr() {
		return r
	}
	return Ok(r.amount.Abs())
}

// Mul returns a result with the amount multiplied by factor e.
// An erroneous result passes through unchanged.
func (r Result) Mul(e decimal.Decimal) Result {
	if r.IsErr() {
		return r
	}
	return Ok(r.amount.Mul(e))
}

// Quo returns a result with the amount divided by divisor e.
// An erroneous result passes through unchanged; the divisor is only checked
// for zero when the result holds an amount.
// See also method [Amount.Quo].
func (r Result) Quo(e decimal.Decimal) Result {
	if r.IsErr() {
		return r
	}
	return r.amount.Quo(e)
}

// Conv returns a result with the amount converted to the quote currency
// using the given exchange rate.
// An erroneous result passes through unchanged.
// See also method [Amount.Conv].
func (r Result) Conv(quote Currency, rate decimal.Decimal) Result {
	if r.IsErr() {
		return r
	}
	return Ok(r.amount.Conv(quote, rate))
}

// Add returns the sum of results r and q.
//
// The left error wins: if r is erroneous, its error is returned untouched
// before anything about q is examined, even if q is erroneous or would
// mismatch. If r holds an amount and q is erroneous, q's error is returned.
// Only when both hold amounts does the operation perform its own currency
// check, which may produce a fresh [Mismatch].
func (r Result) Add(q Result) Result {
	if r.IsErr() {
		return r
	}
	return r.amount.AddResult(q)
}

// AddAmount returns the sum of result r and amount b.
// If r is erroneous, its error is returned untouched regardless of b.
func (r Result) AddAmount(b Amount) Result {
	if r.IsErr() {
		return r
	}
	return r.amount.Add(b)
}

// Sub returns the difference between results r and q.
// Error propagation follows the same left-error-wins rule as [Result.Add].
func (r Result) Sub(q Result) Result {
	if r.IsErr() {
		return r
	}
	return r.amount.SubResult(q)
}

// SubAmount returns the difference between result r and amount b.
// If r is erroneous, its error is returned untouched regardless of b.
func (r Result) SubAmount(b Amount) Result {
	if r.IsErr() {
		return r
	}
	return r.amount.Sub(b)
}

// Equal reports whether results r and q are equal.
// Two successful results are equal if their amounts are equal under
// [Amount.Equal]; two erroneous results are equal if they hold the same
// error value; a successful and an erroneous result are never equal.
func (r Result) Equal(q Result) bool {
	switch {
	case r.IsOK() && q.IsOK():
		return r.amount.Equal(q.amount)
	case r.IsErr() && q.IsErr():
		return r.err == q.err
	}
	return false
}

// EqualAmount returns true if r holds an amount equal to b.
// An erroneous result is never equal to an amount.
func (r Result) EqualAmount(b Amount) bool {
	return r.IsOK() && r.amount.Equal(b)
}

// EqualError returns true if r holds an error equal to e.
// A successful result is never equal to an error.
func (r Result) EqualError(e CurrencyError) bool {
	return r.IsErr() && r.err == e
}

// String method implements the [fmt.Stringer] interface and returns the
// amount's string representation for a successful result, or the error
// message for an erroneous one.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Result) String() string {
	if r.IsErr() {
		return r.err.Error()
	}
	return r.amount.String()
}

// resultJSON mirrors the serialized variant structure of a result.
// Exactly one of the fields is set.
type resultJSON struct {
	Amount *Amount        `json:"amount,omitempty"`
	Err    *CurrencyError `json:"error,omitempty"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// A successful result marshals as {"amount":{...}} and an erroneous one
// as {"error":...}, so the variant structure survives a round trip.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (r Result) MarshalJSON() ([]byte, error) {
	if r.IsErr() {
		return json.Marshal(resultJSON{Err: &r.err})
	}
	return json.Marshal(resultJSON{Amount: &r.amount})
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [Result.MarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (r *Result) UnmarshalJSON(data []byte) error {
	var v resultJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Result{}, err)
	}
	switch {
	case v.Amount != nil && v.Err == nil:
		*r = Ok(*v.Amount)
	case v.Err != nil && v.Amount == nil:
		*r = Err(*v.Err)
	default:
		return fmt.Errorf("unmarshaling %T: exactly one of amount and error must be set", Result{})
	}
	return nil
}

// Sum returns the left-to-right sum of the given amounts.
// The first addend is a required argument, so a sum is never empty and
// always has a well-defined currency to check the remaining addends against.
// The first [Mismatch] encountered sticks, exactly as in a chain of
// [Result.AddAmount] calls.
func Sum(first Amount, rest ...Amount) Result {
	r := Ok(first)
	for _, b := range rest {
		r = r.AddAmount(b)
	}
	return r
}
