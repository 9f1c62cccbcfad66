package money

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrCurrencyMismatch is the sentinel wrapped by mismatch errors.
	// Use [errors.Is] to test for it without inspecting the operands.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrDivisionByZero is the sentinel wrapped by division-by-zero errors.
	ErrDivisionByZero = errors.New("division by zero")
)

type errKind uint8

const (
	noErr errKind = iota
	mismatchErr
	divByZeroErr
)

// CurrencyError describes why an arithmetic operation on amounts could not
// produce an [Amount]. It has exactly two constructible variants:
// [Mismatch] and [DivisionByZero].
//
// CurrencyError is a comparable value type: two errors are equal under ==
// if and only if they have the same variant and, for mismatches, the same
// operand currencies in the same order. Mismatch(EUR, USD) and
// Mismatch(USD, EUR) are distinct values.
type CurrencyError struct {
	kind  errKind
	left  Currency
	right Currency
}

// Mismatch returns an error recording the left and right operand currencies,
// in operand order, of an arithmetic attempt between incompatible currencies.
// The order is preserved, never normalized.
func Mismatch(left, right Currency) CurrencyError {
	return CurrencyError{kind: mismatchErr, left: left, right: right}
}

// DivisionByZero returns an error recording that a division's divisor was zero.
func DivisionByZero() CurrencyError {
	return CurrencyError{kind: divByZeroErr}
}

// IsMismatch returns true if the error is a currency mismatch.
func (e CurrencyError) IsMismatch() bool {
	return e.kind == mismatchErr
}

// IsDivisionByZero returns true if the error is a division by zero.
func (e CurrencyError) IsDivisionByZero() bool {
	return e.kind == divByZeroErr
}

// Currencies returns the operand currencies of a mismatch, in operand order.
// For other variants both currencies are [XXX].
func (e CurrencyError) Currencies() (left, right Currency) {
	return e.left, e.right
}

// Error implements the error interface.
func (e CurrencyError) Error() string {
	switch e.kind {
	case mismatchErr:
		return fmt.Sprintf("%v: %v and %v", ErrCurrencyMismatch, e.left, e.right)
	case divByZeroErr:
		return ErrDivisionByZero.Error()
	}
	return "unknown currency error"
}

// Unwrap returns the matching sentinel, [ErrCurrencyMismatch] or
// [ErrDivisionByZero], so that [errors.Is] works on wrapped values.
func (e CurrencyError) Unwrap() error {
	switch e.kind {
	case mismatchErr:
		return ErrCurrencyMismatch
	case divByZeroErr:
		return ErrDivisionByZero
	}
	return nil
}

// EqualResult returns true if r holds an error equal to e.
// See also method [Result.EqualError].
func (e CurrencyError) EqualResult(r Result) bool {
	return r.EqualError(e)
}

// MarshalJSON implements the [json.Marshaler] interface.
// A mismatch marshals as {"mismatch":["EUR","USD"]} and a division by zero
// as "division_by_zero", so the variant structure survives a round trip.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (e CurrencyError) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case mismatchErr:
		return json.Marshal(struct {
			Mismatch [2]Currency `json:"mismatch"`
		}{[2]Currency{e.left, e.right}})
	case divByZeroErr:
		return json.Marshal("division_by_zero")
	}
	return nil, fmt.Errorf("marshaling %T: zero value is not a valid error", e)
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also method [CurrencyError.MarshalJSON].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (e *CurrencyError) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if s != "division_by_zero" {
			return fmt.Errorf("unmarshaling %T: unknown variant %q", *e, s)
		}
		*e = DivisionByZero()
		return nil
	}
	var v struct {
		Mismatch *[2]Currency `json:"mismatch"`
	}
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", *e, err)
	}
	if v.Mismatch == nil {
		return fmt.Errorf("unmarshaling %T: missing variant", *e)
	}
	*e = Mismatch(v.Mismatch[0], v.Mismatch[1])
	return nil
}
