/*
Package money implements a closed arithmetic algebra for monetary amounts
tagged with a currency.
It combines the [decimal] package's arbitrary-precision decimal numbers with
a [Currency] type representing ISO 4217 currencies, and makes any arithmetic
outcome that could mix incompatible currencies inexpressible without explicit
error handling.

# Features

  - Immutable value types, safe for concurrent use across goroutines
  - Arithmetic whose fallibility is encoded in return types: operations that
    can never fail return an [Amount], operations that can fail return a [Result]
  - Sticky error propagation through chained computations
  - Total cross-currency equality and fail-fast cross-currency ordering
  - Conversion between currencies using caller-supplied exchange rates
  - JSON, text, and SQL serialization of the core types

# Representation

The package is built around three types.
An [Amount] is a decimal quantity paired with a [Currency]; zero and negative
quantities are valid, and nothing is ever rounded implicitly.
A [CurrencyError] records why an operation on amounts failed, as one of
exactly two variants: [Mismatch], which captures the two differing operand
currencies in operand order, and [DivisionByZero].
A [Result] holds either an Amount or a CurrencyError and is the return type
of every fallible operation.

# Error propagation

Results can be used directly in further arithmetic.
Failure is sticky with the left operand winning: once a Result carries an
error, every subsequent operation consuming it on the left returns that same
error untouched, without even inspecting the other operand.
A chain of operations therefore needs exactly one check, at the end:

	total := money.Sum(a, b).Mul(rate).Quo(parts)
	amount, err := total.Amount()

# Equality and ordering

Equality between amounts is total: amounts in different currencies are never
equal, even when both quantities are zero.
Ordering is partial: [Amount.Cmp] and its derivatives require equal
currencies and panic otherwise, because a boolean comparison has no way to
carry a failure. Guard with [Amount.SameCurr] where the currencies are not
known statically.

[decimal]: https://pkg.go.dev/github.com/shopspring/decimal
*/
package money
