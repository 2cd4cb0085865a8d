// Package mathutil provides the leaf arithmetic functions of caplib:
// basic integer/float operations, Newton-free helpers like Factorial
// and IsPrime, and reductions over integer slices.
//
// Every fallible function returns a sentinel carrying a status.Code —
// DivisionByZero for Divide with a zero divisor, InvalidArgument for a
// negative Sqrt or Factorial input, NullReference for a nil slice —
// together with a well-defined sentinel result (zero), so callers that
// ignore the error still get fail-soft values.
package mathutil
