package mathutil

import "github.com/katalvlaran/caplib/status"

// Mathematical constants.
const (
	// Pi is the circle constant used by geom's circle measurements.
	Pi = 3.14159265359
	// E is Euler's number.
	E = 2.71828182846
	// GoldenRatio is (1+√5)/2.
	GoldenRatio = 1.61803398875
)

// Sentinel errors for arithmetic operations.
var (
	// ErrDivisionByZero indicates Divide was called with a zero divisor.
	ErrDivisionByZero = status.NewError(status.DivisionByZero, "mathutil: division by zero")

	// ErrNegativeSqrt indicates Sqrt was called with a negative value.
	ErrNegativeSqrt = status.NewError(status.InvalidArgument, "mathutil: square root of negative value")

	// ErrNegativeFactorial indicates Factorial was called with a negative value.
	ErrNegativeFactorial = status.NewError(status.InvalidArgument, "mathutil: factorial of negative value")

	// ErrNilSlice indicates a reduction over a nil slice.
	ErrNilSlice = status.NewError(status.NullReference, "mathutil: slice is nil")

	// ErrEmptySlice indicates a reduction that needs at least one element.
	ErrEmptySlice = status.NewError(status.InvalidArgument, "mathutil: slice is empty")
)
