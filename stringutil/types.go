package stringutil

import "github.com/katalvlaran/caplib/status"

// Sentinel errors for string operations.
var (
	// ErrStartOutOfRange indicates a Substring start at or beyond the end of the input.
	ErrStartOutOfRange = status.NewError(status.IndexOutOfBounds, "stringutil: substring start beyond end of string")

	// ErrNegativeBounds indicates a negative start or length.
	ErrNegativeBounds = status.NewError(status.InvalidArgument, "stringutil: start and length must be non-negative")

	// ErrBadPrecision indicates a FormatFloat precision outside [0, 10].
	ErrBadPrecision = status.NewError(status.InvalidArgument, "stringutil: precision must be between 0 and 10")

	// ErrEmptyDelimiter indicates Split was called with an empty delimiter.
	ErrEmptyDelimiter = status.NewError(status.InvalidArgument, "stringutil: delimiter must not be empty")

	// ErrParse indicates a conversion consumed less than its entire input.
	ErrParse = status.NewError(status.ParseError, "stringutil: input is not a valid number")
)
