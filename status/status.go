package status

import "errors"

// Code identifies the outcome kind of an operation.
//
// The zero value is Success. The order of the enumerated kinds is fixed
// for binding stability; append new kinds, never reorder.
type Code int

const (
	// Success indicates the operation completed without error.
	Success Code = iota
	// NullReference indicates a required handle or reference was absent.
	NullReference
	// InvalidArgument indicates a value argument violated a precondition.
	InvalidArgument
	// DivisionByZero indicates a numeric operation's divisor was zero.
	DivisionByZero
	// OutOfMemory indicates a required allocation failed.
	OutOfMemory
	// IndexOutOfBounds indicates an index or capacity bound was violated.
	IndexOutOfBounds
	// ParseError indicates a conversion consumed less than its entire input.
	ParseError
)

// Unknown covers any value outside the enumerated kinds, including
// errors that carry no Code at all.
const Unknown Code = -1

// messages holds the fixed human-readable text for each Code.
var messages = map[Code]string{
	Success:          "Success",
	NullReference:    "Null pointer error",
	InvalidArgument:  "Invalid argument",
	DivisionByZero:   "Division by zero",
	OutOfMemory:      "Out of memory",
	IndexOutOfBounds: "Index out of bounds",
	ParseError:       "Parse error",
}

// Message returns the fixed human-readable string for c.
// It is total: any value outside the enumerated kinds yields
// "Unknown error" and never fails.
// Complexity: O(1).
func Message(c Code) string {
	if m, ok := messages[c]; ok {
		return m
	}

	return "Unknown error"
}

// String implements fmt.Stringer for debugging and test output.
func (c Code) String() string {
	switch c {
	case Success:
		return "Success"
	case NullReference:
		return "NullReference"
	case InvalidArgument:
		return "InvalidArgument"
	case DivisionByZero:
		return "DivisionByZero"
	case OutOfMemory:
		return "OutOfMemory"
	case IndexOutOfBounds:
		return "IndexOutOfBounds"
	case ParseError:
		return "ParseError"
	default:
		return "Unknown"
	}
}

// Error is an error value carrying a Code. Package-level sentinels
// across caplib are *Error values, so both errors.Is identity matching
// and CodeOf classification work on anything they wrap.
type Error struct {
	code Code
	text string
}

// NewError builds a sentinel error with the given code and message.
func NewError(code Code, text string) *Error {
	return &Error{code: code, text: text}
}

// Error returns the sentinel's message.
func (e *Error) Error() string { return e.text }

// Code returns the outcome kind this error carries.
func (e *Error) Code() Code { return e.code }

// CodeOf classifies err: nil yields Success, a wrapped *Error yields
// its Code, anything else yields Unknown.
// Complexity: O(depth of the wrap chain).
func CodeOf(err error) Code {
	if err == nil {
		return Success
	}
	var se *Error
	if errors.As(err, &se) {
		return se.Code()
	}

	return Unknown
}
