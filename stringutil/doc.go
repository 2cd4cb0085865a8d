// Package stringutil provides the leaf string functions of caplib:
// transforms that always return fresh storage (Concat, Substring, case
// conversion, Trim, Reverse), lightweight analysis helpers, Split into
// an owned capseq.StringSeq, and formatting/parsing between strings and
// numbers.
//
// Fallible functions return sentinels carrying a status.Code:
// IndexOutOfBounds for a Substring start beyond the input,
// InvalidArgument for a bad precision or negative bounds, and
// ParseError when ParseInt/ParseFloat cannot consume the entire input.
// Sentinel results are the zero values ("", 0), so callers that skip
// error checks still get fail-soft output.
//
// Substring operates on bytes, not runes; inputs are treated as raw
// byte sequences exactly as stored.
package stringutil
