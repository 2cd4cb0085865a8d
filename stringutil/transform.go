package stringutil

import "strings"

// Concat returns a followed by b in fresh storage.
func Concat(a, b string) string {
	return a + b
}

// Substring returns length bytes of s starting at start. A start at or
// beyond the end yields ErrStartOutOfRange; negative start or length
// yields ErrNegativeBounds; a length running past the end is clamped.
// The sentinel result on failure is the empty string.
// Complexity: O(length).
func Substring(s string, start, length int) (string, error) {
	if start < 0 || length < 0 {
		return "", ErrNegativeBounds
	}
	if start >= len(s) {
		return "", ErrStartOutOfRange
	}
	end := start + length
	if end > len(s) {
		end = len(s)
	}

	return strings.Clone(s[start:end]), nil
}

// ToUpper returns s with all letters mapped to upper case.
func ToUpper(s string) string {
	return strings.ToUpper(s)
}

// ToLower returns s with all letters mapped to lower case.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// Trim returns s with leading and trailing whitespace removed.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// Reverse returns s with its runes in reverse order.
// Complexity: O(len(s)).
func Reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}

	return string(runes)
}
