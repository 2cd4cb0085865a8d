package stringutil

import (
	"fmt"
	"strconv"
)

// FormatInt returns the decimal representation of value.
func FormatInt(value int) string {
	return strconv.Itoa(value)
}

// FormatFloat returns value rendered with exactly precision digits
// after the decimal point. A precision outside [0, 10] yields
// ErrBadPrecision with sentinel result "".
func FormatFloat(value float64, precision int) (string, error) {
	if precision < 0 || precision > 10 {
		return "", ErrBadPrecision
	}

	return strconv.FormatFloat(value, 'f', precision, 64), nil
}

// ParseInt converts s to an int. Any input that is not entirely a
// decimal integer yields ErrParse with sentinel result 0.
func ParseInt(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return v, nil
}

// ParseFloat converts s to a float64. Any input that is not entirely a
// floating-point number yields ErrParse with sentinel result 0.
func ParseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrParse, s)
	}

	return v, nil
}
