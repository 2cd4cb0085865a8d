package mathutil

import "math"

// Add returns a + b.
func Add(a, b int) int { return a + b }

// Subtract returns a - b.
func Subtract(a, b int) int { return a - b }

// Multiply returns a * b.
func Multiply(a, b int) int { return a * b }

// Divide returns a / b. A zero divisor yields ErrDivisionByZero with
// sentinel result 0.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivisionByZero
	}

	return a / b, nil
}

// Power returns base raised to the integer exponent exp, computed by
// repeated multiplication; negative exponents take the reciprocal.
// Complexity: O(|exp|).
func Power(base float64, exp int) float64 {
	if exp == 0 {
		return 1
	}
	abs := exp
	if abs < 0 {
		abs = -abs
	}
	result := 1.0
	for i := 0; i < abs; i++ {
		result *= base
	}
	if exp < 0 {
		return 1 / result
	}

	return result
}

// Sqrt returns the square root of v. A negative input yields
// ErrNegativeSqrt with sentinel result 0.
func Sqrt(v float64) (float64, error) {
	if v < 0 {
		return 0, ErrNegativeSqrt
	}

	return math.Sqrt(v), nil
}

// Factorial returns n!. A negative input yields ErrNegativeFactorial
// with sentinel result 0. Overflows int64 for n > 20; callers needing
// larger n should reach for math/big.
// Complexity: O(n).
func Factorial(n int) (int64, error) {
	if n < 0 {
		return 0, ErrNegativeFactorial
	}
	result := int64(1)
	for i := 2; i <= n; i++ {
		result *= int64(i)
	}

	return result, nil
}

// IsPrime reports whether n is prime using 6k±1 trial division.
// Complexity: O(√n).
func IsPrime(n int) bool {
	if n <= 1 {
		return false
	}
	if n <= 3 {
		return true
	}
	if n%2 == 0 || n%3 == 0 {
		return false
	}
	for i := 5; i*i <= n; i += 6 {
		if n%i == 0 || n%(i+2) == 0 {
			return false
		}
	}

	return true
}
