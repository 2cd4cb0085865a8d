package mathutil

// Sum returns the sum of vals. A nil slice yields ErrNilSlice with
// sentinel result 0; an empty non-nil slice sums to 0.
// Complexity: O(n).
func Sum(vals []int) (int, error) {
	if vals == nil {
		return 0, ErrNilSlice
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}

	return sum, nil
}

// Average returns the arithmetic mean of vals. A nil or empty slice
// yields ErrEmptySlice with sentinel result 0.
// Complexity: O(n).
func Average(vals []int) (float64, error) {
	if len(vals) == 0 {
		return 0, ErrEmptySlice
	}
	sum, err := Sum(vals)
	if err != nil {
		return 0, err
	}

	return float64(sum) / float64(len(vals)), nil
}

// Max returns the largest element of vals. A nil or empty slice yields
// ErrEmptySlice with sentinel result 0.
// Complexity: O(n).
func Max(vals []int) (int, error) {
	if len(vals) == 0 {
		return 0, ErrEmptySlice
	}
	max := vals[0]
	for _, v := range vals[1:] {
		if v > max {
			max = v
		}
	}

	return max, nil
}

// Min returns the smallest element of vals. A nil or empty slice
// yields ErrEmptySlice with sentinel result 0.
// Complexity: O(n).
func Min(vals []int) (int, error) {
	if len(vals) == 0 {
		return 0, ErrEmptySlice
	}
	min := vals[0]
	for _, v := range vals[1:] {
		if v < min {
			min = v
		}
	}

	return min, nil
}
