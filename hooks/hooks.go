package hooks

// SortWithComparator reorders buf in place so it is non-decreasing
// under cmp. Returns ErrNilBuffer when buf is nil or empty,
// ErrNilComparator when cmp is absent; an already-sorted buffer is left
// untouched up to comparator ties.
//
// Insertion sort: O(n²) comparisons worst case, O(n) when buf is
// already sorted. Stability on ties is incidental, not contractual.
func SortWithComparator[T any](buf []T, cmp Comparator[T], opts ...HookOption) error {
	cfg := hookConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(buf) == 0 {
		cfg.register.Record(ErrNilBuffer)

		return ErrNilBuffer
	}
	if cmp == nil {
		cfg.register.Record(ErrNilComparator)

		return ErrNilComparator
	}
	for i := 1; i < len(buf); i++ {
		for j := i; j > 0 && cmp(buf[j-1], buf[j]) > 0; j-- {
			buf[j-1], buf[j] = buf[j], buf[j-1]
		}
	}
	cfg.register.Record(nil)

	return nil
}

// ProcessWithProgress doubles each element of buf in place and invokes
// fn once per element, immediately after transforming it, with the
// fraction (i+1)/len(buf). Fractions are strictly increasing and the
// final one is exactly 1.0. Returns ErrNilBuffer when buf is nil or
// empty, ErrNilProgress when fn is absent.
// Complexity: O(n).
func ProcessWithProgress[T Number](buf []T, fn Progress, opts ...HookOption) error {
	cfg := hookConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(buf) == 0 {
		cfg.register.Record(ErrNilBuffer)

		return ErrNilBuffer
	}
	if fn == nil {
		cfg.register.Record(ErrNilProgress)

		return ErrNilProgress
	}
	n := len(buf)
	for i := range buf {
		buf[i] += buf[i]
		fn(float64(i+1) / float64(n))
	}
	cfg.register.Record(nil)

	return nil
}
