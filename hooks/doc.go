// Package hooks defines the two caller-extension points of caplib and
// the buffer-level operations that drive them:
//
//   - Comparator[T] — a total-order function over two elements;
//     SortWithComparator reorders a caller-owned buffer in place
//     consistent with that order
//   - Progress — a completion observer; ProcessWithProgress transforms
//     each element and reports (i+1)/n after it, strictly increasing
//     and ending at exactly 1.0
//
// Both operations work directly on caller-owned slices, not on capseq
// sequences, and are therefore decoupled from collection ownership.
// They share the status discipline: HookOption WithRegister mirrors the
// outcome of every call into a caller's status.Register, success
// included.
//
// The sort is an insertion sort. It happens to be stable, but stability
// on comparator ties is not part of the contract.
//
// ⚙️ Usage:
//
//	buf := []int{3, 1, 2}
//	_ = hooks.SortWithComparator(buf, func(a, b int) int { return a - b })
//	// buf == [1 2 3]
//
//	_ = hooks.ProcessWithProgress(buf, func(frac float64) {
//	  fmt.Printf("%.2f ", frac) // 0.33 0.67 1.00
//	})
package hooks
