package hooks_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/caplib/hooks"
)

// benchmarkSort sorts a fresh shuffled buffer of size n each iteration.
func benchmarkSort(b *testing.B, n int) {
	src := make([]int, n)
	rng := rand.New(rand.NewSource(1))
	for i := range src {
		src[i] = rng.Int()
	}
	buf := make([]int, n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(buf, src)
		if err := hooks.SortWithComparator(buf, func(a, b int) int { return a - b }); err != nil {
			b.Fatalf("SortWithComparator failed: %v", err)
		}
	}
}

// BenchmarkSort_Small measures a 64-element buffer.
func BenchmarkSort_Small(b *testing.B) { benchmarkSort(b, 64) }

// BenchmarkSort_Medium measures a 1024-element buffer; the quadratic
// sort makes this the practical upper end.
func BenchmarkSort_Medium(b *testing.B) { benchmarkSort(b, 1024) }

// BenchmarkProcessWithProgress measures the per-element transform and
// callback overhead.
func BenchmarkProcessWithProgress(b *testing.B) {
	buf := make([]int, 4096)
	for i := range buf {
		buf[i] = i
	}
	sink := 0.0

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := hooks.ProcessWithProgress(buf, func(f float64) { sink = f }); err != nil {
			b.Fatalf("ProcessWithProgress failed: %v", err)
		}
	}
	_ = sink
}
