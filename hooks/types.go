package hooks

import "github.com/katalvlaran/caplib/status"

// Sentinel errors for hook operations. The reference contract treats
// an absent buffer, absent callback, and zero length as one condition.
var (
	// ErrNilBuffer indicates the buffer is nil or empty.
	ErrNilBuffer = status.NewError(status.NullReference, "hooks: buffer is nil or empty")

	// ErrNilComparator indicates the comparator callback is absent.
	ErrNilComparator = status.NewError(status.NullReference, "hooks: comparator is nil")

	// ErrNilProgress indicates the progress callback is absent.
	ErrNilProgress = status.NewError(status.NullReference, "hooks: progress callback is nil")
)

// Comparator is a total-order function: negative when a sorts before b,
// zero when they are equivalent, positive when a sorts after b.
type Comparator[T any] func(a, b T) int

// Progress observes fractional completion in (0, 1]. It is invoked
// once per element, after that element has been transformed.
type Progress func(fraction float64)

// Number constrains the element types ProcessWithProgress can double.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// HookOption configures a hook invocation via functional arguments.
type HookOption func(*hookConfig)

// hookConfig holds per-invocation settings.
type hookConfig struct {
	register *status.Register
}

// WithRegister mirrors the outcome of the call into r, success
// included, keeping the last-status discipline that capseq sequences
// follow. A nil register is ignored.
func WithRegister(r *status.Register) HookOption {
	return func(c *hookConfig) {
		if r != nil {
			c.register = r
		}
	}
}
