// Package capseq defines sentinel errors and construction options for
// fixed-capacity sequences.
package capseq

import (
	"github.com/katalvlaran/caplib/status"
)

// Sentinel errors for sequence operations. Each carries a status.Code,
// so status.CodeOf and Register.Record classify them without string
// matching.
var (
	// ErrNilSeq indicates the sequence handle is nil or already released.
	ErrNilSeq = status.NewError(status.NullReference, "capseq: sequence is nil or released")

	// ErrZeroCapacity indicates a non-positive capacity at construction.
	ErrZeroCapacity = status.NewError(status.InvalidArgument, "capseq: capacity must be positive")

	// ErrSeqFull indicates an append on a sequence already at capacity.
	ErrSeqFull = status.NewError(status.IndexOutOfBounds, "capseq: sequence is at capacity")

	// ErrIndexRange indicates an index outside [0, Len).
	ErrIndexRange = status.NewError(status.IndexOutOfBounds, "capseq: index out of range")
)

// Option configures a sequence at construction via functional arguments.
type Option func(*seqConfig)

// seqConfig holds construction-time settings shared by every sequence
// flavor in this package.
type seqConfig struct {
	register *status.Register
}

// defaultConfig returns the construction defaults: a fresh Register
// owned by the new sequence.
func defaultConfig() seqConfig {
	return seqConfig{register: status.NewRegister()}
}

// WithRegister shares the caller's register with the sequence instead
// of allocating a fresh one. Useful when several sequences belong to
// one logical execution context. A nil register is ignored.
func WithRegister(r *status.Register) Option {
	return func(c *seqConfig) {
		if r != nil {
			c.register = r
		}
	}
}
