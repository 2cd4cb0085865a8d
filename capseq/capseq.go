package capseq

import "github.com/katalvlaran/caplib/status"

// Seq is a fixed-capacity append-only sequence of T. The capacity is
// set once by New and never changes; the element buffer is allocated
// once and never reallocated, so pointers returned by Get stay valid
// until the next Append or Release.
//
// A Seq owns its buffer exclusively. Release relinquishes it; the Seq
// is unusable afterwards and every later operation reports ErrNilSeq.
type Seq[T any] struct {
	buf      []T
	count    int
	capacity int
	reg      *status.Register
	released bool
}

// New constructs a Seq with the given fixed capacity.
// Returns ErrZeroCapacity if capacity < 1. When WithRegister is given,
// the outcome of construction itself is recorded there.
// Complexity: O(capacity) for the single buffer allocation.
func New[T any](capacity int, opts ...Option) (*Seq[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if capacity < 1 {
		cfg.register.Set(status.InvalidArgument)

		return nil, ErrZeroCapacity
	}
	s := &Seq[T]{
		buf:      make([]T, capacity),
		capacity: capacity,
		reg:      cfg.register,
	}
	s.reg.Set(status.Success)

	return s, nil
}

// Append copies item into slot Len() and increments the count.
// Returns ErrNilSeq on a nil or released sequence, ErrSeqFull once the
// sequence is at capacity. A failed append never advances the count.
// Complexity: O(1).
func (s *Seq[T]) Append(item T) error {
	if s == nil {
		return ErrNilSeq
	}
	if s.released {
		return s.fail(ErrNilSeq)
	}
	if s.count == s.capacity {
		return s.fail(ErrSeqFull)
	}
	s.buf[s.count] = item
	s.count++
	s.reg.Set(status.Success)

	return nil
}

// Get returns a pointer to the element at index. The pointer is valid
// only until the next Append or Release. Returns ErrNilSeq on a nil or
// released sequence, ErrIndexRange when index is outside [0, Len()).
// Complexity: O(1).
func (s *Seq[T]) Get(index int) (*T, error) {
	if s == nil {
		return nil, ErrNilSeq
	}
	if s.released {
		return nil, s.fail(ErrNilSeq)
	}
	if index < 0 || index >= s.count {
		return nil, s.fail(ErrIndexRange)
	}
	s.reg.Set(status.Success)

	return &s.buf[index], nil
}

// Len returns the number of stored elements. It never fails: a nil or
// released sequence reports 0, and the register is left untouched.
// Complexity: O(1).
func (s *Seq[T]) Len() int {
	if s == nil || s.released {
		return 0
	}

	return s.count
}

// Cap returns the fixed capacity chosen at construction. Nil-safe.
func (s *Seq[T]) Cap() int {
	if s == nil {
		return 0
	}

	return s.capacity
}

// Release drops the element buffer and marks the sequence unusable.
// Releasing twice is fail-soft: the second call reports ErrNilSeq and
// changes nothing. Complexity: O(1).
func (s *Seq[T]) Release() error {
	if s == nil {
		return ErrNilSeq
	}
	if s.released {
		return s.fail(ErrNilSeq)
	}
	s.buf = nil
	s.count = 0
	s.released = true
	s.reg.Set(status.Success)

	return nil
}

// Register returns the status register this sequence records into.
func (s *Seq[T]) Register() *status.Register {
	if s == nil {
		return nil
	}

	return s.reg
}

// fail records err's code into the register and returns err.
func (s *Seq[T]) fail(err *status.Error) error {
	s.reg.Set(err.Code())

	return err
}
