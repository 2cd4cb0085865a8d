package geom

import (
	"github.com/katalvlaran/caplib/capseq"
	"github.com/katalvlaran/caplib/status"
)

// PointSeq is a fixed-capacity sequence of Point2D records held by
// value. Append copies the record; there is no further ownership
// concern beyond the buffer itself, which Release drops.
type PointSeq struct {
	seq *capseq.Seq[Point2D]
}

// NewPointSeq constructs a PointSeq with the given fixed capacity.
// Returns capseq.ErrZeroCapacity if capacity < 1.
func NewPointSeq(capacity int, opts ...capseq.Option) (*PointSeq, error) {
	seq, err := capseq.New[Point2D](capacity, opts...)
	if err != nil {
		return nil, err
	}

	return &PointSeq{seq: seq}, nil
}

// Append copies p into the next slot. Returns capseq.ErrNilSeq on a
// nil or released sequence, capseq.ErrSeqFull once at capacity.
// Complexity: O(1).
func (ps *PointSeq) Append(p Point2D) error {
	if ps == nil {
		return capseq.ErrNilSeq
	}

	return ps.seq.Append(p)
}

// Get returns a pointer to the record at index, valid until the next
// Append or Release. Returns capseq.ErrNilSeq or capseq.ErrIndexRange
// with a nil sentinel result. Complexity: O(1).
func (ps *PointSeq) Get(index int) (*Point2D, error) {
	if ps == nil {
		return nil, capseq.ErrNilSeq
	}

	return ps.seq.Get(index)
}

// Len returns the number of stored records; never fails, nil-safe.
func (ps *PointSeq) Len() int {
	if ps == nil {
		return 0
	}

	return ps.seq.Len()
}

// Cap returns the fixed capacity chosen at construction. Nil-safe.
func (ps *PointSeq) Cap() int {
	if ps == nil {
		return 0
	}

	return ps.seq.Cap()
}

// Release drops the record buffer and marks the sequence unusable.
func (ps *PointSeq) Release() error {
	if ps == nil {
		return capseq.ErrNilSeq
	}

	return ps.seq.Release()
}

// Register returns the status register this sequence records into.
func (ps *PointSeq) Register() *status.Register {
	if ps == nil {
		return nil
	}

	return ps.seq.Register()
}
