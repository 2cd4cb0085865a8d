package capseq

import (
	"strings"

	"github.com/katalvlaran/caplib/status"
)

// StringSeq is a fixed-capacity sequence that owns its strings: every
// append stores a deep copy, so the sequence never aliases caller
// storage, and Release clears each stored element before dropping the
// buffer. Structurally it is a Seq[string]; only ownership of the
// element payloads diverges.
type StringSeq struct {
	seq *Seq[string]
}

// NewStringSeq constructs a StringSeq with the given fixed capacity.
// Returns ErrZeroCapacity if capacity < 1.
func NewStringSeq(capacity int, opts ...Option) (*StringSeq, error) {
	seq, err := New[string](capacity, opts...)
	if err != nil {
		return nil, err
	}

	return &StringSeq{seq: seq}, nil
}

// Append stores a deep copy of s. The copy shares no backing storage
// with the argument, so a string built over a caller-owned byte buffer
// stays intact in the sequence even if the caller reuses the buffer.
// Returns ErrNilSeq or ErrSeqFull as Seq.Append does; a failed append
// never advances the count. Complexity: O(len(s)).
func (ss *StringSeq) Append(s string) error {
	if ss == nil {
		return ErrNilSeq
	}

	return ss.seq.Append(strings.Clone(s))
}

// AppendBytes stores a string copied out of b. The sequence never
// retains b itself; callers may reuse or discard it afterwards.
func (ss *StringSeq) AppendBytes(b []byte) error {
	if ss == nil {
		return ErrNilSeq
	}

	return ss.seq.Append(string(b))
}

// Get returns the stored copy at index. Returns ErrNilSeq on a nil or
// released sequence, ErrIndexRange when index is outside [0, Len()).
// The empty string is the sentinel result on failure. Complexity: O(1).
func (ss *StringSeq) Get(index int) (string, error) {
	if ss == nil {
		return "", ErrNilSeq
	}
	p, err := ss.seq.Get(index)
	if err != nil {
		return "", err
	}

	return *p, nil
}

// Len returns the number of stored strings; never fails, nil-safe.
func (ss *StringSeq) Len() int {
	if ss == nil {
		return 0
	}

	return ss.seq.Len()
}

// Cap returns the fixed capacity chosen at construction. Nil-safe.
func (ss *StringSeq) Cap() int {
	if ss == nil {
		return 0
	}

	return ss.seq.Cap()
}

// Release clears every stored element, then drops the buffer, then
// marks the container unusable. All three tiers run even when a slot
// is already empty (an empty slot is a no-op, not a fault).
// Complexity: O(Len()).
func (ss *StringSeq) Release() error {
	if ss == nil {
		return ErrNilSeq
	}
	if ss.seq.released {
		return ss.seq.fail(ErrNilSeq)
	}
	for i := 0; i < ss.seq.count; i++ {
		ss.seq.buf[i] = ""
	}

	return ss.seq.Release()
}

// Register returns the status register this sequence records into.
func (ss *StringSeq) Register() *status.Register {
	if ss == nil {
		return nil
	}

	return ss.seq.Register()
}

// Join concatenates the stored strings with sep between elements.
// Returns ErrNilSeq on a nil or released sequence; an empty sequence
// joins to the empty string. Complexity: O(total stored bytes).
func (ss *StringSeq) Join(sep string) (string, error) {
	if ss == nil {
		return "", ErrNilSeq
	}
	if ss.seq.released {
		return "", ss.seq.fail(ErrNilSeq)
	}
	var b strings.Builder
	for i := 0; i < ss.seq.count; i++ {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(ss.seq.buf[i])
	}
	ss.seq.reg.Set(status.Success)

	return b.String(), nil
}
