package status

// Register is a one-slot record of the most recently completed
// operation's outcome. Collection operations overwrite it on every
// call, including successful ones, so a stale failure from an earlier
// call is never visible after a later success. Read it immediately
// after the call of interest, before any other fallible call.
//
// Register is not goroutine-safe: it models exactly one logical caller.
// Hold one Register per concurrent context instead of sharing.
type Register struct {
	last Code
}

// NewRegister returns a Register whose last code is Success.
func NewRegister() *Register {
	return &Register{last: Success}
}

// Set unconditionally overwrites the register with c.
// Safe on a nil receiver (no-op). Complexity: O(1).
func (r *Register) Set(c Code) {
	if r == nil {
		return
	}
	r.last = c
}

// Last returns the code of the most recently recorded operation.
// A nil receiver reports Success. Complexity: O(1).
func (r *Register) Last() Code {
	if r == nil {
		return Success
	}

	return r.last
}

// Record classifies err via CodeOf, overwrites the register with the
// resulting code, and returns it. A nil err records Success.
func (r *Register) Record(err error) Code {
	c := CodeOf(err)
	r.Set(c)

	return c
}
