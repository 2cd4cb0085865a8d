// Package capseq provides fixed-capacity append-only sequences: the
// generic Seq[T] and the string-owning StringSeq specialization.
//
// 🚀 What is a Seq?
//
//	An index-addressable container whose capacity is chosen once at
//	construction and never grows:
//	  • Append — copies the element into the next slot, or fails with
//	    ErrSeqFull once Len() == Cap(); the buffer is never reallocated
//	  • Get    — returns a pointer to the stored element, valid until
//	    the next mutation or Release
//	  • Release — drops the buffer exactly once; later operations fail
//	    soft with ErrNilSeq
//
// The no-growth contract is deliberate: elements are referenced
// externally by pointer and index, and a silent reallocation would
// invalidate them. Overflow is therefore a reported error, never a
// hidden resize.
//
// StringSeq diverges from Seq[string] in ownership: Append deep-copies
// the input so the sequence never aliases caller storage, and Release
// clears every stored element before dropping the buffer.
//
// Every operation mirrors its outcome into the sequence's
// status.Register (a fresh one per sequence, or a shared one via
// WithRegister), success included.
//
// ⚙️ Usage:
//
//	seq, err := capseq.New[int](8)
//	if err != nil { ... }            // capseq.ErrZeroCapacity
//	_ = seq.Append(42)
//	v, _ := seq.Get(0)               // *v == 42
//	fmt.Println(seq.Register().Last()) // status.Success
//
// Performance: Append, Get, Len, Cap are O(1); Release is O(n) for
// StringSeq (per-element clear) and O(1) otherwise.
package capseq
