// Package status defines the error-kind enumeration shared by every
// caplib package, the fixed message table for each kind, and Register —
// an explicit last-operation-status slot owned by a single logical
// caller.
//
// 🚀 What is status?
//
//	The failure vocabulary of caplib:
//	  • Code      — Success, NullReference, InvalidArgument,
//	    DivisionByZero, OutOfMemory, IndexOutOfBounds, ParseError
//	  • Error     — an error value carrying a Code; every sentinel in
//	    capseq, geom, hooks, mathutil and stringutil is a *status.Error
//	  • Register  — a one-slot record of the most recent outcome,
//	    overwritten by every collection operation, success included
//
// The Code values and their order are load-bearing: external binding
// tooling maps them positionally, so new kinds must only ever be
// appended.
//
// Register is deliberately not goroutine-safe. It models a single
// logical caller per register; callers that need concurrent contexts
// hold one Register each.
//
// ⚙️ Usage:
//
//	reg := status.NewRegister()
//	_, err := mathutil.Divide(1, 0)
//	if reg.Record(err) == status.DivisionByZero {
//	  fmt.Println(status.Message(reg.Last()))
//	}
package status
