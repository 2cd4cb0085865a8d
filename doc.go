// Package caplib is a small toolkit of capacity-bounded owned
// collections, a typed operation-status register, and buffer-level
// callback hooks, plus the leaf math and string utilities that exercise
// them.
//
// 🚀 What is caplib?
//
//	A tiny, dependency-light library that brings together:
//		• status/     — error-kind enumeration, message lookup & per-context Register
//		• capseq/     — generic fixed-capacity append-only Seq[T] + owned StringSeq
//		• geom/       — 2D/3D point & circle records and a by-value PointSeq
//		• hooks/      — comparator-driven sort & progress-reporting processing
//		• mathutil/   — leaf arithmetic: Divide, Power, Sqrt, Factorial, IsPrime…
//		• stringutil/ — leaf transforms: Substring, Trim, Split, Format/Parse…
//
// ✨ Why choose caplib?
//
//   - Explicit capacity – a Seq never grows past its declared capacity;
//     overflow is a reported error, never a hidden reallocation
//   - Owned elements – StringSeq deep-copies on append and releases
//     every element on teardown
//   - Typed failures – every fallible call returns a sentinel carrying a
//     status.Code, and collections mirror it into a status.Register
//   - Pure Go – no cgo, no hidden deps
//
// Quick sketch:
//
//	seq, _ := capseq.NewStringSeq(2)
//	_ = seq.Append("first")
//	_ = seq.Append("second")
//	err := seq.Append("third") // capseq.ErrSeqFull, Len() stays 2
//
// Dive into the per-package doc.go files for contracts, error
// precedence, and complexity notes.
//
//	go get github.com/katalvlaran/caplib
package caplib
