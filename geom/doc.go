// Package geom provides plain geometric value records — Point2D,
// Point3D, Circle — with distance and circle measurements, and
// PointSeq, a fixed-capacity sequence holding Point2D records by value.
//
// Records are held and passed by value: appending a point copies it, so
// later mutation of the caller's variable never reaches the sequence.
// Get returns a pointer into the sequence's buffer, valid until the
// next Append or Release — the usual capseq aliasing rule.
//
// Field order of the record structs is fixed for binding stability;
// append fields, never reorder.
//
// ⚙️ Usage:
//
//	ps, _ := geom.NewPointSeq(10)
//	_ = ps.Append(geom.Point2D{X: 1, Y: 2})
//	p, _ := ps.Get(0)
//	d := geom.Distance2D(*p, geom.Point2D{X: 4, Y: 6}) // 5
package geom
