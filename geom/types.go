package geom

import "github.com/katalvlaran/caplib/status"

// Sentinel errors for geometric operations.
var (
	// ErrNegativeRadius indicates a circle measurement on a negative radius.
	ErrNegativeRadius = status.NewError(status.InvalidArgument, "geom: radius must be non-negative")
)

// Point2D is a point in the plane.
type Point2D struct {
	X, Y float64
}

// Point3D is a point in space.
type Point3D struct {
	X, Y, Z float64
}

// Circle is a circle described by its center point and radius.
type Circle struct {
	Center Point2D
	Radius float64
}
