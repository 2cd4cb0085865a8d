package geom

import (
	"math"

	"github.com/katalvlaran/caplib/mathutil"
)

// Distance2D returns the Euclidean distance between p and q.
// Complexity: O(1).
func Distance2D(p, q Point2D) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y

	return math.Sqrt(dx*dx + dy*dy)
}

// Distance3D returns the Euclidean distance between p and q.
// Complexity: O(1).
func Distance3D(p, q Point3D) float64 {
	dx := q.X - p.X
	dy := q.Y - p.Y
	dz := q.Z - p.Z

	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Area returns the circle's area, π·r².
// Returns ErrNegativeRadius (with sentinel result 0) when Radius < 0.
func (c Circle) Area() (float64, error) {
	if c.Radius < 0 {
		return 0, ErrNegativeRadius
	}

	return mathutil.Pi * c.Radius * c.Radius, nil
}

// Circumference returns the circle's circumference, 2·π·r.
// Returns ErrNegativeRadius (with sentinel result 0) when Radius < 0.
func (c Circle) Circumference() (float64, error) {
	if c.Radius < 0 {
		return 0, ErrNegativeRadius
	}

	return 2 * mathutil.Pi * c.Radius, nil
}
