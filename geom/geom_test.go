package geom_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/caplib/geom"
	"github.com/katalvlaran/caplib/status"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

//----------------------------------------------------------------------------//
// Distance Tests
//----------------------------------------------------------------------------//

// TestDistance2D checks classic Pythagorean cases and symmetry.
func TestDistance2D(t *testing.T) {
	cases := []struct {
		name string
		p, q geom.Point2D
		want float64
	}{
		{"SamePoint", geom.Point2D{X: 1, Y: 1}, geom.Point2D{X: 1, Y: 1}, 0},
		{"ThreeFourFive", geom.Point2D{}, geom.Point2D{X: 3, Y: 4}, 5},
		{"NegativeCoords", geom.Point2D{X: -1, Y: -1}, geom.Point2D{X: 2, Y: 3}, 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, geom.Distance2D(tc.p, tc.q), epsilon)
			assert.InDelta(t, tc.want, geom.Distance2D(tc.q, tc.p), epsilon, "distance must be symmetric")
		})
	}
}

// TestDistance3D checks a unit-cube diagonal and a 2D-degenerate case.
func TestDistance3D(t *testing.T) {
	d := geom.Distance3D(geom.Point3D{}, geom.Point3D{X: 1, Y: 1, Z: 1})
	assert.InDelta(t, math.Sqrt(3), d, epsilon)

	flat := geom.Distance3D(geom.Point3D{X: 0, Y: 0, Z: 2}, geom.Point3D{X: 3, Y: 4, Z: 2})
	assert.InDelta(t, 5, flat, epsilon, "zero Z delta must reduce to the 2D distance")
}

//----------------------------------------------------------------------------//
// Circle Tests
//----------------------------------------------------------------------------//

// TestCircle_Measurements verifies area and circumference including the
// degenerate zero radius and the negative-radius precondition.
func TestCircle_Measurements(t *testing.T) {
	c := geom.Circle{Center: geom.Point2D{X: 1, Y: 2}, Radius: 2}

	area, err := c.Area()
	assert.NoError(t, err)
	assert.InDelta(t, 12.56637061436, area, 1e-6)

	circ, err := c.Circumference()
	assert.NoError(t, err)
	assert.InDelta(t, 12.56637061436, circ, 1e-6)

	zero := geom.Circle{}
	area, err = zero.Area()
	assert.NoError(t, err)
	assert.Equal(t, 0.0, area)

	bad := geom.Circle{Radius: -1}
	area, err = bad.Area()
	assert.ErrorIs(t, err, geom.ErrNegativeRadius)
	assert.Equal(t, 0.0, area, "sentinel result on failure is 0")
	assert.Equal(t, status.InvalidArgument, status.CodeOf(err))

	_, err = bad.Circumference()
	assert.ErrorIs(t, err, geom.ErrNegativeRadius)
}
