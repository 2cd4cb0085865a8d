package geom_test

import (
	"testing"

	"github.com/katalvlaran/caplib/capseq"
	"github.com/katalvlaran/caplib/geom"
	"github.com/katalvlaran/caplib/status"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPointSeq_FiveOfTen walks the reference scenario: capacity 10,
// five records appended, an out-of-range Get fails with
// IndexOutOfBounds and that code stays visible in the register.
func TestPointSeq_FiveOfTen(t *testing.T) {
	ps, err := geom.NewPointSeq(10)
	require.NoError(t, err)

	for i := 1; i <= 5; i++ {
		require.NoError(t, ps.Append(geom.Point2D{X: float64(i), Y: float64(i)}))
	}
	assert.Equal(t, 5, ps.Len())
	assert.Equal(t, 10, ps.Cap())

	_, err = ps.Get(10)
	assert.ErrorIs(t, err, capseq.ErrIndexRange)
	assert.Equal(t, status.IndexOutOfBounds, ps.Register().Last())

	p, err := ps.Get(2)
	require.NoError(t, err)
	assert.Equal(t, geom.Point2D{X: 3, Y: 3}, *p)
}

// TestPointSeq_ValueSemantics verifies the record is copied on append
// and that Get exposes the live buffer slot until the next mutation.
func TestPointSeq_ValueSemantics(t *testing.T) {
	ps, err := geom.NewPointSeq(2)
	require.NoError(t, err)

	pt := geom.Point2D{X: 1, Y: 2}
	require.NoError(t, ps.Append(pt))
	pt.X = 99

	stored, err := ps.Get(0)
	require.NoError(t, err)
	assert.Equal(t, geom.Point2D{X: 1, Y: 2}, *stored, "append must copy by value")

	stored.Y = 7 // writes through to the buffer
	again, err := ps.Get(0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, again.Y)
}

// TestPointSeq_CapacityAndRelease exercises overflow and teardown.
func TestPointSeq_CapacityAndRelease(t *testing.T) {
	_, err := geom.NewPointSeq(0)
	assert.ErrorIs(t, err, capseq.ErrZeroCapacity)

	ps, err := geom.NewPointSeq(1)
	require.NoError(t, err)
	require.NoError(t, ps.Append(geom.Point2D{}))

	assert.ErrorIs(t, ps.Append(geom.Point2D{X: 1}), capseq.ErrSeqFull)
	assert.Equal(t, 1, ps.Len())

	require.NoError(t, ps.Release())
	assert.Equal(t, 0, ps.Len())
	assert.ErrorIs(t, ps.Append(geom.Point2D{}), capseq.ErrNilSeq)

	var nilSeq *geom.PointSeq
	assert.ErrorIs(t, nilSeq.Append(geom.Point2D{}), capseq.ErrNilSeq)
	assert.Equal(t, 0, nilSeq.Len())
	assert.Nil(t, nilSeq.Register())
	assert.ErrorIs(t, nilSeq.Release(), capseq.ErrNilSeq)
}

// TestPointSeq_SharedRegister verifies register sharing through the
// capseq option plumbing.
func TestPointSeq_SharedRegister(t *testing.T) {
	reg := status.NewRegister()
	ps, err := geom.NewPointSeq(2, capseq.WithRegister(reg))
	require.NoError(t, err)

	require.NoError(t, ps.Append(geom.Point2D{X: 4, Y: 2}))
	assert.Equal(t, status.Success, reg.Last())

	_, err = ps.Get(9)
	require.Error(t, err)
	assert.Equal(t, status.IndexOutOfBounds, reg.Last())
}
