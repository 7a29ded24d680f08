package geom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBBoxExtend(t *testing.T) {
	var b BBox
	b.Extend(3, -1, true)
	assert.Equal(t, BBox{MinX: 3, MinY: -1, MaxX: 3, MaxY: -1}, b)
	assert.False(t, b.Valid())

	b.Extend(-2, 4, false)
	assert.Equal(t, BBox{MinX: -2, MinY: -1, MaxX: 3, MaxY: 4}, b)
	assert.True(t, b.Valid())

	// interior point leaves the box alone
	b.Extend(0, 0, false)
	assert.Equal(t, BBox{MinX: -2, MinY: -1, MaxX: 3, MaxY: 4}, b)
}

func TestPointSetAdd(t *testing.T) {
	var s PointSet
	s.Add(New(1, 2))
	s.Add(Partial(C(9), Unset())) // incomplete, ignored
	s.Add(New(4, 6))
	require.Equal(t, 2, s.Len())
	assert.Equal(t, BBox{MinX: 1, MinY: 2, MaxX: 4, MaxY: 6}, s.BBox)

	want := []Point{New(1, 2), New(4, 6)}
	if diff := cmp.Diff(want, s.Points, cmp.AllowUnexported(Coord{})); diff != "" {
		t.Errorf("points mismatch (-want +got):\n%s", diff)
	}
}

func TestPointSetNearest(t *testing.T) {
	var s PointSet
	s.Add(New(0, 0))
	s.Add(New(10, 0))
	s.Add(New(0, 10))

	idx, d, ok := s.Nearest(New(9, 1))
	require.True(t, ok)
	assert.Equal(t, 1, idx)
	assert.InDelta(t, 1.4142135, d, 1e-6)

	_, _, ok = s.Nearest(Unplaced())
	assert.False(t, ok)

	var empty PointSet
	_, _, ok = empty.Nearest(New(0, 0))
	assert.False(t, ok)
}

func TestPointSetTotalPath(t *testing.T) {
	var s PointSet
	s.Add(New(0, 0))
	s.Add(New(3, 4))
	s.Add(New(3, 10))
	assert.InDelta(t, 11, s.TotalPath(), 1e-12)

	var single PointSet
	single.Add(New(5, 5))
	assert.Zero(t, single.TotalPath())
}
