package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestCubicSelfIntersectionFigureEight uses a cubic whose control polygon
// crosses itself (P0=(0,0), C1=(1,1), C2=(-1,1), P1=(1,0)) and checks that
// the returned parameters land on the same point, which is the property
// the closed-form solve is supposed to guarantee.
func TestCubicSelfIntersectionFigureEight(t *testing.T) {
	seg := Cubic(
		Vector{X: 0, Y: 0},
		Vector{X: 1, Y: 1},
		Vector{X: -1, Y: 1},
		Vector{X: 1, Y: 0},
	)

	t1, t2, ok := cubicSelfIntersection(seg)
	require.True(t, ok)
	require.Less(t, t1, t2)
	require.InDelta(t, 1.0, t1+t2, 1e-9) // this curve's crossing is symmetric about t=0.5

	p1 := Sample(seg, t1)
	p2 := Sample(seg, t2)
	require.InDelta(t, p1.X, p2.X, 1e-6)
	require.InDelta(t, p1.Y, p2.Y, 1e-6)
}

// TestCubicSelfIntersectionSimpleCurveNone checks that an ordinary,
// non-crossing cubic reports no self-intersection.
func TestCubicSelfIntersectionSimpleCurveNone(t *testing.T) {
	seg := Cubic(
		Vector{X: 0, Y: 0},
		Vector{X: 0, Y: 10},
		Vector{X: 10, Y: 10},
		Vector{X: 10, Y: 0},
	)
	_, _, ok := cubicSelfIntersection(seg)
	require.False(t, ok)
}
