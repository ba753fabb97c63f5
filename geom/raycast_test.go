package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWindingNumberSquare(t *testing.T) {
	sq := square(0, 0, 10)

	require.NotZero(t, windingNumber(Vector{X: 5, Y: 5}, sq, DefaultEpsilons))
	require.Zero(t, windingNumber(Vector{X: 50, Y: 50}, sq, DefaultEpsilons))
	require.Zero(t, windingNumber(Vector{X: -5, Y: 5}, sq, DefaultEpsilons))
}

func TestWindingNumberArcCircle(t *testing.T) {
	// A full circle of radius 5 centered at (0,0), built from two
	// half-arcs (a single coincident-endpoint arc is a degenerate case
	// handled separately in segment_test.go).
	top := Arc(Vector{X: -5, Y: 0}, 5, 5, 0, false, true, Vector{X: 5, Y: 0})
	bottom := Arc(Vector{X: 5, Y: 0}, 5, 5, 0, false, true, Vector{X: -5, Y: 0})
	circle := Path{top, bottom}

	require.NotZero(t, windingNumber(Vector{X: 0, Y: 0}, circle, DefaultEpsilons))
	require.Zero(t, windingNumber(Vector{X: 20, Y: 20}, circle, DefaultEpsilons))
}

func TestLineRayCrossing(t *testing.T) {
	// A descending chord crossing the ray to the right of p.
	require.Equal(t, 1, lineRayCrossing(Vector{X: 0, Y: 0}, Vector{X: 5, Y: -5}, Vector{X: 5, Y: 5}))
	// Same chord, but p is to the right of it: no crossing.
	require.Equal(t, 0, lineRayCrossing(Vector{X: 10, Y: 0}, Vector{X: 5, Y: -5}, Vector{X: 5, Y: 5}))
	// Horizontal chord never crosses a horizontal ray.
	require.Equal(t, 0, lineRayCrossing(Vector{X: 0, Y: 0}, Vector{X: 5, Y: 0}, Vector{X: 10, Y: 0}))
}
