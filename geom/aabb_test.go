package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAABBFromPoints(t *testing.T) {
	b := AABBFromPoints(Vector{X: 1, Y: 5}, Vector{X: -2, Y: 3})
	require.Equal(t, -2.0, b.Left())
	require.Equal(t, 1.0, b.Right())
	require.Equal(t, 3.0, b.Top())
	require.Equal(t, 5.0, b.Bottom())
}

func TestAABBIntersects(t *testing.T) {
	a := AABBFromPoints(Vector{X: 0, Y: 0}, Vector{X: 10, Y: 10})
	b := AABBFromPoints(Vector{X: 5, Y: 5}, Vector{X: 15, Y: 15})
	c := AABBFromPoints(Vector{X: 20, Y: 20}, Vector{X: 30, Y: 30})

	require.True(t, a.Intersects(b))
	require.True(t, b.Intersects(a))
	require.False(t, a.Intersects(c))
}

func TestAABBUnion(t *testing.T) {
	a := AABBFromPoints(Vector{X: 0, Y: 0}, Vector{X: 1, Y: 1})
	b := AABBFromPoints(Vector{X: 5, Y: -5}, Vector{X: 6, Y: 6})
	u := a.Union(b)

	require.Equal(t, 0.0, u.Left())
	require.Equal(t, 6.0, u.Right())
	require.Equal(t, -5.0, u.Top())
	require.Equal(t, 6.0, u.Bottom())
}

func TestAABBExpanded(t *testing.T) {
	a := AABBFromPoint(Vector{X: 5, Y: 5})
	e := a.Expanded(1)

	require.Equal(t, 4.0, e.Left())
	require.Equal(t, 6.0, e.Right())
	require.Equal(t, 4.0, e.Top())
	require.Equal(t, 6.0, e.Bottom())
}

func TestAABBContainsPoint(t *testing.T) {
	a := AABBFromPoints(Vector{X: 0, Y: 0}, Vector{X: 10, Y: 10})
	require.True(t, a.ContainsPoint(Vector{X: 5, Y: 5}))
	require.True(t, a.ContainsPoint(Vector{X: 0, Y: 0}))
	require.False(t, a.ContainsPoint(Vector{X: -1, Y: 5}))
}

func TestAABBMaxExtent(t *testing.T) {
	a := AABBFromPoints(Vector{X: 0, Y: 0}, Vector{X: 3, Y: 7})
	require.Equal(t, 7.0, a.MaxExtent())
}

func TestAABBIsEmpty(t *testing.T) {
	require.True(t, EmptyAABB().IsEmpty())
	require.False(t, AABBFromPoint(Vector{}).IsEmpty())
}
