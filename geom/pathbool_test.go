package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// square returns a closed clockwise (in this package's y-down convention)
// square Path with corners (x,y) and (x+size,y+size).
func square(x, y, size float64) Path {
	a := Vector{X: x, Y: y}
	b := Vector{X: x + size, Y: y}
	c := Vector{X: x + size, Y: y + size}
	d := Vector{X: x, Y: y + size}
	return Path{Line(a, b), Line(b, c), Line(c, d), Line(d, a)}
}

// insideResult reports whether p has a nonzero winding number against
// every loop in paths combined — the natural membership test for a
// boundary this package's own extraction stage produced, independent of
// whichever fill rules were applied to the original inputs.
func insideResult(paths []Path, p Vector) bool {
	count := 0
	for _, path := range paths {
		count += windingNumber(p, path, DefaultEpsilons)
	}
	return count != 0
}

func TestPathBooleanEmptyInputs(t *testing.T) {
	result := PathBoolean(nil, NonZero, nil, NonZero, Union)
	require.Nil(t, result)
}

func TestPathBooleanUnionDisjointSquares(t *testing.T) {
	a := square(0, 0, 10)
	b := square(20, 0, 10)

	result := PathBoolean(a, NonZero, b, NonZero, Union)
	require.Len(t, result, 1)

	require.True(t, insideResult(result, Vector{X: 5, Y: 5}))
	require.True(t, insideResult(result, Vector{X: 25, Y: 5}))
	require.False(t, insideResult(result, Vector{X: 15, Y: 5})) // the gap between them
}

func TestPathBooleanIntersectionOverlappingSquares(t *testing.T) {
	a := square(0, 0, 10)
	b := square(5, 5, 10)

	result := PathBoolean(a, NonZero, b, NonZero, Intersection)
	require.Len(t, result, 1)

	require.True(t, insideResult(result, Vector{X: 7, Y: 7})) // inside the 5x5 overlap
	require.False(t, insideResult(result, Vector{X: 2, Y: 2}))
	require.False(t, insideResult(result, Vector{X: 12, Y: 12}))
}

func TestPathBooleanCoincidentSquares(t *testing.T) {
	a := square(0, 0, 10)
	b := square(0, 0, 10)

	union := PathBoolean(a, NonZero, b, NonZero, Union)
	require.True(t, insideResult(union, Vector{X: 5, Y: 5}))
	require.False(t, insideResult(union, Vector{X: 15, Y: 15}))

	diff := PathBoolean(a, NonZero, b, NonZero, Difference)
	require.False(t, insideResult(diff, Vector{X: 5, Y: 5}))

	inter := PathBoolean(a, NonZero, b, NonZero, Intersection)
	require.True(t, insideResult(inter, Vector{X: 5, Y: 5}))

	excl := PathBoolean(a, NonZero, b, NonZero, Exclusion)
	require.False(t, insideResult(excl, Vector{X: 5, Y: 5}))
}

func TestPathBooleanEmptyIdentity(t *testing.T) {
	a := square(0, 0, 10)
	var empty Path

	union := PathBoolean(a, NonZero, empty, NonZero, Union)
	require.True(t, insideResult(union, Vector{X: 5, Y: 5}))
	require.False(t, insideResult(union, Vector{X: 15, Y: 15}))

	inter := PathBoolean(a, NonZero, empty, NonZero, Intersection)
	require.False(t, insideResult(inter, Vector{X: 5, Y: 5}))

	diff := PathBoolean(a, NonZero, empty, NonZero, Difference)
	require.True(t, insideResult(diff, Vector{X: 5, Y: 5}))
}

func TestPathBooleanFractureCoversUnion(t *testing.T) {
	a := square(0, 0, 10)
	b := square(5, 5, 10)

	faces := PathBoolean(a, NonZero, b, NonZero, Fracture)
	union := PathBoolean(a, NonZero, b, NonZero, Union)

	samples := []Vector{
		{X: 2, Y: 2},   // A only
		{X: 7, Y: 7},   // overlap
		{X: 12, Y: 12}, // B only
		{X: 20, Y: 20}, // outside both
	}
	for _, p := range samples {
		require.Equal(t, insideResult(union, p), insideResult(faces, p), "point %v", p)
	}
}

func TestPathBooleanDivisionCoversA(t *testing.T) {
	a := square(0, 0, 10)
	b := square(5, 5, 10)

	division := PathBoolean(a, NonZero, b, NonZero, Division)

	samples := []Vector{
		{X: 2, Y: 2},
		{X: 7, Y: 7},
		{X: 12, Y: 12},
	}
	for _, p := range samples {
		want := insideResult([]Path{a}, p)
		require.Equal(t, want, insideResult(division, p), "point %v", p)
	}
}

// TestPathBooleanDivisionNestedSquareNoSpuriousOuterFace checks that when B
// is fully nested inside A (a genuine child component in the nesting
// forest, rather than an overlap that merges into one component), Division
// emits exactly the two real pieces (A-minus-B, with B as a hole, and
// A-intersect-B) and not a spurious extra copy of B's outer face.
func TestPathBooleanDivisionNestedSquareNoSpuriousOuterFace(t *testing.T) {
	a := square(0, 0, 20)
	b := square(5, 5, 10)

	division := PathBoolean(a, NonZero, b, NonZero, Division)
	require.Len(t, division, 2)

	require.True(t, insideResult(division, Vector{X: 1, Y: 1}))   // A only
	require.True(t, insideResult(division, Vector{X: 10, Y: 10})) // A and B
	require.False(t, insideResult(division, Vector{X: 25, Y: 25}))
}
