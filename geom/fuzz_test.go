package geom

import (
	"math"
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/stretchr/testify/require"
)

// randomSquare derives a square from raw fuzzer bytes, snapping position and
// size onto a coarse grid so randomly generated pairs frequently overlap,
// touch, or coincide rather than almost always landing disjoint.
func randomSquare(f *fuzz.Fuzzer) Path {
	var ix, iy, isize uint8
	f.Fuzz(&ix)
	f.Fuzz(&iy)
	f.Fuzz(&isize)

	x := float64(ix%8) * 5
	y := float64(iy%8) * 5
	size := 5 + float64(isize%4)*5
	return square(x, y, size)
}

// samplePoints returns a coarse grid of points covering the region any pair
// of randomSquare results can occupy, used to probe set-membership laws.
func samplePoints() []Vector {
	var pts []Vector
	for x := -5.0; x <= 55; x += 5 {
		for y := -5.0; y <= 55; y += 5 {
			pts = append(pts, Vector{X: x, Y: y})
		}
	}
	return pts
}

// TestPathBooleanLawsFuzz checks the idempotence and commutativity laws
// (§8) against randomly generated axis-aligned squares: A∪A=A and
// A∪B=B∪A, A∩B=B∩A, judged by winding-number membership at a fixed grid
// of probe points rather than by comparing output segments directly.
func TestPathBooleanLawsFuzz(t *testing.T) {
	f := fuzz.New().NilChance(0).NumElements(1, 1)
	pts := samplePoints()

	for trial := 0; trial < 50; trial++ {
		a := randomSquare(f)
		b := randomSquare(f)

		idem := PathBoolean(a, NonZero, a, NonZero, Union)
		for _, p := range pts {
			require.Equal(t, insideResult([]Path{a}, p), insideResult(idem, p),
				"idempotence trial %d point %v", trial, p)
		}

		unionAB := PathBoolean(a, NonZero, b, NonZero, Union)
		unionBA := PathBoolean(b, NonZero, a, NonZero, Union)
		interAB := PathBoolean(a, NonZero, b, NonZero, Intersection)
		interBA := PathBoolean(b, NonZero, a, NonZero, Intersection)
		for _, p := range pts {
			require.Equal(t, insideResult(unionAB, p), insideResult(unionBA, p),
				"union commutativity trial %d point %v", trial, p)
			require.Equal(t, insideResult(interAB, p), insideResult(interBA, p),
				"intersection commutativity trial %d point %v", trial, p)
		}
	}
}

// TestVectorFuzzIsFiniteNeverPanics exercises Vector arithmetic against
// arbitrary (including non-finite) fuzzed coordinates to confirm IsFinite
// classifies them without panicking.
func TestVectorFuzzIsFiniteNeverPanics(t *testing.T) {
	f := fuzz.New()
	for i := 0; i < 200; i++ {
		var v Vector
		f.Fuzz(&v.X)
		f.Fuzz(&v.Y)

		got := v.IsFinite()
		want := !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
		require.Equal(t, want, got)
	}
}
