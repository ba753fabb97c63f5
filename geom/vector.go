package geom

import (
	"fmt"
	"math"
)

// Vector represents a point or a displacement in the plane. Y grows
// downward, following the SVG coordinate convention used throughout this
// package (§3 Vector).
//
// Adapted from the teacher's r2.Vector: same arithmetic surface, planar
// only (no spherical normalize/cross-into-3D).
type Vector struct {
	X, Y float64
}

func (v Vector) String() string { return fmt.Sprintf("(%v, %v)", v.X, v.Y) }

// Add returns the standard vector sum of v and o.
func (v Vector) Add(o Vector) Vector { return Vector{v.X + o.X, v.Y + o.Y} }

// Sub returns the standard vector difference of v and o.
func (v Vector) Sub(o Vector) Vector { return Vector{v.X - o.X, v.Y - o.Y} }

// Mul returns v scaled by m.
func (v Vector) Mul(m float64) Vector { return Vector{v.X * m, v.Y * m} }

// Dot returns the standard dot product of v and o.
func (v Vector) Dot(o Vector) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z-component of the 3D cross product of v and o,
// treating both as lying in the z=0 plane.
func (v Vector) Cross(o Vector) float64 { return v.X*o.Y - v.Y*o.X }

// Norm returns the Euclidean length of v.
func (v Vector) Norm() float64 { return math.Sqrt(v.Dot(v)) }

// Lerp linearly interpolates between a and b at parameter t.
func Lerp(a, b Vector, t float64) Vector {
	return Vector{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// IsFinite reports whether both components are finite (not NaN/Inf).
// Inputs containing NaN/Inf are undefined behavior per §5; the pipeline
// itself does not call this check.
func (v Vector) IsFinite() bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) &&
		!math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// approxEqual reports whether v and o are within eps of each other in
// both coordinates (vertex-merge style comparison, §4.1).
func (v Vector) approxEqual(o Vector, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}
