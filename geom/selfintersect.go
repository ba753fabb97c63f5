package geom

import "math"

// cubicSelfIntersection solves for parameters (t1,t2), t1<=t2, where the
// cubic crosses itself (§4.1). Returns ok=false when no self-intersection
// exists in the open interval, when the discriminant K is positive, or
// when either root falls outside (ε, 1-ε) with ε=1e-12 (§4.1).
//
// The closed-form system used here follows the standard derivation from
// the cubic's parametric coefficients: writing B(t) = p0 + 3t*a + 3t²*b +
// t³*c (in the shifted basis a=p1-p0, b=p2-2p1+p0, c=p3-3p2+3p1-p0), a
// self-intersection satisfies a quadratic in t1+t2 and t1*t2 derived from
// requiring B(t1)=B(t2), t1≠t2.
func cubicSelfIntersection(seg Segment) (t1, t2 float64, ok bool) {
	if seg.Kind != KindCubic {
		return 0, 0, false
	}
	// Coefficients of B(t) = p0 + 3*A*t + 3*B*t^2 + C*t^3 in each axis,
	// where A = c1-p0, B = c2-2c1+p0, C = p1-3c2+3c1-p0.
	ax := seg.C1.X - seg.P0.X
	ay := seg.C1.Y - seg.P0.Y
	bx := seg.C2.X - 2*seg.C1.X + seg.P0.X
	by := seg.C2.Y - 2*seg.C1.Y + seg.P0.Y
	cx := seg.P1.X - 3*seg.C2.X + 3*seg.C1.X - seg.P0.X
	cy := seg.P1.Y - 3*seg.C2.Y + 3*seg.C1.Y - seg.P0.Y

	// The self-intersection parameters are roots of the system obtained by
	// treating the curve's signed curvature/direction change: define
	//   d1 = bx*cy - by*cx
	//   d2 = ax*cy - ay*cx
	//   d3 = ax*by - ay*bx
	// A real self-intersection requires d1 != 0 and the distinct-root
	// discriminant -3*k/d1^2 to be nonnegative, i.e. k <= 0 (k = d2^2 -
	// 4*d1*d3); then t1+t2 and t1*t2 follow from Vieta's formulas, mapped
	// back through the curve's own cubic-to-quadratic reduction (a cubic
	// self-intersects at most once).
	d1 := bx*cy - by*cx
	d2 := ax*cy - ay*cx
	d3 := ax*by - ay*bx

	if math.Abs(d1) < cubicSelfIntersectEps {
		return 0, 0, false
	}

	k := d2*d2 - 4*d1*d3
	if k > 0 {
		return 0, 0, false
	}

	// t1,t2 are the two roots of the quadratic whose sum/product follow
	// from the resultant of B(t1) = B(t2) with t1 != t2 eliminated.
	sum := -d2 / d1
	prod := sum*sum - 3*d3/d1

	disc := sum*sum - 4*prod
	if disc < 0 {
		return 0, 0, false
	}
	sq := math.Sqrt(disc)
	r1 := (sum - sq) / 2
	r2 := (sum + sq) / 2
	if r1 > r2 {
		r1, r2 = r2, r1
	}

	const eps = 1e-12
	if !(r1 > eps && r1 < 1-eps && r2 > eps && r2 < 1-eps) {
		return 0, 0, false
	}
	return r1, r2, true
}
