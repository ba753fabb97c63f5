package geom

import "math"

// SegmentKind distinguishes the four segment shapes of §3.
type SegmentKind uint8

const (
	KindLine SegmentKind = iota
	KindCubic
	KindQuadratic
	KindArc
)

// Segment is one of Line(p0,p1), Cubic(p0,c1,c2,p1), Quadratic(p0,c,p1),
// or Arc(p0,rx,ry,phiDeg,largeArc,sweep,p1) (§3). All four shapes are
// folded into a single struct (rather than an interface per kind) so that
// the graph stages (§4.4 onward) can carry a `Segment` value without type
// assertions; unused fields for a given Kind are simply zero.
//
// p0 is always the segment's start, enabling direct reversal and chaining.
type Segment struct {
	Kind SegmentKind

	P0, P1 Vector // all kinds

	C1 Vector // Cubic control 1, Quadratic control
	C2 Vector // Cubic control 2 only

	RX, RY   float64 // Arc radii
	PhiDeg   float64 // Arc x-axis rotation, degrees
	LargeArc bool    // Arc large-arc-flag
	Sweep    bool    // Arc sweep-flag
}

// Line returns a Line segment.
func Line(p0, p1 Vector) Segment { return Segment{Kind: KindLine, P0: p0, P1: p1} }

// Cubic returns a cubic Bézier segment.
func Cubic(p0, c1, c2, p1 Vector) Segment {
	return Segment{Kind: KindCubic, P0: p0, C1: c1, C2: c2, P1: p1}
}

// Quadratic returns a quadratic Bézier segment.
func Quadratic(p0, c, p1 Vector) Segment {
	return Segment{Kind: KindQuadratic, P0: p0, C1: c, P1: p1}
}

// Arc returns an SVG elliptic-arc segment.
func Arc(p0 Vector, rx, ry, phiDeg float64, largeArc, sweep bool, p1 Vector) Segment {
	return Segment{
		Kind: KindArc, P0: p0, P1: p1,
		RX: rx, RY: ry, PhiDeg: phiDeg, LargeArc: largeArc, Sweep: sweep,
	}
}

// arcCenterParam is the endpoint-to-center parametrization of an elliptic
// arc (§4.1): {center, theta1, deltaTheta, rx, ry, phi (radians)}.
type arcCenterParam struct {
	Center             Vector
	Theta1, DeltaTheta float64
	RX, RY, Phi        float64
}

// centerParam converts an Arc segment's endpoint parametrization to its
// center parametrization, following SVG 2's endpoint-to-center conversion
// including radius correction. Returns ok=false when rx=0 or ry=0; callers
// must then treat the arc as a line from p0 to p1 (§4.1).
func (s Segment) centerParam() (arcCenterParam, bool) {
	rx, ry := math.Abs(s.RX), math.Abs(s.RY)
	if rx == 0 || ry == 0 {
		return arcCenterParam{}, false
	}
	phi := s.PhiDeg * math.Pi / 180

	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)
	dx2, dy2 := (s.P0.X-s.P1.X)/2, (s.P0.Y-s.P1.Y)/2
	x1p := cosPhi*dx2 + sinPhi*dy2
	y1p := -sinPhi*dx2 + cosPhi*dy2

	if x1p == 0 && y1p == 0 {
		// Coincident endpoints: the usual endpoint-to-center system is
		// degenerate (both local points map to the origin), but
		// isZeroLength treats a full-sweep arc here as a real ellipse
		// rather than discarding it, so pick the canonical one centered
		// rx to the local +x side of p0, traversed a full turn.
		delta := 2 * math.Pi
		if !s.Sweep {
			delta = -delta
		}
		cx := cosPhi*rx + s.P0.X
		cy := sinPhi*rx + s.P0.Y
		return arcCenterParam{
			Center: Vector{X: cx, Y: cy}, Theta1: math.Pi, DeltaTheta: delta,
			RX: rx, RY: ry, Phi: phi,
		}, true
	}

	// Radius correction (SVG 2 F.6.6).
	lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry)
	if lambda > 1 {
		scale := math.Sqrt(lambda)
		rx *= scale
		ry *= scale
	}

	rx2, ry2 := rx*rx, ry*ry
	x1p2, y1p2 := x1p*x1p, y1p*y1p
	num := rx2*ry2 - rx2*y1p2 - ry2*x1p2
	den := rx2*y1p2 + ry2*x1p2
	var coef float64
	if den != 0 && num > 0 {
		coef = math.Sqrt(num / den)
	}
	if s.LargeArc == s.Sweep {
		coef = -coef
	}
	cxp := coef * (rx * y1p / ry)
	cyp := coef * (-ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (s.P0.X+s.P1.X)/2
	cy := sinPhi*cxp + cosPhi*cyp + (s.P0.Y+s.P1.Y)/2

	angle := func(ux, uy, vx, vy float64) float64 {
		dot := ux*vx + uy*vy
		lenProd := math.Hypot(ux, uy) * math.Hypot(vx, vy)
		a := math.Acos(clamp(dot/lenProd, -1, 1))
		if ux*vy-uy*vx < 0 {
			a = -a
		}
		return a
	}

	theta1 := angle(1, 0, (x1p-cxp)/rx, (y1p-cyp)/ry)
	deltaTheta := angle((x1p-cxp)/rx, (y1p-cyp)/ry, (-x1p-cxp)/rx, (-y1p-cyp)/ry)

	if !s.Sweep && deltaTheta > 0 {
		deltaTheta -= 2 * math.Pi
	} else if s.Sweep && deltaTheta < 0 {
		deltaTheta += 2 * math.Pi
	}

	return arcCenterParam{
		Center: Vector{X: cx, Y: cy}, Theta1: theta1, DeltaTheta: deltaTheta,
		RX: rx, RY: ry, Phi: phi,
	}, true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func (p arcCenterParam) pointAt(theta float64) Vector {
	cosPhi, sinPhi := math.Cos(p.Phi), math.Sin(p.Phi)
	x := p.RX * math.Cos(theta)
	y := p.RY * math.Sin(theta)
	return Vector{
		X: p.Center.X + cosPhi*x - sinPhi*y,
		Y: p.Center.Y + sinPhi*x + cosPhi*y,
	}
}

// Sample evaluates seg at parameter t ∈ [0,1] (§4.1).
func Sample(seg Segment, t float64) Vector {
	switch seg.Kind {
	case KindLine:
		return Lerp(seg.P0, seg.P1, t)
	case KindQuadratic:
		return deCasteljauQuadratic(seg.P0, seg.C1, seg.P1, t)
	case KindCubic:
		return deCasteljauCubic(seg.P0, seg.C1, seg.C2, seg.P1, t)
	case KindArc:
		cp, ok := seg.centerParam()
		if !ok {
			return Lerp(seg.P0, seg.P1, t)
		}
		return cp.pointAt(cp.Theta1 + t*cp.DeltaTheta)
	}
	panic("geom: unknown segment kind")
}

func deCasteljauQuadratic(p0, c, p1 Vector, t float64) Vector {
	a := Lerp(p0, c, t)
	b := Lerp(c, p1, t)
	return Lerp(a, b, t)
}

func deCasteljauCubic(p0, c1, c2, p1 Vector, t float64) Vector {
	a := Lerp(p0, c1, t)
	b := Lerp(c1, c2, t)
	c := Lerp(c2, p1, t)
	ab := Lerp(a, b, t)
	bc := Lerp(b, c, t)
	return Lerp(ab, bc, t)
}

// Split splits seg at parameter t into two segments whose union
// reproduces seg (§4.1). Lines/Béziers split via de Casteljau; arcs split
// via their center parametrization, partitioning deltaTheta at t.
// Degenerate arcs (rx=0 or ry=0) split as lines.
func Split(seg Segment, t float64) (Segment, Segment) {
	switch seg.Kind {
	case KindLine:
		m := Sample(seg, t)
		return Line(seg.P0, m), Line(m, seg.P1)
	case KindQuadratic:
		a := Lerp(seg.P0, seg.C1, t)
		b := Lerp(seg.C1, seg.P1, t)
		m := Lerp(a, b, t)
		return Quadratic(seg.P0, a, m), Quadratic(m, b, seg.P1)
	case KindCubic:
		a := Lerp(seg.P0, seg.C1, t)
		b := Lerp(seg.C1, seg.C2, t)
		c := Lerp(seg.C2, seg.P1, t)
		ab := Lerp(a, b, t)
		bc := Lerp(b, c, t)
		m := Lerp(ab, bc, t)
		return Cubic(seg.P0, a, ab, m), Cubic(m, bc, c, seg.P1)
	case KindArc:
		cp, ok := seg.centerParam()
		if !ok {
			m := Lerp(seg.P0, seg.P1, t)
			return Line(seg.P0, m), Line(m, seg.P1)
		}
		mid := cp.Theta1 + t*cp.DeltaTheta
		m := cp.pointAt(mid)
		// Both halves keep phi/sweep/radii; large-arc is recomputed from
		// whether the half spans more than π.
		half1 := Arc(seg.P0, seg.RX, seg.RY, seg.PhiDeg, math.Abs(t*cp.DeltaTheta) > math.Pi, seg.Sweep, m)
		half2 := Arc(m, seg.RX, seg.RY, seg.PhiDeg, math.Abs((1-t)*cp.DeltaTheta) > math.Pi, seg.Sweep, seg.P1)
		return half1, half2
	}
	panic("geom: unknown segment kind")
}

// Bounds returns seg's tight axis-aligned bounding box (§4.1).
func Bounds(seg Segment) AABB {
	switch seg.Kind {
	case KindLine:
		return AABBFromPoints(seg.P0, seg.P1)
	case KindQuadratic:
		b := AABBFromPoints(seg.P0, seg.P1)
		// dB/dt = 0 is linear in t for each coordinate.
		for _, axis := range [2]func(Vector) float64{xOf, yOf} {
			p0, c, p1 := axis(seg.P0), axis(seg.C1), axis(seg.P1)
			den := p0 - 2*c + p1
			if den != 0 {
				t := (p0 - c) / den
				if t > 0 && t < 1 {
					b = b.AddPoint(Sample(seg, t))
				}
			}
		}
		return b
	case KindCubic:
		b := AABBFromPoints(seg.P0, seg.P1)
		for _, axis := range [2]func(Vector) float64{xOf, yOf} {
			p0, c1, c2, p1 := axis(seg.P0), axis(seg.C1), axis(seg.C2), axis(seg.P1)
			// Derivative of cubic bezier is quadratic in t; solve for roots.
			a := -p0 + 3*c1 - 3*c2 + p1
			bb := 2 * (p0 - 2*c1 + c2)
			c := c1 - p0
			for _, t := range quadraticRoots(a, bb, c) {
				if t > 0 && t < 1 {
					b = b.AddPoint(Sample(seg, t))
				}
			}
		}
		return b
	case KindArc:
		return arcBounds(seg)
	}
	panic("geom: unknown segment kind")
}

func xOf(v Vector) float64 { return v.X }
func yOf(v Vector) float64 { return v.Y }

// quadraticRoots solves a*t^2 + b*t + c = 0, returning 0, 1, or 2 real
// roots. a may be 0 (degenerates to linear).
func quadraticRoots(a, b, c float64) []float64 {
	if a == 0 {
		if b == 0 {
			return nil
		}
		return []float64{-c / b}
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	return []float64{(-b + sq) / (2 * a), (-b - sq) / (2 * a)}
}

// maxDeltaTheta bounds each arc-to-cubics subdivision piece to at most
// π/16 radians (§4.1).
const maxDeltaTheta = math.Pi / 16

func arcBounds(seg Segment) AABB {
	cp, ok := seg.centerParam()
	if !ok {
		return AABBFromPoints(seg.P0, seg.P1)
	}
	if seg.PhiDeg == 0 || seg.RX == seg.RY {
		// Axis-aligned: intersect the angular interval with the four
		// axis-aligned extrema (0, π/2, π, 3π/2).
		b := AABBFromPoints(seg.P0, seg.P1)
		lo, hi := cp.Theta1, cp.Theta1+cp.DeltaTheta
		if lo > hi {
			lo, hi = hi, lo
		}
		// Walk every π/2 multiple in [lo, hi] rather than a fixed ±2π
		// window: deltaTheta can approach a full turn (e.g. the
		// coincident-endpoint full-ellipse case), so the angular
		// interval isn't confined to a single period.
		step := math.Pi / 2
		start := math.Ceil(lo/step) * step
		for theta := start; theta <= hi+1e-9; theta += step {
			b = b.AddPoint(cp.pointAt(theta))
		}
		return b
	}
	// General rotated ellipse: fall back to the tight bbox of the
	// arc-to-cubics subdivision.
	b := EmptyAABB()
	for _, c := range ArcToCubics(seg, maxDeltaTheta) {
		b = b.Union(Bounds(c))
	}
	return b
}

// ArcToCubics subdivides an Arc segment into `ceil(|deltaTheta|/maxDelta)`
// equal cubic Béziers (§4.1). Each cubic is built in the unit circle with
// k = (4/3)*tan(θ/4), then transformed by the arc's rotate-scale-translate.
// If seg is degenerate (rx=0 or ry=0), returns a single Line disguised as
// a degenerate cubic with collinear controls.
func ArcToCubics(seg Segment, maxDelta float64) []Segment {
	cp, ok := seg.centerParam()
	if !ok {
		return []Segment{Cubic(seg.P0, seg.P0, seg.P1, seg.P1)}
	}
	n := int(math.Ceil(math.Abs(cp.DeltaTheta) / maxDelta))
	if n < 1 {
		n = 1
	}
	step := cp.DeltaTheta / float64(n)
	cosPhi, sinPhi := math.Cos(cp.Phi), math.Sin(cp.Phi)
	transform := func(x, y float64) Vector {
		return Vector{
			X: cp.Center.X + cosPhi*x - sinPhi*y,
			Y: cp.Center.Y + sinPhi*x + cosPhi*y,
		}
	}

	out := make([]Segment, 0, n)
	theta := cp.Theta1
	for i := 0; i < n; i++ {
		theta2 := theta + step
		k := (4.0 / 3.0) * math.Tan((theta2-theta)/4)

		x1, y1 := math.Cos(theta), math.Sin(theta)
		x2, y2 := math.Cos(theta2), math.Sin(theta2)

		p0 := transform(cp.RX*x1, cp.RY*y1)
		p1 := transform(cp.RX*x2, cp.RY*y2)
		c1 := transform(cp.RX*(x1-k*y1), cp.RY*(y1+k*x1))
		c2 := transform(cp.RX*(x2+k*y2), cp.RY*(y2-k*x2))

		out = append(out, Cubic(p0, c1, c2, p1))
		theta = theta2
	}
	// Snap the subdivision's first/last point to the segment's recorded
	// endpoints to avoid drift from the trig round trip.
	out[0].P0 = seg.P0
	out[len(out)-1].P1 = seg.P1
	return out
}

// Reverse returns seg traversed in the opposite direction (§4.1). For
// arcs, the sweep flag is flipped.
func Reverse(seg Segment) Segment {
	switch seg.Kind {
	case KindLine:
		return Line(seg.P1, seg.P0)
	case KindQuadratic:
		return Quadratic(seg.P1, seg.C1, seg.P0)
	case KindCubic:
		return Cubic(seg.P1, seg.C2, seg.C1, seg.P0)
	case KindArc:
		return Arc(seg.P1, seg.RX, seg.RY, seg.PhiDeg, seg.LargeArc, !seg.Sweep, seg.P0)
	}
	panic("geom: unknown segment kind")
}

// segmentsEqual reports whether a and b are the same shape within the
// point epsilon (§4.1). Arc equality also compares phi, with the
// documented TODO left unresolved (§9): arcs with rx=ry are treated as
// equal regardless of phi (rotation is irrelevant for a circle), but the
// π/2-rotational-symmetry cases for rx≠ry are not special-cased.
func segmentsEqual(a, b Segment, eps float64) bool {
	if a.Kind != b.Kind {
		return false
	}
	pe := func(p, q Vector) bool { return p.approxEqual(q, eps) }
	switch a.Kind {
	case KindLine:
		return pe(a.P0, b.P0) && pe(a.P1, b.P1)
	case KindQuadratic:
		return pe(a.P0, b.P0) && pe(a.C1, b.C1) && pe(a.P1, b.P1)
	case KindCubic:
		return pe(a.P0, b.P0) && pe(a.C1, b.C1) && pe(a.C2, b.C2) && pe(a.P1, b.P1)
	case KindArc:
		if !pe(a.P0, b.P0) || !pe(a.P1, b.P1) {
			return false
		}
		if math.Abs(a.RX-b.RX) > eps || math.Abs(a.RY-b.RY) > eps {
			return false
		}
		if a.LargeArc != b.LargeArc || a.Sweep != b.Sweep {
			return false
		}
		if math.Abs(a.RX-a.RY) <= eps {
			return true // rx == ry: phi is irrelevant (TODO in source, §9).
		}
		return math.Abs(a.PhiDeg-b.PhiDeg) <= eps
	}
	return false
}

// isZeroLength reports whether seg has no extent, following the
// kind-specific rules of §4.4: a cubic may have equal endpoints but
// still describe a real loop (start=end but controls differ), and a
// full-sweep arc (start=end, sweep=true) is a real ellipse.
func isZeroLength(seg Segment, eps float64) bool {
	switch seg.Kind {
	case KindLine:
		return seg.P0.approxEqual(seg.P1, eps)
	case KindQuadratic:
		return seg.P0.approxEqual(seg.P1, eps) && seg.P0.approxEqual(seg.C1, eps)
	case KindCubic:
		return seg.P0.approxEqual(seg.P1, eps) &&
			seg.P0.approxEqual(seg.C1, eps) && seg.P0.approxEqual(seg.C2, eps)
	case KindArc:
		return seg.P0.approxEqual(seg.P1, eps) && !seg.Sweep
	}
	return false
}
