package geom

// windingNumber sums the signed horizontal-ray crossings of segs against
// the ray cast from p toward +X, recursively bisecting each curved
// segment's bounding box down to linear epsilon before testing it as a
// straight chord (§4.9's "recursive bbox-subdivision line-ray test").
// The result is the standard nonzero-rule winding number of the closed
// curve segs around p: nonzero means p lies inside it.
func windingNumber(p Vector, segs []Segment, eps Epsilons) int {
	total := 0
	for _, s := range segs {
		total += crossingContribution(p, s, eps)
	}
	return total
}

func crossingContribution(p Vector, seg Segment, eps Epsilons) int {
	b := Bounds(seg)
	if b.Right() < p.X {
		return 0 // entirely behind the ray's origin
	}
	// Half-open on y ([Top, Bottom)) so a ray passing exactly through a
	// shared vertex counts it against only one of the two incident edges.
	if p.Y < b.Top() || p.Y >= b.Bottom() {
		return 0
	}
	if seg.Kind == KindLine || b.MaxExtent() <= eps.Linear {
		return lineRayCrossing(p, seg.P0, seg.P1)
	}
	left, right := Split(seg, 0.5)
	return crossingContribution(p, left, eps) + crossingContribution(p, right, eps)
}

// lineRayCrossing tests the chord a->b against the ray from p toward +X,
// returning +1 if the chord descends (a.Y < b.Y) and crosses right of p,
// -1 if it ascends and crosses right of p, 0 otherwise.
func lineRayCrossing(p, a, b Vector) int {
	if a.Y == b.Y {
		return 0
	}
	sign := 1
	lo, hi := a, b
	if lo.Y > hi.Y {
		lo, hi = hi, lo
		sign = -1
	}
	if p.Y < lo.Y || p.Y >= hi.Y {
		return 0
	}
	t := (p.Y - lo.Y) / (hi.Y - lo.Y)
	x := lo.X + t*(hi.X-lo.X)
	if x > p.X {
		return sign
	}
	return 0
}
