package geom

import "math"

// paramPair is an intersection result: s is the parameter on the first
// segment, t on the second.
type paramPair struct {
	S, T float64
}

// lineLineIntersection solves for the intersection of two lines via
// Cramer's rule (§4.1). Returns ok=false for parallel pairs where the
// determinant is smaller than collinearGuard (64 × smallest normal
// float64). The returned s,t are unclamped but the caller is expected to
// test them against [-eps, 1+eps].
func lineLineIntersection(p0, p1, q0, q1 Vector) (paramPair, bool) {
	d1 := p1.Sub(p0)
	d2 := q1.Sub(q0)
	denom := d1.Cross(d2)
	if math.Abs(denom) < collinearGuard {
		return paramPair{}, false
	}
	diff := q0.Sub(p0)
	s := diff.Cross(d2) / denom
	t := diff.Cross(d1) / denom
	return paramPair{S: s, T: t}, true
}

// segParamInRange reports whether s lies in [-eps, 1+eps].
func segParamInRange(s, eps float64) bool { return s >= -eps && s <= 1+eps }

// bisectWorkItem is one pending pair in the segmentSegmentIntersection
// worklist (§4.1): a sub-segment of the original curve restricted to the
// parameter range [a,b], plus its bbox.
type bisectWorkItem struct {
	seg  Segment
	a, b float64
	bbox AABB
}

// segmentSegmentIntersection finds all intersection parameters between
// seg0 and seg1 (§4.1). For two lines it uses the closed form directly.
// Otherwise it performs bounding-volume bisection: repeatedly split
// whichever piece isn't yet "linear enough" (bbox max extent > linear
// eps) at its own midpoint, discarding pairs whose bboxes don't overlap,
// until both pieces are linear, at which point their local line
// intersection is mapped back to global parameters via the recorded
// [a,b] ranges.
//
// includeEndpoints controls endpoint filtering per §4.3: when true, all
// roots are returned; when false, roots within param eps of 0 or 1 on
// *both* sides are dropped (only an endpoint-endpoint coincidence is
// filtered — a documented behavioral quirk carried forward unchanged,
// §9).
func segmentSegmentIntersection(seg0, seg1 Segment, eps Epsilons, includeEndpoints bool) []paramPair {
	if seg0.Kind == KindLine && seg1.Kind == KindLine {
		pp, ok := lineLineIntersection(seg0.P0, seg0.P1, seg1.P0, seg1.P1)
		if !ok || !segParamInRange(pp.S, eps.Param) || !segParamInRange(pp.T, eps.Param) {
			return nil
		}
		return filterEndpointPairs([]paramPair{pp}, eps.Param, includeEndpoints)
	}

	var results []paramPair
	type pair struct{ a, b bisectWorkItem }
	queue := []pair{{
		a: bisectWorkItem{seg0, 0, 1, Bounds(seg0)},
		b: bisectWorkItem{seg1, 0, 1, Bounds(seg1)},
	}}

	for len(queue) > 0 {
		cur := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		if !cur.a.bbox.Intersects(cur.b.bbox) {
			continue
		}
		if segmentsEqual(cur.a.seg, cur.b.seg, eps.Point) {
			// Documented open issue (§4.1, §9): overlapping identical
			// subsegments are dropped rather than enumerated.
			continue
		}

		aLinear := cur.a.bbox.MaxExtent() <= eps.Linear || cur.a.seg.Kind == KindLine
		bLinear := cur.b.bbox.MaxExtent() <= eps.Linear || cur.b.seg.Kind == KindLine

		if aLinear && bLinear {
			pp, ok := lineLineIntersection(cur.a.seg.P0, cur.a.seg.P1, cur.b.seg.P0, cur.b.seg.P1)
			if !ok || !segParamInRange(pp.S, eps.Param) || !segParamInRange(pp.T, eps.Param) {
				continue
			}
			globalS := cur.a.a + clamp(pp.S, 0, 1)*(cur.a.b-cur.a.a)
			globalT := cur.b.a + clamp(pp.T, 0, 1)*(cur.b.b-cur.b.a)
			results = append(results, paramPair{S: globalS, T: globalT})
			continue
		}

		aHalves := splitWorkItem(cur.a, aLinear)
		bHalves := splitWorkItem(cur.b, bLinear)
		for _, ah := range aHalves {
			for _, bh := range bHalves {
				queue = append(queue, pair{a: ah, b: bh})
			}
		}
	}

	return filterEndpointPairs(dedupeParamPairs(results, eps.Param), eps.Param, includeEndpoints)
}

// splitWorkItem returns [item] unchanged if already linear, else splits
// item at its local midpoint (t=0.5) into two halves with updated
// [a,b] ranges and bboxes.
func splitWorkItem(item bisectWorkItem, alreadyLinear bool) []bisectWorkItem {
	if alreadyLinear {
		return []bisectWorkItem{item}
	}
	s0, s1 := Split(item.seg, 0.5)
	mid := item.a + (item.b-item.a)*0.5
	return []bisectWorkItem{
		{seg: s0, a: item.a, b: mid, bbox: Bounds(s0)},
		{seg: s1, a: mid, b: item.b, bbox: Bounds(s1)},
	}
}

func dedupeParamPairs(pairs []paramPair, eps float64) []paramPair {
	var out []paramPair
	for _, p := range pairs {
		dup := false
		for _, q := range out {
			if math.Abs(p.S-q.S) <= eps && math.Abs(p.T-q.T) <= eps {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, p)
		}
	}
	return out
}

func filterEndpointPairs(pairs []paramPair, paramEps float64, includeEndpoints bool) []paramPair {
	if includeEndpoints {
		return pairs
	}
	isEnd := func(t float64) bool { return t <= paramEps || t >= 1-paramEps }
	var out []paramPair
	for _, p := range pairs {
		if isEnd(p.S) && isEnd(p.T) {
			continue
		}
		out = append(out, p)
	}
	return out
}

