package geom

import "sort"

// preparedEdge is an input segment tagged with its parent bit, after
// self-intersection and pairwise splitting (§4.3).
type preparedEdge struct {
	Seg    Segment
	Parent Parent
}

// prepareEdges implements stage 3 of the pipeline (§2, §4.3): tag each
// input segment with its parent bit, split cubics at their
// self-intersection parameters, then split every edge at pairwise
// intersection parameters discovered via a quadtree.
//
// Returns the split edges and the overall bbox of both inputs; the bbox
// is the empty AABB only when both inputs are empty, in which case the
// caller returns no paths (§4.3).
func prepareEdges(a, b Path, eps Epsilons) ([]preparedEdge, AABB) {
	var tagged []preparedEdge
	for _, s := range a {
		tagged = append(tagged, preparedEdge{Seg: s, Parent: ParentA})
	}
	for _, s := range b {
		tagged = append(tagged, preparedEdge{Seg: s, Parent: ParentB})
	}

	overall := EmptyAABB()
	for _, e := range tagged {
		overall = overall.Union(Bounds(e.Seg))
	}
	if overall.IsEmpty() {
		return nil, overall
	}

	tagged = splitSelfIntersections(tagged, eps)
	tagged = splitPairwiseIntersections(tagged, eps)

	return tagged, overall
}

// splitSelfIntersections implements §4.3's self-intersection handling:
// for each cubic edge, if cubicSelfIntersection returns (t1,t2) with
// t1<=t2: if t2-t1 < paramEps, split once (the loop degenerates to a
// cusp); otherwise split into three pieces at t1 and at the residual
// parameter (t2-t1)/(1-t1) of the second piece. All fragments inherit the
// parent bit.
func splitSelfIntersections(edges []preparedEdge, eps Epsilons) []preparedEdge {
	out := make([]preparedEdge, 0, len(edges))
	for _, e := range edges {
		if e.Seg.Kind != KindCubic {
			out = append(out, e)
			continue
		}
		t1, t2, ok := cubicSelfIntersection(e.Seg)
		if !ok {
			out = append(out, e)
			continue
		}
		if t2-t1 < eps.Param {
			s0, s1 := Split(e.Seg, t1)
			out = append(out, preparedEdge{Seg: s0, Parent: e.Parent}, preparedEdge{Seg: s1, Parent: e.Parent})
			continue
		}
		first, rest := Split(e.Seg, t1)
		residual := (t2 - t1) / (1 - t1)
		mid, last := Split(rest, residual)
		out = append(out,
			preparedEdge{Seg: first, Parent: e.Parent},
			preparedEdge{Seg: mid, Parent: e.Parent},
			preparedEdge{Seg: last, Parent: e.Parent},
		)
	}
	return out
}

// splitPairwiseIntersections implements §4.3's pairwise splitting: build
// a quadtree over edge bboxes, and for each edge i (in order) test it
// against every already-inserted candidate j<i whose bbox overlaps.
// Per-edge split parameters are then sorted and applied with repeated
// Split, remapping the global parameter to the residual parameter at
// each step; splits within paramEps of 0 or 1 are discarded.
func splitPairwiseIntersections(edges []preparedEdge, eps Epsilons) []preparedEdge {
	if len(edges) == 0 {
		return nil
	}

	overall := EmptyAABB()
	for _, e := range edges {
		overall = overall.Union(Bounds(e.Seg))
	}
	qt := newQuadtree(overall.Expanded(1), 8, 8)

	splitParams := make([][]float64, len(edges))

	for i := range edges {
		bbox := Bounds(edges[i].Seg)
		candidates := qt.Query(bbox)
		for _, j := range candidates {
			if j >= i {
				continue
			}
			// endpoints=true (i.e. keep all roots) when both edges share a
			// parent (same-path self-crossing) or they don't share an
			// endpoint; endpoints=false only when they're from different
			// parents AND share an endpoint within point eps (§4.3 step 2).
			includeEndpoints := true
			if edges[i].Parent != edges[j].Parent && sharesEndpoint(edges[i].Seg, edges[j].Seg, eps.Point) {
				includeEndpoints = false
			}
			pairs := segmentSegmentIntersection(edges[i].Seg, edges[j].Seg, eps, includeEndpoints)
			for _, pp := range pairs {
				splitParams[i] = append(splitParams[i], pp.S)
				splitParams[j] = append(splitParams[j], pp.T)
			}
		}
		qt.Insert(bbox, i)
	}

	out := make([]preparedEdge, 0, len(edges))
	for i, e := range edges {
		out = append(out, applySplits(e, splitParams[i], eps.Param)...)
	}
	return out
}

func sharesEndpoint(a, b Segment, eps float64) bool {
	return a.P0.approxEqual(b.P0, eps) || a.P0.approxEqual(b.P1, eps) ||
		a.P1.approxEqual(b.P0, eps) || a.P1.approxEqual(b.P1, eps)
}

// applySplits cuts e.Seg at every parameter in params (sorted ascending,
// deduplicated, and filtered to the open interval), remapping each global
// t to the residual parameter on the remaining tail.
func applySplits(e preparedEdge, params []float64, paramEps float64) []preparedEdge {
	if len(params) == 0 {
		return []preparedEdge{e}
	}
	sort.Float64s(params)

	var filtered []float64
	for _, t := range params {
		if t <= paramEps || t >= 1-paramEps {
			continue
		}
		if len(filtered) > 0 && t-filtered[len(filtered)-1] <= paramEps {
			continue
		}
		filtered = append(filtered, t)
	}
	if len(filtered) == 0 {
		return []preparedEdge{e}
	}

	var out []preparedEdge
	remaining := e.Seg
	prevT := 0.0
	for _, t := range filtered {
		residual := (t - prevT) / (1 - prevT)
		head, tail := Split(remaining, residual)
		out = append(out, preparedEdge{Seg: head, Parent: e.Parent})
		remaining = tail
		prevT = t
	}
	out = append(out, preparedEdge{Seg: remaining, Parent: e.Parent})
	return out
}
