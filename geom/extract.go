package geom

// extractPaths implements stage 11 (§4.11): for the four ops that union
// selected faces into a single boundary, walk the merged outline; for
// Division/Fracture, emit one polygon-with-holes Path per selected face.
//
// Union/Difference/Intersection/Exclusion always return exactly one Path
// (§6), which is empty when no face is selected. When the selected
// region has several disjoint boundary loops,
// their segments are concatenated into that one Path back to back, with
// no explicit separator — consumers recover sub-path breaks from gaps
// between consecutive segments' endpoints (pathToCommands does this via
// its eps-gap rule).
func extractPaths(faces []Face, edges []MinorEdge, cycles []MinorCycle, op Op) []Path {
	if op.producesSingleBoundary() {
		loops := walkFaces(faces, edges, cycles, op)
		var merged Path
		for _, loop := range loops {
			merged = append(merged, loop...)
		}
		return []Path{merged}
	}
	return perFacePaths(faces, edges, cycles, op)
}

// walkFaces merges every pair of adjacent selected faces across their
// shared edge and walks what remains of the boundary. An edge is
// "removed" when both faces it separates are selected (so it now lies
// in the interior of the merged region); the walk jumps across a
// removed edge via nextEdge(twin(removed)), continuing around whichever
// selected face lies on the other side.
func walkFaces(faces []Face, edges []MinorEdge, cycles []MinorCycle, op Op) []Path {
	byVertex, _ := orderedOutgoing(edges, DefaultEpsilons.Param)
	nextEdge := nextEdgeFunc(edges, byVertex)
	faceOf := buildFaceIndex(faces, len(edges))

	selectedFace := func(fi int) bool { return faces[fi].Flagged && op.selects(faces[fi].Flag) }
	removed := func(ei int) bool {
		return selectedFace(faceOf[ei]) && selectedFace(faceOf[edges[ei].Twin])
	}

	var paths []Path
	visited := make([]bool, len(edges))
	for start, e := range edges {
		if visited[start] {
			continue
		}
		if !selectedFace(faceOf[start]) || selectedFace(faceOf[e.Twin]) {
			continue // not a genuine boundary edge in forward orientation
		}

		var segs []Segment
		cur := start
		for i := 0; ; i++ {
			dcheck(i < 4*len(edges)+8, "walkFaces: boundary walk did not close")
			visited[cur] = true
			segs = append(segs, edges[cur].Segments...)

			nxt := nextEdge(cur)
			for removed(nxt) {
				visited[nxt] = true
				visited[edges[nxt].Twin] = true
				nxt = nextEdge(edges[nxt].Twin)
			}
			if nxt == start {
				break
			}
			cur = nxt
		}
		paths = append(paths, Path(segs))
	}

	for _, c := range cycleFacePairs(faces) {
		sel1, sel2 := selectedFace(c.f1), selectedFace(c.f2)
		if sel1 == sel2 {
			continue // both or neither selected: no boundary to emit
		}
		if sel1 {
			paths = append(paths, Path(faces[c.f1].segments(edges, cycles)))
		} else {
			paths = append(paths, Path(faces[c.f2].segments(edges, cycles)))
		}
	}

	return paths
}

type cyclePair struct{ f1, f2 int }

// cycleFacePairs returns each pure cycle's (non-reversed, reversed) face
// index pair once.
func cycleFacePairs(faces []Face) []cyclePair {
	var pairs []cyclePair
	for i, f := range faces {
		if f.CycleRef >= 0 && !f.Reversed {
			pairs = append(pairs, cyclePair{f1: i, f2: f.Mirror})
		}
	}
	return pairs
}

// perFacePaths implements Division/Fracture: every selected face becomes
// its own output Path, poking a hole for each directly nested child
// component's outer extent (the child physically occupies that area
// regardless of whether the child's own faces are themselves selected).
func perFacePaths(faces []Face, edges []MinorEdge, cycles []MinorCycle, op Op) []Path {
	var paths []Path
	for _, f := range faces {
		if f.Outer || !f.Flagged || !op.selects(f.Flag) {
			continue
		}
		segs := append([]Segment(nil), f.segments(edges, cycles)...)
		for _, child := range f.Children {
			outer := componentOuterFace(faces, child)
			if outer < 0 {
				continue
			}
			hole := reverseSegments(faces[outer].segments(edges, cycles))
			segs = append(segs, hole...)
		}
		paths = append(paths, Path(segs))
	}
	return paths
}
