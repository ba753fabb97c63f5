package geom

// crossed returns count adjusted by crossing an edge carrying parent
// bits `carries` and direction `reversed`, for the single bit `bit`: +1
// for a forward-running edge of that path, -1 for backward, unchanged
// if the edge doesn't carry that path at all.
func crossed(count int, carries Parent, reversed bool, bit Parent) int {
	if !carries.Has(bit) {
		return count
	}
	if reversed {
		return count - 1
	}
	return count + 1
}

// flagFaces implements stage 10 (§4.10): flood-fill winding counts from
// each root component's outer face (ambient count (0,0), the unbounded
// exterior of everything), propagating across each boundary edge by the
// signed contribution of the path it belongs to, and evaluating the
// fill rule at every face to produce its two-bit flag. Crossing into a
// nested child component carries the enclosing face's current counts
// forward as that child's ambient count.
//
// Convention: a face's Boundary walk keeps that face to the edge's left
// (§4.8's nextEdge picks the clockwise twin neighbor); so crossing edge
// e out of its own face adds +1 to the crossed path's count when e runs
// forward (DirectionFlag false) and -1 when it runs backward, mirroring
// how a path's forward direction keeps its filled interior on the left.
func flagFaces(faces []Face, edges []MinorEdge, cycles []MinorCycle, aRule, bRule FillRule) {
	faceOf := buildFaceIndex(faces, len(edges))

	contained := make(map[int]bool)
	for _, f := range faces {
		for _, c := range f.Children {
			contained[c] = true
		}
	}

	type item struct {
		face   int
		ca, cb int
	}

	visited := make([]bool, len(faces))
	var queue []item
	for _, f := range faces {
		if f.Outer && !contained[f.Component] {
			queue = append(queue, item{face: componentOuterFace(faces, f.Component)})
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if visited[cur.face] {
			continue
		}
		visited[cur.face] = true

		flag := uint8(0)
		if aRule.inside(cur.ca) {
			flag |= uint8(ParentA)
		}
		if bRule.inside(cur.cb) {
			flag |= uint8(ParentB)
		}
		faces[cur.face].Flag = flag
		faces[cur.face].Flagged = true

		f := faces[cur.face]
		for _, ei := range f.Boundary {
			twin := edges[ei].Twin
			nf := faceOf[twin]
			if visited[nf] {
				continue
			}
			queue = append(queue, item{face: nf, ca: crossed(cur.ca, edges[ei].Parent, edges[ei].DirectionFlag, ParentA),
				cb: crossed(cur.cb, edges[ei].Parent, edges[ei].DirectionFlag, ParentB)})
		}
		if f.CycleRef >= 0 && !visited[f.Mirror] {
			c := cycles[f.CycleRef]
			// Leaving via the reversed mirror crosses the same boundary the
			// other way, flipping the sign of its contribution.
			dirFlag := c.DirectionFlag != f.Reversed
			queue = append(queue, item{face: f.Mirror, ca: crossed(cur.ca, c.Parent, dirFlag, ParentA),
				cb: crossed(cur.cb, c.Parent, dirFlag, ParentB)})
		}

		for _, child := range f.Children {
			childOuter := componentOuterFace(faces, child)
			if childOuter >= 0 && !visited[childOuter] {
				queue = append(queue, item{face: childOuter, ca: cur.ca, cb: cur.cb})
			}
		}
	}
}
