package geom

// Face is one boundary loop of the dual graph (§3 Face, §4.8): either a
// walk over branch-vertex minor edges (CycleRef < 0), or one of the two
// mirrored faces of a standalone pure cycle (CycleRef >= 0).
type Face struct {
	Boundary  []int // indices into the minor edge slice, in walk order
	CycleRef  int   // index into the cycle slice, or -1
	Reversed  bool  // true for a cycle face's reversed mirror
	Mirror    int   // for a cycle face, the index of its opposite mirror; -1 otherwise
	Component int   // connected-component id, assigned by buildFaces
	Outer     bool  // true if this face is its component's unbounded face

	Flag     uint8 // two-bit parent flag, assigned by stage 10 (flagFaces)
	Flagged  bool
	Children []int // nested component roots, assigned by stage 9 (nestingForest)
}

// segments returns f's boundary as one continuous segment chain.
func (f Face) segments(edges []MinorEdge, cycles []MinorCycle) []Segment {
	if f.CycleRef >= 0 {
		segs := append([]Segment(nil), cycles[f.CycleRef].Segments...)
		if f.Reversed {
			segs = reverseSegments(segs)
		}
		return segs
	}
	var segs []Segment
	for _, ei := range f.Boundary {
		segs = append(segs, edges[ei].Segments...)
	}
	return segs
}

func reverseSegments(segs []Segment) []Segment {
	out := make([]Segment, len(segs))
	for i, s := range segs {
		out[len(segs)-1-i] = Reverse(s)
	}
	return out
}

type unionFind struct{ parent []int }

func newUnionFind(n int) *unionFind {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return &unionFind{parent: p}
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[ra] = rb
	}
}

// buildFaces implements stage 8 (§4.8): walk the pruned minor graph into
// boundary faces via nextEdge, add the two mirrored faces of every pure
// cycle, group faces into connected components, and mark each
// component's outer (unbounded) face.
func buildFaces(edges []MinorEdge, cycles []MinorCycle, nVertices int, eps Epsilons) []Face {
	byVertex, _ := orderedOutgoing(edges, eps.Param)
	nextEdge := nextEdgeFunc(edges, byVertex)

	uf := newUnionFind(nVertices)
	for _, e := range edges {
		uf.union(int(e.Start), int(e.End))
	}

	var faces []Face
	visited := make([]bool, len(edges))
	for start := range edges {
		if visited[start] {
			continue
		}
		var boundary []int
		cur := start
		for {
			dcheck(!visited[cur], "face walk revisited an edge")
			visited[cur] = true
			boundary = append(boundary, cur)
			cur = nextEdge(cur)
			if cur == start {
				break
			}
		}
		component := uf.find(int(edges[start].Start))
		faces = append(faces, Face{Boundary: boundary, CycleRef: -1, Mirror: -1, Component: component})
	}

	nextComponent := nVertices
	for ci := range cycles {
		comp := nextComponent
		nextComponent++
		i1, i2 := len(faces), len(faces)+1
		f1 := Face{CycleRef: ci, Reversed: false, Mirror: i2, Component: comp}
		f2 := Face{CycleRef: ci, Reversed: true, Mirror: i1, Component: comp, Outer: true}
		if isOuterBoundary(f1.segments(edges, cycles)) {
			f1.Outer, f2.Outer = true, false
		}
		faces = append(faces, f1, f2)
	}

	for i := range faces {
		if faces[i].CycleRef >= 0 {
			continue // already decided above
		}
		if isOuterBoundary(faces[i].segments(edges, cycles)) {
			faces[i].Outer = true
		}
	}

	return faces
}

// nextEdgeFunc returns the §4.8 nextEdge rule as a closure: from edge ei,
// cross to its twin's vertex and take the immediately clockwise
// neighbor in that vertex's angular order, continuing the same face
// boundary.
func nextEdgeFunc(edges []MinorEdge, byVertex map[VertexID][]int) func(int) int {
	return func(ei int) int {
		ti := edges[ei].Twin
		v := edges[ti].Start
		list := byVertex[v]
		pos := 0
		for i, x := range list {
			if x == ti {
				pos = i
				break
			}
		}
		prev := (pos - 1 + len(list)) % len(list)
		return list[prev]
	}
}

// buildFaceIndex maps each minor edge to the index of the face whose
// Boundary contains it; cycle faces never populate it since their
// segments come from CycleRef instead.
func buildFaceIndex(faces []Face, numEdges int) []int {
	idx := make([]int, numEdges)
	for fi, f := range faces {
		for _, ei := range f.Boundary {
			idx[ei] = fi
		}
	}
	return idx
}

// isOuterBoundary implements the §4.8 outer-face test: tessellate the
// boundary into a polyline of 64 points per segment and check its winding
// orientation. This is the signed-area form of that test — a closed
// curve's enclosed winding number has the same sign as its shoelace
// area, so testing the latter is equivalent to, and cheaper than,
// casting a ray from the tessellated centroid and summing crossings.
// A face is the unbounded complement of its component iff, walked in
// its recorded direction, it winds clockwise (non-positive area).
func isOuterBoundary(segs []Segment) bool {
	pts := tessellate(segs, 64*len(segs))
	return signedArea(pts) <= 0
}

// tessellate samples every segment into roughly budget/len(segs) points
// (minimum 2), producing an open polyline that starts at the boundary's
// first point and omits the final point (implicitly closing back to the
// first for area/crossing purposes).
func tessellate(segs []Segment, budget int) []Vector {
	if len(segs) == 0 {
		return nil
	}
	perSeg := budget / len(segs)
	if perSeg < 2 {
		perSeg = 2
	}
	var pts []Vector
	for _, s := range segs {
		for i := 0; i < perSeg; i++ {
			t := float64(i) / float64(perSeg)
			pts = append(pts, Sample(s, t))
		}
	}
	return pts
}

// signedArea computes twice the shoelace area of the closed polygon
// implied by pts (treated as an implicitly-closed loop); positive means
// counter-clockwise in standard (x right, y up) orientation.
func signedArea(pts []Vector) float64 {
	if len(pts) < 3 {
		return 0
	}
	sum := 0.0
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		sum += a.X*b.Y - b.X*a.Y
	}
	return sum
}
