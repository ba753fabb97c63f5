package geom

// MinorEdge is a maximal chain between two branch vertices (§3 MinorEdge,
// §4.5). Segments is the chain in traversal order from Start to End,
// with backward-running segments already reversed (unlike MajorEdge.Seg);
// DirectionFlag is the DirectionFlag of the chain's major edges: false if
// the chain runs the way its input segments did, true if it runs backward.
type MinorEdge struct {
	Segments      []Segment
	Parent        Parent
	Start, End    VertexID
	DirectionFlag bool
	Twin          int // index into the minor edge slice, -1 if unpaired
}

// MinorCycle is a standalone closed loop whose vertices are all degree 2
// (§3 MinorCycle, §4.5).
type MinorCycle struct {
	Segments      []Segment
	Parent        Parent
	DirectionFlag bool
}

// degree returns the number of outgoing directed edges recorded at v,
// i.e. the undirected degree of the underlying physical vertex.
func degree(g *MajorGraph, v VertexID) int { return len(g.Vertices[v].Outgoing) }

type chainKey struct{ from, to VertexID }

// buildMinorGraph implements stage 5 (§4.5): contract maximal chains of
// degree-2 vertices into single poly-edges, and separately collect pure
// cycles (components with all vertices degree 2).
func buildMinorGraph(major *MajorGraph) ([]MinorEdge, []MinorCycle) {
	visited := make([]bool, len(major.Edges))
	var edges []MinorEdge
	pending := make(map[chainKey][]int) // unpaired chain indices, keyed by (start,end)

	for v := range major.Vertices {
		if degree(major, VertexID(v)) == 2 {
			continue
		}
		for _, startEdge := range major.Vertices[v].Outgoing {
			if visited[startEdge] {
				continue
			}
			idx := walkChain(major, VertexID(v), startEdge, visited, &edges)

			fwdKey := chainKey{from: edges[idx].Start, to: edges[idx].End}
			bwdKey := chainKey{from: edges[idx].End, to: edges[idx].Start}
			if q := pending[bwdKey]; len(q) > 0 {
				other := q[len(q)-1]
				pending[bwdKey] = q[:len(q)-1]
				edges[idx].Twin = other
				edges[other].Twin = idx
			} else {
				pending[fwdKey] = append(pending[fwdKey], idx)
			}
		}
	}

	cycles := collectPureCycles(major, visited)
	return edges, cycles
}

// walkChain follows twin-alternation from startEdge through degree-2
// vertices while the parent bit and direction flag of each step match the
// starting edge, accumulating segments in traversal order, and appends
// the resulting MinorEdge to *edges. Returns the new edge's index.
func walkChain(major *MajorGraph, start VertexID, startEdge EdgeID, visited []bool, edges *[]MinorEdge) int {
	first := major.Edges[startEdge]
	var segs []Segment

	cur := startEdge
	var endVertex VertexID
	for {
		e := major.Edges[cur]
		visited[cur] = true

		seg := e.Seg
		if e.DirectionFlag {
			seg = Reverse(e.Seg)
		}
		segs = append(segs, seg)

		next := e.End
		if degree(major, next) != 2 {
			endVertex = next
			break
		}

		twinID := e.Twin
		var continuation EdgeID = -1
		for _, cand := range major.Vertices[next].Outgoing {
			if cand == twinID {
				continue
			}
			ce := major.Edges[cand]
			if ce.Parent == first.Parent && ce.DirectionFlag == first.DirectionFlag {
				continuation = cand
				break
			}
		}
		if continuation < 0 {
			endVertex = next
			break
		}
		cur = continuation
	}

	idx := len(*edges)
	*edges = append(*edges, MinorEdge{
		Segments: segs, Parent: first.Parent,
		Start: start, End: endVertex, DirectionFlag: first.DirectionFlag, Twin: -1,
	})
	return idx
}

// collectPureCycles scans for connected components whose vertices are
// all degree 2 and not yet touched by walkChain, walking each in one
// direction until returning to the start (§4.5).
func collectPureCycles(major *MajorGraph, visited []bool) []MinorCycle {
	var cycles []MinorCycle
	for v := range major.Vertices {
		if degree(major, VertexID(v)) != 2 {
			continue
		}
		for _, startEdge := range major.Vertices[v].Outgoing {
			if visited[startEdge] {
				continue
			}
			var segs []Segment
			parent := major.Edges[startEdge].Parent
			dirFlag := major.Edges[startEdge].DirectionFlag

			cur := startEdge
			for {
				e := major.Edges[cur]
				visited[cur] = true
				seg := e.Seg
				if e.DirectionFlag {
					seg = Reverse(e.Seg)
				}
				segs = append(segs, seg)

				if e.End == VertexID(v) {
					break
				}
				twinID := e.Twin
				nextEdge := EdgeID(-1)
				for _, cand := range major.Vertices[e.End].Outgoing {
					if cand != twinID {
						nextEdge = cand
						break
					}
				}
				if nextEdge < 0 {
					break
				}
				cur = nextEdge
			}

			cycles = append(cycles, MinorCycle{Segments: segs, Parent: parent, DirectionFlag: dirFlag})
		}
	}
	return cycles
}
