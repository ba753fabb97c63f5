package geom

// pruneDanglingEdges implements stage 6 (§4.6): for each parent bit
// independently, iteratively remove dangling trees — edges that do not
// lie on any simple cycle for that bit. An edge survives if, for either
// parent bit it carries, both endpoints are retained for that bit.
//
// The retained vertices are computed as the graph's "2-core": repeatedly
// peel vertices of degree ≤ 1 until none remain. This removes every
// dangling tree; an edge that lies on no cycle but joins two cycles is
// not a dangling tree and is kept.
func pruneDanglingEdges(edges []MinorEdge) []MinorEdge {
	retainedA := coreVertices(edges, ParentA)
	retainedB := coreVertices(edges, ParentB)

	keep := func(e MinorEdge) bool {
		if e.Parent.Has(ParentA) && retainedA[e.Start] && retainedA[e.End] {
			return true
		}
		if e.Parent.Has(ParentB) && retainedB[e.Start] && retainedB[e.End] {
			return true
		}
		return false
	}

	// A twin pair shares Parent and {Start,End}, so keep() agrees for both
	// halves; remap Twin to the post-filter index space.
	remap := make([]int, len(edges))
	out := make([]MinorEdge, 0, len(edges))
	for i, e := range edges {
		if keep(e) {
			remap[i] = len(out)
			out = append(out, e)
		} else {
			remap[i] = -1
		}
	}
	for i := range out {
		oldTwin := int(out[i].Twin)
		if oldTwin >= 0 && oldTwin < len(remap) {
			out[i].Twin = remap[oldTwin]
		} else {
			out[i].Twin = -1
		}
	}
	return out
}

// coreVertices returns the set of vertices that remain after iteratively
// peeling away vertices with degree ≤ 1 in the subgraph formed by edges
// carrying bit. What's left is the subgraph in which every vertex has
// degree ≥ 2. Each twin pair is counted once, so degree is the undirected
// degree.
func coreVertices(edges []MinorEdge, bit Parent) map[VertexID]bool {
	degree := make(map[VertexID]int)
	type incident struct {
		other VertexID
		alive *bool
	}
	adj := make(map[VertexID][]incident)

	aliveFlags := make([]bool, len(edges))
	for i, e := range edges {
		if !e.Parent.Has(bit) {
			continue
		}
		if e.Twin >= 0 && e.Twin < i {
			continue // the twin half already counted this physical edge
		}
		aliveFlags[i] = true
		degree[e.Start]++
		degree[e.End]++
		adj[e.Start] = append(adj[e.Start], incident{other: e.End, alive: &aliveFlags[i]})
		adj[e.End] = append(adj[e.End], incident{other: e.Start, alive: &aliveFlags[i]})
	}

	var queue []VertexID
	for v, d := range degree {
		if d <= 1 {
			queue = append(queue, v)
		}
	}
	removed := make(map[VertexID]bool)
	for len(queue) > 0 {
		v := queue[len(queue)-1]
		queue = queue[:len(queue)-1]
		if removed[v] {
			continue
		}
		removed[v] = true
		for _, inc := range adj[v] {
			if !*inc.alive {
				continue
			}
			*inc.alive = false
			if inc.other == v {
				continue // self-loop, already fully consumed
			}
			degree[inc.other]--
			if degree[inc.other] <= 1 && !removed[inc.other] {
				queue = append(queue, inc.other)
			}
		}
	}

	retained := make(map[VertexID]bool, len(degree))
	for v := range degree {
		retained[v] = !removed[v]
	}
	return retained
}
