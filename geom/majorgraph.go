package geom

// VertexID and EdgeID are pool handles (§9 "Cyclic references": owning
// storage is a pair of indexable pools; all cross-references are
// indices).
type VertexID int32
type EdgeID int32

const invalidVertex VertexID = -1

// MajorVertex is a snapped endpoint with its outgoing directed edges
// (§3 MajorVertex).
type MajorVertex struct {
	Point    Vector
	Outgoing []EdgeID
}

// MajorEdge is one directed half of a twinned pair over a physical edge
// (§3 MajorEdge). Seg is stored in the edge's canonical (un-reversed)
// orientation; DirectionFlag indicates whether this directed half
// traverses Seg forward (false) or backward (true). Start/End are always
// consistent with the traversal direction: Sample(Seg, 0) snaps to
// Vertices[Start] when DirectionFlag is false, and to Vertices[End] when
// true.
type MajorEdge struct {
	Seg           Segment
	Parent        Parent
	Start, End    VertexID
	DirectionFlag bool
	Twin          EdgeID
}

// MajorGraph is the directed multigraph produced by stage 4 (§2, §4.4).
type MajorGraph struct {
	Vertices []MajorVertex
	Edges    []MajorEdge
}

func (g *MajorGraph) addVertex(p Vector) VertexID {
	id := VertexID(len(g.Vertices))
	g.Vertices = append(g.Vertices, MajorVertex{Point: p})
	return id
}

// dedupKey identifies an unordered vertex pair for duplicate-edge lookup
// (§4.4 "Duplicate edges"): keyed by (min,max) vertex id, direction
// insensitive.
type dedupKey struct{ lo, hi VertexID }

func makeDedupKey(a, b VertexID) dedupKey {
	if a <= b {
		return dedupKey{lo: a, hi: b}
	}
	return dedupKey{lo: b, hi: a}
}

// buildMajorGraph implements stage 4 (§4.4): walk split edges, snap
// endpoints to vertices via a point-epsilon quadtree lookup, discard
// zero-length segments, deduplicate coincident parallel edges (merging
// parent bits), and produce the directed multigraph with twinned edges.
func buildMajorGraph(prepared []preparedEdge, overall AABB, eps Epsilons) *MajorGraph {
	g := &MajorGraph{}

	vqt := newQuadtree(overall.Expanded(eps.Point*4+1), 16, 8)
	lookup := func(p Vector) VertexID {
		box := AABBFromPoint(p).Expanded(eps.Point)
		for _, idx := range vqt.Query(box) {
			if g.Vertices[idx].Point.approxEqual(p, eps.Point) {
				return VertexID(idx)
			}
		}
		id := g.addVertex(p)
		vqt.Insert(AABBFromPoint(p), int(id))
		return id
	}

	type dup struct {
		seg      Segment
		fwd, bwd EdgeID // indices into g.Edges; re-read each time, never cached
	}
	dedup := make(map[dedupKey][]dup)

	for _, e := range prepared {
		if isZeroLength(e.Seg, eps.Point) {
			continue
		}
		start := lookup(e.Seg.P0)
		end := lookup(e.Seg.P1)

		key := makeDedupKey(start, end)
		var matched *dup
		for i := range dedup[key] {
			stored := dedup[key][i].seg
			if segmentsEqual(stored, e.Seg, eps.Point) || segmentsEqual(stored, Reverse(e.Seg), eps.Point) {
				matched = &dedup[key][i]
				break
			}
		}
		if matched != nil {
			union := g.Edges[matched.fwd].Parent.Union(e.Parent)
			g.Edges[matched.fwd].Parent = union
			g.Edges[matched.bwd].Parent = union
			continue
		}

		fwdID := EdgeID(len(g.Edges))
		bwdID := fwdID + 1
		g.Edges = append(g.Edges,
			MajorEdge{Seg: e.Seg, Parent: e.Parent, Start: start, End: end, DirectionFlag: false, Twin: bwdID},
			MajorEdge{Seg: e.Seg, Parent: e.Parent, Start: end, End: start, DirectionFlag: true, Twin: fwdID},
		)

		g.Vertices[start].Outgoing = append(g.Vertices[start].Outgoing, fwdID)
		g.Vertices[end].Outgoing = append(g.Vertices[end].Outgoing, bwdID)

		dedup[key] = append(dedup[key], dup{seg: e.Seg, fwd: fwdID, bwd: bwdID})
	}

	return g
}
