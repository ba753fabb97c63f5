package geom

import "math"

// vertexOutgoing groups pruned minor edges by their Start vertex, the
// branch-vertex adjacency that angular ordering and dual-graph
// construction (§4.7, §4.8) both walk. Pure cycles never touch a branch
// vertex, so they're excluded here and handled on their own.
func vertexOutgoing(edges []MinorEdge) map[VertexID][]int {
	out := make(map[VertexID][]int)
	for i, e := range edges {
		out[e.Start] = append(out[e.Start], i)
	}
	return out
}

// departureAngle returns the direction an edge leaves its start vertex
// in, sampled a hair past t=0 rather than using the raw chord so that
// curved edges fan out in their true tangent order rather than by
// endpoint chord, which can misorder sharply curving segments (§4.7).
func departureAngle(e MinorEdge, paramEps float64) float64 {
	seg := e.Segments[0]
	d := Sample(seg, paramEps).Sub(seg.P0)
	if d.X == 0 && d.Y == 0 {
		d = seg.P1.Sub(seg.P0)
	}
	return math.Atan2(d.Y, d.X)
}

// orderedOutgoing sorts each vertex's outgoing edge indices by departure
// angle, ascending from -π to π, and memoizes the angle per edge so
// dual-graph construction (which repeatedly needs "the next edge
// clockwise/counter-clockwise from edge e") doesn't resample curves.
func orderedOutgoing(edges []MinorEdge, paramEps float64) (map[VertexID][]int, []float64) {
	byVertex := vertexOutgoing(edges)
	angles := make([]float64, len(edges))
	for _, list := range byVertex {
		for _, idx := range list {
			angles[idx] = departureAngle(edges[idx], paramEps)
		}
	}
	for v, list := range byVertex {
		sortByAngle(list, angles)
		byVertex[v] = list
	}
	return byVertex, angles
}

// sortByAngle is a small insertion sort; branch vertex degree is tiny
// (almost always well under a dozen) so an O(n^2) sort avoids pulling in
// sort.Slice's interface-boxing overhead for a single-digit n.
func sortByAngle(idx []int, angles []float64) {
	for i := 1; i < len(idx); i++ {
		j := i
		for j > 0 && angles[idx[j-1]] > angles[idx[j]] {
			idx[j-1], idx[j] = idx[j], idx[j-1]
			j--
		}
	}
}
