package geom

// PathBoolean computes the Boolean combination op of paths a (filled
// under aRule) and b (filled under bRule), returning the result as a
// set of closed paths (§6 Primary entry point).
//
// The pipeline runs the full arrangement construction every call: split
// self- and pairwise intersections, snap to a vertex graph, contract
// degree-2 chains, prune dangling trees, trace faces, nest components,
// flood-fill winding counts, then extract the selected boundary. If
// both inputs are empty, returns nil.
func PathBoolean(a Path, aRule FillRule, b Path, bRule FillRule, op Op) []Path {
	return pathBooleanEps(a, aRule, b, bRule, op, DefaultEpsilons)
}

// pathBooleanEps is PathBoolean with an explicit tolerance table, split
// out so tests can exercise the pipeline at tighter or looser epsilons
// without touching the package-level default.
func pathBooleanEps(a Path, aRule FillRule, b Path, bRule FillRule, op Op, eps Epsilons) []Path {
	prepared, overall := prepareEdges(a, b, eps)
	if overall.IsEmpty() {
		return nil
	}

	major := buildMajorGraph(prepared, overall, eps)
	minorEdges, cycles := buildMinorGraph(major)
	minorEdges = pruneDanglingEdges(minorEdges)

	faces := buildFaces(minorEdges, cycles, len(major.Vertices), eps)
	nestingForest(faces, minorEdges, cycles, eps)
	flagFaces(faces, minorEdges, cycles, aRule, bRule)

	return extractPaths(faces, minorEdges, cycles, op)
}
