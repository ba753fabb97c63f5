package geom

import "math"

// nestingForest implements stage 9 (§4.9): insert each connected
// component into the forest by testing containment of a representative
// point against every other component's non-outer faces, attaching it
// under the tightest (smallest-area) containing face. Components with
// no container become forest roots.
//
// Containment is recorded on Face.Children as the contained component's
// id; flagging (stage 10) looks up a component's outer face to recurse
// into whenever it finds a child there.
func nestingForest(faces []Face, edges []MinorEdge, cycles []MinorCycle, eps Epsilons) {
	components := componentIDs(faces)
	repPoint := make(map[int]Vector, len(components))
	for _, c := range components {
		repPoint[c] = representativePoint(faces, edges, cycles, c)
	}

	type candidate struct {
		faceIdx int
		area    float64
	}
	best := make(map[int]candidate)

	for _, c := range components {
		p := repPoint[c]
		for fi, f := range faces {
			if f.Component == c || f.Outer {
				continue
			}
			segs := f.segments(edges, cycles)
			if windingNumber(p, segs, eps) == 0 {
				continue
			}
			area := math.Abs(signedArea(tessellate(segs, 64)))
			cur, ok := best[c]
			if !ok || area < cur.area {
				best[c] = candidate{faceIdx: fi, area: area}
			}
		}
	}

	for c, cand := range best {
		faces[cand.faceIdx].Children = append(faces[cand.faceIdx].Children, c)
	}
}

func componentIDs(faces []Face) []int {
	seen := make(map[int]bool)
	var ids []int
	for _, f := range faces {
		if !seen[f.Component] {
			seen[f.Component] = true
			ids = append(ids, f.Component)
		}
	}
	return ids
}

// representativePoint returns a point on component c's boundary, used to
// test c's containment against every *other* component's faces: the
// midpoint of the first segment of c's first non-outer face (falling
// back to c's outer face if it has no inner faces of its own, e.g. a
// lone untouched cycle). Lying on c's own boundary is harmless here
// since it's never tested against c's own faces.
func representativePoint(faces []Face, edges []MinorEdge, cycles []MinorCycle, c int) Vector {
	for _, f := range faces {
		if f.Component != c || f.Outer {
			continue
		}
		segs := f.segments(edges, cycles)
		if len(segs) == 0 {
			continue
		}
		return Sample(segs[0], 0.5)
	}
	for _, f := range faces {
		if f.Component != c {
			continue
		}
		segs := f.segments(edges, cycles)
		if len(segs) == 0 {
			continue
		}
		return Sample(segs[0], 0.5)
	}
	return Vector{}
}

// componentOuterFace returns the index of component c's single unbounded
// face, used by flagging (stage 10) to recurse into a nested component.
func componentOuterFace(faces []Face, c int) int {
	for i, f := range faces {
		if f.Component == c && f.Outer {
			return i
		}
	}
	return -1
}
