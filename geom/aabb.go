package geom

// AABB is an axis-aligned bounding box. Y grows downward, so Top is the
// minimum-y edge and Bottom is the maximum-y edge (§3 AABB).
//
// Adapted from the teacher's s2.Rect{Lat r1.Interval, Lng s1.Interval}:
// same two-interval shape, traded spherical lat/lng for planar y/x.
type AABB struct {
	Y, X Interval
}

// EmptyAABB returns the empty bounding box.
func EmptyAABB() AABB { return AABB{Y: EmptyInterval(), X: EmptyInterval()} }

// AABBFromPoint returns the degenerate bounding box containing only p.
func AABBFromPoint(p Vector) AABB {
	return AABB{
		Y: Interval{Lo: p.Y, Hi: p.Y},
		X: Interval{Lo: p.X, Hi: p.X},
	}
}

// AABBFromPoints returns the smallest AABB containing all of pts.
func AABBFromPoints(pts ...Vector) AABB {
	b := EmptyAABB()
	for _, p := range pts {
		b = b.AddPoint(p)
	}
	return b
}

// Top returns the minimum y (spec's "top").
func (b AABB) Top() float64 { return b.Y.Lo }

// Bottom returns the maximum y (spec's "bottom").
func (b AABB) Bottom() float64 { return b.Y.Hi }

// Left returns the minimum x.
func (b AABB) Left() float64 { return b.X.Lo }

// Right returns the maximum x.
func (b AABB) Right() float64 { return b.X.Hi }

// IsEmpty reports whether the box contains no points.
func (b AABB) IsEmpty() bool { return b.Y.IsEmpty() || b.X.IsEmpty() }

// AddPoint returns the box expanded (if needed) to contain p.
func (b AABB) AddPoint(p Vector) AABB {
	return AABB{
		Y: b.Y.Union(Interval{Lo: p.Y, Hi: p.Y}),
		X: b.X.Union(Interval{Lo: p.X, Hi: p.X}),
	}
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{Y: b.Y.Union(o.Y), X: b.X.Union(o.X)}
}

// Intersects reports whether b and o overlap (inclusive of shared edges).
func (b AABB) Intersects(o AABB) bool {
	return b.Y.Intersects(o.Y) && b.X.Intersects(o.X)
}

// Expanded returns b grown by margin on every side. Used to build a
// point-epsilon query box for vertex snapping (§4.4).
func (b AABB) Expanded(margin float64) AABB {
	return AABB{
		Y: Interval{Lo: b.Y.Lo - margin, Hi: b.Y.Hi + margin},
		X: Interval{Lo: b.X.Lo - margin, Hi: b.X.Hi + margin},
	}
}

// MaxExtent returns the larger of the box's width and height, used by the
// segment-intersection bisection (§4.1) to decide when to treat a curve
// as linear.
func (b AABB) MaxExtent() float64 {
	w, h := b.X.Length(), b.Y.Length()
	if w > h {
		return w
	}
	return h
}

// ContainsPoint reports whether p lies within b (inclusive).
func (b AABB) ContainsPoint(p Vector) bool {
	return b.Y.Contains(p.Y) && b.X.Contains(p.X)
}
