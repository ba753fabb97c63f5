package geom

// Epsilons is the process-wide tolerance table (§4.1). It is carried as an
// immutable value, following the teacher's builderOptions/graphOptions
// pattern of small explicit options structs rather than package-level
// mutable state (§5, §9 "Global mutable state").
type Epsilons struct {
	// Point is the vertex-merge radius used when snapping endpoints to
	// shared vertices (§4.4).
	Point float64
	// Linear is the bbox-extent threshold below which a curved segment is
	// treated as a line during the intersection bisection (§4.1).
	Linear float64
	// Param is the parameter-tolerance used when comparing intersection
	// parameters s,t against 0 or 1 (§4.1, §4.3).
	Param float64
}

// DefaultEpsilons holds the values specified in §4.1.
var DefaultEpsilons = Epsilons{
	Point:  1e-6,
	Linear: 1e-4,
	Param:  1e-8,
}

// cubicSelfIntersectEps is the 1e-12 divide-by-zero guard used by
// cubicSelfIntersection (§5: "no ad-hoc constants ... except the 1e-12
// divide-by-zero guard").
const cubicSelfIntersectEps = 1e-12

// collinearGuard is the "64 × smallest normal float" collinearity guard
// used by lineLineIntersection (§4.1, §5).
var collinearGuard = 64 * smallestPositiveNormalFloat64()
