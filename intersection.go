package planar

// IntersectionKind is the qualitative outcome of intersecting two planar
// segments.
type IntersectionKind int

const (
	// SimpleIntersection means the infinite lines cross in a single point;
	// the per-segment positions tell whether the crossing lies within the
	// segments.
	SimpleIntersection IntersectionKind = iota
	// CollinearOverlap means the segments are collinear and share a
	// sub-segment longer than the tolerance.
	CollinearOverlap
	// CollinearTouch means the segments are collinear and meet in a single
	// point within the tolerance.
	CollinearTouch
	// CollinearDisjoint means the segments are collinear but do not touch.
	CollinearDisjoint
	// ParallelNonCollinear means the segments are parallel on distinct
	// lines.
	ParallelNonCollinear
)

// PositionKind classifies where an intersection parameter lies relative to
// a segment.
type PositionKind int

const (
	PositionInside       PositionKind = iota // t in [0,1] within tolerance
	PositionOutsideStart                     // t < 0 beyond tolerance
	PositionOutsideEnd                       // t > 1 beyond tolerance
)

// Position is the parameter of an intersection along one segment, where
// Start + T*(End-Start) is the intersection point, together with its
// tolerance band.
type Position[S Scalar] struct {
	Kind PositionKind
	T    S
}

func newPosition[S Scalar](t, tolerance S) Position[S] {
	if t < -tolerance {
		return Position[S]{PositionOutsideStart, t}
	} else if S(1.0)+tolerance < t {
		return Position[S]{PositionOutsideEnd, t}
	}
	return Position[S]{PositionInside, t}
}

// OnSegment is true when the intersection touches the segment, endpoints
// included.
func (p Position[S]) OnSegment() bool {
	return p.Kind == PositionInside
}

// IsEndpoint is true when the intersection lies within tolerance of either
// endpoint.
func (p Position[S]) IsEndpoint(tolerance S) bool {
	return abs(p.T) <= tolerance || abs(p.T-S(1.0)) <= tolerance
}

// TrueInterior is true when the intersection lies strictly between the
// endpoints.
func (p Position[S]) TrueInterior() bool {
	return p.Kind == PositionInside && S(0.0) < p.T && p.T < S(1.0)
}

// LineIntersection is the classified intersection of two planar segments,
// see Intersect.
type LineIntersection[P Point[P, S, Bivec[S]], S Scalar] struct {
	Kind IntersectionKind

	// Point is the intersection point for SimpleIntersection and
	// CollinearTouch.
	Point P
	// Overlap is the shared sub-segment for CollinearOverlap.
	Overlap Line[P, S, Bivec[S]]
	// A and B are the intersection positions along the first and second
	// segment for SimpleIntersection.
	A, B Position[S]
}

// Intersect classifies the intersection of two planar segments within the
// given tolerance. Both segments must have nonzero length; callers filter
// degenerate edges beforehand.
//
// Segments whose directions span less than 10 times the tolerance are
// treated as parallel. For those, the perpendicular offset of o's origin
// from l's infinite line decides collinearity, and the overlap range is
// classified using scalar positions normalized by segment length to avoid
// precision loss on very short segments. Non-parallel segments are solved
// with Cramer's rule and each parameter is banded into
// inside/outside-start/outside-end. Near-tolerance ambiguity is resolved
// deterministically by these fixed bands, never retried.
func Intersect[P Point[P, S, Bivec[S]], S Scalar](l, o Line[P, S, Bivec[S]], tolerance S) LineIntersection[P, S] {
	r := l.Vector()
	s := o.Vector()
	det := r.Wedge(s).Z

	toleranceRelaxed := tolerance * S(10.0)
	if abs(det) <= toleranceRelaxed {
		if cp := o.Start.Sub(l.Start).Wedge(r).Z; toleranceRelaxed < abs(cp) {
			return LineIntersection[P, S]{Kind: ParallelNonCollinear}
		}

		// Collinear within tolerance. Compare scalar positions along l,
		// normalized by length instead of the raw [0,1] parameter.
		lEnd := l.scalarOfNormed(l.End)
		oStart := l.scalarOfNormed(l.Project(o.Start))
		oEnd := l.scalarOfNormed(l.Project(o.End))
		if oEnd < oStart {
			oStart, oEnd = oEnd, oStart
		}

		if lEnd+tolerance < oStart || oEnd < -tolerance {
			return LineIntersection[P, S]{Kind: CollinearDisjoint}
		} else if abs(oStart-lEnd) <= tolerance {
			return LineIntersection[P, S]{Kind: CollinearTouch, Point: l.End}
		} else if abs(oEnd) <= tolerance {
			return LineIntersection[P, S]{Kind: CollinearTouch, Point: l.Start}
		}

		overlapStart := l.Start.Add(r.Mul(max(S(0.0), oStart/lEnd)))
		overlapEnd := l.Start.Add(r.Mul(min(S(1.0), oEnd/lEnd)))
		if overlapStart.EqualApprox(overlapEnd, tolerance) {
			// The shared range is shorter than the tolerance, report it as
			// a touch at its center.
			touch := Line[P, S, Bivec[S]]{overlapStart, overlapEnd}.Center()
			return LineIntersection[P, S]{Kind: CollinearTouch, Point: touch}
		}
		return LineIntersection[P, S]{
			Kind:    CollinearOverlap,
			Overlap: Line[P, S, Bivec[S]]{overlapStart, overlapEnd},
		}
	}

	// Cramer's rule, t along l and u along o.
	t := o.Start.Sub(l.Start).Wedge(s).Z / det
	u := o.Start.Sub(l.Start).Wedge(r).Z / det
	return LineIntersection[P, S]{
		Kind:  SimpleIntersection,
		Point: l.Start.Add(r.Mul(t)),
		A:     newPosition(t, tolerance),
		B:     newPosition(u, tolerance),
	}
}

// Intersects is true when the segments truly intersect, touch or overlap.
func (z LineIntersection[P, S]) Intersects() bool {
	switch z.Kind {
	case SimpleIntersection:
		return z.A.OnSegment() && z.B.OnSegment()
	case CollinearOverlap, CollinearTouch:
		return true
	}
	return false
}

// IsTrueIntersection is true for a single-point intersection strictly
// interior to both segments.
func (z LineIntersection[P, S]) IsTrueIntersection() bool {
	return z.Kind == SimpleIntersection && z.A.TrueInterior() && z.B.TrueInterior()
}

// IntersectsExcludeEndpoints is true for a single-point intersection
// interior to both segments by more than the tolerance.
func (z LineIntersection[P, S]) IntersectsExcludeEndpoints(tolerance S) bool {
	if z.Kind != SimpleIntersection || z.A.Kind != PositionInside || z.B.Kind != PositionInside {
		return false
	}
	return tolerance < z.A.T && z.A.T < S(1.0)-tolerance &&
		tolerance < z.B.T && z.B.T < S(1.0)-tolerance
}

// Pos returns a representative intersection point: the crossing point for a
// simple intersection on both segments, the touch point, or an arbitrary
// point (the center) of a collinear overlap.
func (z LineIntersection[P, S]) Pos() (P, bool) {
	switch z.Kind {
	case SimpleIntersection:
		if z.A.OnSegment() && z.B.OnSegment() {
			return z.Point, true
		}
	case CollinearOverlap:
		return z.Overlap.Center(), true
	case CollinearTouch:
		return z.Point, true
	}
	var zero P
	return zero, false
}

func abs[S Scalar](s S) S {
	if s < 0 {
		return -s
	}
	return s
}
