package planar

// Ring is a closed chain of points bounding a simply-connected area. The
// closing segment between the last and first point is implied: a canonical
// ring never stores the duplicate of its first point, and consecutive
// identical points are removed at construction. Positive signed area means
// counter-clockwise winding.
type Ring[P Point[P, S, W], S Scalar, W Normal[W, S]] struct {
	points []P
}

// Ring2 and Ring3 are the planar and spatial instantiations of Ring.
type (
	Ring2[S Scalar] = Ring[Vec2[S], S, Bivec[S]]
	Ring3[S Scalar] = Ring[Vec3[S], S, Vec3[S]]
)

// NewRing returns a canonical ring over the given points. It accepts both
// open and closed point lists: a duplicated closing point is dropped, as are
// consecutive exact duplicates. It never fails; degenerate rings with fewer
// than three points are representable and yield empty results downstream.
// NewRing2 and NewRing3 fix the dimension for type inference at call sites.
func NewRing[P Point[P, S, W], S Scalar, W Normal[W, S]](points []P) Ring[P, S, W] {
	deduped := dedupExact[P](points)
	if 1 < len(deduped) && deduped[0] == deduped[len(deduped)-1] {
		deduped = deduped[:len(deduped)-1]
	}
	return Ring[P, S, W]{deduped}
}

func NewRing2[S Scalar](points []Vec2[S]) Ring2[S] {
	return NewRing[Vec2[S], S, Bivec[S]](points)
}

func NewRing3[S Scalar](points []Vec3[S]) Ring3[S] {
	return NewRing[Vec3[S], S, Vec3[S]](points)
}

// Points returns the points of the ring without the closing duplicate.
func (r Ring[P, S, W]) Points() []P {
	return r.points
}

// PointsClosed returns the points of the ring with the first point appended
// again, for consumers that need explicit closure.
func (r Ring[P, S, W]) PointsClosed() []P {
	if len(r.points) == 0 {
		return nil
	}
	return append(append(make([]P, 0, len(r.points)+1), r.points...), r.points[0])
}

// Empty is true when the ring bounds no area.
func (r Ring[P, S, W]) Empty() bool {
	return len(r.points) < 3
}

// Lines returns the segments of the ring in order, including the implied
// closing segment.
func (r Ring[P, S, W]) Lines() []Line[P, S, W] {
	if len(r.points) < 2 {
		return nil
	}
	lines := make([]Line[P, S, W], len(r.points))
	for i, p := range r.points {
		lines[i] = Line[P, S, W]{p, r.points[(i+1)%len(r.points)]}
	}
	return lines
}

// ToLineString converts the ring into an explicitly closed line string with
// first == last.
func (r Ring[P, S, W]) ToLineString() LineString[P, S, W] {
	if len(r.points) == 0 {
		return LineString[P, S, W]{}
	}
	return LineString[P, S, W]{r.PointsClosed()}
}

// ToPolygon converts the ring into a polygon without holes.
func (r Ring[P, S, W]) ToPolygon() Polygon[P, S, W] {
	return Polygon[P, S, W]{Exterior: r}
}

// ToMulti wraps the ring into a single-element MultiRing.
func (r Ring[P, S, W]) ToMulti() MultiRing[P, S, W] {
	return MultiRing[P, S, W]{r}
}

// TrySetPoint replaces the i-th point and reports whether it succeeded. The
// update is refused when it would leave two consecutive identical points.
func (r *Ring[P, S, W]) TrySetPoint(i int, p P) bool {
	n := len(r.points)
	if r.points[(i+1)%n] == p || r.points[(i+n-1)%n] == p {
		return false
	}
	r.points[i] = p
	return true
}

// Map returns the ring with f applied to every point.
func (r Ring[P, S, W]) Map(f func(P) P) Ring[P, S, W] {
	return NewRing[P, S, W](mapPoints(r.points, f))
}

// MultiRing is an ordered collection of rings, used for the components of a
// compound area or the holes of a polygon.
type MultiRing[P Point[P, S, W], S Scalar, W Normal[W, S]] []Ring[P, S, W]

type (
	MultiRing2[S Scalar] = MultiRing[Vec2[S], S, Bivec[S]]
	MultiRing3[S Scalar] = MultiRing[Vec3[S], S, Vec3[S]]
)

// Points returns the points of all rings in order.
func (m MultiRing[P, S, W]) Points() []P {
	var points []P
	for _, r := range m {
		points = append(points, r.points...)
	}
	return points
}

// Map returns the collection with f applied to every point.
func (m MultiRing[P, S, W]) Map(f func(P) P) MultiRing[P, S, W] {
	mapped := make(MultiRing[P, S, W], len(m))
	for i, r := range m {
		mapped[i] = r.Map(f)
	}
	return mapped
}
