package planar

// LineString is an open chain of points connected by consecutive segments.
// There is no connecting segment between the first and last point. Two
// consecutive points are never exactly equal.
type LineString[P Point[P, S, W], S Scalar, W Normal[W, S]] struct {
	points []P
}

// LineString2 and LineString3 are the planar and spatial instantiations of
// LineString.
type (
	LineString2[S Scalar] = LineString[Vec2[S], S, Bivec[S]]
	LineString3[S Scalar] = LineString[Vec3[S], S, Vec3[S]]
)

// NewLineString returns a line string over the given points, removing
// consecutive exact duplicates. It never fails; fewer than two points yield
// a degenerate line string without segments. NewLineString2 and
// NewLineString3 fix the dimension for type inference at call sites.
func NewLineString[P Point[P, S, W], S Scalar, W Normal[W, S]](points []P) LineString[P, S, W] {
	return LineString[P, S, W]{dedupExact[P](points)}
}

func NewLineString2[S Scalar](points []Vec2[S]) LineString2[S] {
	return NewLineString[Vec2[S], S, Bivec[S]](points)
}

func NewLineString3[S Scalar](points []Vec3[S]) LineString3[S] {
	return NewLineString[Vec3[S], S, Vec3[S]](points)
}

// Points returns the points of the line string.
func (l LineString[P, S, W]) Points() []P {
	return l.points
}

// Empty is true when the line string contains no segment.
func (l LineString[P, S, W]) Empty() bool {
	return len(l.points) < 2
}

// Closed is true when the first and last point coincide exactly.
func (l LineString[P, S, W]) Closed() bool {
	return 0 < len(l.points) && l.points[0] == l.points[len(l.points)-1]
}

// Lines returns the consecutive segments of the line string.
func (l LineString[P, S, W]) Lines() []Line[P, S, W] {
	if len(l.points) < 2 {
		return nil
	}
	lines := make([]Line[P, S, W], len(l.points)-1)
	for i := 1; i < len(l.points); i++ {
		lines[i-1] = Line[P, S, W]{l.points[i-1], l.points[i]}
	}
	return lines
}

// ToRing converts a closed line string into a ring. It returns false when
// the line string is open.
func (l LineString[P, S, W]) ToRing() (Ring[P, S, W], bool) {
	if !l.Closed() {
		return Ring[P, S, W]{}, false
	}
	return NewRing[P, S, W](l.points), true
}

// Close converts the line string into a ring, adding the implied closing
// segment when the line string is open.
func (l LineString[P, S, W]) Close() Ring[P, S, W] {
	return NewRing[P, S, W](l.points)
}

// Flip returns the line string with reversed point order.
func (l LineString[P, S, W]) Flip() LineString[P, S, W] {
	return LineString[P, S, W]{reversePoints(l.points)}
}

// Map returns the line string with f applied to every point.
func (l LineString[P, S, W]) Map(f func(P) P) LineString[P, S, W] {
	return NewLineString[P, S, W](mapPoints(l.points, f))
}

// MultiLineString is an ordered collection of line strings.
type MultiLineString[P Point[P, S, W], S Scalar, W Normal[W, S]] []LineString[P, S, W]

type (
	MultiLineString2[S Scalar] = MultiLineString[Vec2[S], S, Bivec[S]]
	MultiLineString3[S Scalar] = MultiLineString[Vec3[S], S, Vec3[S]]
)

// Flip returns the collection with every line string reversed.
func (m MultiLineString[P, S, W]) Flip() MultiLineString[P, S, W] {
	flipped := make(MultiLineString[P, S, W], len(m))
	for i, l := range m {
		flipped[i] = l.Flip()
	}
	return flipped
}

// Points returns the points of all line strings in order.
func (m MultiLineString[P, S, W]) Points() []P {
	var points []P
	for _, l := range m {
		points = append(points, l.Points()...)
	}
	return points
}

func dedupExact[P comparable](points []P) []P {
	deduped := make([]P, 0, len(points))
	for i, p := range points {
		if i == 0 || p != points[i-1] {
			deduped = append(deduped, p)
		}
	}
	return deduped
}

func reversePoints[P any](points []P) []P {
	reversed := make([]P, len(points))
	for i, p := range points {
		reversed[len(points)-1-i] = p
	}
	return reversed
}

func mapPoints[P any](points []P, f func(P) P) []P {
	mapped := make([]P, len(points))
	for i, p := range points {
		mapped[i] = f(p)
	}
	return mapped
}
