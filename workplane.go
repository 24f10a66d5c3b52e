package planar

import (
	"errors"
	"fmt"
)

// ErrDegeneratePlane is returned when no valid plane normal can be derived,
// for example from collinear points or non-finite input. Callers typically
// skip the offending primitive.
var ErrDegeneratePlane = errors.New("degenerate plane normal")

// Workplane is a plane in space given by its unit normal and a point on the
// plane. It reduces coplanar 3-D geometry to a 2-D problem: Embed maps
// points on the plane into a 2-D frame and Unembed maps them back, identity
// up to floating rounding. A workplane is derived once and passed by value.
type Workplane[S Scalar] struct {
	Normal Vec3[S] // unit length
	Origin Vec3[S]
}

// NewWorkplane returns the workplane with the given normal, which need not
// be unit length, and origin. It returns ErrDegeneratePlane when the normal
// is zero or not finite.
func NewWorkplane[S Scalar](normal, origin Vec3[S]) (Workplane[S], error) {
	if !normal.IsFinite() || normal == (Vec3[S]{}) {
		return Workplane[S]{}, fmt.Errorf("workplane from normal %v: %w", normal, ErrDegeneratePlane)
	}
	unit := normal.Normalize()
	if !unit.IsFinite() {
		return Workplane[S]{}, fmt.Errorf("workplane from normal %v: %w", normal, ErrDegeneratePlane)
	}
	return Workplane[S]{unit, origin}, nil
}

// WorkplaneFromThreePoints derives the plane through three points, with the
// normal direction given by their winding and the origin at their centroid.
func WorkplaneFromThreePoints[S Scalar](a, b, c Vec3[S]) (Workplane[S], error) {
	normal := b.Sub(a).Wedge(c.Sub(a))
	origin := a.Add(b).Add(c).Div(S(3.0))
	return NewWorkplane(normal, origin)
}

// WorkplaneFromPoints fits a plane to three or more points by averaging the
// normalized cross-product normal at every consecutive vertex triple, with
// wraparound, and centering at the centroid. The averaging is robust to
// mild non-planarity. Nearly collinear input can still yield a numerically
// unstable plane; only a zero or non-finite normal is rejected.
func WorkplaneFromPoints[S Scalar](points []Vec3[S]) (Workplane[S], error) {
	if len(points) < 3 {
		return Workplane[S]{}, fmt.Errorf("workplane from %d points: %w", len(points), ErrDegeneratePlane)
	}

	var normal, center Vec3[S]
	n := len(points)
	for i, p := range points {
		prev := points[(i+n-1)%n]
		next := points[(i+1)%n]
		cross := p.Sub(prev).Wedge(next.Sub(prev))
		if length := cross.Length(); S(0.0) < length {
			normal = normal.Add(cross.Div(length))
		}
		center = center.Add(p)
	}
	return NewWorkplane(normal, center.Div(S(n)))
}

// WorkplaneOfRing derives the workplane from the ring's generalized normal
// and its first point.
func WorkplaneOfRing[S Scalar](r Ring3[S]) (Workplane[S], error) {
	if len(r.Points()) == 0 {
		return Workplane[S]{}, fmt.Errorf("workplane of empty ring: %w", ErrDegeneratePlane)
	}
	return NewWorkplane(r.Normal(), r.Points()[0])
}

// WorkplaneOfPolygon derives the workplane from the polygon's generalized
// normal and the first point of its exterior ring.
func WorkplaneOfPolygon[S Scalar](p Polygon3[S]) (Workplane[S], error) {
	return WorkplaneOfRing(p.Exterior)
}

// WorkplaneOfTriangle derives the workplane from the triangle's normal and
// its first corner.
func WorkplaneOfTriangle[S Scalar](t Triangle3[S]) (Workplane[S], error) {
	return NewWorkplane(t.Normal(), t[0])
}

// HesseNormalForm moves the origin to the point of the plane closest to the
// coordinate origin. Two workplanes describing the same plane then compare
// equal up to floating error, which makes this the canonical representation
// for grouping.
func (wp Workplane[S]) HesseNormalForm() Workplane[S] {
	distance := wp.Origin.Dot(wp.Normal)
	return Workplane[S]{wp.Normal, wp.Normal.Mul(distance)}
}

// ProjectPoint returns the orthogonal projection of pos onto the plane.
func (wp Workplane[S]) ProjectPoint(pos Vec3[S]) Vec3[S] {
	distance := wp.Normal.Dot(pos.Sub(wp.Origin))
	return pos.Sub(wp.Normal.Mul(distance))
}

// XYProjection returns the rigid transform that rotates the plane normal
// onto +Z and translates the plane onto z=0, mapping points on the plane
// into the 2-D working frame.
func (wp Workplane[S]) XYProjection() Transform3[S] {
	rotation := rotationOnto(wp.Normal)
	origin := rotation.apply(wp.Origin)
	return Transform3[S]{rotation, Vec3[S]{0.0, 0.0, -origin.Z}}
}

// XYInjection returns the inverse of XYProjection, mapping the 2-D working
// frame back onto the plane.
func (wp Workplane[S]) XYInjection() Transform3[S] {
	return wp.XYProjection().Inverse()
}

// Transform3 is a rigid transform: a rotation followed by a translation.
type Transform3[S Scalar] struct {
	rotation    matrix3[S]
	translation Vec3[S]
}

// Apply transforms the given point.
func (t Transform3[S]) Apply(p Vec3[S]) Vec3[S] {
	return t.rotation.apply(p).Add(t.translation)
}

// Inverse returns the inverse rigid transform.
func (t Transform3[S]) Inverse() Transform3[S] {
	transposed := t.rotation.transpose()
	return Transform3[S]{transposed, transposed.apply(t.translation).Neg()}
}

// matrix3 is a row-major 3x3 rotation matrix.
type matrix3[S Scalar] [3][3]S

func (m matrix3[S]) apply(p Vec3[S]) Vec3[S] {
	return Vec3[S]{
		m[0][0]*p.X + m[0][1]*p.Y + m[0][2]*p.Z,
		m[1][0]*p.X + m[1][1]*p.Y + m[1][2]*p.Z,
		m[2][0]*p.X + m[2][1]*p.Y + m[2][2]*p.Z,
	}
}

func (m matrix3[S]) transpose() matrix3[S] {
	return matrix3[S]{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// rotationOnto returns the rotation taking the unit vector n onto +Z, using
// the Rodrigues formula. A normal pointing almost exactly along -Z is
// rotated half a turn around the X axis instead, where the formula is
// singular.
func rotationOnto[S Scalar](n Vec3[S]) matrix3[S] {
	c := n.Z // dot with +Z
	if S(1.0)+c < S(1e-6) { // float32 rounds -1+1e-8 to -1
		return matrix3[S]{{1.0, 0.0, 0.0}, {0.0, -1.0, 0.0}, {0.0, 0.0, -1.0}}
	}

	// v = n x Z, k = 1/(1+c); R = I + K + k*K^2 with K = skew(v).
	v := n.Wedge(Vec3[S]{0.0, 0.0, 1.0})
	k := S(1.0) / (S(1.0) + c)
	return matrix3[S]{
		{1.0 - k*(v.Y*v.Y+v.Z*v.Z), -v.Z + k*v.X*v.Y, v.Y + k*v.X*v.Z},
		{v.Z + k*v.X*v.Y, 1.0 - k*(v.X*v.X+v.Z*v.Z), -v.X + k*v.Y*v.Z},
		{-v.Y + k*v.X*v.Z, v.X + k*v.Y*v.Z, 1.0 - k*(v.X*v.X+v.Y*v.Y)},
	}
}
