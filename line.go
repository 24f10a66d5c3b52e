package planar

// Line is a line segment between two points. Segments of zero length are
// representable but most algorithms require Start != End; callers filter
// degenerate edges beforehand.
type Line[P Point[P, S, W], S Scalar, W Normal[W, S]] struct {
	Start, End P
}

// Line2 and Line3 are the planar and spatial instantiations of Line.
type (
	Line2[S Scalar] = Line[Vec2[S], S, Bivec[S]]
	Line3[S Scalar] = Line[Vec3[S], S, Vec3[S]]
)

// Vector returns End-Start.
func (l Line[P, S, W]) Vector() P {
	return l.End.Sub(l.Start)
}

// Dir returns the unit vector pointing from Start to End.
func (l Line[P, S, W]) Dir() P {
	v := l.Vector()
	return v.Div(v.Length())
}

// Length returns the length of the segment.
func (l Line[P, S, W]) Length() S {
	return l.Vector().Length()
}

// Center returns the midpoint of the segment.
func (l Line[P, S, W]) Center() P {
	return l.Start.Add(l.End).Div(S(2.0))
}

// Position returns Start + t*(End-Start).
func (l Line[P, S, W]) Position(t S) P {
	return l.Start.Add(l.Vector().Mul(t))
}

// ScalarOf returns the parameter t for which Position(t) is the orthogonal
// projection of p onto the infinite line.
func (l Line[P, S, W]) ScalarOf(p P) S {
	v := p.Sub(l.Start)
	d := l.Vector()
	return d.Dot(v) / d.Dot(d)
}

// scalarOfNormed is ScalarOf scaled by the segment length, ie. the signed
// distance of the projection from Start. Unlike the raw parameter it does
// not lose precision for very short segments.
func (l Line[P, S, W]) scalarOfNormed(p P) S {
	return l.ScalarOf(p) * l.Length()
}

// Project returns the orthogonal projection of p onto the infinite line.
func (l Line[P, S, W]) Project(p P) P {
	return l.Position(l.ScalarOf(p))
}

// Flip returns the segment in opposite direction.
func (l Line[P, S, W]) Flip() Line[P, S, W] {
	return Line[P, S, W]{l.End, l.Start}
}
