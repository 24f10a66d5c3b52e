package planar

// Triangle is a triangle given by its three corners.
type Triangle[P Point[P, S, W], S Scalar, W Normal[W, S]] [3]P

// Triangle2 and Triangle3 are the planar and spatial instantiations of
// Triangle.
type (
	Triangle2[S Scalar] = Triangle[Vec2[S], S, Bivec[S]]
	Triangle3[S Scalar] = Triangle[Vec3[S], S, Vec3[S]]
)

// Points returns the corners of the triangle.
func (t Triangle[P, S, W]) Points() []P {
	return t[:]
}

// Lines returns the three edges of the triangle.
func (t Triangle[P, S, W]) Lines() []Line[P, S, W] {
	return []Line[P, S, W]{{t[0], t[1]}, {t[1], t[2]}, {t[2], t[0]}}
}

// ToRing converts the triangle into a ring.
func (t Triangle[P, S, W]) ToRing() Ring[P, S, W] {
	return NewRing[P, S, W](t[:])
}

// Normal returns the generalized area of the triangle, see Ring.Normal.
func (t Triangle[P, S, W]) Normal() W {
	return t[1].Sub(t[0]).Wedge(t[2].Sub(t[0])).Mul(S(0.5))
}

// Flip returns the triangle with opposite winding.
func (t Triangle[P, S, W]) Flip() Triangle[P, S, W] {
	return Triangle[P, S, W]{t[0], t[2], t[1]}
}

// Center returns the centroid of the triangle.
func (t Triangle[P, S, W]) Center() P {
	return t[0].Add(t[1]).Add(t[2]).Div(S(3.0))
}

// Map returns the triangle with f applied to every corner.
func (t Triangle[P, S, W]) Map(f func(P) P) Triangle[P, S, W] {
	return Triangle[P, S, W]{f(t[0]), f(t[1]), f(t[2])}
}
