package planar

import (
	"fmt"
	"math"
)

// Vec2 is a planar vector or position.
type Vec2[S Scalar] struct {
	X, Y S
}

func (a Vec2[S]) Add(b Vec2[S]) Vec2[S] {
	return Vec2[S]{a.X + b.X, a.Y + b.Y}
}

func (a Vec2[S]) Sub(b Vec2[S]) Vec2[S] {
	return Vec2[S]{a.X - b.X, a.Y - b.Y}
}

func (a Vec2[S]) Mul(s S) Vec2[S] {
	return Vec2[S]{a.X * s, a.Y * s}
}

func (a Vec2[S]) Div(s S) Vec2[S] {
	return Vec2[S]{a.X / s, a.Y / s}
}

func (a Vec2[S]) Neg() Vec2[S] {
	return Vec2[S]{-a.X, -a.Y}
}

// Dot returns the dot product of both vectors.
func (a Vec2[S]) Dot(b Vec2[S]) S {
	return a.X*b.X + a.Y*b.Y
}

// Wedge returns the wedge product of both vectors, ie. the z-component of
// the cross product of both vectors extended into 3-D.
func (a Vec2[S]) Wedge(b Vec2[S]) Bivec[S] {
	return Bivec[S]{a.X*b.Y - a.Y*b.X}
}

// Length returns the Euclidean length.
func (a Vec2[S]) Length() S {
	return S(math.Sqrt(float64(a.Dot(a))))
}

// Normalize returns the unit vector in the direction of a.
func (a Vec2[S]) Normalize() Vec2[S] {
	return a.Div(a.Length())
}

// Interpolate returns the linear interpolation between a and b at t in [0,1].
func (a Vec2[S]) Interpolate(b Vec2[S], t S) Vec2[S] {
	return a.Add(b.Sub(a).Mul(t))
}

// EqualApprox is true when both positions are within tol of each other,
// measured as dot(a-b,a-b) < tol*tol.
func (a Vec2[S]) EqualApprox(b Vec2[S], tol S) bool {
	d := a.Sub(b)
	return d.Dot(d) < tol*tol
}

func (a Vec2[S]) String() string {
	return fmt.Sprintf("(%g,%g)", float64(a.X), float64(a.Y))
}

// Vec3 is a spatial vector or position. Its wedge product is the regular
// cross product, so that Vec3 doubles as the Normal type of 3-D geometry.
type Vec3[S Scalar] struct {
	X, Y, Z S
}

func (a Vec3[S]) Add(b Vec3[S]) Vec3[S] {
	return Vec3[S]{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func (a Vec3[S]) Sub(b Vec3[S]) Vec3[S] {
	return Vec3[S]{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func (a Vec3[S]) Mul(s S) Vec3[S] {
	return Vec3[S]{a.X * s, a.Y * s, a.Z * s}
}

func (a Vec3[S]) Div(s S) Vec3[S] {
	return Vec3[S]{a.X / s, a.Y / s, a.Z / s}
}

func (a Vec3[S]) Neg() Vec3[S] {
	return Vec3[S]{-a.X, -a.Y, -a.Z}
}

// Dot returns the dot product of both vectors.
func (a Vec3[S]) Dot(b Vec3[S]) S {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Wedge returns the cross product of both vectors.
func (a Vec3[S]) Wedge(b Vec3[S]) Vec3[S] {
	return Vec3[S]{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Length returns the Euclidean length.
func (a Vec3[S]) Length() S {
	return S(math.Sqrt(float64(a.Dot(a))))
}

// Normalize returns the unit vector in the direction of a.
func (a Vec3[S]) Normalize() Vec3[S] {
	return a.Div(a.Length())
}

// Interpolate returns the linear interpolation between a and b at t in [0,1].
func (a Vec3[S]) Interpolate(b Vec3[S], t S) Vec3[S] {
	return a.Add(b.Sub(a).Mul(t))
}

// EqualApprox is true when both positions are within tol of each other,
// measured as dot(a-b,a-b) < tol*tol.
func (a Vec3[S]) EqualApprox(b Vec3[S], tol S) bool {
	d := a.Sub(b)
	return d.Dot(d) < tol*tol
}

// IsFinite is true when all components are finite numbers.
func (a Vec3[S]) IsFinite() bool {
	return !math.IsNaN(float64(a.X)) && !math.IsInf(float64(a.X), 0) &&
		!math.IsNaN(float64(a.Y)) && !math.IsInf(float64(a.Y), 0) &&
		!math.IsNaN(float64(a.Z)) && !math.IsInf(float64(a.Z), 0)
}

func (a Vec3[S]) String() string {
	return fmt.Sprintf("(%g,%g,%g)", float64(a.X), float64(a.Y), float64(a.Z))
}

// Bivec is the wedge product of two planar vectors. Its sign encodes the
// winding: positive for counter-clockwise. It is the 2-D instantiation of
// the Normal constraint.
type Bivec[S Scalar] struct {
	Z S
}

func (a Bivec[S]) Add(b Bivec[S]) Bivec[S] {
	return Bivec[S]{a.Z + b.Z}
}

func (a Bivec[S]) Mul(s S) Bivec[S] {
	return Bivec[S]{a.Z * s}
}

func (a Bivec[S]) Dot(b Bivec[S]) S {
	return a.Z * b.Z
}

// Length returns the absolute value of the signed scalar.
func (a Bivec[S]) Length() S {
	if a.Z < 0 {
		return -a.Z
	}
	return a.Z
}
