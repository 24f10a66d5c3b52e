// Package planar is a computational-geometry kernel for planar and coplanar
// geometry. It provides generic primitives (segments, polylines, rings,
// polygons with holes and their collections) over any floating-point
// precision in two or three dimensions, together with tolerance-aware
// segment intersection classification, signed-area and winding computation,
// workplane embedding of coplanar 3-D geometry into a 2-D frame, and repair
// passes for self-touching rings and dense point clusters. Polygon boolean
// combination, offsetting and triangulation live in the boolops and
// triangulate subpackages which adapt external engines to the conventions of
// this package.
//
// All primitives are immutable values produced by pure functions; operations
// on disjoint primitives may run concurrently without synchronization.
package planar

// Scalar is the floating-point precision the kernel is generic over.
type Scalar interface {
	~float32 | ~float64
}

// Normal is the result of the wedge product: a signed scalar (wrapped in
// Bivec) in two dimensions and the cross-product vector in three. Summed
// around a ring it yields the generalized area, see Ring.Normal.
type Normal[W any, S Scalar] interface {
	comparable
	Add(W) W
	Mul(S) W
	Dot(W) S
	Length() S
}

// Point is a fixed-dimension vector equipped with dot and wedge products.
// Vec2 and Vec3 implement it at native precision, higher components never
// mix precisions. The generic primitives and algorithms of this package are
// parametrized over (P, S, W) triples such as (Vec2[float64], float64,
// Bivec[float64]).
type Point[P any, S Scalar, W Normal[W, S]] interface {
	comparable
	Add(P) P
	Sub(P) P
	Mul(S) P
	Div(S) P
	Dot(P) S
	Wedge(P) W
	Length() S

	// EqualApprox is true when dot(a-b,a-b) < tol*tol.
	EqualApprox(P, S) bool
}
