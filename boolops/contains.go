package boolops

import (
	orbplanar "github.com/paulmach/orb/planar"
	"github.com/tdewolff/planar"
)

// ContainsPoint reports whether p lies inside mp or on its boundary.
func ContainsPoint[S planar.Scalar](mp planar.MultiPolygon2[S], p planar.Vec2[S]) bool {
	return orbplanar.MultiPolygonContains(planar.OrbMultiPolygon(mp), p.ToOrb())
}

// Contains reports whether a covers b entirely, boundaries included: b is
// contained exactly when subtracting a from it leaves nothing.
func Contains[S planar.Scalar](a, b planar.MultiPolygon2[S]) bool {
	if b.Empty() {
		return true
	}
	return Difference(b, a).Empty()
}

// ContainsRing reports whether a covers the area bounded by r.
func ContainsRing[S planar.Scalar](a planar.MultiPolygon2[S], r planar.Ring2[S]) bool {
	return Contains(a, r.ToPolygon().ToMulti())
}

// ContainsTriangle reports whether a covers tr.
func ContainsTriangle[S planar.Scalar](a planar.MultiPolygon2[S], tr planar.Triangle2[S]) bool {
	return ContainsRing(a, tr.ToRing())
}
