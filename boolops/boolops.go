// Package boolops implements boolean overlay and offsetting of planar multi
// polygons on top of a fixed-point polygon clipping engine. Operands may
// overlap themselves or each other; results use counter clockwise exteriors
// and clockwise holes.
package boolops

import (
	clipper "github.com/ctessum/go.clipper"
	"github.com/tdewolff/planar"
)

// Union returns the combined area of a and b.
func Union[S planar.Scalar](a, b planar.MultiPolygon2[S]) planar.MultiPolygon2[S] {
	if a.Empty() {
		return b.Orient(planar.Bivec[S]{Z: 1})
	} else if b.Empty() {
		return a.Orient(planar.Bivec[S]{Z: 1})
	}
	return execute(clipper.CtUnion, a, b)
}

// Intersection returns the area covered by both a and b.
func Intersection[S planar.Scalar](a, b planar.MultiPolygon2[S]) planar.MultiPolygon2[S] {
	if a.Empty() || b.Empty() {
		return nil
	}
	return execute(clipper.CtIntersection, a, b)
}

// Difference returns the area of a not covered by b.
func Difference[S planar.Scalar](a, b planar.MultiPolygon2[S]) planar.MultiPolygon2[S] {
	if a.Empty() {
		return nil
	} else if b.Empty() {
		return a.Orient(planar.Bivec[S]{Z: 1})
	}
	return execute(clipper.CtDifference, a, b)
}

// UnionApprox unions a and b after expanding both by tolerance and erodes the
// result back, so that gaps and slivers narrower than the tolerance close up.
func UnionApprox[S planar.Scalar](a, b planar.MultiPolygon2[S], tolerance S) planar.MultiPolygon2[S] {
	return approx(clipper.CtUnion, a, b, tolerance)
}

// IntersectionApprox intersects a and b after expanding both by tolerance and
// erodes the result back, so that near-touching regions count as overlapping.
func IntersectionApprox[S planar.Scalar](a, b planar.MultiPolygon2[S], tolerance S) planar.MultiPolygon2[S] {
	return approx(clipper.CtIntersection, a, b, tolerance)
}

// DifferenceApprox subtracts b from a after expanding both by tolerance and
// erodes the result back.
func DifferenceApprox[S planar.Scalar](a, b planar.MultiPolygon2[S], tolerance S) planar.MultiPolygon2[S] {
	return approx(clipper.CtDifference, a, b, tolerance)
}

func execute[S planar.Scalar](op clipper.ClipType, a, b planar.MultiPolygon2[S]) (mp planar.MultiPolygon2[S]) {
	// the engine panics on coordinates beyond its fixed-point range
	defer func() {
		if r := recover(); r != nil {
			mp = nil
		}
	}()

	c := clipper.NewClipper(clipper.IoNone)
	for _, path := range toClipperPaths(a) {
		c.AddPath(path, clipper.PtSubject, true)
	}
	for _, path := range toClipperPaths(b) {
		c.AddPath(path, clipper.PtClip, true)
	}
	tree, ok := c.Execute2(op, clipper.PftNonZero, clipper.PftNonZero)
	if !ok {
		return nil
	}
	return fromClipperTree[S](tree)
}

func approx[S planar.Scalar](op clipper.ClipType, a, b planar.MultiPolygon2[S], tolerance S) planar.MultiPolygon2[S] {
	if tolerance <= 0 {
		return execute(op, a, b)
	}
	result := execute(op, Buffer(a, tolerance), Buffer(b, tolerance))
	return Buffer(result, -tolerance)
}
