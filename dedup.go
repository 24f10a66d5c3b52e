package planar

// DedupApprox removes consecutive points within tol of each other, for
// post-hoc cleanup of floating error after transforms. The tolerance is
// always caller-supplied. The exact-equality variant runs at construction,
// see NewLineString and NewRing.
func (l LineString[P, S, W]) DedupApprox(tol S) LineString[P, S, W] {
	return LineString[P, S, W]{dedupApprox[P, S, W](l.points, tol)}
}

// DedupApprox removes consecutive points within tol of each other, dropping
// the last point when it approximately closes onto the first.
func (r Ring[P, S, W]) DedupApprox(tol S) Ring[P, S, W] {
	points := dedupApprox[P, S, W](r.points, tol)
	if 1 < len(points) && points[len(points)-1].EqualApprox(points[0], tol) {
		points = points[:len(points)-1]
	}
	return Ring[P, S, W]{points}
}

// DedupApprox applies Ring.DedupApprox to every ring.
func (m MultiRing[P, S, W]) DedupApprox(tol S) MultiRing[P, S, W] {
	deduped := make(MultiRing[P, S, W], len(m))
	for i, r := range m {
		deduped[i] = r.DedupApprox(tol)
	}
	return deduped
}

// DedupApprox applies Ring.DedupApprox to the exterior and every hole.
func (p Polygon[P, S, W]) DedupApprox(tol S) Polygon[P, S, W] {
	return Polygon[P, S, W]{p.Exterior.DedupApprox(tol), p.Interior.DedupApprox(tol)}
}

// DedupApprox applies Polygon.DedupApprox to every polygon.
func (m MultiPolygon[P, S, W]) DedupApprox(tol S) MultiPolygon[P, S, W] {
	deduped := make(MultiPolygon[P, S, W], len(m))
	for i, p := range m {
		deduped[i] = p.DedupApprox(tol)
	}
	return deduped
}

func dedupApprox[P Point[P, S, W], S Scalar, W Normal[W, S]](points []P, tol S) []P {
	deduped := make([]P, 0, len(points))
	for i, p := range points {
		if i == 0 || !p.EqualApprox(deduped[len(deduped)-1], tol) {
			deduped = append(deduped, p)
		}
	}
	return deduped
}
