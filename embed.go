package planar

// EmbedPoint maps a point on the plane into the 2-D working frame,
// dropping the out-of-plane coordinate.
func (wp Workplane[S]) EmbedPoint(p Vec3[S]) Vec2[S] {
	q := wp.XYProjection().Apply(p)
	return Vec2[S]{q.X, q.Y}
}

// UnembedPoint maps a point of the 2-D working frame back onto the plane.
func (wp Workplane[S]) UnembedPoint(p Vec2[S]) Vec3[S] {
	return wp.XYInjection().Apply(Vec3[S]{p.X, p.Y, 0.0})
}

// EmbedLine maps a segment on the plane into the 2-D working frame.
func (wp Workplane[S]) EmbedLine(l Line3[S]) Line2[S] {
	proj := wp.XYProjection()
	return Line2[S]{flatten(proj.Apply(l.Start)), flatten(proj.Apply(l.End))}
}

// UnembedLine maps a segment of the 2-D working frame back onto the plane.
func (wp Workplane[S]) UnembedLine(l Line2[S]) Line3[S] {
	inj := wp.XYInjection()
	return Line3[S]{inj.Apply(lift(l.Start)), inj.Apply(lift(l.End))}
}

// EmbedLineString maps a line string on the plane into the 2-D working
// frame.
func (wp Workplane[S]) EmbedLineString(l LineString3[S]) LineString2[S] {
	proj := wp.XYProjection()
	return NewLineString2(embedPoints(proj, l.Points()))
}

// UnembedLineString maps a line string of the 2-D working frame back onto
// the plane.
func (wp Workplane[S]) UnembedLineString(l LineString2[S]) LineString3[S] {
	inj := wp.XYInjection()
	return NewLineString3(unembedPoints(inj, l.Points()))
}

// EmbedRing maps a ring on the plane into the 2-D working frame.
func (wp Workplane[S]) EmbedRing(r Ring3[S]) Ring2[S] {
	proj := wp.XYProjection()
	return NewRing2(embedPoints(proj, r.Points()))
}

// UnembedRing maps a ring of the 2-D working frame back onto the plane.
func (wp Workplane[S]) UnembedRing(r Ring2[S]) Ring3[S] {
	inj := wp.XYInjection()
	return NewRing3(unembedPoints(inj, r.Points()))
}

// EmbedMultiRing maps a ring collection on the plane into the 2-D working
// frame.
func (wp Workplane[S]) EmbedMultiRing(m MultiRing3[S]) MultiRing2[S] {
	embedded := make(MultiRing2[S], len(m))
	for i, r := range m {
		embedded[i] = wp.EmbedRing(r)
	}
	return embedded
}

// UnembedMultiRing maps a ring collection of the 2-D working frame back
// onto the plane.
func (wp Workplane[S]) UnembedMultiRing(m MultiRing2[S]) MultiRing3[S] {
	unembedded := make(MultiRing3[S], len(m))
	for i, r := range m {
		unembedded[i] = wp.UnembedRing(r)
	}
	return unembedded
}

// EmbedPolygon maps a polygon on the plane into the 2-D working frame.
func (wp Workplane[S]) EmbedPolygon(p Polygon3[S]) Polygon2[S] {
	return Polygon2[S]{wp.EmbedRing(p.Exterior), wp.EmbedMultiRing(p.Interior)}
}

// UnembedPolygon maps a polygon of the 2-D working frame back onto the
// plane.
func (wp Workplane[S]) UnembedPolygon(p Polygon2[S]) Polygon3[S] {
	return Polygon3[S]{wp.UnembedRing(p.Exterior), wp.UnembedMultiRing(p.Interior)}
}

// EmbedMultiPolygon maps a polygon collection on the plane into the 2-D
// working frame.
func (wp Workplane[S]) EmbedMultiPolygon(m MultiPolygon3[S]) MultiPolygon2[S] {
	embedded := make(MultiPolygon2[S], len(m))
	for i, p := range m {
		embedded[i] = wp.EmbedPolygon(p)
	}
	return embedded
}

// UnembedMultiPolygon maps a polygon collection of the 2-D working frame
// back onto the plane.
func (wp Workplane[S]) UnembedMultiPolygon(m MultiPolygon2[S]) MultiPolygon3[S] {
	unembedded := make(MultiPolygon3[S], len(m))
	for i, p := range m {
		unembedded[i] = wp.UnembedPolygon(p)
	}
	return unembedded
}

// EmbedTriangle maps a triangle on the plane into the 2-D working frame.
func (wp Workplane[S]) EmbedTriangle(t Triangle3[S]) Triangle2[S] {
	proj := wp.XYProjection()
	return Triangle2[S]{
		flatten(proj.Apply(t[0])),
		flatten(proj.Apply(t[1])),
		flatten(proj.Apply(t[2])),
	}
}

// UnembedTriangle maps a triangle of the 2-D working frame back onto the
// plane.
func (wp Workplane[S]) UnembedTriangle(t Triangle2[S]) Triangle3[S] {
	inj := wp.XYInjection()
	return Triangle3[S]{
		inj.Apply(lift(t[0])),
		inj.Apply(lift(t[1])),
		inj.Apply(lift(t[2])),
	}
}

func flatten[S Scalar](p Vec3[S]) Vec2[S] {
	return Vec2[S]{p.X, p.Y}
}

func lift[S Scalar](p Vec2[S]) Vec3[S] {
	return Vec3[S]{p.X, p.Y, 0.0}
}

func embedPoints[S Scalar](proj Transform3[S], points []Vec3[S]) []Vec2[S] {
	embedded := make([]Vec2[S], len(points))
	for i, p := range points {
		embedded[i] = flatten(proj.Apply(p))
	}
	return embedded
}

func unembedPoints[S Scalar](inj Transform3[S], points []Vec2[S]) []Vec3[S] {
	unembedded := make([]Vec3[S], len(points))
	for i, p := range points {
		unembedded[i] = inj.Apply(lift(p))
	}
	return unembedded
}
