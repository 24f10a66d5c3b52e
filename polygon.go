package planar

// Polygon is the area bounded by an exterior ring minus the areas of its
// interior rings (holes). Interior rings are assumed, not enforced, to lie
// within and not cross the exterior. Whether a ring acts as solid or hole is
// defined purely by its winding relative to the exterior, see Orient.
type Polygon[P Point[P, S, W], S Scalar, W Normal[W, S]] struct {
	Exterior Ring[P, S, W]
	Interior MultiRing[P, S, W]
}

// Polygon2 and Polygon3 are the planar and spatial instantiations of Polygon.
type (
	Polygon2[S Scalar] = Polygon[Vec2[S], S, Bivec[S]]
	Polygon3[S Scalar] = Polygon[Vec3[S], S, Vec3[S]]
)

// Lines returns all segments of the polygon: the exterior segments in ring
// order including the implied closing segment, then each hole's segments in
// the order the holes were supplied.
func (p Polygon[P, S, W]) Lines() []Line[P, S, W] {
	lines := p.Exterior.Lines()
	for _, r := range p.Interior {
		lines = append(lines, r.Lines()...)
	}
	return lines
}

// Rings returns the exterior ring followed by the interior rings.
func (p Polygon[P, S, W]) Rings() []Ring[P, S, W] {
	return append([]Ring[P, S, W]{p.Exterior}, p.Interior...)
}

// Points returns the points of all rings, exterior first.
func (p Polygon[P, S, W]) Points() []P {
	points := append([]P(nil), p.Exterior.points...)
	return append(points, p.Interior.Points()...)
}

// Empty is true when the exterior bounds no area.
func (p Polygon[P, S, W]) Empty() bool {
	return p.Exterior.Empty()
}

// ToMulti wraps the polygon into a single-element MultiPolygon.
func (p Polygon[P, S, W]) ToMulti() MultiPolygon[P, S, W] {
	return MultiPolygon[P, S, W]{p}
}

// Map returns the polygon with f applied to every point.
func (p Polygon[P, S, W]) Map(f func(P) P) Polygon[P, S, W] {
	return Polygon[P, S, W]{p.Exterior.Map(f), p.Interior.Map(f)}
}

// MultiPolygon is an ordered collection of polygons.
type MultiPolygon[P Point[P, S, W], S Scalar, W Normal[W, S]] []Polygon[P, S, W]

type (
	MultiPolygon2[S Scalar] = MultiPolygon[Vec2[S], S, Bivec[S]]
	MultiPolygon3[S Scalar] = MultiPolygon[Vec3[S], S, Vec3[S]]
)

// Empty is true when no polygon bounds an area.
func (m MultiPolygon[P, S, W]) Empty() bool {
	for _, p := range m {
		if !p.Empty() {
			return false
		}
	}
	return true
}

// Rings returns all rings of all polygons, each exterior before its holes.
func (m MultiPolygon[P, S, W]) Rings() []Ring[P, S, W] {
	var rings []Ring[P, S, W]
	for _, p := range m {
		rings = append(rings, p.Rings()...)
	}
	return rings
}

// Points returns the points of all polygons in order.
func (m MultiPolygon[P, S, W]) Points() []P {
	var points []P
	for _, p := range m {
		points = append(points, p.Points()...)
	}
	return points
}

// Map returns the collection with f applied to every point.
func (m MultiPolygon[P, S, W]) Map(f func(P) P) MultiPolygon[P, S, W] {
	mapped := make(MultiPolygon[P, S, W], len(m))
	for i, p := range m {
		mapped[i] = p.Map(f)
	}
	return mapped
}
