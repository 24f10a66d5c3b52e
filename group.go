package planar

// PlaneGroup is a set of coplanar primitives embedded into their shared
// workplane.
type PlaneGroup[T any, S Scalar] struct {
	Plane Workplane[S]
	Items []T
}

// GroupRings groups rings by the plane they lie in and embeds each ring into
// its group's workplane. Planes whose normals and origins agree within
// tolerance after Hesse normalization are considered the same plane.
// Degenerate rings that do not span a plane are skipped.
func GroupRings[S Scalar](rings []Ring3[S], tolerance S) []PlaneGroup[Ring2[S], S] {
	return groupPrimitives(rings, tolerance, WorkplaneOfRing[S], Workplane[S].EmbedRing)
}

// GroupPolygons groups polygons by the plane they lie in, see GroupRings.
func GroupPolygons[S Scalar](polygons []Polygon3[S], tolerance S) []PlaneGroup[Polygon2[S], S] {
	return groupPrimitives(polygons, tolerance, WorkplaneOfPolygon[S], Workplane[S].EmbedPolygon)
}

// GroupTriangles groups triangles by the plane they lie in, see GroupRings.
func GroupTriangles[S Scalar](triangles []Triangle3[S], tolerance S) []PlaneGroup[Triangle2[S], S] {
	return groupPrimitives(triangles, tolerance, WorkplaneOfTriangle[S], Workplane[S].EmbedTriangle)
}

func groupPrimitives[T3, T2 any, S Scalar](items []T3, tolerance S, plane func(T3) (Workplane[S], error), embed func(Workplane[S], T3) T2) []PlaneGroup[T2, S] {
	var groups []PlaneGroup[T2, S]
	for _, item := range items {
		wp, err := plane(item)
		if err != nil {
			continue
		}
		wp = wp.HesseNormalForm()

		matched := false
		for i, group := range groups {
			if wp.Normal.EqualApprox(group.Plane.Normal, tolerance) && wp.Origin.EqualApprox(group.Plane.Origin, tolerance) {
				groups[i].Items = append(group.Items, embed(group.Plane, item))
				matched = true
				break
			}
		}
		if !matched {
			groups = append(groups, PlaneGroup[T2, S]{wp, []T2{embed(wp, item)}})
		}
	}
	return groups
}
