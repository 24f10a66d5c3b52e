package planar

// Normal returns the generalized area of the ring: half the sum of the
// wedge products of consecutive points around the ring. In two dimensions
// this is the signed area wrapped in a Bivec, positive for counter-clockwise
// winding. In three dimensions it is the plane normal scaled by the area,
// since area alone has no sign in space.
func (r Ring[P, S, W]) Normal() W {
	var n W
	for i, p := range r.points {
		n = n.Add(p.Wedge(r.points[(i+1)%len(r.points)]))
	}
	return n.Mul(S(0.5))
}

// Normal returns the generalized area of the polygon: the sum of the ring
// normals. Holes wound opposite to the exterior subtract their area.
func (p Polygon[P, S, W]) Normal() W {
	n := p.Exterior.Normal()
	for _, r := range p.Interior {
		n = n.Add(r.Normal())
	}
	return n
}

// Normal returns the sum of the polygon normals.
func (m MultiPolygon[P, S, W]) Normal() W {
	var n W
	for _, p := range m {
		n = n.Add(p.Normal())
	}
	return n
}

// Area returns the signed area of a planar ring, positive for
// counter-clockwise winding.
func Area[S Scalar](r Ring2[S]) S {
	return r.Normal().Z
}

// PolygonArea returns the signed area of a planar polygon including its
// holes.
func PolygonArea[S Scalar](p Polygon2[S]) S {
	return p.Normal().Z
}

// MultiPolygonArea returns the summed signed area of all polygons.
func MultiPolygonArea[S Scalar](m MultiPolygon2[S]) S {
	return m.Normal().Z
}

// TriangleArea returns the signed area of a planar triangle.
func TriangleArea[S Scalar](t Triangle2[S]) S {
	return t.Normal().Z
}

// CCW is true when the ring has counter-clockwise winding.
func CCW[S Scalar](r Ring2[S]) bool {
	return 0.0 <= Area(r)
}

// Flip returns the ring with reversed point order, negating its normal
// without changing the represented point set.
func (r Ring[P, S, W]) Flip() Ring[P, S, W] {
	return Ring[P, S, W]{reversePoints(r.points)}
}

// Flip returns the collection with every ring reversed.
func (m MultiRing[P, S, W]) Flip() MultiRing[P, S, W] {
	flipped := make(MultiRing[P, S, W], len(m))
	for i, r := range m {
		flipped[i] = r.Flip()
	}
	return flipped
}

// Flip returns the polygon with every ring reversed.
func (p Polygon[P, S, W]) Flip() Polygon[P, S, W] {
	return Polygon[P, S, W]{p.Exterior.Flip(), p.Interior.Flip()}
}

// Flip returns the collection with every polygon reversed.
func (m MultiPolygon[P, S, W]) Flip() MultiPolygon[P, S, W] {
	flipped := make(MultiPolygon[P, S, W], len(m))
	for i, p := range m {
		flipped[i] = p.Flip()
	}
	return flipped
}

// Orient returns the ring rewound so that its normal aligns with direction,
// ie. their dot product is not negative. In two dimensions Bivec{Z: 1}
// orients counter-clockwise and Bivec{Z: -1} clockwise.
func (r Ring[P, S, W]) Orient(direction W) Ring[P, S, W] {
	if r.Normal().Dot(direction) < S(0.0) {
		return r.Flip()
	}
	return r
}

// Orient returns the polygon with its exterior aligned with direction and
// every hole aligned opposite. Interior and exterior are told apart purely
// by relative winding, not nesting, which makes this normalization a
// prerequisite for delegating to engines with fixed winding conventions.
func (p Polygon[P, S, W]) Orient(direction W) Polygon[P, S, W] {
	opposite := direction.Mul(S(-1.0))
	interior := make(MultiRing[P, S, W], len(p.Interior))
	for i, r := range p.Interior {
		interior[i] = r.Orient(opposite)
	}
	return Polygon[P, S, W]{p.Exterior.Orient(direction), interior}
}

// Orient applies Polygon.Orient to every polygon.
func (m MultiPolygon[P, S, W]) Orient(direction W) MultiPolygon[P, S, W] {
	oriented := make(MultiPolygon[P, S, W], len(m))
	for i, p := range m {
		oriented[i] = p.Orient(direction)
	}
	return oriented
}

// Center returns the mean of the ring's points.
func (r Ring[P, S, W]) Center() P {
	var c P
	for _, p := range r.points {
		c = c.Add(p)
	}
	return c.Div(S(len(r.points)))
}

// Center returns the mean of the ring centers.
func (m MultiRing[P, S, W]) Center() P {
	var c P
	for _, r := range m {
		c = c.Add(r.Center())
	}
	return c.Div(S(len(m)))
}

// Center returns the center of the exterior ring.
func (p Polygon[P, S, W]) Center() P {
	return p.Exterior.Center()
}
