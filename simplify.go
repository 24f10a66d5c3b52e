package planar

// Simplify merges runs of consecutive points that lie within eps of each
// other into their centroid. Points chain into the same run as long as each
// is within eps of the previous one, so a run may span more than eps in
// total. When the ring's first and last points are within eps the trailing
// run wraps around and merges into the leading one. It returns false when
// fewer than three runs remain, as no valid ring can be built from them.
func (r Ring[P, S, W]) Simplify(eps S) (Ring[P, S, W], bool) {
	var groups [][]P
	for _, p := range r.points {
		if 0 < len(groups) {
			last := groups[len(groups)-1]
			if d := p.Sub(last[len(last)-1]); d.Dot(d) < eps*eps {
				groups[len(groups)-1] = append(last, p)
				continue
			}
		}
		groups = append(groups, []P{p})
	}

	if 0 < len(r.points) {
		if d := r.points[0].Sub(r.points[len(r.points)-1]); d.Dot(d) < eps*eps {
			last := groups[len(groups)-1]
			groups = groups[:len(groups)-1]
			if 0 < len(groups) {
				groups[0] = append(groups[0], last...)
			}
		}
	}

	if len(groups) < 3 {
		return Ring[P, S, W]{}, false
	}

	points := make([]P, len(groups))
	for i, group := range groups {
		var sum P
		for _, p := range group {
			sum = sum.Add(p)
		}
		points[i] = sum.Div(S(len(group)))
	}
	return NewRing[P, S, W](points), true
}

// Simplify simplifies each ring, failing if any of them collapses.
func (rs MultiRing[P, S, W]) Simplify(eps S) (MultiRing[P, S, W], bool) {
	simplified := make(MultiRing[P, S, W], len(rs))
	for i, r := range rs {
		var ok bool
		if simplified[i], ok = r.Simplify(eps); !ok {
			return nil, false
		}
	}
	return simplified, true
}

// Simplify simplifies the exterior and interior rings. A collapsing exterior
// fails the whole polygon, while collapsing interiors are dropped.
func (p Polygon[P, S, W]) Simplify(eps S) (Polygon[P, S, W], bool) {
	exterior, ok := p.Exterior.Simplify(eps)
	if !ok {
		return Polygon[P, S, W]{}, false
	}
	interior, ok := p.Interior.Simplify(eps)
	if !ok {
		interior = nil
	}
	return Polygon[P, S, W]{exterior, interior}, true
}

// Simplify simplifies each polygon, failing if any of them collapses.
func (ps MultiPolygon[P, S, W]) Simplify(eps S) (MultiPolygon[P, S, W], bool) {
	simplified := make(MultiPolygon[P, S, W], len(ps))
	for i, p := range ps {
		var ok bool
		if simplified[i], ok = p.Simplify(eps); !ok {
			return nil, false
		}
	}
	return simplified, true
}
