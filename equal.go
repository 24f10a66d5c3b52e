package planar

// InsideEq is true when both rings represent the same point set with the
// same winding, ie. they are equal up to a cyclic rotation of their points.
// Opposite windings are considered different.
func (r Ring[P, S, W]) InsideEq(other Ring[P, S, W]) bool {
	n := len(r.points)
	if n != len(other.points) {
		return false
	} else if n == 0 {
		return true
	}
	for shift := range n {
		if other.points[shift] != r.points[0] {
			continue
		}
		equal := true
		for i := range n {
			if r.points[i] != other.points[(shift+i)%n] {
				equal = false
				break
			}
		}
		if equal {
			return true
		}
	}
	return false
}

// InsideEqApprox is InsideEq with point comparison within tol.
func (r Ring[P, S, W]) InsideEqApprox(other Ring[P, S, W], tol S) bool {
	n := len(r.points)
	if n != len(other.points) {
		return false
	} else if n == 0 {
		return true
	}
	for shift := range n {
		if !other.points[shift].EqualApprox(r.points[0], tol) {
			continue
		}
		equal := true
		for i := range n {
			if !r.points[i].EqualApprox(other.points[(shift+i)%n], tol) {
				equal = false
				break
			}
		}
		if equal {
			return true
		}
	}
	return false
}

// InsideEq is true when both collections contain the same rings up to
// order.
func (m MultiRing[P, S, W]) InsideEq(other MultiRing[P, S, W]) bool {
	if len(m) != len(other) {
		return false
	}
	for _, a := range m {
		found := false
		for _, b := range other {
			if a.InsideEq(b) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// InsideEqApprox is MultiRing.InsideEq with point comparison within tol.
func (m MultiRing[P, S, W]) InsideEqApprox(other MultiRing[P, S, W], tol S) bool {
	if len(m) != len(other) {
		return false
	}
	for _, a := range m {
		found := false
		for _, b := range other {
			if a.InsideEqApprox(b, tol) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// InsideEq is true when exterior and holes represent the same point sets.
func (p Polygon[P, S, W]) InsideEq(other Polygon[P, S, W]) bool {
	return p.Exterior.InsideEq(other.Exterior) && p.Interior.InsideEq(other.Interior)
}

// InsideEqApprox is Polygon.InsideEq with point comparison within tol.
func (p Polygon[P, S, W]) InsideEqApprox(other Polygon[P, S, W], tol S) bool {
	return p.Exterior.InsideEqApprox(other.Exterior, tol) && p.Interior.InsideEqApprox(other.Interior, tol)
}

// InsideEq is true when both collections contain the same polygons up to
// order.
func (m MultiPolygon[P, S, W]) InsideEq(other MultiPolygon[P, S, W]) bool {
	if len(m) != len(other) {
		return false
	}
	for _, a := range m {
		found := false
		for _, b := range other {
			if a.InsideEq(b) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// InsideEqApprox is MultiPolygon.InsideEq with point comparison within tol.
func (m MultiPolygon[P, S, W]) InsideEqApprox(other MultiPolygon[P, S, W], tol S) bool {
	if len(m) != len(other) {
		return false
	}
	for _, a := range m {
		found := false
		for _, b := range other {
			if a.InsideEqApprox(b, tol) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
