package planar

// SplitRingPolygon detects a polygon whose exterior ring traverses the same
// undirected edge twice, such as a bowtie produced by a shared full edge,
// and splits it into simple polygons at the shared edge's endpoints,
// repeating until no duplicate edge remains. Polygons without duplicate
// edges are returned unchanged. Holes are not carried over into the split
// parts. The split runs iteratively on an explicit work queue, bounding
// stack depth on adversarial self-touching input.
func SplitRingPolygon[P Point[P, S, W], S Scalar, W Normal[W, S]](polygon Polygon[P, S, W]) MultiPolygon[P, S, W] {
	var result MultiPolygon[P, S, W]
	queue := []Polygon[P, S, W]{polygon}
	for 0 < len(queue) {
		p := queue[0]
		queue = queue[1:]

		i, ok := findDoubleEdge(p.Exterior)
		if !ok {
			result = append(result, p)
			continue
		}
		p1, p2 := splitAtEdge(p.Exterior, i)
		queue = append(queue, p1.ToPolygon(), p2.ToPolygon())
	}
	return result
}

// findDoubleEdge returns the index of the second occurrence of an edge that
// the ring traverses twice, in either direction.
func findDoubleEdge[P Point[P, S, W], S Scalar, W Normal[W, S]](r Ring[P, S, W]) (int, bool) {
	if len(r.points) < 5 {
		// Splitting cannot make both parts smaller than the ring itself;
		// degenerate input passes through unchanged.
		return 0, false
	}
	lines := r.Lines()
	for i, line := range lines {
		for j := i + 1; j < len(lines); j++ {
			if lines[j] == line || lines[j] == line.Flip() {
				return j, true
			}
		}
	}
	return 0, false
}

// splitAtEdge splits the ring at the endpoints of the duplicated edge
// (points i and i+1): one part keeps the ring minus those two points,
// bridged directly between their cyclic neighbors, and the other part is
// the local quad around the edge.
func splitAtEdge[P Point[P, S, W], S Scalar, W Normal[W, S]](r Ring[P, S, W], i int) (Ring[P, S, W], Ring[P, S, W]) {
	points := r.Points()
	n := len(points)

	first := make([]P, 0, n-2)
	for j, p := range points {
		if j == i || j == (i+1)%n {
			continue
		}
		first = append(first, p)
	}

	second := []P{
		points[(i+n-1)%n],
		points[i],
		points[(i+1)%n],
		points[(i+2)%n],
	}
	return NewRing[P, S, W](first), NewRing[P, S, W](second)
}
