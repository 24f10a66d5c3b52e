package triangulate

import (
	"errors"

	"github.com/tdewolff/planar"
)

// ErrNonManifold is returned by Stitch when the triangles do not form a
// consistent triangulation, such as three triangles meeting in one edge.
var ErrNonManifold = errors.New("triangles do not form a manifold triangulation")

// Stitch merges a triangle soup back into the boundary rings of the area it
// covers. Triangles must tile the area without overlaps: every interior edge
// is shared by exactly two triangles. Degenerate zero-area triangles are
// ignored. Exterior rings come out counter clockwise and hole rings
// clockwise; assigning holes to their exteriors is left to the caller.
func Stitch[S planar.Scalar](tris []planar.Triangle2[S]) ([]planar.Ring2[S], error) {
	// Orient all triangles the same way so that a shared edge is traversed
	// once in each direction and cancels out.
	count := map[[2]planar.Vec2[S]]int{}
	for _, t := range tris {
		n := t.Normal()
		if n.Z == 0 {
			continue
		} else if n.Z < 0 {
			t = t.Flip()
		}
		for i := 0; i < 3; i++ {
			a, b := t[i], t[(i+1)%3]
			if 0 < count[[2]planar.Vec2[S]{b, a}] {
				count[[2]planar.Vec2[S]{b, a}]--
			} else {
				count[[2]planar.Vec2[S]{a, b}]++
			}
		}
	}

	next := map[planar.Vec2[S]]planar.Vec2[S]{}
	for edge, n := range count {
		if n == 0 {
			continue
		} else if 1 < n {
			return nil, ErrNonManifold
		} else if _, ok := next[edge[0]]; ok {
			// Two boundary edges leave the same point.
			return nil, ErrNonManifold
		}
		next[edge[0]] = edge[1]
	}

	var rings []planar.Ring2[S]
	for 0 < len(next) {
		var start planar.Vec2[S]
		for p := range next {
			start = p
			break
		}

		points := []planar.Vec2[S]{start}
		p, ok := next[start]
		delete(next, start)
		for ok && p != start {
			points = append(points, p)
			var q planar.Vec2[S]
			q, ok = next[p]
			delete(next, p)
			p = q
		}
		if !ok {
			return nil, ErrNonManifold
		}
		rings = append(rings, planar.NewRing2(points))
	}
	return rings, nil
}
