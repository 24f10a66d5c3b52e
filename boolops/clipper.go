package boolops

import (
	"math"

	clipper "github.com/ctessum/go.clipper"
	"github.com/tdewolff/planar"
)

// clipperScale converts between scalar coordinates and clipper's fixed-point
// grid. At 1e7 the grid is finer than any sensible geometric tolerance while
// keeping coordinates up to ~9e11 units representable in a CInt product.
const clipperScale = 1e7

func toClipperPath[S planar.Scalar](r planar.Ring2[S]) clipper.Path {
	points := r.Points()
	path := make(clipper.Path, len(points))
	for i, p := range points {
		path[i] = clipper.NewIntPoint(
			clipper.CInt(math.Round(float64(p.X)*clipperScale)),
			clipper.CInt(math.Round(float64(p.Y)*clipperScale)),
		)
	}
	return path
}

// toClipperPaths flattens a multi polygon into clipper paths with counter
// clockwise exteriors and clockwise holes, so that non-zero filling
// reconstructs the same regions.
func toClipperPaths[S planar.Scalar](mp planar.MultiPolygon2[S]) clipper.Paths {
	mp = mp.Orient(planar.Bivec[S]{Z: 1})
	var paths clipper.Paths
	for _, p := range mp {
		if p.Exterior.Empty() {
			continue
		}
		paths = append(paths, toClipperPath(p.Exterior))
		for _, hole := range p.Interior {
			if !hole.Empty() {
				paths = append(paths, toClipperPath(hole))
			}
		}
	}
	return paths
}

func fromClipperPath[S planar.Scalar](path clipper.Path) planar.Ring2[S] {
	points := make([]planar.Vec2[S], len(path))
	for i, p := range path {
		points[i] = planar.Vec2[S]{
			X: S(float64(p.X) / clipperScale),
			Y: S(float64(p.Y) / clipperScale),
		}
	}
	return planar.NewRing2(points)
}

// fromClipperTree rebuilds polygons with holes from clipper's nesting tree.
// The tree alternates outer contours and holes; a contour nested inside a
// hole starts a new polygon.
func fromClipperTree[S planar.Scalar](tree *clipper.PolyTree) planar.MultiPolygon2[S] {
	var mp planar.MultiPolygon2[S]
	if tree == nil {
		return mp
	}
	var walk func(outers []*clipper.PolyNode)
	walk = func(outers []*clipper.PolyNode) {
		for _, outer := range outers {
			p := planar.Polygon2[S]{Exterior: fromClipperPath[S](outer.Contour())}
			for _, hole := range outer.Childs() {
				if interior := fromClipperPath[S](hole.Contour()); !interior.Empty() {
					p.Interior = append(p.Interior, interior)
				}
				walk(hole.Childs())
			}
			if !p.Exterior.Empty() {
				mp = append(mp, p)
			}
		}
	}
	walk(tree.Childs())
	return mp.Orient(planar.Bivec[S]{Z: 1})
}
