// Package triangulate converts planar polygons into triangles using
// constrained Delaunay triangulation, and stitches triangle soups back into
// boundary rings.
package triangulate

import (
	"fmt"

	"github.com/ByteArena/poly2tri-go"
	"github.com/tdewolff/planar"
)

// Ring triangulates the area bounded by a single ring.
func Ring[S planar.Scalar](r planar.Ring2[S]) ([]planar.Triangle2[S], error) {
	return Polygon(r.ToPolygon())
}

// Polygon triangulates a polygon with holes. The boundary must be simple:
// self-intersecting or duplicated edges make the sweep fail, which is
// reported as an error holding no triangles.
func Polygon[S planar.Scalar](p planar.Polygon2[S]) (tris []planar.Triangle2[S], err error) {
	if p.Empty() {
		return nil, nil
	}

	// The sweep panics on malformed input deep inside its edge events.
	defer func() {
		if r := recover(); r != nil {
			tris = nil
			err = fmt.Errorf("triangulate: %v", r)
		}
	}()

	swctx := poly2tri.NewSweepContext(contour(p.Exterior), false)
	for _, hole := range p.Interior {
		if !hole.Empty() {
			swctx.AddHole(contour(hole))
		}
	}
	swctx.Triangulate()

	for _, tr := range swctx.GetTriangles() {
		tris = append(tris, planar.Triangle2[S]{
			planar.Vec2[S]{X: S(tr.Points[0].X), Y: S(tr.Points[0].Y)},
			planar.Vec2[S]{X: S(tr.Points[1].X), Y: S(tr.Points[1].Y)},
			planar.Vec2[S]{X: S(tr.Points[2].X), Y: S(tr.Points[2].Y)},
		})
	}
	return tris, nil
}

// MultiPolygon triangulates each polygon and concatenates the triangles.
func MultiPolygon[S planar.Scalar](mp planar.MultiPolygon2[S]) ([]planar.Triangle2[S], error) {
	var tris []planar.Triangle2[S]
	for _, p := range mp {
		t, err := Polygon(p)
		if err != nil {
			return nil, err
		}
		tris = append(tris, t...)
	}
	return tris, nil
}

func contour[S planar.Scalar](r planar.Ring2[S]) []*poly2tri.Point {
	points := r.Points()
	contour := make([]*poly2tri.Point, len(points))
	for i, p := range points {
		contour[i] = poly2tri.NewPoint(float64(p.X), float64(p.Y))
	}
	return contour
}
