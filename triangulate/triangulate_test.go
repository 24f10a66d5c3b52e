package triangulate

import (
	"math"
	"testing"

	"github.com/tdewolff/planar"
	"github.com/tdewolff/test"
)

func square(x0, y0, x1, y1 float64) planar.Ring2[float64] {
	return planar.NewRing2([]planar.Vec2[float64]{
		{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1},
	})
}

func totalArea(tris []planar.Triangle2[float64]) float64 {
	area := 0.0
	for _, t := range tris {
		area += math.Abs(planar.TriangleArea(t))
	}
	return area
}

func TestRing(t *testing.T) {
	tris, err := Ring(square(0.0, 0.0, 1.0, 1.0))
	test.Error(t, err)
	test.T(t, len(tris), 2)
	test.Float(t, totalArea(tris), 1.0)
}

func TestPolygonWithHole(t *testing.T) {
	p := planar.Polygon2[float64]{
		Exterior: square(0.0, 0.0, 3.0, 3.0),
		Interior: planar.MultiRing2[float64]{square(1.0, 1.0, 2.0, 2.0)},
	}
	tris, err := Polygon(p)
	test.Error(t, err)
	test.Float(t, totalArea(tris), 8.0)
}

func TestPolygonEmpty(t *testing.T) {
	tris, err := Polygon(planar.Polygon2[float64]{})
	test.Error(t, err)
	test.T(t, len(tris), 0)
}

func TestMultiPolygon(t *testing.T) {
	mp := planar.MultiPolygon2[float64]{
		square(0.0, 0.0, 1.0, 1.0).ToPolygon(),
		square(2.0, 0.0, 3.0, 1.0).ToPolygon(),
	}
	tris, err := MultiPolygon(mp)
	test.Error(t, err)
	test.T(t, len(tris), 4)
	test.Float(t, totalArea(tris), 2.0)
}

func TestStitch(t *testing.T) {
	tris, err := Ring(square(0.0, 0.0, 1.0, 1.0))
	test.Error(t, err)

	rings, err := Stitch(tris)
	test.Error(t, err)
	test.T(t, len(rings), 1)
	test.That(t, rings[0].InsideEqApprox(square(0.0, 0.0, 1.0, 1.0), 1.0e-9))
	test.That(t, planar.CCW(rings[0]))
}

func TestStitchWithHole(t *testing.T) {
	p := planar.Polygon2[float64]{
		Exterior: square(0.0, 0.0, 3.0, 3.0),
		Interior: planar.MultiRing2[float64]{square(1.0, 1.0, 2.0, 2.0)},
	}
	tris, err := Polygon(p)
	test.Error(t, err)

	rings, err := Stitch(tris)
	test.Error(t, err)
	test.T(t, len(rings), 2)

	areas := []float64{planar.Area(rings[0]), planar.Area(rings[1])}
	if areas[1] > areas[0] {
		areas[0], areas[1] = areas[1], areas[0]
	}
	test.Float(t, areas[0], 9.0)  // counter clockwise exterior
	test.Float(t, areas[1], -1.0) // clockwise hole
}

func TestStitchFlippedTriangles(t *testing.T) {
	// winding of the input triangles does not matter
	tris, err := Ring(square(0.0, 0.0, 1.0, 1.0))
	test.Error(t, err)
	tris[0] = tris[0].Flip()

	rings, err := Stitch(tris)
	test.Error(t, err)
	test.T(t, len(rings), 1)
}

func TestStitchNonManifold(t *testing.T) {
	tri := planar.Triangle2[float64]{{X: 0.0, Y: 0.0}, {X: 1.0, Y: 0.0}, {X: 0.0, Y: 1.0}}
	_, err := Stitch([]planar.Triangle2[float64]{tri, tri})
	test.T(t, err, ErrNonManifold)
}

func TestStitchEmpty(t *testing.T) {
	rings, err := Stitch[float64](nil)
	test.Error(t, err)
	test.T(t, len(rings), 0)
}
