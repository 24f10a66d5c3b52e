package planar

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func line(x0, y0, x1, y1 float64) Line2[float64] {
	return Line2[float64]{Vec2[float64]{x0, y0}, Vec2[float64]{x1, y1}}
}

func TestIntersectKind(t *testing.T) {
	tolerance := 1.0e-9
	var tts = []struct {
		l, o Line2[float64]
		kind IntersectionKind
	}{
		{line(0.0, 0.0, 2.0, 2.0), line(0.0, 2.0, 2.0, 0.0), SimpleIntersection},
		{line(0.0, 0.0, 2.0, 0.0), line(2.0, 0.0, 2.0, 3.0), SimpleIntersection},
		{line(0.0, 0.0, 1.0, 0.0), line(2.0, -1.0, 2.0, 1.0), SimpleIntersection}, // beyond l's end
		{line(0.0, 0.0, 1.0, 0.0), line(0.0, 1.0, 1.0, 1.0), ParallelNonCollinear},
		{line(0.0, 0.0, 1.0, 0.0), line(3.0, 0.0, 4.0, 0.0), CollinearDisjoint},
		{line(0.0, 0.0, 1.0, 0.0), line(1.0, 0.0, 2.0, 0.0), CollinearTouch},
		{line(0.0, 0.0, 1.0, 0.0), line(-1.0, 0.0, 0.0, 0.0), CollinearTouch},
		{line(0.0, 0.0, 2.0, 0.0), line(1.0, 0.0, 3.0, 0.0), CollinearOverlap},
		{line(0.0, 0.0, 2.0, 0.0), line(3.0, 0.0, 1.0, 0.0), CollinearOverlap}, // opposite direction
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, Intersect(tt.l, tt.o, tolerance).Kind, tt.kind)
		})
	}
}

func TestIntersectCrossing(t *testing.T) {
	z := Intersect(line(0.0, 0.0, 2.0, 2.0), line(0.0, 2.0, 2.0, 0.0), 1.0e-9)
	test.T(t, z.Point, Vec2[float64]{1.0, 1.0})
	test.Float(t, z.A.T, 0.5)
	test.Float(t, z.B.T, 0.5)
	test.That(t, z.Intersects())
	test.That(t, z.IsTrueIntersection())
	test.That(t, z.IntersectsExcludeEndpoints(1.0e-9))

	p, ok := z.Pos()
	test.That(t, ok)
	test.T(t, p, Vec2[float64]{1.0, 1.0})
}

func TestIntersectEndpointTouch(t *testing.T) {
	z := Intersect(line(0.0, 0.0, 2.0, 0.0), line(2.0, 0.0, 2.0, 3.0), 1.0e-9)
	test.T(t, z.Point, Vec2[float64]{2.0, 0.0})
	test.Float(t, z.A.T, 1.0)
	test.Float(t, z.B.T, 0.0)
	test.That(t, z.Intersects())
	test.That(t, !z.IsTrueIntersection())
	test.That(t, !z.IntersectsExcludeEndpoints(1.0e-9))
	test.That(t, z.A.IsEndpoint(1.0e-9))
	test.That(t, z.B.IsEndpoint(1.0e-9))
}

func TestIntersectOutside(t *testing.T) {
	z := Intersect(line(0.0, 0.0, 1.0, 0.0), line(2.0, -1.0, 2.0, 1.0), 1.0e-9)
	test.T(t, z.A.Kind, PositionOutsideEnd)
	test.T(t, z.B.Kind, PositionInside)
	test.That(t, !z.Intersects())

	_, ok := z.Pos()
	test.That(t, !ok)

	z = Intersect(line(1.0, 0.0, 2.0, 0.0), line(0.0, -1.0, 0.0, 1.0), 1.0e-9)
	test.T(t, z.A.Kind, PositionOutsideStart)
	test.That(t, !z.Intersects())
}

func TestIntersectCollinearTouch(t *testing.T) {
	z := Intersect(line(0.0, 0.0, 1.0, 0.0), line(1.0, 0.0, 2.0, 0.0), 1.0e-9)
	test.T(t, z.Point, Vec2[float64]{1.0, 0.0})

	z = Intersect(line(0.0, 0.0, 1.0, 0.0), line(-1.0, 0.0, 0.0, 0.0), 1.0e-9)
	test.T(t, z.Point, Vec2[float64]{0.0, 0.0})
}

func TestIntersectCollinearOverlap(t *testing.T) {
	z := Intersect(line(0.0, 0.0, 2.0, 0.0), line(1.0, 0.0, 3.0, 0.0), 1.0e-9)
	test.T(t, z.Overlap, line(1.0, 0.0, 2.0, 0.0))

	p, ok := z.Pos()
	test.That(t, ok)
	test.T(t, p, Vec2[float64]{1.5, 0.0})

	// o contained within l
	z = Intersect(line(0.0, 0.0, 4.0, 0.0), line(1.0, 0.0, 3.0, 0.0), 1.0e-9)
	test.T(t, z.Overlap, line(1.0, 0.0, 3.0, 0.0))
}
