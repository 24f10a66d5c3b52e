package planar

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestGroupTriangles(t *testing.T) {
	z1a := Triangle3[float64]{{0.0, 0.0, 1.0}, {1.0, 0.0, 1.0}, {0.0, 1.0, 1.0}}
	z1b := Triangle3[float64]{{2.0, 2.0, 1.0}, {3.0, 2.0, 1.0}, {2.0, 3.0, 1.0}}
	z2 := Triangle3[float64]{{0.0, 0.0, 2.0}, {1.0, 0.0, 2.0}, {0.0, 1.0, 2.0}}
	degenerate := Triangle3[float64]{{0.0, 0.0, 0.0}, {1.0, 0.0, 0.0}, {2.0, 0.0, 0.0}}

	groups := GroupTriangles([]Triangle3[float64]{z1a, z1b, z2, degenerate}, 1.0e-6)
	test.T(t, len(groups), 2)
	test.T(t, len(groups[0].Items), 2)
	test.T(t, len(groups[1].Items), 1)
	test.That(t, groups[0].Plane.Origin.EqualApprox(Vec3[float64]{0.0, 0.0, 1.0}, 1.0e-9))
	test.That(t, groups[1].Plane.Origin.EqualApprox(Vec3[float64]{0.0, 0.0, 2.0}, 1.0e-9))

	// embedded members keep their area
	test.Float(t, TriangleArea(groups[0].Items[0]), 0.5)
	test.Float(t, TriangleArea(groups[0].Items[1]), 0.5)
}

func TestGroupRings(t *testing.T) {
	r1 := NewRing3([]Vec3[float64]{{0.0, 0.0, 1.0}, {1.0, 0.0, 1.0}, {1.0, 1.0, 1.0}, {0.0, 1.0, 1.0}})
	r2 := NewRing3([]Vec3[float64]{{5.0, 5.0, 1.0}, {6.0, 5.0, 1.0}, {6.0, 6.0, 1.0}, {5.0, 6.0, 1.0}})
	tilted := NewRing3([]Vec3[float64]{{0.0, 0.0, 0.0}, {1.0, 0.0, 1.0}, {1.0, 1.0, 2.0}, {0.0, 1.0, 1.0}})

	groups := GroupRings([]Ring3[float64]{r1, r2, tilted}, 1.0e-6)
	test.T(t, len(groups), 2)
	test.T(t, len(groups[0].Items), 2)
	test.Float(t, Area(groups[0].Items[0]), 1.0)
}
