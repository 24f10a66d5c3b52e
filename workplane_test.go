package planar

import (
	"errors"
	"testing"

	"github.com/tdewolff/test"
)

func TestNewWorkplane(t *testing.T) {
	wp, err := NewWorkplane(Vec3[float64]{0.0, 0.0, 3.0}, Vec3[float64]{1.0, 1.0, 0.0})
	test.Error(t, err)
	test.T(t, wp.Normal, Vec3[float64]{0.0, 0.0, 1.0})

	_, err = NewWorkplane(Vec3[float64]{}, Vec3[float64]{})
	test.That(t, errors.Is(err, ErrDegeneratePlane))
}

func TestWorkplaneFromThreePoints(t *testing.T) {
	wp, err := WorkplaneFromThreePoints(
		Vec3[float64]{0.0, 0.0, 1.0},
		Vec3[float64]{1.0, 0.0, 1.0},
		Vec3[float64]{0.0, 1.0, 1.0},
	)
	test.Error(t, err)
	test.T(t, wp.Normal, Vec3[float64]{0.0, 0.0, 1.0})
	test.T(t, wp.HesseNormalForm().Origin, Vec3[float64]{0.0, 0.0, 1.0})

	// collinear points span no plane
	_, err = WorkplaneFromThreePoints(
		Vec3[float64]{0.0, 0.0, 0.0},
		Vec3[float64]{1.0, 0.0, 0.0},
		Vec3[float64]{2.0, 0.0, 0.0},
	)
	test.That(t, errors.Is(err, ErrDegeneratePlane))
}

func TestWorkplaneRoundtrip(t *testing.T) {
	a := Vec3[float64]{0.0, 0.5, 1.0}
	b := Vec3[float64]{2.0, 0.0, 1.5}
	c := Vec3[float64]{0.5, 3.0, -1.0}
	wp, err := WorkplaneFromThreePoints(a, b, c)
	test.Error(t, err)

	for _, p := range []Vec3[float64]{a, b, c} {
		q := wp.UnembedPoint(wp.EmbedPoint(p))
		test.That(t, q.EqualApprox(p, 1.0e-9), "roundtrip of", p, "gave", q)
	}
}

func TestWorkplaneFromPoints(t *testing.T) {
	// plane x+y+z = 3
	points := []Vec3[float64]{{3.0, 0.0, 0.0}, {0.0, 3.0, 0.0}, {0.0, 0.0, 3.0}}
	wp, err := WorkplaneFromPoints(points)
	test.Error(t, err)
	test.That(t, wp.Normal.EqualApprox(Vec3[float64]{1.0, 1.0, 1.0}.Normalize(), 1.0e-9))
	test.T(t, wp.Origin, Vec3[float64]{1.0, 1.0, 1.0})

	r := wp.EmbedRing(NewRing3(points))
	back := wp.UnembedRing(r)
	test.That(t, back.InsideEqApprox(NewRing3(points), 1.0e-9))

	_, err = WorkplaneFromPoints(points[:2])
	test.That(t, errors.Is(err, ErrDegeneratePlane))
}

func TestWorkplaneDownwardNormal(t *testing.T) {
	// the rotation onto +Z is singular at -Z and takes a fixed half turn
	wp, err := NewWorkplane(Vec3[float64]{0.0, 0.0, -1.0}, Vec3[float64]{0.0, 0.0, 2.0})
	test.Error(t, err)

	p := Vec3[float64]{1.0, 2.0, 2.0}
	test.T(t, wp.EmbedPoint(p), Vec2[float64]{1.0, -2.0})
	test.That(t, wp.UnembedPoint(wp.EmbedPoint(p)).EqualApprox(p, 1.0e-9))
}

func TestWorkplaneDownwardNormalFloat32(t *testing.T) {
	// at float32 the singularity guard must still trigger for exactly -Z
	wp, err := NewWorkplane(Vec3[float32]{0.0, 0.0, -1.0}, Vec3[float32]{0.0, 0.0, 2.0})
	test.Error(t, err)

	p := Vec3[float32]{1.0, 2.0, 2.0}
	test.T(t, wp.EmbedPoint(p), Vec2[float32]{1.0, -2.0})
	test.That(t, wp.UnembedPoint(wp.EmbedPoint(p)).EqualApprox(p, 1.0e-5))
}

func TestWorkplaneOfRing(t *testing.T) {
	r := NewRing3([]Vec3[float64]{{0.0, 0.0, 5.0}, {1.0, 0.0, 5.0}, {1.0, 1.0, 5.0}, {0.0, 1.0, 5.0}})
	wp, err := WorkplaneOfRing(r)
	test.Error(t, err)
	test.T(t, wp.Normal, Vec3[float64]{0.0, 0.0, 1.0})
	test.T(t, wp.Origin, Vec3[float64]{0.0, 0.0, 5.0})

	embedded := wp.EmbedRing(r)
	test.Float(t, Area(embedded), 1.0)

	_, err = WorkplaneOfRing(Ring3[float64]{})
	test.That(t, errors.Is(err, ErrDegeneratePlane))
}

func TestWorkplaneProjectPoint(t *testing.T) {
	wp, err := NewWorkplane(Vec3[float64]{0.0, 0.0, 1.0}, Vec3[float64]{0.0, 0.0, 1.0})
	test.Error(t, err)
	test.T(t, wp.ProjectPoint(Vec3[float64]{4.0, 5.0, 9.0}), Vec3[float64]{4.0, 5.0, 1.0})
}
