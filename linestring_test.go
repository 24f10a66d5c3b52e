package planar

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestLineString(t *testing.T) {
	l := NewLineString2([]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}})
	test.T(t, l.Points(), []Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}})
	test.That(t, !l.Empty())
	test.That(t, !l.Closed())
	test.T(t, len(l.Lines()), 2)

	_, ok := l.ToRing()
	test.That(t, !ok)

	closed := NewLineString2([]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 0.0}})
	test.That(t, closed.Closed())
	r, ok := closed.ToRing()
	test.That(t, ok)
	test.T(t, r, NewRing2([]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}}))
	test.T(t, closed.Close(), r)
	test.T(t, l.Close(), r)
}

func TestLineStringFlip(t *testing.T) {
	l := NewLineString2([]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}})
	test.T(t, l.Flip().Points(), []Vec2[float64]{{1.0, 1.0}, {1.0, 0.0}, {0.0, 0.0}})
	test.T(t, l.Flip().Flip(), l)
}

func TestInsideEq(t *testing.T) {
	r := NewRing2([]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 1.0}})
	rotated := NewRing2([]Vec2[float64]{{1.0, 1.0}, {0.0, 1.0}, {0.0, 0.0}, {1.0, 0.0}})
	flipped := r.Flip()

	test.That(t, r.InsideEq(rotated))
	test.That(t, rotated.InsideEq(r))
	test.That(t, !r.InsideEq(flipped)) // winding differs
	test.That(t, flipped.Flip().InsideEq(r))

	shifted := r.Map(func(p Vec2[float64]) Vec2[float64] { return p.Add(Vec2[float64]{1e-9, 0.0}) })
	test.That(t, !r.InsideEq(shifted))
	test.That(t, r.InsideEqApprox(shifted, 1e-6))

	mp := r.ToPolygon().ToMulti()
	shiftedMP := shifted.ToPolygon().ToMulti()
	test.That(t, !mp.InsideEq(shiftedMP))
	test.That(t, mp.InsideEqApprox(shiftedMP, 1e-6))
	test.That(t, !mp.InsideEqApprox(MultiPolygon2[float64]{}, 1e-6))
}
