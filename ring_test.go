package planar

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestNewRing(t *testing.T) {
	var tts = []struct {
		points []Vec2[float64]
		ring   []Vec2[float64]
	}{
		// consecutive duplicates are removed
		{[]Vec2[float64]{{0.0, 0.0}, {0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}},
			[]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}}},
		// an explicit closing point is removed
		{[]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 0.0}},
			[]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}}},
		// already canonical input is unchanged
		{[]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}},
			[]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}}},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.T(t, NewRing2(tt.points).Points(), tt.ring)
		})
	}
}

func TestRingIdempotent(t *testing.T) {
	r := NewRing2([]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}})
	test.T(t, NewRing2(r.Points()), r)
	test.T(t, NewRing2(r.PointsClosed()), r)
	test.T(t, r.ToLineString().Close(), r)
}

func TestRingLines(t *testing.T) {
	r := NewRing2([]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}})
	lines := r.Lines()
	test.T(t, len(lines), 3)
	test.T(t, lines[2], Line2[float64]{Vec2[float64]{1.0, 1.0}, Vec2[float64]{0.0, 0.0}})
}

func TestRingTrySetPoint(t *testing.T) {
	r := NewRing2([]Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}})
	test.That(t, r.TrySetPoint(1, Vec2[float64]{2.0, 0.0}))
	test.T(t, r.Points()[1], Vec2[float64]{2.0, 0.0})

	// refuse creating consecutive duplicates
	test.That(t, !r.TrySetPoint(1, Vec2[float64]{0.0, 0.0}))
	test.That(t, !r.TrySetPoint(0, Vec2[float64]{1.0, 1.0})) // wraps around
	test.T(t, r.Points()[1], Vec2[float64]{2.0, 0.0})
}

func TestRingDedupApprox(t *testing.T) {
	r := NewRing2([]Vec2[float64]{{0.0, 0.0}, {0.001, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 1.0}, {0.0, 0.001}})
	test.T(t, r.DedupApprox(0.01).Points(), []Vec2[float64]{{0.0, 0.0}, {1.0, 0.0}, {1.0, 1.0}, {0.0, 1.0}})
}
