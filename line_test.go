package planar

import (
	"fmt"
	"testing"

	"github.com/tdewolff/test"
)

func TestLine(t *testing.T) {
	l := Line2[float64]{Vec2[float64]{1.0, 1.0}, Vec2[float64]{4.0, 5.0}}
	test.T(t, l.Vector(), Vec2[float64]{3.0, 4.0})
	test.T(t, l.Dir(), Vec2[float64]{0.6, 0.8})
	test.Float(t, l.Length(), 5.0)
	test.T(t, l.Center(), Vec2[float64]{2.5, 3.0})
	test.T(t, l.Position(0.0), l.Start)
	test.T(t, l.Position(1.0), l.End)
	test.T(t, l.Flip(), Line2[float64]{l.End, l.Start})
}

func TestLineScalarOf(t *testing.T) {
	l := Line2[float64]{Vec2[float64]{0.0, 0.0}, Vec2[float64]{2.0, 0.0}}
	var tts = []struct {
		p Vec2[float64]
		t float64
	}{
		{Vec2[float64]{0.0, 0.0}, 0.0},
		{Vec2[float64]{2.0, 0.0}, 1.0},
		{Vec2[float64]{1.0, 0.0}, 0.5},
		{Vec2[float64]{1.0, 5.0}, 0.5}, // off-segment points project onto the line
		{Vec2[float64]{-2.0, 0.0}, -1.0},
	}
	for i, tt := range tts {
		t.Run(fmt.Sprint(i), func(t *testing.T) {
			test.Float(t, l.ScalarOf(tt.p), tt.t)
		})
	}
}

func TestLineProject(t *testing.T) {
	l := Line2[float64]{Vec2[float64]{0.0, 0.0}, Vec2[float64]{4.0, 0.0}}
	test.T(t, l.Project(Vec2[float64]{1.0, 3.0}), Vec2[float64]{1.0, 0.0})
	test.T(t, l.Project(Vec2[float64]{3.0, -2.0}), Vec2[float64]{3.0, 0.0})
}
