package boolops

import (
	clipper "github.com/ctessum/go.clipper"
	"github.com/tdewolff/planar"
)

// Buffer offsets every boundary of mp outward by distance using miter joins.
// A negative distance shrinks the area instead; polygons narrower than twice
// the distance vanish. The result is always returned as a multi polygon, as
// offsetting can split a polygon or fuse several into one.
func Buffer[S planar.Scalar](mp planar.MultiPolygon2[S], distance S) (result planar.MultiPolygon2[S]) {
	if mp.Empty() {
		return nil
	} else if distance == 0 {
		return mp.Orient(planar.Bivec[S]{Z: 1})
	}

	// the engine panics on coordinates beyond its fixed-point range
	defer func() {
		if r := recover(); r != nil {
			result = nil
		}
	}()

	co := clipper.NewClipperOffset()
	co.AddPaths(toClipperPaths(mp), clipper.JtMiter, clipper.EtClosedPolygon)
	tree := co.Execute2(float64(distance) * clipperScale)
	return fromClipperTree[S](tree)
}
