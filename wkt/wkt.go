// Package wkt reads and writes planar geometries as well-known text.
//
// WKT has no notion of bare rings or triangles, so those marshal as POLYGON
// and a MultiRing as MULTIPOLYGON; unmarshalling consequently returns the
// polygon forms. Coordinates round-trip through float64.
package wkt

import (
	"fmt"

	"github.com/paulmach/orb"
	orbwkt "github.com/paulmach/orb/encoding/wkt"
	"github.com/tdewolff/planar"
)

// Marshal writes a planar geometry as well-known text.
func Marshal[S planar.Scalar](g planar.Geometry2[S]) (string, error) {
	var geom orb.Geometry
	switch g := g.(type) {
	case planar.Line2[S]:
		geom = orb.LineString{g.Start.ToOrb(), g.End.ToOrb()}
	case planar.LineString2[S]:
		geom = planar.OrbLineString(g)
	case planar.MultiLineString2[S]:
		mls := make(orb.MultiLineString, len(g))
		for i, l := range g {
			mls[i] = planar.OrbLineString(l)
		}
		geom = mls
	case planar.Triangle2[S]:
		geom = orb.Polygon{planar.OrbRing(g.ToRing())}
	case planar.Ring2[S]:
		geom = orb.Polygon{planar.OrbRing(g)}
	case planar.MultiRing2[S]:
		mp := make(orb.MultiPolygon, len(g))
		for i, r := range g {
			mp[i] = orb.Polygon{planar.OrbRing(r)}
		}
		geom = mp
	case planar.Polygon2[S]:
		geom = planar.OrbPolygon(g)
	case planar.MultiPolygon2[S]:
		geom = planar.OrbMultiPolygon(g)
	default:
		return "", fmt.Errorf("wkt: unsupported geometry %T", g)
	}
	return orbwkt.MarshalString(geom), nil
}

// Unmarshal parses well-known text into a planar geometry. LINESTRING,
// MULTILINESTRING, POLYGON and MULTIPOLYGON are supported.
func Unmarshal[S planar.Scalar](s string) (planar.Geometry2[S], error) {
	geom, err := orbwkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	switch geom := geom.(type) {
	case orb.LineString:
		return planar.LineStringFromOrb[S](geom), nil
	case orb.Polygon:
		return planar.PolygonFromOrb[S](geom), nil
	case orb.MultiPolygon:
		return planar.MultiPolygonFromOrb[S](geom), nil
	case orb.MultiLineString:
		mls := make(planar.MultiLineString2[S], len(geom))
		for i, l := range geom {
			mls[i] = planar.LineStringFromOrb[S](l)
		}
		return mls, nil
	default:
		return nil, fmt.Errorf("wkt: unsupported geometry %T", geom)
	}
}
