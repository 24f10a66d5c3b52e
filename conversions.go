package planar

import (
	"github.com/paulmach/orb"
	"golang.org/x/image/math/f32"
)

// ToOrb returns the point as an orb.Point.
func (p Vec2[S]) ToOrb() orb.Point {
	return orb.Point{float64(p.X), float64(p.Y)}
}

// FromOrb converts an orb.Point.
func FromOrb[S Scalar](p orb.Point) Vec2[S] {
	return Vec2[S]{S(p[0]), S(p[1])}
}

// ToOrb returns the ring as a closed orb.Ring.
func (r Ring[P, S, W]) ToOrb(xy func(P) orb.Point) orb.Ring {
	points := r.PointsClosed()
	ring := make(orb.Ring, len(points))
	for i, p := range points {
		ring[i] = xy(p)
	}
	return ring
}

// OrbRing returns the ring as a closed orb.Ring.
func OrbRing[S Scalar](r Ring2[S]) orb.Ring {
	return r.ToOrb(Vec2[S].ToOrb)
}

// RingFromOrb converts an orb.Ring, dropping its closing point.
func RingFromOrb[S Scalar](ring orb.Ring) Ring2[S] {
	points := make([]Vec2[S], len(ring))
	for i, p := range ring {
		points[i] = FromOrb[S](p)
	}
	return NewRing2(points)
}

// OrbLineString returns the line string as an orb.LineString.
func OrbLineString[S Scalar](l LineString2[S]) orb.LineString {
	points := l.Points()
	ls := make(orb.LineString, len(points))
	for i, p := range points {
		ls[i] = p.ToOrb()
	}
	return ls
}

// LineStringFromOrb converts an orb.LineString.
func LineStringFromOrb[S Scalar](ls orb.LineString) LineString2[S] {
	points := make([]Vec2[S], len(ls))
	for i, p := range ls {
		points[i] = FromOrb[S](p)
	}
	return NewLineString2(points)
}

// OrbPolygon returns the polygon as an orb.Polygon with its exterior first.
func OrbPolygon[S Scalar](p Polygon2[S]) orb.Polygon {
	polygon := make(orb.Polygon, 0, 1+len(p.Interior))
	polygon = append(polygon, OrbRing(p.Exterior))
	for _, interior := range p.Interior {
		polygon = append(polygon, OrbRing(interior))
	}
	return polygon
}

// PolygonFromOrb converts an orb.Polygon. An empty orb polygon converts to
// the empty polygon.
func PolygonFromOrb[S Scalar](polygon orb.Polygon) Polygon2[S] {
	if len(polygon) == 0 {
		return Polygon2[S]{}
	}
	p := Polygon2[S]{Exterior: RingFromOrb[S](polygon[0])}
	for _, ring := range polygon[1:] {
		p.Interior = append(p.Interior, RingFromOrb[S](ring))
	}
	return p
}

// OrbMultiPolygon returns the multi polygon as an orb.MultiPolygon.
func OrbMultiPolygon[S Scalar](mp MultiPolygon2[S]) orb.MultiPolygon {
	multi := make(orb.MultiPolygon, len(mp))
	for i, p := range mp {
		multi[i] = OrbPolygon(p)
	}
	return multi
}

// MultiPolygonFromOrb converts an orb.MultiPolygon.
func MultiPolygonFromOrb[S Scalar](multi orb.MultiPolygon) MultiPolygon2[S] {
	mp := make(MultiPolygon2[S], len(multi))
	for i, polygon := range multi {
		mp[i] = PolygonFromOrb[S](polygon)
	}
	return mp
}

// ToF32 returns the point as an f32.Vec2.
func (p Vec2[S]) ToF32() f32.Vec2 {
	return f32.Vec2{float32(p.X), float32(p.Y)}
}

// ToF32 returns the point as an f32.Vec3.
func (p Vec3[S]) ToF32() f32.Vec3 {
	return f32.Vec3{float32(p.X), float32(p.Y), float32(p.Z)}
}

// FromF32Vec2 converts an f32.Vec2.
func FromF32Vec2[S Scalar](v f32.Vec2) Vec2[S] {
	return Vec2[S]{S(v[0]), S(v[1])}
}

// FromF32Vec3 converts an f32.Vec3.
func FromF32Vec3[S Scalar](v f32.Vec3) Vec3[S] {
	return Vec3[S]{S(v[0]), S(v[1]), S(v[2])}
}
