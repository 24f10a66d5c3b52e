package planar

// Geometry is the tagged union over all primitives of one (P, S, W)
// instantiation. Consumers recover the concrete primitive with a type
// switch over Line, LineString, MultiLineString, Triangle, Ring, MultiRing,
// Polygon and MultiPolygon.
type Geometry[P Point[P, S, W], S Scalar, W Normal[W, S]] interface {
	geometry()
}

// Geometry2 and Geometry3 are the planar and spatial instantiations of
// Geometry.
type (
	Geometry2[S Scalar] = Geometry[Vec2[S], S, Bivec[S]]
	Geometry3[S Scalar] = Geometry[Vec3[S], S, Vec3[S]]
)

func (Line[P, S, W]) geometry()            {}
func (LineString[P, S, W]) geometry()      {}
func (MultiLineString[P, S, W]) geometry() {}
func (Triangle[P, S, W]) geometry()        {}
func (Ring[P, S, W]) geometry()            {}
func (MultiRing[P, S, W]) geometry()       {}
func (Polygon[P, S, W]) geometry()         {}
func (MultiPolygon[P, S, W]) geometry()    {}
