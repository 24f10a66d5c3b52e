package main

import (
	"fmt"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/planar"
	"github.com/tdewolff/planar/boolops"
	"github.com/tdewolff/planar/triangulate"
	"github.com/tdewolff/planar/wkt"
)

type Union struct {
	Tolerance float64 `short:"t" default:"0" desc:"Snap tolerance, 0 for exact"`
	A         string  `index:"0" desc:"First operand as WKT"`
	B         string  `index:"1" desc:"Second operand as WKT"`
}

type Intersect struct {
	Tolerance float64 `short:"t" default:"0" desc:"Snap tolerance, 0 for exact"`
	A         string  `index:"0" desc:"First operand as WKT"`
	B         string  `index:"1" desc:"Second operand as WKT"`
}

type Difference struct {
	Tolerance float64 `short:"t" default:"0" desc:"Snap tolerance, 0 for exact"`
	A         string  `index:"0" desc:"First operand as WKT"`
	B         string  `index:"1" desc:"Second operand as WKT"`
}

type Buffer struct {
	Distance float64 `short:"d" desc:"Offset distance, negative shrinks"`
	Input    string  `index:"0" desc:"Operand as WKT"`
}

type Triangulate struct {
	Input string `index:"0" desc:"Operand as WKT"`
}

type Area struct {
	Input string `index:"0" desc:"Operand as WKT"`
}

func main() {
	root := argp.NewCmd(&Union{}, "Planar polygon toolkit: boolean overlay, offsetting and triangulation of WKT geometries")
	root.AddCmd(&Union{}, "union", "Union two geometries")
	root.AddCmd(&Intersect{}, "intersect", "Intersect two geometries")
	root.AddCmd(&Difference{}, "difference", "Subtract the second geometry from the first")
	root.AddCmd(&Buffer{}, "buffer", "Offset a geometry's boundaries")
	root.AddCmd(&Triangulate{}, "triangulate", "Triangulate a geometry")
	root.AddCmd(&Area{}, "area", "Print the signed area of a geometry")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Union) Run() error {
	a, b, err := operands(cmd.A, cmd.B)
	if err != nil {
		return err
	}
	if 0 < cmd.Tolerance {
		return print(boolops.UnionApprox(a, b, cmd.Tolerance))
	}
	return print(boolops.Union(a, b))
}

func (cmd *Intersect) Run() error {
	a, b, err := operands(cmd.A, cmd.B)
	if err != nil {
		return err
	}
	if 0 < cmd.Tolerance {
		return print(boolops.IntersectionApprox(a, b, cmd.Tolerance))
	}
	return print(boolops.Intersection(a, b))
}

func (cmd *Difference) Run() error {
	a, b, err := operands(cmd.A, cmd.B)
	if err != nil {
		return err
	}
	if 0 < cmd.Tolerance {
		return print(boolops.DifferenceApprox(a, b, cmd.Tolerance))
	}
	return print(boolops.Difference(a, b))
}

func (cmd *Buffer) Run() error {
	mp, err := multiPolygon(cmd.Input)
	if err != nil {
		return err
	}
	return print(boolops.Buffer(mp, cmd.Distance))
}

func (cmd *Triangulate) Run() error {
	mp, err := multiPolygon(cmd.Input)
	if err != nil {
		return err
	}
	tris, err := triangulate.MultiPolygon(mp)
	if err != nil {
		return err
	}
	for _, t := range tris {
		s, err := wkt.Marshal[float64](t)
		if err != nil {
			return err
		}
		fmt.Println(s)
	}
	return nil
}

func (cmd *Area) Run() error {
	mp, err := multiPolygon(cmd.Input)
	if err != nil {
		return err
	}
	fmt.Println(planar.MultiPolygonArea(mp))
	return nil
}

func operands(a, b string) (planar.MultiPolygon2[float64], planar.MultiPolygon2[float64], error) {
	mpA, err := multiPolygon(a)
	if err != nil {
		return nil, nil, err
	}
	mpB, err := multiPolygon(b)
	if err != nil {
		return nil, nil, err
	}
	return mpA, mpB, nil
}

func multiPolygon(s string) (planar.MultiPolygon2[float64], error) {
	if s == "" {
		return nil, argp.ShowUsage
	}
	g, err := wkt.Unmarshal[float64](s)
	if err != nil {
		return nil, err
	}
	switch g := g.(type) {
	case planar.Polygon2[float64]:
		return g.ToMulti(), nil
	case planar.MultiPolygon2[float64]:
		return g, nil
	default:
		return nil, fmt.Errorf("expected POLYGON or MULTIPOLYGON, got %T", g)
	}
}

func print(mp planar.MultiPolygon2[float64]) error {
	s, err := wkt.Marshal[float64](mp)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}
