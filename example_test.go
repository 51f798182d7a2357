package ptgeom_test

import (
	"fmt"
	"math"

	"honnef.co/go/ptgeom"
)

func ExampleIntersectLine2D() {
	a := ptgeom.Line{P0: ptgeom.P(0, 0), P1: ptgeom.P(4, 4)}
	b := ptgeom.Line{P0: ptgeom.P(0, 4), P1: ptgeom.P(4, 0)}
	if pt, ok := ptgeom.IntersectLine2D(a, b); ok {
		fmt.Println(pt)
	}

	c := ptgeom.Line{P0: ptgeom.P(0, 4), P1: ptgeom.P(1, 3)}
	_, ok := ptgeom.IntersectLine2D(a, c)
	fmt.Println(ok)
	// Output:
	// (2, 2)
	// false
}

func ExampleRotate2D() {
	// Rotate a square a quarter turn about its center. The points are
	// modified in place.
	square := ptgeom.RectCorners(ptgeom.Group{ptgeom.P(0, 0), ptgeom.P(2, 2)})
	ptgeom.Rotate2D(square, math.Pi/2, ptgeom.P(1, 1), ptgeom.AxisXY)
	for _, p := range square {
		// Adding 0 turns -0 into 0.
		fmt.Println(math.Round(p.X())+0, math.Round(p.Y())+0)
	}
	// Output:
	// 2 0
	// 2 2
	// 0 2
	// 0 0
}

func ExampleSubpoints() {
	l := ptgeom.Line{P0: ptgeom.P(0, 0), P1: ptgeom.P(10, 0)}
	fmt.Println(ptgeom.Subpoints(l, 3))
	// Output:
	// [(2.5, 0), (5, 0), (7.5, 0)]
}

func ExampleMapToRange() {
	v, err := ptgeom.MapToRange(0.25, 0, 1, -100, 100)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(v)

	_, err = ptgeom.MapToRange(0.25, 1, 1, -100, 100)
	fmt.Println(err)
	// Output:
	// -50
	// mapping from [1, 1]: degenerate numeric domain
}
