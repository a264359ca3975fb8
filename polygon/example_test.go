package polygon_test

import (
	"fmt"

	"github.com/katalvlaran/mrvg/geom"
	"github.com/katalvlaran/mrvg/polygon"
)

func ExampleNewRectangle() {
	r := polygon.NewRectangle(0, 0, 2, 2)
	fmt.Println(r.IncludesPoint(geom.Vec{X: 1, Y: 1}))
	fmt.Println(r.IncludesPoint(geom.Vec{X: 5, Y: 5}))
	// Output:
	// true
	// false
}

func ExamplePolygon_Raycast() {
	obstacle := polygon.NewRectangle(1, -1, 2, 1)
	res := obstacle.Raycast(geom.Vec{X: 0, Y: 0}, geom.Vec{X: 3, Y: 0}, nil)
	fmt.Println(res.Blocked())
	// Output:
	// true
}
