package graph_test

import (
	"testing"

	"github.com/katalvlaran/mrvg/geom"
	"github.com/katalvlaran/mrvg/graph"
	"github.com/katalvlaran/mrvg/obstaclegen"
	"github.com/katalvlaran/mrvg/polygon"
)

// BenchmarkAddObstacle measures the four-phase maintenance algorithm's cost
// as the obstacle count grows, using a grid fixture so each insertion has a
// realistic, bounded number of nearby nodes to re-check.
func BenchmarkAddObstacle(b *testing.B) {
	cells, err := obstaclegen.Grid(10, 10, 1, 1)
	if err != nil {
		b.Fatalf("setup Grid failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := graph.New()
		for _, c := range cells {
			_ = g.AddObstacle(c)
		}
	}
}

// BenchmarkAddObstacle_WithQuadtree is the accelerated counterpart, isolating
// the quadtree's effect on candidate-gathering cost at this fixture size.
func BenchmarkAddObstacle_WithQuadtree(b *testing.B) {
	cells, err := obstaclegen.Grid(10, 10, 1, 1)
	if err != nil {
		b.Fatalf("setup Grid failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := graph.New(graph.WithQuadtree())
		for _, c := range cells {
			_ = g.AddObstacle(c)
		}
	}
}

// BenchmarkFindPath measures A* search cost over a fixed grid obstacle field,
// excluding setup from the timed region.
func BenchmarkFindPath(b *testing.B) {
	cells, err := obstaclegen.Grid(10, 10, 1, 1)
	if err != nil {
		b.Fatalf("setup Grid failed: %v", err)
	}
	g, err := graph.NewWithObstacles(cells)
	if err != nil {
		b.Fatalf("setup NewWithObstacles failed: %v", err)
	}

	s := geom.Vec{X: -1, Y: -1}
	e := geom.Vec{X: 25, Y: 25}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = g.FindPath(s, e)
	}
}

// BenchmarkRaycast measures a single segment query against a dense obstacle
// field, with and without the quadtree accelerator.
func BenchmarkRaycast(b *testing.B) {
	cells, err := obstaclegen.Grid(10, 10, 1, 1)
	if err != nil {
		b.Fatalf("setup Grid failed: %v", err)
	}

	for _, tc := range []struct {
		name string
		opts []graph.Option
	}{
		{"NoAccelerator", nil},
		{"Quadtree", []graph.Option{graph.WithQuadtree()}},
	} {
		b.Run(tc.name, func(b *testing.B) {
			g := graph.New(tc.opts...)
			for _, c := range cells {
				_ = g.AddObstacle(c)
			}

			var sink *polygon.RaycastResult
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				sink = g.Raycast(-1, -1, 25, 25, nil)
			}
			_ = sink
		})
	}
}
