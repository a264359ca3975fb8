// Package mrvg builds and queries a mutable reduced visibility graph: a
// sparse graph over the convex vertices of a set of polygon obstacles,
// connecting only the pairs of vertices with an unobstructed line of sight
// between them, plus the shortest-path search over that graph.
//
// Subpackages:
//
//	geom/        — 2D vector primitives, segment intersection
//	polygon/     — the obstacle kernel: convexity, point containment, raycasting
//	node/        — a visibility-graph vertex: position, touches, connections
//	graph/       — the incremental graph itself: AddObstacle, FindPath
//	astar/       — the A* search FindPath delegates to
//	quadtree/    — optional AABB-keyed spatial accelerator
//	obstaclegen/ — deterministic obstacle-field generators (grid, random, maze)
//	rasterfield/ — grid/bitmap-to-obstacle import
//
// A typical session inserts a handful of polygon obstacles into a Graph,
// then asks FindPath for a route between two points:
//
//	g := graph.New()
//	g.AddObstacle(polygon.NewRectangle(1, 1, 2, 2))
//	path, ok := g.FindPath(geom.Vec{X: 0, Y: 0}, geom.Vec{X: 3, Y: 3})
package mrvg
