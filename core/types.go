// Package core contains the fundamental types shared by the gridwire routing packages.
package core

// Point represents a 2D coordinate on the routing grid. Coordinates are integer cell
// addresses, distinct from any rendered physical unit.
type Point struct {
	X, Y int
}

// Path represents a route through the grid.
type Path struct {
	Points []Point
	Cost   int // Total cost as computed by the pathfinding cost model
}

// Length returns the number of points in the path.
func (p Path) Length() int {
	return len(p.Points)
}

// IsEmpty returns true if the path has no points.
func (p Path) IsEmpty() bool {
	return len(p.Points) == 0
}

// Start returns the first point of the path. Calling Start on an empty path is a
// caller error.
func (p Path) Start() Point {
	return p.Points[0]
}

// End returns the last point of the path.
func (p Path) End() Point {
	return p.Points[len(p.Points)-1]
}

// Bounds represents a rectangular area with an exclusive Max corner.
type Bounds struct {
	Min, Max Point
}

// Width returns the width of the bounds.
func (b Bounds) Width() int {
	return b.Max.X - b.Min.X
}

// Height returns the height of the bounds.
func (b Bounds) Height() int {
	return b.Max.Y - b.Min.Y
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X < b.Max.X &&
		p.Y >= b.Min.Y && p.Y < b.Max.Y
}
