// Package pathfinding routes orthogonal connectors across a grid, avoiding whatever
// cells a bound occupancy source declares blocked.
package pathfinding

import (
	"fmt"

	"gridwire/core"
	"gridwire/geometry"
)

// PathCost defines the integer cost model for a search.
type PathCost struct {
	StraightCost int // Base cost of one step
	TurnCost     int // Penalty added when a step changes direction
}

// DefaultPathCost charges turns at twice the base step cost, preferring straighter
// routes without forbidding detours. Keeping the penalty as a ratio of the step cost
// means the policy survives a change of grid unit.
var DefaultPathCost = PathCost{
	StraightCost: 1,
	TurnCost:     2,
}

// Direction represents a movement direction.
type Direction int

const (
	DirNone Direction = iota
	DirNorth
	DirEast
	DirSouth
	DirWest
)

// String returns the string representation of a Direction.
func (d Direction) String() string {
	switch d {
	case DirNorth:
		return "North"
	case DirEast:
		return "East"
	case DirSouth:
		return "South"
	case DirWest:
		return "West"
	default:
		return "None"
	}
}

// GetDirection returns the direction of the unit step from p1 to p2, or DirNone if
// the points are equal or not axis-aligned.
func GetDirection(p1, p2 core.Point) Direction {
	if p1.X == p2.X {
		if p1.Y < p2.Y {
			return DirSouth
		} else if p1.Y > p2.Y {
			return DirNorth
		}
	} else if p1.Y == p2.Y {
		if p1.X < p2.X {
			return DirEast
		} else if p1.X > p2.X {
			return DirWest
		}
	}
	return DirNone
}

// Neighbors4 returns the 4-connected neighbors of a point in North, East, South, West
// order.
func Neighbors4(p core.Point) [4]core.Point {
	return [4]core.Point{
		{X: p.X, Y: p.Y - 1},
		{X: p.X + 1, Y: p.Y},
		{X: p.X, Y: p.Y + 1},
		{X: p.X - 1, Y: p.Y},
	}
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(p1, p2 core.Point) int {
	return geometry.ManhattanDistance(p1, p2)
}

// IsAligned checks if three points are aligned horizontally or vertically.
func IsAligned(p1, p2, p3 core.Point) bool {
	if p1.Y == p2.Y && p2.Y == p3.Y {
		return true
	}
	if p1.X == p2.X && p2.X == p3.X {
		return true
	}
	return false
}

// SimplifyPath reduces a cell-by-cell path to its corners: the first point, the last
// point, and every interior point where the incoming direction differs from the
// outgoing one. Order is preserved.
func SimplifyPath(path core.Path) core.Path {
	if len(path.Points) <= 2 {
		return path
	}

	simplified := []core.Point{path.Points[0]}
	for i := 1; i < len(path.Points)-1; i++ {
		if !IsAligned(path.Points[i-1], path.Points[i], path.Points[i+1]) {
			simplified = append(simplified, path.Points[i])
		}
	}
	simplified = append(simplified, path.Points[len(path.Points)-1])

	return core.Path{Points: simplified, Cost: path.Cost}
}

// PathToString converts a path to a string representation for debugging.
func PathToString(path core.Path) string {
	if path.IsEmpty() {
		return "empty path"
	}

	result := fmt.Sprintf("Path (cost=%d): ", path.Cost)
	for i, p := range path.Points {
		if i > 0 {
			result += " -> "
		}
		result += fmt.Sprintf("(%d,%d)", p.X, p.Y)
	}
	return result
}
