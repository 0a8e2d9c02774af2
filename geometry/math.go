package geometry

import "gridwire/core"

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Min returns the minimum of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the maximum of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// ManhattanDistance calculates the Manhattan distance between two points.
func ManhattanDistance(p1, p2 core.Point) int {
	return Abs(p2.X-p1.X) + Abs(p2.Y-p1.Y)
}
