package pathfinding

import "gridwire/core"

// Occupier answers whether travel through a grid cell is blocked. The obstacles
// package's Area satisfies it directly; any equivalent source works.
type Occupier interface {
	IsOccupied(x, y int) bool
}

// OccupierFunc adapts a plain function to the Occupier interface.
type OccupierFunc func(x, y int) bool

// IsOccupied calls f.
func (f OccupierFunc) IsOccupied(x, y int) bool {
	return f(x, y)
}

// CellSet is a rasterized occupancy source for callers that track blocked cells
// individually rather than as rectangles. The zero value is not usable; use
// NewCellSet.
type CellSet map[core.Point]struct{}

// NewCellSet returns a CellSet blocking the given cells.
func NewCellSet(points ...core.Point) CellSet {
	s := make(CellSet, len(points))
	for _, p := range points {
		s.Add(p)
	}
	return s
}

// Add blocks a cell.
func (s CellSet) Add(p core.Point) {
	s[p] = struct{}{}
}

// Remove unblocks a cell.
func (s CellSet) Remove(p core.Point) {
	delete(s, p)
}

// IsOccupied reports whether the cell is blocked.
func (s CellSet) IsOccupied(x, y int) bool {
	_, ok := s[core.Point{X: x, Y: y}]
	return ok
}

// Outside returns an Occupier that blocks every cell outside bounds, used to clamp a
// search to a finite window.
func Outside(b core.Bounds) Occupier {
	return OccupierFunc(func(x, y int) bool {
		return !b.Contains(core.Point{X: x, Y: y})
	})
}

// AnyOf combines occupancy sources with OR logic: a cell is blocked if any source
// blocks it.
func AnyOf(sources ...Occupier) Occupier {
	return OccupierFunc(func(x, y int) bool {
		for _, src := range sources {
			if src.IsOccupied(x, y) {
				return true
			}
		}
		return false
	})
}
