// Package obstacles maintains the occupancy map used for wire routing: a set of
// axis-aligned grid rectangles kept in a canonical minimal form, with support for
// holes.
package obstacles

// Region is an axis-aligned rectangle of grid cells addressed by its top-left corner.
// DX and DY are the width and height in cells; a value below 1 means the default of a
// single cell, matching the {x, y, dx?, dy?} interchange shape layout code hands in.
type Region struct {
	X  int `json:"x"`
	Y  int `json:"y"`
	DX int `json:"dx,omitempty"`
	DY int `json:"dy,omitempty"`
}

// Cell returns a single-cell Region at (x, y).
func Cell(x, y int) Region {
	return Region{X: x, Y: y}
}

// Rect returns a Region covering dx by dy cells from (x, y). Sizes below 1 are an
// unenforced caller precondition; behavior under violation is unspecified.
func Rect(x, y, dx, dy int) Region {
	return Region{X: x, Y: y, DX: dx, DY: dy}
}

// Width returns the horizontal extent in cells.
func (r Region) Width() int {
	if r.DX < 1 {
		return 1
	}
	return r.DX
}

// Height returns the vertical extent in cells.
func (r Region) Height() int {
	if r.DY < 1 {
		return 1
	}
	return r.DY
}

// Contains checks if the cell (x, y) is inside the Region.
func (r Region) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.Width() &&
		y >= r.Y && y < r.Y+r.Height()
}

// containsCell checks if any Region in the list covers the cell (x, y). Correct for
// any list, merged or not.
func containsCell(regions []Region, x, y int) bool {
	for _, r := range regions {
		if r.Contains(x, y) {
			return true
		}
	}
	return false
}
