// Package router drives wire routing end to end: each wire is routed against a shared
// obstacle Area, then written back into it so later wires treat earlier ones as solid.
package router

import (
	"fmt"

	"gridwire/core"
	"gridwire/geometry"
	"gridwire/obstacles"
	"gridwire/pathfinding"
)

// Wire names a single connector to route between two grid points.
type Wire struct {
	Start, End core.Point
}

// Router routes wires sequentially against one Area. Not safe for concurrent use;
// each Route call mutates the shared Area.
type Router struct {
	area  *obstacles.Area
	costs pathfinding.PathCost
	clamp pathfinding.Occupier
}

// New creates a Router over the given Area with the given cost model.
func New(area *obstacles.Area, costs pathfinding.PathCost) *Router {
	return &Router{area: area, costs: costs}
}

// ClampTo restricts all subsequent routing to the given window. Without a clamp the
// search range is unbounded and only the node budget limits a hopeless search.
func (r *Router) ClampTo(b core.Bounds) {
	r.clamp = pathfinding.Outside(b)
}

// Route routes one wire, merges its footprint into the Area, and returns the
// corner-simplified path. The Area is left untouched when routing fails.
func (r *Router) Route(w Wire) (core.Path, error) {
	occupancy := pathfinding.Occupier(r.area)
	if r.clamp != nil {
		occupancy = pathfinding.AnyOf(r.area, r.clamp)
	}

	finder := pathfinding.NewPathfinder(occupancy, r.costs)
	path, err := finder.FindPath(w.Start, w.End)
	if err != nil {
		return core.Path{}, fmt.Errorf("route (%d,%d)->(%d,%d): %w",
			w.Start.X, w.Start.Y, w.End.X, w.End.Y, err)
	}

	r.area.Add(PathRegions(path)...)
	return path, nil
}

// RouteAll routes wires in order. Earlier wires become obstacles for later ones, so
// order matters. On failure the already-routed wires stay merged into the Area and the
// error names the failing wire.
func (r *Router) RouteAll(wires []Wire) ([]core.Path, error) {
	paths := make([]core.Path, 0, len(wires))
	for i, w := range wires {
		path, err := r.Route(w)
		if err != nil {
			return paths, fmt.Errorf("wire %d: %w", i, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// PathRegions converts a path into Regions covering every cell the wire passes
// through, one Region per orthogonal segment. Segment endpoints are inclusive, so
// consecutive segments share their corner cell; the Area merge deduplicates that.
func PathRegions(path core.Path) []obstacles.Region {
	pts := path.Points
	if len(pts) == 0 {
		return nil
	}
	if len(pts) == 1 {
		return []obstacles.Region{obstacles.Cell(pts[0].X, pts[0].Y)}
	}

	regions := make([]obstacles.Region, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		x := geometry.Min(a.X, b.X)
		y := geometry.Min(a.Y, b.Y)
		dx := geometry.Abs(b.X-a.X) + 1
		dy := geometry.Abs(b.Y-a.Y) + 1
		regions = append(regions, obstacles.Rect(x, y, dx, dy))
	}
	return regions
}
