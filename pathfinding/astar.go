package pathfinding

import (
	"container/heap"
	"errors"

	"gridwire/core"
)

// Expected routing outcomes, distinguishable with errors.Is.
var (
	// ErrBlockedEndpoint reports that the start or end cell is itself occupied; no
	// search is performed.
	ErrBlockedEndpoint = errors.New("endpoint is blocked")
	// ErrNoPath reports that the reachable grid was exhausted without finding the
	// goal.
	ErrNoPath = errors.New("no path between endpoints")
	// ErrSearchLimit reports that the search hit its node budget before either
	// finding a path or proving none exists.
	ErrSearchLimit = errors.New("search aborted at node limit")
)

const defaultMaxNodes = 50000

// Pathfinder runs A* searches against one bound occupancy source. The source is only
// read, never mutated, and no state survives between FindPath calls, so a single
// Pathfinder may serve concurrent searches as long as the source itself is not being
// mutated.
type Pathfinder struct {
	occupancy Occupier
	costs     PathCost
	maxNodes  int
}

// NewPathfinder creates a Pathfinder over the given occupancy source with the given
// cost model. A nil occupancy source means an empty grid.
func NewPathfinder(occupancy Occupier, costs PathCost) *Pathfinder {
	return &Pathfinder{
		occupancy: occupancy,
		costs:     costs,
		maxNodes:  defaultMaxNodes,
	}
}

// SetMaxNodes bounds how many states a single FindPath call may expand before it
// gives up with ErrSearchLimit.
func (p *Pathfinder) SetMaxNodes(max int) {
	p.maxNodes = max
}

// searchState identifies a node: the cell plus the direction it was entered from.
// Step cost depends on the entry direction once turns are penalized, so two arrivals
// at the same cell from different directions are distinct states; collapsing them can
// close a cell via one approach and hide a cheaper continuation via another.
type searchState struct {
	point core.Point
	dir   Direction
}

// searchNode is one arena entry of an in-flight search. Parents are arena indices
// rather than pointers, so reconstruction is an index walk with no chance of cycles.
type searchNode struct {
	state   searchState
	g, h, f int
	parent  int // arena index, -1 at the root
	seq     int // insertion order, tie-break for equal f
	heapPos int
	closed  bool
}

// search owns the per-call state: the node arena, a state index into it, and the open
// set as a heap of arena indices.
type search struct {
	arena   []searchNode
	byState map[searchState]int
	open    []int
}

func (s *search) Len() int { return len(s.open) }

func (s *search) Less(i, j int) bool {
	a, b := &s.arena[s.open[i]], &s.arena[s.open[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	// Earliest-inserted wins among equal minima. Observable ordering: keep it stable
	// even though the open set is a heap.
	return a.seq < b.seq
}

func (s *search) Swap(i, j int) {
	s.open[i], s.open[j] = s.open[j], s.open[i]
	s.arena[s.open[i]].heapPos = i
	s.arena[s.open[j]].heapPos = j
}

func (s *search) Push(x interface{}) {
	idx := x.(int)
	s.arena[idx].heapPos = len(s.open)
	s.open = append(s.open, idx)
}

func (s *search) Pop() interface{} {
	idx := s.open[len(s.open)-1]
	s.open = s.open[:len(s.open)-1]
	s.arena[idx].heapPos = -1
	return idx
}

func (s *search) alloc(n searchNode) int {
	n.seq = len(s.arena)
	s.arena = append(s.arena, n)
	idx := len(s.arena) - 1
	s.byState[n.state] = idx
	return idx
}

// FindPath routes from start to end and returns the corner-simplified waypoint path:
// endpoints plus direction changes only. Expected no-route outcomes come back as
// ErrBlockedEndpoint or ErrNoPath; ErrSearchLimit means the node budget ran out
// first.
func (p *Pathfinder) FindPath(start, end core.Point) (core.Path, error) {
	if p.isOccupied(start) || p.isOccupied(end) {
		return core.Path{}, ErrBlockedEndpoint
	}
	if start == end {
		return core.Path{Points: []core.Point{start}}, nil
	}

	s := &search{byState: make(map[searchState]int)}
	root := s.alloc(searchNode{
		state:  searchState{point: start, dir: DirNone},
		h:      p.heuristic(start, end),
		parent: -1,
	})
	s.arena[root].f = s.arena[root].h
	heap.Init(s)
	heap.Push(s, root)

	explored := 0
	for s.Len() > 0 {
		explored++
		if explored > p.maxNodes {
			return core.Path{}, ErrSearchLimit
		}

		cur := heap.Pop(s).(int)
		if s.arena[cur].state.point == end {
			return p.reconstruct(s, cur), nil
		}
		s.arena[cur].closed = true

		for _, neighbor := range Neighbors4(s.arena[cur].state.point) {
			if p.isOccupied(neighbor) {
				continue
			}

			dir := GetDirection(s.arena[cur].state.point, neighbor)
			tentativeG := s.arena[cur].g + p.stepCost(s.arena[cur].state.dir, dir)
			state := searchState{point: neighbor, dir: dir}

			idx, exists := s.byState[state]
			if exists {
				if s.arena[idx].closed || tentativeG >= s.arena[idx].g {
					continue
				}
				// Better route to an open node: relax and reparent.
				s.arena[idx].g = tentativeG
				s.arena[idx].f = tentativeG + s.arena[idx].h
				s.arena[idx].parent = cur
				heap.Fix(s, s.arena[idx].heapPos)
				continue
			}

			h := p.heuristic(neighbor, end)
			idx = s.alloc(searchNode{
				state:  state,
				g:      tentativeG,
				h:      h,
				f:      tentativeG + h,
				parent: cur,
			})
			heap.Push(s, idx)
		}
	}

	return core.Path{}, ErrNoPath
}

func (p *Pathfinder) isOccupied(pt core.Point) bool {
	return p.occupancy != nil && p.occupancy.IsOccupied(pt.X, pt.Y)
}

// heuristic is the Manhattan lower bound on the remaining cost. It ignores turn
// penalties entirely, which can only add to the true cost, so it stays admissible for
// any non-negative TurnCost.
func (p *Pathfinder) heuristic(from, to core.Point) int {
	return ManhattanDistance(from, to) * p.costs.StraightCost
}

// stepCost charges one step, adding the turn penalty when the direction changes. The
// first step from the root never counts as a turn.
func (p *Pathfinder) stepCost(from, to Direction) int {
	cost := p.costs.StraightCost
	if from != DirNone && from != to {
		cost += p.costs.TurnCost
	}
	return cost
}

// reconstruct walks parent indices from the goal back to the root, reverses, and
// corner-simplifies.
func (p *Pathfinder) reconstruct(s *search, goal int) core.Path {
	count := 0
	for idx := goal; idx != -1; idx = s.arena[idx].parent {
		count++
	}
	points := make([]core.Point, count)
	for idx := goal; idx != -1; idx = s.arena[idx].parent {
		count--
		points[count] = s.arena[idx].state.point
	}
	return SimplifyPath(core.Path{Points: points, Cost: s.arena[goal].g})
}
