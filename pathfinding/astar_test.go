package pathfinding

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"gridwire/core"
)

// parseObstacleMap converts an ASCII grid into a rasterized occupancy set.
// 'X' marks a blocked cell; anything else is free. Row 0 is the first line.
func parseObstacleMap(s string) CellSet {
	cells := NewCellSet()
	lines := strings.Split(strings.TrimLeft(s, "\n"), "\n")
	for y, line := range lines {
		for x, ch := range line {
			if ch == 'X' {
				cells.Add(core.Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// expandPath rasterizes a corner-simplified path back into its cell-by-cell route.
func expandPath(t *testing.T, path core.Path) []core.Point {
	t.Helper()
	if path.IsEmpty() {
		return nil
	}
	cells := []core.Point{path.Points[0]}
	for i := 1; i < len(path.Points); i++ {
		a, b := path.Points[i-1], path.Points[i]
		dir := GetDirection(a, b)
		if a != b && dir == DirNone {
			t.Fatalf("segment %v -> %v is not orthogonal", a, b)
		}
		for p := a; p != b; {
			switch dir {
			case DirNorth:
				p.Y--
			case DirSouth:
				p.Y++
			case DirEast:
				p.X++
			case DirWest:
				p.X--
			}
			cells = append(cells, p)
		}
	}
	return cells
}

func TestFindPathTrivialStraight(t *testing.T) {
	finder := NewPathfinder(nil, DefaultPathCost)

	path, err := finder.FindPath(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 0})
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}

	want := []core.Point{{X: 0, Y: 0}, {X: 5, Y: 0}}
	if len(path.Points) != 2 || path.Points[0] != want[0] || path.Points[1] != want[1] {
		t.Errorf("got %v, want %v", path.Points, want)
	}
	if path.Cost != 5*DefaultPathCost.StraightCost {
		t.Errorf("cost = %d, want %d", path.Cost, 5*DefaultPathCost.StraightCost)
	}
}

func TestFindPathSamePoint(t *testing.T) {
	finder := NewPathfinder(nil, DefaultPathCost)

	path, err := finder.FindPath(core.Point{X: 3, Y: 3}, core.Point{X: 3, Y: 3})
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}
	if len(path.Points) != 1 || path.Cost != 0 {
		t.Errorf("got %v cost %d, want single zero-cost point", path.Points, path.Cost)
	}
}

func TestFindPathBlockedEndpoints(t *testing.T) {
	obstacles := NewCellSet(core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 5})
	finder := NewPathfinder(obstacles, DefaultPathCost)

	tests := []struct {
		name       string
		start, end core.Point
	}{
		{"start blocked", core.Point{X: 0, Y: 0}, core.Point{X: 3, Y: 3}},
		{"end blocked", core.Point{X: 3, Y: 3}, core.Point{X: 5, Y: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := finder.FindPath(tt.start, tt.end)
			if !errors.Is(err, ErrBlockedEndpoint) {
				t.Errorf("got %v, want ErrBlockedEndpoint", err)
			}
		})
	}
}

func TestFindPathObstacleCourses(t *testing.T) {
	tests := []struct {
		name      string
		start     core.Point
		end       core.Point
		obstacles string
		minCells  int // minimum cells in the expanded route
	}{
		{
			name:  "around single block",
			start: core.Point{X: 0, Y: 2},
			end:   core.Point{X: 4, Y: 2},
			obstacles: `
.....
.....
.XX..
.....
.....`,
			minCells: 7,
		},
		{
			name:  "through maze",
			start: core.Point{X: 0, Y: 0},
			end:   core.Point{X: 4, Y: 4},
			obstacles: `
.XXX.
...X.
.X...
.XXX.
.....`,
			minCells: 9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			obstacles := parseObstacleMap(tt.obstacles)
			finder := NewPathfinder(obstacles, DefaultPathCost)

			path, err := finder.FindPath(tt.start, tt.end)
			if err != nil {
				t.Fatalf("FindPath failed: %v", err)
			}

			if path.Points[0] != tt.start {
				t.Errorf("path starts at %v, want %v", path.Points[0], tt.start)
			}
			if path.End() != tt.end {
				t.Errorf("path ends at %v, want %v", path.End(), tt.end)
			}

			cells := expandPath(t, path)
			if len(cells) < tt.minCells {
				t.Errorf("route has %d cells, expected at least %d", len(cells), tt.minCells)
			}
			for _, p := range cells {
				if obstacles.IsOccupied(p.X, p.Y) {
					t.Errorf("route passes through obstacle at %v", p)
				}
			}
		})
	}
}

func TestFindPathNoPath(t *testing.T) {
	// Start sealed inside a box.
	obstacles := parseObstacleMap(`
XXX
X.X
XXX`)
	finder := NewPathfinder(obstacles, DefaultPathCost)

	_, err := finder.FindPath(core.Point{X: 1, Y: 1}, core.Point{X: 5, Y: 1})
	if !errors.Is(err, ErrNoPath) {
		t.Errorf("got %v, want ErrNoPath", err)
	}
}

func TestFindPathSearchLimit(t *testing.T) {
	finder := NewPathfinder(nil, DefaultPathCost)
	finder.SetMaxNodes(4)

	_, err := finder.FindPath(core.Point{X: 0, Y: 0}, core.Point{X: 50, Y: 50})
	if !errors.Is(err, ErrSearchLimit) {
		t.Errorf("got %v, want ErrSearchLimit", err)
	}
	if errors.Is(err, ErrNoPath) {
		t.Error("search-limit abort must be distinguishable from no-path")
	}
}

func TestFindPathForcedDetour(t *testing.T) {
	// Wall at x=3 with its only gap on the top row. Both endpoints sit on row 2, so
	// the cheapest route climbs to the gap row, crosses, and descends: exactly two
	// corners.
	obstacles := parseObstacleMap(`
.......
...X...
...X...
...X...
...X...`)
	window := core.Bounds{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 7, Y: 5}}
	finder := NewPathfinder(AnyOf(obstacles, Outside(window)), DefaultPathCost)

	start := core.Point{X: 0, Y: 2}
	end := core.Point{X: 6, Y: 2}
	path, err := finder.FindPath(start, end)
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}

	if !pathVisits(t, path, core.Point{X: 3, Y: 0}) {
		t.Errorf("route must pass through the gap at (3,0): %s", PathToString(path))
	}
	if corners := len(path.Points) - 2; corners != 2 {
		t.Errorf("route has %d corners, geometry requires exactly 2: %s", corners, PathToString(path))
	}
	wantCost := 10*DefaultPathCost.StraightCost + 2*DefaultPathCost.TurnCost
	if path.Cost != wantCost {
		t.Errorf("cost = %d, want %d", path.Cost, wantCost)
	}
}

func pathVisits(t *testing.T, path core.Path, p core.Point) bool {
	t.Helper()
	for _, cell := range expandPath(t, path) {
		if cell == p {
			return true
		}
	}
	return false
}

func TestFindPathCostSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	window := core.Bounds{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 20, Y: 20}}

	for trial := 0; trial < 40; trial++ {
		obstacles := NewCellSet()
		for i := 0; i < 40; i++ {
			obstacles.Add(core.Point{X: rng.Intn(20), Y: rng.Intn(20)})
		}

		a := core.Point{X: rng.Intn(20), Y: rng.Intn(20)}
		b := core.Point{X: rng.Intn(20), Y: rng.Intn(20)}
		if obstacles.IsOccupied(a.X, a.Y) || obstacles.IsOccupied(b.X, b.Y) {
			continue
		}

		finder := NewPathfinder(AnyOf(obstacles, Outside(window)), DefaultPathCost)
		forward, errF := finder.FindPath(a, b)
		backward, errB := finder.FindPath(b, a)

		if (errF == nil) != (errB == nil) {
			t.Fatalf("trial %d: asymmetric reachability %v -> %v: %v vs %v", trial, a, b, errF, errB)
		}
		if errF != nil {
			continue
		}
		if forward.Cost != backward.Cost {
			t.Errorf("trial %d: cost %v->%v = %d but %v->%v = %d",
				trial, a, b, forward.Cost, b, a, backward.Cost)
		}
	}
}

func TestSimplifyPath(t *testing.T) {
	tests := []struct {
		name   string
		points []core.Point
		want   []core.Point
	}{
		{
			name:   "straight line collapses to endpoints",
			points: []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 3, Y: 0}},
			want:   []core.Point{{X: 0, Y: 0}, {X: 3, Y: 0}},
		},
		{
			name:   "corner retained",
			points: []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2}},
			want:   []core.Point{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 2}},
		},
		{
			name:   "two points untouched",
			points: []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
			want:   []core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SimplifyPath(core.Path{Points: tt.points})
			if len(got.Points) != len(tt.want) {
				t.Fatalf("got %v, want %v", got.Points, tt.want)
			}
			for i := range tt.want {
				if got.Points[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got.Points, tt.want)
				}
			}
		})
	}
}

func TestTurnPenaltyPrefersStraightRoutes(t *testing.T) {
	// With no obstacles the L-shaped route must use a single corner, never a
	// staircase, under any positive turn penalty.
	finder := NewPathfinder(nil, DefaultPathCost)

	path, err := finder.FindPath(core.Point{X: 0, Y: 0}, core.Point{X: 6, Y: 4})
	if err != nil {
		t.Fatalf("FindPath failed: %v", err)
	}
	if corners := len(path.Points) - 2; corners != 1 {
		t.Errorf("diagonal route has %d corners, want 1: %s", corners, PathToString(path))
	}
	wantCost := 10*DefaultPathCost.StraightCost + 1*DefaultPathCost.TurnCost
	if path.Cost != wantCost {
		t.Errorf("cost = %d, want %d", path.Cost, wantCost)
	}
}

func BenchmarkFindPathOpenField(b *testing.B) {
	window := core.Bounds{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 100, Y: 100}}
	finder := NewPathfinder(Outside(window), DefaultPathCost)
	start := core.Point{X: 0, Y: 0}
	end := core.Point{X: 99, Y: 99}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := finder.FindPath(start, end); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkFindPathScattered(b *testing.B) {
	rng := rand.New(rand.NewSource(5))
	obstacles := NewCellSet()
	for i := 0; i < 400; i++ {
		p := core.Point{X: rng.Intn(60), Y: rng.Intn(60)}
		if (p == core.Point{X: 0, Y: 0}) || (p == core.Point{X: 59, Y: 59}) {
			continue
		}
		obstacles.Add(p)
	}
	window := core.Bounds{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: 60, Y: 60}}
	finder := NewPathfinder(AnyOf(obstacles, Outside(window)), DefaultPathCost)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		finder.FindPath(core.Point{X: 0, Y: 0}, core.Point{X: 59, Y: 59})
	}
}
