package main

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"

	"gridwire/core"
	"gridwire/obstacles"
	"gridwire/pathfinding"
)

type demo struct {
	screen  tcell.Screen
	seed    int64
	density int

	area   *obstacles.Area
	window core.Bounds
	start  core.Point
	end    core.Point
	path   core.Path
	status string
}

func runDemo(seed int64, density int) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	d := &demo{screen: screen, seed: seed, density: density}
	d.resize()
	d.reseed()

	for {
		d.reroute()
		d.draw()

		switch ev := screen.PollEvent().(type) {
		case *tcell.EventResize:
			screen.Sync()
			d.resize()
		case *tcell.EventKey:
			if !d.handleKey(ev) {
				return nil
			}
		}
	}
}

// resize fits the routing window to the terminal, keeping the bottom row for status.
func (d *demo) resize() {
	w, h := d.screen.Size()
	if h > 1 {
		h--
	}
	d.window = core.Bounds{Min: core.Point{X: 0, Y: 0}, Max: core.Point{X: w, Y: h}}

	d.start = clampTo(d.window, d.start)
	if d.end == (core.Point{}) {
		d.end = core.Point{X: w - 1, Y: h - 1}
	}
	d.end = clampTo(d.window, d.end)
}

func (d *demo) reseed() {
	d.area = buildField(d.seed, d.density, d.window.Width(), d.window.Height())
	d.seed++
}

func (d *demo) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyUp:
		d.end = d.move(d.end, 0, -1)
	case tcell.KeyDown:
		d.end = d.move(d.end, 0, 1)
	case tcell.KeyLeft:
		d.end = d.move(d.end, -1, 0)
	case tcell.KeyRight:
		d.end = d.move(d.end, 1, 0)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'r':
			d.reseed()
		case 'h':
			d.end = d.move(d.end, -1, 0)
		case 'j':
			d.end = d.move(d.end, 0, 1)
		case 'k':
			d.end = d.move(d.end, 0, -1)
		case 'l':
			d.end = d.move(d.end, 1, 0)
		case 'H':
			d.start = d.move(d.start, -1, 0)
		case 'J':
			d.start = d.move(d.start, 0, 1)
		case 'K':
			d.start = d.move(d.start, 0, -1)
		case 'L':
			d.start = d.move(d.start, 1, 0)
		}
	}
	return true
}

func (d *demo) move(p core.Point, dx, dy int) core.Point {
	return clampTo(d.window, core.Point{X: p.X + dx, Y: p.Y + dy})
}

func clampTo(b core.Bounds, p core.Point) core.Point {
	if p.X < b.Min.X {
		p.X = b.Min.X
	}
	if p.X >= b.Max.X {
		p.X = b.Max.X - 1
	}
	if p.Y < b.Min.Y {
		p.Y = b.Min.Y
	}
	if p.Y >= b.Max.Y {
		p.Y = b.Max.Y - 1
	}
	return p
}

func (d *demo) reroute() {
	finder := pathfinding.NewPathfinder(
		pathfinding.AnyOf(d.area, pathfinding.Outside(d.window)),
		pathfinding.DefaultPathCost,
	)

	path, err := finder.FindPath(d.start, d.end)
	switch {
	case errors.Is(err, pathfinding.ErrBlockedEndpoint):
		d.path = core.Path{}
		d.status = "endpoint on an obstacle - move it off (hjkl/arrows, HJKL for start)"
	case errors.Is(err, pathfinding.ErrNoPath):
		d.path = core.Path{}
		d.status = "no route exists - r reseeds the field"
	case errors.Is(err, pathfinding.ErrSearchLimit):
		d.path = core.Path{}
		d.status = "search aborted at node limit"
	case err != nil:
		d.path = core.Path{}
		d.status = err.Error()
	default:
		d.path = path
		d.status = fmt.Sprintf("cost %d, %d waypoints - hjkl/arrows move end, HJKL start, r reseed, q quit",
			path.Cost, path.Length())
	}
}

var (
	styleObstacle = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleWire     = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleStart    = tcell.StyleDefault.Foreground(tcell.ColorGreen)
	styleEnd      = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleStatus   = tcell.StyleDefault.Reverse(true)
)

func (d *demo) draw() {
	d.screen.Clear()

	for y := d.window.Min.Y; y < d.window.Max.Y; y++ {
		for x := d.window.Min.X; x < d.window.Max.X; x++ {
			if d.area.IsOccupied(x, y) {
				d.screen.SetContent(x, y, '░', nil, styleObstacle)
			}
		}
	}

	d.drawWire()

	d.screen.SetContent(d.start.X, d.start.Y, '●', nil, styleStart)
	d.screen.SetContent(d.end.X, d.end.Y, '◆', nil, styleEnd)

	_, h := d.screen.Size()
	for i, ch := range d.status {
		d.screen.SetContent(i, h-1, ch, nil, styleStatus)
	}

	d.screen.Show()
}

// drawWire rasterizes the corner-simplified path with box-drawing runes, picking the
// corner glyph from the incoming and outgoing directions at each waypoint.
func (d *demo) drawWire() {
	pts := d.path.Points
	if len(pts) < 2 {
		return
	}

	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dir := pathfinding.GetDirection(a, b)
		body := '─'
		if dir == pathfinding.DirNorth || dir == pathfinding.DirSouth {
			body = '│'
		}
		for p := step(a, dir); p != b; p = step(p, dir) {
			d.screen.SetContent(p.X, p.Y, body, nil, styleWire)
		}
	}

	for i := 1; i < len(pts)-1; i++ {
		in := pathfinding.GetDirection(pts[i-1], pts[i])
		out := pathfinding.GetDirection(pts[i], pts[i+1])
		d.screen.SetContent(pts[i].X, pts[i].Y, cornerRune(in, out), nil, styleWire)
	}
}

func step(p core.Point, dir pathfinding.Direction) core.Point {
	switch dir {
	case pathfinding.DirNorth:
		p.Y--
	case pathfinding.DirSouth:
		p.Y++
	case pathfinding.DirEast:
		p.X++
	case pathfinding.DirWest:
		p.X--
	}
	return p
}

func cornerRune(in, out pathfinding.Direction) rune {
	switch {
	case in == pathfinding.DirSouth && out == pathfinding.DirEast,
		in == pathfinding.DirWest && out == pathfinding.DirNorth:
		return '└'
	case in == pathfinding.DirSouth && out == pathfinding.DirWest,
		in == pathfinding.DirEast && out == pathfinding.DirNorth:
		return '┘'
	case in == pathfinding.DirNorth && out == pathfinding.DirEast,
		in == pathfinding.DirWest && out == pathfinding.DirSouth:
		return '┌'
	case in == pathfinding.DirNorth && out == pathfinding.DirWest,
		in == pathfinding.DirEast && out == pathfinding.DirSouth:
		return '┐'
	default:
		return '+'
	}
}
