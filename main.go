// Command gridwire is an interactive demonstration of the routing library: it scatters
// an obstacle field across the terminal, routes a wire through it, and re-routes live
// as the endpoints move.
//
// Keys: arrows or hjkl move the wire's end point, shift variants (HJKL) move the start
// point, r reseeds the obstacle field, q or Esc quits.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"gridwire/geometry"
	"gridwire/obstacles"
)

func main() {
	seed := flag.Int64("seed", 1, "obstacle field seed")
	density := flag.Int("density", 12, "number of obstacle blocks to scatter")
	flag.Parse()

	if err := runDemo(*seed, *density); err != nil {
		fmt.Fprintln(os.Stderr, "gridwire:", err)
		os.Exit(1)
	}
}

// buildField scatters rectangular blocks across a w by h window, punching a hole
// through some of the larger ones so the hole channel is visible in the demo.
func buildField(seed int64, density, w, h int) *obstacles.Area {
	rng := rand.New(rand.NewSource(seed))
	area := obstacles.NewArea()

	for i := 0; i < density; i++ {
		bw := 2 + rng.Intn(8)
		bh := 2 + rng.Intn(5)
		x := 1 + rng.Intn(geometry.Max(1, w-bw-2))
		y := 1 + rng.Intn(geometry.Max(1, h-bh-2))
		area.Add(obstacles.Rect(x, y, bw, bh))

		if bw >= 6 && bh >= 4 {
			area.Subtract(obstacles.Rect(x+2, y+1, bw-4, bh-2))
		}
	}
	return area
}
