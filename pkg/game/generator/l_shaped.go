package generator

import (
	"dungeongen/pkg/engine/rng"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
)

// maxPairRedraws bounds how often a loop corridor redraws an endpoint that
// matched the other one
const maxPairRedraws = 8

// LShapedConnector joins every room to the start room with an L-shaped
// corridor, then adds a few corridors between other rooms to form loops.
type LShapedConnector struct{}

// Name returns the name of this connector
func (c *LShapedConnector) Name() string {
	return "l-shaped"
}

// Connect carves the star corridors from room 0 and then the loop corridors
func (c *LShapedConnector) Connect(grid *world.Grid, cfg *config.Config, r *rng.Source) {
	centers := grid.RoomCenters()
	n := len(centers)
	if n < 2 {
		return
	}

	for i := 1; i < n; i++ {
		carveL(grid, centers[0], centers[i], cfg.CorridorWidth, r)
	}

	// Loops need two distinct non-start rooms
	if n-1 < 2 {
		return
	}

	extra := max(1, n/3)
	for i := 0; i < extra; i++ {
		a := r.Range(1, n)
		b := r.Range(1, n)
		for redraws := 0; a == b && redraws < maxPairRedraws; redraws++ {
			b = r.Range(1, n)
		}
		if a == b {
			continue
		}
		carveL(grid, centers[a], centers[b], cfg.CorridorWidth, r)
	}
}

// carveL carves from -> to as two straight runs. A coin picks whether the
// horizontal run comes first.
func carveL(grid *world.Grid, from, to world.Point, width int, r *rng.Source) {
	if r.Chance(0.5) {
		carveHorizontal(grid, from.Y, from.X, to.X, width)
		carveVertical(grid, to.X, from.Y, to.Y, width)
	} else {
		carveVertical(grid, from.X, from.Y, to.Y, width)
		carveHorizontal(grid, to.Y, from.X, to.X, width)
	}
}

// carveHorizontal carves row y from x1 to x2 inclusive
func carveHorizontal(grid *world.Grid, y, x1, x2, width int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		grid.CarveCell(x, y, width)
	}
}

// carveVertical carves column x from y1 to y2 inclusive
func carveVertical(grid *world.Grid, x, y1, y2, width int) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	for y := y1; y <= y2; y++ {
		grid.CarveCell(x, y, width)
	}
}
