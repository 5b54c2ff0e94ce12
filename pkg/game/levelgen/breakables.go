package levelgen

import (
	"context"

	"dungeongen/pkg/engine/world"
)

// Breakables scatters breakable props along corridors. Every walkable cell
// outside all rooms rolls once against SpawnChance.
type Breakables struct {
	SpawnChance float64
	Archetype   string
}

// Name returns the name of this post-processor
func (b *Breakables) Name() string {
	return "breakables"
}

// PostProcess scans the grid column by column and requests a placement for
// each successful roll. The first placement error stops the scan.
func (b *Breakables) PostProcess(ctx context.Context, in *Input) error {
	grid := in.Grid
	for x := 0; x < grid.Width(); x++ {
		for y := 0; y < grid.Height(); y++ {
			if !grid.IsWalkable(x, y) || grid.InAnyRoom(x, y) {
				continue
			}
			if !in.Rand.Chance(b.SpawnChance) {
				continue
			}
			if err := place(ctx, in, b.Archetype, world.Point{X: x, Y: y}); err != nil {
				return err
			}
		}
	}
	return nil
}
