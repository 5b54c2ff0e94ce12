package dungeon

import (
	"context"

	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/levelgen"
	"dungeongen/pkg/game/placement"
	"dungeongen/pkg/game/renderer"
)

// DefaultTheme is the theme used by GenerateDefault
var DefaultTheme = renderer.Theme{FloorTile: "floor", WallTile: "wall"}

// Result bundles a dungeon with the output of the in-memory collaborators
type Result struct {
	Dungeon    *Dungeon
	Tiles      *renderer.TileMap
	Placements []placement.Request
}

// GenerateDefault generates with the default strategies and post-processors,
// painting into a TileMap and recording placements in memory
func GenerateDefault(ctx context.Context, cfg config.Config) (*Result, error) {
	tiles := renderer.NewTileMap()
	rec := placement.NewRecorder()

	o, err := NewOrchestrator(&Config{
		RoomPlacer:     generator.DefaultRoomPlacer,
		Connector:      generator.DefaultConnector,
		Painter:        tiles,
		Theme:          DefaultTheme,
		PostProcessors: []levelgen.PostProcessor{levelgen.DefaultBreakables, levelgen.DefaultSpecialRooms},
		Placer:         rec,
	})
	if err != nil {
		return nil, err
	}

	out, err := o.Generate(ctx, &GenerateInput{Config: cfg})
	if err != nil {
		return nil, err
	}

	return &Result{
		Dungeon:    out.Dungeon,
		Tiles:      tiles,
		Placements: rec.Requests(),
	}, nil
}
