package renderer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/errors"
)

func TestClassify(t *testing.T) {
	g := world.NewGrid(10, 10)
	g.CarveRoom(world.Rect{X: 3, Y: 3, W: 2, H: 2})

	tests := []struct {
		x, y int
		want TileKind
	}{
		{3, 3, TileFloor},
		{4, 4, TileFloor},
		{2, 3, TileWall},
		{2, 2, TileWall}, // diagonal neighbour
		{5, 5, TileWall},
		{1, 1, TileVoid},
		{9, 9, TileVoid},
	}
	for _, tt := range tests {
		if got := Classify(g, tt.x, tt.y); got != tt.want {
			t.Errorf("Classify(%d,%d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestThemeValidate(t *testing.T) {
	assert.NoError(t, Theme{FloorTile: "floor", WallTile: "wall"}.Validate())

	err := Theme{FloorTile: " "}.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
	assert.Contains(t, fields, "theme.floor_tile")
	assert.Contains(t, fields, "theme.wall_tile")
}

func TestTileMapPaintsWithOffset(t *testing.T) {
	g := world.NewGrid(10, 8)
	g.CarveRoom(world.Rect{X: 4, Y: 3, W: 2, H: 2})
	m := NewTileMap()
	theme := Theme{FloorTile: "stone", WallTile: "brick"}
	offset := world.Point{X: -5, Y: -4}

	require.NoError(t, m.Paint(context.Background(), g, theme, offset))

	assert.Len(t, m.Ground, 4)
	// A 2x2 room is ringed by a 4x4 square of walls
	assert.Len(t, m.Walls, 12)

	tile, ok := m.TileAt(world.Point{X: -1, Y: -1})
	assert.True(t, ok)
	assert.Equal(t, "stone", tile)

	tile, ok = m.TileAt(world.Point{X: -2, Y: -2})
	assert.True(t, ok)
	assert.Equal(t, "brick", tile)

	_, ok = m.TileAt(world.Point{X: -5, Y: -4})
	assert.False(t, ok)
}

func TestTileMapRepaintClears(t *testing.T) {
	m := NewTileMap()
	theme := Theme{FloorTile: "f", WallTile: "w"}

	big := world.NewGrid(10, 10)
	big.CarveRoom(world.Rect{X: 1, Y: 1, W: 8, H: 8})
	require.NoError(t, m.Paint(context.Background(), big, theme, world.Point{}))

	small := world.NewGrid(10, 10)
	small.CarveCell(5, 5, 1)
	require.NoError(t, m.Paint(context.Background(), small, theme, world.Point{}))

	assert.Len(t, m.Ground, 1)
	assert.Len(t, m.Walls, 8)
}
