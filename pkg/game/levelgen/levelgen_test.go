package levelgen

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"dungeongen/pkg/engine/rng"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/placement"
	placementmock "dungeongen/pkg/game/placement/mock"
)

// threeRoomGrid builds a 30x20 grid with a start room, two side rooms and a
// one wide corridor joining them
func threeRoomGrid() *world.Grid {
	g := world.NewGrid(30, 20)
	g.AddRoom(world.Rect{X: 12, Y: 8, W: 6, H: 4})  // center (15,10)
	g.AddRoom(world.Rect{X: 2, Y: 2, W: 4, H: 4})   // center (4,4)
	g.AddRoom(world.Rect{X: 24, Y: 15, W: 4, H: 4}) // center (26,17)
	for x := 4; x <= 26; x++ {
		g.CarveCell(x, 10, 1)
	}
	for y := 4; y <= 10; y++ {
		g.CarveCell(4, y, 1)
	}
	for y := 10; y <= 17; y++ {
		g.CarveCell(26, y, 1)
	}
	return g
}

func newInput(g *world.Grid, p placement.Placer, seed uint64) *Input {
	cfg := config.Default()
	cfg.Width, cfg.Height = g.Width(), g.Height()
	return &Input{
		Config:    &cfg,
		Rand:      rng.New(seed),
		Grid:      g,
		Transform: world.NewTransform(g.Width(), g.Height()),
		Placer:    p,
		Parent:    "dungeon-1",
	}
}

func TestBreakablesOnlyOnCorridors(t *testing.T) {
	g := threeRoomGrid()
	rec := placement.NewRecorder()
	b := &Breakables{SpawnChance: 1, Archetype: "breakable"}

	require.NoError(t, b.PostProcess(context.Background(), newInput(g, rec, 1)))

	corridorCells := 0
	g.ForEachCell(func(x, y int, walkable bool) {
		if walkable && !g.InAnyRoom(x, y) {
			corridorCells++
		}
	})
	require.Equal(t, corridorCells, rec.Len())

	prev := world.Point{X: -1, Y: -1}
	for _, req := range rec.Requests() {
		assert.False(t, g.InAnyRoom(req.Cell.X, req.Cell.Y), "breakable inside a room at %v", req.Cell)
		assert.True(t, g.IsWalkable(req.Cell.X, req.Cell.Y))
		assert.Equal(t, "breakable", req.Archetype)
		assert.Equal(t, "dungeon-1", req.Parent)
		// Column-major scan order
		assert.True(t, req.Cell.X > prev.X || (req.Cell.X == prev.X && req.Cell.Y > prev.Y))
		prev = req.Cell
	}
}

func TestBreakablesZeroChancePlacesNothing(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPlacer := placementmock.NewMockPlacer(ctrl)
	// No EXPECT: any call fails the test

	b := &Breakables{SpawnChance: 0, Archetype: "breakable"}
	require.NoError(t, b.PostProcess(context.Background(), newInput(threeRoomGrid(), mockPlacer, 1)))
}

func TestBreakablesDoNotChangeWalkability(t *testing.T) {
	g := threeRoomGrid()
	before := g.Walkable()

	require.NoError(t, DefaultBreakables.PostProcess(context.Background(), newInput(g, placement.NewRecorder(), 5)))

	assert.Equal(t, before, g.Walkable())
}

func TestBreakablesAreDeterministic(t *testing.T) {
	a := placement.NewRecorder()
	b := placement.NewRecorder()
	require.NoError(t, DefaultBreakables.PostProcess(context.Background(), newInput(threeRoomGrid(), a, 77)))
	require.NoError(t, DefaultBreakables.PostProcess(context.Background(), newInput(threeRoomGrid(), b, 77)))
	assert.Equal(t, a.Requests(), b.Requests())
}

func TestBreakablesPropagatePlacementError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPlacer := placementmock.NewMockPlacer(ctrl)
	boom := stderrors.New("prefab missing")
	mockPlacer.EXPECT().Place(gomock.Any(), gomock.Any()).Return(boom).Times(1)

	b := &Breakables{SpawnChance: 1, Archetype: "breakable"}
	err := b.PostProcess(context.Background(), newInput(threeRoomGrid(), mockPlacer, 1))
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
}

func TestSpecialRoomsMarksFarthestRooms(t *testing.T) {
	g := threeRoomGrid()
	ctrl := gomock.NewController(t)
	mockPlacer := placementmock.NewMockPlacer(ctrl)
	tr := world.NewTransform(g.Width(), g.Height())

	// (26,17) is farther from (15,10) than (4,4)
	gomock.InOrder(
		mockPlacer.EXPECT().Place(gomock.Any(), placement.Request{
			Archetype: "boss-marker",
			Cell:      world.Point{X: 26, Y: 17},
			Position:  tr.CellCenter(world.Point{X: 26, Y: 17}),
			Parent:    "dungeon-1",
		}).Return(nil),
		mockPlacer.EXPECT().Place(gomock.Any(), placement.Request{
			Archetype: "trophy-marker",
			Cell:      world.Point{X: 4, Y: 4},
			Position:  tr.CellCenter(world.Point{X: 4, Y: 4}),
			Parent:    "dungeon-1",
		}).Return(nil),
	)

	require.NoError(t, DefaultSpecialRooms.PostProcess(context.Background(), newInput(g, mockPlacer, 1)))
}

func TestSpecialRoomsNeedsTwoRooms(t *testing.T) {
	for _, rooms := range [][]world.Rect{
		{{X: 5, Y: 5, W: 4, H: 4}},
		{{X: 5, Y: 5, W: 4, H: 4}, {X: 15, Y: 5, W: 4, H: 4}},
	} {
		g := world.NewGrid(30, 20)
		for _, r := range rooms {
			g.AddRoom(r)
		}
		ctrl := gomock.NewController(t)
		mockPlacer := placementmock.NewMockPlacer(ctrl)

		require.NoError(t, DefaultSpecialRooms.PostProcess(context.Background(), newInput(g, mockPlacer, 1)))
	}
}

func TestSpecialRoomsStopsOnBossError(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockPlacer := placementmock.NewMockPlacer(ctrl)
	boom := stderrors.New("no boss prefab")
	mockPlacer.EXPECT().Place(gomock.Any(), gomock.Any()).Return(boom).Times(1)

	err := DefaultSpecialRooms.PostProcess(context.Background(), newInput(threeRoomGrid(), mockPlacer, 1))
	assert.ErrorIs(t, err, boom)
}

func TestFarthestTwoTies(t *testing.T) {
	start := world.Point{X: 0, Y: 0}
	centers := []world.Point{start, {X: 3, Y: 4}, {X: 4, Y: 3}, {X: 0, Y: 5}, {X: 1, Y: 1}}

	first, second, ok := farthestTwo(centers, start)
	require.True(t, ok)
	assert.Equal(t, 1, first)
	assert.Equal(t, 2, second)
}

func TestFarthestTwoSkipsStart(t *testing.T) {
	start := world.Point{X: 10, Y: 10}
	centers := []world.Point{{X: 50, Y: 50}, {X: 12, Y: 10}, {X: 10, Y: 13}}

	first, second, ok := farthestTwo(centers, start)
	require.True(t, ok)
	assert.Equal(t, 2, first)
	assert.Equal(t, 1, second)
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	assert.Equal(t, []string{"breakables", "special-rooms"}, reg.Names())

	procs, err := reg.Lookup("special-rooms", "breakables")
	require.NoError(t, err)
	require.Len(t, procs, 2)
	assert.Equal(t, "special-rooms", procs[0].Name())
	assert.Equal(t, "breakables", procs[1].Name())

	_, err = reg.Lookup("traps")
	assert.Error(t, err)
	assert.Error(t, reg.Register(DefaultBreakables))
}
