package dungeon

import (
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
)

// SeedSource records where a run's seed came from
type SeedSource string

const (
	// SeedSourceOverride means the caller passed an explicit numeric seed
	SeedSourceOverride SeedSource = "override"
	// SeedSourceEntropy means random mode drew a fresh seed
	SeedSourceEntropy SeedSource = "entropy"
	// SeedSourceString means the seed is the hash of the configured seed string
	SeedSourceString SeedSource = "string"
)

// GenerateInput is the input for Generate
type GenerateInput struct {
	Config config.Config
	// SeedOverride, when set, is used instead of the configured seed or random mode
	SeedOverride *uint64
}

// GenerateOutput is the output of Generate
type GenerateOutput struct {
	Dungeon *Dungeon
}

// Dungeon is the read-only result of one generation run
type Dungeon struct {
	ID         string
	Seed       uint64
	SeedSource SeedSource
	Config     config.Config

	grid      *world.Grid
	transform world.Transform
}

// Width returns the grid width
func (d *Dungeon) Width() int {
	return d.grid.Width()
}

// Height returns the grid height
func (d *Dungeon) Height() int {
	return d.grid.Height()
}

// Walkable returns a copy of the walkability matrix, indexed [x][y]
func (d *Dungeon) Walkable() [][]bool {
	return d.grid.Walkable()
}

// IsWalkable reports whether a grid cell is walkable
func (d *Dungeon) IsWalkable(x, y int) bool {
	return d.grid.IsWalkable(x, y)
}

// StartCell returns the center of the start room
func (d *Dungeon) StartCell() world.Point {
	return d.grid.StartCell()
}

// Offset returns the translation applied to grid cells when painting
func (d *Dungeon) Offset() world.Point {
	return d.transform.Offset
}

// StartWorldPosition returns the world-space center of the start cell
func (d *Dungeon) StartWorldPosition() world.Vec2 {
	return d.transform.CellCenter(d.grid.StartCell())
}

// Rooms returns the placed rooms; index 0 is the start room
func (d *Dungeon) Rooms() []world.Rect {
	return d.grid.Rooms()
}

// RoomCenters returns the room centers, indexed like Rooms
func (d *Dungeon) RoomCenters() []world.Point {
	return d.grid.RoomCenters()
}

// Grid returns a read-only view of the layout
func (d *Dungeon) Grid() world.View {
	return d.grid.View()
}

// Transform returns the grid to world transform used for painting and placement
func (d *Dungeon) Transform() world.Transform {
	return d.transform
}
