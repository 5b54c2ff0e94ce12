// Package renderer defines the painter collaborator that turns a finished
// layout into tiles, plus an in-memory reference painter.
package renderer

//go:generate mockgen -destination=mock/mock_painter.go -package=renderermock dungeongen/pkg/game/renderer Painter

import (
	"context"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/errors"
)

// TileKind is what a painter draws at a cell
type TileKind int

const (
	TileVoid TileKind = iota
	TileFloor
	TileWall
)

// String returns the name of the tile kind
func (k TileKind) String() string {
	switch k {
	case TileFloor:
		return "floor"
	case TileWall:
		return "wall"
	default:
		return "void"
	}
}

// Theme names the tiles a painter uses
type Theme struct {
	FloorTile string
	WallTile  string
}

// Validate checks that both tiles are set
func (t Theme) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("theme.floor_tile", t.FloorTile, vb)
	errors.ValidateRequired("theme.wall_tile", t.WallTile, vb)
	return vb.Build()
}

// Tile returns the theme tile for a kind, or "" for void
func (t Theme) Tile(k TileKind) string {
	switch k {
	case TileFloor:
		return t.FloorTile
	case TileWall:
		return t.WallTile
	default:
		return ""
	}
}

// Painter draws a finished layout. Every cell (x, y) is drawn at
// (x + offset.X, y + offset.Y) in world space.
type Painter interface {
	Paint(ctx context.Context, view world.View, theme Theme, offset world.Point) error
}

// Classify applies the painting rule: walkable cells are floor, non-walkable
// cells touching a walkable cell (diagonals included) are wall, the rest is void.
func Classify(v world.View, x, y int) TileKind {
	if v.IsWalkable(x, y) {
		return TileFloor
	}
	p := world.Point{X: x, Y: y}
	for _, dir := range world.AllDirections() {
		n := p.Step(dir)
		if v.IsWalkable(n.X, n.Y) {
			return TileWall
		}
	}
	return TileVoid
}
