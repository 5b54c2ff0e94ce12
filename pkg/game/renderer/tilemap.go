package renderer

import (
	"context"

	"dungeongen/pkg/engine/world"
)

// TileMap is an in-memory Painter with a ground layer and a walls layer,
// both keyed by world cell. It is not safe for concurrent use.
type TileMap struct {
	Ground map[world.Point]string
	Walls  map[world.Point]string
}

// NewTileMap creates an empty tile map
func NewTileMap() *TileMap {
	return &TileMap{
		Ground: make(map[world.Point]string),
		Walls:  make(map[world.Point]string),
	}
}

// Paint clears both layers and redraws them from view
func (m *TileMap) Paint(_ context.Context, view world.View, theme Theme, offset world.Point) error {
	m.Ground = make(map[world.Point]string)
	m.Walls = make(map[world.Point]string)

	for x := 0; x < view.Width(); x++ {
		for y := 0; y < view.Height(); y++ {
			cell := world.Point{X: x + offset.X, Y: y + offset.Y}
			switch kind := Classify(view, x, y); kind {
			case TileFloor:
				m.Ground[cell] = theme.Tile(kind)
			case TileWall:
				m.Walls[cell] = theme.Tile(kind)
			}
		}
	}
	return nil
}

// TileAt returns the tile drawn at a world cell, checking walls then ground
func (m *TileMap) TileAt(cell world.Point) (string, bool) {
	if t, ok := m.Walls[cell]; ok {
		return t, true
	}
	t, ok := m.Ground[cell]
	return t, ok
}
