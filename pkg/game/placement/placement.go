// Package placement describes how generation stages ask the host to put
// decorations (breakables, markers) into the world.
package placement

//go:generate mockgen -destination=mock/mock_placer.go -package=placementmock dungeongen/pkg/game/placement Placer

import (
	"context"

	"dungeongen/pkg/engine/world"
)

// Request asks for one instance of an archetype at a cell
type Request struct {
	// Archetype names what to place, e.g. "breakable" or "boss-marker"
	Archetype string
	// Cell is the grid cell the instance belongs to
	Cell world.Point
	// Position is the world-space center of Cell
	Position world.Vec2
	// Parent scopes the instance, typically the dungeon ID
	Parent string
}

// Placer instantiates decorations. Errors are returned to the caller unchanged.
type Placer interface {
	Place(ctx context.Context, req Request) error
}

// PlacerFunc adapts a function to the Placer interface
type PlacerFunc func(ctx context.Context, req Request) error

// Place calls f(ctx, req)
func (f PlacerFunc) Place(ctx context.Context, req Request) error {
	return f(ctx, req)
}
