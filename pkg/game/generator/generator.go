// Package generator holds the layout strategies: room placers fill an empty
// grid with rooms, corridor connectors join them.
package generator

import (
	"dungeongen/pkg/engine/rng"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
)

// RoomPlacer fills an empty grid with rooms. The first room placed is the start room.
type RoomPlacer interface {
	PlaceRooms(grid *world.Grid, cfg *config.Config, r *rng.Source)
	Name() string
}

// CorridorConnector carves corridors between the rooms already on the grid
type CorridorConnector interface {
	Connect(grid *world.Grid, cfg *config.Config, r *rng.Source)
	Name() string
}

// Available strategies
var (
	StartHub = &StartHubPlacer{}
	LShaped  = &LShapedConnector{}
)

// DefaultRoomPlacer is the default room placement strategy
var DefaultRoomPlacer RoomPlacer = StartHub

// DefaultConnector is the default corridor strategy
var DefaultConnector CorridorConnector = LShaped

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
