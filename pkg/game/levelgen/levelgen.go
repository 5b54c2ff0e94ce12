// Package levelgen provides the post-placement passes that decorate a
// finished layout: breakables along corridors and special room markers.
package levelgen

import (
	"context"

	"dungeongen/pkg/engine/rng"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/placement"
)

// Input is everything a post-processor may read. Grid is read only.
type Input struct {
	Config    *config.Config
	Rand      *rng.Source
	Grid      world.View
	Transform world.Transform
	Placer    placement.Placer
	// Parent scopes every placement request
	Parent string
}

// PostProcessor decorates a finished layout through the placement collaborator.
// Implementations never change walkability.
type PostProcessor interface {
	PostProcess(ctx context.Context, in *Input) error
	Name() string
}

// Built-in post-processors
var (
	DefaultBreakables   = &Breakables{SpawnChance: 0.08, Archetype: "breakable"}
	DefaultSpecialRooms = &SpecialRooms{BossArchetype: "boss-marker", TrophyArchetype: "trophy-marker"}
)
