// Package dungeon implements the generation pipeline: seed the random source,
// place rooms, connect them, paint, then run the post-processors.
package dungeon

import (
	"context"
	"log/slog"
	"strings"

	"dungeongen/pkg/engine/rng"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/errors"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/levelgen"
	"dungeongen/pkg/game/placement"
	"dungeongen/pkg/game/renderer"
	"dungeongen/pkg/idgen"
)

// Config holds the modules and collaborators wired into the orchestrator
type Config struct {
	RoomPlacer     generator.RoomPlacer
	Connector      generator.CorridorConnector
	Painter        renderer.Painter
	Theme          renderer.Theme
	PostProcessors []levelgen.PostProcessor
	// Placer is required when PostProcessors is not empty
	Placer placement.Placer
	// IDGenerator defaults to random UUIDs
	IDGenerator idgen.Generator
	// Logger defaults to slog.Default()
	Logger *slog.Logger
}

// Validate ensures every required module is wired
func (c *Config) Validate() error {
	var missing []string

	if c.RoomPlacer == nil {
		missing = append(missing, "RoomPlacer")
	}
	if c.Connector == nil {
		missing = append(missing, "Connector")
	}
	if c.Painter == nil {
		missing = append(missing, "Painter")
	}
	if err := c.Theme.Validate(); err != nil {
		missing = append(missing, "Theme")
	}
	for _, p := range c.PostProcessors {
		if p == nil {
			missing = append(missing, "PostProcessors")
			break
		}
	}
	if len(c.PostProcessors) > 0 && c.Placer == nil {
		missing = append(missing, "Placer")
	}

	if len(missing) > 0 {
		return errors.FailedPreconditionf("missing modules: %s", strings.Join(missing, ", ")).
			WithMeta("missing", missing)
	}
	return nil
}

// Orchestrator runs the generation pipeline. It holds no per-run state, so
// concurrent Generate calls are safe when the collaborators are.
type Orchestrator struct {
	roomPlacer     generator.RoomPlacer
	connector      generator.CorridorConnector
	painter        renderer.Painter
	theme          renderer.Theme
	postProcessors []levelgen.PostProcessor
	placer         placement.Placer
	idGen          idgen.Generator
	logger         *slog.Logger
}

// NewOrchestrator creates an orchestrator after checking its modules once
func NewOrchestrator(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.FailedPrecondition("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	o := &Orchestrator{
		roomPlacer:     cfg.RoomPlacer,
		connector:      cfg.Connector,
		painter:        cfg.Painter,
		theme:          cfg.Theme,
		postProcessors: append([]levelgen.PostProcessor(nil), cfg.PostProcessors...),
		placer:         cfg.Placer,
		idGen:          cfg.IDGenerator,
		logger:         cfg.Logger,
	}
	if o.idGen == nil {
		o.idGen = idgen.UUIDGenerator{}
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}
	return o, nil
}

// Generate builds one dungeon. Invalid configuration is rejected before any
// grid is allocated. Painter and placement errors abort the run.
func (o *Orchestrator) Generate(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	cfg := input.Config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	seed, source := deriveSeed(input)
	r := rng.New(seed)
	grid := world.NewGrid(cfg.Width, cfg.Height)

	o.roomPlacer.PlaceRooms(grid, &cfg, r)
	if grid.RoomCount() < cfg.RoomCount {
		o.logger.Warn("Room placement fell short",
			"rooms", grid.RoomCount(),
			"target", cfg.RoomCount,
			"attempts", cfg.PlacementAttempts,
		)
	}

	o.connector.Connect(grid, &cfg, r)

	d := &Dungeon{
		ID:         o.idGen.Generate(),
		Seed:       seed,
		SeedSource: source,
		Config:     cfg,
		grid:       grid,
		transform:  world.NewTransform(cfg.Width, cfg.Height),
	}

	if err := o.painter.Paint(ctx, grid.View(), o.theme, d.transform.Offset); err != nil {
		return nil, errors.Wrap(err, "failed to paint dungeon")
	}

	in := &levelgen.Input{
		Config:    &cfg,
		Rand:      r,
		Grid:      grid.View(),
		Transform: d.transform,
		Placer:    o.placer,
		Parent:    d.ID,
	}
	for _, p := range o.postProcessors {
		if err := p.PostProcess(ctx, in); err != nil {
			return nil, errors.Wrapf(err, "post-processor %s failed", p.Name())
		}
	}

	o.logger.Info("Dungeon generated",
		"dungeon_id", d.ID,
		"seed", seed,
		"seed_source", source,
		"rooms", grid.RoomCount(),
		"room_placer", o.roomPlacer.Name(),
		"connector", o.connector.Name(),
	)

	return &GenerateOutput{Dungeon: d}, nil
}

// deriveSeed picks the run seed: explicit override, then random mode, then
// the hash of the seed string
func deriveSeed(input *GenerateInput) (uint64, SeedSource) {
	if input.SeedOverride != nil {
		return *input.SeedOverride, SeedSourceOverride
	}
	if input.Config.SeedMode == config.SeedModeRandom {
		return rng.Entropy(), SeedSourceEntropy
	}
	return rng.HashSeed(input.Config.Seed), SeedSourceString
}
