package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/leonelquinteros/gotext"
	"github.com/spf13/cobra"

	"dungeongen/pkg/engine/terminal"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/errors"
	"dungeongen/pkg/game/config"
	"dungeongen/pkg/game/devtools"
	"dungeongen/pkg/game/dungeon"
	"dungeongen/pkg/game/generator"
	"dungeongen/pkg/game/levelgen"
	"dungeongen/pkg/game/placement"
	"dungeongen/pkg/game/renderer"
	"dungeongen/pkg/game/renderer/tui"
)

// generateOptions holds the generate command's flags
type generateOptions struct {
	presetPath   string
	seed         string
	seedOverride uint64
	random       bool
	width        int
	height       int
	rooms        int
	roomMin      int
	roomMax      int
	attempts     int
	corridor     int
	padding      int
	color        string
	dumpPath     string
	logLevel     string
}

var genOpts generateOptions

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a dungeon and print it",
	Long:  `Generate a dungeon from a preset and flags, print the map and a summary, and optionally write a debug dump.`,
	RunE:  runGenerate,
}

var modulesCmd = &cobra.Command{
	Use:   "modules",
	Short: "List the registered generation modules",
	RunE: func(cmd *cobra.Command, args []string) error {
		return printModules(cmd.OutOrStdout(), generator.NewRegistry(), levelgen.NewRegistry())
	},
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genOpts.presetPath, "preset", "", "YAML preset file")
	f.StringVar(&genOpts.seed, "seed", "", "seed string")
	f.Uint64Var(&genOpts.seedOverride, "seed-override", 0, "numeric seed, overrides --seed and --random")
	f.BoolVar(&genOpts.random, "random", false, "draw a fresh seed")
	f.IntVar(&genOpts.width, "width", 0, "grid width")
	f.IntVar(&genOpts.height, "height", 0, "grid height")
	f.IntVar(&genOpts.rooms, "rooms", 0, "target room count, start room included")
	f.IntVar(&genOpts.roomMin, "room-min", 0, "minimum room side")
	f.IntVar(&genOpts.roomMax, "room-max", 0, "maximum room side")
	f.IntVar(&genOpts.attempts, "attempts", 0, "room placement attempts")
	f.IntVar(&genOpts.corridor, "corridor", 0, "corridor width")
	f.IntVar(&genOpts.padding, "padding", 0, "minimum gap around rooms")
	f.StringVar(&genOpts.color, "color", string(terminal.ColorAuto), "colour output: auto, always or never")
	f.StringVar(&genOpts.dumpPath, "dump", "", "write a debug map dump to this file")
	f.StringVar(&genOpts.logLevel, "log-level", "warn", "log level: debug, info, warn or error")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(cmd.ErrOrStderr(), genOpts.logLevel)
	if err != nil {
		return err
	}

	preset, err := loadPreset(genOpts.presetPath)
	if err != nil {
		return err
	}
	applyFlags(cmd, &preset.Generation)

	input := &dungeon.GenerateInput{Config: preset.Generation}
	if cmd.Flags().Changed("seed-override") {
		seed := genOpts.seedOverride
		input.SeedOverride = &seed
	}

	painter := tui.New(terminal.UseColor(terminal.ColorMode(genOpts.color), os.Stdout))
	recorder := placement.NewRecorder()

	o, err := buildOrchestrator(preset, painter, recorder, logger)
	if err != nil {
		return err
	}

	out, err := o.Generate(context.Background(), input)
	if err != nil {
		return err
	}
	d := out.Dungeon

	w := cmd.OutOrStdout()
	if d.Width() > terminal.GetWidth() {
		logger.Info("Map is wider than the terminal", "width", d.Width(), "terminal_width", terminal.GetWidth())
	}
	if err := painter.Print(w, overlays(d, recorder.Requests())); err != nil {
		return errors.Wrap(err, "failed to print map")
	}
	printSummary(w, d, recorder)

	if genOpts.dumpPath != "" {
		path, err := devtools.DumpToFile(genOpts.dumpPath, d, recorder.Requests())
		if err != nil {
			return err
		}
		fmt.Fprintln(w, gotext.Get("Map dump written to %s", path))
	}
	return nil
}

func loadPreset(path string) (*config.Preset, error) {
	if path == "" {
		p := config.DefaultPreset()
		return &p, nil
	}
	return config.LoadPreset(path)
}

// applyFlags copies explicitly set flags over the preset values
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = genOpts.seed
		cfg.SeedMode = config.SeedModeFixed
	}
	if flags.Changed("random") && genOpts.random {
		cfg.SeedMode = config.SeedModeRandom
	}

	ints := []struct {
		flag  string
		value int
		dst   *int
	}{
		{"width", genOpts.width, &cfg.Width},
		{"height", genOpts.height, &cfg.Height},
		{"rooms", genOpts.rooms, &cfg.RoomCount},
		{"room-min", genOpts.roomMin, &cfg.RoomSizeMin},
		{"room-max", genOpts.roomMax, &cfg.RoomSizeMax},
		{"attempts", genOpts.attempts, &cfg.PlacementAttempts},
		{"corridor", genOpts.corridor, &cfg.CorridorWidth},
		{"padding", genOpts.padding, &cfg.RoomPadding},
	}
	for _, i := range ints {
		if flags.Changed(i.flag) {
			*i.dst = i.value
		}
	}
}

// buildOrchestrator resolves the preset's module names and wires the orchestrator
func buildOrchestrator(preset *config.Preset, painter renderer.Painter, placer placement.Placer, logger *slog.Logger) (*dungeon.Orchestrator, error) {
	strategies := generator.NewRegistry()
	roomPlacer, err := strategies.RoomPlacer(preset.Modules.RoomPlacer)
	if err != nil {
		return nil, err
	}
	connector, err := strategies.Connector(preset.Modules.Connector)
	if err != nil {
		return nil, err
	}
	post, err := levelgen.NewRegistry().Lookup(preset.Modules.PostProcessors...)
	if err != nil {
		return nil, err
	}

	return dungeon.NewOrchestrator(&dungeon.Config{
		RoomPlacer:     roomPlacer,
		Connector:      connector,
		Painter:        painter,
		Theme:          renderer.Theme{FloorTile: preset.Theme.Floor, WallTile: preset.Theme.Wall},
		PostProcessors: post,
		Placer:         placer,
		Logger:         logger,
	})
}

// overlays marks the start cell and the special placements on the text map
func overlays(d *dungeon.Dungeon, placements []placement.Request) map[world.Point]string {
	marks := make(map[world.Point]string)
	for _, req := range placements {
		switch req.Archetype {
		case levelgen.DefaultSpecialRooms.BossArchetype:
			marks[req.Cell] = "B"
		case levelgen.DefaultSpecialRooms.TrophyArchetype:
			marks[req.Cell] = "T"
		default:
			marks[req.Cell] = "x"
		}
	}
	marks[d.StartCell()] = "@"
	return marks
}

func printSummary(w io.Writer, d *dungeon.Dungeon, rec *placement.Recorder) {
	start := d.StartCell()
	pos := d.StartWorldPosition()

	fmt.Fprintln(w)
	fmt.Fprintln(w, gotext.Get("Dungeon %s", d.ID))
	fmt.Fprintln(w, gotext.Get("Seed: %d (%s)", d.Seed, d.SeedSource))
	fmt.Fprintln(w, gotext.Get("Size: %dx%d", d.Width(), d.Height()))
	fmt.Fprintln(w, gotext.Get("Rooms: %d of %d", len(d.Rooms()), d.Config.RoomCount))
	fmt.Fprintln(w, gotext.Get("Start: cell %d,%d world %.1f,%.1f", start.X, start.Y, pos.X, pos.Y))
	fmt.Fprintln(w, gotext.Get("Placements: %d (%d breakables)", rec.Len(), len(rec.ByArchetype(levelgen.DefaultBreakables.Archetype))))
}

func printModules(w io.Writer, strategies *generator.Registry, post *levelgen.Registry) error {
	sections := []struct {
		title string
		names []string
	}{
		{gotext.Get("Room placers"), strategies.RoomPlacerNames()},
		{gotext.Get("Corridor connectors"), strategies.ConnectorNames()},
		{gotext.Get("Post-processors"), post.Names()},
	}
	for _, s := range sections {
		if _, err := fmt.Fprintf(w, "%s: %s\n", s.title, strings.Join(s.names, ", ")); err != nil {
			return err
		}
	}
	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, errors.InvalidArgumentf("unknown log level %q", level)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}
