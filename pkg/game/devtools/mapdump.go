// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/errors"
	"dungeongen/pkg/game/dungeon"
	"dungeongen/pkg/game/placement"
	"dungeongen/pkg/game/renderer"
)

// DefaultDumpFilename is used when DumpToFile is given an empty path
const DefaultDumpFilename = "map.txt"

// Marker symbols for known archetypes
var archetypeSymbols = map[string]rune{
	"breakable":     'b',
	"boss-marker":   'B',
	"trophy-marker": 'T',
}

// cellSymbol returns the single-character symbol for a cell without overlays
func cellSymbol(v world.View, x, y int) rune {
	switch renderer.Classify(v, x, y) {
	case renderer.TileFloor:
		return '.'
	case renderer.TileWall:
		return '#'
	default:
		return ' '
	}
}

// writeMapGrid writes the grid north up, with room centers, placements and
// the start cell drawn over the tiles in that order.
func writeMapGrid(w *bufio.Writer, d *dungeon.Dungeon, placements []placement.Request) {
	overlay := make(map[world.Point]rune)
	for _, c := range d.RoomCenters() {
		overlay[c] = 'R'
	}
	for _, req := range placements {
		sym, ok := archetypeSymbols[req.Archetype]
		if !ok {
			sym = '*'
		}
		overlay[req.Cell] = sym
	}
	overlay[d.StartCell()] = 'S'

	grid := d.Grid()
	for y := d.Height() - 1; y >= 0; y-- {
		for x := 0; x < d.Width(); x++ {
			sym, ok := overlay[world.Point{X: x, Y: y}]
			if !ok {
				sym = cellSymbol(grid, x, y)
			}
			w.WriteRune(sym)
		}
		w.WriteByte('\n')
	}
}

// WriteDump writes the debug dump: metadata, legend, map, rooms and placements.
// Format is human-readable (sections, key: value, consistent structure).
// Output is buffered; the first write error is returned once the buffer is flushed.
func WriteDump(out io.Writer, d *dungeon.Dungeon, placements []placement.Request) error {
	if d == nil {
		return errors.InvalidArgument("dungeon is required")
	}
	w := bufio.NewWriter(out)

	cfg := d.Config
	offset := d.Offset()
	start := d.StartCell()
	startWorld := d.StartWorldPosition()

	// --- Metadata ---
	fmt.Fprintln(w, "=== MAP DUMP DEBUG (layout, rooms, placements) ===")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "--- Metadata ---")
	fmt.Fprintf(w, "dungeon_id: %s\n", d.ID)
	fmt.Fprintf(w, "seed: %d\n", d.Seed)
	fmt.Fprintf(w, "seed_source: %s\n", d.SeedSource)
	fmt.Fprintf(w, "seed_string: %q\n", cfg.Seed)
	fmt.Fprintf(w, "seed_mode: %s\n", cfg.SeedMode)
	fmt.Fprintf(w, "grid_width: %d\n", d.Width())
	fmt.Fprintf(w, "grid_height: %d\n", d.Height())
	fmt.Fprintf(w, "coordinate_system: x,y (0-based, y grows north; map printed north up)\n")
	fmt.Fprintf(w, "paint_offset: %d,%d\n", offset.X, offset.Y)
	fmt.Fprintf(w, "start_cell: %d,%d\n", start.X, start.Y)
	fmt.Fprintf(w, "start_world: %.1f,%.1f\n", startWorld.X, startWorld.Y)
	fmt.Fprintf(w, "rooms_placed: %d\n", len(d.Rooms()))
	fmt.Fprintf(w, "rooms_target: %d\n", cfg.RoomCount)
	fmt.Fprintf(w, "corridor_width: %d\n", cfg.CorridorWidth)
	fmt.Fprintln(w, "")

	// --- Legend ---
	fmt.Fprintln(w, "--- Legend (cell symbols) ---")
	fmt.Fprintln(w, ". = floor  # = wall  S = start  R = room center  B = boss marker  T = trophy marker  b = breakable  * = other placement")
	fmt.Fprintln(w, "")

	// --- Map ---
	fmt.Fprintln(w, "--- Map ---")
	writeMapGrid(w, d, placements)
	fmt.Fprintln(w, "")

	// --- Rooms ---
	fmt.Fprintln(w, "--- Rooms (index 0 is the start room) ---")
	centers := d.RoomCenters()
	for i, r := range d.Rooms() {
		fmt.Fprintf(w, "  index: %d x: %d y: %d w: %d h: %d center: %d,%d\n", i, r.X, r.Y, r.W, r.H, centers[i].X, centers[i].Y)
	}
	fmt.Fprintln(w, "")

	// --- Placements: grouped by archetype, in request order ---
	fmt.Fprintln(w, "--- Placements ---")
	byArchetype := make(map[string][]placement.Request)
	for _, req := range placements {
		byArchetype[req.Archetype] = append(byArchetype[req.Archetype], req)
	}
	names := make([]string, 0, len(byArchetype))
	for name := range byArchetype {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "%s (%d):\n", name, len(byArchetype[name]))
		for _, req := range byArchetype[name] {
			fmt.Fprintf(w, "  cell: %d,%d world: %.1f,%.1f\n", req.Cell.X, req.Cell.Y, req.Position.X, req.Position.Y)
		}
	}
	if len(names) == 0 {
		fmt.Fprintln(w, "  (none)")
	}

	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "failed to write map dump")
	}
	return nil
}

// DumpToFile writes the debug dump to path (DefaultDumpFilename when empty)
// and returns the absolute path written.
func DumpToFile(path string, d *dungeon.Dungeon, placements []placement.Request) (string, error) {
	if path == "" {
		path = DefaultDumpFilename
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to resolve %s", path)
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", errors.Wrapf(err, "failed to create %s", absPath)
	}

	if err := WriteDump(f, d, placements); err != nil {
		f.Close()
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", errors.Wrapf(err, "failed to close %s", absPath)
	}
	return absPath, nil
}
