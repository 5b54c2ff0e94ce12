package generator

import (
	"dungeongen/pkg/engine/rng"
	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/game/config"
)

// minStartRoomSide is the smallest side the start room is clamped to
const minStartRoomSide = 4

// StartHubPlacer places a fixed-size start room at the grid center, then
// scatters randomly sized rooms by rejection sampling.
type StartHubPlacer struct{}

// Name returns the name of this placer
func (p *StartHubPlacer) Name() string {
	return "start-hub"
}

// PlaceRooms places the start room and up to cfg.RoomCount-1 more rooms.
// Running out of attempts before reaching the target is not an error.
func (p *StartHubPlacer) PlaceRooms(grid *world.Grid, cfg *config.Config, r *rng.Source) {
	w, h := grid.Width(), grid.Height()

	grid.AddRoom(startRoom(w, h, cfg.StartRoomSize))

	placed := []world.Rect{grid.Rooms()[0].Pad(cfg.RoomPadding)}
	for attempts := 0; grid.RoomCount() < cfg.RoomCount && attempts < cfg.PlacementAttempts; attempts++ {
		rw := r.Range(cfg.RoomSizeMin, cfg.RoomSizeMax+1)
		rh := r.Range(cfg.RoomSizeMin, cfg.RoomSizeMax+1)
		x := r.Range(1, max(2, w-rw-1))
		y := r.Range(1, max(2, h-rh-1))
		candidate := world.Rect{X: x, Y: y, W: rw, H: rh}

		// Keep a one cell border on the far edges
		if candidate.XMax() > w-1 || candidate.YMax() > h-1 {
			continue
		}

		padded := candidate.Pad(cfg.RoomPadding)
		if overlapsAny(padded, placed) {
			continue
		}

		grid.AddRoom(candidate)
		placed = append(placed, padded)
	}
}

// startRoom sizes and centres the start room, leaving at least one border cell
func startRoom(w, h int, size config.Size) world.Rect {
	sw := clamp(size.W, minStartRoomSide, max(minStartRoomSide, w-minStartRoomSide))
	sh := clamp(size.H, minStartRoomSide, max(minStartRoomSide, h-minStartRoomSide))
	return world.Rect{
		X: clamp(w/2-sw/2, 1, w-sw-1),
		Y: clamp(h/2-sh/2, 1, h-sh-1),
		W: sw,
		H: sh,
	}
}

func overlapsAny(r world.Rect, others []world.Rect) bool {
	for _, o := range others {
		if r.Overlaps(o) {
			return true
		}
	}
	return false
}
