package levelgen

import (
	"context"
)

// SpecialRooms marks the room farthest from the start as the boss room and
// the runner-up as the trophy room.
type SpecialRooms struct {
	BossArchetype   string
	TrophyArchetype string
}

// Name returns the name of this post-processor
func (s *SpecialRooms) Name() string {
	return "special-rooms"
}

// PostProcess places the boss marker, then the trophy marker, at the chosen
// room centers. It does nothing unless at least two rooms besides the start exist.
func (s *SpecialRooms) PostProcess(ctx context.Context, in *Input) error {
	centers := in.Grid.RoomCenters()
	boss, trophy, ok := farthestTwo(centers, in.Grid.StartCell())
	if !ok {
		return nil
	}

	if err := place(ctx, in, s.BossArchetype, centers[boss]); err != nil {
		return err
	}
	return place(ctx, in, s.TrophyArchetype, centers[trophy])
}
