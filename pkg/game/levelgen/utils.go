package levelgen

import (
	"context"
	"sort"

	"dungeongen/pkg/engine/world"
	"dungeongen/pkg/errors"
	"dungeongen/pkg/game/placement"
)

// place asks the placer for one archetype instance at cell
func place(ctx context.Context, in *Input, archetype string, cell world.Point) error {
	req := placement.Request{
		Archetype: archetype,
		Cell:      cell,
		Position:  in.Transform.CellCenter(cell),
		Parent:    in.Parent,
	}
	if err := in.Placer.Place(ctx, req); err != nil {
		return errors.Wrapf(err, "failed to place %s at (%d,%d)", archetype, cell.X, cell.Y)
	}
	return nil
}

// farthestTwo returns the indexes of the room centers farthest and second
// farthest from start, skipping index 0. Ties keep the first room seen.
// ok is false when fewer than two candidate rooms exist.
func farthestTwo(centers []world.Point, start world.Point) (first, second int, ok bool) {
	if len(centers) < 3 {
		return 0, 0, false
	}

	first, second = -1, -1
	best, runnerUp := -1.0, -1.0
	for i := 1; i < len(centers); i++ {
		d := centers[i].DistanceTo(start)
		if d > best {
			second, runnerUp = first, best
			first, best = i, d
		} else if d > runnerUp {
			second, runnerUp = i, d
		}
	}
	return first, second, true
}

// Registry maps post-processor names to implementations
type Registry struct {
	processors map[string]PostProcessor
}

// NewRegistry returns a registry holding the built-in post-processors
func NewRegistry() *Registry {
	reg := &Registry{processors: make(map[string]PostProcessor)}
	reg.processors[DefaultBreakables.Name()] = DefaultBreakables
	reg.processors[DefaultSpecialRooms.Name()] = DefaultSpecialRooms
	return reg
}

// Register adds a post-processor. Names must be unique.
func (r *Registry) Register(p PostProcessor) error {
	if p == nil {
		return errors.InvalidArgument("post-processor is required")
	}
	if _, exists := r.processors[p.Name()]; exists {
		return errors.InvalidArgumentf("post-processor %q already registered", p.Name())
	}
	r.processors[p.Name()] = p
	return nil
}

// Lookup resolves names in order. The first unknown name is reported as not found.
func (r *Registry) Lookup(names ...string) ([]PostProcessor, error) {
	out := make([]PostProcessor, 0, len(names))
	for _, name := range names {
		p, ok := r.processors[name]
		if !ok {
			return nil, errors.NotFoundf("post-processor %q not registered", name)
		}
		out = append(out, p)
	}
	return out, nil
}

// Names returns the registered names in sorted order
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.processors))
	for name := range r.processors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
