package generator

import (
	"sort"

	"dungeongen/pkg/errors"
)

// Registry maps strategy names to implementations so presets can select them by name
type Registry struct {
	placers    map[string]RoomPlacer
	connectors map[string]CorridorConnector
}

// NewRegistry returns a registry holding the built-in strategies
func NewRegistry() *Registry {
	reg := &Registry{
		placers:    make(map[string]RoomPlacer),
		connectors: make(map[string]CorridorConnector),
	}
	reg.placers[StartHub.Name()] = StartHub
	reg.connectors[LShaped.Name()] = LShaped
	return reg
}

// RegisterRoomPlacer adds a placer. Names must be unique.
func (r *Registry) RegisterRoomPlacer(p RoomPlacer) error {
	if p == nil {
		return errors.InvalidArgument("room placer is required")
	}
	if _, exists := r.placers[p.Name()]; exists {
		return errors.InvalidArgumentf("room placer %q already registered", p.Name())
	}
	r.placers[p.Name()] = p
	return nil
}

// RegisterConnector adds a corridor connector. Names must be unique.
func (r *Registry) RegisterConnector(c CorridorConnector) error {
	if c == nil {
		return errors.InvalidArgument("corridor connector is required")
	}
	if _, exists := r.connectors[c.Name()]; exists {
		return errors.InvalidArgumentf("corridor connector %q already registered", c.Name())
	}
	r.connectors[c.Name()] = c
	return nil
}

// RoomPlacer looks up a placer by name
func (r *Registry) RoomPlacer(name string) (RoomPlacer, error) {
	p, ok := r.placers[name]
	if !ok {
		return nil, errors.NotFoundf("room placer %q not registered", name)
	}
	return p, nil
}

// Connector looks up a corridor connector by name
func (r *Registry) Connector(name string) (CorridorConnector, error) {
	c, ok := r.connectors[name]
	if !ok {
		return nil, errors.NotFoundf("corridor connector %q not registered", name)
	}
	return c, nil
}

// RoomPlacerNames returns the registered placer names in sorted order
func (r *Registry) RoomPlacerNames() []string {
	return sortedKeys(r.placers)
}

// ConnectorNames returns the registered connector names in sorted order
func (r *Registry) ConnectorNames() []string {
	return sortedKeys(r.connectors)
}

func sortedKeys[V any](m map[string]V) []string {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
