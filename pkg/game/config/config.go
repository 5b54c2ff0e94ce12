// Package config holds the generation parameters for one dungeon run.
package config

import (
	"fmt"

	"dungeongen/pkg/errors"
)

// SeedMode selects how the random seed is derived
type SeedMode string

const (
	// SeedModeFixed derives the seed from the Seed string
	SeedModeFixed SeedMode = "fixed"
	// SeedModeRandom draws a fresh seed on every run
	SeedModeRandom SeedMode = "random"
)

// Minimum grid dimension accepted by Validate
const MinDimension = 8

// Size is a width/height pair in cells
type Size struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// Config is the full set of generation parameters
type Config struct {
	Width             int      `yaml:"width"`
	Height            int      `yaml:"height"`
	RoomCount         int      `yaml:"room_count"`
	RoomSizeMin       int      `yaml:"room_size_min"`
	RoomSizeMax       int      `yaml:"room_size_max"`
	PlacementAttempts int      `yaml:"placement_attempts"`
	CorridorWidth     int      `yaml:"corridor_width"`
	StartRoomSize     Size     `yaml:"start_room_size"`
	RoomPadding       int      `yaml:"room_padding"`
	Seed              string   `yaml:"seed"`
	SeedMode          SeedMode `yaml:"seed_mode"`
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Width:             80,
		Height:            50,
		RoomCount:         12,
		RoomSizeMin:       6,
		RoomSizeMax:       12,
		PlacementAttempts: 200,
		CorridorWidth:     1,
		StartRoomSize:     Size{W: 10, H: 8},
		RoomPadding:       1,
		Seed:              "my-seed-001",
		SeedMode:          SeedModeFixed,
	}
}

// Validate reports every invalid field at once as an invalid argument error
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateMin("width", c.Width, MinDimension, vb)
	errors.ValidateMin("height", c.Height, MinDimension, vb)
	errors.ValidateMin("room_count", c.RoomCount, 1, vb)
	errors.ValidateMin("room_size_min", c.RoomSizeMin, 1, vb)
	errors.ValidateMin("room_size_max", c.RoomSizeMax, 1, vb)
	if c.RoomSizeMin > c.RoomSizeMax {
		vb.Fieldf("room_size_min", "must not exceed room_size_max (%d)", c.RoomSizeMax)
	}
	errors.ValidateMin("placement_attempts", c.PlacementAttempts, 1, vb)
	errors.ValidateMin("corridor_width", c.CorridorWidth, 1, vb)
	errors.ValidateMin("room_padding", c.RoomPadding, 0, vb)
	errors.ValidateMin("start_room_size.w", c.StartRoomSize.W, 1, vb)
	errors.ValidateMin("start_room_size.h", c.StartRoomSize.H, 1, vb)
	errors.ValidateEnum("seed_mode", string(c.SeedMode), []string{string(SeedModeFixed), string(SeedModeRandom)}, vb)

	return vb.Build()
}

// String summarises the configuration for logs
func (c Config) String() string {
	return fmt.Sprintf("%dx%d rooms=%d size=%d..%d attempts=%d corridor=%d start=%dx%d padding=%d seed=%q mode=%s",
		c.Width, c.Height, c.RoomCount, c.RoomSizeMin, c.RoomSizeMax, c.PlacementAttempts,
		c.CorridorWidth, c.StartRoomSize.W, c.StartRoomSize.H, c.RoomPadding, c.Seed, c.SeedMode)
}
