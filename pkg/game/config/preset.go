package config

import (
	"bytes"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"dungeongen/pkg/errors"
)

// Modules names the registered strategies a preset wants wired
type Modules struct {
	RoomPlacer     string   `yaml:"room_placer"`
	Connector      string   `yaml:"connector"`
	PostProcessors []string `yaml:"post_processors"`
}

// ThemeTiles names the tile identifiers used by painters
type ThemeTiles struct {
	Floor string `yaml:"floor"`
	Wall  string `yaml:"wall"`
}

// Preset is a saved set of generation parameters, module choices and theme
type Preset struct {
	Name       string     `yaml:"name"`
	Generation Config     `yaml:"generation"`
	Modules    Modules    `yaml:"modules"`
	Theme      ThemeTiles `yaml:"theme"`
}

// DefaultPreset returns the preset used when no file is given
func DefaultPreset() Preset {
	return Preset{
		Name:       "default",
		Generation: Default(),
		Modules: Modules{
			RoomPlacer:     "start-hub",
			Connector:      "l-shaped",
			PostProcessors: []string{"breakables", "special-rooms"},
		},
		Theme: ThemeTiles{
			Floor: "floor",
			Wall:  "wall",
		},
	}
}

// ParsePreset decodes YAML over DefaultPreset, so omitted keys keep their defaults.
// Unknown keys are rejected.
func ParsePreset(data []byte) (*Preset, error) {
	p := DefaultPreset()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&p); err != nil && err != io.EOF {
		return nil, errors.InvalidArgumentf("malformed preset: %v", err)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &p, nil
}

// LoadPreset reads and decodes a preset file
func LoadPreset(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFoundf("preset %s not found", path)
		}
		return nil, errors.Wrapf(err, "failed to read preset %s", path)
	}

	p, err := ParsePreset(data)
	if err != nil {
		return nil, errors.Wrapf(err, "preset %s", path)
	}
	return p, nil
}

// Validate checks the generation parameters and the theme
func (p *Preset) Validate() error {
	vb := errors.NewValidationBuilder()
	if err := p.Generation.Validate(); err != nil {
		if fields, ok := errors.GetMeta(err)["validation_errors"].(map[string][]string); ok {
			for field, msgs := range fields {
				for _, msg := range msgs {
					vb.Field("generation."+field, msg)
				}
			}
		}
	}
	errors.ValidateRequired("theme.floor", p.Theme.Floor, vb)
	errors.ValidateRequired("theme.wall", p.Theme.Wall, vb)
	errors.ValidateRequired("modules.room_placer", p.Modules.RoomPlacer, vb)
	errors.ValidateRequired("modules.connector", p.Modules.Connector, vb)
	return vb.Build()
}
