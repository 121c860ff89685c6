package octree

import (
	"math"

	"github.com/go-viper/mapstructure/v2"
	"github.com/golang/geo/r3"
	"github.com/invopop/jsonschema"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// Config describes the region a ResizingPointerOctree starts out with.
type Config struct {
	Level  int       `json:"level"`
	Center []float64 `json:"center,omitempty"`
}

// ConfigSchema is the JSON schema of Config, for editors and tools that check attribute
// documents before they are decoded.
var ConfigSchema = jsonschema.Reflect(&Config{})

// NewConfigFromAttributes decodes and validates a config from an attribute map, such as one
// read from a JSON or YAML document.
func NewConfigFromAttributes(attrs map[string]interface{}) (*Config, error) {
	var conf Config
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           &conf,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(attrs); err != nil {
		return nil, errors.Wrap(err, "error decoding octree config")
	}
	if err := conf.Validate("octree"); err != nil {
		return nil, err
	}
	return &conf, nil
}

// Validate returns every problem with the config. path names the config in the errors.
func (cfg *Config) Validate(path string) error {
	var err error
	if levelErr := checkLevel(cfg.Level); levelErr != nil {
		err = multierr.Append(err, errors.Wrapf(levelErr, "%s.level", path))
	}
	if cfg.Center != nil && len(cfg.Center) != 3 {
		err = multierr.Append(err, errors.Errorf("%s.center: expected 3 coordinates, got %d", path, len(cfg.Center)))
	}
	for i, v := range cfg.Center {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			err = multierr.Append(err, errors.Errorf("%s.center[%d]: coordinate must be finite", path, i))
		}
	}
	return err
}

// Region returns the initial region described by the config. A missing center is the origin.
func (cfg *Config) Region() (CenteredLeveledRegion, error) {
	if err := cfg.Validate("octree"); err != nil {
		return CenteredLeveledRegion{}, err
	}
	var center r3.Vector
	if cfg.Center != nil {
		center = r3.Vector{X: cfg.Center[0], Y: cfg.Center[1], Z: cfg.Center[2]}
	}
	return NewCenteredLeveledRegion(cfg.Level, center)
}
