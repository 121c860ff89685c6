package octree

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/golang/geo/r3"
	"go.uber.org/multierr"
	"go.viam.com/test"
)

func TestNewConfigFromAttributes(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg, err := NewConfigFromAttributes(map[string]interface{}{
			"level":  3,
			"center": []interface{}{1.5, -2, 0},
		})
		test.That(t, err, test.ShouldBeNil)
		test.That(t, cfg, test.ShouldResemble, &Config{Level: 3, Center: []float64{1.5, -2, 0}})

		region, err := cfg.Region()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, region.Level(), test.ShouldEqual, 3)
		test.That(t, region.Center(), test.ShouldResemble, r3.Vector{X: 1.5, Y: -2, Z: 0})
	})

	t.Run("defaults to the origin", func(t *testing.T) {
		cfg, err := NewConfigFromAttributes(map[string]interface{}{"level": "-2"})
		test.That(t, err, test.ShouldBeNil)
		region, err := cfg.Region()
		test.That(t, err, test.ShouldBeNil)
		test.That(t, region.Level(), test.ShouldEqual, -2)
		test.That(t, region.Center(), test.ShouldResemble, r3.Vector{})
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := NewConfigFromAttributes(map[string]interface{}{"level": 1, "radius": 4})
		test.That(t, err, test.ShouldNotBeNil)
	})

	t.Run("every problem is reported", func(t *testing.T) {
		_, err := NewConfigFromAttributes(map[string]interface{}{
			"level":  5000,
			"center": []interface{}{1, 2},
		})
		test.That(t, err, test.ShouldNotBeNil)
		test.That(t, len(multierr.Errors(err)), test.ShouldEqual, 2)
		test.That(t, err.Error(), test.ShouldContainSubstring, "octree.level")
		test.That(t, err.Error(), test.ShouldContainSubstring, "octree.center")
	})
}

func TestConfigValidate(t *testing.T) {
	test.That(t, (&Config{}).Validate("path"), test.ShouldBeNil)
	test.That(t, (&Config{Level: MaxLevel, Center: []float64{0, 0, 0}}).Validate("path"), test.ShouldBeNil)

	err := (&Config{Level: MinLevel - 1, Center: []float64{0, math.NaN(), 0}}).Validate("path")
	test.That(t, len(multierr.Errors(err)), test.ShouldEqual, 2)
	test.That(t, err.Error(), test.ShouldContainSubstring, "path.center[1]")

	_, err = (&Config{Center: []float64{1}}).Region()
	test.That(t, err, test.ShouldNotBeNil)
}

func TestConfigSchema(t *testing.T) {
	test.That(t, ConfigSchema, test.ShouldNotBeNil)
	data, err := json.Marshal(ConfigSchema)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, string(data), test.ShouldContainSubstring, `"level"`)
	test.That(t, string(data), test.ShouldContainSubstring, `"center"`)
}
