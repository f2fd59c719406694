package randomgen

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var (
	// ErrMissingRange reports an init payload without the required
	// "range" option.
	ErrMissingRange = errors.New(`missing required option "range"`)

	// ErrInvalidRange reports a "range" value that is not a positive
	// integer, or a payload that does not parse at all.
	ErrInvalidRange = errors.New(`option "range" must be a positive integer`)
)

// Config is the parsed initialization payload. Immutable once accepted.
type Config struct {
	// Range is the exclusive upper bound for generated values.
	Range int64

	// Seed makes the per-session sequence reproducible when FixedSeed
	// is set. Absent seed means a fresh entropy seed per session.
	Seed      int64
	FixedSeed bool
}

// parseConfig decodes the host-supplied text payload. The payload is a
// YAML/JSON key-value blob; "range" is required and must be positive.
// parseConfig is pure: no instance state is touched on failure.
func parseConfig(raw string) (Config, error) {
	var doc struct {
		Range *int64 `yaml:"range"`
		Seed  *int64 `yaml:"seed"`
	}
	if err := yaml.Unmarshal([]byte(raw), &doc); err != nil {
		return Config{}, fmt.Errorf("%w (%v)", ErrInvalidRange, err)
	}
	if doc.Range == nil {
		return Config{}, ErrMissingRange
	}
	if *doc.Range <= 0 {
		return Config{}, fmt.Errorf("%w, got %d", ErrInvalidRange, *doc.Range)
	}

	cfg := Config{Range: *doc.Range}
	if doc.Seed != nil {
		cfg.Seed = *doc.Seed
		cfg.FixedSeed = true
	}
	return cfg, nil
}
