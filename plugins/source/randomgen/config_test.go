package randomgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseConfig(t *testing.T) {
	cases := []struct {
		name    string
		raw     string
		want    Config
		wantErr error
	}{
		{"yaml form", "range: 100", Config{Range: 100}, nil},
		{"json form", `{"range": 100}`, Config{Range: 100}, nil},
		{"with seed", "range: 10\nseed: 42", Config{Range: 10, Seed: 42, FixedSeed: true}, nil},
		{"seed zero is still fixed", "range: 10\nseed: 0", Config{Range: 10, Seed: 0, FixedSeed: true}, nil},
		{"empty payload", "", Config{}, ErrMissingRange},
		{"range absent", "seed: 1", Config{}, ErrMissingRange},
		{"range zero", "range: 0", Config{}, ErrInvalidRange},
		{"range negative", "range: -5", Config{}, ErrInvalidRange},
		{"range non-numeric", "range: lots", Config{}, ErrInvalidRange},
		{"payload not key-value", "[1, 2, 3]", Config{}, ErrInvalidRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parseConfig(tc.raw)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
