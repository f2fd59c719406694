package host

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"firestige.xyz/gensource/internal/config"
	"firestige.xyz/gensource/plugins/source/randomgen"

	// Register built-in plugins.
	_ "firestige.xyz/gensource/plugins"
)

func TestDriver_RunPersistsHistogram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.db")
	src := config.SourceConfig{
		Plugin:  randomgen.Name,
		Options: "range: 5\nseed: 3",
	}
	drv := config.DriverConfig{
		BatchSize: 8,
		Batches:   2,
		Store:     config.StoreConfig{Enabled: true, Path: path},
	}

	require.NoError(t, NewDriver(src, drv).Run(context.Background()))

	s, err := OpenStore(path)
	require.NoError(t, err)
	defer s.Close()

	hist, err := s.Snapshot()
	require.NoError(t, err)

	var total uint64
	for v, n := range hist {
		assert.GreaterOrEqual(t, v, int64(0))
		assert.Less(t, v, int64(5))
		total += n
	}
	assert.Equal(t, uint64(16), total, "2 batches of 8 extracted events")
}

func TestDriver_RunWithoutStore(t *testing.T) {
	src := config.SourceConfig{Plugin: randomgen.Name, Options: "range: 100"}
	drv := config.DriverConfig{BatchSize: 4, Batches: 1}

	assert.NoError(t, NewDriver(src, drv).Run(context.Background()))
}

func TestDriver_UnknownPlugin(t *testing.T) {
	src := config.SourceConfig{Plugin: "no_such_plugin"}

	err := NewDriver(src, config.DriverConfig{Batches: 1}).Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "not registered")
}

func TestDriver_InitFailureSurfacesMessage(t *testing.T) {
	src := config.SourceConfig{Plugin: randomgen.Name, Options: "range: 0"}

	err := NewDriver(src, config.DriverConfig{Batches: 1}).Run(context.Background())
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "range")
}

func TestDriver_CancelledContextStopsCleanly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	src := config.SourceConfig{Plugin: randomgen.Name, Options: "range: 10"}
	// Batches 0 = run until cancelled; the pre-cancelled context must
	// stop the loop before the first batch.
	assert.NoError(t, NewDriver(src, config.DriverConfig{BatchSize: 4}).Run(ctx))
}
