package host

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_MergeAccumulates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.db")

	s, err := OpenStore(path)
	require.NoError(t, err)

	require.NoError(t, s.Merge(map[int64]uint64{3: 2, 7: 1}))
	require.NoError(t, s.Merge(map[int64]uint64{3: 1, 9: 4}))

	got, err := s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, map[int64]uint64{3: 3, 7: 1, 9: 4}, got)
	require.NoError(t, s.Close())

	// Counts survive reopen.
	s, err = OpenStore(path)
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Merge(map[int64]uint64{9: 1}))
	got, err = s.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, uint64(5), got[9])
}

func TestStore_EmptyMergeAndSnapshot(t *testing.T) {
	s, err := OpenStore(filepath.Join(t.TempDir(), "hist.db"))
	require.NoError(t, err)
	defer s.Close()

	require.NoError(t, s.Merge(nil))

	got, err := s.Snapshot()
	require.NoError(t, err)
	assert.Empty(t, got)
}
