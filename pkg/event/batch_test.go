package event

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBatch_AddAndReadBack(t *testing.T) {
	b := NewBatch(4)
	assert.Equal(t, 0, b.Len())
	assert.Equal(t, 4, b.Cap())

	for i := 0; i < 3; i++ {
		payload := make([]byte, 8)
		binary.LittleEndian.PutUint64(payload, uint64(100+i))
		require.NoError(t, b.Add(uint64(i), uint64(1000+i), payload))
	}
	require.Equal(t, 3, b.Len())

	for i := 0; i < 3; i++ {
		ev, err := Decode(b.Event(i))
		require.NoError(t, err, "every emitted frame must be self-consistent")
		assert.Equal(t, uint64(i), ev.Seq())
		assert.Equal(t, uint64(1000+i), ev.Timestamp())
		assert.Equal(t, uint64(100+i), binary.LittleEndian.Uint64(ev.Payload()))
	}
}

func TestBatch_CapacityExceeded(t *testing.T) {
	b := NewBatch(2)
	require.NoError(t, b.Add(0, 0, []byte{1}))
	require.NoError(t, b.Add(1, 0, []byte{2}))

	err := b.Add(2, 0, []byte{3})
	assert.ErrorIs(t, err, ErrBatchFull)
	assert.Equal(t, 2, b.Len(), "failed add must not grow the batch")
}

func TestBatch_ZeroLengthIsValid(t *testing.T) {
	b := NewBatch(8)
	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Bytes())
}

func TestBatch_VariablePayloadOffsets(t *testing.T) {
	b := NewBatch(3)
	require.NoError(t, b.Add(0, 0, []byte("a")))
	require.NoError(t, b.Add(1, 0, []byte("long-payload")))
	require.NoError(t, b.Add(2, 0, nil))

	ev0, err := Decode(b.Event(0))
	require.NoError(t, err)
	ev1, err := Decode(b.Event(1))
	require.NoError(t, err)
	ev2, err := Decode(b.Event(2))
	require.NoError(t, err)

	assert.Equal(t, []byte("a"), ev0.Payload())
	assert.Equal(t, []byte("long-payload"), ev1.Payload())
	assert.Empty(t, ev2.Payload())
}

func TestBatch_Reset(t *testing.T) {
	b := NewBatch(2)
	require.NoError(t, b.Add(0, 0, []byte{1}))
	b.Reset()

	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Bytes())

	// Capacity is preserved across resets.
	require.NoError(t, b.Add(0, 0, []byte{1}))
	require.NoError(t, b.Add(1, 0, []byte{2}))
	assert.ErrorIs(t, b.Add(2, 0, []byte{3}), ErrBatchFull)
}

func TestNewBatch_DefaultCapacity(t *testing.T) {
	assert.Equal(t, DefaultCapacity, NewBatch(0).Cap())
	assert.Equal(t, DefaultCapacity, NewBatch(-1).Cap())
}
