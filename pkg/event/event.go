// Package event implements the host's event-batch wire format.
//
// Each event is one frame; all integers are little-endian:
//
//	Offset  Size  Description
//	------  ----  -----------
//	0       8     Sequence number (uint64, monotonic per session)
//	8       8     Timestamp, nanoseconds since the Unix epoch
//	              (uint64, TimestampUnknown = producer has no clock)
//	16      4     Payload length (uint32)
//	20      …     Payload
//
// The host parses this header without any plugin involvement, so the
// payload length field must match the actual payload exactly.
package event

import (
	"encoding/binary"
	"errors"
	"fmt"
)

const (
	// HeaderLen is the fixed frame overhead before the payload.
	HeaderLen = 20

	// TimestampUnknown marks an event whose producer supplied no
	// timestamp.
	TimestampUnknown = ^uint64(0)
)

var (
	// ErrBatchFull reports an Add past the batch capacity. Given a
	// generator that always produces, this is a caller contract
	// violation, not an expected runtime condition.
	ErrBatchFull = errors.New("batch capacity exceeded")

	// ErrTruncated reports a frame shorter than its fixed header.
	ErrTruncated = errors.New("truncated event frame")

	// ErrLengthMismatch reports a frame whose header length field does
	// not match the bytes actually present.
	ErrLengthMismatch = errors.New("frame length mismatch")
)

// View is a read-only window over one encoded event frame. Views stay
// valid until the batch they were taken from is reset or discarded.
type View []byte

// Seq returns the per-session sequence number.
func (v View) Seq() uint64 {
	return binary.LittleEndian.Uint64(v[0:8])
}

// Timestamp returns the event timestamp in nanoseconds since the Unix
// epoch, or TimestampUnknown.
func (v View) Timestamp() uint64 {
	return binary.LittleEndian.Uint64(v[8:16])
}

// Payload returns the raw payload bytes. The slice aliases the frame;
// callers must not modify it.
func (v View) Payload() []byte {
	n := binary.LittleEndian.Uint32(v[16:HeaderLen])
	return v[HeaderLen : HeaderLen+int(n)]
}

// Decode validates buf as exactly one complete frame.
func Decode(buf []byte) (View, error) {
	if len(buf) < HeaderLen {
		return nil, fmt.Errorf("%d byte frame: %w", len(buf), ErrTruncated)
	}
	n := binary.LittleEndian.Uint32(buf[16:HeaderLen])
	if len(buf) != HeaderLen+int(n) {
		return nil, fmt.Errorf("header declares %d payload bytes, frame carries %d: %w",
			n, len(buf)-HeaderLen, ErrLengthMismatch)
	}
	return View(buf), nil
}
