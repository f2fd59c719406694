package event

import (
	"encoding/binary"
	"fmt"
)

// DefaultCapacity bounds the latency of a single generation call when
// the host does not negotiate its own batch size.
const DefaultCapacity = 128

// Batch accumulates encoded events for one generation call. Frames are
// packed into one contiguous buffer; the offset table keeps per-event
// access O(1). Ownership of the buffer passes to the host for the
// duration of one batch-processing cycle, after which Reset reclaims it.
//
// A zero-length batch is valid and decodes to no events.
type Batch struct {
	buf      []byte
	offsets  []int
	capacity int
}

// NewBatch allocates a batch holding up to capacity events. A
// non-positive capacity falls back to DefaultCapacity.
func NewBatch(capacity int) *Batch {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Batch{
		buf:      make([]byte, 0, capacity*(HeaderLen+8)),
		offsets:  make([]int, 0, capacity),
		capacity: capacity,
	}
}

// Add appends one frame. It fails with ErrBatchFull once Len() == Cap().
func (b *Batch) Add(seq, ts uint64, payload []byte) error {
	if len(b.offsets) >= b.capacity {
		return fmt.Errorf("%d events: %w", b.capacity, ErrBatchFull)
	}
	b.offsets = append(b.offsets, len(b.buf))

	var hdr [HeaderLen]byte
	binary.LittleEndian.PutUint64(hdr[0:8], seq)
	binary.LittleEndian.PutUint64(hdr[8:16], ts)
	binary.LittleEndian.PutUint32(hdr[16:HeaderLen], uint32(len(payload)))
	b.buf = append(b.buf, hdr[:]...)
	b.buf = append(b.buf, payload...)
	return nil
}

// Len returns the number of events currently in the batch.
func (b *Batch) Len() int { return len(b.offsets) }

// Cap returns the negotiated event capacity.
func (b *Batch) Cap() int { return b.capacity }

// Event returns the i-th frame. Callers must bound i by Len().
func (b *Batch) Event(i int) View {
	start := b.offsets[i]
	end := len(b.buf)
	if i+1 < len(b.offsets) {
		end = b.offsets[i+1]
	}
	return View(b.buf[start:end])
}

// Bytes exposes the packed frames, e.g. for handing the whole batch to
// the host in one copy.
func (b *Batch) Bytes() []byte { return b.buf }

// Reset clears the batch for reuse. Views taken before the reset become
// invalid.
func (b *Batch) Reset() {
	b.buf = b.buf[:0]
	b.offsets = b.offsets[:0]
}
