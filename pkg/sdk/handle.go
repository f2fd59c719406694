package sdk

import (
	"sync"

	"firestige.xyz/gensource/pkg/event"
)

// Handle is the opaque instance identifier the host holds instead of a
// language-level reference.
type Handle uint32

// instance pairs a plugin with the message of its last failed call.
// lastErr has its own lock so concurrent Extract calls never contend
// with state-mutating calls on the plugin itself.
type instance struct {
	plugin Plugin

	errMu   sync.Mutex
	lastErr string
}

func (in *instance) record(err error) Status {
	in.errMu.Lock()
	defer in.errMu.Unlock()

	if err == nil {
		in.lastErr = ""
	} else {
		in.lastErr = err.Error()
	}
	return StatusOf(err)
}

// Table is an arena of plugin instances indexed by opaque handles. It
// is the host-facing face of the plugin boundary: every method returns
// a Status, and the message for the last failed call on a handle stays
// retrievable through LastError until the next call on that handle.
//
// Destroyed instances keep their table entry so that later calls on the
// same handle report ErrDestroyed rather than an unknown handle.
type Table struct {
	mu        sync.Mutex
	next      Handle
	instances map[Handle]*instance
}

func NewTable() *Table {
	return &Table{instances: make(map[Handle]*instance)}
}

// Create allocates a handle for a fresh instance built by f.
func (t *Table) Create(f Factory) Handle {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.next++
	h := t.next
	t.instances[h] = &instance{plugin: f()}
	return h
}

func (t *Table) lookup(h Handle) (*instance, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	in, ok := t.instances[h]
	return in, ok
}

// LastError returns the message of the last failed call on h, or ""
// if the handle is unknown or its last call succeeded.
func (t *Table) LastError(h Handle) string {
	in, ok := t.lookup(h)
	if !ok {
		return ""
	}
	in.errMu.Lock()
	defer in.errMu.Unlock()
	return in.lastErr
}

// Info reports the registration metadata of the instance behind h.
func (t *Table) Info(h Handle) (Info, Status) {
	in, ok := t.lookup(h)
	if !ok {
		return Info{}, StatusFailure
	}
	return in.plugin.Info(), StatusSuccess
}

// Fields reports the declared field list of the instance behind h.
func (t *Table) Fields(h Handle) ([]FieldDescriptor, Status) {
	in, ok := t.lookup(h)
	if !ok {
		return nil, StatusFailure
	}
	return in.plugin.Fields(), StatusSuccess
}

func (t *Table) Init(h Handle, config string) Status {
	in, ok := t.lookup(h)
	if !ok {
		return StatusFailure
	}
	return in.record(in.plugin.Init(config))
}

func (t *Table) Open(h Handle) Status {
	in, ok := t.lookup(h)
	if !ok {
		return StatusFailure
	}
	return in.record(in.plugin.Open())
}

func (t *Table) NextBatch(h Handle, b *event.Batch) (int, Status) {
	in, ok := t.lookup(h)
	if !ok {
		return 0, StatusFailure
	}
	n, err := in.plugin.NextBatch(b)
	return n, in.record(err)
}

func (t *Table) Extract(h Handle, ev event.View, field string) (int64, Status) {
	in, ok := t.lookup(h)
	if !ok {
		return 0, StatusFailure
	}
	v, err := in.plugin.Extract(ev, field)
	return v, in.record(err)
}

func (t *Table) Close(h Handle) Status {
	in, ok := t.lookup(h)
	if !ok {
		return StatusFailure
	}
	return in.record(in.plugin.Close())
}

func (t *Table) Destroy(h Handle) Status {
	in, ok := t.lookup(h)
	if !ok {
		return StatusFailure
	}
	return in.record(in.plugin.Destroy())
}
