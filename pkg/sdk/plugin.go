// Package sdk defines the contract between the monitoring host and an
// event-source plugin: registration metadata, the fixed call table the
// host drives, the lifecycle state machine and the error/status surface
// of the boundary.
package sdk

import "firestige.xyz/gensource/pkg/event"

// Capability names a host-visible plugin capability.
type Capability string

const (
	// CapabilitySourcing marks a plugin that produces event batches.
	CapabilitySourcing Capability = "sourcing"
	// CapabilityExtraction marks a plugin that resolves named fields
	// from its own events.
	CapabilityExtraction Capability = "extraction"
)

// FieldType is the host-side type of an extractable field.
type FieldType string

const (
	FieldTypeInt64 FieldType = "int64"
)

// FieldDescriptor declares one extractable field. The declared field
// list is static for the lifetime of a loaded plugin.
type FieldDescriptor struct {
	Name        string
	Type        FieldType
	Description string
}

// Info is the registration metadata the host reads once at load time.
type Info struct {
	Name        string
	Version     string
	Description string
	Contact     string

	// EventSource is the source identifier the host's rule-matching
	// layer uses to route rules to events from this plugin.
	EventSource string

	Capabilities []Capability
}

// Plugin is the fixed call table the host drives across the plugin
// boundary. The host issues one logical call sequence per instance:
// Init, Open, any number of NextBatch and Extract, Close, Destroy.
// Implementations enforce that ordering through the lifecycle state
// machine (see Transition) and fail misordered calls with
// ErrInvalidOrder or ErrDestroyed.
type Plugin interface {
	Info() Info
	Fields() []FieldDescriptor

	// Init parses and applies the text configuration payload. On
	// failure the instance stays uninitialized and Init may be retried
	// with a corrected payload.
	Init(config string) error

	// Open starts a capture session.
	Open() error

	// NextBatch fills b up to its capacity and returns the number of
	// events appended.
	NextBatch(b *event.Batch) (int, error)

	// Extract resolves the named field on an event previously produced
	// by NextBatch. Extraction is read-only and safe for concurrent
	// use; it may run zero or many times per event, in any order.
	Extract(ev event.View, field string) (int64, error)

	// Close ends the capture session. The configuration survives, so a
	// closed instance may be re-opened without a new Init.
	Close() error

	// Destroy releases the instance. No call is valid afterwards.
	Destroy() error
}
