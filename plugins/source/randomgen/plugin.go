// Package randomgen implements the random_generator event source: a
// plugin that emits a continuous stream of bounded random integers and
// exposes each value through the gen.num field.
package randomgen

import (
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"firestige.xyz/gensource/internal/log"
	"firestige.xyz/gensource/pkg/event"
	"firestige.xyz/gensource/pkg/sdk"
)

const (
	// Name is the registration name and the event-source identifier the
	// host's rule engine matches on.
	Name = "random_generator"

	// FieldNum is the single field this plugin declares.
	FieldNum = "gen.num"

	version     = "0.1.0"
	description = "generates a continuous stream of random numbers"
	contact     = "https://firestige.xyz/gensource"

	// payloadLen is the fixed width of the encoded value.
	payloadLen = 8
)

// Plugin is one host-visible instance. mu serializes the state-mutating
// calls (Init, Open, NextBatch, Close, Destroy); Extract is lock-free
// over immutable encoded events.
type Plugin struct {
	mu      sync.Mutex
	state   sdk.State
	cfg     Config
	gen     *generator
	session string
}

// New builds an uninitialized instance.
func New() sdk.Plugin { return &Plugin{} }

func (p *Plugin) Info() sdk.Info {
	return sdk.Info{
		Name:        Name,
		Version:     version,
		Description: description,
		Contact:     contact,
		EventSource: Name,
		Capabilities: []sdk.Capability{
			sdk.CapabilitySourcing,
			sdk.CapabilityExtraction,
		},
	}
}

func (p *Plugin) Fields() []sdk.FieldDescriptor {
	return []sdk.FieldDescriptor{
		{Name: FieldNum, Type: sdk.FieldTypeInt64, Description: "random value carried by the event"},
	}
}

// Init parses the configuration payload. On failure the instance stays
// uninitialized and Init may be retried with a corrected payload.
func (p *Plugin) Init(config string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, err := sdk.Transition(p.state, sdk.OpInit)
	if err != nil {
		return err
	}
	cfg, err := parseConfig(config)
	if err != nil {
		return err
	}
	p.cfg = cfg
	p.state = next
	return nil
}

// Open starts a capture session and seeds the session generator. A
// closed instance may be re-opened; the configuration survives Close.
func (p *Plugin) Open() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, err := sdk.Transition(p.state, sdk.OpOpen)
	if err != nil {
		return err
	}
	p.gen = newGenerator(p.cfg.Range, p.cfg.Seed, p.cfg.FixedSeed)
	p.session = uuid.NewString()
	p.state = next

	log.GetLogger().WithFields(map[string]interface{}{
		"plugin":  Name,
		"session": p.session,
		"range":   p.cfg.Range,
	}).Debug("session opened")
	return nil
}

// NextBatch fills b to its capacity and returns the number of events
// appended. The generator cannot fail once seeded, so a full batch is
// the normal case; ErrBatchFull surfacing here means the caller handed
// in a batch filled past its own capacity.
func (p *Plugin) NextBatch(b *event.Batch) (int, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, err := sdk.Transition(p.state, sdk.OpNextBatch); err != nil {
		return 0, err
	}

	added := 0
	var payload [payloadLen]byte
	for b.Len() < b.Cap() {
		seq, v := p.gen.next()
		binary.LittleEndian.PutUint64(payload[:], uint64(v))
		if err := b.Add(seq, uint64(time.Now().UnixNano()), payload[:]); err != nil {
			return added, err
		}
		added++
	}
	return added, nil
}

// Extract decodes the named field from one encoded event. It never
// mutates the event or the generator and may run concurrently with
// other Extract calls, any number of times per event, in any order.
func (p *Plugin) Extract(ev event.View, field string) (int64, error) {
	if field != FieldNum {
		return 0, fmt.Errorf("%q: %w", field, sdk.ErrUnknownField)
	}
	if _, err := event.Decode(ev); err != nil {
		return 0, fmt.Errorf("%v: %w", err, sdk.ErrMalformedEvent)
	}
	payload := ev.Payload()
	if len(payload) != payloadLen {
		return 0, fmt.Errorf("%d byte payload for %q: %w", len(payload), field, sdk.ErrMalformedEvent)
	}
	return int64(binary.LittleEndian.Uint64(payload)), nil
}

// Close ends the capture session and releases the session generator.
// The instance keeps its configuration for a later re-open.
func (p *Plugin) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, err := sdk.Transition(p.state, sdk.OpClose)
	if err != nil {
		return err
	}
	log.GetLogger().WithFields(map[string]interface{}{
		"plugin":  Name,
		"session": p.session,
		"events":  p.gen.seq,
	}).Debug("session closed")

	p.gen = nil
	p.session = ""
	p.state = next
	return nil
}

// Destroy releases all instance resources. Terminal: every later call
// fails with ErrDestroyed.
func (p *Plugin) Destroy() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, err := sdk.Transition(p.state, sdk.OpDestroy)
	if err != nil {
		return err
	}
	p.gen = nil
	p.session = ""
	p.state = next
	return nil
}
