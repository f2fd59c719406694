// Package host drives a loaded plugin the way the monitoring runtime
// would: one logical call sequence per instance handle, batches pulled
// on the host's pace, fields extracted per event.
package host

import (
	"context"
	"fmt"
	"time"

	"firestige.xyz/gensource/internal/config"
	"firestige.xyz/gensource/internal/log"
	"firestige.xyz/gensource/pkg/event"
	"firestige.xyz/gensource/pkg/sdk"
)

// Driver simulates the host runtime for one plugin instance. All errors
// carry the handle's last-error message, mirroring how the real host
// logs plugin failures.
type Driver struct {
	source config.SourceConfig
	drv    config.DriverConfig
	table  *sdk.Table
	logger log.Logger
}

func NewDriver(source config.SourceConfig, drv config.DriverConfig) *Driver {
	return &Driver{
		source: source,
		drv:    drv,
		table:  sdk.NewTable(),
		logger: log.GetLogger().WithField("component", "host"),
	}
}

// Run executes init → open → {next_batch, extract}* → close → destroy.
// Cancelling ctx stops the loop between batches; the plugin itself is
// synchronous and is never interrupted mid-call.
func (d *Driver) Run(ctx context.Context) error {
	factory, err := sdk.Lookup(d.source.Plugin)
	if err != nil {
		return err
	}
	h := d.table.Create(factory)
	defer d.table.Destroy(h)

	info, _ := d.table.Info(h)
	fields, _ := d.table.Fields(h)
	d.logger.WithFields(map[string]interface{}{
		"plugin":  info.Name,
		"version": info.Version,
		"source":  info.EventSource,
		"fields":  len(fields),
	}).Info("plugin loaded")

	if st := d.table.Init(h, d.source.Options); st != sdk.StatusSuccess {
		return fmt.Errorf("init %s: %s", info.Name, d.table.LastError(h))
	}
	if st := d.table.Open(h); st != sdk.StatusSuccess {
		return fmt.Errorf("open %s: %s", info.Name, d.table.LastError(h))
	}

	counts := make(map[int64]uint64)
	batch := event.NewBatch(d.drv.BatchSize)
	var produced uint64

loop:
	for n := 0; d.drv.Batches == 0 || n < d.drv.Batches; n++ {
		select {
		case <-ctx.Done():
			d.logger.Info("stopping on cancellation")
			break loop
		default:
		}

		batch.Reset()
		if _, st := d.table.NextBatch(h, batch); st != sdk.StatusSuccess {
			return fmt.Errorf("next_batch: %s", d.table.LastError(h))
		}

		for i := 0; i < batch.Len(); i++ {
			ev := batch.Event(i)
			for _, fd := range fields {
				v, st := d.table.Extract(h, ev, fd.Name)
				if st != sdk.StatusSuccess {
					return fmt.Errorf("extract %s: %s", fd.Name, d.table.LastError(h))
				}
				counts[v]++
			}
		}
		produced += uint64(batch.Len())

		if d.drv.Interval > 0 {
			select {
			case <-ctx.Done():
				d.logger.Info("stopping on cancellation")
				break loop
			case <-time.After(d.drv.Interval):
			}
		}
	}

	if st := d.table.Close(h); st != sdk.StatusSuccess {
		return fmt.Errorf("close %s: %s", info.Name, d.table.LastError(h))
	}

	d.logSummary(produced, counts)

	if d.drv.Store.Enabled {
		return d.persist(counts)
	}
	return nil
}

func (d *Driver) logSummary(produced uint64, counts map[int64]uint64) {
	summary := map[string]interface{}{
		"events":   produced,
		"distinct": len(counts),
	}
	if len(counts) > 0 {
		first := true
		var min, max int64
		for v := range counts {
			if first || v < min {
				min = v
			}
			if first || v > max {
				max = v
			}
			first = false
		}
		summary["min"] = min
		summary["max"] = max
	}
	d.logger.WithFields(summary).Info("run complete")
}

func (d *Driver) persist(counts map[int64]uint64) error {
	s, err := OpenStore(d.drv.Store.Path)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Merge(counts); err != nil {
		return fmt.Errorf("persist histogram: %w", err)
	}
	lifetime, err := s.Snapshot()
	if err != nil {
		return err
	}
	d.logger.WithFields(map[string]interface{}{
		"path":     d.drv.Store.Path,
		"distinct": len(lifetime),
	}).Info("histogram persisted")
	return nil
}
