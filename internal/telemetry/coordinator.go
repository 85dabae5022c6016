// Package telemetry assembles periodic snapshots from the recorder, the
// system sampler and the error tracker and hands them to export sinks.
package telemetry

//go:generate go tool mockery

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"meetpulse/internal/clock"
	"meetpulse/internal/errtrack"
	"meetpulse/internal/metrics"
	"meetpulse/internal/sampler"
)

const (
	breachComponent = "TELEMETRY"
	breachErrorType = "HighErrorRate"
)

type MetricsSource interface {
	Metrics() map[metrics.Category]metrics.ComponentMetrics
	Counters() map[string]int64
	TotalRequests() int64
	TotalErrors() int64
}

type SystemSource interface {
	Snapshot() sampler.Snapshot
}

type ErrorSource interface {
	OverallStatistics() errtrack.Statistics
	RecordError(component, errorType, message string, severity errtrack.Severity)
}

type IDGenerator interface {
	Generate(seq uint64) (string, error)
}

type Sink interface {
	Export(ctx context.Context, snap MetricsSnapshot) error
}

// Config holds error rate thresholds as fractions of total requests.
type Config struct {
	ErrorRateWarning  float64
	ErrorRateCritical float64
}

func DefaultConfig() Config {
	return Config{ErrorRateWarning: 0.05, ErrorRateCritical: 0.10}
}

type Coordinator struct {
	metrics MetricsSource
	system  SystemSource
	errors  ErrorSource
	ids     IDGenerator
	sink    Sink
	clock   clock.Clock
	logger  *slog.Logger
	cfg     Config

	seq            atomic.Uint64
	current        atomic.Pointer[MetricsSnapshot]
	exports        atomic.Int64
	exportFailures atomic.Int64
	breaches       atomic.Int64
}

// New builds a coordinator. sink and ids may be nil.
func New(
	m MetricsSource,
	sys SystemSource,
	errs ErrorSource,
	ids IDGenerator,
	sink Sink,
	clk clock.Clock,
	logger *slog.Logger,
	cfg Config,
) *Coordinator {
	if clk == nil {
		clk = clock.Real{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Coordinator{
		metrics: m,
		system:  sys,
		errors:  errs,
		ids:     ids,
		sink:    sink,
		clock:   clk,
		logger:  logger,
		cfg:     cfg,
	}
}

// Tick assembles a snapshot, publishes it, exports it and checks the
// global error rate. Export failures are logged and do not fail the tick.
func (c *Coordinator) Tick(ctx context.Context) error {
	snap, err := c.assemble(c.seq.Add(1))
	if err != nil {
		c.logger.Error("failed to assemble telemetry snapshot", slog.String("error", err.Error()))
		return err
	}
	c.publish(snap)

	if c.sink != nil {
		if err := c.export(ctx, snap.clone()); err != nil {
			c.exportFailures.Add(1)
			c.logger.Error("failed to export telemetry snapshot",
				slog.Uint64("seq", snap.Seq),
				slog.String("error", err.Error()))
		} else {
			c.exports.Add(1)
		}
	}

	c.checkErrorRate(ctx, snap)
	return nil
}

func (c *Coordinator) export(ctx context.Context, snap MetricsSnapshot) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("export sink panicked: %v", p)
		}
	}()
	return c.sink.Export(ctx, snap)
}

// assemble builds a snapshot for seq. Seq 0 is a preview and gets no ID.
func (c *Coordinator) assemble(seq uint64) (snap *MetricsSnapshot, err error) {
	defer func() {
		if p := recover(); p != nil {
			snap, err = nil, fmt.Errorf("snapshot assembly panicked: %v", p)
		}
	}()

	snap = &MetricsSnapshot{
		Seq:        seq,
		At:         c.clock.Now(),
		Components: c.metrics.Metrics(),
		System:     c.system.Snapshot(),
		Errors:     c.errors.OverallStatistics(),
		Counters:   c.metrics.Counters(),
		Requests:   c.metrics.TotalRequests(),
		ErrorCount: c.metrics.TotalErrors(),
	}
	if snap.Requests > 0 {
		snap.ErrorRate = float64(snap.ErrorCount) / float64(snap.Requests)
	}
	if c.ids != nil && seq > 0 {
		id, err := c.ids.Generate(seq)
		if err != nil {
			return nil, fmt.Errorf("failed to generate snapshot id: %w", err)
		}
		snap.ID = id
	}
	return snap, nil
}

// publish stores snap unless a newer one is already current.
func (c *Coordinator) publish(snap *MetricsSnapshot) {
	for {
		cur := c.current.Load()
		if cur != nil && cur.Seq >= snap.Seq {
			return
		}
		if c.current.CompareAndSwap(cur, snap) {
			return
		}
	}
}

func (c *Coordinator) checkErrorRate(ctx context.Context, snap *MetricsSnapshot) {
	if snap.Requests == 0 {
		return
	}

	var severity errtrack.Severity
	switch {
	case snap.ErrorRate >= c.cfg.ErrorRateCritical:
		severity = errtrack.SeverityCritical
	case snap.ErrorRate >= c.cfg.ErrorRateWarning:
		severity = errtrack.SeverityWarning
	default:
		return
	}

	c.breaches.Add(1)
	msg := fmt.Sprintf("error rate %.2f%% over %d requests", snap.ErrorRate*100, snap.Requests)
	c.errors.RecordError(breachComponent, breachErrorType, msg, severity)

	level := slog.LevelWarn
	if severity == errtrack.SeverityCritical {
		level = slog.LevelError
	}
	c.logger.Log(ctx, level, "high error rate",
		slog.Float64("error_rate", snap.ErrorRate),
		slog.Int64("errors", snap.ErrorCount),
		slog.Int64("requests", snap.Requests),
		slog.String("severity", string(severity)))
}

// CurrentSnapshot returns the last published snapshot. Before the first
// tick it returns a preview with Seq 0 and no ID; the preview is neither
// published nor exported.
func (c *Coordinator) CurrentSnapshot() (MetricsSnapshot, error) {
	if cur := c.current.Load(); cur != nil {
		return cur.clone(), nil
	}
	snap, err := c.assemble(0)
	if err != nil {
		return MetricsSnapshot{}, err
	}
	return *snap, nil
}

func (c *Coordinator) Exports() int64        { return c.exports.Load() }
func (c *Coordinator) ExportFailures() int64 { return c.exportFailures.Load() }
func (c *Coordinator) Breaches() int64       { return c.breaches.Load() }
