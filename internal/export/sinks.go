// Package export delivers telemetry snapshots to external sinks.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"meetpulse/internal/telemetry"
)

// LogSink writes a one-line summary of each snapshot.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Export(ctx context.Context, snap telemetry.MetricsSnapshot) error {
	s.Logger.InfoContext(ctx, "telemetry snapshot",
		slog.String("id", snap.ID),
		slog.Uint64("seq", snap.Seq),
		slog.Int("categories", len(snap.Components)),
		slog.Float64("cpu_percent", snap.System.CPUPercent),
		slog.Float64("heap_used_percent", snap.System.HeapUsedPercent),
		slog.String("system_status", string(snap.System.Status)),
		slog.Int64("errors", snap.Errors.TotalErrors),
		slog.Int64("requests", snap.Requests),
		slog.Float64("error_rate", snap.ErrorRate))
	return nil
}

// MultiSink fans a snapshot out to every sink. One sink failing does not
// stop delivery to the others.
type MultiSink []telemetry.Sink

func (m MultiSink) Export(ctx context.Context, snap telemetry.MetricsSnapshot) error {
	var errs []error
	for i, s := range m {
		if err := exportOne(ctx, s, snap); err != nil {
			errs = append(errs, fmt.Errorf("sink %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

func exportOne(ctx context.Context, s telemetry.Sink, snap telemetry.MetricsSnapshot) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("sink panicked: %v", p)
		}
	}()
	return s.Export(ctx, snap)
}
