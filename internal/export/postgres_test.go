package export_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meetpulse/internal/clock"
	"meetpulse/internal/config"
	"meetpulse/internal/export"
	"meetpulse/internal/export/mocks"
	"meetpulse/internal/health"
	"meetpulse/internal/metrics"
	"meetpulse/internal/telemetry"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

func newLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func snapshot(seq uint64) telemetry.MetricsSnapshot {
	return telemetry.MetricsSnapshot{
		ID:  "snap",
		Seq: seq,
		At:  epoch.Add(time.Duration(seq) * time.Minute),
		Components: map[metrics.Category]metrics.ComponentMetrics{
			metrics.CategoryAudio: {Category: metrics.CategoryAudio, Count: 3, AverageDuration: 2 * time.Millisecond},
		},
		Counters: map[string]int64{"meetings_started": 1},
	}
}

func countRows(src pgx.CopyFromSource) int {
	n := 0
	for src.Next() {
		n++
	}
	return n
}

func TestPostgresSink_CloseFlushesBuffered(t *testing.T) {
	db := mocks.NewMockDB(t)
	var snapshotRows, componentRows int
	db.EXPECT().CopyFrom(mock.Anything, pgx.Identifier{"telemetry_snapshots"}, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ pgx.Identifier, cols []string, src pgx.CopyFromSource) {
			assert.Contains(t, cols, "snapshot_id")
			snapshotRows += countRows(src)
		}).Return(3, nil).Once()
	db.EXPECT().CopyFrom(mock.Anything, pgx.Identifier{"component_metrics"}, mock.Anything, mock.Anything).
		Run(func(_ context.Context, _ pgx.Identifier, _ []string, src pgx.CopyFromSource) {
			componentRows += countRows(src)
		}).Return(3, nil).Once()

	cfg := &config.ExportConfig{BufferSize: 8, FlushThreshold: 100, FlushInterval: time.Hour}
	sink := export.NewPostgresSink(db, cfg, clock.NewFake(epoch), newLogger())
	sink.Start(context.Background())

	for seq := range uint64(3) {
		require.NoError(t, sink.Export(context.Background(), snapshot(seq+1)))
	}
	sink.Close()
	sink.Close()

	assert.Equal(t, 3, snapshotRows)
	assert.Equal(t, 3, componentRows)
}

func TestPostgresSink_FlushesOnTicker(t *testing.T) {
	db := mocks.NewMockDB(t)
	var flushed atomic.Bool
	db.EXPECT().CopyFrom(mock.Anything, pgx.Identifier{"telemetry_snapshots"}, mock.Anything, mock.Anything).
		Return(1, nil).Once()
	db.EXPECT().CopyFrom(mock.Anything, pgx.Identifier{"component_metrics"}, mock.Anything, mock.Anything).
		Run(func(context.Context, pgx.Identifier, []string, pgx.CopyFromSource) { flushed.Store(true) }).
		Return(1, nil).Once()

	clk := clock.NewFake(epoch)
	cfg := &config.ExportConfig{BufferSize: 8, FlushThreshold: 100, FlushInterval: 5 * time.Second}
	sink := export.NewPostgresSink(db, cfg, clk, newLogger())
	sink.Start(context.Background())
	defer sink.Close()

	require.NoError(t, sink.Export(context.Background(), snapshot(1)))
	require.Eventually(t, func() bool {
		clk.Advance(5 * time.Second)
		return flushed.Load()
	}, 2*time.Second, 10*time.Millisecond)
}

func TestPostgresSink_WriteFailureIsLogged(t *testing.T) {
	db := mocks.NewMockDB(t)
	db.EXPECT().CopyFrom(mock.Anything, pgx.Identifier{"telemetry_snapshots"}, mock.Anything, mock.Anything).
		Return(0, errors.New("relation does not exist")).Once()

	cfg := &config.ExportConfig{BufferSize: 8, FlushThreshold: 100, FlushInterval: time.Hour}
	sink := export.NewPostgresSink(db, cfg, clock.NewFake(epoch), newLogger())
	sink.Start(context.Background())

	require.NoError(t, sink.Export(context.Background(), snapshot(1)))
	assert.NotPanics(t, sink.Close)
}

func TestPostgresSink_BufferFull(t *testing.T) {
	db := mocks.NewMockDB(t)
	cfg := &config.ExportConfig{BufferSize: 1, FlushThreshold: 1, FlushInterval: time.Hour}
	sink := export.NewPostgresSink(db, cfg, clock.NewFake(epoch), newLogger())

	require.NoError(t, sink.Export(context.Background(), snapshot(1)))
	require.ErrorIs(t, sink.Export(context.Background(), snapshot(2)), export.ErrBufferFull)
}

func TestPostgresSink_HealthIndicator(t *testing.T) {
	db := mocks.NewMockDB(t)
	db.EXPECT().Ping(mock.Anything).Return(nil).Once()
	db.EXPECT().Ping(mock.Anything).Return(errors.New("connection refused")).Once()

	cfg := &config.ExportConfig{BufferSize: 4, FlushThreshold: 4, FlushInterval: time.Hour}
	sink := export.NewPostgresSink(db, cfg, clock.NewFake(epoch), newLogger())
	ind := sink.HealthIndicator()

	res, err := ind.Check(context.Background())
	require.NoError(t, err)
	assert.Equal(t, health.StatusUp, res.Status)

	_, err = ind.Check(context.Background())
	require.ErrorContains(t, err, "connection refused")
}
