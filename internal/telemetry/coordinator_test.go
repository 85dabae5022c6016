package telemetry_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"meetpulse/internal/clock"
	"meetpulse/internal/errtrack"
	"meetpulse/internal/metrics"
	"meetpulse/internal/sampler"
	"meetpulse/internal/snapshotid"
	"meetpulse/internal/telemetry"
	"meetpulse/internal/telemetry/mocks"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type fixture struct {
	clk     *clock.Fake
	rec     *metrics.Recorder
	sampler *sampler.Sampler
	errs    *errtrack.Tracker
	ids     *snapshotid.Generator
	logger  *slog.Logger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	clk := clock.NewFake(epoch)
	probe := sampler.ProbeFunc(func(context.Context) (sampler.Reading, error) {
		return sampler.Reading{CPUPercent: 12, HeapUsedPercent: 30, Threads: 9}, nil
	})
	ids, err := snapshotid.New(1)
	require.NoError(t, err)

	rec := metrics.NewRecorder(clk, logger)
	return &fixture{
		clk:     clk,
		rec:     rec,
		sampler: sampler.New(probe, nil, clk, logger, sampler.DefaultConfig()),
		errs:    errtrack.New(clk, logger, rec, errtrack.DefaultConfig()),
		ids:     ids,
		logger:  logger,
	}
}

func (f *fixture) coordinator(sink telemetry.Sink, errs telemetry.ErrorSource) *telemetry.Coordinator {
	if errs == nil {
		errs = f.errs
	}
	return telemetry.New(f.rec, f.sampler, errs, f.ids, sink, f.clk, f.logger, telemetry.DefaultConfig())
}

func TestTick_AssemblesAndExports(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.sampler.Tick(context.Background()))
	f.rec.Observe(metrics.CategoryAudio, "capture", 20*time.Millisecond)
	f.rec.Increment("meetings_started", 2)
	f.errs.RecordError("AUDIO", "Overrun", "", errtrack.SeverityWarning)

	sink := mocks.NewMockSink(t)
	var exported telemetry.MetricsSnapshot
	sink.EXPECT().Export(mock.Anything, mock.Anything).
		Run(func(_ context.Context, s telemetry.MetricsSnapshot) { exported = s }).
		Return(nil).Once()

	c := f.coordinator(sink, nil)
	require.NoError(t, c.Tick(context.Background()))

	snap, err := c.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snap.Seq)
	assert.NotEmpty(t, snap.ID)
	assert.Equal(t, epoch, snap.At)
	assert.Equal(t, int64(1), snap.Components[metrics.CategoryAudio].Count)
	assert.Equal(t, 12.0, snap.System.CPUPercent)
	assert.Equal(t, int64(1), snap.Errors.TotalErrors)
	assert.Equal(t, int64(2), snap.Counters["meetings_started"])

	assert.Equal(t, snap.ID, exported.ID)
	assert.Equal(t, int64(1), c.Exports())
}

func TestTick_ExportFailureIsSwallowed(t *testing.T) {
	f := newFixture(t)
	sink := mocks.NewMockSink(t)
	sink.EXPECT().Export(mock.Anything, mock.Anything).Return(errors.New("connection refused")).Twice()

	c := f.coordinator(sink, nil)
	require.NoError(t, c.Tick(context.Background()))
	f.clk.Advance(time.Minute)
	require.NoError(t, c.Tick(context.Background()))

	snap, err := c.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), snap.Seq)
	assert.Equal(t, int64(2), c.ExportFailures())
	assert.Equal(t, int64(0), c.Exports())
}

func TestTick_ExportPanicIsCaught(t *testing.T) {
	f := newFixture(t)
	sink := mocks.NewMockSink(t)
	sink.EXPECT().Export(mock.Anything, mock.Anything).
		RunAndReturn(func(context.Context, telemetry.MetricsSnapshot) error { panic("nil pool") }).Once()

	c := f.coordinator(sink, nil)
	require.NotPanics(t, func() { require.NoError(t, c.Tick(context.Background())) })
	assert.Equal(t, int64(1), c.ExportFailures())
}

func TestCurrentSnapshot_PreviewBeforeFirstTick(t *testing.T) {
	f := newFixture(t)
	f.rec.Observe(metrics.CategoryAudio, "capture", time.Millisecond)
	c := f.coordinator(nil, nil)

	preview, err := c.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, uint64(0), preview.Seq)
	assert.Empty(t, preview.ID)
	assert.Equal(t, int64(1), preview.Components[metrics.CategoryAudio].Count)

	_, err = c.CurrentSnapshot()
	require.NoError(t, err)

	require.NoError(t, c.Tick(context.Background()))
	snap, err := c.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), snap.Seq, "previews do not consume sequence numbers")
	assert.NotEmpty(t, snap.ID)
}

func TestCurrentSnapshot_Immutable(t *testing.T) {
	f := newFixture(t)
	f.rec.Increment("meetings_started", 1)
	f.rec.Observe(metrics.CategoryHTTP, "GET /", time.Millisecond)
	f.sampler.ObserveGauge("gc_pause", 1)
	require.NoError(t, f.sampler.Tick(context.Background()))

	c := f.coordinator(nil, nil)
	require.NoError(t, c.Tick(context.Background()))

	snap, err := c.CurrentSnapshot()
	require.NoError(t, err)
	snap.Counters["meetings_started"] = 999
	snap.Components[metrics.CategoryHTTP] = metrics.ComponentMetrics{}
	snap.System.Gauges["gc_pause"] = 999

	f.rec.Increment("meetings_started", 5)

	again, err := c.CurrentSnapshot()
	require.NoError(t, err)
	assert.Equal(t, int64(1), again.Counters["meetings_started"])
	assert.Equal(t, int64(1), again.Components[metrics.CategoryHTTP].Count)
	assert.Equal(t, 1.0, again.System.Gauges["gc_pause"])
}

func TestTick_CountersNeverDecrease(t *testing.T) {
	f := newFixture(t)
	c := f.coordinator(nil, nil)

	var prev telemetry.MetricsSnapshot
	for i := range 5 {
		f.rec.RecordRequest()
		f.rec.Observe(metrics.CategoryDatabase, "insert", time.Millisecond)
		f.clk.Advance(time.Minute)
		require.NoError(t, c.Tick(context.Background()))

		snap, err := c.CurrentSnapshot()
		require.NoError(t, err)
		if i > 0 {
			assert.Greater(t, snap.Seq, prev.Seq)
			assert.GreaterOrEqual(t, snap.Requests, prev.Requests)
			assert.GreaterOrEqual(t, snap.Components[metrics.CategoryDatabase].Count,
				prev.Components[metrics.CategoryDatabase].Count)
			assert.True(t, snap.At.After(prev.At))
		}
		prev = snap
	}
}

func TestTick_ErrorRateBreach(t *testing.T) {
	tests := []struct {
		name     string
		requests int
		errors   int
		want     errtrack.Severity
	}{
		{name: "below warning", requests: 100, errors: 4},
		{name: "warning", requests: 100, errors: 5, want: errtrack.SeverityWarning},
		{name: "critical", requests: 100, errors: 10, want: errtrack.SeverityCritical},
		{name: "no requests", requests: 0, errors: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			for range tt.requests {
				f.rec.RecordRequest()
			}
			for range tt.errors {
				f.rec.RecordError("HTTP", "500")
			}

			errs := mocks.NewMockErrorSource(t)
			errs.EXPECT().OverallStatistics().Return(errtrack.Statistics{})
			if tt.want != "" {
				errs.EXPECT().RecordError("TELEMETRY", "HighErrorRate", mock.Anything, tt.want).Return().Once()
			}

			c := f.coordinator(nil, errs)
			require.NoError(t, c.Tick(context.Background()))

			breaches := int64(0)
			if tt.want != "" {
				breaches = 1
			}
			assert.Equal(t, breaches, c.Breaches())
		})
	}
}

func TestTick_BreachFeedsTracker(t *testing.T) {
	f := newFixture(t)
	f.rec.RecordRequest()
	f.rec.RecordError("HTTP", "500")

	c := f.coordinator(nil, nil)
	require.NoError(t, c.Tick(context.Background()))

	rec, ok := f.errs.Record("TELEMETRY", "HighErrorRate")
	require.True(t, ok)
	assert.Equal(t, errtrack.SeverityCritical, rec.Severity)
	assert.Contains(t, rec.Message, "100.00%")
}

type ctxKey struct{}

// ctxCapture records the context each log record was emitted with.
type ctxCapture struct {
	slog.Handler
	seen chan any
}

func (h ctxCapture) Handle(ctx context.Context, r slog.Record) error {
	if r.Message == "high error rate" {
		h.seen <- ctx.Value(ctxKey{})
	}
	return nil
}

func TestTick_BreachLoggedWithTickContext(t *testing.T) {
	f := newFixture(t)
	f.rec.RecordRequest()
	f.rec.RecordError("HTTP", "500")

	capture := ctxCapture{Handler: slog.NewTextHandler(io.Discard, nil), seen: make(chan any, 1)}
	c := telemetry.New(f.rec, f.sampler, f.errs, f.ids, nil, f.clk, slog.New(capture), telemetry.DefaultConfig())

	ctx := context.WithValue(context.Background(), ctxKey{}, "tick-7")
	require.NoError(t, c.Tick(ctx))

	require.Len(t, capture.seen, 1)
	assert.Equal(t, "tick-7", <-capture.seen)
}

func TestNew_NilLogger(t *testing.T) {
	f := newFixture(t)
	f.rec.RecordRequest()
	f.rec.RecordError("HTTP", "500")

	sink := mocks.NewMockSink(t)
	sink.EXPECT().Export(mock.Anything, mock.Anything).Return(errors.New("connection refused")).Once()

	c := telemetry.New(f.rec, f.sampler, f.errs, f.ids, sink, f.clk, nil, telemetry.DefaultConfig())
	require.NotPanics(t, func() { require.NoError(t, c.Tick(context.Background())) })
	assert.Equal(t, int64(1), c.Breaches())
}
