package errtrack_test

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetpulse/internal/clock"
	"meetpulse/internal/errtrack"
	"meetpulse/internal/health"
)

var epoch = time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

type opsCounter int64

func (c opsCounter) TotalOperations() int64 { return int64(c) }

func newTracker(clk clock.Clock, ops errtrack.OperationCounter) *errtrack.Tracker {
	return errtrack.New(clk, slog.New(slog.NewTextHandler(io.Discard, nil)), ops, errtrack.DefaultConfig())
}

func TestRecordError_Aggregates(t *testing.T) {
	clk := clock.NewFake(epoch)
	tr := newTracker(clk, nil)

	tr.RecordError("AUDIO_CAPTURE", "DeviceNotFound", "no mic", errtrack.SeverityWarning)
	clk.Advance(time.Second)
	tr.RecordError("AUDIO_CAPTURE", "DeviceNotFound", "no mic again", errtrack.SeverityWarning)
	clk.Advance(time.Second)
	tr.RecordError("AUDIO_CAPTURE", "DeviceNotFound", "still no mic", errtrack.SeverityCritical)

	rec, ok := tr.Record("AUDIO_CAPTURE", "DeviceNotFound")
	require.True(t, ok)
	assert.Equal(t, int64(3), rec.Count)
	assert.Equal(t, epoch, rec.FirstSeen)
	assert.Equal(t, epoch.Add(2*time.Second), rec.LastSeen)
	assert.Equal(t, "still no mic", rec.Message)
	assert.Equal(t, errtrack.SeverityCritical, rec.Severity)
	assert.Equal(t, int64(1), rec.CriticalCount)
	assert.Equal(t, int64(2), rec.WarningCount)

	counts := tr.SeverityCounts()
	assert.Equal(t, int64(2), counts[errtrack.SeverityWarning])
	assert.Equal(t, int64(1), counts[errtrack.SeverityCritical])
	assert.Equal(t, int64(0), counts[errtrack.SeverityInfo])
}

func TestRecordError_NormalizesInput(t *testing.T) {
	tr := newTracker(clock.NewFake(epoch), nil)

	tr.RecordError("", " ", "", "bogus")

	rec, ok := tr.Record("UNKNOWN", "UNKNOWN")
	require.True(t, ok)
	assert.Equal(t, errtrack.SeverityInfo, rec.Severity)
}

func TestRecordError_ConcurrentWriters(t *testing.T) {
	tr := newTracker(clock.Real{}, nil)

	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 250 {
				tr.RecordError("AI_SERVICE", "Timeout", "deadline exceeded", errtrack.SeverityWarning)
			}
		}()
	}
	wg.Wait()

	rec, ok := tr.Record("AI_SERVICE", "Timeout")
	require.True(t, ok)
	assert.Equal(t, int64(4000), rec.Count)
	assert.Equal(t, int64(4000), tr.SeverityCounts()[errtrack.SeverityWarning])
}

func TestStatistics(t *testing.T) {
	tr := newTracker(clock.NewFake(epoch), nil)

	tr.RecordError("AUDIO", "Overrun", "", errtrack.SeverityInfo)
	tr.RecordError("AUDIO", "Overrun", "", errtrack.SeverityWarning)
	tr.RecordError("AUDIO", "DeviceLost", "", errtrack.SeverityInfo)
	tr.RecordError("AI", "Timeout", "", errtrack.SeverityCritical)

	audio := tr.StatisticsFor("AUDIO")
	assert.Equal(t, int64(3), audio.TotalErrors)
	assert.Equal(t, int64(1), audio.WarningErrors)
	assert.Equal(t, 2, audio.DistinctErrors)
	assert.Equal(t, errtrack.SeverityWarning, audio.Severity)

	none := tr.StatisticsFor("WEBSOCKET")
	assert.Equal(t, int64(0), none.TotalErrors)
	assert.Equal(t, errtrack.SeverityInfo, none.Severity)

	overall := tr.OverallStatistics()
	assert.Equal(t, int64(4), overall.TotalErrors)
	assert.Equal(t, int64(1), overall.CriticalErrors)
	assert.Equal(t, errtrack.SeverityCritical, overall.Severity)

	assert.Equal(t, []string{"AI", "AUDIO"}, tr.Components())
}

func TestEvictStale(t *testing.T) {
	clk := clock.NewFake(epoch)
	tr := newTracker(clk, nil)

	tr.RecordError("OLD", "Gone", "", errtrack.SeverityInfo)
	clk.Advance(2 * time.Hour)
	tr.RecordError("RECENT", "Kept", "", errtrack.SeverityInfo)

	clk.Set(epoch.Add(25 * time.Hour))
	assert.Equal(t, 1, tr.EvictStale())

	_, ok := tr.Record("OLD", "Gone")
	assert.False(t, ok)
	_, ok = tr.Record("RECENT", "Kept")
	assert.True(t, ok)
	assert.Equal(t, 0, tr.EvictStale())
}

func TestEvictStale_RecurringRecordSurvives(t *testing.T) {
	clk := clock.NewFake(epoch)
	tr := newTracker(clk, nil)

	tr.RecordError("AUDIO", "Overrun", "", errtrack.SeverityInfo)
	clk.Advance(20 * time.Hour)
	tr.RecordError("AUDIO", "Overrun", "", errtrack.SeverityInfo)
	clk.Advance(10 * time.Hour)

	assert.Equal(t, 0, tr.EvictStale())
	rec, ok := tr.Record("AUDIO", "Overrun")
	require.True(t, ok)
	assert.Equal(t, epoch, rec.FirstSeen)
}

func TestTrends(t *testing.T) {
	clk := clock.NewFake(epoch)
	tr := newTracker(clk, nil)

	tr.RecordError("AUDIO", "Overrun", "", errtrack.SeverityInfo)
	clk.Advance(90 * time.Minute)
	for range 6 {
		tr.RecordError("AI", "Timeout", "", errtrack.SeverityCritical)
	}
	tr.RecordError("DATABASE", "Deadlock", "", errtrack.SeverityWarning)

	trend := tr.Trends(time.Hour)
	assert.Equal(t, int64(7), trend.Count)
	assert.Equal(t, int64(6), trend.CriticalCount)
	assert.Equal(t, int64(1), trend.WarningCount)
	assert.Equal(t, 2, trend.DistinctErrors)
	assert.InDelta(t, 7.0/60.0, trend.RatePerMinute, 1e-9)

	assert.Equal(t, int64(8), tr.Trends(2*time.Hour).Count)
	assert.Equal(t, int64(0), tr.Trends(0).Count)
}

func TestMostFrequentAndRecent(t *testing.T) {
	clk := clock.NewFake(epoch)
	tr := newTracker(clk, nil)

	tr.RecordError("A", "x", "", errtrack.SeverityInfo)
	tr.RecordError("B", "x", "", errtrack.SeverityInfo)
	tr.RecordError("C", "x", "", errtrack.SeverityInfo)
	clk.Advance(time.Minute)
	tr.RecordError("B", "x", "", errtrack.SeverityInfo)

	frequent := tr.MostFrequent(2)
	require.Len(t, frequent, 2)
	assert.Equal(t, "B", frequent[0].Component)
	assert.Equal(t, "A", frequent[1].Component)

	recent := tr.MostRecent(10)
	require.Len(t, recent, 3)
	assert.Equal(t, []string{"B", "A", "C"}, []string{recent[0].Component, recent[1].Component, recent[2].Component})

	assert.Empty(t, tr.MostFrequent(0))
}

func TestDetectPatterns(t *testing.T) {
	tr := newTracker(clock.NewFake(epoch), nil)

	for _, c := range []string{"AUDIO", "AI", "WEBSOCKET"} {
		tr.RecordError(c, "ConnectionReset", "", errtrack.SeverityWarning)
	}
	tr.RecordError("AUDIO", "Timeout", "", errtrack.SeverityWarning)
	tr.RecordError("AI", "Timeout", "", errtrack.SeverityWarning)

	patterns := tr.DetectPatterns()
	require.Len(t, patterns, 1)
	assert.Equal(t, "ConnectionReset", patterns[0].ErrorType)
	assert.Equal(t, []string{"AI", "AUDIO", "WEBSOCKET"}, patterns[0].Components)
}

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name      string
		ops       errtrack.OperationCounter
		errors    int
		wantLevel errtrack.Severity
		wantPct   float64
	}{
		{name: "no operation source", ops: nil, errors: 3, wantLevel: errtrack.SeverityInfo},
		{name: "zero operations", ops: opsCounter(0), errors: 3, wantLevel: errtrack.SeverityInfo},
		{name: "below warning", ops: opsCounter(100), errors: 4, wantLevel: errtrack.SeverityInfo, wantPct: 4},
		{name: "warning", ops: opsCounter(100), errors: 5, wantLevel: errtrack.SeverityWarning, wantPct: 5},
		{name: "critical", ops: opsCounter(100), errors: 12, wantLevel: errtrack.SeverityCritical, wantPct: 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTracker(clock.NewFake(epoch), tt.ops)
			for range tt.errors {
				tr.RecordError("AI", "Timeout", "", errtrack.SeverityWarning)
			}

			report, err := tr.Analyze(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.wantLevel, report.RateLevel)
			assert.InDelta(t, tt.wantPct, report.ErrorRatePct, 1e-9)
			assert.Equal(t, epoch, report.At)

			last, ok := tr.LastReport()
			require.True(t, ok)
			assert.Equal(t, report.At, last.At)
			assert.Equal(t, int64(1), tr.Analyses())
		})
	}
}

func TestAnalyze_EvictsAndReportsPatterns(t *testing.T) {
	clk := clock.NewFake(epoch)
	tr := newTracker(clk, opsCounter(1000))

	tr.RecordError("LEGACY", "Old", "", errtrack.SeverityInfo)
	clk.Advance(25 * time.Hour)
	for _, c := range []string{"A", "B", "C"} {
		tr.RecordError(c, "Refused", "", errtrack.SeverityWarning)
	}

	report, err := tr.Analyze(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, report.Evicted)
	require.Len(t, report.Patterns, 1)
	assert.Equal(t, "Refused", report.Patterns[0].ErrorType)
}

func TestAnalyze_CancelledContext(t *testing.T) {
	tr := newTracker(clock.NewFake(epoch), nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := tr.Analyze(ctx)
	require.ErrorIs(t, err, context.Canceled)
	_, ok := tr.LastReport()
	assert.False(t, ok)
}

func TestHealthIndicator(t *testing.T) {
	clk := clock.NewFake(epoch)
	tr := newTracker(clk, nil)
	ind := tr.HealthIndicator(time.Hour)
	ctx := context.Background()

	res, err := ind.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, health.StatusUp, res.Status)

	tr.RecordError("AI", "Timeout", "", errtrack.SeverityWarning)
	res, err = ind.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, health.StatusWarning, res.Status)

	tr.RecordError("AI", "Crash", "", errtrack.SeverityCritical)
	res, err = ind.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, health.StatusDown, res.Status)

	clk.Advance(2 * time.Hour)
	res, err = ind.Check(ctx)
	require.NoError(t, err)
	assert.Equal(t, health.StatusUp, res.Status)
}

func TestNew_NilLogger(t *testing.T) {
	clk := clock.NewFake(epoch)
	tr := errtrack.New(clk, nil, opsCounter(10), errtrack.DefaultConfig())

	tr.RecordError("AI", "Timeout", "", errtrack.SeverityCritical)
	clk.Advance(25 * time.Hour)
	for _, c := range []string{"A", "B", "C"} {
		tr.RecordError(c, "Refused", "", errtrack.SeverityWarning)
	}

	require.NotPanics(t, func() {
		report, err := tr.Analyze(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, report.Evicted)
		assert.Equal(t, errtrack.SeverityCritical, report.RateLevel)
	})
}
