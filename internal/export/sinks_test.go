package export_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"meetpulse/internal/errtrack"
	"meetpulse/internal/export"
	"meetpulse/internal/sampler"
	"meetpulse/internal/telemetry"
)

type countingSink struct {
	calls int
	err   error
}

func (s *countingSink) Export(context.Context, telemetry.MetricsSnapshot) error {
	s.calls++
	return s.err
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := export.LogSink{Logger: slog.New(slog.NewJSONHandler(&buf, nil))}

	require.NoError(t, sink.Export(context.Background(), snapshot(7)))
	assert.Contains(t, buf.String(), `"msg":"telemetry snapshot"`)
	assert.Contains(t, buf.String(), `"seq":7`)
}

func TestMultiSink_IsolatesFailures(t *testing.T) {
	first := &countingSink{err: errors.New("disk full")}
	second := &countingSink{}
	panicky := telemetrySinkFunc(func(context.Context, telemetry.MetricsSnapshot) error { panic("nil registry") })
	last := &countingSink{}

	err := export.MultiSink{first, second, panicky, last}.Export(context.Background(), snapshot(1))

	require.Error(t, err)
	assert.ErrorContains(t, err, "disk full")
	assert.ErrorContains(t, err, "nil registry")
	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)
	assert.Equal(t, 1, last.calls)
}

func TestMultiSink_Empty(t *testing.T) {
	assert.NoError(t, export.MultiSink{}.Export(context.Background(), snapshot(1)))
}

type telemetrySinkFunc func(context.Context, telemetry.MetricsSnapshot) error

func (f telemetrySinkFunc) Export(ctx context.Context, s telemetry.MetricsSnapshot) error {
	return f(ctx, s)
}

func TestPrometheusSink_ExposesSnapshot(t *testing.T) {
	sink := export.NewPrometheusSink(false)

	snap := snapshot(4)
	snap.System = sampler.Snapshot{CPUPercent: 12.5, Threads: 9, PeakThreads: 11, Status: sampler.StatusHealthy}
	snap.Errors = errtrack.Statistics{TotalErrors: 3, CriticalErrors: 1}
	snap.Requests = 40
	snap.ErrorRate = 0.075
	require.NoError(t, sink.Export(context.Background(), snap))

	rec := httptest.NewRecorder()
	sink.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	text := string(body)
	assert.Contains(t, text, "meetpulse_snapshot_seq 4")
	assert.Contains(t, text, "meetpulse_system_cpu_percent 12.5")
	assert.Contains(t, text, "meetpulse_system_peak_threads 11")
	assert.Contains(t, text, `meetpulse_operations{category="AUDIO"} 3`)
	assert.Contains(t, text, "meetpulse_requests 40")
	assert.Contains(t, text, "# TYPE meetpulse_operations gauge")
	assert.Contains(t, text, "# HELP meetpulse_system_cpu_percent Host CPU usage")
	assert.NotContains(t, text, "meetpulse_operations_total")
	assert.NotContains(t, text, "meetpulse_requests_total")
	assert.Contains(t, text, `meetpulse_operation_avg_ms{category="AUDIO"} 2`)
	assert.Contains(t, text, `meetpulse_tracked_errors{severity="critical"} 1`)
	assert.Contains(t, text, `meetpulse_business_counter{name="meetings_started"} 1`)
	assert.Contains(t, text, "meetpulse_error_rate 0.075")
}

func TestPrometheusSink_WithRuntimeCollectors(t *testing.T) {
	sink := export.NewPrometheusSink(true)

	rec := httptest.NewRecorder()
	sink.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Contains(t, rec.Body.String(), "go_goroutines")
}
