package handler

//go:generate go tool mockery

import (
	"context"
	"time"

	"meetpulse/internal/errtrack"
	"meetpulse/internal/health"
	"meetpulse/internal/telemetry"
	"meetpulse/internal/validation"
)

type SnapshotProvider interface {
	CurrentSnapshot() (telemetry.MetricsSnapshot, error)
}

type HealthChecker interface {
	OverallHealth(ctx context.Context) health.OverallHealth
	Evaluate(ctx context.Context, name string) health.Result
	Names() []string
}

type ErrorQuerier interface {
	StatisticsFor(component string) errtrack.Statistics
	OverallStatistics() errtrack.Statistics
	Trends(window time.Duration) errtrack.Trend
	MostFrequent(n int) []errtrack.Record
	MostRecent(n int) []errtrack.Record
}

type QueryValidator interface {
	ParseWindow(raw string) (time.Duration, error)
	ValidateComponent(raw string) (string, error)
	ParseLimit(raw string) (int, error)
	ParseOrder(raw string) (validation.Order, error)
}

type ResponseCache interface {
	Get(key string) ([]byte, bool)
	Set(key string, body []byte)
}

type BusinessRecorder interface {
	Increment(name string, delta int64)
}
