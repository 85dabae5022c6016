package telemetry

import (
	"maps"
	"time"

	"meetpulse/internal/errtrack"
	"meetpulse/internal/metrics"
	"meetpulse/internal/sampler"
)

// MetricsSnapshot is an immutable point-in-time bundle of performance,
// system and error data. Values handed out by the coordinator are copies.
type MetricsSnapshot struct {
	ID         string                                        `json:"id"`
	Seq        uint64                                        `json:"seq"`
	At         time.Time                                     `json:"at"`
	Components map[metrics.Category]metrics.ComponentMetrics `json:"components"`
	System     sampler.Snapshot                              `json:"system"`
	Errors     errtrack.Statistics                           `json:"errors"`
	Counters   map[string]int64                              `json:"counters"`
	Requests   int64                                         `json:"requests"`
	ErrorCount int64                                         `json:"error_count"`
	ErrorRate  float64                                       `json:"error_rate"`
}

func (s MetricsSnapshot) clone() MetricsSnapshot {
	out := s
	out.Components = maps.Clone(s.Components)
	out.Counters = maps.Clone(s.Counters)
	out.System.Gauges = maps.Clone(s.System.Gauges)
	return out
}
