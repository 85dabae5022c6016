// Package errtrack aggregates error occurrences per component and error
// type for trend and pattern analysis.
package errtrack

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"meetpulse/internal/clock"
	"meetpulse/internal/health"
)

// OperationCounter supplies the number of operations errors are measured
// against. It must be monotonically increasing.
type OperationCounter interface {
	TotalOperations() int64
}

type Config struct {
	Retention           time.Duration
	TrendWindow         time.Duration
	RateWarningPct      float64
	RateCriticalPct     float64
	PatternMinComponent int
}

func DefaultConfig() Config {
	return Config{
		Retention:           24 * time.Hour,
		TrendWindow:         time.Hour,
		RateWarningPct:      5,
		RateCriticalPct:     10,
		PatternMinComponent: 3,
	}
}

type Tracker struct {
	clock  clock.Clock
	logger *slog.Logger
	ops    OperationCounter
	cfg    Config

	records *xsync.MapOf[Key, Record]
	seq     atomic.Uint64

	bySeverity *xsync.MapOf[Severity, *atomic.Int64]
	analyses   atomic.Int64
	lastReport atomic.Pointer[AnalysisReport]
}

// New builds a tracker. ops may be nil, in which case the error rate check
// is skipped.
func New(clk clock.Clock, logger *slog.Logger, ops OperationCounter, cfg Config) *Tracker {
	if clk == nil {
		clk = clock.Real{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Tracker{
		clock:      clk,
		logger:     logger,
		ops:        ops,
		cfg:        cfg,
		records:    xsync.NewMapOf[Key, Record](),
		bySeverity: xsync.NewMapOf[Severity, *atomic.Int64](),
	}
}

// RecordError creates or updates the record for component/errorType.
func (t *Tracker) RecordError(component, errorType, message string, severity Severity) {
	key := Key{Component: orUnknown(component), ErrorType: orUnknown(errorType)}
	severity = ParseSeverity(string(severity))
	now := t.clock.Now()

	t.records.Compute(key, func(old Record, loaded bool) (Record, bool) {
		if !loaded {
			old = Record{
				Component: key.Component,
				ErrorType: key.ErrorType,
				FirstSeen: now,
				LastSeen:  now,
				seq:       t.seq.Add(1),
			}
		}
		old.Message = message
		old.Severity = severity
		old.Count++
		if now.After(old.LastSeen) {
			old.LastSeen = now
		}
		switch severity {
		case SeverityCritical:
			old.CriticalCount++
		case SeverityWarning:
			old.WarningCount++
		}
		return old, false
	})

	counter, _ := t.bySeverity.LoadOrCompute(severity, func() *atomic.Int64 { return new(atomic.Int64) })
	counter.Add(1)
}

func (t *Tracker) Record(component, errorType string) (Record, bool) {
	return t.records.Load(Key{Component: component, ErrorType: errorType})
}

// SeverityCounts are lifetime occurrence counters; eviction does not
// lower them.
func (t *Tracker) SeverityCounts() map[Severity]int64 {
	out := map[Severity]int64{SeverityInfo: 0, SeverityWarning: 0, SeverityCritical: 0}
	t.bySeverity.Range(func(s Severity, c *atomic.Int64) bool {
		out[s] = c.Load()
		return true
	})
	return out
}

func (t *Tracker) StatisticsFor(component string) Statistics {
	stats := Statistics{Component: component}
	t.records.Range(func(k Key, r Record) bool {
		if k.Component == component {
			stats.add(r)
		}
		return true
	})
	stats.finish()
	return stats
}

func (t *Tracker) OverallStatistics() Statistics {
	var stats Statistics
	t.records.Range(func(_ Key, r Record) bool {
		stats.add(r)
		return true
	})
	stats.finish()
	return stats
}

// Components lists every component with at least one tracked record.
func (t *Tracker) Components() []string {
	seen := make(map[string]struct{})
	t.records.Range(func(k Key, _ Record) bool {
		seen[k.Component] = struct{}{}
		return true
	})
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}

// Trends sums occurrences of records last seen within [now-window, now].
func (t *Tracker) Trends(window time.Duration) Trend {
	now := t.clock.Now()
	since := now.Add(-window)
	trend := Trend{Window: window}
	if window <= 0 {
		return trend
	}
	t.records.Range(func(_ Key, r Record) bool {
		if r.LastSeen.Before(since) || r.LastSeen.After(now) {
			return true
		}
		trend.Count += r.Count
		trend.CriticalCount += r.CriticalCount
		trend.WarningCount += r.WarningCount
		trend.DistinctErrors++
		return true
	})
	trend.RatePerMinute = float64(trend.Count) / window.Minutes()
	return trend
}

// MostFrequent returns up to n records by descending count.
func (t *Tracker) MostFrequent(n int) []Record {
	return t.top(n, func(a, b Record) int { return cmp.Compare(b.Count, a.Count) })
}

// MostRecent returns up to n records by descending last-seen time.
func (t *Tracker) MostRecent(n int) []Record {
	return t.top(n, func(a, b Record) int { return b.LastSeen.Compare(a.LastSeen) })
}

func (t *Tracker) top(n int, order func(a, b Record) int) []Record {
	if n <= 0 {
		return []Record{}
	}
	all := t.snapshot()
	slices.SortFunc(all, func(a, b Record) int {
		if c := order(a, b); c != 0 {
			return c
		}
		return cmp.Compare(a.seq, b.seq)
	})
	if len(all) > n {
		all = all[:n]
	}
	return all
}

func (t *Tracker) snapshot() []Record {
	out := make([]Record, 0, t.records.Size())
	t.records.Range(func(_ Key, r Record) bool {
		out = append(out, r)
		return true
	})
	return out
}

// Analyze runs one scheduled analysis pass: error rate over the trend
// window, cross-component pattern detection and stale eviction.
func (t *Tracker) Analyze(ctx context.Context) (report AnalysisReport, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("error analysis panicked: %v", p)
		}
	}()
	if err := ctx.Err(); err != nil {
		return AnalysisReport{}, err
	}

	report.At = t.clock.Now()
	report.Trend = t.Trends(t.cfg.TrendWindow)
	report.ErrorRatePct, report.RateLevel = t.errorRate(report.Trend)
	t.logRate(report)

	report.Patterns = t.DetectPatterns()
	for _, p := range report.Patterns {
		t.logger.Warn("error pattern detected",
			slog.String("error_type", p.ErrorType),
			slog.Int("components", len(p.Components)),
			slog.String("affected", strings.Join(p.Components, ",")))
	}

	report.Evicted = t.EvictStale()

	t.analyses.Add(1)
	stored := report
	t.lastReport.Store(&stored)
	return report, nil
}

func (t *Tracker) errorRate(trend Trend) (float64, Severity) {
	if t.ops == nil {
		return 0, SeverityInfo
	}
	total := t.ops.TotalOperations()
	if total <= 0 {
		return 0, SeverityInfo
	}
	pct := 100 * float64(trend.Count) / float64(total)
	switch {
	case pct >= t.cfg.RateCriticalPct:
		return pct, SeverityCritical
	case pct >= t.cfg.RateWarningPct:
		return pct, SeverityWarning
	}
	return pct, SeverityInfo
}

func (t *Tracker) logRate(r AnalysisReport) {
	attrs := []any{
		slog.Int64("errors", r.Trend.Count),
		slog.Int64("critical", r.Trend.CriticalCount),
		slog.Float64("rate_per_minute", r.Trend.RatePerMinute),
		slog.Float64("error_rate_pct", r.ErrorRatePct),
	}
	switch r.RateLevel {
	case SeverityCritical:
		t.logger.Error("error rate critical", attrs...)
	case SeverityWarning:
		t.logger.Warn("error rate elevated", attrs...)
	default:
		t.logger.Info("error trend analysed", attrs...)
	}
}

// DetectPatterns finds error types reported by at least
// PatternMinComponent distinct components.
func (t *Tracker) DetectPatterns() []Pattern {
	byType := make(map[string]map[string]struct{})
	t.records.Range(func(k Key, _ Record) bool {
		set, ok := byType[k.ErrorType]
		if !ok {
			set = make(map[string]struct{})
			byType[k.ErrorType] = set
		}
		set[k.Component] = struct{}{}
		return true
	})

	patterns := []Pattern{}
	for errType, set := range byType {
		if len(set) < t.cfg.PatternMinComponent {
			continue
		}
		comps := make([]string, 0, len(set))
		for c := range set {
			comps = append(comps, c)
		}
		slices.Sort(comps)
		patterns = append(patterns, Pattern{ErrorType: errType, Components: comps})
	}
	slices.SortFunc(patterns, func(a, b Pattern) int { return cmp.Compare(a.ErrorType, b.ErrorType) })
	return patterns
}

// EvictStale drops records whose last occurrence is older than the
// retention window and returns how many were removed.
func (t *Tracker) EvictStale() int {
	now := t.clock.Now()
	var stale []Key
	t.records.Range(func(k Key, r Record) bool {
		if now.Sub(r.LastSeen) > t.cfg.Retention {
			stale = append(stale, k)
		}
		return true
	})

	evicted := 0
	for _, k := range stale {
		t.records.Compute(k, func(old Record, loaded bool) (Record, bool) {
			del := loaded && now.Sub(old.LastSeen) > t.cfg.Retention
			if del {
				evicted++
			}
			return old, del
		})
	}
	if evicted > 0 {
		t.logger.Info("evicted stale error records", slog.Int("count", evicted))
	}
	return evicted
}

func (t *Tracker) LastReport() (AnalysisReport, bool) {
	r := t.lastReport.Load()
	if r == nil {
		return AnalysisReport{}, false
	}
	return *r, true
}

func (t *Tracker) Analyses() int64 { return t.analyses.Load() }

// HealthIndicator reports DOWN when critical errors occurred within
// window, WARNING for warnings, UP otherwise.
func (t *Tracker) HealthIndicator(window time.Duration) health.Indicator {
	return health.IndicatorFunc(func(context.Context) (health.Result, error) {
		trend := t.Trends(window)
		var res health.Result
		switch {
		case trend.CriticalCount > 0:
			res = health.Down("critical errors reported recently")
		case trend.WarningCount > 0:
			res = health.Warning("warnings reported recently")
		default:
			res = health.Up("no recent errors of concern")
		}
		return res.
			WithDetail("window", window.String()).
			WithDetail("errors", trend.Count).
			WithDetail("critical", trend.CriticalCount), nil
	})
}

func orUnknown(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "UNKNOWN"
	}
	return s
}
