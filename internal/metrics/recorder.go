package metrics

//go:generate go tool mockery

import (
	"log/slog"
	"strings"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"meetpulse/internal/clock"
)

const (
	uncategorized    Category = "UNCATEGORIZED"
	unknownComponent          = "UNKNOWN"
)

// GaugeObserver receives values of system-level categories.
type GaugeObserver interface {
	ObserveGauge(name string, value float64)
}

// categoryStats is stored by value and replaced as a whole, so a reader
// never sees a sample half applied.
type categoryStats struct {
	count   int64
	totalNs int64
	maxNs   int64
}

func (c categoryStats) add(d time.Duration) categoryStats {
	ns := int64(d)
	c.count++
	c.totalNs += ns
	c.maxNs = max(c.maxNs, ns)
	return c
}

func (c categoryStats) snapshot(category Category) ComponentMetrics {
	m := ComponentMetrics{
		Category:      category,
		Count:         c.count,
		TotalDuration: time.Duration(c.totalNs),
		MaxDuration:   time.Duration(c.maxNs),
	}
	if c.count > 0 {
		m.AverageDuration = time.Duration(c.totalNs / c.count)
	}
	return m
}

type Option func(*Recorder)

// WithGaugeObserver forwards completed spans of the given categories to obs.
func WithGaugeObserver(obs GaugeObserver, categories ...Category) Option {
	return func(r *Recorder) {
		r.gauges = obs
		for _, c := range categories {
			r.gaugeCategories[normalizeCategory(c)] = struct{}{}
		}
	}
}

// Recorder keeps lock-free per-category timers and error counters. All
// reporting methods are fire-and-forget and safe for concurrent use.
type Recorder struct {
	clock  clock.Clock
	logger *slog.Logger

	categories *xsync.MapOf[Category, categoryStats]
	errors     *xsync.MapOf[ErrorKey, *atomic.Int64]
	counters   *xsync.MapOf[string, *atomic.Int64]

	totalErrors atomic.Int64
	requests    atomic.Int64

	gauges          GaugeObserver
	gaugeCategories map[Category]struct{}
}

func NewRecorder(clk clock.Clock, logger *slog.Logger, opts ...Option) *Recorder {
	if clk == nil {
		clk = clock.Real{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Recorder{
		clock:           clk,
		logger:          logger,
		categories:      xsync.NewMapOf[Category, categoryStats](),
		errors:          xsync.NewMapOf[ErrorKey, *atomic.Int64](),
		counters:        xsync.NewMapOf[string, *atomic.Int64](),
		gaugeCategories: make(map[Category]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Begin opens a measurement span. The span records exactly one sample on
// its first End.
func (r *Recorder) Begin(category Category, operation string) *Span {
	return &Span{
		recorder:  r,
		category:  normalizeCategory(category),
		operation: operation,
		start:     r.clock.Now(),
	}
}

// Complete ends span; it is equivalent to span.End and tolerates nil.
func (r *Recorder) Complete(span *Span) {
	span.End()
}

// Time runs fn inside a span of the given category.
func (r *Recorder) Time(category Category, operation string, fn func() error) error {
	span := r.Begin(category, operation)
	defer span.End()
	return fn()
}

// Observe records an externally measured duration.
func (r *Recorder) Observe(category Category, operation string, d time.Duration) {
	r.record(normalizeCategory(category), operation, d)
}

func (r *Recorder) record(category Category, operation string, d time.Duration) {
	if d < 0 {
		d = 0
	}
	var created bool
	r.categories.Compute(category, func(old categoryStats, loaded bool) (categoryStats, bool) {
		created = !loaded
		return old.add(d), false
	})
	if created {
		r.logger.Debug("new operation category", slog.String("category", string(category)))
	}

	if r.gauges == nil {
		return
	}
	if _, ok := r.gaugeCategories[category]; ok {
		name := operation
		if name == "" {
			name = string(category)
		}
		r.gauges.ObserveGauge(name, float64(d.Microseconds())/1000.0)
	}
}

// RecordError bumps the counter for component/errorType.
func (r *Recorder) RecordError(component, errorType string) {
	key := ErrorKey{
		Component: normalizeName(component),
		ErrorType: normalizeName(errorType),
	}
	counter, _ := r.errors.LoadOrCompute(key, func() *atomic.Int64 { return new(atomic.Int64) })
	counter.Add(1)
	r.totalErrors.Add(1)
}

// Increment adds delta to a named business counter.
func (r *Recorder) Increment(name string, delta int64) {
	if name == "" {
		return
	}
	counter, _ := r.counters.LoadOrCompute(name, func() *atomic.Int64 { return new(atomic.Int64) })
	counter.Add(delta)
}

// RecordRequest counts one served request.
func (r *Recorder) RecordRequest() {
	r.requests.Add(1)
}

// TotalRequests is a monotonically increasing count of served requests.
func (r *Recorder) TotalRequests() int64 {
	return r.requests.Load()
}

func (r *Recorder) TotalErrors() int64 {
	return r.totalErrors.Load()
}

// TotalOperations sums span counts over every category.
func (r *Recorder) TotalOperations() int64 {
	var total int64
	r.categories.Range(func(_ Category, s categoryStats) bool {
		total += s.count
		return true
	})
	return total
}

func (r *Recorder) MetricsFor(category Category) ComponentMetrics {
	category = normalizeCategory(category)
	stats, ok := r.categories.Load(category)
	if !ok {
		return ComponentMetrics{Category: category}
	}
	return stats.snapshot(category)
}

func (r *Recorder) Metrics() map[Category]ComponentMetrics {
	out := make(map[Category]ComponentMetrics, r.categories.Size())
	r.categories.Range(func(c Category, s categoryStats) bool {
		out[c] = s.snapshot(c)
		return true
	})
	return out
}

func (r *Recorder) ErrorCounts() map[ErrorKey]int64 {
	out := make(map[ErrorKey]int64, r.errors.Size())
	r.errors.Range(func(k ErrorKey, v *atomic.Int64) bool {
		out[k] = v.Load()
		return true
	})
	return out
}

func (r *Recorder) Counters() map[string]int64 {
	out := make(map[string]int64, r.counters.Size())
	r.counters.Range(func(k string, v *atomic.Int64) bool {
		out[k] = v.Load()
		return true
	})
	out["requests_total"] = r.requests.Load()
	out["errors_total"] = r.totalErrors.Load()
	return out
}

func normalizeCategory(c Category) Category {
	s := strings.ToUpper(strings.TrimSpace(string(c)))
	if s == "" {
		return uncategorized
	}
	return Category(s)
}

func normalizeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return unknownComponent
	}
	return s
}
