// Package sampler periodically probes process resources and raises
// cooldown-gated threshold alerts.
package sampler

//go:generate go tool mockery

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/puzpuzpuz/xsync/v3"

	"meetpulse/internal/clock"
	"meetpulse/internal/health"
)

type AlertHandler interface {
	HandleAlert(ctx context.Context, alert Alert)
}

type Config struct {
	CPU      Thresholds
	Memory   Thresholds
	Cooldown time.Duration
}

func DefaultConfig() Config {
	return Config{
		CPU:      Thresholds{Warning: 70, Critical: 85},
		Memory:   Thresholds{Warning: 75, Critical: 90},
		Cooldown: 5 * time.Minute,
	}
}

type Sampler struct {
	probe   Probe
	alerts  AlertHandler
	clock   clock.Clock
	logger  *slog.Logger
	cfg     Config
	started time.Time

	current     atomic.Pointer[Snapshot]
	peakThreads atomic.Int64
	emitted     atomic.Int64
	failures    atomic.Int64
	gauges      *xsync.MapOf[string, float64]

	mu         sync.Mutex
	alertState map[Quantity]*AlertState
}

// New builds a sampler. A nil alert handler logs alerts.
func New(probe Probe, alerts AlertHandler, clk clock.Clock, logger *slog.Logger, cfg Config) *Sampler {
	if clk == nil {
		clk = clock.Real{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if alerts == nil {
		alerts = LogAlertHandler{Logger: logger}
	}
	return &Sampler{
		probe:   probe,
		alerts:  alerts,
		clock:   clk,
		logger:  logger,
		cfg:     cfg,
		started: clk.Now(),
		gauges:  xsync.NewMapOf[string, float64](),
		alertState: map[Quantity]*AlertState{
			QuantityCPU:    {},
			QuantityMemory: {},
		},
	}
}

// Tick takes one reading, publishes it and evaluates both threshold
// ladders. On a probe error the previous snapshot stays in place.
func (s *Sampler) Tick(ctx context.Context) error {
	reading, err := s.read(ctx)
	if err != nil {
		s.failures.Add(1)
		s.logger.Warn("system probe failed", slog.String("error", err.Error()))
		return fmt.Errorf("failed to read system resources: %w", err)
	}

	now := s.clock.Now()
	peak := s.updatePeak(reading.Threads)

	snap := &Snapshot{
		CPUPercent:      reading.CPUPercent,
		HeapUsedMB:      reading.HeapUsedMB,
		HeapUsedPercent: reading.HeapUsedPercent,
		NonHeapMB:       reading.NonHeapMB,
		Threads:         reading.Threads,
		PeakThreads:     peak,
		Goroutines:      reading.Goroutines,
		Uptime:          now.Sub(s.started),
		SampledAt:       now,
		Status:          s.classify(reading),
		Gauges:          s.gaugeValues(),
	}
	s.current.Store(snap)

	var fired []Alert
	if a, ok := s.evaluate(QuantityCPU, reading.CPUPercent, s.cfg.CPU, now); ok {
		fired = append(fired, a)
	}
	if a, ok := s.evaluate(QuantityMemory, reading.HeapUsedPercent, s.cfg.Memory, now); ok {
		fired = append(fired, a)
	}
	for _, a := range fired {
		s.emitted.Add(1)
		s.alerts.HandleAlert(ctx, a)
	}
	return nil
}

func (s *Sampler) read(ctx context.Context) (r Reading, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("probe panicked: %v", p)
		}
	}()
	return s.probe.Read(ctx)
}

func (s *Sampler) updatePeak(threads int) int {
	n := int64(threads)
	for {
		cur := s.peakThreads.Load()
		if n <= cur {
			return int(cur)
		}
		if s.peakThreads.CompareAndSwap(cur, n) {
			return threads
		}
	}
}

func (s *Sampler) classify(r Reading) Status {
	cpu := s.cfg.CPU.classify(r.CPUPercent)
	mem := s.cfg.Memory.classify(r.HeapUsedPercent)
	switch {
	case cpu == StatusCritical || mem == StatusCritical:
		return StatusCritical
	case cpu == StatusWarning || mem == StatusWarning:
		return StatusWarning
	}
	return StatusHealthy
}

// evaluate applies one tick of the alert ladder for q. Gating is per
// quantity: a WARNING right after a CRITICAL inside the cooldown is
// suppressed just like a repeated CRITICAL. Dropping below WARNING clears
// the state immediately.
func (s *Sampler) evaluate(q Quantity, value float64, th Thresholds, now time.Time) (Alert, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.alertState[q]
	level := th.classify(value)
	if level == StatusHealthy {
		if st.Active {
			s.logger.Info("resource alert recovered",
				slog.String("quantity", string(q)),
				slog.Float64("value", value))
		}
		st.Active = false
		st.Level = StatusHealthy
		return Alert{}, false
	}

	if st.Active && now.Sub(st.LastAlert) <= s.cfg.Cooldown {
		st.Level = level
		return Alert{}, false
	}

	threshold := th.Warning
	if level == StatusCritical {
		threshold = th.Critical
	}
	st.Active = true
	st.Level = level
	st.LastAlert = now

	return Alert{Quantity: q, Level: level, Value: value, Threshold: threshold, At: now}, true
}

// Snapshot returns the latest published reading with SampleAge measured
// against the current time. Before the first successful tick the snapshot
// only carries uptime and StatusUnknown.
func (s *Sampler) Snapshot() Snapshot {
	now := s.clock.Now()
	cur := s.current.Load()
	if cur == nil {
		return Snapshot{Uptime: now.Sub(s.started), Status: StatusUnknown}
	}
	snap := *cur
	snap.SampleAge = now.Sub(snap.SampledAt)
	if snap.Gauges != nil {
		gauges := make(map[string]float64, len(snap.Gauges))
		for k, v := range snap.Gauges {
			gauges[k] = v
		}
		snap.Gauges = gauges
	}
	return snap
}

func (s *Sampler) AlertState(q Quantity) AlertState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if st, ok := s.alertState[q]; ok {
		return *st
	}
	return AlertState{}
}

func (s *Sampler) AlertsEmitted() int64 { return s.emitted.Load() }
func (s *Sampler) ProbeFailures() int64 { return s.failures.Load() }

// ObserveGauge stores the latest value of a forwarded system-level
// measurement; it shows up in the next published snapshot.
func (s *Sampler) ObserveGauge(name string, value float64) {
	s.gauges.Store(name, value)
}

func (s *Sampler) gaugeValues() map[string]float64 {
	if s.gauges.Size() == 0 {
		return nil
	}
	out := make(map[string]float64, s.gauges.Size())
	s.gauges.Range(func(k string, v float64) bool {
		out[k] = v
		return true
	})
	return out
}

// HealthIndicator maps the sampler's status onto a health result. A
// snapshot older than staleAfter is reported as WARNING.
func (s *Sampler) HealthIndicator(staleAfter time.Duration) health.Indicator {
	return health.IndicatorFunc(func(context.Context) (health.Result, error) {
		snap := s.Snapshot()
		if !snap.Sampled() {
			return health.Warning("no system sample yet"), nil
		}

		var res health.Result
		switch snap.Status {
		case StatusCritical:
			res = health.Down("system resources critical")
		case StatusWarning:
			res = health.Warning("system resources elevated")
		default:
			res = health.Up("system resources normal")
		}
		if staleAfter > 0 && snap.SampleAge > staleAfter && res.Status == health.StatusUp {
			res = health.Warning("system sample is stale")
		}
		return res.
			WithDetail("cpu_percent", snap.CPUPercent).
			WithDetail("heap_used_percent", snap.HeapUsedPercent).
			WithDetail("threads", snap.Threads).
			WithDetail("sample_age", snap.SampleAge.String()), nil
	})
}

// LogAlertHandler writes alerts to a structured logger.
type LogAlertHandler struct {
	Logger *slog.Logger
}

func (h LogAlertHandler) HandleAlert(ctx context.Context, a Alert) {
	level := slog.LevelWarn
	if a.Level == StatusCritical {
		level = slog.LevelError
	}
	h.Logger.Log(ctx, level, "resource threshold exceeded",
		slog.String("quantity", string(a.Quantity)),
		slog.String("level", string(a.Level)),
		slog.Float64("value", a.Value),
		slog.Float64("threshold", a.Threshold))
}
