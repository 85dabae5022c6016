// Package scheduler runs independent periodic tasks on a shared clock.
package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"meetpulse/internal/clock"
	"meetpulse/internal/health"
)

type TaskFunc func(ctx context.Context) error

type TaskStats struct {
	Name     string
	Interval time.Duration
	Runs     int64
	Failures int64
	LastRun  time.Time
	LastErr  string
}

type task struct {
	name     string
	interval time.Duration
	fn       TaskFunc

	runs     atomic.Int64
	failures atomic.Int64
	lastRun  atomic.Int64
	lastErr  atomic.Value
}

type Scheduler struct {
	clock  clock.Clock
	logger *slog.Logger

	mu        sync.Mutex
	tasks     []*task
	started   bool
	startedAt time.Time

	wg           sync.WaitGroup
	shutdownOnce sync.Once
	shutdownCh   chan struct{}
}

func New(clk clock.Clock, logger *slog.Logger) *Scheduler {
	if clk == nil {
		clk = clock.Real{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Scheduler{
		clock:      clk,
		logger:     logger,
		shutdownCh: make(chan struct{}),
	}
}

// Every registers fn to run once per interval. Tasks must be registered
// before Start.
func (s *Scheduler) Every(name string, interval time.Duration, fn TaskFunc) error {
	if interval <= 0 {
		return fmt.Errorf("task %q: interval must be positive, got %s", name, interval)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return fmt.Errorf("task %q: scheduler already started", name)
	}
	s.tasks = append(s.tasks, &task{name: name, interval: interval, fn: fn})
	return nil
}

func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return
	}
	s.started = true
	s.startedAt = s.clock.Now()

	for _, t := range s.tasks {
		ticker := s.clock.NewTicker(t.interval)
		s.wg.Add(1)
		go s.loop(ctx, t, ticker)
	}

	s.logger.Info("scheduler started", slog.Int("tasks", len(s.tasks)))
}

// Close stops every loop and waits for in-flight ticks to finish.
func (s *Scheduler) Close() {
	s.shutdownOnce.Do(func() {
		close(s.shutdownCh)
		s.wg.Wait()
	})
}

func (s *Scheduler) Stats() []TaskStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]TaskStats, 0, len(s.tasks))
	for _, t := range s.tasks {
		st := TaskStats{
			Name:     t.name,
			Interval: t.interval,
			Runs:     t.runs.Load(),
			Failures: t.failures.Load(),
		}
		if ns := t.lastRun.Load(); ns != 0 {
			st.LastRun = time.Unix(0, ns)
		}
		if v, ok := t.lastErr.Load().(string); ok {
			st.LastErr = v
		}
		out = append(out, st)
	}
	return out
}

// Started reports whether Start has been called.
func (s *Scheduler) Started() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.started
}

func (s *Scheduler) loop(ctx context.Context, t *task, ticker clock.Ticker) {
	defer s.wg.Done()
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.shutdownCh:
			return
		case <-ticker.C():
			if ctx.Err() != nil || s.closing() {
				return
			}
			s.runOnce(ctx, t)
		}
	}
}

func (s *Scheduler) closing() bool {
	select {
	case <-s.shutdownCh:
		return true
	default:
		return false
	}
}

// RunNow executes the named task synchronously, outside its cadence.
func (s *Scheduler) RunNow(ctx context.Context, name string) error {
	s.mu.Lock()
	var found *task
	for _, t := range s.tasks {
		if t.name == name {
			found = t
			break
		}
	}
	s.mu.Unlock()

	if found == nil {
		return fmt.Errorf("task %q not registered", name)
	}
	return s.runOnce(ctx, found)
}

func (s *Scheduler) runOnce(ctx context.Context, t *task) (err error) {
	start := s.clock.Now()
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("task panicked: %v", r)
		}
		t.runs.Add(1)
		t.lastRun.Store(start.UnixNano())
		if err != nil {
			t.failures.Add(1)
			t.lastErr.Store(err.Error())
			s.logger.Error("scheduled task failed",
				slog.String("task", t.name),
				slog.String("error", err.Error()))
			return
		}
		t.lastErr.Store("")
	}()

	return t.fn(ctx)
}

// HealthIndicator reports DOWN until Start and WARNING when any task has
// gone more than lag intervals without running.
func (s *Scheduler) HealthIndicator(lag int) health.Indicator {
	if lag < 1 {
		lag = 1
	}
	return health.IndicatorFunc(func(context.Context) (health.Result, error) {
		s.mu.Lock()
		started, since := s.started, s.startedAt
		s.mu.Unlock()
		if !started {
			return health.Down("scheduler not started"), nil
		}

		now := s.clock.Now()
		var overdue []string
		for _, st := range s.Stats() {
			last := st.LastRun
			if last.IsZero() || last.Before(since) {
				last = since
			}
			if now.Sub(last) > time.Duration(lag)*st.Interval {
				overdue = append(overdue, st.Name)
			}
		}

		res := health.Up("all tasks on schedule")
		if len(overdue) > 0 {
			res = health.Warning(fmt.Sprintf("%d task(s) overdue", len(overdue))).
				WithDetail("overdue", overdue)
		}
		return res, nil
	})
}
