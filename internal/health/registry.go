// Package health joins independent component probes into one verdict.
package health

//go:generate go tool mockery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"meetpulse/internal/clock"
)

var (
	ErrNotRegistered = errors.New("indicator not registered")
	ErrEmptyName     = errors.New("indicator name is required")
	ErrNilIndicator  = errors.New("indicator is nil")
	ErrCheckTimeout  = errors.New("health check timed out")
)

const defaultConcurrency = 8

type Option func(*Registry)

// WithTimeout bounds each probe. Zero disables the bound and a probe that
// never returns blocks its evaluation.
func WithTimeout(d time.Duration) Option {
	return func(r *Registry) { r.timeout = d }
}

// WithConcurrency caps how many probes EvaluateAll runs at once.
func WithConcurrency(n int) Option {
	return func(r *Registry) {
		if n > 0 {
			r.concurrency = n
		}
	}
}

func WithClock(c clock.Clock) Option {
	return func(r *Registry) { r.clock = c }
}

type Registry struct {
	mu         sync.RWMutex
	indicators map[string]Indicator

	logger      *slog.Logger
	clock       clock.Clock
	timeout     time.Duration
	concurrency int
}

func NewRegistry(logger *slog.Logger, opts ...Option) *Registry {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	r := &Registry{
		indicators:  make(map[string]Indicator),
		logger:      logger,
		clock:       clock.Real{},
		concurrency: defaultConcurrency,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds or replaces the indicator for name.
func (r *Registry) Register(name string, ind Indicator) error {
	if name == "" {
		return ErrEmptyName
	}
	if ind == nil {
		return ErrNilIndicator
	}
	r.mu.Lock()
	_, replaced := r.indicators[name]
	r.indicators[name] = ind
	r.mu.Unlock()

	if replaced {
		r.logger.Warn("health indicator replaced", slog.String("component", name))
	}
	return nil
}

func (r *Registry) Unregister(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.indicators[name]
	delete(r.indicators, name)
	return ok
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	names := make([]string, 0, len(r.indicators))
	for name := range r.indicators {
		names = append(names, name)
	}
	r.mu.RUnlock()
	slices.Sort(names)
	return names
}

// Evaluate runs one probe on the calling goroutine. It never fails: errors,
// panics, timeouts and unknown names all come back as DOWN.
func (r *Registry) Evaluate(ctx context.Context, name string) Result {
	r.mu.RLock()
	ind, ok := r.indicators[name]
	r.mu.RUnlock()
	if !ok {
		return Down(ErrNotRegistered.Error())
	}
	return r.check(ctx, name, ind)
}

// EvaluateAll fans every probe out and returns once all have answered.
func (r *Registry) EvaluateAll(ctx context.Context) map[string]Result {
	r.mu.RLock()
	snapshot := make(map[string]Indicator, len(r.indicators))
	for name, ind := range r.indicators {
		snapshot[name] = ind
	}
	r.mu.RUnlock()

	var (
		mu      sync.Mutex
		results = make(map[string]Result, len(snapshot))
		g       errgroup.Group
	)
	g.SetLimit(r.concurrency)

	for name, ind := range snapshot {
		g.Go(func() error {
			res := r.check(ctx, name, ind)
			mu.Lock()
			results[name] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	return results
}

func (r *Registry) OverallHealth(ctx context.Context) OverallHealth {
	return Aggregate(r.EvaluateAll(ctx), r.clock.Now())
}

func (r *Registry) check(ctx context.Context, name string, ind Indicator) Result {
	var (
		res Result
		err error
	)
	if r.timeout > 0 {
		res, err = r.checkWithTimeout(ctx, ind)
	} else {
		res, err = safeCheck(ctx, ind)
	}

	if err != nil {
		r.logger.Warn("health check failed",
			slog.String("component", name),
			slog.String("error", err.Error()))
		return Down(err.Error()).WithDetail("error", err.Error())
	}
	if !res.Status.valid() {
		r.logger.Warn("health check returned invalid status",
			slog.String("component", name),
			slog.String("status", string(res.Status)))
		return Down(fmt.Sprintf("invalid status %q", res.Status))
	}
	return res
}

type checkOutcome struct {
	res Result
	err error
}

func (r *Registry) checkWithTimeout(ctx context.Context, ind Indicator) (Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	done := make(chan checkOutcome, 1)
	go func() {
		res, err := safeCheck(ctx, ind)
		done <- checkOutcome{res: res, err: err}
	}()

	select {
	case out := <-done:
		return out.res, out.err
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return Result{}, ErrCheckTimeout
		}
		return Result{}, ctx.Err()
	}
}

func safeCheck(ctx context.Context, ind Indicator) (res Result, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("health check panicked: %v", p)
		}
	}()
	return ind.Check(ctx)
}
