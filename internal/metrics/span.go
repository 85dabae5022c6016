package metrics

import (
	"sync/atomic"
	"time"
)

// Span is an open measurement. It is safe to End from several goroutines;
// only the first call records.
type Span struct {
	recorder  *Recorder
	category  Category
	operation string
	start     time.Time
	done      atomic.Bool
}

func (s *Span) Category() Category { return s.category }
func (s *Span) Operation() string  { return s.operation }
func (s *Span) Start() time.Time   { return s.start }
func (s *Span) Completed() bool    { return s != nil && s.done.Load() }

// End records the span's duration and reports whether this call did the
// recording.
func (s *Span) End() bool {
	if s == nil || s.recorder == nil {
		return false
	}
	if !s.done.CompareAndSwap(false, true) {
		return false
	}
	s.recorder.record(s.category, s.operation, s.recorder.clock.Now().Sub(s.start))
	return true
}
