package health

import (
	"context"
	"time"
)

type Status string

const (
	StatusUp      Status = "UP"
	StatusWarning Status = "WARNING"
	StatusDown    Status = "DOWN"
)

func (s Status) valid() bool {
	switch s {
	case StatusUp, StatusWarning, StatusDown:
		return true
	}
	return false
}

type Result struct {
	Status  Status         `json:"status"`
	Message string         `json:"message,omitempty"`
	Details map[string]any `json:"details,omitempty"`
}

func Up(message string) Result      { return Result{Status: StatusUp, Message: message} }
func Warning(message string) Result { return Result{Status: StatusWarning, Message: message} }
func Down(message string) Result    { return Result{Status: StatusDown, Message: message} }

// WithDetail returns a copy of r with key set in its details.
func (r Result) WithDetail(key string, value any) Result {
	details := make(map[string]any, len(r.Details)+1)
	for k, v := range r.Details {
		details[k] = v
	}
	details[key] = value
	r.Details = details
	return r
}

// Indicator reports the health of one component. Returning an error is
// equivalent to reporting DOWN with the error as message.
type Indicator interface {
	Check(ctx context.Context) (Result, error)
}

type IndicatorFunc func(ctx context.Context) (Result, error)

func (f IndicatorFunc) Check(ctx context.Context) (Result, error) { return f(ctx) }

type OverallHealth struct {
	Status            Status            `json:"status"`
	Components        map[string]Result `json:"components"`
	TotalComponents   int               `json:"total_components"`
	HealthyComponents int               `json:"healthy_components"`
	CheckedAt         time.Time         `json:"checked_at"`
}

// Aggregate derives the overall verdict: UP iff every component is UP,
// DOWN if any is DOWN, WARNING otherwise. No components is UP.
func Aggregate(results map[string]Result, at time.Time) OverallHealth {
	out := OverallHealth{
		Status:          StatusUp,
		Components:      results,
		TotalComponents: len(results),
		CheckedAt:       at,
	}
	if out.Components == nil {
		out.Components = map[string]Result{}
	}
	anyDown, anyWarning := false, false
	for _, r := range results {
		switch r.Status {
		case StatusUp:
			out.HealthyComponents++
		case StatusWarning:
			anyWarning = true
		default:
			anyDown = true
		}
	}
	switch {
	case anyDown:
		out.Status = StatusDown
	case anyWarning:
		out.Status = StatusWarning
	}
	return out
}
