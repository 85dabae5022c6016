package errtrack

import "time"

type Severity string

const (
	SeverityInfo     Severity = "INFO"
	SeverityWarning  Severity = "WARNING"
	SeverityCritical Severity = "CRITICAL"
)

// ParseSeverity maps free-form input to a severity; anything unknown is INFO.
func ParseSeverity(s string) Severity {
	switch Severity(s) {
	case SeverityCritical, SeverityWarning:
		return Severity(s)
	}
	return SeverityInfo
}

type Key struct {
	Component string
	ErrorType string
}

type Record struct {
	Component     string    `json:"component"`
	ErrorType     string    `json:"error_type"`
	Message       string    `json:"message"`
	Severity      Severity  `json:"severity"`
	FirstSeen     time.Time `json:"first_seen"`
	LastSeen      time.Time `json:"last_seen"`
	Count         int64     `json:"count"`
	CriticalCount int64     `json:"critical_count"`
	WarningCount  int64     `json:"warning_count"`

	seq uint64
}

type Statistics struct {
	Component      string   `json:"component,omitempty"`
	TotalErrors    int64    `json:"total_errors"`
	CriticalErrors int64    `json:"critical_errors"`
	WarningErrors  int64    `json:"warning_errors"`
	DistinctErrors int      `json:"distinct_errors"`
	Severity       Severity `json:"severity"`
}

func (s *Statistics) add(r Record) {
	s.TotalErrors += r.Count
	s.CriticalErrors += r.CriticalCount
	s.WarningErrors += r.WarningCount
	s.DistinctErrors++
}

func (s *Statistics) finish() {
	switch {
	case s.CriticalErrors > 0:
		s.Severity = SeverityCritical
	case s.WarningErrors > 0:
		s.Severity = SeverityWarning
	default:
		s.Severity = SeverityInfo
	}
}

type Trend struct {
	Window         time.Duration `json:"window"`
	Count          int64         `json:"count"`
	CriticalCount  int64         `json:"critical_count"`
	WarningCount   int64         `json:"warning_count"`
	RatePerMinute  float64       `json:"rate_per_minute"`
	DistinctErrors int           `json:"distinct_errors"`
}

type Pattern struct {
	ErrorType  string   `json:"error_type"`
	Components []string `json:"components"`
}

type AnalysisReport struct {
	At           time.Time `json:"at"`
	Trend        Trend     `json:"trend"`
	ErrorRatePct float64   `json:"error_rate_pct"`
	RateLevel    Severity  `json:"rate_level"`
	Patterns     []Pattern `json:"patterns"`
	Evicted      int       `json:"evicted"`
}
