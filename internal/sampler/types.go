package sampler

import "time"

type Status string

const (
	StatusHealthy  Status = "HEALTHY"
	StatusWarning  Status = "WARNING"
	StatusCritical Status = "CRITICAL"
	StatusUnknown  Status = "UNKNOWN"
)

type Quantity string

const (
	QuantityCPU    Quantity = "CPU"
	QuantityMemory Quantity = "MEMORY"
)

// Reading is one raw probe result.
type Reading struct {
	CPUPercent      float64
	HeapUsedMB      float64
	HeapUsedPercent float64
	NonHeapMB       float64
	Threads         int
	Goroutines      int
}

// Snapshot is the published view of the latest reading. It is replaced
// wholesale on every successful tick.
type Snapshot struct {
	CPUPercent      float64            `json:"cpu_percent"`
	HeapUsedMB      float64            `json:"heap_used_mb"`
	HeapUsedPercent float64            `json:"heap_used_percent"`
	NonHeapMB       float64            `json:"non_heap_mb"`
	Threads         int                `json:"threads"`
	PeakThreads     int                `json:"peak_threads"`
	Goroutines      int                `json:"goroutines"`
	Uptime          time.Duration      `json:"uptime"`
	SampledAt       time.Time          `json:"sampled_at"`
	SampleAge       time.Duration      `json:"sample_age"`
	Status          Status             `json:"status"`
	Gauges          map[string]float64 `json:"gauges,omitempty"`
}

// Sampled reports whether the snapshot holds a real reading.
func (s Snapshot) Sampled() bool { return !s.SampledAt.IsZero() }

type Thresholds struct {
	Warning  float64
	Critical float64
}

func (t Thresholds) classify(v float64) Status {
	switch {
	case v >= t.Critical:
		return StatusCritical
	case v >= t.Warning:
		return StatusWarning
	}
	return StatusHealthy
}

type Alert struct {
	Quantity  Quantity  `json:"quantity"`
	Level     Status    `json:"level"`
	Value     float64   `json:"value"`
	Threshold float64   `json:"threshold"`
	At        time.Time `json:"at"`
}

// AlertState tracks one quantity. Level follows the latest reading even
// while alerts are held back by the cooldown.
type AlertState struct {
	Active    bool
	Level     Status
	LastAlert time.Time
}
