package export

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"meetpulse/internal/telemetry"
)

const namespace = "meetpulse"

// PrometheusSink mirrors the latest snapshot into gauges on its own
// registry.
type PrometheusSink struct {
	registry *prometheus.Registry

	seq             prometheus.Gauge
	operations      *prometheus.GaugeVec
	avgMillis       *prometheus.GaugeVec
	maxMillis       *prometheus.GaugeVec
	cpuPercent      prometheus.Gauge
	heapUsedMB      prometheus.Gauge
	heapUsedPercent prometheus.Gauge
	threads         prometheus.Gauge
	peakThreads     prometheus.Gauge
	errors          *prometheus.GaugeVec
	requests        prometheus.Gauge
	errorRate       prometheus.Gauge
	counters        *prometheus.GaugeVec
}

// NewPrometheusSink builds the sink. withRuntime also registers the Go
// runtime and process collectors.
func NewPrometheusSink(withRuntime bool) *PrometheusSink {
	gauge := func(name, help string) prometheus.Gauge {
		return prometheus.NewGauge(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help})
	}
	gaugeVec := func(name, help string, labels ...string) *prometheus.GaugeVec {
		return prometheus.NewGaugeVec(prometheus.GaugeOpts{Namespace: namespace, Name: name, Help: help}, labels)
	}

	s := &PrometheusSink{
		registry:        prometheus.NewRegistry(),
		seq:             gauge("snapshot_seq", "Sequence number of the last exported snapshot."),
		operations:      gaugeVec("operations", "Completed operations per category.", "category"),
		avgMillis:       gaugeVec("operation_avg_ms", "Average operation duration per category in milliseconds.", "category"),
		maxMillis:       gaugeVec("operation_max_ms", "Longest operation duration per category in milliseconds.", "category"),
		cpuPercent:      gauge("system_cpu_percent", "Host CPU usage from /proc/stat."),
		heapUsedMB:      gauge("system_heap_used_mb", "Heap in use in megabytes."),
		heapUsedPercent: gauge("system_heap_used_percent", "Heap in use relative to the memory limit."),
		threads:         gauge("system_threads", "OS threads."),
		peakThreads:     gauge("system_peak_threads", "Highest OS thread count seen."),
		errors:          gaugeVec("tracked_errors", "Tracked error occurrences by severity.", "severity"),
		requests:        gauge("requests", "Requests served."),
		errorRate:       gauge("error_rate", "Recorded errors divided by requests."),
		counters:        gaugeVec("business_counter", "Business counters.", "name"),
	}

	s.registry.MustRegister(
		s.seq, s.operations, s.avgMillis, s.maxMillis,
		s.cpuPercent, s.heapUsedMB, s.heapUsedPercent, s.threads, s.peakThreads,
		s.errors, s.requests, s.errorRate, s.counters,
	)
	if withRuntime {
		s.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}
	return s
}

func (s *PrometheusSink) Export(_ context.Context, snap telemetry.MetricsSnapshot) error {
	s.seq.Set(float64(snap.Seq))
	for cat, m := range snap.Components {
		label := string(cat)
		s.operations.WithLabelValues(label).Set(float64(m.Count))
		s.avgMillis.WithLabelValues(label).Set(m.AverageMillis())
		s.maxMillis.WithLabelValues(label).Set(float64(m.MaxDuration.Microseconds()) / 1000.0)
	}

	s.cpuPercent.Set(snap.System.CPUPercent)
	s.heapUsedMB.Set(snap.System.HeapUsedMB)
	s.heapUsedPercent.Set(snap.System.HeapUsedPercent)
	s.threads.Set(float64(snap.System.Threads))
	s.peakThreads.Set(float64(snap.System.PeakThreads))

	s.errors.WithLabelValues("total").Set(float64(snap.Errors.TotalErrors))
	s.errors.WithLabelValues("critical").Set(float64(snap.Errors.CriticalErrors))
	s.errors.WithLabelValues("warning").Set(float64(snap.Errors.WarningErrors))
	s.requests.Set(float64(snap.Requests))
	s.errorRate.Set(snap.ErrorRate)

	for name, v := range snap.Counters {
		s.counters.WithLabelValues(name).Set(float64(v))
	}
	return nil
}

func (s *PrometheusSink) Handler() http.Handler {
	return promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{Registry: s.registry})
}
