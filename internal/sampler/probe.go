package sampler

import (
	"context"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"

	"github.com/prometheus/procfs"
)

const (
	bytesPerMB        = 1024 * 1024
	defaultCgroupRoot = "/sys/fs/cgroup"

	// cgroup v1 reports "no limit" as a page-aligned value near MaxInt64.
	unlimitedCgroupV1 = 1 << 62
)

type Probe interface {
	Read(ctx context.Context) (Reading, error)
}

type ProbeFunc func(ctx context.Context) (Reading, error)

func (f ProbeFunc) Read(ctx context.Context) (Reading, error) { return f(ctx) }

// RuntimeProbe reads host CPU and process threads from procfs and memory
// from the Go runtime. The first CPU reading is 0 since load is derived
// from the delta between two reads.
type RuntimeProbe struct {
	fs         procfs.FS
	cgroupRoot string

	mu        sync.Mutex
	prevTotal float64
	prevIdle  float64
	primed    bool
}

func NewRuntimeProbe() (*RuntimeProbe, error) {
	fs, err := procfs.NewDefaultFS()
	if err != nil {
		return nil, fmt.Errorf("failed to open procfs: %w", err)
	}
	return &RuntimeProbe{fs: fs, cgroupRoot: defaultCgroupRoot}, nil
}

func (p *RuntimeProbe) Read(ctx context.Context) (Reading, error) {
	if err := ctx.Err(); err != nil {
		return Reading{}, err
	}

	cpu, err := p.cpuPercent()
	if err != nil {
		return Reading{}, err
	}

	self, err := p.fs.Self()
	if err != nil {
		return Reading{}, fmt.Errorf("failed to open process stat: %w", err)
	}
	stat, err := self.Stat()
	if err != nil {
		return Reading{}, fmt.Errorf("failed to read process stat: %w", err)
	}

	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	limit, err := p.memoryLimit()
	if err != nil {
		return Reading{}, err
	}

	r := Reading{
		CPUPercent: cpu,
		HeapUsedMB: float64(ms.HeapAlloc) / bytesPerMB,
		NonHeapMB:  float64(ms.Sys-ms.HeapSys) / bytesPerMB,
		Threads:    stat.NumThreads,
		Goroutines: runtime.NumGoroutine(),
	}
	if limit > 0 {
		r.HeapUsedPercent = 100 * float64(ms.HeapAlloc) / float64(limit)
	}
	return r, nil
}

func (p *RuntimeProbe) cpuPercent() (float64, error) {
	st, err := p.fs.Stat()
	if err != nil {
		return 0, fmt.Errorf("failed to read cpu stat: %w", err)
	}
	c := st.CPUTotal
	idle := c.Idle + c.Iowait
	total := c.User + c.Nice + c.System + c.Idle + c.Iowait + c.IRQ + c.SoftIRQ + c.Steal

	p.mu.Lock()
	defer p.mu.Unlock()

	var pct float64
	if p.primed {
		deltaTotal := total - p.prevTotal
		deltaIdle := idle - p.prevIdle
		if deltaTotal > 0 {
			pct = 100 * (1 - deltaIdle/deltaTotal)
		}
	}
	p.prevTotal, p.prevIdle, p.primed = total, idle, true
	return math.Max(0, math.Min(100, pct)), nil
}

// memoryLimit is the heap percentage denominator.
func (p *RuntimeProbe) memoryLimit() (uint64, error) {
	var host uint64
	mi, err := p.fs.Meminfo()
	if err != nil {
		return 0, fmt.Errorf("failed to read meminfo: %w", err)
	}
	if mi.MemTotal != nil {
		host = *mi.MemTotal * 1024
	}
	cgroup, _ := cgroupMemoryLimit(p.cgroupRoot)
	return chooseMemoryLimit(debug.SetMemoryLimit(-1), cgroup, host), nil
}

// chooseMemoryLimit prefers GOMEMLIMIT, then the cgroup limit, then host
// memory. Zero means unknown. A limit above host memory is capped to it.
func chooseMemoryLimit(goLimit int64, cgroup, host uint64) uint64 {
	limit := host
	switch {
	case goLimit > 0 && goLimit < math.MaxInt64:
		limit = uint64(goLimit)
	case cgroup > 0:
		limit = cgroup
	}
	if host > 0 && limit > host {
		return host
	}
	return limit
}

// cgroupMemoryLimit reads the v2 memory.max file, falling back to the v1
// memory.limit_in_bytes. It reports false when no limit is set.
func cgroupMemoryLimit(root string) (uint64, bool) {
	for _, name := range []string{"memory.max", filepath.Join("memory", "memory.limit_in_bytes")} {
		raw, err := os.ReadFile(filepath.Join(root, name))
		if err != nil {
			continue
		}
		v := strings.TrimSpace(string(raw))
		if v == "max" {
			return 0, false
		}
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil || n == 0 || n >= unlimitedCgroupV1 {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
