package monitor

import (
	"context"
	"fmt"
	"math"
	"os"
	"sync"

	"github.com/shirou/gopsutil/v4/process"
)

// Stats contains process resource statistics
type Stats struct {
	CPU     float64
	MEM     float64 // in MB
	Threads int32
}

// String formats the stats for the status bar
func (s Stats) String() string {
	return fmt.Sprintf("CPU %.1f%% · MEM %.1fMB", s.CPU, s.MEM)
}

// Monitor samples the resource usage of one process
type Monitor interface {
	Sample(ctx context.Context) (Stats, error)
}

type monitor struct {
	pid  int
	proc *process.Process
	mu   sync.Mutex
}

// NewMonitor creates a Monitor for the running navigator
func NewMonitor() Monitor {
	return NewMonitorFor(os.Getpid())
}

// NewMonitorFor creates a Monitor for pid
func NewMonitorFor(pid int) Monitor {
	return &monitor{pid: pid}
}

// Sample reads current CPU, memory and thread usage. Unreadable metrics stay zero.
func (m *monitor) Sample(ctx context.Context) (Stats, error) {
	if m.pid <= 0 || m.pid > math.MaxInt32 {
		return Stats{}, nil
	}

	proc, err := m.process(ctx)
	if err != nil {
		return Stats{}, err
	}

	stats := Stats{}

	if cpuPercent, err := proc.CPUPercentWithContext(ctx); err == nil {
		stats.CPU = cpuPercent
	}

	if memInfo, err := proc.MemoryInfoWithContext(ctx); err == nil {
		stats.MEM = float64(memInfo.RSS) / 1024 / 1024
	}

	if threads, err := proc.NumThreadsWithContext(ctx); err == nil {
		stats.Threads = threads
	}

	return stats, nil
}

// process returns the cached process handle
func (m *monitor) process(ctx context.Context) (*process.Process, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.proc != nil {
		return m.proc, nil
	}

	proc, err := process.NewProcessWithContext(ctx, int32(m.pid)) // #nosec G115 -- PID range checked by caller
	if err != nil {
		return nil, err
	}

	m.proc = proc

	return proc, nil
}
