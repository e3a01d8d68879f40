// Package health samples process and host resource usage for the
// /api/health endpoint.
package health

import (
	"os"
	"runtime"
	"time"

	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

type Status struct {
	UptimeSeconds      float64 `json:"uptimeSeconds"`
	Goroutines         int     `json:"goroutines"`
	CPUPercent         float64 `json:"cpuPercent"`
	RSSBytes           uint64  `json:"rssBytes"`
	HostMemUsedPercent float64 `json:"hostMemUsedPercent"`
}

type Checker struct {
	started time.Time
	proc    *process.Process
}

func NewChecker() (*Checker, error) {
	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		return nil, err
	}
	return &Checker{
		started: time.Now(),
		proc:    proc,
	}, nil
}

// Status samples the current resource usage. Individual probe
// failures leave the corresponding field zero rather than failing the
// whole check.
func (c *Checker) Status() Status {
	st := Status{
		UptimeSeconds: time.Since(c.started).Seconds(),
		Goroutines:    runtime.NumGoroutine(),
	}

	if pct, err := c.proc.CPUPercent(); err == nil {
		st.CPUPercent = pct
	}
	if info, err := c.proc.MemoryInfo(); err == nil && info != nil {
		st.RSSBytes = info.RSS
	}
	if vm, err := mem.VirtualMemory(); err == nil && vm != nil {
		st.HostMemUsedPercent = vm.UsedPercent
	}

	return st
}
