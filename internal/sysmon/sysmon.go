// Package sysmon provides system-wide CPU and memory usage sampling for the
// details view of a benchmark run.
package sysmon

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/mem"
)

// Stats holds a single snapshot of system-wide resource usage.
type Stats struct {
	CPUPercent   float64 // 0.0 .. 100.0
	MemPercent   float64 // 0.0 .. 100.0
	MemUsedBytes uint64
	NumCPU       int
}

// Sample collects a single system-wide CPU and memory snapshot.
// CPU uses interval=0 (delta since last call). Returns zero values on error.
func Sample() Stats {
	s := Stats{NumCPU: runtime.NumCPU()}
	cpuPcts, err := cpu.Percent(0, false)
	if err == nil && len(cpuPcts) > 0 {
		s.CPUPercent = cpuPcts[0]
	}
	vmem, err := mem.VirtualMemory()
	if err == nil && vmem != nil {
		s.MemPercent = vmem.UsedPercent
		s.MemUsedBytes = vmem.Used
	}
	return s
}

// Describe formats the snapshot as a single display line.
func (s Stats) Describe() string {
	return fmt.Sprintf("CPU %.1f%% across %d cores, memory %.1f%% used", s.CPUPercent, s.NumCPU, s.MemPercent)
}
