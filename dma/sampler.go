package dma

import (
	"log"
	"os"

	"github.com/shirou/gopsutil/process"
)

// UtilizationSampler periodically reports host CPU/memory usage
// during MoveData's busy-poll wait, grounded on monitoring/monitor.go's
// use of gopsutil/process for live-resource reporting during
// long-running operations (SPEC_FULL §6.7). It never changes when the
// wait loop exits — purely diagnostic.
type UtilizationSampler struct {
	proc   *process.Process
	logger *log.Logger
	every  int
	ticks  int
}

// NewUtilizationSampler samples every `every` poll iterations, logging
// through logger (log.Default() if nil).
func NewUtilizationSampler(every int, logger *log.Logger) *UtilizationSampler {
	if logger == nil {
		logger = log.Default()
	}
	if every <= 0 {
		every = 1000
	}

	proc, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		logger.Printf("dma: utilization sampler disabled: %v", err)
		return &UtilizationSampler{logger: logger, every: every}
	}

	return &UtilizationSampler{proc: proc, logger: logger, every: every}
}

// Tick should be called once per poll iteration of a MoveData wait
// loop. It logs CPU/memory usage every `every` calls.
func (s *UtilizationSampler) Tick() {
	s.ticks++
	if s.proc == nil || s.ticks%s.every != 0 {
		return
	}

	cpuPct, err := s.proc.CPUPercent()
	if err != nil {
		return
	}
	memInfo, err := s.proc.MemoryInfo()
	if err != nil {
		return
	}

	s.logger.Printf("dma: busy-wait poll #%d: cpu=%.1f%% rss=%dKB", s.ticks, cpuPct, memInfo.RSS/1024)
}
