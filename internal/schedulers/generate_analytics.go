package schedulers

import (
	"os-project/internal/core"
	"os-project/internal/util"
)

// Metrics holds the per-process maps, keyed by PID, and the run aggregates.
type Metrics struct {
	CompletionTime map[string]int
	TurnAroundTime map[string]int
	WaitingTime    map[string]int
	ResponseTime   map[string]int

	AverageTurnAroundTime float64
	AverageWaitingTime    float64
	AverageResponseTime   float64
	Throughput            float64

	TotalTime      int
	IdleTime       int
	CpuUtilization float64
}

func newMetrics(size int) Metrics {
	return Metrics{
		CompletionTime: make(map[string]int, size),
		TurnAroundTime: make(map[string]int, size),
		WaitingTime:    make(map[string]int, size),
		ResponseTime:   make(map[string]int, size),
	}
}

// generateMetrics derives every metric from the timeline and the caller's
// original descriptors. Turnaround must be known before waiting time.
func generateMetrics(processes []core.Process, timeline core.Timeline) Metrics {
	m := newMetrics(len(processes))

	for _, s := range timeline {
		if s.Occupant.IsIdle() {
			continue
		}
		pid := s.Occupant.PID()
		if _, ok := m.ResponseTime[pid]; !ok {
			m.ResponseTime[pid] = s.Start
		}
		m.CompletionTime[pid] = s.End
	}

	for _, p := range processes {
		m.TurnAroundTime[p.PID] = m.CompletionTime[p.PID] - p.ArrivalTime
	}
	for _, p := range processes {
		m.WaitingTime[p.PID] = m.TurnAroundTime[p.PID] - p.BurstTime
	}

	m.AverageTurnAroundTime = util.CalculateAverage(m.TurnAroundTime)
	m.AverageWaitingTime = util.CalculateAverage(m.WaitingTime)
	m.AverageResponseTime = util.CalculateAverage(m.ResponseTime)

	m.TotalTime = timeline.Span()
	m.IdleTime = timeline.IdleTime()
	m.Throughput = util.Ratio(float64(len(processes)), float64(m.TotalTime))
	m.CpuUtilization = util.Ratio(float64(m.TotalTime-m.IdleTime), float64(m.TotalTime))

	return m
}
