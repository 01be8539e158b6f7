package requests

import "os-project/internal/core"

type Job struct {
	ProcessId   string `json:"process_id"`
	BurstTime   int    `json:"burst_time"`
	ArrivalTime int    `json:"arrival_time"`
	Priority    int    `json:"priority"`
}

type ScheduleRequest struct {
	Policy     string `json:"policy,omitempty"`
	Preemptive *bool  `json:"preemptive,omitempty"`
	Jobs       []Job  `json:"jobs"`
}

func (r ScheduleRequest) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, core.NewProcessWithPriority(job.ProcessId, job.BurstTime, job.ArrivalTime, job.Priority))
	}
	return processes
}
