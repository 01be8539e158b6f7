package responses

import "os-project/internal/schedulers"

type ProcessResponse struct {
	ProcessId      string `json:"process_id"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	Priority       int    `json:"priority"`
	CompletionTime int    `json:"completion_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
	ResponseTime   int    `json:"response_time"`
}

type SnapshotResponse struct {
	ProcessId string `json:"process_id"`
	Idle      bool   `json:"idle"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
}

type ScheduleResponse struct {
	Policy                string             `json:"policy"`
	Preemptive            bool               `json:"preemptive"`
	Empty                 bool               `json:"empty"`
	TotalTime             float64            `json:"total_time"`
	IdleTime              float64            `json:"idle_time"`
	AverageWaitingTime    float64            `json:"average_waiting_time"`
	AverageResponseTime   float64            `json:"average_response_time"`
	AverageTurnAroundTime float64            `json:"average_turn_around_time"`
	CpuUtilization        float64            `json:"cpu_utilization"`
	CpuThroughput         float64            `json:"cpu_throughput"`
	Timeline              []SnapshotResponse `json:"timeline"`
	Details               []ProcessResponse  `json:"details"`
}

// NewScheduleResponse flattens a simulation result. Details follow the
// caller's input order.
func NewScheduleResponse(policy schedulers.Policy, result schedulers.Result) ScheduleResponse {
	m := result.Metrics
	response := ScheduleResponse{
		Policy:                policy.Name,
		Preemptive:            policy.Preemptive,
		Empty:                 result.Kind == schedulers.ResultEmpty,
		TotalTime:             float64(m.TotalTime),
		IdleTime:              float64(m.IdleTime),
		AverageWaitingTime:    m.AverageWaitingTime,
		AverageResponseTime:   m.AverageResponseTime,
		AverageTurnAroundTime: m.AverageTurnAroundTime,
		CpuUtilization:        m.CpuUtilization,
		CpuThroughput:         m.Throughput,
		Timeline:              make([]SnapshotResponse, 0, len(result.Timeline)),
		Details:               make([]ProcessResponse, 0, len(result.Processes)),
	}

	for _, s := range result.Timeline {
		response.Timeline = append(response.Timeline, SnapshotResponse{
			ProcessId: s.Occupant.PID(),
			Idle:      s.Occupant.IsIdle(),
			Start:     s.Start,
			End:       s.End,
		})
	}

	for _, p := range result.Processes {
		response.Details = append(response.Details, ProcessResponse{
			ProcessId:      p.PID,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			CompletionTime: m.CompletionTime[p.PID],
			TurnAroundTime: m.TurnAroundTime[p.PID],
			WaitingTime:    m.WaitingTime[p.PID],
			ResponseTime:   m.ResponseTime[p.PID],
		})
	}
	return response
}
