package schedulers

import (
	"cmp"

	"os-project/internal/core"
)

// ShortestRemainingTimeFirst admits processes by arrival, shorter burst first
// on ties, and always runs the one with the least remaining burst. A newly
// arrived shorter job preempts the running one.
func ShortestRemainingTimeFirst() Policy {
	return Policy{
		Name:         "srtf",
		ArrivalOrder: arrivalThenBurst,
		ReadyOrder:   byRemaining,
		Preemptive:   true,
	}
}

// ShortestJobFirst uses the same orderings without preemption: a started job
// always runs to completion.
func ShortestJobFirst() Policy {
	return Policy{
		Name:         "sjf",
		ArrivalOrder: arrivalThenBurst,
		ReadyOrder:   byRemaining,
		Preemptive:   false,
	}
}

func arrivalThenBurst(a, b *core.Process) int {
	if c := byArrival(a, b); c != 0 {
		return c
	}
	return cmp.Compare(a.BurstTime, b.BurstTime)
}
