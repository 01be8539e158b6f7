package schedulers

import (
	"cmp"

	"os-project/internal/core"
)

// PriorityScheduling runs the ready process with the lowest priority value,
// falling back to the shortest remaining burst.
func PriorityScheduling(preemptive bool) Policy {
	name := "priority"
	if preemptive {
		name = "priority-preemptive"
	}
	return Policy{
		Name:         name,
		ArrivalOrder: arrivalThenPriority,
		ReadyOrder:   priorityThenRemaining,
		Preemptive:   preemptive,
	}
}

func arrivalThenPriority(a, b *core.Process) int {
	if c := byArrival(a, b); c != 0 {
		return c
	}
	return cmp.Compare(a.Priority, b.Priority)
}

func priorityThenRemaining(a, b *core.Process) int {
	if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
		return c
	}
	return byRemaining(a, b)
}
