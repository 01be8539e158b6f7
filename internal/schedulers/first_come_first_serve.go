package schedulers

// FirstComeFirstServe runs processes in arrival order. Simultaneous arrivals
// keep their input order.
func FirstComeFirstServe() Policy {
	return Policy{
		Name:         "fcfs",
		ArrivalOrder: byArrival,
		ReadyOrder:   byArrival,
		Preemptive:   false,
	}
}
