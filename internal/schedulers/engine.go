package schedulers

import (
	"log/slog"
	"slices"

	"os-project/internal/core"
)

type ResultKind int

const (
	ResultNormal ResultKind = iota
	// ResultEmpty marks a run over no processes: the timeline holds a single
	// zero-length idle snapshot and every metric is zero.
	ResultEmpty
)

func (k ResultKind) String() string {
	if k == ResultEmpty {
		return "empty"
	}
	return "normal"
}

// Result is everything a simulation produces. It shares no state with the
// caller's input or with other runs.
type Result struct {
	Kind      ResultKind
	Processes []core.Process
	Timeline  core.Timeline
	Metrics   Metrics
}

// Run simulates processes under policy.
func Run(processes []core.Process, policy Policy) (Result, error) {
	return Simulate(processes, policy.ArrivalOrder, policy.ReadyOrder, policy.Preemptive)
}

// Simulate runs a single-CPU discrete-event simulation. Processes enter the
// ready queue in arrivalOrder once their arrival time is reached, and the
// ready queue hands out the CPU by readyOrder. When preemptive is set the
// running process is re-evaluated at every arrival.
func Simulate(processes []core.Process, arrivalOrder, readyOrder core.Ordering, preemptive bool) (Result, error) {
	if err := core.ValidateAll(processes); err != nil {
		return Result{}, err
	}

	originals := slices.Clone(processes)
	if len(originals) == 0 {
		return Result{
			Kind:      ResultEmpty,
			Processes: originals,
			Timeline:  core.Timeline{{Occupant: core.Idle()}},
			Metrics:   newMetrics(0),
		}, nil
	}

	pending := make([]*core.Process, 0, len(originals))
	for _, p := range originals {
		pending = append(pending, p.Clone())
	}
	slices.SortStableFunc(pending, func(a, b *core.Process) int {
		return arrivalOrder(a, b)
	})

	var timeline core.Timeline
	ready := core.NewReadyQueue(readyOrder)
	clock := 0

	admit := func() {
		for len(pending) > 0 && pending[0].ArrivalTime <= clock {
			ready.Push(pending[0])
			pending = pending[1:]
		}
	}

	ready.Push(pending[0])
	pending = pending[1:]
	admit()

	for ready.Len() > 0 {
		if head := ready.Peek(); head.ArrivalTime > clock {
			slog.Debug("cpu idle", "from", clock, "to", head.ArrivalTime)
			timeline.Record(core.Idle(), clock, head.ArrivalTime)
			clock = head.ArrivalTime
			admit()
			continue
		}

		current := ready.Pop()
		remaining := current.Remaining()

		if !preemptive || len(pending) == 0 || clock+remaining <= pending[0].ArrivalTime {
			timeline.Record(core.Running(current.PID), clock, clock+remaining)
			current.Execute(remaining)
			clock += remaining
			slog.Debug("process completed", "pid", current.PID, "at", clock)
		} else {
			nextArrival := pending[0].ArrivalTime
			timeline.Record(core.Running(current.PID), clock, nextArrival)
			current.Execute(nextArrival - clock)
			clock = nextArrival
			ready.Push(current)
			slog.Debug("process interrupted", "pid", current.PID, "at", clock, "remaining", current.Remaining())
		}

		admit()

		// Nothing is ready yet: queue the next arrival so the idle branch
		// above can move the clock forward to it.
		if len(pending) > 0 && ready.Len() == 0 {
			ready.Push(pending[0])
			pending = pending[1:]
		}
	}

	return Result{
		Kind:      ResultNormal,
		Processes: originals,
		Timeline:  timeline,
		Metrics:   generateMetrics(originals, timeline),
	}, nil
}
