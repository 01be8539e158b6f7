package schedulers

import (
	"cmp"
	"errors"
	"fmt"
	"sort"
	"strings"

	"os-project/internal/core"
)

var ErrUnknownPolicy = errors.New("unknown scheduling policy")

// Policy parameterizes the engine. It carries no state of its own.
type Policy struct {
	Name         string
	ArrivalOrder core.Ordering
	ReadyOrder   core.Ordering
	Preemptive   bool
}

// WithPreemption returns a copy of the policy with the preemption flag set.
func (p Policy) WithPreemption(preemptive bool) Policy {
	p.Preemptive = preemptive
	return p
}

var policies = map[string]func() Policy{
	"srtf":                ShortestRemainingTimeFirst,
	"sjf":                 ShortestJobFirst,
	"fcfs":                FirstComeFirstServe,
	"priority":            func() Policy { return PriorityScheduling(false) },
	"priority-preemptive": func() Policy { return PriorityScheduling(true) },
}

func PolicyByName(name string) (Policy, error) {
	newPolicy, ok := policies[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Policy{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
	return newPolicy(), nil
}

// PolicyNames lists the names PolicyByName accepts, sorted.
func PolicyNames() []string {
	names := make([]string, 0, len(policies))
	for name := range policies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func byArrival(a, b *core.Process) int {
	return cmp.Compare(a.ArrivalTime, b.ArrivalTime)
}

func byRemaining(a, b *core.Process) int {
	return cmp.Compare(a.Remaining(), b.Remaining())
}
