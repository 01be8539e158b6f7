package core

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProcess      = errors.New("invalid process")
	ErrDuplicateIdentifier = errors.New("duplicate process identifier")
)

// Process is the descriptor a caller hands to the scheduler. The scheduler
// never mutates it; it works on clones.
type Process struct {
	PID         string
	BurstTime   int
	ArrivalTime int
	Priority    int

	remaining int
	working   bool
}

func NewProcess(pid string, burstTime, arrivalTime int) Process {
	return Process{PID: pid, BurstTime: burstTime, ArrivalTime: arrivalTime}
}

func NewProcessWithPriority(pid string, burstTime, arrivalTime, priority int) Process {
	return Process{PID: pid, BurstTime: burstTime, ArrivalTime: arrivalTime, Priority: priority}
}

// Clone returns a working copy whose remaining burst starts at BurstTime.
func (p Process) Clone() *Process {
	clone := p
	clone.remaining = p.BurstTime
	clone.working = true
	return &clone
}

// Remaining is the CPU time still owed to the process. On a descriptor that
// was not produced by Clone it equals BurstTime.
func (p *Process) Remaining() int {
	if !p.working {
		return p.BurstTime
	}
	return p.remaining
}

// Execute charges d units of CPU time. Only clones track remaining time.
func (p *Process) Execute(d int) {
	if d > p.remaining {
		d = p.remaining
	}
	p.remaining -= d
}

func (p Process) Validate() error {
	if p.PID == "" {
		return fmt.Errorf("%w: empty process identifier", ErrInvalidProcess)
	}
	if p.BurstTime < 0 {
		return fmt.Errorf("%w: %s has negative burst time %d", ErrInvalidProcess, p.PID, p.BurstTime)
	}
	if p.ArrivalTime < 0 {
		return fmt.Errorf("%w: %s has negative arrival time %d", ErrInvalidProcess, p.PID, p.ArrivalTime)
	}
	return nil
}

// ValidateAll checks every descriptor and that identifiers are unique.
func ValidateAll(processes []Process) error {
	seen := make(map[string]struct{}, len(processes))
	for _, p := range processes {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, ok := seen[p.PID]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateIdentifier, p.PID)
		}
		seen[p.PID] = struct{}{}
	}
	return nil
}
