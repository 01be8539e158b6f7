package core

// Occupant is whoever held the CPU during a snapshot: a process or nobody.
type Occupant struct {
	pid  string
	idle bool
}

func Idle() Occupant {
	return Occupant{idle: true}
}

func Running(pid string) Occupant {
	return Occupant{pid: pid}
}

func (o Occupant) IsIdle() bool {
	return o.idle
}

// PID returns the process identifier, or "" for the idle occupant.
func (o Occupant) PID() string {
	return o.pid
}

// Snapshot is one contiguous interval [Start, End) on the CPU.
type Snapshot struct {
	Occupant Occupant
	Start    int
	End      int
}

func (s Snapshot) Duration() int {
	return s.End - s.Start
}

// Timeline is the gap-free, append-only execution history of one run.
type Timeline []Snapshot

// Record appends [start, end) for occupant, extending the last snapshot
// instead when it belongs to the same occupant.
func (t *Timeline) Record(occupant Occupant, start, end int) {
	if n := len(*t); n > 0 && (*t)[n-1].Occupant == occupant {
		(*t)[n-1].End = end
		return
	}
	*t = append(*t, Snapshot{Occupant: occupant, Start: start, End: end})
}

// Span is the end instant of the last snapshot.
func (t Timeline) Span() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].End
}

// IdleTime is the total length of the idle snapshots.
func (t Timeline) IdleTime() int {
	var idle int
	for _, s := range t {
		if s.Occupant.IsIdle() {
			idle += s.Duration()
		}
	}
	return idle
}
