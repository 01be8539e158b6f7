package core

import (
	"cmp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func byRemaining(a, b *Process) int {
	return cmp.Compare(a.Remaining(), b.Remaining())
}

func popAll(q *ReadyQueue) []string {
	var pids []string
	for q.Len() > 0 {
		pids = append(pids, q.Pop().PID)
	}
	return pids
}

func TestReadyQueue_OrdersByRemainingThenInsertion(t *testing.T) {
	q := NewReadyQueue(byRemaining)
	q.Push(NewProcess("A", 5, 0).Clone())
	q.Push(NewProcess("B", 2, 0).Clone())
	q.Push(NewProcess("C", 5, 0).Clone())
	q.Push(NewProcess("D", 2, 0).Clone())

	require.Equal(t, 4, q.Len())
	assert.Equal(t, "B", q.Peek().PID)
	assert.Equal(t, []string{"B", "D", "A", "C"}, popAll(q))
}

func TestReadyQueue_ReinsertionUsesNewKey(t *testing.T) {
	q := NewReadyQueue(byRemaining)
	long := NewProcess("long", 10, 0).Clone()
	q.Push(long)
	q.Push(NewProcess("mid", 6, 0).Clone())

	current := q.Pop()
	require.Equal(t, "mid", current.PID)
	current.Execute(5)
	q.Push(current)

	assert.Equal(t, []string{"mid", "long"}, popAll(q))
}
