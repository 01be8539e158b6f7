package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeline_RecordCoalescesSameOccupant(t *testing.T) {
	var timeline Timeline

	timeline.Record(Idle(), 0, 2)
	timeline.Record(Running("P1"), 2, 5)
	timeline.Record(Running("P1"), 5, 7)
	timeline.Record(Running("P2"), 7, 9)
	timeline.Record(Running("P1"), 9, 10)

	assert.Equal(t, Timeline{
		{Occupant: Idle(), Start: 0, End: 2},
		{Occupant: Running("P1"), Start: 2, End: 7},
		{Occupant: Running("P2"), Start: 7, End: 9},
		{Occupant: Running("P1"), Start: 9, End: 10},
	}, timeline)
	assert.Equal(t, 10, timeline.Span())
	assert.Equal(t, 2, timeline.IdleTime())
}

func TestOccupant(t *testing.T) {
	assert.True(t, Idle().IsIdle())
	assert.Equal(t, "", Idle().PID())

	p := Running("P3")
	assert.False(t, p.IsIdle())
	assert.Equal(t, "P3", p.PID())
	assert.NotEqual(t, Idle(), Running(""))
}

func TestTimeline_SpanOfEmptyTimeline(t *testing.T) {
	assert.Equal(t, 0, Timeline(nil).Span())
}
