package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-project/internal/core"
	"os-project/internal/responses"
	"os-project/internal/schedulers"
)

func TestRender(t *testing.T) {
	policy := schedulers.ShortestJobFirst()
	result, err := schedulers.Run([]core.Process{
		core.NewProcess("P1", 12, 1),
		core.NewProcess("P2", 4, 2),
		core.NewProcess("P3", 6, 3),
		core.NewProcess("P4", 5, 8),
	}, policy)
	require.NoError(t, err)

	var out bytes.Buffer
	Render(&out, responses.NewScheduleResponse(policy, result))

	text := out.String()
	assert.Contains(t, text, "SJF (preemptive: false)")
	assert.Contains(t, text, "Gantt schedule")
	assert.Contains(t, text, "0\t1\t13\t17\t22\t28")
	assert.Contains(t, text, "   --   |   P1   |   P2   |   P4   |   P3   |")
	assert.Contains(t, text, "TURNAROUND")
	assert.Contains(t, text, "16.50")
	assert.Contains(t, text, "9.75")
}

func TestRender_Empty(t *testing.T) {
	policy := schedulers.ShortestRemainingTimeFirst()
	result, err := schedulers.Run(nil, policy)
	require.NoError(t, err)

	var out bytes.Buffer
	Render(&out, responses.NewScheduleResponse(policy, result))

	assert.Contains(t, out.String(), "No processes to schedule")
	assert.NotContains(t, out.String(), "Schedule table")
}

func TestRenderComparison(t *testing.T) {
	var out bytes.Buffer
	RenderComparison(&out, []responses.ScheduleResponse{
		{Policy: "sjf", AverageWaitingTime: 9.75, CpuThroughput: 4.0 / 28.0, CpuUtilization: 1},
		{Policy: "srtf", Preemptive: true, AverageWaitingTime: 3.25, CpuThroughput: 0.2, CpuUtilization: 1},
	})

	text := out.String()
	assert.Contains(t, text, "Policy comparison")
	assert.Contains(t, text, "srtf")
	assert.Contains(t, text, "3.25")
	assert.Contains(t, text, "0.2000/t")
	assert.Contains(t, text, "100%")
}
