package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-project/internal/responses"
)

// Render writes the title, the Gantt chart and the per-process table for
// one simulation.
func Render(w io.Writer, response responses.ScheduleResponse) {
	title := fmt.Sprintf("%s (preemptive: %t)", strings.ToUpper(response.Policy), response.Preemptive)
	outputTitle(w, title)
	if response.Empty {
		_, _ = fmt.Fprintln(w, "No processes to schedule")
		_, _ = fmt.Fprintln(w)
		return
	}
	outputGantt(w, response.Timeline)
	outputSchedule(w, response)
}

// RenderComparison writes one summary row per policy.
func RenderComparison(w io.Writer, results []responses.ScheduleResponse) {
	outputTitle(w, "Policy comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Preemptive", "Avg Wait", "Avg Turnaround", "Avg Response", "Throughput", "Utilization"})
	for _, r := range results {
		table.Append([]string{
			r.Policy,
			fmt.Sprint(r.Preemptive),
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprintf("%.4f/t", r.CpuThroughput),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
		})
	}
	table.Render()
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, timeline []responses.SnapshotResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for _, s := range timeline {
		label := s.ProcessId
		if s.Idle {
			label = "--"
		}
		padding := strings.Repeat(" ", max(0, 8-len(label))/2)
		_, _ = fmt.Fprint(w, padding, label, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, s := range timeline {
		_, _ = fmt.Fprint(w, s.Start, "\t")
		if i == len(timeline)-1 {
			_, _ = fmt.Fprint(w, s.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Response", "Wait", "Turnaround", "Exit"})
	for _, d := range response.Details {
		table.Append([]string{
			d.ProcessId,
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
}
