package cli

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/responses"
)

// RenderResponse prints the Gantt chart, the per-process table and the
// aggregate metrics for one simulation.
func RenderResponse(w io.Writer, title string, response responses.ScheduleResponse) {
	fmt.Fprintln(w, "\n---------------------------------------------------------------")
	fmt.Fprintf(w, "\t\t%s Results\n", title)
	fmt.Fprintln(w, "---------------------------------------------------------------")

	outputGantt(w, response.Gantt)
	outputSchedule(w, response)

	fmt.Fprintf(w, "\nAverage Turn Around Time: %.2f units\n", response.AverageTurnAroundTime)
	fmt.Fprintf(w, "Average Waiting Time: %.2f units\n", response.AverageWaitingTime)
	fmt.Fprintf(w, "Total CPU Idle Time: %d units\n", response.IdleTime)
}

// outputGantt draws the trace as a row of labeled blocks over a timeline,
// one column per segment.
func outputGantt(w io.Writer, gantt []responses.GanttSegment) {
	const columnWidth = 8

	fmt.Fprintln(w, "\nGantt Chart:")
	for _, segment := range gantt {
		fmt.Fprintf(w, "| %-*s", columnWidth-2, segment.Label)
	}
	fmt.Fprintln(w, "|")

	for _, segment := range gantt {
		fmt.Fprintf(w, "%-*d", columnWidth, segment.Start)
	}
	if len(gantt) > 0 {
		fmt.Fprintf(w, "%d", gantt[len(gantt)-1].End)
	}
	fmt.Fprint(w, "\n\n")
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"PID", "AT", "BT", "PRI", "CT", "TAT", "WT"})
	for _, detail := range response.Details {
		table.Append([]string{
			fmt.Sprint(detail.ProcessId),
			fmt.Sprint(detail.ArrivalTime),
			fmt.Sprint(detail.BurstTime),
			fmt.Sprint(detail.Priority),
			fmt.Sprint(detail.CompletionTime),
			fmt.Sprint(detail.TurnAroundTime),
			fmt.Sprint(detail.WaitingTime),
		})
	}
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Avg %.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Avg %.2f", response.AverageWaitingTime)})
	table.Render()
}
