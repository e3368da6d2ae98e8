package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// generateProcessDetails finalizes per-process metrics once every
// CompletionTime is set: turnaround = completion - arrival and
// waiting = turnaround - burst. The table is re-sorted by pid so the
// result order never depends on the execution order.
func generateProcessDetails(procs []core.Process) []responses.ProcessResponse {
	sort.Slice(procs, func(i, j int) bool {
		return procs[i].ProcessId < procs[j].ProcessId
	})

	details := make([]responses.ProcessResponse, len(procs))
	for i, p := range procs {
		turnAround := p.CompletionTime - p.ArrivalTime
		details[i] = responses.ProcessResponse{
			ProcessId:      p.ProcessId,
			ArrivalTime:    p.ArrivalTime,
			BurstTime:      p.BurstTime,
			Priority:       p.Priority,
			CompletionTime: p.CompletionTime,
			TurnAroundTime: turnAround,
			WaitingTime:    turnAround - p.BurstTime,
		}
	}
	return details
}

func generateResponse(procs []core.Process, gantt []core.GanttSegment) responses.ScheduleResponse {
	details := generateProcessDetails(procs)
	averageWaitingTime, averageTurnAroundTime := util.CalculateAverage(details)

	merged := core.MergeSegments(gantt)
	trace := make([]responses.GanttSegment, len(merged))
	for i, segment := range merged {
		trace[i] = responses.GanttSegment{
			Label: segment.Label,
			Start: segment.Start,
			End:   segment.End,
		}
	}

	var totalTime int
	if len(merged) > 0 {
		totalTime = merged[len(merged)-1].End
	}
	idleTime := core.IdleTime(merged)

	var utilization, throughput float64
	if totalTime > 0 {
		utilization = 1 - float64(idleTime)/float64(totalTime)
		throughput = float64(len(procs)) / float64(totalTime)
	}

	return responses.ScheduleResponse{
		TotalTime:             totalTime,
		IdleTime:              idleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		Gantt:                 trace,
		Details:               details,
	}
}
