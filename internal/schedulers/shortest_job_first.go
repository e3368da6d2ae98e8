package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleShortestJobFirst picks, whenever the CPU becomes free, the
// arrived process with the smallest burst time and runs it to completion.
// Ties fall back to earlier arrival, then smaller process id.
func ScheduleShortestJobFirst(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	procs := core.FromJobs(request.Jobs)
	gantt := simulateNonPreemptive(procs, func(a, b *core.Process) bool {
		if a.BurstTime != b.BurstTime {
			return a.BurstTime < b.BurstTime
		}
		return core.ByArrival(a, b)
	})
	return generateResponse(procs, gantt), nil
}

// simulateNonPreemptive drives a run-to-completion simulation where the
// next process is chosen by less among all arrived, unfinished processes.
// Decision points occur only when the CPU is free; when nothing has
// arrived the clock jumps straight to the next arrival under one IDLE
// segment.
func simulateNonPreemptive(procs []core.Process, less func(a, b *core.Process) bool) []core.GanttSegment {
	var time, completedCount int
	gantt := make([]core.GanttSegment, 0, len(procs))

	for completedCount < len(procs) {
		idx := -1
		for i := range procs {
			p := &procs[i]
			if p.RemainingTime == 0 || p.ArrivalTime > time {
				continue
			}
			if idx == -1 || less(p, &procs[idx]) {
				idx = i
			}
		}

		if idx == -1 {
			next := nextArrivalTime(procs)
			gantt = append(gantt, core.GanttSegment{Label: core.IdleLabel, Start: time, End: next})
			time = next
			continue
		}

		p := &procs[idx]
		gantt = append(gantt, core.GanttSegment{Label: core.Label(p.ProcessId), Start: time, End: time + p.BurstTime})
		time += p.BurstTime
		p.RemainingTime = 0
		p.CompletionTime = time
		completedCount++
	}

	return gantt
}

// nextArrivalTime returns the earliest arrival among unfinished processes.
// Callers only ask while at least one such process exists.
func nextArrivalTime(procs []core.Process) int {
	next := -1
	for i := range procs {
		if procs[i].RemainingTime == 0 {
			continue
		}
		if next == -1 || procs[i].ArrivalTime < next {
			next = procs[i].ArrivalTime
		}
	}
	return next
}
