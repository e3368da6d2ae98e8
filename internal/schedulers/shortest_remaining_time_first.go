package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleShortestRemainingTimeFirst is the preemptive variant of
// shortest-job-first: at every integer clock tick the arrived process with
// the least remaining time gets the CPU for exactly one unit, so a shorter
// arrival preempts the current process at the next tick. Ties fall back to
// earlier arrival, then smaller process id. Per-unit segments are merged
// before the response is built.
func ScheduleShortestRemainingTimeFirst(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	procs := core.FromJobs(request.Jobs)

	var time, completedCount int
	var gantt []core.GanttSegment

	for completedCount < len(procs) {
		idx := -1
		for i := range procs {
			p := &procs[i]
			if p.RemainingTime == 0 || p.ArrivalTime > time {
				continue
			}
			if idx == -1 || lessRemaining(p, &procs[idx]) {
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
		gantt = append(gantt, core.GanttSegment{Label: core.Label(p.ProcessId), Start: time, End: time + 1})
		p.RemainingTime--
		time++

		if p.RemainingTime == 0 {
			p.CompletionTime = time
			completedCount++
		}
	}

	return generateResponse(procs, gantt), nil
}

func lessRemaining(a, b *core.Process) bool {
	if a.RemainingTime != b.RemainingTime {
		return a.RemainingTime < b.RemainingTime
	}
	return core.ByArrival(a, b)
}
