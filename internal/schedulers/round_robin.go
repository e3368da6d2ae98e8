package schedulers

import (
	"fmt"
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleRoundRobin time-slices the CPU over a FIFO ready queue with the
// given quantum. Processes enter the queue in arrival order, and when a
// quantum ends, processes that arrived during the slice (up to and
// including the slice boundary) are admitted before the preempted process
// is re-enqueued. That ordering is what makes an arrival at an exact
// quantum boundary run ahead of the process it displaced.
func ScheduleRoundRobin(request *requests.ScheduleRequest, timeQuantum int) (responses.ScheduleResponse, error) {
	if timeQuantum <= 0 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %d", requests.ErrInvalidQuantum, timeQuantum)
	}

	procs := core.FromJobs(request.Jobs)
	sort.SliceStable(procs, func(i, j int) bool {
		return core.ByArrival(&procs[i], &procs[j])
	})

	// The queue holds indices into procs; nextToArrive walks the
	// arrival-sorted slice so each process is admitted exactly once.
	var queue []int
	nextToArrive := 0
	admitArrivals := func(time int) {
		for nextToArrive < len(procs) && procs[nextToArrive].ArrivalTime <= time {
			queue = append(queue, nextToArrive)
			nextToArrive++
		}
	}

	var time, completedCount int
	var gantt []core.GanttSegment

	for completedCount < len(procs) {
		admitArrivals(time)

		if len(queue) == 0 {
			// Everything left is in the future; jump the clock.
			next := procs[nextToArrive].ArrivalTime
			gantt = append(gantt, core.GanttSegment{Label: core.IdleLabel, Start: time, End: next})
			time = next
			continue
		}

		idx := queue[0]
		queue = queue[1:]
		p := &procs[idx]

		run := timeQuantum
		if p.RemainingTime < run {
			run = p.RemainingTime
		}

		gantt = append(gantt, core.GanttSegment{Label: core.Label(p.ProcessId), Start: time, End: time + run})
		time += run
		p.RemainingTime -= run

		// Arrivals during the slice go ahead of the preempted process.
		admitArrivals(time)

		if p.RemainingTime == 0 {
			p.CompletionTime = time
			completedCount++
		} else {
			queue = append(queue, idx)
		}
	}

	return generateResponse(procs, gantt), nil
}
