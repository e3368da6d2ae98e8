package schedulers

import (
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// ScheduleFirstComeFirstServe runs each process to completion in arrival
// order, ties broken by process id. Gaps before the next arrival become
// IDLE segments.
func ScheduleFirstComeFirstServe(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	procs := core.FromJobs(request.Jobs)

	sort.SliceStable(procs, func(i, j int) bool {
		return core.ByArrival(&procs[i], &procs[j])
	})

	var time int
	gantt := make([]core.GanttSegment, 0, len(procs))

	for i := range procs {
		p := &procs[i]
		if p.ArrivalTime > time {
			gantt = append(gantt, core.GanttSegment{Label: core.IdleLabel, Start: time, End: p.ArrivalTime})
			time = p.ArrivalTime
		}

		gantt = append(gantt, core.GanttSegment{Label: core.Label(p.ProcessId), Start: time, End: time + p.BurstTime})
		time += p.BurstTime
		p.RemainingTime = 0
		p.CompletionTime = time
	}

	return generateResponse(procs, gantt), nil
}
