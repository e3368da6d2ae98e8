package schedulers

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// SchedulePriority dispatches the arrived process with the smallest
// priority value (smaller = higher priority) and runs it to completion.
// A higher-priority arrival never preempts a running process. The tie
// chain matches shortest-job-first: arrival, then process id.
func SchedulePriority(request *requests.ScheduleRequest) (responses.ScheduleResponse, error) {
	procs := core.FromJobs(request.Jobs)
	gantt := simulateNonPreemptive(procs, func(a, b *core.Process) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return core.ByArrival(a, b)
	})
	return generateResponse(procs, gantt), nil
}
