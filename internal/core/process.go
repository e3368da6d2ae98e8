package core

import (
	"cpu-scheduler/internal/requests"
)

// Process carries one job through a simulation. ProcessId, ArrivalTime,
// BurstTime and Priority are fixed inputs; the scheduler fills in
// RemainingTime and CompletionTime as the simulated clock advances.
// RemainingTime > 0 means the process has not finished yet.
type Process struct {
	ProcessId      int
	ArrivalTime    int
	BurstTime      int
	Priority       int
	RemainingTime  int
	CompletionTime int
	TurnAroundTime int
	WaitingTime    int
}

// FromJobs builds a fresh working copy for one simulation run, so that
// running several algorithms over the same request stays independent.
func FromJobs(jobs []requests.Job) []Process {
	procs := make([]Process, len(jobs))
	for i, job := range jobs {
		procs[i] = Process{
			ProcessId:     job.ProcessId,
			ArrivalTime:   job.ArrivalTime,
			BurstTime:     job.BurstTime,
			Priority:      job.Priority,
			RemainingTime: job.BurstTime,
		}
	}
	return procs
}

// ByArrival reports whether a should run before b under first-come,
// first-served ordering: earlier arrival first, ties by process id.
func ByArrival(a, b *Process) bool {
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return a.ProcessId < b.ProcessId
}
