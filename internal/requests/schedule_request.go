package requests

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidProcess = errors.New("invalid process")
	ErrInvalidQuantum = errors.New("invalid time quantum")
)

type Job struct {
	ProcessId   int `json:"process_id"`
	ArrivalTime int `json:"arrival_time"`
	BurstTime   int `json:"burst_time"`
	Priority    int `json:"priority"`
}

type ScheduleRequest struct {
	Jobs        []Job `json:"jobs"`
	TimeQuantum int   `json:"time_quantum,omitempty"`
}

// Validate checks the request at the boundary. The schedulers themselves
// assume well-formed jobs and never fail.
func (r *ScheduleRequest) Validate() error {
	if len(r.Jobs) == 0 {
		return fmt.Errorf("%w: empty job list", ErrInvalidProcess)
	}
	seen := make(map[int]bool, len(r.Jobs))
	for _, job := range r.Jobs {
		if job.ProcessId <= 0 {
			return fmt.Errorf("%w: process id must be positive, got %d", ErrInvalidProcess, job.ProcessId)
		}
		if seen[job.ProcessId] {
			return fmt.Errorf("%w: duplicate process id %d", ErrInvalidProcess, job.ProcessId)
		}
		seen[job.ProcessId] = true
		if job.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %d has negative arrival time", ErrInvalidProcess, job.ProcessId)
		}
		if job.BurstTime <= 0 {
			return fmt.Errorf("%w: pid %d has non-positive burst time", ErrInvalidProcess, job.ProcessId)
		}
		if job.Priority < 0 {
			return fmt.Errorf("%w: pid %d has negative priority", ErrInvalidProcess, job.ProcessId)
		}
	}
	return nil
}
