package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/schedulers"
)

var (
	ErrInvalidCount  = errors.New("invalid number of processes")
	ErrInvalidChoice = errors.New("invalid choice")
)

const menu = `
===============================================
Select Algorithm:
1. First Come, First Served (FCFS)
2. Shortest Job First (SJF - Non Preemptive)
3. Priority Scheduling (Non-Preemptive)
4. Shortest Remaining Time First (SRTF - Preemptive SJF)
5. Round Robin (RR)
Choice: `

// Run drives the interactive session: collect the process batch, pick an
// algorithm, simulate, render. Any malformed input aborts with an error;
// the caller turns that into exit code 1.
func Run(r io.Reader, w io.Writer) error {
	in := bufio.NewReader(r)

	fmt.Fprint(w, "Enter number of processes: ")
	var count int
	if _, err := fmt.Fscan(in, &count); err != nil || count <= 0 {
		return ErrInvalidCount
	}

	jobs := make([]requests.Job, 0, count)
	for i := 1; i <= count; i++ {
		fmt.Fprintf(w, "\nEnter details for P%d:\n", i)

		fmt.Fprint(w, "Arrival Time (AT): ")
		arrival, err := scanInt(in)
		if err != nil || arrival < 0 {
			return fmt.Errorf("%w: P%d needs a non-negative arrival time", requests.ErrInvalidProcess, i)
		}

		fmt.Fprint(w, "Burst Time (BT): ")
		burst, err := scanInt(in)
		if err != nil || burst <= 0 {
			return fmt.Errorf("%w: P%d needs a positive burst time", requests.ErrInvalidProcess, i)
		}

		fmt.Fprint(w, "Priority (PRI): ")
		priority, err := scanInt(in)
		if err != nil || priority < 0 {
			return fmt.Errorf("%w: P%d needs a non-negative priority", requests.ErrInvalidProcess, i)
		}

		jobs = append(jobs, requests.Job{
			ProcessId:   i,
			ArrivalTime: arrival,
			BurstTime:   burst,
			Priority:    priority,
		})
	}

	fmt.Fprint(w, menu)
	choice, err := scanInt(in)
	if err != nil {
		return ErrInvalidChoice
	}

	request := &requests.ScheduleRequest{Jobs: jobs}

	var name string
	var response responses.ScheduleResponse
	switch choice {
	case 1:
		name = "FCFS"
		response, err = schedulers.ScheduleFirstComeFirstServe(request)
	case 2:
		name = "SJF - Non Preemptive"
		response, err = schedulers.ScheduleShortestJobFirst(request)
	case 3:
		name = "Priority Scheduling (Non-Preemptive)"
		response, err = schedulers.SchedulePriority(request)
	case 4:
		name = "SRTF - Preemptive SJF"
		response, err = schedulers.ScheduleShortestRemainingTimeFirst(request)
	case 5:
		fmt.Fprint(w, "Enter Time Quantum for Round Robin: ")
		quantum, scanErr := scanInt(in)
		if scanErr != nil || quantum <= 0 {
			return fmt.Errorf("%w: %d", requests.ErrInvalidQuantum, quantum)
		}
		name = "Round Robin (RR)"
		response, err = schedulers.ScheduleRoundRobin(request, quantum)
	default:
		return fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}
	if err != nil {
		return err
	}

	RenderResponse(w, name, response)
	return nil
}

func scanInt(in *bufio.Reader) (int, error) {
	var value int
	_, err := fmt.Fscan(in, &value)
	return value, err
}
